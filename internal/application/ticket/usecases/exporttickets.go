package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"warrantydesk/internal/domain/ticket"
	"warrantydesk/internal/shared/biztime"
	"warrantydesk/internal/shared/errors"
	"warrantydesk/internal/shared/logger"
)

// exportColumns is the fixed CSV column order. Free-text fields sit at the
// end so truncated rows in a spreadsheet still show the identifying fields.
var exportColumns = []string{
	"id",
	"productId",
	"custName",
	"custPhone",
	"itemName",
	"serial",
	"model",
	"billNo",
	"purchaseDate",
	"warrantyMonths",
	"receivedDate",
	"priority",
	"status",
	"createdAt",
	"problem",
}

type ExportTicketsQuery struct {
	SearchText string
	Status     string
	SortOrder  string
}

type ExportTicketsResult struct {
	Content  []byte
	Filename string
}

// ExportTicketsUseCase renders the filtered ticket list as CSV. Every cell is
// quoted, embedded quotes are doubled and embedded line breaks collapse to a
// single space, so the output opens cleanly in spreadsheet tools regardless
// of what customers typed into the problem field.
type ExportTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewExportTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ExportTicketsUseCase {
	return &ExportTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ExportTicketsUseCase) Execute(ctx context.Context, query ExportTicketsQuery) (*ExportTicketsResult, error) {
	filter, err := buildTicketFilter(query.SearchText, query.Status, query.SortOrder)
	if err != nil {
		return nil, err
	}

	tickets, _, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets for export", "error", err)
		return nil, errors.NewStorageError("failed to list tickets")
	}

	var sb strings.Builder
	writeCSVRow(&sb, exportColumns)
	for _, tk := range tickets {
		writeCSVRow(&sb, exportRow(tk))
	}

	uc.logger.Infow("tickets exported", "count", len(tickets))

	return &ExportTicketsResult{
		Content:  []byte(sb.String()),
		Filename: fmt.Sprintf("tickets-%s.csv", biztime.FormatDate(biztime.NowUTC())),
	}, nil
}

func exportRow(tk *ticket.Ticket) []string {
	snapshot := tk.Snapshot()
	return []string{
		tk.ID(),
		tk.ProductID(),
		tk.CustName(),
		tk.CustPhone(),
		snapshot.ItemName,
		snapshot.Serial,
		snapshot.Model,
		snapshot.BillNo,
		formatDateCell(snapshot.PurchaseDate),
		formatIntCell(snapshot.WarrantyMonths),
		biztime.FormatDate(tk.ReceivedDate()),
		tk.Priority().String(),
		tk.Status().String(),
		tk.CreatedAt().Format(time.RFC3339),
		tk.Problem(),
	}
}

// writeCSVRow emits one record with every cell quoted. encoding/csv only
// quotes cells that need it, which trips up spreadsheet imports that expect
// a uniform layout, so the quoting is done by hand here.
func writeCSVRow(sb *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(escapeCSVCell(cell))
		sb.WriteByte('"')
	}
	sb.WriteString("\r\n")
}

func escapeCSVCell(cell string) string {
	cell = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(cell)
	return strings.ReplaceAll(cell, `"`, `""`)
}

func formatDateCell(t *time.Time) string {
	if t == nil {
		return ""
	}
	return biztime.FormatDate(*t)
}

func formatIntCell(n *int) string {
	if n == nil {
		return ""
	}
	return fmt.Sprintf("%d", *n)
}
