package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warrantydesk/internal/domain/ticket"
	vo "warrantydesk/internal/domain/ticket/valueobjects"
	"warrantydesk/internal/shared/errors"
)

func receivedTicket(t *testing.T) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket("T-abc123", "P-abc123", "Alice", "", ticket.ProductSnapshot{ItemName: "Printer"}, vo.PriorityNormal, "paper jam", time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return tk
}

func repoWithTicket(tk *ticket.Ticket, updated **ticket.Ticket) *mockTicketRepository {
	return &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
			return tk, nil
		},
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			if updated != nil {
				*updated = t
			}
			return nil
		},
	}
}

func TestChangeStatusUseCase_Execute_ValidTransition(t *testing.T) {
	tk := receivedTicket(t)
	var updated *ticket.Ticket

	uc := NewChangeStatusUseCase(repoWithTicket(tk, &updated), &mockTransactionManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID: "T-abc123",
		Status:   "In Progress",
		Note:     "bench check",
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "In Progress", result.Status)

	require.Len(t, result.Timeline, 2)
	assert.Equal(t, "In Progress", result.Timeline[1].Status)
	assert.Equal(t, "bench check", result.Timeline[1].Note)
}

func TestChangeStatusUseCase_Execute_InvalidTransitionLeavesTicketUntouched(t *testing.T) {
	tk := receivedTicket(t)
	var updated *ticket.Ticket

	uc := NewChangeStatusUseCase(repoWithTicket(tk, &updated), &mockTransactionManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID: "T-abc123",
		Status:   "Delivered",
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Nil(t, updated)
	assert.Equal(t, vo.StatusReceived, tk.Status())
}

func TestChangeStatusUseCase_Execute_ClosedIsTerminal(t *testing.T) {
	tk := receivedTicket(t)
	require.NoError(t, tk.ChangeStatus(vo.StatusClosed, "", time.Now().UTC()))

	uc := NewChangeStatusUseCase(repoWithTicket(tk, nil), &mockTransactionManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID: "T-abc123",
		Status:   "Received",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestChangeStatusUseCase_Execute_UnknownStatus(t *testing.T) {
	uc := NewChangeStatusUseCase(&mockTicketRepository{}, &mockTransactionManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID: "T-abc123",
		Status:   "Shipped",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestChangeStatusUseCase_Execute_UnknownTicket(t *testing.T) {
	uc := NewChangeStatusUseCase(&mockTicketRepository{}, &mockTransactionManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID: "T-missing",
		Status:   "Closed",
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

type txMarkerKey struct{}

func TestChangeStatusUseCase_Execute_RunsInsideTransaction(t *testing.T) {
	tk := receivedTicket(t)

	var findCtx, updateCtx context.Context
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
			findCtx = ctx
			return tk, nil
		},
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			updateCtx = ctx
			return nil
		},
	}

	var txCalls int
	txManager := &mockTransactionManager{
		RunInTransactionFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			txCalls++
			return fn(context.WithValue(ctx, txMarkerKey{}, true))
		},
	}

	uc := NewChangeStatusUseCase(ticketRepo, txManager, &mockLogger{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID: "T-abc123",
		Status:   "In Progress",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, txCalls)
	// Both the read and the write must see the transaction-scoped context.
	require.NotNil(t, findCtx)
	require.NotNil(t, updateCtx)
	assert.Equal(t, true, findCtx.Value(txMarkerKey{}))
	assert.Equal(t, true, updateCtx.Value(txMarkerKey{}))
}

func TestChangeStatusUseCase_Execute_TransactionErrorPropagates(t *testing.T) {
	tk := receivedTicket(t)

	updateErr := errors.NewStorageError("failed to update ticket")
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, ticketID string) (*ticket.Ticket, error) {
			return tk, nil
		},
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			return updateErr
		},
	}

	uc := NewChangeStatusUseCase(ticketRepo, &mockTransactionManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID: "T-abc123",
		Status:   "In Progress",
	})

	require.Error(t, err)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeStorage, appErr.Type)
}

func TestAddNoteUseCase_Execute(t *testing.T) {
	tk := receivedTicket(t)
	var updated *ticket.Ticket

	uc := NewAddNoteUseCase(repoWithTicket(tk, &updated), &mockTransactionManager{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), AddNoteCommand{
		TicketID: "T-abc123",
		Text:     "customer called",
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Len(t, result.Notes, 1)
	assert.Equal(t, "customer called", result.Notes[0].Text)
}

func TestAddNoteUseCase_Execute_RejectsBlankNote(t *testing.T) {
	tk := receivedTicket(t)

	uc := NewAddNoteUseCase(repoWithTicket(tk, nil), &mockTransactionManager{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), AddNoteCommand{
		TicketID: "T-abc123",
		Text:     "   ",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
