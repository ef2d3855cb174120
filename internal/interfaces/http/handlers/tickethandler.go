package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"warrantydesk/internal/application/ticket/usecases"
	"warrantydesk/internal/shared/logger"
	"warrantydesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC  usecases.CreateTicketExecutor
	updateTicketUC  usecases.UpdateTicketExecutor
	deleteTicketUC  usecases.DeleteTicketExecutor
	getTicketUC     usecases.GetTicketExecutor
	listTicketsUC   usecases.ListTicketsExecutor
	changeStatusUC  usecases.ChangeStatusExecutor
	addNoteUC       usecases.AddNoteExecutor
	exportTicketsUC usecases.ExportTicketsExecutor
	logger          logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	addNoteUC usecases.AddNoteExecutor,
	exportTicketsUC usecases.ExportTicketsExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:  createTicketUC,
		updateTicketUC:  updateTicketUC,
		deleteTicketUC:  deleteTicketUC,
		getTicketUC:     getTicketUC,
		listTicketsUC:   listTicketsUC,
		changeStatusUC:  changeStatusUC,
		addNoteUC:       addNoteUC,
		exportTicketsUC: exportTicketsUC,
		logger:          logger.NewLogger(),
	}
}

type CreateTicketRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	CustName  string `json:"cust_name" binding:"required"`
	CustPhone string `json:"cust_phone"`
	Priority  string `json:"priority" binding:"omitempty,oneof=Low Normal High Urgent"`
	Problem   string `json:"problem"`
}

type UpdateTicketRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	CustName  string `json:"cust_name" binding:"required"`
	CustPhone string `json:"cust_phone"`
	Priority  string `json:"priority" binding:"omitempty,oneof=Low Normal High Urgent"`
	Problem   string `json:"problem"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

type AddNoteRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.NewBindingError(err))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		ProductID: req.ProductID,
		CustName:  req.CustName,
		CustPhone: req.CustPhone,
		Priority:  req.Priority,
		Problem:   req.Problem,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.NewBindingError(err))
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID:  c.Param("id"),
		ProductID: req.ProductID,
		CustName:  req.CustName,
		CustPhone: req.CustPhone,
		Priority:  req.Priority,
		Problem:   req.Problem,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		SearchText: c.Query("search"),
		Status:     c.Query("status"),
		SortOrder:  c.Query("sort"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"items":         result.Tickets,
		"total":         result.Total,
		"status_counts": result.StatusCounts,
	})
}

func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change status", "error", err)
		utils.ErrorResponseWithError(c, utils.NewBindingError(err))
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID: c.Param("id"),
		Status:   req.Status,
		Note:     req.Note,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", result)
}

func (h *TicketHandler) AddNote(c *gin.Context) {
	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add note", "error", err)
		utils.ErrorResponseWithError(c, utils.NewBindingError(err))
		return
	}

	result, err := h.addNoteUC.Execute(c.Request.Context(), usecases.AddNoteCommand{
		TicketID: c.Param("id"),
		Text:     req.Text,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Note added", result)
}

// ExportTickets streams the filtered ticket list as a CSV download.
func (h *TicketHandler) ExportTickets(c *gin.Context) {
	result, err := h.exportTicketsUC.Execute(c.Request.Context(), usecases.ExportTicketsQuery{
		SearchText: c.Query("search"),
		Status:     c.Query("status"),
		SortOrder:  c.Query("sort"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", result.Content)
}
