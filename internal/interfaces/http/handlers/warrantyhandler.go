package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warrantydesk/internal/application/product/usecases"
	"warrantydesk/internal/shared/logger"
	"warrantydesk/internal/shared/utils"
)

// WarrantyHandler serves the public warranty lookup. It is the only
// data-bearing endpoint reachable without an admin session.
type WarrantyHandler struct {
	checkWarrantyUC usecases.CheckWarrantyExecutor
	logger          logger.Interface
}

func NewWarrantyHandler(checkWarrantyUC usecases.CheckWarrantyExecutor) *WarrantyHandler {
	return &WarrantyHandler{
		checkWarrantyUC: checkWarrantyUC,
		logger:          logger.NewLogger(),
	}
}

type CheckWarrantyRequest struct {
	ItemName string `json:"item_name" binding:"required"`
	Serial   string `json:"serial"`
}

func (h *WarrantyHandler) CheckWarranty(c *gin.Context) {
	var req CheckWarrantyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for warranty check", "error", err)
		utils.ErrorResponseWithError(c, utils.NewBindingError(err))
		return
	}

	result, err := h.checkWarrantyUC.Execute(c.Request.Context(), usecases.CheckWarrantyQuery{
		ItemName: req.ItemName,
		Serial:   req.Serial,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
