package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"warrantydesk/internal/application/product/usecases"
	ticketusecases "warrantydesk/internal/application/ticket/usecases"
	"warrantydesk/internal/shared/logger"
	"warrantydesk/internal/shared/utils"
)

type ProductHandler struct {
	registerProductUC usecases.RegisterProductExecutor
	getProductUC      usecases.GetProductExecutor
	listProductsUC    usecases.ListProductsExecutor
	deleteProductUC   usecases.DeleteProductExecutor
	productTicketsUC  ticketusecases.ListProductTicketsExecutor
	logger            logger.Interface
}

func NewProductHandler(
	registerProductUC usecases.RegisterProductExecutor,
	getProductUC usecases.GetProductExecutor,
	listProductsUC usecases.ListProductsExecutor,
	deleteProductUC usecases.DeleteProductExecutor,
	productTicketsUC ticketusecases.ListProductTicketsExecutor,
) *ProductHandler {
	return &ProductHandler{
		registerProductUC: registerProductUC,
		getProductUC:      getProductUC,
		listProductsUC:    listProductsUC,
		deleteProductUC:   deleteProductUC,
		productTicketsUC:  productTicketsUC,
		logger:            logger.NewLogger(),
	}
}

type RegisterProductRequest struct {
	ItemName       string `json:"item_name" binding:"required"`
	Serial         string `json:"serial"`
	Model          string `json:"model"`
	BillNo         string `json:"bill_no"`
	PurchaseDate   string `json:"purchase_date" binding:"omitempty,datetime=2006-01-02"`
	WarrantyMonths *int   `json:"warranty_months" binding:"omitempty,min=0"`
}

func (h *ProductHandler) RegisterProduct(c *gin.Context) {
	var req RegisterProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register product", "error", err)
		utils.ErrorResponseWithError(c, utils.NewBindingError(err))
		return
	}

	cmd := usecases.RegisterProductCommand{
		ItemName:       req.ItemName,
		Serial:         req.Serial,
		Model:          req.Model,
		BillNo:         req.BillNo,
		PurchaseDate:   req.PurchaseDate,
		WarrantyMonths: req.WarrantyMonths,
	}

	result, err := h.registerProductUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Product registered successfully")
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	result, err := h.getProductUC.Execute(c.Request.Context(), usecases.GetProductQuery{
		ProductID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"product":  result.Product,
		"coverage": result.Coverage,
	})
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	result, err := h.listProductsUC.Execute(c.Request.Context(), usecases.ListProductsQuery{
		SearchText: c.Query("search"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Products, result.Total)
}

func (h *ProductHandler) ListProductTickets(c *gin.Context) {
	result, err := h.productTicketsUC.Execute(c.Request.Context(), ticketusecases.ListProductTicketsQuery{
		ProductID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	err := h.deleteProductUC.Execute(c.Request.Context(), usecases.DeleteProductCommand{
		ProductID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
