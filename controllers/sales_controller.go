package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nishaddev/Mobile-inventory/middleware"
	"github.com/nishaddev/Mobile-inventory/models"
	"github.com/nishaddev/Mobile-inventory/services"
)

// SalesController handles HTTP requests for sales transactions.
type SalesController struct {
	salesService services.SalesService
}

// NewSalesController creates a new SalesController.
func NewSalesController(salesService services.SalesService) *SalesController {
	return &SalesController{salesService: salesService}
}

// RecordSale handles POST /sales (admin only).
func (sc *SalesController) RecordSale(ctx *gin.Context) {
	var req models.RecordSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	createdBy, _ := middleware.GetUserID(ctx)

	txn, svcErr := sc.salesService.RecordSale(ctx.Request.Context(), &req, createdBy)
	if svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"transaction": txn})
}

// ListSales handles GET /sales.
func (sc *SalesController) ListSales(ctx *gin.Context) {
	page, limit := parsePagination(ctx)

	result, svcErr := sc.salesService.List(ctx.Request.Context(), page, limit)
	if svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
