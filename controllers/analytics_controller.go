package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nishaddev/Mobile-inventory/services"
)

// AnalyticsController handles the read-only analytics endpoints.
type AnalyticsController struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController.
func NewAnalyticsController(analyticsService services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// GetSummary handles GET /analytics/summary.
func (ac *AnalyticsController) GetSummary(ctx *gin.Context) {
	summary, svcErr := ac.analyticsService.Summary(ctx.Request.Context())
	if svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// GetProducts handles GET /analytics/products.
func (ac *AnalyticsController) GetProducts(ctx *gin.Context) {
	products, svcErr := ac.analyticsService.Products(ctx.Request.Context())
	if svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"products": products})
}
