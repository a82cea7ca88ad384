package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nishaddev/Mobile-inventory/models"
	"github.com/nishaddev/Mobile-inventory/services"
)

// CatalogController handles HTTP requests for products, categories and
// warehouses.
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

func renderError(ctx *gin.Context, svcErr *services.ServiceError) {
	ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message, "code": svcErr.Code})
}

func parseIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name, "code": services.CodeValidation})
		return uuid.Nil, false
	}
	return id, true
}

func parsePagination(ctx *gin.Context) (int, int) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

// CreateProduct handles POST /products (admin only).
func (cc *CatalogController) CreateProduct(ctx *gin.Context) {
	var req models.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, svcErr := cc.catalogService.CreateProduct(ctx.Request.Context(), &req)
	if svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"product": product})
}

// GetProduct handles GET /products/:id.
func (cc *CatalogController) GetProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	detail, svcErr := cc.catalogService.GetProduct(ctx.Request.Context(), id)
	if svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// ListProducts handles GET /products.
func (cc *CatalogController) ListProducts(ctx *gin.Context) {
	page, limit := parsePagination(ctx)

	result, svcErr := cc.catalogService.ListProducts(ctx.Request.Context(), page, limit)
	if svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// UpdateProduct handles PUT /products/:id (admin only).
func (cc *CatalogController) UpdateProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req models.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, svcErr := cc.catalogService.UpdateProduct(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"product": product})
}

// DeleteProduct handles DELETE /products/:id (admin only).
func (cc *CatalogController) DeleteProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if svcErr := cc.catalogService.DeleteProduct(ctx.Request.Context(), id); svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// CreateCategory handles POST /categories (admin only).
func (cc *CatalogController) CreateCategory(ctx *gin.Context) {
	var req models.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	category, svcErr := cc.catalogService.CreateCategory(ctx.Request.Context(), &req)
	if svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"category": category})
}

// ListCategories handles GET /categories.
func (cc *CatalogController) ListCategories(ctx *gin.Context) {
	categories, svcErr := cc.catalogService.ListCategories(ctx.Request.Context())
	if svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

// DeleteCategory handles DELETE /categories/:id (admin only).
func (cc *CatalogController) DeleteCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if svcErr := cc.catalogService.DeleteCategory(ctx.Request.Context(), id); svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// CreateWarehouse handles POST /warehouses (admin only).
func (cc *CatalogController) CreateWarehouse(ctx *gin.Context) {
	var req models.CreateWarehouseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	warehouse, svcErr := cc.catalogService.CreateWarehouse(ctx.Request.Context(), &req)
	if svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"warehouse": warehouse})
}

// ListWarehouses handles GET /warehouses.
func (cc *CatalogController) ListWarehouses(ctx *gin.Context) {
	warehouses, svcErr := cc.catalogService.ListWarehouses(ctx.Request.Context())
	if svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"warehouses": warehouses})
}

// DeleteWarehouse handles DELETE /warehouses/:id (admin only).
func (cc *CatalogController) DeleteWarehouse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if svcErr := cc.catalogService.DeleteWarehouse(ctx.Request.Context(), id); svcErr != nil {
		renderError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Warehouse deleted"})
}
