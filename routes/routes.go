package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nishaddev/Mobile-inventory/controllers"
	"github.com/nishaddev/Mobile-inventory/middleware"
)

// RegisterRoutes sets up all API routes. Reads require a valid token;
// every mutation additionally requires the admin role.
func RegisterRoutes(
	r *gin.Engine,
	jwtSecret string,
	catalog *controllers.CatalogController,
	stock *controllers.StockController,
	sales *controllers.SalesController,
	analytics *controllers.AnalyticsController,
) {
	api := r.Group("/")
	api.Use(middleware.AuthMiddleware(jwtSecret))

	admin := middleware.RequireAdmin()

	products := api.Group("/products")
	products.GET("", catalog.ListProducts)
	products.GET("/:id", catalog.GetProduct)
	products.POST("", admin, catalog.CreateProduct)
	products.PUT("/:id", admin, catalog.UpdateProduct)
	products.DELETE("/:id", admin, catalog.DeleteProduct)

	categories := api.Group("/categories")
	categories.GET("", catalog.ListCategories)
	categories.POST("", admin, catalog.CreateCategory)
	categories.DELETE("/:id", admin, catalog.DeleteCategory)

	warehouses := api.Group("/warehouses")
	warehouses.GET("", catalog.ListWarehouses)
	warehouses.POST("", admin, catalog.CreateWarehouse)
	warehouses.DELETE("/:id", admin, catalog.DeleteWarehouse)

	inventory := api.Group("/inventory")
	inventory.GET("", stock.ListEntries)
	inventory.GET("/:product_id/:warehouse_id", stock.GetEntry)
	inventory.POST("", admin, stock.CreateEntry)
	inventory.PUT("/:product_id/:warehouse_id", admin, stock.UpdateEntry)
	inventory.PATCH("/:product_id/:warehouse_id/reserve", admin, stock.AdjustReserved)
	inventory.DELETE("/:product_id/:warehouse_id", admin, stock.RemoveEntry)

	salesGroup := api.Group("/sales")
	salesGroup.GET("", sales.ListSales)
	salesGroup.POST("", admin, sales.RecordSale)

	analyticsGroup := api.Group("/analytics")
	analyticsGroup.GET("/summary", analytics.GetSummary)
	analyticsGroup.GET("/products", analytics.GetProducts)
}
