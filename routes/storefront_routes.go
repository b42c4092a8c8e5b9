package routes

import (
	"github.com/Velora-Commerce/velora-storefront-backend/controllers/storefront/category_controller"
	"github.com/Velora-Commerce/velora-storefront-backend/controllers/storefront/filter_controller"
	"github.com/Velora-Commerce/velora-storefront-backend/controllers/storefront/product_controller"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes wires the public catalog browsing endpoints.
func SetupStorefrontRoutes(
	router *gin.RouterGroup,
	products *product_controller.Controller,
	categories *category_controller.Controller,
	filters *filter_controller.Controller,
) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	productGroup := store.Group("/products")
	{
		productGroup.GET("", products.GetProducts) // List with filters
		productGroup.GET("/search", products.SearchProducts)
		productGroup.GET("/:id", products.GetProductByID) // Single product
	}

	// Category routes
	categoryGroup := store.Group("/categories")
	{
		categoryGroup.GET("", categories.GetCategories)       // List all
		categoryGroup.GET("/:id", categories.GetCategoryByID) // Single category
		categoryGroup.GET("/:id/products", categories.GetCategoryProducts)
	}

	store.GET("/filters/metadata", filters.GetFilterMetadata)
}
