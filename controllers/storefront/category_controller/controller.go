package category_controller

import (
	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/Velora-Commerce/velora-storefront-backend/services"
)

// Controller serves the static display taxonomy and category-scoped product
// listings.
type Controller struct {
	catalog  *services.CatalogClient
	taxonomy []models.Category
}

func NewController(catalog *services.CatalogClient, taxonomy []models.Category) *Controller {
	return &Controller{catalog: catalog, taxonomy: taxonomy}
}
