package product_controller

import (
	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/Velora-Commerce/velora-storefront-backend/services"
)

// Controller serves the storefront product endpoints. It owns no state of
// its own: the catalog client and the static taxonomy are handed in by the
// composition root.
type Controller struct {
	catalog  *services.CatalogClient
	taxonomy []models.Category
}

func NewController(catalog *services.CatalogClient, taxonomy []models.Category) *Controller {
	return &Controller{catalog: catalog, taxonomy: taxonomy}
}
