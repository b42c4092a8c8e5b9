package product_controller

import (
	"log"
	"net/http"

	"github.com/Velora-Commerce/velora-storefront-backend/config"
	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// SearchProducts godoc
// @Summary Search products upstream
// @Description Runs the catalog's own substring search instead of filtering the cached list.
// @Tags Storefront - Products
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Missing query"
// @Failure 502 {object} models.ApiResponse "Catalog unavailable"
// @Router /store/products/search [get]
func (ctl *Controller) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Search query is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := ctl.catalog.Search(ctx, query)
	if err != nil {
		log.Printf("❌ Catalog search failed for %q: %v", query, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to search products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", gin.H{
		"products": products,
		"total":    len(products),
	}))
}
