package product_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/Velora-Commerce/velora-storefront-backend/config"
	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/Velora-Commerce/velora-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary Get storefront products with filters
// @Description Fetches the catalog and applies search, category, subcategory, price range, rating and sorting filters. Results are split into featured and regular groups.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search text (title substring, case-insensitive)"
// @Param category query string false "Display category ID"
// @Param subcategory query []string false "Subcategory IDs (repeatable)"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param rating query []int false "Rating thresholds (repeatable)"
// @Param sort query string false "Sort option (featured | price-asc | price-desc | newest | rating)" default(featured)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 502 {object} models.ApiResponse "Catalog unavailable"
// @Router /store/products [get]
func (ctl *Controller) GetProducts(c *gin.Context) {
	spec := parseFilterSpec(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := ctl.catalog.Products(ctx)
	if err != nil {
		log.Printf("❌ Catalog fetch failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	result := services.FilterAndSort(products, spec, ctl.taxonomy)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", gin.H{
		"featured": result.Featured,
		"regular":  result.Regular,
		"total":    result.Total(),
	}))
}

// parseFilterSpec maps the query string onto a FilterSpec, starting from the
// keep-everything defaults.
func parseFilterSpec(c *gin.Context) models.FilterSpec {
	spec := models.DefaultFilterSpec()

	spec.SearchText = c.Query("q")
	spec.CategoryID = c.Query("category")
	spec.SubcategoryIDs = c.QueryArray("subcategory")
	spec.Sort = models.ParseSortOption(c.DefaultQuery("sort", "featured"))

	if raw := c.Query("minPrice"); raw != "" {
		if min, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(min) {
			spec.PriceMin = min
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if max, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(max) {
			spec.PriceMax = max
		}
	}

	for _, raw := range c.QueryArray("rating") {
		if threshold, err := strconv.Atoi(raw); err == nil {
			spec.RatingThresholds = append(spec.RatingThresholds, threshold)
		}
	}

	return spec
}
