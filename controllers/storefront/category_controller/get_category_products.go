package category_controller

import (
	"log"
	"net/http"
	"sync"

	"github.com/Velora-Commerce/velora-storefront-backend/config"
	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCategoryProducts godoc
// @Summary List products for a display category
// @Description Fans out to the upstream catalog's category-scoped listing for every code the display category maps to, and merges the results.
// @Tags Storefront - Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Failure 502 {object} models.ApiResponse "Catalog unavailable"
// @Router /store/categories/{id}/products [get]
func (ctl *Controller) GetCategoryProducts(c *gin.Context) {
	category, ok := models.FindCategory(ctl.taxonomy, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// One upstream call per mapped code, merged in taxonomy order.
	var wg sync.WaitGroup
	var mu sync.Mutex

	byCode := make(map[string][]models.Product, len(category.APICategories))
	var errs []error

	for _, code := range category.APICategories {
		wg.Add(1)
		go func(code string) {
			defer wg.Done()
			products, err := ctl.catalog.ByCategory(ctx, code)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			byCode[code] = products
		}(code)
	}

	wg.Wait()

	if len(errs) > 0 {
		log.Printf("❌ Category listing failed for %q: %v", category.ID, errs[0])
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch category products"))
		return
	}

	merged := make([]models.Product, 0)
	for _, code := range category.APICategories {
		merged = append(merged, byCode[code]...)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category products fetched successfully", gin.H{
		"category": category.ID,
		"products": merged,
		"total":    len(merged),
	}))
}
