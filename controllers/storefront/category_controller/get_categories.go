package category_controller

import (
	"net/http"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary List display categories
// @Description Returns the storefront's static category taxonomy with subcategories.
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/categories [get]
func (ctl *Controller) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", ctl.taxonomy))
}
