package category_controller

import (
	"net/http"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCategoryByID godoc
// @Summary Get a display category
// @Description Returns one category of the static taxonomy by its id.
// @Tags Storefront - Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Router /store/categories/{id} [get]
func (ctl *Controller) GetCategoryByID(c *gin.Context) {
	category, ok := models.FindCategory(ctl.taxonomy, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category fetched successfully", category))
}
