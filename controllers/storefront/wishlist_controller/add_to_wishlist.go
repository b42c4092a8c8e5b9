package wishlist_controller

import (
	"net/http"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// AddToWishlist godoc
// @Summary Save a product to the wishlist
// @Description Appends a snapshot entry. Saving a product that is already on the wishlist is a no-op.
// @Tags Storefront - Wishlist
// @Accept json
// @Produce json
// @Param request body models.AddToWishlistRequest true "Product snapshot"
// @Success 200 {object} models.ApiResponse{data=models.WishlistResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Router /wishlist/items [post]
func (ctl *Controller) AddToWishlist(c *gin.Context) {
	var req models.AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	engine := ctl.wishlistEngine(c)
	if engine == nil {
		return
	}

	engine.AddToWishlist(c.Request.Context(), req.Addable())

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product saved to wishlist", wishlistResponse(engine)))
}
