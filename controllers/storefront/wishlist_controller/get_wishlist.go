package wishlist_controller

import (
	"net/http"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetWishlist godoc
// @Summary Get the session's wishlist
// @Description Returns the saved entries in the order they were added.
// @Tags Storefront - Wishlist
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.WishlistResponse}
// @Router /wishlist [get]
func (ctl *Controller) GetWishlist(c *gin.Context) {
	engine := ctl.wishlistEngine(c)
	if engine == nil {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist fetched successfully", wishlistResponse(engine)))
}
