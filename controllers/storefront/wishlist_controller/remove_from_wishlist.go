package wishlist_controller

import (
	"net/http"
	"strconv"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// RemoveFromWishlist godoc
// @Summary Remove a wishlist entry
// @Description Deletes the entry for the given product id. Unknown ids are a no-op.
// @Tags Storefront - Wishlist
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.WishlistResponse}
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Router /wishlist/items/{productId} [delete]
func (ctl *Controller) RemoveFromWishlist(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	engine := ctl.wishlistEngine(c)
	if engine == nil {
		return
	}

	engine.RemoveFromWishlist(c.Request.Context(), productID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product removed from wishlist", wishlistResponse(engine)))
}
