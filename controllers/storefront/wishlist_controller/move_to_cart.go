package wishlist_controller

import (
	"net/http"
	"strconv"

	"github.com/Velora-Commerce/velora-storefront-backend/middleware"
	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// MoveToCart godoc
// @Summary Move a wishlist entry into the cart
// @Description Adds the saved snapshot to the cart at quantity 1, then removes it from the wishlist.
// @Tags Storefront - Wishlist
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.WishlistResponse}
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 404 {object} models.ApiResponse "Product not on wishlist"
// @Router /wishlist/items/{productId}/move-to-cart [post]
func (ctl *Controller) MoveToCart(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not established"))
		return
	}

	ctx := c.Request.Context()
	wishlist := ctl.sessions.Wishlist(ctx, sessionID)

	entry, found := wishlist.Entry(productID)
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not on wishlist"))
		return
	}

	ctl.sessions.Cart(ctx, sessionID).AddToCart(ctx, entry.Addable(), 1)
	wishlist.RemoveFromWishlist(ctx, productID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product moved to cart", wishlistResponse(wishlist)))
}
