package cart_controller

import (
	"net/http"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// AddToCart godoc
// @Summary Add a product to the cart
// @Description Adds the product snapshot at the given quantity. Adding a product already in the cart increments its quantity; the original price snapshot is kept.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Product snapshot and quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Router /cart/items [post]
func (ctl *Controller) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	engine := ctl.cartEngine(c)
	if engine == nil {
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	engine.AddToCart(c.Request.Context(), req.Addable(), quantity)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product added to cart", cartResponse(engine)))
}
