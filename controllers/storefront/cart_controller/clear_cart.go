package cart_controller

import (
	"net/http"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// ClearCart godoc
// @Summary Empty the cart
// @Description Removes every line item from the session's cart.
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /cart [delete]
func (ctl *Controller) ClearCart(c *gin.Context) {
	engine := ctl.cartEngine(c)
	if engine == nil {
		return
	}

	engine.ClearCart(c.Request.Context())

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", cartResponse(engine)))
}
