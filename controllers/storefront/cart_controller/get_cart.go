package cart_controller

import (
	"net/http"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCart godoc
// @Summary Get the session's cart
// @Description Returns the cart line items with the derived total and unit count.
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /cart [get]
func (ctl *Controller) GetCart(c *gin.Context) {
	engine := ctl.cartEngine(c)
	if engine == nil {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", cartResponse(engine)))
}
