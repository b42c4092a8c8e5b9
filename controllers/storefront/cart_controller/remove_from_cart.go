package cart_controller

import (
	"net/http"
	"strconv"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// RemoveFromCart godoc
// @Summary Remove a line item
// @Description Deletes the line item for the given product id. Unknown ids are a no-op.
// @Tags Storefront - Cart
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Router /cart/items/{productId} [delete]
func (ctl *Controller) RemoveFromCart(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	engine := ctl.cartEngine(c)
	if engine == nil {
		return
	}

	engine.RemoveFromCart(c.Request.Context(), productID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product removed from cart", cartResponse(engine)))
}
