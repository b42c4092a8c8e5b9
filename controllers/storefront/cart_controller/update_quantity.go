package cart_controller

import (
	"net/http"
	"strconv"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// UpdateQuantity godoc
// @Summary Set a line item's quantity
// @Description Sets the absolute quantity for a cart line item. A quantity below 1 removes the line item. Unknown product ids are a no-op.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param productId path int true "Product ID"
// @Param request body models.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse "Invalid product ID or body"
// @Router /cart/items/{productId} [patch]
func (ctl *Controller) UpdateQuantity(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	engine := ctl.cartEngine(c)
	if engine == nil {
		return
	}

	engine.UpdateQuantity(c.Request.Context(), productID, req.Quantity)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", cartResponse(engine)))
}
