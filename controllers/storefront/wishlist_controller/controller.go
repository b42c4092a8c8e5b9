package wishlist_controller

import (
	"net/http"

	"github.com/Velora-Commerce/velora-storefront-backend/middleware"
	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/Velora-Commerce/velora-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// Controller serves the guest wishlist endpoints, including the move-to-cart
// flow that spans both engines.
type Controller struct {
	sessions *services.SessionEngines
}

func NewController(sessions *services.SessionEngines) *Controller {
	return &Controller{sessions: sessions}
}

func (ctl *Controller) wishlistEngine(c *gin.Context) *services.WishlistEngine {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not established"))
		return nil
	}
	return ctl.sessions.Wishlist(c.Request.Context(), sessionID)
}

func wishlistResponse(engine *services.WishlistEngine) models.WishlistResponse {
	items := engine.Items()
	return models.WishlistResponse{Items: items, Count: len(items)}
}
