package cart_controller

import (
	"net/http"

	"github.com/Velora-Commerce/velora-storefront-backend/middleware"
	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/Velora-Commerce/velora-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// Controller serves the guest cart endpoints. The engines live in the
// session manager handed in from the composition root; every handler
// resolves its session's engine first.
type Controller struct {
	sessions *services.SessionEngines
}

func NewController(sessions *services.SessionEngines) *Controller {
	return &Controller{sessions: sessions}
}

// cartEngine resolves the request's cart engine from the session cookie.
// Responds with a 500 and returns nil when the session middleware is missing.
func (ctl *Controller) cartEngine(c *gin.Context) *services.CartEngine {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not established"))
		return nil
	}
	return ctl.sessions.Cart(c.Request.Context(), sessionID)
}

// cartResponse builds the full cart view returned after every operation.
func cartResponse(engine *services.CartEngine) models.CartResponse {
	return models.CartResponse{
		Items:     engine.Items(),
		Total:     engine.CartTotal(),
		ItemCount: engine.ItemCount(),
	}
}
