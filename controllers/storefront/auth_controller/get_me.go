package auth_controller

import (
	"net/http"

	"github.com/Velora-Commerce/velora-storefront-backend/middleware"
	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetMe godoc
// @Summary Get the authenticated account
// @Description Returns the account behind the current session token.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.User}
// @Failure 401 {object} models.ApiResponse "Not authenticated"
// @Failure 404 {object} models.ApiResponse "Account no longer exists"
// @Router /user/me [get]
func (ctl *Controller) GetMe(c *gin.Context) {
	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	user, found := ctl.users.Lookup(username)
	if !found {
		// Registry is in-memory; a restart invalidates old tokens' accounts.
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Account no longer exists"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Account fetched", user))
}
