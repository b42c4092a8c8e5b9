package auth_controller

import (
	"net/http"
	"os"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Log out
// @Description Logs out the authenticated user by clearing the auth_token cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse "Logged out"
// @Router /auth/logout [post]
func (ctl *Controller) Logout(c *gin.Context) {
	isProd := os.Getenv("APP_ENV") == "production"
	// delete auth_token (must match name, path, domain, secure, httpOnly)
	c.SetCookie(
		"auth_token",
		"",
		-1, // MaxAge < 0 -> delete
		"/",
		"",
		isProd,
		true,
	)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
