package auth_controller

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/Velora-Commerce/velora-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

const authCookieMaxAge = 24 * 60 * 60

// Login godoc
// @Summary Log in
// @Description Authenticates against the mock user registry and returns a session token. The token is also set as an HTTP-only cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Router /auth/login [post]
func (ctl *Controller) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	user, err := ctl.users.Authenticate(req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid username or password"))
		return
	}
	if err != nil {
		log.Printf("❌ Login failed for %q: %v", req.Username, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Login failed"))
		return
	}

	token, err := services.GenerateUserJWT(user.ID, user.Username, user.Email)
	if err != nil {
		log.Printf("❌ Failed to issue session token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Login failed"))
		return
	}

	setAuthCookie(c, token)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in", models.AuthResponse{
		Token: token,
		User:  user,
	}))
}

func setAuthCookie(c *gin.Context, token string) {
	isProd := os.Getenv("APP_ENV") == "production"
	c.SetCookie(
		"auth_token",
		token,
		authCookieMaxAge,
		"/",
		"",
		isProd,
		true, // HttpOnly
	)
}
