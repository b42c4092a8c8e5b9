package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/Velora-Commerce/velora-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// Register godoc
// @Summary Register a new account
// @Description Creates a mock account and returns a session token, logging the new user straight in.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Account details"
// @Success 201 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 409 {object} models.ApiResponse "Username already taken"
// @Router /auth/register [post]
func (ctl *Controller) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	user, err := ctl.users.Register(req)
	if errors.Is(err, services.ErrUsernameTaken) {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Username already taken"))
		return
	}
	if err != nil {
		log.Printf("❌ Registration failed for %q: %v", req.Username, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Registration failed"))
		return
	}

	token, err := services.GenerateUserJWT(user.ID, user.Username, user.Email)
	if err != nil {
		log.Printf("❌ Failed to issue session token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Registration failed"))
		return
	}

	setAuthCookie(c, token)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created", models.AuthResponse{
		Token: token,
		User:  user,
	}))
}
