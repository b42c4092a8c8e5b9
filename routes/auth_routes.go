package routes

import (
	"github.com/Velora-Commerce/velora-storefront-backend/controllers/storefront/auth_controller"
	"github.com/Velora-Commerce/velora-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes wires the mock authentication endpoints.
func SetupAuthRoutes(router *gin.RouterGroup, auth *auth_controller.Controller) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/logout", auth.Logout)
	}

	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/me", auth.GetMe)
	}
}
