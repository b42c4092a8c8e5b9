package routes

import (
	"github.com/Velora-Commerce/velora-storefront-backend/controllers/storefront/cart_controller"
	"github.com/Velora-Commerce/velora-storefront-backend/controllers/storefront/wishlist_controller"
	"github.com/Velora-Commerce/velora-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupCartRoutes wires the guest cart and wishlist endpoints. Both groups
// require a session cookie, minted on first contact by the session
// middleware.
func SetupCartRoutes(
	router *gin.RouterGroup,
	carts *cart_controller.Controller,
	wishlists *wishlist_controller.Controller,
) {
	cart := router.Group("/cart")
	cart.Use(middleware.SessionMiddleware())
	{
		cart.GET("", carts.GetCart)
		cart.DELETE("", carts.ClearCart)
		cart.POST("/items", carts.AddToCart)
		cart.PATCH("/items/:productId", carts.UpdateQuantity)
		cart.DELETE("/items/:productId", carts.RemoveFromCart)
	}

	wishlist := router.Group("/wishlist")
	wishlist.Use(middleware.SessionMiddleware())
	{
		wishlist.GET("", wishlists.GetWishlist)
		wishlist.POST("/items", wishlists.AddToWishlist)
		wishlist.DELETE("/items/:productId", wishlists.RemoveFromWishlist)
		wishlist.POST("/items/:productId/move-to-cart", wishlists.MoveToCart)
	}
}
