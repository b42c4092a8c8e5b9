// @title Velora Storefront API
// @version 1.0
// @description Velora storefront backend: catalog browsing, cart, wishlist, mock auth
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Velora-Commerce/velora-storefront-backend/config"
	"github.com/Velora-Commerce/velora-storefront-backend/controllers/storefront/auth_controller"
	"github.com/Velora-Commerce/velora-storefront-backend/controllers/storefront/cart_controller"
	"github.com/Velora-Commerce/velora-storefront-backend/controllers/storefront/category_controller"
	"github.com/Velora-Commerce/velora-storefront-backend/controllers/storefront/filter_controller"
	"github.com/Velora-Commerce/velora-storefront-backend/controllers/storefront/product_controller"
	"github.com/Velora-Commerce/velora-storefront-backend/controllers/storefront/wishlist_controller"
	"github.com/Velora-Commerce/velora-storefront-backend/middleware"
	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/Velora-Commerce/velora-storefront-backend/routes"
	"github.com/Velora-Commerce/velora-storefront-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis backs cart/wishlist persistence and the rate limiter
	config.ConnectRedis()
	defer config.CloseRedis()

	// ✅ Initialize JWT Service for the mock auth flow
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// Root composition: every engine and collaborator is built here and
	// handed to the controllers that need it.
	store := services.NewRedisStore(config.RedisClient)
	sessions := services.NewSessionEngines(store)

	catalog := services.NewCatalogClient(
		config.GetEnv("CATALOG_BASE_URL", ""),
		config.GetEnvInt("CATALOG_PAGE_LIMIT", 100),
	)
	taxonomy := models.DefaultCategories
	userRegistry := services.NewUserRegistry()
	log.Println("✅ Engines and catalog client initialized")

	productCtl := product_controller.NewController(catalog, taxonomy)
	categoryCtl := category_controller.NewController(catalog, taxonomy)
	filterCtl := filter_controller.NewController(catalog, taxonomy)
	cartCtl := cart_controller.NewController(sessions)
	wishlistCtl := wishlist_controller.NewController(sessions)
	authCtl := auth_controller.NewController(userRegistry)

	corsCfg := cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(300, time.Minute))

	routes.SetupStorefrontRoutes(api, productCtl, categoryCtl, filterCtl)
	routes.SetupCartRoutes(api, cartCtl, wishlistCtl)
	routes.SetupAuthRoutes(api, authCtl)
	log.Println("✅ Storefront routes registered")

	port := config.GetEnv("PORT", "8081")
	fmt.Println("🚀 Server is running on http://localhost:" + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server exited: %v", err)
	}
}

func allowedOrigins() []string {
	raw := config.GetEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")
	origins := strings.Split(raw, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}
