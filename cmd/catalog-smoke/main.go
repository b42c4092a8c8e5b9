package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Velora-Commerce/velora-storefront-backend/config"
	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/Velora-Commerce/velora-storefront-backend/services"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main fetches the upstream catalog once and reports what came back.
// Usage: go run cmd/catalog-smoke/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("VELORA STOREFRONT - Catalog Smoke Check")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	baseURL := config.GetEnv("CATALOG_BASE_URL", services.DefaultCatalogBaseURL)
	pageLimit := config.GetEnvInt("CATALOG_PAGE_LIMIT", 100)
	client := services.NewCatalogClient(baseURL, pageLimit)
	log.Printf("✓ Catalog client pointed at %s", baseURL)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now()
	products, err := client.Products(ctx)
	if err != nil {
		fmt.Printf("❌ Catalog fetch failed: %v\n", err)
		os.Exit(1)
	}
	log.Printf("✓ Fetched %d products in %s", len(products), time.Since(start).Round(time.Millisecond))

	if len(products) == 0 {
		fmt.Println("❌ Upstream returned an empty catalog")
		os.Exit(1)
	}

	// Bucket the catalog against the storefront taxonomy so taxonomy
	// drift upstream shows up here before it shows up in the UI.
	matched := 0
	perCategory := make(map[string]int, len(models.DefaultCategories))
	for _, p := range products {
		for _, cat := range models.DefaultCategories {
			if cat.Matches(p.Category) {
				matched++
				perCategory[cat.ID]++
				break
			}
		}
	}

	fmt.Println()
	fmt.Println("Catalog summary:")
	fmt.Printf("  total products:   %d\n", len(products))
	fmt.Printf("  taxonomy matches: %d\n", matched)
	for _, cat := range models.DefaultCategories {
		fmt.Printf("    %-12s %d\n", cat.ID, perCategory[cat.ID])
	}

	result := services.FilterAndSort(products, models.DefaultFilterSpec(), models.DefaultCategories)
	fmt.Printf("  featured:         %d\n", len(result.Featured))
	fmt.Printf("  regular:          %d\n", len(result.Regular))

	fmt.Println()
	fmt.Println("✅ Catalog smoke check passed")
}
