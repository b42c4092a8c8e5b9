package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Velora-Commerce/velora-storefront-backend/cache"
	"github.com/Velora-Commerce/velora-storefront-backend/models"
)

const DefaultCatalogBaseURL = "https://dummyjson.com"

// ErrProductNotFound reports an id the upstream catalog doesn't know.
var ErrProductNotFound = errors.New("product not found")

// CatalogClient reads the external product catalog. The upstream is a public
// demo API: every call is a plain fetch with a timeout, no retries. List
// results go through the catalog cache so page views don't hammer the API.
type CatalogClient struct {
	baseURL    string
	pageLimit  int
	httpClient *http.Client
}

// NewCatalogClient builds a client for the given base URL ("" selects the
// public demo API). pageLimit caps how many products one list call returns.
func NewCatalogClient(baseURL string, pageLimit int) *CatalogClient {
	if baseURL == "" {
		baseURL = DefaultCatalogBaseURL
	}
	if pageLimit <= 0 {
		pageLimit = 100
	}
	return &CatalogClient{
		baseURL:    baseURL,
		pageLimit:  pageLimit,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// productPayload is the raw upstream shape before normalization.
type productPayload struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Stock       *int     `json:"stock"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Thumbnail   string   `json:"thumbnail"`
	Images      []string `json:"images"`
	Meta        *struct {
		CreatedAt string `json:"createdAt"`
	} `json:"meta"`
}

type productListPayload struct {
	Products []productPayload `json:"products"`
	Total    int              `json:"total"`
}

// Products returns the full catalog list, served from the TTL cache when
// fresh.
func (client *CatalogClient) Products(ctx context.Context) ([]models.Product, error) {
	if products, ok := cache.GetProducts(); ok {
		return products, nil
	}

	endpoint := fmt.Sprintf("%s/products?limit=%d", client.baseURL, client.pageLimit)
	products, err := client.fetchList(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	cache.SetProducts(products)
	return products, nil
}

// ProductByID looks up a single product. A 404 from upstream surfaces as
// ErrProductNotFound.
func (client *CatalogClient) ProductByID(ctx context.Context, id int) (models.Product, error) {
	endpoint := fmt.Sprintf("%s/products/%d", client.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Product{}, err
	}

	res, err := client.httpClient.Do(req)
	if err != nil {
		return models.Product{}, fmt.Errorf("catalog fetch failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return models.Product{}, ErrProductNotFound
	}
	if res.StatusCode != http.StatusOK {
		return models.Product{}, fmt.Errorf("catalog responded with status %d", res.StatusCode)
	}

	var payload productPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return models.Product{}, fmt.Errorf("failed to decode product: %w", err)
	}
	return normalizeProduct(payload, time.Now()), nil
}

// Search runs the upstream substring search.
func (client *CatalogClient) Search(ctx context.Context, query string) ([]models.Product, error) {
	endpoint := fmt.Sprintf("%s/products/search?q=%s", client.baseURL, url.QueryEscape(query))
	return client.fetchList(ctx, endpoint)
}

// ByCategory lists products carrying one upstream category code.
func (client *CatalogClient) ByCategory(ctx context.Context, apiCategory string) ([]models.Product, error) {
	endpoint := fmt.Sprintf("%s/products/category/%s", client.baseURL, url.PathEscape(apiCategory))
	return client.fetchList(ctx, endpoint)
}

func (client *CatalogClient) fetchList(ctx context.Context, endpoint string) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	res, err := client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog responded with status %d", res.StatusCode)
	}

	var payload productListPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode product list: %w", err)
	}

	ingestedAt := time.Now()
	products := make([]models.Product, 0, len(payload.Products))
	for _, raw := range payload.Products {
		products = append(products, normalizeProduct(raw, ingestedAt))
	}
	return products, nil
}

// normalizeProduct applies the boundary defaults exactly once: stock 0,
// images empty, created-at falling back to ingestion time when the upstream
// omits or mangles it.
func normalizeProduct(raw productPayload, ingestedAt time.Time) models.Product {
	stock := 0
	if raw.Stock != nil {
		stock = *raw.Stock
	}

	images := raw.Images
	if images == nil {
		images = []string{}
	}

	createdAt := ingestedAt
	if raw.Meta != nil && raw.Meta.CreatedAt != "" {
		if parsed, err := time.Parse(time.RFC3339, raw.Meta.CreatedAt); err == nil {
			createdAt = parsed
		}
	}

	return models.Product{
		ID:          raw.ID,
		Title:       raw.Title,
		Description: raw.Description,
		Price:       raw.Price,
		Rating:      raw.Rating,
		Stock:       stock,
		Brand:       raw.Brand,
		Category:    raw.Category,
		Thumbnail:   raw.Thumbnail,
		Images:      images,
		CreatedAt:   createdAt,
	}
}
