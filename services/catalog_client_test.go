package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Velora-Commerce/velora-storefront-backend/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogClient_ProductsNormalizesPayload(t *testing.T) {
	cache.Invalidate()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"products": [
				{"id": 1, "title": "Phone", "price": 699, "rating": 4.6, "stock": 12,
				 "category": "smartphones", "images": ["a.jpg"],
				 "meta": {"createdAt": "2024-05-01T10:00:00Z"}},
				{"id": 2, "title": "Bare", "price": 10, "rating": 3.0,
				 "category": "groceries"}
			],
			"total": 2
		}`))
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL, 100)
	products, err := client.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, 12, products[0].Stock)
	assert.Equal(t, []string{"a.jpg"}, products[0].Images)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), products[0].CreatedAt)

	// Missing fields take boundary defaults.
	assert.Equal(t, 0, products[1].Stock)
	assert.NotNil(t, products[1].Images)
	assert.Empty(t, products[1].Images)
	assert.WithinDuration(t, time.Now(), products[1].CreatedAt, 5*time.Second)
}

func TestCatalogClient_ProductsServedFromCache(t *testing.T) {
	cache.Invalidate()
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"products": [{"id": 1, "title": "Once", "price": 5}], "total": 1}`))
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL, 100)
	_, err := client.Products(context.Background())
	require.NoError(t, err)
	_, err = client.Products(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	cache.Invalidate()
	_, err = client.Products(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCatalogClient_ProductByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/1":
			w.Write([]byte(`{"id": 1, "title": "Phone", "price": 699, "stock": 3}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL, 100)

	p, err := client.ProductByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Phone", p.Title)
	assert.Equal(t, 3, p.Stock)

	_, err = client.ProductByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogClient_UpstreamErrorSurfaces(t *testing.T) {
	cache.Invalidate()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL, 100)
	_, err := client.Products(context.Background())
	assert.ErrorContains(t, err, "status 500")

	_, err = client.ProductByID(context.Background(), 1)
	assert.ErrorContains(t, err, "status 500")
}

func TestCatalogClient_SearchAndByCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/search":
			assert.Equal(t, "desk lamp", r.URL.Query().Get("q"))
			w.Write([]byte(`{"products": [{"id": 4, "title": "Desk Lamp", "price": 30}], "total": 1}`))
		case "/products/category/laptops":
			w.Write([]byte(`{"products": [{"id": 5, "title": "Laptop", "price": 999}], "total": 1}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL, 100)

	results, err := client.Search(context.Background(), "desk lamp")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Desk Lamp", results[0].Title)

	results, err = client.ByCategory(context.Background(), "laptops")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 5, results[0].ID)
}
