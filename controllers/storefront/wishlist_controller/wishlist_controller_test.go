package wishlist_controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Velora-Commerce/velora-storefront-backend/middleware"
	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/Velora-Commerce/velora-storefront-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSetup() (*gin.Engine, *services.SessionEngines) {
	gin.SetMode(gin.TestMode)
	sessions := services.NewSessionEngines(services.NewMemoryStore())
	controller := NewController(sessions)

	router := gin.New()
	wishlist := router.Group("/wishlist", middleware.SessionMiddleware())
	{
		wishlist.GET("", controller.GetWishlist)
		wishlist.POST("/items", controller.AddToWishlist)
		wishlist.DELETE("/items/:productId", controller.RemoveFromWishlist)
		wishlist.POST("/items/:productId/move-to-cart", controller.MoveToCart)
	}
	return router, sessions
}

type wishlistEnvelope struct {
	Message string                  `json:"message"`
	Error   bool                    `json:"error"`
	Data    models.WishlistResponse `json:"data"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, wishlistEnvelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "test-session"})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var envelope wishlistEnvelope
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	}
	return recorder, envelope
}

func TestAddToWishlist_IsIdempotent(t *testing.T) {
	router, _ := newTestSetup()
	body := models.AddToWishlistRequest{ProductID: 1, Title: "Desk Lamp", Price: 30}

	recorder, envelope := doJSON(t, router, http.MethodPost, "/wishlist/items", body)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, envelope.Data.Count)

	recorder, envelope = doJSON(t, router, http.MethodPost, "/wishlist/items", body)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, envelope.Data.Count)
}

func TestWishlist_PreservesInsertionOrder(t *testing.T) {
	router, _ := newTestSetup()

	doJSON(t, router, http.MethodPost, "/wishlist/items", models.AddToWishlistRequest{ProductID: 3, Title: "C", Price: 30})
	doJSON(t, router, http.MethodPost, "/wishlist/items", models.AddToWishlistRequest{ProductID: 1, Title: "A", Price: 10})

	_, envelope := doJSON(t, router, http.MethodGet, "/wishlist", nil)
	require.Len(t, envelope.Data.Items, 2)
	assert.Equal(t, 3, envelope.Data.Items[0].ProductID)
	assert.Equal(t, 1, envelope.Data.Items[1].ProductID)
}

func TestRemoveFromWishlist(t *testing.T) {
	router, _ := newTestSetup()

	doJSON(t, router, http.MethodPost, "/wishlist/items", models.AddToWishlistRequest{ProductID: 1, Title: "A", Price: 10})

	recorder, envelope := doJSON(t, router, http.MethodDelete, "/wishlist/items/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 0, envelope.Data.Count)

	// Unknown ids are a no-op, not an error.
	recorder, _ = doJSON(t, router, http.MethodDelete, "/wishlist/items/42", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestMoveToCart_TransfersSnapshot(t *testing.T) {
	router, sessions := newTestSetup()

	doJSON(t, router, http.MethodPost, "/wishlist/items",
		models.AddToWishlistRequest{ProductID: 1, Title: "Desk Lamp", Price: 30, Thumbnail: "lamp.jpg"})

	recorder, envelope := doJSON(t, router, http.MethodPost, "/wishlist/items/1/move-to-cart", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 0, envelope.Data.Count)

	cart := sessions.Cart(context.Background(), "test-session")
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ProductID)
	assert.Equal(t, "Desk Lamp", items[0].Title)
	assert.Equal(t, 30.0, items[0].Price)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestMoveToCart_UnknownProductIs404(t *testing.T) {
	router, _ := newTestSetup()

	recorder, _ := doJSON(t, router, http.MethodPost, "/wishlist/items/99/move-to-cart", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
