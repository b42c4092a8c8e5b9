package cart_controller

import (
	"bytes"
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

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewController(services.NewSessionEngines(services.NewMemoryStore()))

	router := gin.New()
	cart := router.Group("/cart", middleware.SessionMiddleware())
	{
		cart.GET("", controller.GetCart)
		cart.DELETE("", controller.ClearCart)
		cart.POST("/items", controller.AddToCart)
		cart.PATCH("/items/:productId", controller.UpdateQuantity)
		cart.DELETE("/items/:productId", controller.RemoveFromCart)
	}
	return router
}

type cartEnvelope struct {
	Message string              `json:"message"`
	Error   bool                `json:"error"`
	Data    models.CartResponse `json:"data"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, cookies []*http.Cookie) (*httptest.ResponseRecorder, cartEnvelope) {
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
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var envelope cartEnvelope
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	}
	return recorder, envelope
}

func TestGetCart_StartsEmptyAndSetsSessionCookie(t *testing.T) {
	router := newTestRouter()

	recorder, envelope := doJSON(t, router, http.MethodGet, "/cart", nil, nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, envelope.Data.Items)
	assert.Equal(t, 0, envelope.Data.ItemCount)

	var sessionCookie *http.Cookie
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == "session_id" {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie, "session cookie should be set on first request")
	assert.NotEmpty(t, sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
}

func TestAddToCart_MergesAndReportsTotals(t *testing.T) {
	router := newTestRouter()
	session := []*http.Cookie{{Name: "session_id", Value: "test-session"}}

	body := models.AddToCartRequest{ProductID: 1, Title: "Desk Lamp", Price: 100, Quantity: 2}
	recorder, envelope := doJSON(t, router, http.MethodPost, "/cart/items", body, session)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 2, envelope.Data.ItemCount)

	body.Quantity = 3
	recorder, envelope = doJSON(t, router, http.MethodPost, "/cart/items", body, session)
	require.Equal(t, http.StatusOK, recorder.Code)

	require.Len(t, envelope.Data.Items, 1)
	assert.Equal(t, 5, envelope.Data.Items[0].Quantity)
	assert.Equal(t, 5, envelope.Data.ItemCount)
	assert.Equal(t, 500.0, envelope.Data.Total)
}

func TestAddToCart_OmittedQuantityDefaultsToOne(t *testing.T) {
	router := newTestRouter()
	session := []*http.Cookie{{Name: "session_id", Value: "test-session"}}

	body := models.AddToCartRequest{ProductID: 2, Title: "Mug", Price: 8}
	recorder, envelope := doJSON(t, router, http.MethodPost, "/cart/items", body, session)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, envelope.Data.Items, 1)
	assert.Equal(t, 1, envelope.Data.Items[0].Quantity)
}

func TestAddToCart_RejectsMalformedBody(t *testing.T) {
	router := newTestRouter()
	session := []*http.Cookie{{Name: "session_id", Value: "test-session"}}

	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader([]byte("{oops")))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(session[0])
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateQuantity_ZeroRemovesLineItem(t *testing.T) {
	router := newTestRouter()
	session := []*http.Cookie{{Name: "session_id", Value: "test-session"}}

	doJSON(t, router, http.MethodPost, "/cart/items",
		models.AddToCartRequest{ProductID: 1, Title: "A", Price: 10, Quantity: 2}, session)

	recorder, envelope := doJSON(t, router, http.MethodPatch, "/cart/items/1",
		models.UpdateQuantityRequest{Quantity: 0}, session)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, envelope.Data.Items)
}

func TestUpdateQuantity_RejectsNonNumericID(t *testing.T) {
	router := newTestRouter()
	session := []*http.Cookie{{Name: "session_id", Value: "test-session"}}

	recorder, _ := doJSON(t, router, http.MethodPatch, "/cart/items/abc",
		models.UpdateQuantityRequest{Quantity: 2}, session)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRemoveFromCart_ThenClear(t *testing.T) {
	router := newTestRouter()
	session := []*http.Cookie{{Name: "session_id", Value: "test-session"}}

	doJSON(t, router, http.MethodPost, "/cart/items",
		models.AddToCartRequest{ProductID: 1, Title: "A", Price: 10, Quantity: 1}, session)
	doJSON(t, router, http.MethodPost, "/cart/items",
		models.AddToCartRequest{ProductID: 2, Title: "B", Price: 20, Quantity: 1}, session)

	recorder, envelope := doJSON(t, router, http.MethodDelete, "/cart/items/1", nil, session)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, envelope.Data.Items, 1)
	assert.Equal(t, 2, envelope.Data.Items[0].ProductID)

	recorder, envelope = doJSON(t, router, http.MethodDelete, "/cart", nil, session)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, envelope.Data.Items)
	assert.Equal(t, 0.0, envelope.Data.Total)
}

func TestCart_IsolatedPerSession(t *testing.T) {
	router := newTestRouter()
	sessionA := []*http.Cookie{{Name: "session_id", Value: "session-a"}}
	sessionB := []*http.Cookie{{Name: "session_id", Value: "session-b"}}

	doJSON(t, router, http.MethodPost, "/cart/items",
		models.AddToCartRequest{ProductID: 1, Title: "A", Price: 10, Quantity: 1}, sessionA)

	_, envelope := doJSON(t, router, http.MethodGet, "/cart", nil, sessionB)
	assert.Empty(t, envelope.Data.Items)

	_, envelope = doJSON(t, router, http.MethodGet, "/cart", nil, sessionA)
	assert.Len(t, envelope.Data.Items, 1)
}
