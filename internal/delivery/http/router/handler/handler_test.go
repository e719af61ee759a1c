package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpmiddleware "tienda/internal/delivery/http/middleware"
	"tienda/internal/delivery/http/validator"
	"tienda/internal/infra/persistence/memory"
	"tienda/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestServer wires the handlers against real in-memory collections,
// with the same validator and error handler the production server uses.
func setupTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	userRepo := memory.NewUserRepository()
	productRepo := memory.NewProductRepository()
	orderRepo := memory.NewOrderRepository()

	userHandler := NewUserHandler(impl.NewUserService(userRepo, logger), logger)
	productHandler := NewProductHandler(impl.NewCatalogService(productRepo, logger), logger)
	orderHandler := NewOrderHandler(impl.NewOrderService(userRepo, productRepo, orderRepo, logger), logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	e.GET("/health", HealthCheck)
	e.POST("/users", userHandler.RegisterUser)
	e.GET("/users", userHandler.ListUsers)
	e.GET("/users/:id", userHandler.GetUser)
	e.GET("/users/:id/orders", orderHandler.ListOrdersByUser)
	e.POST("/products", productHandler.AddProduct)
	e.GET("/products", productHandler.ListProducts)
	e.GET("/products/:id", productHandler.GetProduct)
	e.DELETE("/products/:id", productHandler.RemoveProduct)
	e.POST("/orders", orderHandler.PlaceOrder)

	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	return payload
}

func dataField(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	data, ok := decodeBody(t, rec)["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %s", rec.Body.String())

	return data
}

func errorCodeField(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errInfo, ok := decodeBody(t, rec)["error"].(map[string]any)
	require.True(t, ok, "response has no error object: %s", rec.Body.String())
	code, _ := errInfo["code"].(string)

	return code
}

func TestHealthCheck(t *testing.T) {
	e := setupTestServer(t)

	rec := doJSON(t, e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterUser_Customer(t *testing.T) {
	e := setupTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/users",
		`{"kind":"customer","name":"Ana","email":"ana@gmail.com","address":"C/ Real, 123"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	data := dataField(t, rec)
	assert.Equal(t, false, data["is_admin"])
	assert.Equal(t, "C/ Real, 123", data["address"])
	assert.Equal(t, "customer", data["kind"])

	// The created user is retrievable by id.
	id, _ := data["id"].(string)
	require.NotEmpty(t, id)
	rec = doJSON(t, e, http.MethodGet, "/users/"+id, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterUser_UnsupportedKind(t *testing.T) {
	e := setupTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/users",
		`{"kind":"merchant","name":"Eve","email":"eve@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCodeField(t, rec))
}

func TestGetUser_NotFound(t *testing.T) {
	e := setupTestServer(t)

	rec := doJSON(t, e, http.MethodGet, "/users/6ba7b810-9dad-11d1-80b4-00c04fd430c8", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", errorCodeField(t, rec))
}

func TestAddProduct_ElectronicFlattensAttributes(t *testing.T) {
	e := setupTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/products",
		`{"kind":"electronic","name":"Auriculares","price":29.90,"stock":10,"warranty_months":24}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	data := dataField(t, rec)
	assert.Equal(t, "electronic", data["kind"])
	assert.Equal(t, float64(24), data["warranty_months"])
	assert.Equal(t, "29.9", data["price"])
}

func TestRemoveProduct(t *testing.T) {
	e := setupTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/products",
		`{"kind":"generic","name":"Taza","price":5.50,"stock":100}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	id, _ := dataField(t, rec)["id"].(string)

	rec = doJSON(t, e, http.MethodDelete, "/products/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Unknown ids answer 404.
	rec = doJSON(t, e, http.MethodDelete, "/products/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlaceOrder_EndToEnd(t *testing.T) {
	e := setupTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/users",
		`{"kind":"cliente","name":"Ana","email":"ana@gmail.com","address":"C/ Real, 123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	userID, _ := dataField(t, rec)["id"].(string)

	rec = doJSON(t, e, http.MethodPost, "/products",
		`{"kind":"electronic","name":"Auriculares","price":29.90,"stock":10,"warranty_months":24}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	headphonesID, _ := dataField(t, rec)["id"].(string)

	rec = doJSON(t, e, http.MethodPost, "/products",
		`{"kind":"apparel","name":"Camiseta","price":12.00,"stock":50,"size":"M","color":"Negro"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	tshirtID, _ := dataField(t, rec)["id"].(string)

	rec = doJSON(t, e, http.MethodPost, "/orders",
		`{"user_id":"`+userID+`","items":[{"product_id":"`+headphonesID+`","quantity":2},{"product_id":"`+tshirtID+`","quantity":1}]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	data := dataField(t, rec)
	assert.Equal(t, "71.8", data["total"])

	// Stock was decremented.
	rec = doJSON(t, e, http.MethodGet, "/products/"+headphonesID, "")
	assert.Equal(t, float64(8), dataField(t, rec)["stock"])
	rec = doJSON(t, e, http.MethodGet, "/products/"+tshirtID, "")
	assert.Equal(t, float64(49), dataField(t, rec)["stock"])

	// The order shows up in the user's history.
	rec = doJSON(t, e, http.MethodGet, "/users/"+userID+"/orders", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	list, ok := decodeBody(t, rec)["data"].([]any)
	require.True(t, ok)
	assert.Len(t, list, 1)
}

func TestPlaceOrder_InsufficientStock(t *testing.T) {
	e := setupTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/users",
		`{"kind":"customer","name":"Ana","email":"ana@gmail.com","address":"C/ Real, 123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	userID, _ := dataField(t, rec)["id"].(string)

	rec = doJSON(t, e, http.MethodPost, "/products",
		`{"kind":"electronic","name":"Auriculares","price":29.90,"stock":8,"warranty_months":24}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	productID, _ := dataField(t, rec)["id"].(string)

	rec = doJSON(t, e, http.MethodPost, "/orders",
		`{"user_id":"`+userID+`","items":[{"product_id":"`+productID+`","quantity":999}]}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INSUFFICIENT_STOCK", errorCodeField(t, rec))

	// Stock unchanged.
	rec = doJSON(t, e, http.MethodGet, "/products/"+productID, "")
	assert.Equal(t, float64(8), dataField(t, rec)["stock"])
}

func TestPlaceOrder_AdminForbidden(t *testing.T) {
	e := setupTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/users",
		`{"kind":"admin","name":"ADMIN","email":"admin@gmail.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	adminID, _ := dataField(t, rec)["id"].(string)

	rec = doJSON(t, e, http.MethodPost, "/orders",
		`{"user_id":"`+adminID+`","items":[]}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "NOT_A_CUSTOMER", errorCodeField(t, rec))
}
