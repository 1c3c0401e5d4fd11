package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/srujan0404/coffee-main/internal/domain"
	apperrors "github.com/srujan0404/coffee-main/pkg/errors"
)

// --- Catalog endpoint tests ---

func testCoffees() []domain.Product {
	return []domain.Product{
		{ID: "C1", Type: domain.ProductTypeCoffee, Name: "Americano"},
		{ID: "C4", Type: domain.ProductTypeCoffee, Name: "Cappuccino"},
		{ID: "C5", Type: domain.ProductTypeCoffee, Name: "Cappuccino"},
	}
}

func TestListCoffees(t *testing.T) {
	router, repos := setupRouter(t)

	repos.catalog.On("ListByType", mock.Anything, domain.ProductTypeCoffee).Return(testCoffees(), nil)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/catalog/coffees", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	assert.Len(t, out["data"], 3)
}

func TestListCoffees_CategoryFilter(t *testing.T) {
	router, repos := setupRouter(t)

	repos.catalog.On("ListByType", mock.Anything, domain.ProductTypeCoffee).Return(testCoffees(), nil)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/catalog/coffees?category=Cappuccino", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	assert.Len(t, out["data"], 2)
}

func TestListCoffees_SearchQuery(t *testing.T) {
	router, repos := setupRouter(t)

	repos.catalog.On("ListByType", mock.Anything, domain.ProductTypeCoffee).Return(testCoffees(), nil)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/catalog/coffees?q=amer", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	data := out["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Americano", data[0].(map[string]any)["name"])
}

func TestListBeans(t *testing.T) {
	router, repos := setupRouter(t)

	beans := []domain.Product{{ID: "B1", Type: domain.ProductTypeBean, Name: "Arabica Coffee Beans"}}
	repos.catalog.On("ListByType", mock.Anything, domain.ProductTypeBean).Return(beans, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/catalog/beans", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	assert.Len(t, out["data"], 1)
}

func TestCategories(t *testing.T) {
	router, repos := setupRouter(t)

	repos.catalog.On("ListByType", mock.Anything, domain.ProductTypeCoffee).Return(testCoffees(), nil)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/catalog/categories", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	assert.Equal(t, []any{"All", "Americano", "Cappuccino"}, out["data"])
}

func TestGetProduct(t *testing.T) {
	router, repos := setupRouter(t)

	repos.catalog.On("GetByID", mock.Anything, "C4").Return(testProduct(), nil)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/catalog/products/C4", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	data := out["data"].(map[string]any)
	assert.Equal(t, "Cappuccino", data["name"])
}

func TestGetProduct_NotFound(t *testing.T) {
	router, repos := setupRouter(t)

	repos.catalog.On("GetByID", mock.Anything, "C99").Return(nil, apperrors.NotFound("product", "C99"))

	rec := doRequest(t, router, http.MethodGet, "/api/v1/catalog/products/C99", "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec))
}

// --- Checkout and order endpoint tests ---

func TestCheckout_Success(t *testing.T) {
	router, repos := setupRouter(t)

	repos.carts.On("Get", mock.Anything, "user-1").Return(testCart("user-1", 2), nil)
	repos.orders.On("Append", mock.Anything, mock.AnythingOfType("domain.Order")).Return(nil)
	repos.carts.On("Delete", mock.Anything, "user-1").Return(nil)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/cart/checkout", "user-1", nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	out := decodeResponse(t, rec)
	data := out["data"].(map[string]any)
	assert.NotEmpty(t, data["id"])
	assert.EqualValues(t, 900, data["total_amount"])
	assert.Equal(t, "$9.00", data["total_display"])
}

func TestCheckout_EmptyCart_Returns400(t *testing.T) {
	router, repos := setupRouter(t)

	repos.carts.On("Get", mock.Anything, "user-1").Return(nil, apperrors.NotFound("cart", "user-1"))

	rec := doRequest(t, router, http.MethodPost, "/api/v1/cart/checkout", "user-1", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", errorCode(t, rec))
}

func TestListOrders(t *testing.T) {
	router, repos := setupRouter(t)

	history := []domain.Order{
		{ID: "order-2", UserID: "user-1", TotalAmount: 900, Currency: "$", PlacedAt: time.Now().UTC()},
		{ID: "order-1", UserID: "user-1", TotalAmount: 450, Currency: "$", PlacedAt: time.Now().UTC()},
	}
	repos.orders.On("List", mock.Anything, "user-1").Return(history, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/orders", "user-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	data := out["data"].(map[string]any)
	items := data["items"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "order-2", items[0].(map[string]any)["id"])
	assert.EqualValues(t, 2, data["total_count"])
}

func TestListOrders_Paginated(t *testing.T) {
	router, repos := setupRouter(t)

	history := make([]domain.Order, 5)
	for i := range history {
		history[i] = domain.Order{ID: string(rune('a' + i)), UserID: "user-1", Currency: "$"}
	}
	repos.orders.On("List", mock.Anything, "user-1").Return(history, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/orders?page=2&per_page=2", "user-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	data := out["data"].(map[string]any)
	items := data["items"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "c", items[0].(map[string]any)["id"])
}

// --- Favorites endpoint tests ---

func TestFavorites_List(t *testing.T) {
	router, repos := setupRouter(t)

	repos.favorites.On("List", mock.Anything, "user-1").Return([]string{"C4"}, nil)
	repos.catalog.On("GetByID", mock.Anything, "C4").Return(testProduct(), nil)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/favorites", "user-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	data := out["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Cappuccino", data[0].(map[string]any)["name"])
}

func TestFavorites_Add(t *testing.T) {
	router, repos := setupRouter(t)

	repos.catalog.On("GetByID", mock.Anything, "C4").Return(testProduct(), nil)
	repos.favorites.On("Add", mock.Anything, "user-1", "C4").Return(nil)

	rec := doRequest(t, router, http.MethodPut, "/api/v1/favorites/C4", "user-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	repos.favorites.AssertExpectations(t)
}

func TestFavorites_Add_UnknownProduct(t *testing.T) {
	router, repos := setupRouter(t)

	repos.catalog.On("GetByID", mock.Anything, "C99").Return(nil, apperrors.NotFound("product", "C99"))

	rec := doRequest(t, router, http.MethodPut, "/api/v1/favorites/C99", "user-1", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFavorites_Remove(t *testing.T) {
	router, repos := setupRouter(t)

	repos.favorites.On("Remove", mock.Anything, "user-1", "C4").Return(nil)

	rec := doRequest(t, router, http.MethodDelete, "/api/v1/favorites/C4", "user-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestFavorites_Remove_NotFound(t *testing.T) {
	router, repos := setupRouter(t)

	repos.favorites.On("Remove", mock.Anything, "user-1", "C4").Return(apperrors.NotFound("favorite", "C4"))

	rec := doRequest(t, router, http.MethodDelete, "/api/v1/favorites/C4", "user-1", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// --- Operational endpoints ---

func TestHealthLive(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
