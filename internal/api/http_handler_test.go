package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront-catalog-service/internal/catalog"
	"storefront-catalog-service/internal/domain"
	"storefront-catalog-service/internal/logger"
	"storefront-catalog-service/internal/store"
)

// MockCataloger is a mock implementation of store.Cataloger
type MockCataloger struct {
	mock.Mock
}

func (m *MockCataloger) Products(ctx context.Context) []domain.Product {
	args := m.Called(ctx)
	var products []domain.Product
	if arg0 := args.Get(0); arg0 != nil {
		products = arg0.([]domain.Product)
	}
	return products
}

func (m *MockCataloger) Categories(ctx context.Context) []domain.CategoryNode {
	args := m.Called(ctx)
	var nodes []domain.CategoryNode
	if arg0 := args.Get(0); arg0 != nil {
		nodes = arg0.([]domain.CategoryNode)
	}
	return nodes
}

func (m *MockCataloger) AddProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCataloger) EditProduct(ctx context.Context, id int64, p domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCataloger) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCataloger) ImportRows(ctx context.Context, rows []domain.Row) domain.ImportResult {
	args := m.Called(ctx, rows)
	return args.Get(0).(domain.ImportResult)
}

// Helper for setting up tests with a chi router and handler
func setupTestServer(t *testing.T, c store.Cataloger) *httptest.Server {
	t.Helper()
	handler := NewHTTPHandler(c, &logger.Logger{})
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return httptest.NewServer(router)
}

func fixtureProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "wireless headphones", Category: "electronics", Subcategory: "audio", Price: 7500, Image: "http://img/1", Description: "over-ear"},
		{ID: 2, Name: "smartphone", Category: "electronics", Subcategory: "mobile", Price: 49999, Image: "http://img/2", Description: "128gb"},
		{ID: 3, Name: "running shoes", Category: "clothing", Subcategory: "footwear", Price: 2999, Image: "http://img/3", Description: "lightweight"},
	}
}

func TestHTTPHandler_CreateProduct_Success(t *testing.T) {
	mockCat := new(MockCataloger)
	server := setupTestServer(t, mockCat)
	defer server.Close()

	input := ProductInput{
		Name:        "desk lamp",
		Category:    "home",
		Subcategory: "lighting",
		Price:       1160,
		Image:       "http://img/5",
		Description: "adjustable led lamp",
	}
	created := input.toDomain()
	created.ID = 13

	mockCat.On("AddProduct", mock.Anything, input.toDomain()).Return(&created, nil).Once()

	reqBody, _ := json.Marshal(input)
	res, err := http.Post(server.URL+"/api/v1/products", "application/json", bytes.NewBuffer(reqBody))
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusCreated, res.StatusCode)

	var got domain.Product
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, created, got)

	mockCat.AssertExpectations(t)
}

func TestHTTPHandler_CreateProduct_ValidationFailure(t *testing.T) {
	mockCat := new(MockCataloger)
	server := setupTestServer(t, mockCat)
	defer server.Close()

	// price missing entirely
	res, err := http.Post(server.URL+"/api/v1/products", "application/json",
		strings.NewReader(`{"name":"x","category":"y","image":"z","description":"d"}`))
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	mockCat.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything)
}

func TestHTTPHandler_CreateProduct_StoreValidationError(t *testing.T) {
	mockCat := new(MockCataloger)
	server := setupTestServer(t, mockCat)
	defer server.Close()

	// passes the adapter's struct validation, rejected by the store
	// (whitespace-only name)
	mockCat.On("AddProduct", mock.Anything, mock.Anything).
		Return(nil, &store.ValidationError{Field: "name", Reason: "must not be empty"}).Once()

	res, err := http.Post(server.URL+"/api/v1/products", "application/json",
		strings.NewReader(`{"name":"   ","category":"y","price":10,"image":"z","description":"d"}`))
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	mockCat.AssertExpectations(t)
}

func TestHTTPHandler_GetProductByID(t *testing.T) {
	mockCat := new(MockCataloger)
	server := setupTestServer(t, mockCat)
	defer server.Close()

	mockCat.On("Products", mock.Anything).Return(fixtureProducts()).Twice()

	res, err := http.Get(server.URL + "/api/v1/products/2")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got domain.Product
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, int64(2), got.ID)

	res, err = http.Get(server.URL + "/api/v1/products/999")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestHTTPHandler_UpdateProduct_NotFound(t *testing.T) {
	mockCat := new(MockCataloger)
	server := setupTestServer(t, mockCat)
	defer server.Close()

	mockCat.On("EditProduct", mock.Anything, int64(99), mock.Anything).
		Return(nil, store.ErrProductNotFound).Once()

	body := `{"name":"x","category":"y","price":10,"image":"z","description":"d"}`
	req, _ := http.NewRequest(http.MethodPut, server.URL+"/api/v1/products/99", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	mockCat.AssertExpectations(t)
}

func TestHTTPHandler_DeleteProduct(t *testing.T) {
	mockCat := new(MockCataloger)
	server := setupTestServer(t, mockCat)
	defer server.Close()

	mockCat.On("DeleteProduct", mock.Anything, int64(3)).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, server.URL+"/api/v1/products/3", nil)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	mockCat.AssertExpectations(t)
}

func TestHTTPHandler_ListProducts_FiltersAndSorts(t *testing.T) {
	mockCat := new(MockCataloger)
	server := setupTestServer(t, mockCat)
	defer server.Close()

	mockCat.On("Products", mock.Anything).Return(fixtureProducts()).Once()

	res, err := http.Get(server.URL + "/api/v1/products?categories=electronics&sort=price-desc")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got ProductListResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	require.Len(t, got.Data, 2)
	assert.Equal(t, int64(2), got.Data[0].ID, "highest price first")
	assert.Equal(t, int64(1), got.Data[1].ID)
	assert.Equal(t, 2, got.Pagination.TotalItems)
	assert.Equal(t, 3, got.CatalogSize)
}

func TestHTTPHandler_ListProducts_BadParams(t *testing.T) {
	mockCat := new(MockCataloger)
	server := setupTestServer(t, mockCat)
	defer server.Close()

	for _, query := range []string{
		"?sort=stock-asc",
		"?min_price=abc",
		"?max_price=-1",
		"?min_price=100&max_price=50",
	} {
		res, err := http.Get(server.URL + "/api/v1/products" + query)
		require.NoError(t, err)
		res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "query %s must be rejected", query)
	}
	mockCat.AssertNotCalled(t, "Products", mock.Anything)
}

func TestHTTPHandler_ImportProducts_Success(t *testing.T) {
	mockCat := new(MockCataloger)
	server := setupTestServer(t, mockCat)
	defer server.Close()

	// row3 has a wrong field count: skipped by the parser, surfaced in the
	// combined skip count.
	csvBody := "name,category,price,image,description\n" +
		"Mug,home,300,http://x,desc\n" +
		"Pen,office,10,http://y\n" +
		"Lamp,home,900,http://z,desc3"

	mockCat.On("ImportRows", mock.Anything, mock.MatchedBy(func(rows []domain.Row) bool {
		return len(rows) == 2 && rows[0].Name == "Mug" && rows[1].Name == "Lamp"
	})).Return(domain.ImportResult{Imported: 2, Skipped: 0}).Once()

	res, err := http.Post(server.URL+"/api/v1/products/import", "text/csv", strings.NewReader(csvBody))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got domain.ImportResult
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, 2, got.Imported)
	assert.Equal(t, 1, got.Skipped)

	mockCat.AssertExpectations(t)
}

func TestHTTPHandler_ImportProducts_InvalidPriceRejectsWholeImport(t *testing.T) {
	mockCat := new(MockCataloger)
	server := setupTestServer(t, mockCat)
	defer server.Close()

	csvBody := "name,category,price,image,description\n" +
		`"Mug","home",300,"http://x","desc"` + "\n" +
		`"Pen","office","free","http://y","desc2"`

	res, err := http.Post(server.URL+"/api/v1/products/import", "text/csv", strings.NewReader(csvBody))
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var errRes ErrorResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&errRes))
	assert.Contains(t, errRes.Error, "invalid price in row 3")

	mockCat.AssertNotCalled(t, "ImportRows", mock.Anything, mock.Anything)
}

func TestHTTPHandler_ImportProducts_MissingColumns(t *testing.T) {
	mockCat := new(MockCataloger)
	server := setupTestServer(t, mockCat)
	defer server.Close()

	res, err := http.Post(server.URL+"/api/v1/products/import", "text/csv",
		strings.NewReader("name,price\nMug,300"))
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var errRes ErrorResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&errRes))
	assert.Contains(t, errRes.Error, "category")
	assert.Contains(t, errRes.Error, "image")
	assert.Contains(t, errRes.Error, "description")

	mockCat.AssertNotCalled(t, "ImportRows", mock.Anything, mock.Anything)
}

func TestHTTPHandler_GetSuggestions(t *testing.T) {
	mockCat := new(MockCataloger)
	server := setupTestServer(t, mockCat)
	defer server.Close()

	mockCat.On("Products", mock.Anything).Return(fixtureProducts()).Once()

	res, err := http.Get(server.URL + "/api/v1/products/suggestions?q=wireless")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got []catalog.Suggestion
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "<mark>wireless</mark> headphones", got[0].Display)
}

func TestHTTPHandler_GetSuggestions_EmptyQuery(t *testing.T) {
	mockCat := new(MockCataloger)
	server := setupTestServer(t, mockCat)
	defer server.Close()

	mockCat.On("Products", mock.Anything).Return(fixtureProducts()).Once()

	res, err := http.Get(server.URL + "/api/v1/products/suggestions")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	body := new(bytes.Buffer)
	_, err = body.ReadFrom(res.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", body.String(), "empty query yields an empty list, not null")
}

func TestHTTPHandler_ListCategories(t *testing.T) {
	mockCat := new(MockCataloger)
	server := setupTestServer(t, mockCat)
	defer server.Close()

	products := fixtureProducts()
	mockCat.On("Categories", mock.Anything).Return([]domain.CategoryNode{
		{
			Name:          "electronics",
			Subcategories: []string{"audio", "mobile"},
			Products:      products[:2],
		},
		{
			Name:          "clothing",
			Subcategories: []string{"footwear"},
			Products:      products[2:],
		},
	}).Once()

	res, err := http.Get(server.URL + "/api/v1/categories")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got []CategoryView
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "electronics", got[0].Name)
	assert.Equal(t, 2, got[0].ProductCount)
	assert.Equal(t, []SubcategoryView{{Name: "audio", ProductCount: 1}, {Name: "mobile", ProductCount: 1}}, got[0].Subcategories)
}
