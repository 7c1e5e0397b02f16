package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"storefront-catalog-service/internal/catalog"
	"storefront-catalog-service/internal/csvimport"
	"storefront-catalog-service/internal/domain"
	"storefront-catalog-service/internal/store"
)

// Log is the narrow logging interface the handlers need.
type Log interface {
	Info(string, ...zap.Field)
	Warn(string, ...zap.Field)
	Error(string, ...zap.Field)
}

// HTTPHandler translates rendering-surface events (HTTP requests) into calls
// on the catalog store and the pure query engine, and encodes the results
// back. No catalog logic lives here.
type HTTPHandler struct {
	catalog  store.Cataloger
	validate *validator.Validate
	log      Log
}

// NewHTTPHandler creates a new HTTPHandler with dependencies.
func NewHTTPHandler(c store.Cataloger, log Log) *HTTPHandler {
	return &HTTPHandler{
		catalog:  c,
		validate: validator.New(),
		log:      log,
	}
}

// --- Helpers ---

// ErrorResponse defines the structure for JSON error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *HTTPHandler) respondWithError(w http.ResponseWriter, code int, message string) {
	h.respondWithJSON(w, code, ErrorResponse{Error: message})
}

func (h *HTTPHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			h.log.Error("failed to encode JSON response", zap.Error(err))
		}
	}
}

// --- Product Handlers ---

// ProductInput defines the expected payload for creating or editing a
// product. Image is only required to be a non-empty string, not a valid URL.
type ProductInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Category    string  `json:"category" validate:"required,max=255"`
	Subcategory string  `json:"subcategory" validate:"omitempty,max=255"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Image       string  `json:"image" validate:"required,max=2048"`
	Description string  `json:"description" validate:"required"`
}

func (in ProductInput) toDomain() domain.Product {
	return domain.Product{
		Name:        in.Name,
		Category:    in.Category,
		Subcategory: in.Subcategory,
		Price:       in.Price,
		Image:       in.Image,
		Description: in.Description,
	}
}

func (h *HTTPHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	created, err := h.catalog.AddProduct(r.Context(), input.toDomain())
	if err != nil {
		var vErr *store.ValidationError
		if errors.As(err, &vErr) {
			h.respondWithError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		h.log.Error("AddProduct failed", zap.Error(err))
		h.respondWithError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	h.respondWithJSON(w, http.StatusCreated, created)
}

func (h *HTTPHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.productIDParam(w, r)
	if !ok {
		return
	}

	var input ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		h.respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	updated, err := h.catalog.EditProduct(r.Context(), productID, input.toDomain())
	if err != nil {
		var vErr *store.ValidationError
		switch {
		case errors.Is(err, store.ErrProductNotFound):
			h.respondWithError(w, http.StatusNotFound, store.ErrProductNotFound.Error())
		case errors.As(err, &vErr):
			h.respondWithError(w, http.StatusBadRequest, vErr.Error())
		default:
			h.log.Error("EditProduct failed", zap.Int64("id", productID), zap.Error(err))
			h.respondWithError(w, http.StatusInternalServerError, "Failed to update product")
		}
		return
	}

	h.respondWithJSON(w, http.StatusOK, updated)
}

func (h *HTTPHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.productIDParam(w, r)
	if !ok {
		return
	}

	if err := h.catalog.DeleteProduct(r.Context(), productID); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			h.respondWithError(w, http.StatusNotFound, store.ErrProductNotFound.Error())
			return
		}
		h.log.Error("DeleteProduct failed", zap.Int64("id", productID), zap.Error(err))
		h.respondWithError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	h.respondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HTTPHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.productIDParam(w, r)
	if !ok {
		return
	}

	for _, p := range h.catalog.Products(r.Context()) {
		if p.ID == productID {
			h.respondWithJSON(w, http.StatusOK, p)
			return
		}
	}
	h.respondWithError(w, http.StatusNotFound, store.ErrProductNotFound.Error())
}

// PaginationInfo matches the pagination block of list responses.
type PaginationInfo struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// ProductListResponse is the filtered-and-sorted visible product list plus
// the size of the whole catalog, so clients can render "showing X of Y".
type ProductListResponse struct {
	Data        []domain.Product `json:"data"`
	Pagination  PaginationInfo   `json:"pagination"`
	CatalogSize int              `json:"catalog_size"`
}

func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	qParams := r.URL.Query()

	limit, err := strconv.Atoi(qParams.Get("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	page, err := strconv.Atoi(qParams.Get("page"))
	if err != nil || page <= 0 {
		page = 1
	}

	filter := domain.FilterState{Search: qParams.Get("q")}

	if priceStr := qParams.Get("min_price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			h.respondWithError(w, http.StatusBadRequest, "Invalid min_price format")
			return
		}
		filter.MinPrice = &price
	}
	if priceStr := qParams.Get("max_price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			h.respondWithError(w, http.StatusBadRequest, "Invalid max_price format")
			return
		}
		filter.MaxPrice = &price
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		h.respondWithError(w, http.StatusBadRequest, "min_price cannot exceed max_price")
		return
	}

	if keys := qParams.Get("categories"); keys != "" {
		filter.Categories = make(map[string]struct{})
		for _, key := range strings.Split(keys, ",") {
			if key = strings.ToLower(strings.TrimSpace(key)); key != "" {
				filter.Categories[key] = struct{}{}
			}
		}
	}

	sortKey, err := catalog.ParseSortKey(qParams.Get("sort"))
	if err != nil {
		h.respondWithError(w, http.StatusBadRequest, "Invalid sort key. Allowed fields: name, category, price; directions: asc, desc")
		return
	}

	all := h.catalog.Products(r.Context())
	visible := catalog.Sort(catalog.Apply(all, filter), sortKey)

	totalCount := len(visible)
	totalPages := 0
	if totalCount > 0 {
		totalPages = (totalCount + limit - 1) / limit
	}

	start := (page - 1) * limit
	if start > totalCount {
		start = totalCount
	}
	end := start + limit
	if end > totalCount {
		end = totalCount
	}

	h.respondWithJSON(w, http.StatusOK, ProductListResponse{
		Data: visible[start:end],
		Pagination: PaginationInfo{
			Page:       page,
			Limit:      limit,
			TotalItems: totalCount,
			TotalPages: totalPages,
		},
		CatalogSize: len(all),
	})
}

func (h *HTTPHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	suggestions := catalog.Suggest(h.catalog.Products(r.Context()), query)
	if suggestions == nil {
		suggestions = []catalog.Suggestion{}
	}
	h.respondWithJSON(w, http.StatusOK, suggestions)
}

// ImportProducts ingests a raw CSV body. A missing required column or an
// unparseable price rejects the whole import and leaves the catalog
// unchanged; rows with the wrong field count or a blank name/category are
// skipped and counted.
func (h *HTTPHandler) ImportProducts(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 10<<20))
	if err != nil {
		h.respondWithError(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	parsed, err := csvimport.Parse(string(body))
	if err != nil {
		var missingErr *csvimport.MissingColumnsError
		var priceErr *csvimport.InvalidPriceError
		switch {
		case errors.As(err, &missingErr), errors.As(err, &priceErr):
			h.respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("CSV parse failed", zap.Error(err))
			h.respondWithError(w, http.StatusInternalServerError, "Failed to parse CSV")
		}
		return
	}
	if parsed.Skipped > 0 {
		h.log.Warn("CSV rows skipped for field-count mismatch", zap.Int("skipped", parsed.Skipped))
	}

	result := h.catalog.ImportRows(r.Context(), parsed.Rows)
	result.Skipped += parsed.Skipped

	h.respondWithJSON(w, http.StatusOK, result)
}

// --- Category Handlers ---

// SubcategoryView is one subcategory entry of the category index response.
type SubcategoryView struct {
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
}

// CategoryView is one entry of the category index response, shaped for the
// category tree and the filter checkbox list.
type CategoryView struct {
	Name          string            `json:"name"`
	ProductCount  int               `json:"product_count"`
	Subcategories []SubcategoryView `json:"subcategories"`
}

func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	nodes := h.catalog.Categories(r.Context())

	views := make([]CategoryView, 0, len(nodes))
	for _, node := range nodes {
		view := CategoryView{
			Name:          node.Name,
			ProductCount:  len(node.Products),
			Subcategories: make([]SubcategoryView, 0, len(node.Subcategories)),
		}
		for _, sub := range node.Subcategories {
			view.Subcategories = append(view.Subcategories, SubcategoryView{
				Name:         sub,
				ProductCount: node.SubcategoryCount(sub),
			})
		}
		views = append(views, view)
	}

	h.respondWithJSON(w, http.StatusOK, views)
}

func (h *HTTPHandler) productIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "productId")
	productID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || productID <= 0 {
		h.respondWithError(w, http.StatusBadRequest, "Invalid product ID format")
		return 0, false
	}
	return productID, true
}

// --- Route Registration ---

// RegisterRoutes sets up the HTTP routes for the service.
func (h *HTTPHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Post("/", h.CreateProduct)
		r.Get("/", h.ListProducts)
		// Both must precede the {productId} route so the literal segments
		// are not treated as IDs.
		r.Get("/suggestions", h.GetSuggestions)
		r.Post("/import", h.ImportProducts)

		r.Route("/{productId}", func(r chi.Router) {
			r.Get("/", h.GetProductByID)
			r.Put("/", h.UpdateProduct)
			r.Delete("/", h.DeleteProduct)
		})
	})

	r.Get("/api/v1/categories", h.ListCategories)
}
