package store

import (
	"context"

	"go.uber.org/zap"

	"storefront-catalog-service/internal/domain"
)

// Cataloger defines the catalog operations the API layer depends on.
type Cataloger interface {
	Products(ctx context.Context) []domain.Product
	Categories(ctx context.Context) []domain.CategoryNode
	AddProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
	EditProduct(ctx context.Context, id int64, p domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ImportRows(ctx context.Context, rows []domain.Row) domain.ImportResult
}

// Log is the narrow logging interface the store needs.
type Log interface {
	Info(string, ...zap.Field)
	Warn(string, ...zap.Field)
}
