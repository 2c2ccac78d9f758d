package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/smartstore/backoffice-api/pkg/pagination"
)

// ProductFilterParams represents filtering options for listing products
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string // matches name or barcode
	LowStock   bool
	SortBy     string
	SortOrder  string
}

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByIDs batch-fetches products to avoid N+1 lookups during invoice
	// assembly.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	GetByBarcode(ctx context.Context, userID uuid.UUID, barcode string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *ProductFilterParams) ([]entity.Product, int64, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]entity.Product, error)
	// AdjustStock adds delta (negative for sales, positive for purchases and
	// reversals) to the product's stock. No reservation is taken between the
	// sufficiency check and this write.
	AdjustStock(ctx context.Context, id uuid.UUID, delta float64) error
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
	CountLowStock(ctx context.Context, userID uuid.UUID) (int64, error)
}
