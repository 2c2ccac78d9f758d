package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/smartstore/backoffice-api/pkg/pagination"
)

// PurchaseFilterParams represents filtering options for listing purchases
type PurchaseFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string // matches purchase number or supplier name
	StartDate  *time.Time
	EndDate    *time.Time
}

// PurchaseRepository defines the interface for purchase data operations
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)
	Update(ctx context.Context, purchase *entity.Purchase) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *PurchaseFilterParams) ([]entity.Purchase, int64, error)
	NextNumber(ctx context.Context, userID uuid.UUID, prefix string) (string, error)
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
}
