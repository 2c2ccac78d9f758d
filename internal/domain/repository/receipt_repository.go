package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/smartstore/backoffice-api/pkg/pagination"
)

// ReceiptFilterParams represents filtering options for listing receipts
type ReceiptFilterParams struct {
	Pagination   *pagination.PaginationParams
	Search       string // matches receipt number or customer name
	CustomerName string
	StartDate    *time.Time
	EndDate      *time.Time
}

// ReceiptRepository defines the interface for receipt data operations.
// Receipts are append-mostly: created, listed, deleted; never edited.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.Receipt) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *ReceiptFilterParams) ([]entity.Receipt, int64, error)
	// ListAll returns every receipt, for ledger aggregation.
	ListAll(ctx context.Context, userID uuid.UUID) ([]entity.Receipt, error)
	NextNumber(ctx context.Context, userID uuid.UUID, prefix string) (string, error)
	// SumAmounts returns the total money received through receipts,
	// optionally restricted to dates on or after since.
	SumAmounts(ctx context.Context, userID uuid.UUID, since *time.Time) (float64, error)
}
