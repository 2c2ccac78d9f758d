package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/smartstore/backoffice-api/internal/domain/enum"
	"github.com/smartstore/backoffice-api/pkg/pagination"
)

// InvoiceFilterParams represents filtering options for listing invoices
type InvoiceFilterParams struct {
	Pagination   *pagination.PaginationParams
	Search       string // matches invoice number or customer name
	Status       *enum.PaymentStatus
	CustomerName string
	StartDate    *time.Time
	EndDate      *time.Time
	SortBy       string
	SortOrder    string
}

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	// GetByID returns the invoice with its lines, or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByNumber(ctx context.Context, invoiceNo string) (*entity.Invoice, error)
	// Update replaces the invoice record and its lines wholesale.
	Update(ctx context.Context, invoice *entity.Invoice) error
	// UpdatePayment persists only the financial fields (AmountPaid,
	// BalanceDue, PaymentStatus) touched by payment allocation.
	UpdatePayment(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	// ListAll returns every invoice with lines, for ledger aggregation.
	ListAll(ctx context.Context, userID uuid.UUID) ([]entity.Invoice, error)
	// ListOpenByCustomer returns the customer's non-Paid invoices matched
	// case-insensitively on name, oldest date first.
	ListOpenByCustomer(ctx context.Context, userID uuid.UUID, customerName string) ([]entity.Invoice, error)
	// NextNumber returns the next sequential invoice number for the prefix,
	// e.g. "SAL-0007".
	NextNumber(ctx context.Context, userID uuid.UUID, prefix string) (string, error)
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
	// SumTotals returns total billed and total outstanding across all
	// invoices, optionally restricted to dates on or after since.
	SumTotals(ctx context.Context, userID uuid.UUID, since *time.Time) (billed, due float64, err error)
}
