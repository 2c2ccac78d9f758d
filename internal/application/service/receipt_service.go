package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/smartstore/backoffice-api/internal/domain/enum"
	"github.com/smartstore/backoffice-api/internal/domain/finance"
	"github.com/smartstore/backoffice-api/internal/domain/repository"
	"github.com/smartstore/backoffice-api/pkg/apperror"
	"github.com/smartstore/backoffice-api/pkg/pagination"
)

// ReceiptService creates, reads, and removes receipts. Receipts are immutable
// once written, so there is no update.
type ReceiptService struct {
	receiptRepo  repository.ReceiptRepository
	settingsRepo repository.SettingsRepository
}

// NewReceiptService creates a new receipt service
func NewReceiptService(receiptRepo repository.ReceiptRepository, settingsRepo repository.SettingsRepository) *ReceiptService {
	return &ReceiptService{receiptRepo: receiptRepo, settingsRepo: settingsRepo}
}

// ReceiptInput represents a directly recorded money-in entry. Unlike payment
// collection, none of it is allocated against invoices; the amount lowers the
// customer's derived balance as-is.
type ReceiptInput struct {
	UserID       uuid.UUID
	CustomerName string
	Amount       float64
	Mode         string
	Date         time.Time
	Note         *string
}

// CreateReceipt records a standalone money-in entry with the next sequential
// receipt number.
func (s *ReceiptService) CreateReceipt(ctx context.Context, input *ReceiptInput) (*entity.Receipt, error) {
	var fieldErrors []apperror.FieldError
	name := strings.TrimSpace(input.CustomerName)
	if name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "customer_name",
			Message: "Customer name is required",
		})
	}
	amount := finance.Amount(input.Amount)
	if !amount.GreaterThan(decimal.Zero) {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "amount",
			Message: "Amount must be greater than zero",
		})
	}
	if input.Mode != "" && !enum.IsValidPaymentMode(input.Mode) {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "mode",
			Message: "Invalid payment mode",
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	receiptNo, err := s.receiptRepo.NextNumber(ctx, input.UserID, s.receiptPrefix(ctx, input.UserID))
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	receipt := &entity.Receipt{
		UserID:       input.UserID,
		ReceiptNo:    receiptNo,
		CustomerName: name,
		Amount:       amount,
		Date:         date,
		Mode:         enum.ParsePaymentMode(input.Mode),
		Note:         input.Note,
	}
	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// GetReceipt returns a single receipt by ID
func (s *ReceiptService) GetReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// DeleteReceipt removes a receipt. Deleting one raises the customer's
// derived balance by its amount on the next ledger read.
func (s *ReceiptService) DeleteReceipt(ctx context.Context, id uuid.UUID) error {
	receipt, err := s.GetReceipt(ctx, id)
	if err != nil {
		return err
	}
	return s.receiptRepo.Delete(ctx, receipt.ID)
}

// ListReceipts returns a paginated, filtered receipt list
func (s *ReceiptService) ListReceipts(ctx context.Context, userID uuid.UUID, params *repository.ReceiptFilterParams) (*pagination.PaginatedResult[entity.Receipt], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	receipts, total, err := s.receiptRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(receipts, meta), nil
}

func (s *ReceiptService) receiptPrefix(ctx context.Context, userID uuid.UUID) string {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil || settings == nil || settings.ReceiptPrefix == "" {
		return "REC"
	}
	return settings.ReceiptPrefix
}
