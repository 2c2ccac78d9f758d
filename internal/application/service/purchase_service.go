package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/smartstore/backoffice-api/internal/domain/finance"
	"github.com/smartstore/backoffice-api/internal/domain/repository"
	"github.com/smartstore/backoffice-api/pkg/apperror"
	"github.com/smartstore/backoffice-api/pkg/pagination"
)

// PurchaseService records stock bought from suppliers. A purchase is the
// mirror of a sale: it increases stock instead of decreasing it, and carries
// unit costs instead of sell prices.
type PurchaseService struct {
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		settingsRepo: settingsRepo,
	}
}

// PurchaseLineInput represents one line of a purchase draft
type PurchaseLineInput struct {
	ProductID uuid.UUID
	Quantity  float64
	UnitCost  float64
}

// PurchaseDraft represents the create/update purchase input
type PurchaseDraft struct {
	UserID     uuid.UUID
	SupplierID *uuid.UUID
	Date       time.Time
	Lines      []PurchaseLineInput
	Notes      *string
}

// CreatePurchase records a purchase and increments stock for every line
func (s *PurchaseService) CreatePurchase(ctx context.Context, draft *PurchaseDraft) (*entity.Purchase, error) {
	if err := s.validateLines(ctx, draft.Lines); err != nil {
		return nil, err
	}

	prefix := s.purchasePrefix(ctx, draft.UserID)
	purchaseNo, err := s.purchaseRepo.NextNumber(ctx, draft.UserID, prefix)
	if err != nil {
		return nil, err
	}

	purchase := s.assemble(draft)
	purchase.PurchaseNo = purchaseNo

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}

	s.applyStock(ctx, purchase.Lines, 1)

	return s.purchaseRepo.GetByID(ctx, purchase.ID)
}

// UpdatePurchase replaces the purchase wholesale from the draft. Stock added
// by the previous lines is backed out before the new lines are applied.
func (s *PurchaseService) UpdatePurchase(ctx context.Context, id uuid.UUID, draft *PurchaseDraft) (*entity.Purchase, error) {
	existing, err := s.GetPurchase(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validateLines(ctx, draft.Lines); err != nil {
		return nil, err
	}

	s.applyStock(ctx, existing.Lines, -1)

	updated := s.assemble(draft)
	updated.ID = existing.ID
	updated.PurchaseNo = existing.PurchaseNo
	updated.CreatedAt = existing.CreatedAt

	if err := s.purchaseRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	s.applyStock(ctx, updated.Lines, 1)

	return s.purchaseRepo.GetByID(ctx, updated.ID)
}

// validateLines checks the draft lines and verifies every referenced product
// exists.
func (s *PurchaseService) validateLines(ctx context.Context, lines []PurchaseLineInput) error {
	if len(lines) == 0 {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "lines", Message: "Purchase must have at least one line"},
		})
	}

	ids := make([]uuid.UUID, 0, len(lines))
	for _, ln := range lines {
		if ln.ProductID == uuid.Nil {
			return apperror.NewValidationError([]apperror.FieldError{
				{Field: "lines", Message: "Product reference is required"},
			})
		}
		ids = append(ids, ln.ProductID)
	}
	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	known := make(map[uuid.UUID]bool, len(products))
	for _, p := range products {
		known[p.ID] = true
	}
	for _, ln := range lines {
		if !known[ln.ProductID] {
			return apperror.NewNotFoundError(fmt.Sprintf("Product %s", ln.ProductID))
		}
	}
	return nil
}

// assemble builds the purchase entity from a validated draft
func (s *PurchaseService) assemble(draft *PurchaseDraft) *entity.Purchase {
	date := draft.Date
	if date.IsZero() {
		date = time.Now()
	}

	purchase := &entity.Purchase{
		UserID:     draft.UserID,
		SupplierID: draft.SupplierID,
		Date:       date,
		Total:      decimal.Zero,
		Notes:      draft.Notes,
	}
	for _, ln := range draft.Lines {
		cost := finance.Amount(ln.UnitCost)
		lineTotal := finance.Amount(ln.Quantity).Mul(cost)
		purchase.Total = purchase.Total.Add(lineTotal)
		purchase.Lines = append(purchase.Lines, entity.PurchaseLine{
			ProductID: ln.ProductID,
			Quantity:  ln.Quantity,
			UnitCost:  cost,
			LineTotal: lineTotal,
		})
	}
	return purchase
}

// applyStock adjusts stock for every line, sign times quantity. Purchases add
// stock, so sign is 1 when lines land and -1 when they are backed out.
func (s *PurchaseService) applyStock(ctx context.Context, lines []entity.PurchaseLine, sign float64) {
	for _, ln := range lines {
		if err := s.productRepo.AdjustStock(ctx, ln.ProductID, sign*ln.Quantity); err != nil {
			log.Printf("Warning: stock adjustment for product %s failed: %v", ln.ProductID, err)
		}
	}
}

// DeletePurchase removes a purchase and backs its quantities out of stock
func (s *PurchaseService) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	purchase, err := s.GetPurchase(ctx, id)
	if err != nil {
		return err
	}
	if err := s.purchaseRepo.Delete(ctx, purchase.ID); err != nil {
		return err
	}
	s.applyStock(ctx, purchase.Lines, -1)
	return nil
}

// GetPurchase returns a single purchase with its lines
func (s *PurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	return purchase, nil
}

// ListPurchases returns a paginated, filtered purchase list
func (s *PurchaseService) ListPurchases(ctx context.Context, userID uuid.UUID, params *repository.PurchaseFilterParams) (*pagination.PaginatedResult[entity.Purchase], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	purchases, total, err := s.purchaseRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(purchases, meta), nil
}

func (s *PurchaseService) purchasePrefix(ctx context.Context, userID uuid.UUID) string {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil || settings == nil || settings.PurchasePrefix == "" {
		return "PUR"
	}
	return settings.PurchasePrefix
}
