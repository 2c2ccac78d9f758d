package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/smartstore/backoffice-api/internal/domain/enum"
	"github.com/smartstore/backoffice-api/internal/domain/finance"
	"github.com/smartstore/backoffice-api/internal/domain/repository"
	"github.com/smartstore/backoffice-api/pkg/apperror"
	"github.com/smartstore/backoffice-api/pkg/pagination"
)

// InvoiceService assembles, persists, and maintains invoices. All money
// fields on a stored invoice are computed here; handlers never pass totals in.
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	settingsRepo repository.SettingsRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
	}
}

// InvoiceLineInput represents one line of an invoice draft
type InvoiceLineInput struct {
	ProductID       uuid.UUID
	Quantity        float64
	UnitPrice       float64
	DiscountPercent float64
	TaxPercent      float64
}

// InvoiceDraft represents the create/update invoice input. AmountPaid is the
// down payment collected at the counter, not a running total.
type InvoiceDraft struct {
	UserID       uuid.UUID
	CustomerName string
	Date         time.Time
	Lines        []InvoiceLineInput
	AmountPaid   float64
	PaymentMode  string
	Notes        *string
}

// CreateInvoice validates the draft, checks stock, computes all totals,
// derives the payment status, assigns the next sequential invoice number,
// and persists the invoice with its lines. Stock is decremented per line
// after the invoice is saved; the corresponding customer ledger entry is
// created if it does not exist yet.
func (s *InvoiceService) CreateInvoice(ctx context.Context, draft *InvoiceDraft) (*entity.Invoice, error) {
	if err := s.validateDraft(draft); err != nil {
		return nil, err
	}

	products, err := s.fetchLineProducts(ctx, draft.Lines)
	if err != nil {
		return nil, err
	}
	if err := checkStock(draft.Lines, products, nil); err != nil {
		return nil, err
	}

	prefix := s.invoicePrefix(ctx, draft.UserID)
	invoiceNo, err := s.invoiceRepo.NextNumber(ctx, draft.UserID, prefix)
	if err != nil {
		return nil, err
	}

	invoice := s.assemble(draft, products)
	invoice.InvoiceNo = invoiceNo

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	s.ensureCustomer(ctx, draft.UserID, draft.CustomerName)
	s.applyStock(ctx, invoice.Lines, -1)

	return s.invoiceRepo.GetByID(ctx, invoice.ID)
}

// UpdateInvoice replaces the invoice wholesale from the draft, recomputing
// every derived field. Stock consumed by the previous lines is restored
// before the new lines are deducted.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, userID uuid.UUID, ref string, draft *InvoiceDraft) (*entity.Invoice, error) {
	existing, err := s.resolveInvoice(ctx, userID, ref)
	if err != nil {
		return nil, err
	}

	if err := s.validateDraft(draft); err != nil {
		return nil, err
	}

	products, err := s.fetchLineProducts(ctx, draft.Lines)
	if err != nil {
		return nil, err
	}

	// The quantities on the existing lines come back to stock when they are
	// replaced, so they count as available for the new lines.
	returned := make(map[uuid.UUID]float64, len(existing.Lines))
	for _, ln := range existing.Lines {
		returned[ln.ProductID] += ln.Quantity
	}
	if err := checkStock(draft.Lines, products, returned); err != nil {
		return nil, err
	}

	s.applyStock(ctx, existing.Lines, 1)

	updated := s.assemble(draft, products)
	updated.ID = existing.ID
	updated.InvoiceNo = existing.InvoiceNo
	updated.CreatedAt = existing.CreatedAt

	if err := s.invoiceRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	s.ensureCustomer(ctx, draft.UserID, draft.CustomerName)
	s.applyStock(ctx, updated.Lines, -1)

	return s.invoiceRepo.GetByID(ctx, updated.ID)
}

// DeleteInvoice removes the invoice and returns its line quantities to stock.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, userID uuid.UUID, ref string) error {
	invoice, err := s.resolveInvoice(ctx, userID, ref)
	if err != nil {
		return err
	}

	if err := s.invoiceRepo.Delete(ctx, invoice.ID); err != nil {
		return err
	}

	s.applyStock(ctx, invoice.Lines, 1)
	return nil
}

// GetInvoice returns a single invoice with its lines. The reference may be
// the canonical ID or the invoice number.
func (s *InvoiceService) GetInvoice(ctx context.Context, userID uuid.UUID, ref string) (*entity.Invoice, error) {
	return s.resolveInvoice(ctx, userID, ref)
}

// ListInvoices returns a paginated, filtered invoice list
func (s *InvoiceService) ListInvoices(ctx context.Context, userID uuid.UUID, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	invoices, total, err := s.invoiceRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, meta), nil
}

// validateDraft checks the structural requirements of a draft before any
// money math runs.
func (s *InvoiceService) validateDraft(draft *InvoiceDraft) error {
	var fieldErrors []apperror.FieldError

	if strings.TrimSpace(draft.CustomerName) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "customer_name",
			Message: "Customer name is required",
		})
	}
	if len(draft.Lines) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "lines",
			Message: "Invoice must have at least one line",
		})
	}
	for i, ln := range draft.Lines {
		if ln.ProductID == uuid.Nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("lines[%d].product_id", i),
				Message: "Product reference is required",
			})
		}
		if ln.Quantity <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("lines[%d].quantity", i),
				Message: "Quantity must be greater than zero",
			})
		}
	}
	if draft.PaymentMode != "" && !enum.IsValidPaymentMode(draft.PaymentMode) {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "payment_mode",
			Message: "Invalid payment mode",
		})
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// fetchLineProducts batch-loads the products the draft references and
// verifies they all exist.
func (s *InvoiceService) fetchLineProducts(ctx context.Context, lines []InvoiceLineInput) (map[uuid.UUID]*entity.Product, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, ln := range lines {
		ids = append(ids, ln.ProductID)
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}
	for _, ln := range lines {
		if _, exists := productMap[ln.ProductID]; !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", ln.ProductID))
		}
	}
	return productMap, nil
}

// checkStock verifies every line can be covered by available stock, counting
// any quantities the operation will return (the replaced lines of an update)
// as available. The check happens before any write; stock is not reserved
// between this check and the decrement that follows the save.
func checkStock(lines []InvoiceLineInput, products map[uuid.UUID]*entity.Product, returned map[uuid.UUID]float64) error {
	need := make(map[uuid.UUID]float64, len(lines))
	for _, ln := range lines {
		need[ln.ProductID] += ln.Quantity
	}
	for id, qty := range need {
		product := products[id]
		available := product.Stock + returned[id]
		if available < qty {
			return apperror.NewStockError(product.Name, qty, available)
		}
	}
	return nil
}

// assemble builds the invoice entity from a validated draft, computing all
// derived money fields.
func (s *InvoiceService) assemble(draft *InvoiceDraft, products map[uuid.UUID]*entity.Product) *entity.Invoice {
	lineInputs := make([]finance.LineInput, len(draft.Lines))
	for i, ln := range draft.Lines {
		lineInputs[i] = finance.LineInput{
			Quantity:        ln.Quantity,
			UnitPrice:       ln.UnitPrice,
			DiscountPercent: ln.DiscountPercent,
			TaxPercent:      ln.TaxPercent,
		}
	}
	totals := finance.ComputeTotals(lineInputs)

	paid := finance.Amount(draft.AmountPaid)
	status, balance := finance.DeriveStatus(totals.Total, paid)

	date := draft.Date
	if date.IsZero() {
		date = time.Now()
	}

	invoice := &entity.Invoice{
		UserID:        draft.UserID,
		CustomerName:  strings.TrimSpace(draft.CustomerName),
		Date:          date,
		Subtotal:      totals.Subtotal,
		TotalDiscount: totals.TotalDiscount,
		TotalTax:      totals.TotalTax,
		Total:         totals.Total,
		AmountPaid:    paid,
		BalanceDue:    balance,
		PaymentStatus: status,
		PaymentMode:   enum.ParsePaymentMode(draft.PaymentMode),
		Notes:         draft.Notes,
	}

	for i, ln := range draft.Lines {
		amounts := finance.ComputeLine(lineInputs[i])
		invoice.Lines = append(invoice.Lines, entity.InvoiceLine{
			ProductID:       ln.ProductID,
			ProductName:     products[ln.ProductID].Name,
			Quantity:        ln.Quantity,
			UnitPrice:       finance.Amount(ln.UnitPrice),
			DiscountPercent: ln.DiscountPercent,
			TaxPercent:      ln.TaxPercent,
			LineTotal:       amounts.Total,
		})
	}
	return invoice
}

// resolveInvoice looks the invoice up by canonical ID first, then by the
// historical invoice-number scheme.
func (s *InvoiceService) resolveInvoice(ctx context.Context, userID uuid.UUID, ref string) (*entity.Invoice, error) {
	invoices, err := s.invoiceRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := finance.Resolve(invoices, ref, nil)
	id, err := uuid.Parse(key)
	if err != nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ensureCustomer creates the customer ledger entry on first sale. Failure
// here never blocks the sale; the ledger still finds the name on invoices.
func (s *InvoiceService) ensureCustomer(ctx context.Context, userID uuid.UUID, name string) {
	name = strings.TrimSpace(name)
	existing, err := s.customerRepo.GetByName(ctx, userID, name)
	if err != nil {
		log.Printf("Warning: customer lookup for %q failed: %v", name, err)
		return
	}
	if existing != nil {
		return
	}
	customer := &entity.Customer{UserID: userID, Name: name}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		log.Printf("Warning: failed to auto-create customer %q: %v", name, err)
	}
}

// applyStock adjusts stock for every line, sign times quantity. Adjustments
// are not transactional with the invoice write; failures are logged and the
// remaining lines still processed.
func (s *InvoiceService) applyStock(ctx context.Context, lines []entity.InvoiceLine, sign float64) {
	for _, ln := range lines {
		if err := s.productRepo.AdjustStock(ctx, ln.ProductID, sign*ln.Quantity); err != nil {
			log.Printf("Warning: stock adjustment for product %s failed: %v", ln.ProductID, err)
		}
	}
}

// invoicePrefix returns the configured invoice number prefix, falling back
// to the default when settings are absent.
func (s *InvoiceService) invoicePrefix(ctx context.Context, userID uuid.UUID) string {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil || settings == nil || settings.InvoicePrefix == "" {
		return "SAL"
	}
	return settings.InvoicePrefix
}
