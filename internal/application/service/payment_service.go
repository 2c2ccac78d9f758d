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
)

// PaymentService settles a customer's outstanding balance: one incoming
// payment is spread across the customer's open invoices oldest-first, and a
// receipt is written for the full amount received.
type PaymentService struct {
	invoiceRepo  repository.InvoiceRepository
	receiptRepo  repository.ReceiptRepository
	settingsRepo repository.SettingsRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	invoiceRepo repository.InvoiceRepository,
	receiptRepo repository.ReceiptRepository,
	settingsRepo repository.SettingsRepository,
) *PaymentService {
	return &PaymentService{
		invoiceRepo:  invoiceRepo,
		receiptRepo:  receiptRepo,
		settingsRepo: settingsRepo,
	}
}

// PaymentInput represents an incoming customer payment
type PaymentInput struct {
	UserID       uuid.UUID
	CustomerName string
	Amount       float64
	Mode         string
	Date         time.Time
	Note         *string
}

// PaymentResult reports what a collected payment did: which invoices it
// touched, the receipt recording it, and any amount left over after every
// open invoice was settled.
type PaymentResult struct {
	UpdatedInvoices []entity.Invoice `json:"updated_invoices"`
	Receipt         *entity.Receipt  `json:"receipt"`
	Remainder       decimal.Decimal  `json:"unallocated_remainder"`
}

// CollectPayment applies the payment to the customer's open invoices,
// oldest first, persisting each touched invoice, then records a receipt for
// the full amount. Invoice updates happen one at a time; if one fails, the
// updates already written stay written and the error reports exactly which
// invoices were settled so the books can be reconciled. No receipt is
// created on a partial failure.
func (s *PaymentService) CollectPayment(ctx context.Context, input *PaymentInput) (*PaymentResult, error) {
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

	open, err := s.invoiceRepo.ListOpenByCustomer(ctx, input.UserID, name)
	if err != nil {
		return nil, err
	}
	invoices := make([]*entity.Invoice, len(open))
	for i := range open {
		invoices[i] = &open[i]
	}

	plan := finance.PlanAllocation(invoices, amount)

	applied := make([]string, 0, len(plan.Applications))
	for _, app := range plan.Applications {
		if err := s.invoiceRepo.UpdatePayment(ctx, app.Invoice); err != nil {
			return nil, &apperror.AllocationError{
				Applied: applied,
				Failed:  app.Invoice.InvoiceNo,
				Cause:   err,
			}
		}
		applied = append(applied, app.Invoice.InvoiceNo)
	}

	receipt, err := s.writeReceipt(ctx, input, name, amount, plan)
	if err != nil {
		return nil, err
	}

	result := &PaymentResult{
		UpdatedInvoices: make([]entity.Invoice, 0, len(plan.Applications)),
		Receipt:         receipt,
		Remainder:       plan.Remainder,
	}
	for _, app := range plan.Applications {
		result.UpdatedInvoices = append(result.UpdatedInvoices, *app.Invoice)
	}
	return result, nil
}

// OutstandingBalance returns the customer's total pending amount across open
// invoices, the number the collection form shows before taking the payment.
func (s *PaymentService) OutstandingBalance(ctx context.Context, userID uuid.UUID, customerName string) (decimal.Decimal, error) {
	open, err := s.invoiceRepo.ListOpenByCustomer(ctx, userID, strings.TrimSpace(customerName))
	if err != nil {
		return decimal.Zero, err
	}
	due := decimal.Zero
	for i := range open {
		pending := finance.InvoiceTotal(&open[i]).Sub(open[i].AmountPaid)
		if pending.GreaterThan(decimal.Zero) {
			due = due.Add(pending)
		}
	}
	return due, nil
}

// writeReceipt records the payment for its original amount. The note marks
// whether the money settled bills or sits as an advance.
func (s *PaymentService) writeReceipt(ctx context.Context, input *PaymentInput, name string, amount decimal.Decimal, plan finance.AllocationPlan) (*entity.Receipt, error) {
	prefix := s.receiptPrefix(ctx, input.UserID)
	receiptNo, err := s.receiptRepo.NextNumber(ctx, input.UserID, prefix)
	if err != nil {
		return nil, err
	}

	note := "Bill Payment"
	if plan.Remainder.GreaterThan(decimal.Zero) {
		note = "Advance / Overpayment"
	}
	if input.Note != nil && strings.TrimSpace(*input.Note) != "" {
		note = note + ": " + strings.TrimSpace(*input.Note)
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
		Note:         &note,
	}
	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

func (s *PaymentService) receiptPrefix(ctx context.Context, userID uuid.UUID) string {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil || settings == nil || settings.ReceiptPrefix == "" {
		return "REC"
	}
	return settings.ReceiptPrefix
}
