package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/smartstore/backoffice-api/internal/domain/finance"
	"github.com/smartstore/backoffice-api/internal/domain/repository"
)

// LedgerService produces the customer balance report. Balances are derived
// fresh from the invoice and receipt logs on every call; nothing here writes.
type LedgerService struct {
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
	receiptRepo  repository.ReceiptRepository
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
	receiptRepo repository.ReceiptRepository,
) *LedgerService {
	return &LedgerService{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		receiptRepo:  receiptRepo,
	}
}

// CustomerStatement is one customer's balance with their transaction history
type CustomerStatement struct {
	finance.Balance
	Invoices []entity.Invoice `json:"invoices"`
	Receipts []entity.Receipt `json:"receipts"`
}

// Balances computes every customer's position, largest outstanding due
// first. Customers with activity but no stored record still appear.
func (s *LedgerService) Balances(ctx context.Context, userID uuid.UUID) ([]finance.Balance, error) {
	customers, invoices, receipts, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return finance.SortBalances(finance.ComputeBalances(customers, invoices, receipts)), nil
}

// Statement returns one customer's balance together with the invoices and
// receipts behind it. The reference may be the customer's canonical ID or
// their name; names match case-insensitively.
func (s *LedgerService) Statement(ctx context.Context, userID uuid.UUID, ref string) (*CustomerStatement, error) {
	customers, invoices, receipts, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	customerName := strings.TrimSpace(ref)
	if id, err := uuid.Parse(finance.Resolve(customers, customerName, nil)); err == nil {
		for i := range customers {
			if customers[i].ID == id {
				customerName = customers[i].Name
				break
			}
		}
	}

	key := finance.NormalizeName(customerName)
	statement := &CustomerStatement{
		Balance: finance.Balance{
			CustomerName:  strings.TrimSpace(customerName),
			TotalBilled:   decimal.Zero,
			TotalReceived: decimal.Zero,
			Balance:       decimal.Zero,
		},
		Invoices: []entity.Invoice{},
		Receipts: []entity.Receipt{},
	}

	if b, ok := finance.ComputeBalances(customers, invoices, receipts)[key]; ok {
		statement.Balance = *b
	}
	for i := range invoices {
		if finance.NormalizeName(invoices[i].CustomerName) == key {
			statement.Invoices = append(statement.Invoices, invoices[i])
		}
	}
	for i := range receipts {
		if finance.NormalizeName(receipts[i].CustomerName) == key {
			statement.Receipts = append(statement.Receipts, receipts[i])
		}
	}
	return statement, nil
}

func (s *LedgerService) load(ctx context.Context, userID uuid.UUID) ([]entity.Customer, []entity.Invoice, []entity.Receipt, error) {
	customers, err := s.customerRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	invoices, err := s.invoiceRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	receipts, err := s.receiptRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	return customers, invoices, receipts, nil
}
