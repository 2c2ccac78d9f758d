package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/smartstore/backoffice-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedgerFixture() (*LedgerService, *fakeCustomerRepo, *fakeInvoiceRepo, *fakeReceiptRepo) {
	customerRepo := &fakeCustomerRepo{}
	invoiceRepo := &fakeInvoiceRepo{}
	receiptRepo := &fakeReceiptRepo{}
	svc := NewLedgerService(customerRepo, invoiceRepo, receiptRepo)
	return svc, customerRepo, invoiceRepo, receiptRepo
}

func receipt(userID uuid.UUID, no, customer string, amount float64) *entity.Receipt {
	return &entity.Receipt{
		ID:           uuid.New(),
		UserID:       userID,
		ReceiptNo:    no,
		CustomerName: customer,
		Amount:       decimal.NewFromFloat(amount),
		Date:         time.Now(),
		Mode:         enum.PaymentModeCash,
	}
}

func TestBalancesCombineInvoicesAndReceipts(t *testing.T) {
	svc, customerRepo, invoiceRepo, receiptRepo := newLedgerFixture()
	userID := uuid.New()

	customerRepo.customers = append(customerRepo.customers, &entity.Customer{
		ID: uuid.New(), UserID: userID, Name: "Ravi",
	})

	inv := openInvoice(userID, "SAL-0001", "Ravi", 1000, 1)
	inv.AmountPaid = decimal.NewFromInt(400)
	inv.BalanceDue = decimal.NewFromInt(600)
	inv.PaymentStatus = enum.PaymentStatusPartial
	invoiceRepo.invoices = append(invoiceRepo.invoices, inv)

	receiptRepo.receipts = append(receiptRepo.receipts, receipt(userID, "REC-0001", "ravi", 200))

	balances, err := svc.Balances(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, balances, 1)

	b := balances[0]
	assert.Equal(t, "Ravi", b.CustomerName)
	assert.True(t, b.TotalBilled.Equal(decimal.NewFromInt(1000)))
	assert.True(t, b.TotalReceived.Equal(decimal.NewFromInt(600)))
	assert.True(t, b.Balance.Equal(decimal.NewFromInt(400)))
}

func TestBalancesIncludeUnregisteredNames(t *testing.T) {
	svc, _, invoiceRepo, _ := newLedgerFixture()
	userID := uuid.New()

	invoiceRepo.invoices = append(invoiceRepo.invoices,
		openInvoice(userID, "SAL-0001", "Walk-in", 50, 1),
	)

	balances, err := svc.Balances(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, "Walk-in", balances[0].CustomerName)
	assert.True(t, balances[0].Balance.Equal(decimal.NewFromInt(50)))
}

func TestBalancesSortLargestDueFirst(t *testing.T) {
	svc, _, invoiceRepo, _ := newLedgerFixture()
	userID := uuid.New()

	invoiceRepo.invoices = append(invoiceRepo.invoices,
		openInvoice(userID, "SAL-0001", "Anita", 100, 1),
		openInvoice(userID, "SAL-0002", "Ravi", 900, 2),
		openInvoice(userID, "SAL-0003", "Meena", 400, 3),
	)

	balances, err := svc.Balances(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, balances, 3)
	assert.Equal(t, "Ravi", balances[0].CustomerName)
	assert.Equal(t, "Meena", balances[1].CustomerName)
	assert.Equal(t, "Anita", balances[2].CustomerName)
}

func TestStatementFiltersByName(t *testing.T) {
	svc, _, invoiceRepo, receiptRepo := newLedgerFixture()
	userID := uuid.New()

	invoiceRepo.invoices = append(invoiceRepo.invoices,
		openInvoice(userID, "SAL-0001", "Ravi", 100, 1),
		openInvoice(userID, "SAL-0002", "Anita", 200, 2),
	)
	receiptRepo.receipts = append(receiptRepo.receipts,
		receipt(userID, "REC-0001", "Ravi", 40),
		receipt(userID, "REC-0002", "Anita", 10),
	)

	statement, err := svc.Statement(context.Background(), userID, "RAVI")
	require.NoError(t, err)

	require.Len(t, statement.Invoices, 1)
	assert.Equal(t, "SAL-0001", statement.Invoices[0].InvoiceNo)
	require.Len(t, statement.Receipts, 1)
	assert.Equal(t, "REC-0001", statement.Receipts[0].ReceiptNo)
	assert.True(t, statement.Balance.Balance.Equal(decimal.NewFromInt(60)))
}

func TestStatementAcceptsCustomerID(t *testing.T) {
	svc, customerRepo, invoiceRepo, receiptRepo := newLedgerFixture()
	userID := uuid.New()

	customer := &entity.Customer{ID: uuid.New(), UserID: userID, Name: "Ravi"}
	customerRepo.customers = append(customerRepo.customers, customer)
	invoiceRepo.invoices = append(invoiceRepo.invoices,
		openInvoice(userID, "SAL-0001", "Ravi", 100, 1),
	)
	receiptRepo.receipts = append(receiptRepo.receipts,
		receipt(userID, "REC-0001", "Ravi", 40),
	)

	statement, err := svc.Statement(context.Background(), userID, customer.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Ravi", statement.Balance.CustomerName)
	require.Len(t, statement.Invoices, 1)
	assert.True(t, statement.Balance.Balance.Equal(decimal.NewFromInt(60)))
}

func TestStatementUnknownCustomerIsZero(t *testing.T) {
	svc, _, _, _ := newLedgerFixture()

	statement, err := svc.Statement(context.Background(), uuid.New(), "Nobody")
	require.NoError(t, err)
	assert.True(t, statement.Balance.Balance.IsZero())
	assert.Empty(t, statement.Invoices)
	assert.Empty(t, statement.Receipts)
}
