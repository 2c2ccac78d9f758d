package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/smartstore/backoffice-api/internal/domain/enum"
	"github.com/smartstore/backoffice-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInvoiceFixture() (*InvoiceService, *fakeInvoiceRepo, *fakeProductRepo, *fakeCustomerRepo, *entity.Product) {
	invoiceRepo := &fakeInvoiceRepo{}
	productRepo := &fakeProductRepo{}
	customerRepo := &fakeCustomerRepo{}
	settingsRepo := &fakeSettingsRepo{}

	product := &entity.Product{
		ID:        uuid.New(),
		Name:      "Notebook",
		Stock:     50,
		SellPrice: decimal.NewFromInt(100),
	}
	productRepo.products = append(productRepo.products, product)

	svc := NewInvoiceService(invoiceRepo, productRepo, customerRepo, settingsRepo)
	return svc, invoiceRepo, productRepo, customerRepo, product
}

func TestCreateInvoiceComputesTotalsAndStatus(t *testing.T) {
	svc, _, _, _, product := newInvoiceFixture()

	invoice, err := svc.CreateInvoice(context.Background(), &InvoiceDraft{
		UserID:       uuid.New(),
		CustomerName: "Ravi",
		Lines: []InvoiceLineInput{
			{ProductID: product.ID, Quantity: 3, UnitPrice: 100, DiscountPercent: 10, TaxPercent: 18},
		},
		AmountPaid:  100,
		PaymentMode: "Cash",
	})
	require.NoError(t, err)

	assert.True(t, invoice.Subtotal.Equal(decimal.NewFromInt(300)))
	assert.True(t, invoice.TotalDiscount.Equal(decimal.NewFromInt(30)))
	assert.True(t, invoice.TotalTax.Equal(decimal.NewFromFloat(48.6)))
	assert.True(t, invoice.Total.Equal(decimal.NewFromFloat(318.6)))
	assert.True(t, invoice.BalanceDue.Equal(decimal.NewFromFloat(218.6)))
	assert.Equal(t, enum.PaymentStatusPartial, invoice.PaymentStatus)
	assert.Equal(t, "SAL-0001", invoice.InvoiceNo)
	require.Len(t, invoice.Lines, 1)
	assert.True(t, invoice.Lines[0].LineTotal.Equal(decimal.NewFromFloat(318.6)))
	assert.Equal(t, "Notebook", invoice.Lines[0].ProductName)
}

func TestCreateInvoiceRejectsEmptyLines(t *testing.T) {
	svc, _, _, _, _ := newInvoiceFixture()

	_, err := svc.CreateInvoice(context.Background(), &InvoiceDraft{
		UserID:       uuid.New(),
		CustomerName: "Ravi",
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
}

func TestCreateInvoiceRejectsUnknownProduct(t *testing.T) {
	svc, _, _, _, _ := newInvoiceFixture()

	_, err := svc.CreateInvoice(context.Background(), &InvoiceDraft{
		UserID:       uuid.New(),
		CustomerName: "Ravi",
		Lines:        []InvoiceLineInput{{ProductID: uuid.New(), Quantity: 1, UnitPrice: 10}},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCreateInvoiceRejectsInsufficientStock(t *testing.T) {
	svc, invoiceRepo, _, _, product := newInvoiceFixture()

	_, err := svc.CreateInvoice(context.Background(), &InvoiceDraft{
		UserID:       uuid.New(),
		CustomerName: "Ravi",
		Lines:        []InvoiceLineInput{{ProductID: product.ID, Quantity: 60, UnitPrice: 100}},
	})
	require.Error(t, err)

	var stockErr *apperror.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Notebook", stockErr.ProductName)
	assert.Equal(t, float64(60), stockErr.Requested)
	assert.Equal(t, float64(50), stockErr.Available)
	assert.Empty(t, invoiceRepo.invoices)
}

func TestCreateInvoiceSumsQuantityAcrossLines(t *testing.T) {
	svc, _, _, _, product := newInvoiceFixture()

	// Two lines of 30 exceed the 50 in stock even though each alone fits.
	_, err := svc.CreateInvoice(context.Background(), &InvoiceDraft{
		UserID:       uuid.New(),
		CustomerName: "Ravi",
		Lines: []InvoiceLineInput{
			{ProductID: product.ID, Quantity: 30, UnitPrice: 100},
			{ProductID: product.ID, Quantity: 30, UnitPrice: 100},
		},
	})
	var stockErr *apperror.StockError
	require.ErrorAs(t, err, &stockErr)
}

func TestCreateInvoiceDecrementsStock(t *testing.T) {
	svc, _, productRepo, _, product := newInvoiceFixture()

	_, err := svc.CreateInvoice(context.Background(), &InvoiceDraft{
		UserID:       uuid.New(),
		CustomerName: "Ravi",
		Lines:        []InvoiceLineInput{{ProductID: product.ID, Quantity: 5, UnitPrice: 100}},
	})
	require.NoError(t, err)

	stored, _ := productRepo.GetByID(context.Background(), product.ID)
	assert.Equal(t, float64(45), stored.Stock)
}

func TestCreateInvoiceAutoCreatesCustomer(t *testing.T) {
	svc, _, _, customerRepo, product := newInvoiceFixture()
	userID := uuid.New()

	_, err := svc.CreateInvoice(context.Background(), &InvoiceDraft{
		UserID:       userID,
		CustomerName: "  Ravi  ",
		Lines:        []InvoiceLineInput{{ProductID: product.ID, Quantity: 1, UnitPrice: 100}},
	})
	require.NoError(t, err)

	customer, err := customerRepo.GetByName(context.Background(), userID, "Ravi")
	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.Equal(t, "Ravi", customer.Name)

	// A second sale to the same name must not create a duplicate.
	_, err = svc.CreateInvoice(context.Background(), &InvoiceDraft{
		UserID:       userID,
		CustomerName: "ravi",
		Lines:        []InvoiceLineInput{{ProductID: product.ID, Quantity: 1, UnitPrice: 100}},
	})
	require.NoError(t, err)
	assert.Len(t, customerRepo.customers, 1)
}

func TestCreateInvoiceSequentialNumbers(t *testing.T) {
	svc, _, _, _, product := newInvoiceFixture()
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateInvoice(context.Background(), &InvoiceDraft{
			UserID:       userID,
			CustomerName: "Ravi",
			Lines:        []InvoiceLineInput{{ProductID: product.ID, Quantity: 1, UnitPrice: 10}},
		})
		require.NoError(t, err)
	}

	invoices, _ := svc.invoiceRepo.ListAll(context.Background(), userID)
	require.Len(t, invoices, 3)
	assert.Equal(t, "SAL-0001", invoices[0].InvoiceNo)
	assert.Equal(t, "SAL-0003", invoices[2].InvoiceNo)
}

func TestUpdateInvoiceReplacesLinesAndRestoresStock(t *testing.T) {
	svc, _, productRepo, _, product := newInvoiceFixture()
	userID := uuid.New()

	created, err := svc.CreateInvoice(context.Background(), &InvoiceDraft{
		UserID:       userID,
		CustomerName: "Ravi",
		Lines:        []InvoiceLineInput{{ProductID: product.ID, Quantity: 10, UnitPrice: 100}},
		AmountPaid:   1000,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentStatusPaid, created.PaymentStatus)

	updated, err := svc.UpdateInvoice(context.Background(), userID, created.InvoiceNo, &InvoiceDraft{
		UserID:       userID,
		CustomerName: "Ravi",
		Lines:        []InvoiceLineInput{{ProductID: product.ID, Quantity: 2, UnitPrice: 100}},
		AmountPaid:   0,
	})
	require.NoError(t, err)

	assert.Equal(t, created.InvoiceNo, updated.InvoiceNo)
	assert.True(t, updated.Total.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, enum.PaymentStatusUnpaid, updated.PaymentStatus)

	// 50 - 10 + 10 - 2
	stored, _ := productRepo.GetByID(context.Background(), product.ID)
	assert.Equal(t, float64(48), stored.Stock)
}

func TestUpdateInvoiceRejectsInsufficientStock(t *testing.T) {
	svc, _, productRepo, _, product := newInvoiceFixture()
	userID := uuid.New()

	created, err := svc.CreateInvoice(context.Background(), &InvoiceDraft{
		UserID:       userID,
		CustomerName: "Ravi",
		Lines:        []InvoiceLineInput{{ProductID: product.ID, Quantity: 3, UnitPrice: 100}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateInvoice(context.Background(), userID, created.InvoiceNo, &InvoiceDraft{
		UserID:       userID,
		CustomerName: "Ravi",
		Lines:        []InvoiceLineInput{{ProductID: product.ID, Quantity: 500, UnitPrice: 100}},
	})
	require.Error(t, err)

	var stockErr *apperror.StockError
	require.ErrorAs(t, err, &stockErr)
	// The 3 units on the existing lines count as available again.
	assert.Equal(t, float64(50), stockErr.Available)

	// The rejected update touched nothing.
	stored, _ := productRepo.GetByID(context.Background(), product.ID)
	assert.Equal(t, float64(47), stored.Stock)
	kept, _ := svc.GetInvoice(context.Background(), userID, created.InvoiceNo)
	require.Len(t, kept.Lines, 1)
	assert.Equal(t, float64(3), kept.Lines[0].Quantity)
}

func TestUpdateInvoiceAllowsReusingReturnedStock(t *testing.T) {
	svc, _, productRepo, _, product := newInvoiceFixture()
	userID := uuid.New()

	created, err := svc.CreateInvoice(context.Background(), &InvoiceDraft{
		UserID:       userID,
		CustomerName: "Ravi",
		Lines:        []InvoiceLineInput{{ProductID: product.ID, Quantity: 40, UnitPrice: 100}},
	})
	require.NoError(t, err)

	// 10 on hand plus the 40 being returned covers the new 45, even though
	// 45 exceeds the stock currently on the shelf.
	_, err = svc.UpdateInvoice(context.Background(), userID, created.InvoiceNo, &InvoiceDraft{
		UserID:       userID,
		CustomerName: "Ravi",
		Lines:        []InvoiceLineInput{{ProductID: product.ID, Quantity: 45, UnitPrice: 100}},
	})
	require.NoError(t, err)

	stored, _ := productRepo.GetByID(context.Background(), product.ID)
	assert.Equal(t, float64(5), stored.Stock)
}

func TestDeleteInvoiceRestoresStock(t *testing.T) {
	svc, invoiceRepo, productRepo, _, product := newInvoiceFixture()
	userID := uuid.New()

	created, err := svc.CreateInvoice(context.Background(), &InvoiceDraft{
		UserID:       userID,
		CustomerName: "Ravi",
		Lines:        []InvoiceLineInput{{ProductID: product.ID, Quantity: 5, UnitPrice: 100}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteInvoice(context.Background(), userID, created.ID.String()))
	assert.Empty(t, invoiceRepo.invoices)

	stored, _ := productRepo.GetByID(context.Background(), product.ID)
	assert.Equal(t, float64(50), stored.Stock)
}

func TestGetInvoiceByNumberOrID(t *testing.T) {
	svc, _, _, _, product := newInvoiceFixture()
	userID := uuid.New()

	created, err := svc.CreateInvoice(context.Background(), &InvoiceDraft{
		UserID:       userID,
		CustomerName: "Ravi",
		Date:         time.Now(),
		Lines:        []InvoiceLineInput{{ProductID: product.ID, Quantity: 1, UnitPrice: 10}},
	})
	require.NoError(t, err)

	byNo, err := svc.GetInvoice(context.Background(), userID, created.InvoiceNo)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byNo.ID)

	byID, err := svc.GetInvoice(context.Background(), userID, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	_, err = svc.GetInvoice(context.Background(), userID, "SAL-9999")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
