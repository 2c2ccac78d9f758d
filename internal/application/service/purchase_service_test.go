package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/smartstore/backoffice-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPurchaseFixture() (*PurchaseService, *fakePurchaseRepo, *fakeProductRepo, *entity.Product) {
	purchaseRepo := &fakePurchaseRepo{}
	productRepo := &fakeProductRepo{}

	product := &entity.Product{
		ID:    uuid.New(),
		Name:  "Notebook",
		Stock: 10,
	}
	productRepo.products = append(productRepo.products, product)

	svc := NewPurchaseService(purchaseRepo, productRepo, &fakeSettingsRepo{})
	return svc, purchaseRepo, productRepo, product
}

func TestCreatePurchaseAddsStock(t *testing.T) {
	svc, _, productRepo, product := newPurchaseFixture()

	purchase, err := svc.CreatePurchase(context.Background(), &PurchaseDraft{
		UserID: uuid.New(),
		Lines:  []PurchaseLineInput{{ProductID: product.ID, Quantity: 20, UnitCost: 50}},
	})
	require.NoError(t, err)

	assert.Equal(t, "PUR-0001", purchase.PurchaseNo)
	assert.True(t, purchase.Total.Equal(decimal.NewFromInt(1000)))

	stored, _ := productRepo.GetByID(context.Background(), product.ID)
	assert.Equal(t, float64(30), stored.Stock)
}

func TestCreatePurchaseRejectsUnknownProduct(t *testing.T) {
	svc, _, _, _ := newPurchaseFixture()

	_, err := svc.CreatePurchase(context.Background(), &PurchaseDraft{
		UserID: uuid.New(),
		Lines:  []PurchaseLineInput{{ProductID: uuid.New(), Quantity: 5, UnitCost: 10}},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdatePurchaseReplacesLinesAndAdjustsStock(t *testing.T) {
	svc, _, productRepo, product := newPurchaseFixture()
	userID := uuid.New()

	created, err := svc.CreatePurchase(context.Background(), &PurchaseDraft{
		UserID: userID,
		Lines:  []PurchaseLineInput{{ProductID: product.ID, Quantity: 20, UnitCost: 50}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePurchase(context.Background(), created.ID, &PurchaseDraft{
		UserID: userID,
		Lines:  []PurchaseLineInput{{ProductID: product.ID, Quantity: 5, UnitCost: 40}},
	})
	require.NoError(t, err)

	// The number survives the edit; the total is recomputed from the lines.
	assert.Equal(t, "PUR-0001", updated.PurchaseNo)
	assert.True(t, updated.Total.Equal(decimal.NewFromInt(200)))
	require.Len(t, updated.Lines, 1)
	assert.Equal(t, float64(5), updated.Lines[0].Quantity)

	// 10 + 20 - 20 + 5
	stored, _ := productRepo.GetByID(context.Background(), product.ID)
	assert.Equal(t, float64(15), stored.Stock)
}

func TestUpdatePurchaseUnknownIDFails(t *testing.T) {
	svc, _, _, product := newPurchaseFixture()

	_, err := svc.UpdatePurchase(context.Background(), uuid.New(), &PurchaseDraft{
		UserID: uuid.New(),
		Lines:  []PurchaseLineInput{{ProductID: product.ID, Quantity: 1, UnitCost: 10}},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestDeletePurchaseBacksOutStock(t *testing.T) {
	svc, purchaseRepo, productRepo, product := newPurchaseFixture()

	created, err := svc.CreatePurchase(context.Background(), &PurchaseDraft{
		UserID: uuid.New(),
		Lines:  []PurchaseLineInput{{ProductID: product.ID, Quantity: 20, UnitCost: 50}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePurchase(context.Background(), created.ID))
	assert.Empty(t, purchaseRepo.purchases)

	stored, _ := productRepo.GetByID(context.Background(), product.ID)
	assert.Equal(t, float64(10), stored.Stock)
}
