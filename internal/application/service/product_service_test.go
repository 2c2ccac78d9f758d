package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/smartstore/backoffice-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductFixture() (*ProductService, *fakeProductRepo, uuid.UUID) {
	productRepo := &fakeProductRepo{}
	svc := NewProductService(productRepo)
	return svc, productRepo, uuid.New()
}

func barcoded(userID uuid.UUID, name, barcode string) *entity.Product {
	return &entity.Product{
		ID:      uuid.New(),
		UserID:  userID,
		Name:    name,
		Barcode: &barcode,
		Stock:   10,
	}
}

func TestResolveProductByID(t *testing.T) {
	svc, productRepo, userID := newProductFixture()
	stored := barcoded(userID, "Notebook", "8901234567890")
	productRepo.products = append(productRepo.products, stored)

	product, err := svc.ResolveProduct(context.Background(), userID, stored.ID.String())
	require.NoError(t, err)
	assert.Equal(t, stored.ID, product.ID)
}

func TestResolveProductByBarcode(t *testing.T) {
	svc, productRepo, userID := newProductFixture()
	productRepo.products = append(productRepo.products,
		barcoded(userID, "Notebook", "8901234567890"),
		barcoded(userID, "Pen", "8900000000001"),
	)

	product, err := svc.ResolveProduct(context.Background(), userID, "8900000000001")
	require.NoError(t, err)
	assert.Equal(t, "Pen", product.Name)
}

func TestResolveProductUnknownRef(t *testing.T) {
	svc, productRepo, userID := newProductFixture()
	productRepo.products = append(productRepo.products, barcoded(userID, "Notebook", "8901234567890"))

	_, err := svc.ResolveProduct(context.Background(), userID, "not-a-barcode")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCreateProductRejectsDuplicateBarcode(t *testing.T) {
	svc, productRepo, userID := newProductFixture()
	productRepo.products = append(productRepo.products, barcoded(userID, "Notebook", "8901234567890"))

	barcode := "8901234567890"
	_, err := svc.CreateProduct(context.Background(), &ProductInput{
		UserID:  userID,
		Name:    "Another Notebook",
		Barcode: &barcode,
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}
