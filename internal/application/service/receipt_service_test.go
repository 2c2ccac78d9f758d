package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartstore/backoffice-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReceiptFixture() (*ReceiptService, *fakeReceiptRepo) {
	receiptRepo := &fakeReceiptRepo{}
	svc := NewReceiptService(receiptRepo, &fakeSettingsRepo{})
	return svc, receiptRepo
}

func TestCreateReceiptRecordsMoneyIn(t *testing.T) {
	svc, receiptRepo := newReceiptFixture()

	note := "Opening balance settlement"
	receipt, err := svc.CreateReceipt(context.Background(), &ReceiptInput{
		UserID:       uuid.New(),
		CustomerName: "  Ravi ",
		Amount:       250,
		Mode:         "Cash",
		Note:         &note,
	})
	require.NoError(t, err)

	assert.Equal(t, "REC-0001", receipt.ReceiptNo)
	assert.Equal(t, "Ravi", receipt.CustomerName)
	assert.True(t, receipt.Amount.Equal(decimal.NewFromInt(250)))
	require.NotNil(t, receipt.Note)
	assert.Equal(t, note, *receipt.Note)
	assert.Len(t, receiptRepo.receipts, 1)
}

func TestCreateReceiptSequentialNumbers(t *testing.T) {
	svc, _ := newReceiptFixture()

	for i, want := range []string{"REC-0001", "REC-0002"} {
		receipt, err := svc.CreateReceipt(context.Background(), &ReceiptInput{
			UserID:       uuid.New(),
			CustomerName: "Ravi",
			Amount:       float64(10 * (i + 1)),
		})
		require.NoError(t, err)
		assert.Equal(t, want, receipt.ReceiptNo)
	}
}

func TestCreateReceiptRejectsNonPositiveAmount(t *testing.T) {
	svc, receiptRepo := newReceiptFixture()

	for _, amount := range []float64{0, -5} {
		_, err := svc.CreateReceipt(context.Background(), &ReceiptInput{
			UserID:       uuid.New(),
			CustomerName: "Ravi",
			Amount:       amount,
		})
		require.Error(t, err)
		assert.Equal(t, 422, apperror.GetAppError(err).Code)
	}
	assert.Empty(t, receiptRepo.receipts)
}

func TestCreateReceiptRejectsBlankCustomer(t *testing.T) {
	svc, _ := newReceiptFixture()

	_, err := svc.CreateReceipt(context.Background(), &ReceiptInput{
		UserID: uuid.New(),
		Amount: 50,
	})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}
