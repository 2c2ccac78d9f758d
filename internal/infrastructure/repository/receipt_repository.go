package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	domainRepo "github.com/smartstore/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Receipt{}, "id = ?", id).Error
}

func (r *receiptRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.ReceiptFilterParams) ([]entity.Receipt, int64, error) {
	var receipts []entity.Receipt
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Receipt{}).Where("user_id = ?", userID)

	if params.Search != "" {
		query = query.Where("receipt_no ILIKE ? OR customer_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.CustomerName != "" {
		query = query.Where("LOWER(customer_name) = LOWER(?)", params.CustomerName)
	}
	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("date DESC").
		Find(&receipts).Error

	return receipts, total, err
}

func (r *receiptRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]entity.Receipt, error) {
	var receipts []entity.Receipt
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&receipts).Error
	return receipts, err
}

func (r *receiptRepository) NextNumber(ctx context.Context, userID uuid.UUID, prefix string) (string, error) {
	return nextSequential(r.db.WithContext(ctx), "receipts", "receipt_no", userID, prefix)
}

func (r *receiptRepository) SumAmounts(ctx context.Context, userID uuid.UUID, since *time.Time) (float64, error) {
	var total float64
	query := r.db.WithContext(ctx).Model(&entity.Receipt{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userID)
	if since != nil {
		query = query.Where("date >= ?", *since)
	}
	err := query.Scan(&total).Error
	return total, err
}
