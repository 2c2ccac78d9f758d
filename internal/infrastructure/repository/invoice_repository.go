package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/smartstore/backoffice-api/internal/domain/enum"
	domainRepo "github.com/smartstore/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) GetByNumber(ctx context.Context, invoiceNo string) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&invoice, "invoice_no = ?", invoiceNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lines are replaced wholesale on edit.
		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&entity.InvoiceLine{}).Error; err != nil {
			return err
		}
		for i := range invoice.Lines {
			invoice.Lines[i].ID = uuid.Nil
			invoice.Lines[i].InvoiceID = invoice.ID
		}
		return tx.Save(invoice).Error
	})
}

func (r *invoiceRepository) UpdatePayment(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("id = ?", invoice.ID).
		Updates(map[string]interface{}{
			"amount_paid":    invoice.AmountPaid,
			"balance_due":    invoice.BalanceDue,
			"payment_status": invoice.PaymentStatus,
		}).Error
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Invoice{}, "id = ?", id).Error
}

func (r *invoiceRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{}).Where("user_id = ?", userID)

	if params.Search != "" {
		query = query.Where("invoice_no ILIKE ? OR customer_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.Status != nil {
		query = query.Where("payment_status = ?", *params.Status)
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

	sortBy := "date"
	sortOrder := "DESC"
	switch params.SortBy {
	case "invoice_no", "customer_name", "total", "balance_due", "created_at":
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Lines").
		Order(sortBy + " " + sortOrder).
		Find(&invoices).Error

	return invoices, total, err
}

func (r *invoiceRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Lines").
		Order("date ASC").
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) ListOpenByCustomer(ctx context.Context, userID uuid.UUID, customerName string) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("LOWER(customer_name) = LOWER(TRIM(?))", customerName).
		Where("payment_status <> ?", enum.PaymentStatusPaid).
		Preload("Lines").
		Order("date ASC, created_at ASC").
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) NextNumber(ctx context.Context, userID uuid.UUID, prefix string) (string, error) {
	return nextSequential(r.db.WithContext(ctx), "invoices", "invoice_no", userID, prefix)
}

func (r *invoiceRepository) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

func (r *invoiceRepository) SumTotals(ctx context.Context, userID uuid.UUID, since *time.Time) (float64, float64, error) {
	var sums struct {
		Billed float64
		Due    float64
	}
	query := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Select("COALESCE(SUM(total), 0) AS billed, COALESCE(SUM(balance_due), 0) AS due").
		Where("user_id = ?", userID)
	if since != nil {
		query = query.Where("date >= ?", *since)
	}
	err := query.Scan(&sums).Error
	return sums.Billed, sums.Due, err
}
