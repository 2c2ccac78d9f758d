package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/smartstore/backoffice-api/internal/domain/repository"
)

// DashboardService provides the storefront overview numbers
type DashboardService struct {
	invoiceRepo  repository.InvoiceRepository
	receiptRepo  repository.ReceiptRepository
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	invoiceRepo repository.InvoiceRepository,
	receiptRepo repository.ReceiptRepository,
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *DashboardService {
	return &DashboardService{
		invoiceRepo:  invoiceRepo,
		receiptRepo:  receiptRepo,
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// DashboardStats represents the overview numbers the home screen shows
type DashboardStats struct {
	TotalCustomers  int64   `json:"total_customers"`
	TotalProducts   int64   `json:"total_products"`
	TotalInvoices   int64   `json:"total_invoices"`
	TotalPurchases  int64   `json:"total_purchases"`
	TotalBilled     float64 `json:"total_billed"`
	TotalDue        float64 `json:"total_due"`
	TotalReceived   float64 `json:"total_received"`
	MonthlyBilled   float64 `json:"monthly_billed"`
	MonthlyReceived float64 `json:"monthly_received"`
	LowStockCount   int64   `json:"low_stock_count"`
}

// GetDashboardStats returns the overview numbers
func (s *DashboardService) GetDashboardStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalCustomers, err = s.customerRepo.Count(ctx, userID); err != nil {
		return nil, err
	}
	if stats.TotalProducts, err = s.productRepo.Count(ctx, userID); err != nil {
		return nil, err
	}
	if stats.TotalInvoices, err = s.invoiceRepo.Count(ctx, userID); err != nil {
		return nil, err
	}
	if stats.TotalPurchases, err = s.purchaseRepo.Count(ctx, userID); err != nil {
		return nil, err
	}
	if stats.LowStockCount, err = s.productRepo.CountLowStock(ctx, userID); err != nil {
		return nil, err
	}

	if stats.TotalBilled, stats.TotalDue, err = s.invoiceRepo.SumTotals(ctx, userID, nil); err != nil {
		return nil, err
	}
	if stats.TotalReceived, err = s.receiptRepo.SumAmounts(ctx, userID, nil); err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if stats.MonthlyBilled, _, err = s.invoiceRepo.SumTotals(ctx, userID, &monthStart); err != nil {
		return nil, err
	}
	if stats.MonthlyReceived, err = s.receiptRepo.SumAmounts(ctx, userID, &monthStart); err != nil {
		return nil, err
	}

	return stats, nil
}
