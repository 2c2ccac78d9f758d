package request

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseLineRequest represents one line of a purchase request
type PurchaseLineRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  float64   `json:"quantity" binding:"required,gt=0"`
	UnitCost  float64   `json:"unit_cost" binding:"gte=0"`
}

// PurchaseRequest represents a purchase create request
type PurchaseRequest struct {
	SupplierID *uuid.UUID            `json:"supplier_id"`
	Date       *time.Time            `json:"date"`
	Lines      []PurchaseLineRequest `json:"lines" binding:"required,min=1,dive"`
	Notes      *string               `json:"notes"`
}

// SettingsRequest represents a store settings update request
type SettingsRequest struct {
	StoreName      string `json:"store_name" binding:"max=255"`
	Address        string `json:"address"`
	Phone          string `json:"phone" binding:"max=50"`
	GSTNumber      string `json:"gst_number" binding:"max=50"`
	InvoicePrefix  string `json:"invoice_prefix" binding:"omitempty,max=20,alphanum"`
	PurchasePrefix string `json:"purchase_prefix" binding:"omitempty,max=20,alphanum"`
	ReceiptPrefix  string `json:"receipt_prefix" binding:"omitempty,max=20,alphanum"`
	LowStockAlerts bool   `json:"low_stock_alerts"`
}
