package request

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceLineRequest represents one line of an invoice request
type InvoiceLineRequest struct {
	ProductID       uuid.UUID `json:"product_id" binding:"required"`
	Quantity        float64   `json:"quantity" binding:"required,gt=0"`
	UnitPrice       float64   `json:"unit_price" binding:"gte=0"`
	DiscountPercent float64   `json:"discount_percent" binding:"gte=0,lte=100"`
	TaxPercent      float64   `json:"tax_percent" binding:"gte=0,lte=100"`
}

// InvoiceRequest represents an invoice create/update request. Totals never
// come from the client; they are computed server-side from the lines.
type InvoiceRequest struct {
	CustomerName string               `json:"customer_name" binding:"required,max=255"`
	Date         *time.Time           `json:"date"`
	Lines        []InvoiceLineRequest `json:"lines" binding:"required,min=1,dive"`
	AmountPaid   float64              `json:"amount_paid" binding:"gte=0"`
	PaymentMode  string               `json:"payment_mode" binding:"omitempty,paymentmode"`
	Notes        *string              `json:"notes"`
}

// PaymentRequest represents a payment collection request
type PaymentRequest struct {
	CustomerName string     `json:"customer_name" binding:"required,max=255"`
	Amount       float64    `json:"amount" binding:"required,gt=0"`
	Mode         string     `json:"mode" binding:"omitempty,paymentmode"`
	Date         *time.Time `json:"date"`
	Note         *string    `json:"note"`
}

// ReceiptRequest represents a direct money-in record, taken without
// allocating against invoices
type ReceiptRequest struct {
	CustomerName string     `json:"customer_name" binding:"required,max=255"`
	Amount       float64    `json:"amount" binding:"required,gt=0"`
	Mode         string     `json:"mode" binding:"omitempty,paymentmode"`
	Date         *time.Time `json:"date"`
	Note         *string    `json:"note"`
}
