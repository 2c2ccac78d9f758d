package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartstore/backoffice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Invoice represents a billed sale. AmountPaid is the money received against
// this invoice so far (the down payment at creation time plus anything applied
// later by payment allocation); BalanceDue and PaymentStatus are derived from
// Total and AmountPaid and are rewritten on every recomputation.
type Invoice struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	InvoiceNo     string             `gorm:"size:100;unique;not null" json:"invoice_no"`
	CustomerName  string             `gorm:"size:255;not null;index" json:"customer_name"`
	Date          time.Time          `gorm:"not null;index" json:"date"`
	Subtotal      decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	TotalDiscount decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"total_discount"`
	TotalTax      decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"total_tax"`
	Total         decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"total"`
	AmountPaid    decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"amount_paid"`
	BalanceDue    decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"balance_due"`
	PaymentStatus enum.PaymentStatus `gorm:"default:0;index" json:"payment_status"`
	PaymentMode   enum.PaymentMode   `gorm:"default:0" json:"payment_mode"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User  User          `gorm:"foreignKey:UserID" json:"-"`
	Lines []InvoiceLine `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"lines,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// CanonicalKey returns the persistence-layer key for the invoice.
func (i Invoice) CanonicalKey() uuid.UUID {
	return i.ID
}

// BusinessCode returns the store-assigned sequential invoice number.
func (i Invoice) BusinessCode() string {
	return i.InvoiceNo
}

// InvoiceLine is one product entry within an invoice. Lines exist only inside
// an invoice and are replaced wholesale when the invoice is edited.
type InvoiceLine struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName     string          `gorm:"size:255" json:"product_name"`
	Quantity        float64         `gorm:"type:decimal(12,3);not null" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	DiscountPercent float64         `gorm:"type:decimal(5,2);default:0" json:"discount_percent"`
	TaxPercent      float64         `gorm:"type:decimal(5,2);default:0" json:"tax_percent"`
	LineTotal       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"line_total"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice line
func (l *InvoiceLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceLine model
func (InvoiceLine) TableName() string {
	return "invoice_lines"
}
