package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartstore/backoffice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Receipt records money received from a customer outside of an invoice's
// embedded down payment: settlement of an outstanding balance, or an advance
// with no invoice yet. Receipts are immutable once created except for
// deletion; together with invoice AmountPaid they form the received side of
// the customer ledger.
type Receipt struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	ReceiptNo    string           `gorm:"size:100;unique;not null" json:"receipt_no"`
	CustomerName string           `gorm:"size:255;not null;index" json:"customer_name"`
	Amount       decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date         time.Time        `gorm:"not null;index" json:"date"`
	Mode         enum.PaymentMode `gorm:"default:0" json:"mode"`
	Note         *string          `gorm:"type:text" json:"note,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}
