package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreSettings holds per-store presentation and numbering settings
type StoreSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Store identity printed on invoices and receipts
	StoreName string `gorm:"size:255" json:"store_name"`
	Address   string `gorm:"type:text" json:"address"`
	Phone     string `gorm:"size:50" json:"phone"`
	GSTNumber string `gorm:"size:50;column:gst_number" json:"gst_number"`

	// Document numbering
	InvoicePrefix  string `gorm:"size:20;default:'SAL'" json:"invoice_prefix"`
	PurchasePrefix string `gorm:"size:20;default:'PUR'" json:"purchase_prefix"`
	ReceiptPrefix  string `gorm:"size:20;default:'REC'" json:"receipt_prefix"`

	// Alerts
	LowStockAlerts bool `gorm:"default:true" json:"low_stock_alerts"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *StoreSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StoreSettings model
func (StoreSettings) TableName() string {
	return "store_settings"
}
