package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a product in the inventory
type Product struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name       string          `gorm:"size:255;not null" json:"name"`
	Barcode    *string         `gorm:"size:100;index" json:"barcode,omitempty"`
	Stock      float64         `gorm:"type:decimal(12,3);default:0" json:"stock"`
	StockAlert float64         `gorm:"type:decimal(12,3);default:0" json:"stock_alert"`
	BuyPrice   decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"buy_price"`
	SellPrice  decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"sell_price"`
	GSTPercent float64         `gorm:"type:decimal(5,2);default:0;column:gst_percent" json:"gst_percent"`
	Unit       *string         `gorm:"size:50" json:"unit,omitempty"`
	Notes      *string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the product is at or below its alert threshold.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.StockAlert
}

// CanonicalKey returns the persistence-layer key for the product.
func (p Product) CanonicalKey() uuid.UUID {
	return p.ID
}

// BusinessCode returns the human-facing reference for the product. Products
// are scanned or typed by barcode at the point of sale.
func (p Product) BusinessCode() string {
	if p.Barcode == nil {
		return ""
	}
	return *p.Barcode
}
