package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is a ledger entry for a buyer. The name is the key the financial
// records (invoices, receipts) are matched against, case-insensitively.
// A customer never stores its own balance; balances are derived from the
// invoice and receipt logs.
type Customer struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string         `gorm:"size:255;not null;index" json:"name"`
	Contact   *string        `gorm:"size:50" json:"contact,omitempty"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// CanonicalKey returns the persistence-layer key for the customer.
func (c Customer) CanonicalKey() uuid.UUID {
	return c.ID
}

// BusinessCode returns the human-facing reference for the customer.
func (c Customer) BusinessCode() string {
	return c.Name
}
