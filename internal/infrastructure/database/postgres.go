package database

import (
	"fmt"
	"log"

	"github.com/smartstore/backoffice-api/internal/config"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},

		// Catalog entities
		&entity.Product{},

		// Party entities
		&entity.Customer{},
		&entity.Supplier{},

		// Transaction entities
		&entity.Invoice{},
		&entity.InvoiceLine{},
		&entity.Purchase{},
		&entity.PurchaseLine{},
		&entity.Receipt{},

		// System entities
		&entity.IdempotencyKey{},
		&entity.StoreSettings{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the default operator account and its store
// settings on first boot. Credentials come from config so a deployment can
// override them; the seed is skipped when the user already exists.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	email := viper.GetString("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@smartstore.local"
	}
	password := viper.GetString("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var existing entity.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Println("Default data already seeded")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	admin := entity.User{
		Name:     "Store Admin",
		Email:    email,
		Password: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create default user: %w", err)
	}

	settings := entity.StoreSettings{
		UserID:         admin.ID,
		StoreName:      "Smart Store",
		InvoicePrefix:  "SAL",
		PurchasePrefix: "PUR",
		ReceiptPrefix:  "REC",
		LowStockAlerts: true,
	}
	if err := db.Create(&settings).Error; err != nil {
		log.Printf("Warning: failed to create default settings: %v", err)
	}

	log.Println("Default data seeding completed")
	return nil
}
