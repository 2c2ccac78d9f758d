package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/smartstore/backoffice-api/internal/domain/repository"
)

// SettingsService handles store settings operations
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// SettingsInput represents the update settings input
type SettingsInput struct {
	StoreName      string
	Address        string
	Phone          string
	GSTNumber      string
	InvoicePrefix  string
	PurchasePrefix string
	ReceiptPrefix  string
	LowStockAlerts bool
}

// GetSettings returns the store settings, creating defaults on first read
func (s *SettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.StoreSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = defaultSettings(userID)
		if err := s.settingsRepo.Save(ctx, settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

// UpdateSettings replaces the store settings. Changing a numbering prefix
// affects new documents only; existing numbers keep their prefix.
func (s *SettingsService) UpdateSettings(ctx context.Context, userID uuid.UUID, input *SettingsInput) (*entity.StoreSettings, error) {
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings.StoreName = input.StoreName
	settings.Address = input.Address
	settings.Phone = input.Phone
	settings.GSTNumber = input.GSTNumber
	if input.InvoicePrefix != "" {
		settings.InvoicePrefix = input.InvoicePrefix
	}
	if input.PurchasePrefix != "" {
		settings.PurchasePrefix = input.PurchasePrefix
	}
	if input.ReceiptPrefix != "" {
		settings.ReceiptPrefix = input.ReceiptPrefix
	}
	settings.LowStockAlerts = input.LowStockAlerts

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func defaultSettings(userID uuid.UUID) *entity.StoreSettings {
	return &entity.StoreSettings{
		UserID:         userID,
		InvoicePrefix:  "SAL",
		PurchasePrefix: "PUR",
		ReceiptPrefix:  "REC",
		LowStockAlerts: true,
	}
}
