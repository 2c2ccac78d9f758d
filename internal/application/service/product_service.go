package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/smartstore/backoffice-api/internal/domain/finance"
	"github.com/smartstore/backoffice-api/internal/domain/repository"
	"github.com/smartstore/backoffice-api/pkg/apperror"
	"github.com/smartstore/backoffice-api/pkg/pagination"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductInput represents the create/update product input
type ProductInput struct {
	UserID     uuid.UUID
	Name       string
	Barcode    *string
	Stock      float64
	StockAlert float64
	BuyPrice   float64
	SellPrice  float64
	GSTPercent float64
	Unit       *string
	Notes      *string
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error) {
	if err := s.validate(ctx, input, uuid.Nil); err != nil {
		return nil, err
	}

	product := &entity.Product{
		UserID:     input.UserID,
		Name:       strings.TrimSpace(input.Name),
		Barcode:    input.Barcode,
		Stock:      input.Stock,
		StockAlert: input.StockAlert,
		BuyPrice:   finance.Amount(input.BuyPrice),
		SellPrice:  finance.Amount(input.SellPrice),
		GSTPercent: input.GSTPercent,
		Unit:       input.Unit,
		Notes:      input.Notes,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct updates an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, userID uuid.UUID, ref string, input *ProductInput) (*entity.Product, error) {
	product, err := s.ResolveProduct(ctx, userID, ref)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, input, product.ID); err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Barcode = input.Barcode
	product.Stock = input.Stock
	product.StockAlert = input.StockAlert
	product.BuyPrice = finance.Amount(input.BuyPrice)
	product.SellPrice = finance.Amount(input.SellPrice)
	product.GSTPercent = input.GSTPercent
	product.Unit = input.Unit
	product.Notes = input.Notes

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, userID uuid.UUID, ref string) error {
	product, err := s.ResolveProduct(ctx, userID, ref)
	if err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, product.ID)
}

// GetProduct returns a single product. The reference may be the canonical
// ID or a barcode.
func (s *ProductService) GetProduct(ctx context.Context, userID uuid.UUID, ref string) (*entity.Product, error) {
	return s.ResolveProduct(ctx, userID, ref)
}

// ListProducts returns a paginated, filtered product list
func (s *ProductService) ListProducts(ctx context.Context, userID uuid.UUID, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	products, total, err := s.productRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, meta), nil
}

// LowStockProducts returns products at or below their alert threshold
func (s *ProductService) LowStockProducts(ctx context.Context, userID uuid.UUID) ([]entity.Product, error) {
	products, _, err := s.productRepo.List(ctx, userID, &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 100},
		LowStock:   true,
	})
	return products, err
}

// ResolveProduct maps the reference to a canonical product ID. Canonical IDs
// pass straight to the store; anything else is treated as a scanned barcode
// and resolved against the catalog.
func (s *ProductService) ResolveProduct(ctx context.Context, userID uuid.UUID, ref string) (*entity.Product, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return s.productByID(ctx, id)
	}

	products, err := s.productRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(finance.Resolve(products, ref, nil))
	if err != nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return s.productByID(ctx, id)
}

func (s *ProductService) productByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

func (s *ProductService) validate(ctx context.Context, input *ProductInput, selfID uuid.UUID) error {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "name",
			Message: "Product name is required",
		})
	}
	if input.Barcode != nil && *input.Barcode != "" {
		existing, err := s.productRepo.GetByBarcode(ctx, input.UserID, *input.Barcode)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != selfID {
			return apperror.NewConflictError("A product with this barcode already exists")
		}
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}
