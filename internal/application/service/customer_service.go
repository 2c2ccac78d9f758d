package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/smartstore/backoffice-api/internal/domain/repository"
	"github.com/smartstore/backoffice-api/pkg/apperror"
	"github.com/smartstore/backoffice-api/pkg/pagination"
)

// CustomerService handles customer ledger-entry operations. The customer
// record is a name plus contact details; all money figures live in the
// invoice and receipt logs and are derived by the ledger service.
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CustomerInput represents the create/update customer input
type CustomerInput struct {
	UserID  uuid.UUID
	Name    string
	Contact *string
	Address *string
}

// CreateCustomer creates a new customer. Names are unique per store,
// case-insensitively, because the name keys the financial records.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CustomerInput) (*entity.Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Customer name is required"},
		})
	}

	existing, err := s.customerRepo.GetByName(ctx, input.UserID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A customer with this name already exists")
	}

	customer := &entity.Customer{
		UserID:  input.UserID,
		Name:    name,
		Contact: input.Contact,
		Address: input.Address,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// UpdateCustomer updates an existing customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, userID uuid.UUID, id uuid.UUID, input *CustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Customer name is required"},
		})
	}
	if existing, err := s.customerRepo.GetByName(ctx, userID, name); err != nil {
		return nil, err
	} else if existing != nil && existing.ID != customer.ID {
		return nil, apperror.NewConflictError("A customer with this name already exists")
	}

	customer.Name = name
	customer.Contact = input.Contact
	customer.Address = input.Address

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer deletes a customer record. The invoices and receipts
// carrying the name stay; the ledger keeps showing the name from them.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, customer.ID)
}

// GetCustomer returns a single customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers returns a paginated customer list
func (s *CustomerService) ListCustomers(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	customers, total, err := s.customerRepo.List(ctx, userID, params, search)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, meta), nil
}
