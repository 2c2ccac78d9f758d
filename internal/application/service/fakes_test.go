package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/smartstore/backoffice-api/internal/domain/enum"
	"github.com/smartstore/backoffice-api/internal/domain/finance"
	"github.com/smartstore/backoffice-api/internal/domain/repository"
	"github.com/smartstore/backoffice-api/pkg/pagination"
)

// In-memory repository fakes. Each keeps its records in a slice and mimics
// only the query semantics the services rely on.

type fakeInvoiceRepo struct {
	invoices []*entity.Invoice
	seq      int

	// failPaymentFor makes UpdatePayment fail for the given invoice number.
	failPaymentFor string
	paymentWrites  []string
}

func (r *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	for i := range inv.Lines {
		if inv.Lines[i].ID == uuid.Nil {
			inv.Lines[i].ID = uuid.New()
		}
		inv.Lines[i].InvoiceID = inv.ID
	}
	cp := *inv
	r.invoices = append(r.invoices, &cp)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.ID == id {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) GetByNumber(_ context.Context, invoiceNo string) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.InvoiceNo == invoiceNo {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	for i, existing := range r.invoices {
		if existing.ID == inv.ID {
			cp := *inv
			r.invoices[i] = &cp
			return nil
		}
	}
	return errors.New("invoice not found")
}

func (r *fakeInvoiceRepo) UpdatePayment(_ context.Context, inv *entity.Invoice) error {
	if r.failPaymentFor != "" && inv.InvoiceNo == r.failPaymentFor {
		return errors.New("write failed")
	}
	for _, existing := range r.invoices {
		if existing.ID == inv.ID {
			existing.AmountPaid = inv.AmountPaid
			existing.BalanceDue = inv.BalanceDue
			existing.PaymentStatus = inv.PaymentStatus
			r.paymentWrites = append(r.paymentWrites, inv.InvoiceNo)
			return nil
		}
	}
	return errors.New("invoice not found")
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, inv := range r.invoices {
		if inv.ID == id {
			r.invoices = append(r.invoices[:i], r.invoices[i+1:]...)
			return nil
		}
	}
	return errors.New("invoice not found")
}

func (r *fakeInvoiceRepo) List(_ context.Context, _ uuid.UUID, _ *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	out := make([]entity.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, *inv)
	}
	return out, int64(len(out)), nil
}

func (r *fakeInvoiceRepo) ListAll(_ context.Context, _ uuid.UUID) ([]entity.Invoice, error) {
	out := make([]entity.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, *inv)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) ListOpenByCustomer(_ context.Context, _ uuid.UUID, customerName string) ([]entity.Invoice, error) {
	key := finance.NormalizeName(customerName)
	var out []entity.Invoice
	for _, inv := range r.invoices {
		if finance.NormalizeName(inv.CustomerName) == key && inv.PaymentStatus != enum.PaymentStatusPaid {
			out = append(out, *inv)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *fakeInvoiceRepo) NextNumber(_ context.Context, _ uuid.UUID, prefix string) (string, error) {
	r.seq++
	return prefix + "-" + pad(r.seq), nil
}

func (r *fakeInvoiceRepo) Count(_ context.Context, _ uuid.UUID) (int64, error) {
	return int64(len(r.invoices)), nil
}

func (r *fakeInvoiceRepo) SumTotals(_ context.Context, _ uuid.UUID, _ *time.Time) (float64, float64, error) {
	var billed, due decimal.Decimal
	for _, inv := range r.invoices {
		billed = billed.Add(inv.Total)
		due = due.Add(inv.BalanceDue)
	}
	b, _ := billed.Float64()
	d, _ := due.Float64()
	return b, d, nil
}

type fakeProductRepo struct {
	products    []*entity.Product
	adjustments map[uuid.UUID]float64
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.products = append(r.products, &cp)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []entity.Product
	for _, p := range r.products {
		if want[p.ID] {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetByBarcode(_ context.Context, _ uuid.UUID, barcode string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Barcode != nil && *p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	for i, existing := range r.products {
		if existing.ID == p.ID {
			cp := *p
			r.products[i] = &cp
			return nil
		}
	}
	return errors.New("product not found")
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return errors.New("product not found")
}

func (r *fakeProductRepo) List(_ context.Context, _ uuid.UUID, _ *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) ListAll(_ context.Context, _ uuid.UUID) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) AdjustStock(_ context.Context, id uuid.UUID, delta float64) error {
	for _, p := range r.products {
		if p.ID == id {
			p.Stock += delta
			if r.adjustments == nil {
				r.adjustments = make(map[uuid.UUID]float64)
			}
			r.adjustments[id] += delta
			return nil
		}
	}
	return errors.New("product not found")
}

func (r *fakeProductRepo) Count(_ context.Context, _ uuid.UUID) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *fakeProductRepo) CountLowStock(_ context.Context, _ uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.IsLowStock() {
			n++
		}
	}
	return n, nil
}

type fakeCustomerRepo struct {
	customers []*entity.Customer
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.customers = append(r.customers, &cp)
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetByName(_ context.Context, _ uuid.UUID, name string) (*entity.Customer, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, c := range r.customers {
		if strings.ToLower(c.Name) == key {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	for i, existing := range r.customers {
		if existing.ID == c.ID {
			cp := *c
			r.customers[i] = &cp
			return nil
		}
	}
	return errors.New("customer not found")
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, c := range r.customers {
		if c.ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			return nil
		}
	}
	return errors.New("customer not found")
}

func (r *fakeCustomerRepo) List(_ context.Context, _ uuid.UUID, _ *pagination.PaginationParams, _ string) ([]entity.Customer, int64, error) {
	out := make([]entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCustomerRepo) ListAll(_ context.Context, _ uuid.UUID) ([]entity.Customer, error) {
	out := make([]entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Count(_ context.Context, _ uuid.UUID) (int64, error) {
	return int64(len(r.customers)), nil
}

type fakeReceiptRepo struct {
	receipts []*entity.Receipt
	seq      int
}

func (r *fakeReceiptRepo) Create(_ context.Context, rec *entity.Receipt) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	cp := *rec
	r.receipts = append(r.receipts, &cp)
	return nil
}

func (r *fakeReceiptRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Receipt, error) {
	for _, rec := range r.receipts {
		if rec.ID == id {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeReceiptRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, rec := range r.receipts {
		if rec.ID == id {
			r.receipts = append(r.receipts[:i], r.receipts[i+1:]...)
			return nil
		}
	}
	return errors.New("receipt not found")
}

func (r *fakeReceiptRepo) List(_ context.Context, _ uuid.UUID, _ *repository.ReceiptFilterParams) ([]entity.Receipt, int64, error) {
	out := make([]entity.Receipt, 0, len(r.receipts))
	for _, rec := range r.receipts {
		out = append(out, *rec)
	}
	return out, int64(len(out)), nil
}

func (r *fakeReceiptRepo) ListAll(_ context.Context, _ uuid.UUID) ([]entity.Receipt, error) {
	out := make([]entity.Receipt, 0, len(r.receipts))
	for _, rec := range r.receipts {
		out = append(out, *rec)
	}
	return out, nil
}

func (r *fakeReceiptRepo) NextNumber(_ context.Context, _ uuid.UUID, prefix string) (string, error) {
	r.seq++
	return prefix + "-" + pad(r.seq), nil
}

func (r *fakeReceiptRepo) SumAmounts(_ context.Context, _ uuid.UUID, _ *time.Time) (float64, error) {
	total := decimal.Zero
	for _, rec := range r.receipts {
		total = total.Add(rec.Amount)
	}
	f, _ := total.Float64()
	return f, nil
}

type fakePurchaseRepo struct {
	purchases []*entity.Purchase
	seq       int
}

func (r *fakePurchaseRepo) Create(_ context.Context, p *entity.Purchase) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for i := range p.Lines {
		if p.Lines[i].ID == uuid.Nil {
			p.Lines[i].ID = uuid.New()
		}
		p.Lines[i].PurchaseID = p.ID
	}
	cp := *p
	r.purchases = append(r.purchases, &cp)
	return nil
}

func (r *fakePurchaseRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Purchase, error) {
	for _, p := range r.purchases {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePurchaseRepo) Update(_ context.Context, p *entity.Purchase) error {
	for i, existing := range r.purchases {
		if existing.ID == p.ID {
			cp := *p
			r.purchases[i] = &cp
			return nil
		}
	}
	return errors.New("purchase not found")
}

func (r *fakePurchaseRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, p := range r.purchases {
		if p.ID == id {
			r.purchases = append(r.purchases[:i], r.purchases[i+1:]...)
			return nil
		}
	}
	return errors.New("purchase not found")
}

func (r *fakePurchaseRepo) List(_ context.Context, _ uuid.UUID, _ *repository.PurchaseFilterParams) ([]entity.Purchase, int64, error) {
	out := make([]entity.Purchase, 0, len(r.purchases))
	for _, p := range r.purchases {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakePurchaseRepo) NextNumber(_ context.Context, _ uuid.UUID, prefix string) (string, error) {
	r.seq++
	return prefix + "-" + pad(r.seq), nil
}

func (r *fakePurchaseRepo) Count(_ context.Context, _ uuid.UUID) (int64, error) {
	return int64(len(r.purchases)), nil
}

type fakeSettingsRepo struct {
	settings map[uuid.UUID]*entity.StoreSettings
}

func (r *fakeSettingsRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*entity.StoreSettings, error) {
	if r.settings == nil {
		return nil, nil
	}
	if s, ok := r.settings[userID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeSettingsRepo) Save(_ context.Context, s *entity.StoreSettings) error {
	if r.settings == nil {
		r.settings = make(map[uuid.UUID]*entity.StoreSettings)
	}
	cp := *s
	r.settings[s.UserID] = &cp
	return nil
}

func pad(n int) string {
	return fmt.Sprintf("%04d", n)
}
