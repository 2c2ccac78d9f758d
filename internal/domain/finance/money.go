package finance

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/smartstore/backoffice-api/internal/domain/enum"
)

// Epsilon absorbs floating-point noise when comparing money amounts. An
// invoice with 0.004 left on it is paid, not partial.
var Epsilon = decimal.New(1, -2) // 0.01

var hundred = decimal.NewFromInt(100)

// Amount converts a raw numeric input to a money-safe decimal. Missing or
// invalid values (NaN, Inf) and negatives are sanitized to zero so the
// computation helpers stay total functions.
func Amount(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// Percent sanitizes a percentage input into the [0, 100] range.
func Percent(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return decimal.Zero
	}
	if v > 100 {
		return hundred
	}
	return decimal.NewFromFloat(v)
}

// LineInput is the raw form input for one invoice line.
type LineInput struct {
	Quantity        float64
	UnitPrice       float64
	DiscountPercent float64
	TaxPercent      float64
}

// LineAmounts is the computed money breakdown of one line. Tax is always
// computed on the post-discount amount, never on gross.
type LineAmounts struct {
	Gross    decimal.Decimal
	Discount decimal.Decimal
	Taxable  decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// InvoiceTotals aggregates line amounts across an invoice. Subtotal is the
// sum of gross amounts; Total the sum of line totals.
type InvoiceTotals struct {
	Subtotal      decimal.Decimal
	TotalDiscount decimal.Decimal
	TotalTax      decimal.Decimal
	Total         decimal.Decimal
}

// ComputeLine applies the discount-then-tax cascade to a single line:
//
//	gross    = quantity * unitPrice
//	discount = gross * discountPercent / 100
//	taxable  = gross - discount
//	tax      = taxable * taxPercent / 100
//	total    = taxable + tax
func ComputeLine(in LineInput) LineAmounts {
	qty := Amount(in.Quantity)
	price := Amount(in.UnitPrice)

	gross := qty.Mul(price)
	discount := gross.Mul(Percent(in.DiscountPercent)).Div(hundred)
	taxable := gross.Sub(discount)
	tax := taxable.Mul(Percent(in.TaxPercent)).Div(hundred)

	return LineAmounts{
		Gross:    gross,
		Discount: discount,
		Taxable:  taxable,
		Tax:      tax,
		Total:    taxable.Add(tax),
	}
}

// ComputeTotals computes invoice-level totals from raw line inputs.
func ComputeTotals(lines []LineInput) InvoiceTotals {
	totals := InvoiceTotals{
		Subtotal:      decimal.Zero,
		TotalDiscount: decimal.Zero,
		TotalTax:      decimal.Zero,
		Total:         decimal.Zero,
	}
	for _, ln := range lines {
		amounts := ComputeLine(ln)
		totals.Subtotal = totals.Subtotal.Add(amounts.Gross)
		totals.TotalDiscount = totals.TotalDiscount.Add(amounts.Discount)
		totals.TotalTax = totals.TotalTax.Add(amounts.Tax)
		totals.Total = totals.Total.Add(amounts.Total)
	}
	return totals
}

// DeriveStatus returns the payment status and balance due for a total/paid
// pair. Status is a pure function of that pair: Paid when the amount paid
// covers the total within Epsilon (a zero-total invoice stays Unpaid),
// Partial when something but not everything has been paid, Unpaid otherwise.
// Balance due never goes negative.
func DeriveStatus(total, paid decimal.Decimal) (enum.PaymentStatus, decimal.Decimal) {
	balance := total.Sub(paid)
	if balance.IsNegative() {
		balance = decimal.Zero
	}

	switch {
	case total.GreaterThan(decimal.Zero) && paid.GreaterThanOrEqual(total.Sub(Epsilon)):
		return enum.PaymentStatusPaid, balance
	case paid.GreaterThan(decimal.Zero) && paid.LessThan(total):
		return enum.PaymentStatusPartial, balance
	default:
		return enum.PaymentStatusUnpaid, balance
	}
}

// InvoiceTotal returns the invoice's billed total, recomputing it from the
// stored lines when the record predates the stored-total column. Legacy
// records imported from the old store carry lines but a zero total.
func InvoiceTotal(inv *entity.Invoice) decimal.Decimal {
	if inv.Total.GreaterThan(decimal.Zero) || len(inv.Lines) == 0 {
		return inv.Total
	}
	total := decimal.Zero
	for _, ln := range inv.Lines {
		price, _ := ln.UnitPrice.Float64()
		amounts := ComputeLine(LineInput{
			Quantity:        ln.Quantity,
			UnitPrice:       price,
			DiscountPercent: ln.DiscountPercent,
			TaxPercent:      ln.TaxPercent,
		})
		total = total.Add(amounts.Total)
	}
	return total
}
