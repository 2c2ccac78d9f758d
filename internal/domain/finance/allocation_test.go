package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/smartstore/backoffice-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openInvoice(no string, date time.Time, total, paid string) *entity.Invoice {
	inv := &entity.Invoice{
		InvoiceNo:    no,
		CustomerName: "Ravi",
		Date:         date,
		Total:        dec(total),
		AmountPaid:   dec(paid),
	}
	inv.PaymentStatus, inv.BalanceDue = DeriveStatus(inv.Total, inv.AmountPaid)
	return inv
}

func day(n int) time.Time {
	return time.Date(2024, 6, n, 0, 0, 0, 0, time.UTC)
}

func TestPlanAllocation_OldestFirst(t *testing.T) {
	inv1 := openInvoice("SAL-0001", day(1), "100", "0")
	inv2 := openInvoice("SAL-0002", day(5), "50", "0")

	// Deliberately newest-first input; the planner must reorder.
	plan := PlanAllocation([]*entity.Invoice{inv2, inv1}, dec("120"))

	require.Len(t, plan.Applications, 2)
	assert.Equal(t, "SAL-0001", plan.Applications[0].Invoice.InvoiceNo)
	assert.True(t, plan.Applications[0].Applied.Equal(dec("100")))
	assert.Equal(t, enum.PaymentStatusPaid, inv1.PaymentStatus)
	assert.True(t, inv1.BalanceDue.IsZero())

	assert.Equal(t, "SAL-0002", plan.Applications[1].Invoice.InvoiceNo)
	assert.True(t, plan.Applications[1].Applied.Equal(dec("20")))
	assert.Equal(t, enum.PaymentStatusPartial, inv2.PaymentStatus)
	assert.True(t, inv2.BalanceDue.Equal(dec("30")))

	assert.True(t, plan.Remainder.IsZero())
}

func TestPlanAllocation_SameDateKeepsStableOrder(t *testing.T) {
	inv1 := openInvoice("SAL-0001", day(1), "40", "0")
	inv2 := openInvoice("SAL-0002", day(1), "40", "0")

	plan := PlanAllocation([]*entity.Invoice{inv1, inv2}, dec("50"))

	require.Len(t, plan.Applications, 2)
	assert.Equal(t, "SAL-0001", plan.Applications[0].Invoice.InvoiceNo)
	assert.Equal(t, "SAL-0002", plan.Applications[1].Invoice.InvoiceNo)
	assert.True(t, inv2.BalanceDue.Equal(dec("30")))
}

func TestPlanAllocation_Conservation(t *testing.T) {
	invoices := []*entity.Invoice{
		openInvoice("SAL-0001", day(1), "120.35", "20"),
		openInvoice("SAL-0002", day(2), "75.10", "0"),
		openInvoice("SAL-0003", day(3), "300", "150.55"),
	}
	amount := dec("217.40")

	plan := PlanAllocation(invoices, amount)

	applied := decimal.Zero
	for _, app := range plan.Applications {
		applied = applied.Add(app.Applied)
	}
	assert.True(t, applied.Add(plan.Remainder).Equal(amount),
		"applied %s + remainder %s != %s", applied, plan.Remainder, amount)
}

func TestPlanAllocation_OverPayment(t *testing.T) {
	inv1 := openInvoice("SAL-0001", day(1), "60", "0")
	inv2 := openInvoice("SAL-0002", day(2), "40", "0")

	plan := PlanAllocation([]*entity.Invoice{inv1, inv2}, dec("200"))

	assert.Equal(t, enum.PaymentStatusPaid, inv1.PaymentStatus)
	assert.Equal(t, enum.PaymentStatusPaid, inv2.PaymentStatus)
	assert.True(t, plan.Remainder.Equal(dec("100")))
}

func TestPlanAllocation_SkipsPaidInvoices(t *testing.T) {
	paid := openInvoice("SAL-0001", day(1), "100", "100")
	open := openInvoice("SAL-0002", day(2), "50", "0")

	plan := PlanAllocation([]*entity.Invoice{paid, open}, dec("30"))

	require.Len(t, plan.Applications, 1)
	assert.Equal(t, "SAL-0002", plan.Applications[0].Invoice.InvoiceNo)
	assert.True(t, paid.AmountPaid.Equal(dec("100")), "paid invoice must not change")
}

func TestPlanAllocation_NoOpenInvoices(t *testing.T) {
	plan := PlanAllocation(nil, dec("75"))

	assert.Empty(t, plan.Applications)
	assert.True(t, plan.Remainder.Equal(dec("75")))
}

func TestPlanAllocation_RerunAppliesNothing(t *testing.T) {
	inv := openInvoice("SAL-0001", day(1), "100", "0")

	first := PlanAllocation([]*entity.Invoice{inv}, dec("100"))
	require.Len(t, first.Applications, 1)
	require.Equal(t, enum.PaymentStatusPaid, inv.PaymentStatus)

	// Retrying after a partial persistence failure must not double-apply.
	second := PlanAllocation([]*entity.Invoice{inv}, dec("100"))
	assert.Empty(t, second.Applications)
	assert.True(t, second.Remainder.Equal(dec("100")))
}
