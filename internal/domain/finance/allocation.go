package finance

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/smartstore/backoffice-api/internal/domain/enum"
)

// Application records money applied to a single invoice during allocation.
type Application struct {
	Invoice *entity.Invoice
	Applied decimal.Decimal
}

// AllocationPlan is the outcome of distributing one incoming payment across
// a customer's open invoices. Sum of applied amounts plus the remainder
// equals the original payment exactly.
type AllocationPlan struct {
	Applications []Application
	Remainder    decimal.Decimal
}

// PlanAllocation distributes amount across the given invoices, oldest debt
// first (stable order for invoices on the same date). Each touched invoice is
// mutated in place: AmountPaid grows by the applied slice and BalanceDue and
// PaymentStatus are re-derived. Invoices already Paid are skipped; re-running
// a plan against them applies zero additional amount, which is what makes
// retrying a partially persisted allocation safe.
func PlanAllocation(invoices []*entity.Invoice, amount decimal.Decimal) AllocationPlan {
	open := make([]*entity.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.PaymentStatus != enum.PaymentStatusPaid {
			open = append(open, inv)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].Date.Before(open[j].Date)
	})

	remaining := amount
	var applications []Application
	for _, inv := range open {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		pending := InvoiceTotal(inv).Sub(inv.AmountPaid)
		if pending.LessThanOrEqual(decimal.Zero) {
			continue
		}
		applied := decimal.Min(remaining, pending)
		inv.AmountPaid = inv.AmountPaid.Add(applied)
		remaining = remaining.Sub(applied)
		inv.PaymentStatus, inv.BalanceDue = DeriveStatus(InvoiceTotal(inv), inv.AmountPaid)
		applications = append(applications, Application{Invoice: inv, Applied: applied})
	}

	return AllocationPlan{Applications: applications, Remainder: remaining}
}
