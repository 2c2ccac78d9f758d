package finance

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
)

// Balance is one customer's derived financial position. Positive means the
// customer owes the store; negative means the store holds their advance.
type Balance struct {
	CustomerName  string          `json:"customer_name"`
	TotalBilled   decimal.Decimal `json:"total_billed"`
	TotalReceived decimal.Decimal `json:"total_received"`
	Balance       decimal.Decimal `json:"balance"`
}

// NormalizeName returns the case-insensitive ledger key for a customer name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ComputeBalances derives every customer's position from the full invoice and
// receipt collections. Balances are never stored; this recomputation is the
// only source of truth, so the ledger cannot drift from the transaction log.
// The function is pure: the same inputs always produce the same map.
//
// TotalBilled sums invoice totals, TotalReceived sums invoice down payments
// plus standalone receipts, all matched on normalized customer name. Names
// that appear on invoices or receipts without a customer record still get an
// entry, keyed by the name as first seen.
func ComputeBalances(customers []entity.Customer, invoices []entity.Invoice, receipts []entity.Receipt) map[string]*Balance {
	balances := make(map[string]*Balance, len(customers))

	entry := func(name string) *Balance {
		key := NormalizeName(name)
		b, ok := balances[key]
		if !ok {
			b = &Balance{
				CustomerName:  strings.TrimSpace(name),
				TotalBilled:   decimal.Zero,
				TotalReceived: decimal.Zero,
				Balance:       decimal.Zero,
			}
			balances[key] = b
		}
		return b
	}

	for _, c := range customers {
		entry(c.Name)
	}
	for i := range invoices {
		b := entry(invoices[i].CustomerName)
		b.TotalBilled = b.TotalBilled.Add(InvoiceTotal(&invoices[i]))
		b.TotalReceived = b.TotalReceived.Add(invoices[i].AmountPaid)
	}
	for _, r := range receipts {
		b := entry(r.CustomerName)
		b.TotalReceived = b.TotalReceived.Add(r.Amount)
	}

	for _, b := range balances {
		b.Balance = b.TotalBilled.Sub(b.TotalReceived)
	}
	return balances
}

// SortBalances flattens a balance map into report order: largest outstanding
// due first, the report the ledger page renders.
func SortBalances(balances map[string]*Balance) []Balance {
	out := make([]Balance, 0, len(balances))
	for _, b := range balances {
		out = append(out, *b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Balance.Equal(out[j].Balance) {
			return out[i].Balance.GreaterThan(out[j].Balance)
		}
		return out[i].CustomerName < out[j].CustomerName
	})
	return out
}
