package finance

import (
	"testing"

	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBalances_ReconcilesInvoicesAndReceipts(t *testing.T) {
	customers := []entity.Customer{{Name: "Ravi"}}
	invoices := []entity.Invoice{
		{CustomerName: "Ravi", Total: dec("600"), AmountPaid: dec("400")},
		{CustomerName: "Ravi", Total: dec("400"), AmountPaid: dec("0")},
	}
	receipts := []entity.Receipt{
		{CustomerName: "Ravi", Amount: dec("200")},
	}

	balances := ComputeBalances(customers, invoices, receipts)

	b, ok := balances["ravi"]
	require.True(t, ok)
	assert.True(t, b.TotalBilled.Equal(dec("1000")), "billed = %s", b.TotalBilled)
	assert.True(t, b.TotalReceived.Equal(dec("600")), "received = %s", b.TotalReceived)
	assert.True(t, b.Balance.Equal(dec("400")), "balance = %s", b.Balance)
}

func TestComputeBalances_CaseInsensitiveNameMatch(t *testing.T) {
	customers := []entity.Customer{{Name: "Ravi"}}
	invoices := []entity.Invoice{
		{CustomerName: "ravi", Total: dec("100"), AmountPaid: dec("0")},
		{CustomerName: "RAVI", Total: dec("50"), AmountPaid: dec("50")},
	}
	receipts := []entity.Receipt{
		{CustomerName: " Ravi ", Amount: dec("25")},
	}

	balances := ComputeBalances(customers, invoices, receipts)

	require.Len(t, balances, 1)
	b := balances["ravi"]
	assert.Equal(t, "Ravi", b.CustomerName)
	assert.True(t, b.Balance.Equal(dec("75")))
}

func TestComputeBalances_AdvanceGoesNegative(t *testing.T) {
	receipts := []entity.Receipt{{CustomerName: "Meena", Amount: dec("300")}}

	balances := ComputeBalances(nil, nil, receipts)

	b := balances["meena"]
	require.NotNil(t, b)
	assert.True(t, b.Balance.Equal(dec("-300")), "store owes the customer")
}

func TestComputeBalances_CustomerWithoutTransactions(t *testing.T) {
	customers := []entity.Customer{{Name: "Quiet"}}

	balances := ComputeBalances(customers, nil, nil)

	b := balances["quiet"]
	require.NotNil(t, b)
	assert.True(t, b.TotalBilled.IsZero())
	assert.True(t, b.TotalReceived.IsZero())
	assert.True(t, b.Balance.IsZero())
}

func TestComputeBalances_Idempotent(t *testing.T) {
	customers := []entity.Customer{{Name: "Ravi"}, {Name: "Meena"}}
	invoices := []entity.Invoice{
		{CustomerName: "Ravi", Total: dec("123.45"), AmountPaid: dec("23.45")},
		{CustomerName: "Meena", Total: dec("78.90"), AmountPaid: dec("78.90")},
	}
	receipts := []entity.Receipt{{CustomerName: "ravi", Amount: dec("10")}}

	first := ComputeBalances(customers, invoices, receipts)
	second := ComputeBalances(customers, invoices, receipts)

	require.Equal(t, len(first), len(second))
	for key, b := range first {
		other := second[key]
		require.NotNil(t, other)
		assert.True(t, b.TotalBilled.Equal(other.TotalBilled))
		assert.True(t, b.TotalReceived.Equal(other.TotalReceived))
		assert.True(t, b.Balance.Equal(other.Balance))
	}
}

func TestSortBalances_LargestDueFirst(t *testing.T) {
	invoices := []entity.Invoice{
		{CustomerName: "Small", Total: dec("50"), AmountPaid: dec("0")},
		{CustomerName: "Big", Total: dec("500"), AmountPaid: dec("0")},
	}
	receipts := []entity.Receipt{{CustomerName: "Advance", Amount: dec("100")}}

	sorted := SortBalances(ComputeBalances(nil, invoices, receipts))

	require.Len(t, sorted, 3)
	assert.Equal(t, "Big", sorted[0].CustomerName)
	assert.Equal(t, "Small", sorted[1].CustomerName)
	assert.Equal(t, "Advance", sorted[2].CustomerName)
}
