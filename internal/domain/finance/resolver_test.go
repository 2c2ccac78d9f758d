package finance

import (
	"testing"

	"github.com/google/uuid"
	"github.com/smartstore/backoffice-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestResolve_ObjectCanonicalKeyWins(t *testing.T) {
	id := uuid.New()
	obj := entity.Invoice{ID: id, InvoiceNo: "SAL-0001"}

	got := Resolve([]entity.Invoice{}, "SAL-9999", &obj)

	assert.Equal(t, id.String(), got)
}

func TestResolve_UUIDShapedCandidatePassesThrough(t *testing.T) {
	id := uuid.New()
	collection := []entity.Invoice{{ID: uuid.New(), InvoiceNo: "SAL-0001"}}

	got := Resolve(collection, id.String(), nil)

	assert.Equal(t, id.String(), got)
}

func TestResolve_BusinessCodeScan(t *testing.T) {
	want := uuid.New()
	collection := []entity.Invoice{
		{ID: uuid.New(), InvoiceNo: "SAL-0001"},
		{ID: want, InvoiceNo: "SAL-0002"},
	}

	got := Resolve(collection, "SAL-0002", nil)

	assert.Equal(t, want.String(), got)
}

func TestResolve_UnknownCandidateUnchanged(t *testing.T) {
	collection := []entity.Invoice{{ID: uuid.New(), InvoiceNo: "SAL-0001"}}

	// Downstream lookup fails loudly instead of a silently wrong record.
	got := Resolve(collection, "SAL-0404", nil)

	assert.Equal(t, "SAL-0404", got)
}

func TestResolve_ProductByBarcode(t *testing.T) {
	code := "8901030865278"
	want := uuid.New()
	products := []entity.Product{
		{ID: uuid.New()}, // no barcode on record
		{ID: want, Barcode: &code},
	}

	got := Resolve(products, code, nil)

	assert.Equal(t, want.String(), got)
}
