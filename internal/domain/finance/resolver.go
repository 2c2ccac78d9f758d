package finance

import (
	"github.com/google/uuid"
)

// Keyed is implemented by records that carry both a persistence-layer key and
// a human-facing business code (an invoice number, a product barcode, a
// customer name).
type Keyed interface {
	CanonicalKey() uuid.UUID
	BusinessCode() string
}

// Resolve maps a reference as typed, scanned, or stored historically to the
// canonical key the store layer expects. Historical data carries multiple ID
// schemes, so candidates are tried in priority order:
//
//  1. the candidate object, when supplied, already carries a canonical key
//  2. the candidate string is itself canonical-key shaped (a UUID)
//  3. some record's business code equals the candidate
//  4. nothing matched: the candidate is returned unchanged so the downstream
//     operation fails explicitly instead of silently picking a wrong record
//
// This is a migration-compatibility shim for records imported from the old
// store, not a permanent lookup path.
func Resolve[T Keyed](collection []T, candidate string, obj *T) string {
	if obj != nil {
		if key := (*obj).CanonicalKey(); key != uuid.Nil {
			return key.String()
		}
	}
	if _, err := uuid.Parse(candidate); err == nil {
		return candidate
	}
	for _, item := range collection {
		if code := item.BusinessCode(); code != "" && code == candidate {
			return item.CanonicalKey().String()
		}
	}
	return candidate
}
