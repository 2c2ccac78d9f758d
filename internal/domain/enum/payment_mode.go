package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMode represents the channel money came in through
type PaymentMode int

const (
	PaymentModeCash         PaymentMode = 0
	PaymentModeUPI          PaymentMode = 1
	PaymentModeCard         PaymentMode = 2
	PaymentModeBankTransfer PaymentMode = 3
	PaymentModeCheque       PaymentMode = 4
)

func (m PaymentMode) String() string {
	names := [...]string{"Cash", "UPI", "Card", "Bank Transfer", "Cheque"}
	if int(m) < 0 || int(m) >= len(names) {
		return "Cash"
	}
	return names[m]
}

// ParsePaymentMode maps a display name to a PaymentMode. Unknown names fall
// back to Cash, matching how historical records with a blank mode are read.
func ParsePaymentMode(s string) PaymentMode {
	switch s {
	case "UPI":
		return PaymentModeUPI
	case "Card":
		return PaymentModeCard
	case "Bank Transfer", "BankTransfer":
		return PaymentModeBankTransfer
	case "Cheque":
		return PaymentModeCheque
	default:
		return PaymentModeCash
	}
}

// IsValidPaymentMode reports whether s names a supported payment mode.
func IsValidPaymentMode(s string) bool {
	switch s {
	case "Cash", "UPI", "Card", "Bank Transfer", "BankTransfer", "Cheque":
		return true
	}
	return false
}

func (m PaymentMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMode(i)
		return nil
	}
	*m = ParsePaymentMode(str)
	return nil
}

func (m PaymentMode) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMode) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentModeCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMode(v)
	case int:
		*m = PaymentMode(v)
	}
	return nil
}
