package grade

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a decimal that decodes leniently from learner JSON: a
// number, a numeric string (commas and currency signs stripped), or
// anything else, which coerces to zero. Decoding never fails.
type Amount struct {
	decimal.Decimal
}

var amountCleaner = strings.NewReplacer(",", "", "$", "", "₱", "", " ", "")

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(b []byte) error {
	a.Decimal = decimal.Zero
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if s[0] == '"' {
		var str string
		if json.Unmarshal(b, &str) != nil {
			return nil
		}
		s = amountCleaner.Replace(str)
		if s == "" {
			return nil
		}
	}
	if d, err := decimal.NewFromString(s); err == nil {
		a.Decimal = d
	}
	return nil
}

// MarshalJSON round-trips as a JSON number string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}
