// Package money provides fixed-point currency amounts stored as integer
// cents. Catalog prices arrive as decimal strings ("4.50") and are parsed
// exactly at the load boundary; totals are accumulated in integer arithmetic
// so no floating-point drift can reach a displayed amount.
package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents is a currency amount in hundredths of the currency unit.
type Cents int64

// ParseDecimal parses a decimal string with at most two fraction digits
// ("4.50", "12", "0.05") into Cents. It rejects negative amounts, empty
// strings, and more than two fraction digits.
func ParseDecimal(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("money: empty amount")
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("money: negative amount %q", s)
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("money: amount %q has more than two fraction digits", s)
	}
	// Right-pad the fraction so "4.5" means 50 cents, not 5.
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money: invalid amount %q", s)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money: invalid amount %q", s)
	}

	return Cents(units*100 + cents), nil
}

// MulQty returns the amount multiplied by a quantity.
func (c Cents) MulQty(qty int) Cents {
	return c * Cents(qty)
}

// String formats the amount as a plain decimal with two fraction digits,
// e.g. 450 -> "4.50". This is the presentation-boundary formatting; internal
// accumulation never round-trips through strings.
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
