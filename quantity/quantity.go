// Package quantity models a measured amount: a scalar plus an optional unit.
package quantity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Quantity is a scalar amount with a canonical unit symbol. The zero unit
// ("") is a bare count.
type Quantity struct {
	scalar float64
	unit   string
}

// New builds a Quantity from a scalar and a unit token or alias.
func New(scalar float64, unit string) (Quantity, error) {
	symbol, _, ok := LookupUnit(unit)
	if !ok {
		return Quantity{}, newUnitError(strings.ToLower(strings.TrimSpace(unit)))
	}
	return Quantity{scalar: scalar, unit: symbol}, nil
}

var literalPattern = regexp.MustCompile(`^([+-]?(?:\d+(?:\.\d+)?|\.\d+))(?:\s*/\s*(\d+))?\s*(.*)$`)

// Parse reads "<number><unit>", "<number> <unit>", "<number>" or a lone
// "<unit>" (scalar 1). The number may be an integer, a decimal or a/b.
func Parse(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Quantity{}, fmt.Errorf("%w: empty quantity", ErrInvalidFormat)
	}

	m := literalPattern.FindStringSubmatch(s)
	if m == nil {
		if r := []rune(s)[0]; unicode.IsLetter(r) {
			return New(1, s)
		}
		return Quantity{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	scalar, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	if m[2] != "" {
		// a/b takes whole numbers only
		if strings.Contains(m[1], ".") {
			return Quantity{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		den, err := strconv.ParseFloat(m[2], 64)
		if err != nil || den == 0 {
			return Quantity{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		scalar /= den
	}

	unit := m[3]
	if unit != "" && strings.ContainsAny(unit[:1], "0123456789/.+-") {
		return Quantity{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return New(scalar, unit)
}

// Scalar returns the numeric amount.
func (q Quantity) Scalar() float64 { return q.scalar }

// Unit returns the canonical unit symbol, "" for a bare count.
func (q Quantity) Unit() string { return q.unit }

// IsDimensionless reports whether q is a bare count.
func (q Quantity) IsDimensionless() bool { return q.unit == "" }

// Kind returns the dimension measured by q's unit.
func (q Quantity) Kind() Kind {
	_, kind, _ := LookupUnit(q.unit)
	return kind
}

// Scale returns a new Quantity with the scalar multiplied by factor and the
// same unit. No rounding is applied.
func (q Quantity) Scale(factor float64) Quantity {
	return Quantity{scalar: q.scalar * factor, unit: q.unit}
}

// Scale is the function form of Quantity.Scale.
func Scale(q Quantity, factor float64) Quantity { return q.Scale(factor) }

// String formats q with the default display configuration.
func (q Quantity) String() string { return Format(q, DefaultFormatConfig()) }

type jsonQuantity struct {
	Scalar float64 `json:"scalar"`
	Unit   string  `json:"unit"`
}

// MarshalJSON encodes q as {"scalar":..,"unit":..} with the canonical unit.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonQuantity{Scalar: q.scalar, Unit: q.unit})
}

// UnmarshalJSON accepts either {"scalar":..,"unit":..} or a quantity
// string such as "350g".
func (q *Quantity) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := Parse(s)
		if err != nil {
			return err
		}
		*q = parsed
		return nil
	}

	var raw jsonQuantity
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := New(raw.Scalar, raw.Unit)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
