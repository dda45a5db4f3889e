package quantity

import (
	"math"
	"slices"
	"strconv"
)

// Alias maps a canonical unit symbol to the form shown to users.
type Alias struct {
	Short   string
	Display string
}

// FormatConfig holds the display preferences used by Format.
type FormatConfig struct {
	PreferredAliases []Alias
	// FractionalUnits lists display units ("" for bare counts) whose
	// amounts are shown as fractions when possible.
	FractionalUnits []string
	// CommonFractions is the allow-list of fractions that may be shown.
	CommonFractions []string
}

// DefaultFormatConfig returns the cooking display preferences.
func DefaultFormatConfig() FormatConfig {
	return FormatConfig{
		PreferredAliases: []Alias{
			{Short: "cu", Display: "cup"},
			{Short: "tb", Display: "tbsp"},
		},
		FractionalUnits: []string{"", "cup", "tbsp", "tsp"},
		CommonFractions: []string{"1/8", "1/4", "1/3", "1/2", "2/3", "3/4"},
	}
}

// Format renders q as "<amount> <unit>", or "<amount>" for a bare count.
// Amounts are rounded to two decimals unless the unit prefers fractions
// and the amount is a common cooking fraction.
func Format(q Quantity, cfg FormatConfig) string {
	unit := cfg.displayUnit(q.unit)
	amount := cfg.displayScalar(q.scalar, unit)
	if unit == "" {
		return amount
	}
	return amount + " " + unit
}

func (cfg FormatConfig) displayUnit(unit string) string {
	for _, a := range cfg.PreferredAliases {
		if a.Short == unit {
			return a.Display
		}
	}
	return unit
}

func (cfg FormatConfig) displayScalar(v float64, unit string) string {
	if slices.Contains(cfg.FractionalUnits, unit) {
		if num, den, ok := toFraction(v); ok {
			if f := formatFraction(num, den); slices.Contains(cfg.CommonFractions, f) {
				return f
			}
		}
	}
	return formatDecimal(v)
}

func formatDecimal(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func formatFraction(num, den int64) string {
	if den == 1 {
		return strconv.FormatInt(num, 10)
	}
	return strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(den, 10)
}

const (
	maxDenominator  = 1000
	fractionEpsilon = 1e-9
	maxFractionable = 1e9
)

// toFraction finds the simplest fraction equal to v within fractionEpsilon
// using continued-fraction convergents. ok is false if none exists with a
// denominator up to maxDenominator.
func toFraction(v float64) (num, den int64, ok bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > maxFractionable {
		return 0, 0, false
	}
	x := math.Abs(v)

	// convergents h/k, seeded with h(-2)/k(-2) = 0/1 and h(-1)/k(-1) = 1/0
	prevNum, num := int64(0), int64(1)
	prevDen, den := int64(1), int64(0)
	f := x
	for {
		if den > 0 && f > maxDenominator {
			break
		}
		a := int64(math.Floor(f))
		nextNum, nextDen := a*num+prevNum, a*den+prevDen
		if nextDen > maxDenominator {
			break
		}
		prevNum, num = num, nextNum
		prevDen, den = den, nextDen
		if math.Abs(x-float64(num)/float64(den)) < fractionEpsilon {
			break
		}
		rest := f - float64(a)
		if rest == 0 {
			break
		}
		f = 1 / rest
	}

	if den == 0 || math.Abs(x-float64(num)/float64(den)) >= fractionEpsilon {
		return 0, 0, false
	}
	if v < 0 {
		num = -num
	}
	return num, den, true
}
