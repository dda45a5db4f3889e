package quantity

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
)

var (
	// ErrInvalidFormat is returned when the numeric literal cannot be parsed.
	ErrInvalidFormat = errors.New("invalid quantity format")
	// ErrInvalidUnit is returned when a unit token is present but unknown.
	ErrInvalidUnit = errors.New("invalid unit")
)

// UnitError reports an unrecognized unit token. It matches ErrInvalidUnit.
type UnitError struct {
	Unit string
	// Suggestion is the closest known unit alias, if any is close enough.
	Suggestion string
}

func (e *UnitError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s %q (did you mean %q?)", ErrInvalidUnit, e.Unit, e.Suggestion)
	}
	return fmt.Sprintf("%s %q", ErrInvalidUnit, e.Unit)
}

func (e *UnitError) Is(target error) bool { return target == ErrInvalidUnit }

func newUnitError(token string) *UnitError {
	return &UnitError{Unit: token, Suggestion: suggestUnit(token)}
}

// suggestionThreshold is the minimum similarity for a suggestion.
const suggestionThreshold = 0.6

// suggestUnit returns the known alias most similar to token using
// 1 - distance/max(len(a), len(b)). Ties keep the earlier table entry.
func suggestUnit(token string) string {
	best, bestScore := "", suggestionThreshold
	for _, u := range units {
		for _, a := range u.aliases {
			if s := similarity(token, a); s > bestScore {
				best, bestScore = a, s
			}
		}
	}
	return best
}

func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein.ComputeDistance(a, b))/float64(maxLen)
}
