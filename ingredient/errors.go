package ingredient

import (
	"errors"
	"fmt"

	"foodist/quantity"
)

var (
	// ErrNoValidMatch is returned when the line has no parseable shape at all.
	ErrNoValidMatch = errors.New("no valid match")
	// ErrNoIngredientName is returned when only quantities were found.
	ErrNoIngredientName = errors.New("no ingredient name")

	// ErrInvalidUnit and ErrInvalidFormat surface from quantity parsing.
	ErrInvalidUnit   = quantity.ErrInvalidUnit
	ErrInvalidFormat = quantity.ErrInvalidFormat
)

const (
	MessageInvalidUnit = "Invalid measurement unit"
	MessageGeneric     = "Enter an ingredient name and optionally a quantity"
)

// Message maps a Parse error to the text shown to users.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ue *quantity.UnitError
	if errors.As(err, &ue) && ue.Suggestion != "" {
		return fmt.Sprintf("%s, did you mean %q?", MessageInvalidUnit, ue.Suggestion)
	}
	if errors.Is(err, quantity.ErrInvalidUnit) {
		return MessageInvalidUnit
	}
	return MessageGeneric
}
