// Package ingredient turns a free-text ingredient line into a name and a
// quantity.
package ingredient

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"foodist/quantity"
)

// Ingredient is one parsed line.
type Ingredient struct {
	Name string            `json:"name"`
	Qty  quantity.Quantity `json:"qty"`
	// Discarded holds a trailing quantity that lost to a leading one. It is
	// a parse diagnostic and is not stored.
	Discarded string `json:"-"`
}

// String renders the ingredient as "<qty> <name>".
func (i Ingredient) String() string {
	return i.Qty.String() + " " + i.Name
}

type token struct {
	text   string
	quoted bool
}

// measure is a quantity candidate found beside the name.
type measure struct {
	amount string
	unit   string
	raw    string
}

var (
	numericToken  = regexp.MustCompile(`^(\d+/\d+|\d*\.?\d+)(\D.*)?$`)
	integerToken  = regexp.MustCompile(`^\d+$`)
	fractionToken = regexp.MustCompile(`^\d+/\d+$`)
)

// Parse splits text into a title-cased name and a quantity. The quantity may
// come before or after the name; when both sides carry one the leading
// quantity wins and the trailing one is kept in Discarded. A name wrapped in
// double quotes is taken literally.
func Parse(text string) (Ingredient, error) {
	toks, err := tokenize(strings.ToLower(text))
	if err != nil {
		return Ingredient{}, err
	}
	if len(toks) == 0 {
		return Ingredient{}, ErrNoValidMatch
	}

	lead, toks := takeLeading(toks)
	trail, toks := takeTrailing(toks)
	for _, m := range []*measure{lead, trail} {
		if m != nil && m.malformed() {
			return Ingredient{}, fmt.Errorf("%w: %q", quantity.ErrInvalidFormat, m.raw)
		}
	}
	if len(toks) == 0 {
		return Ingredient{}, ErrNoIngredientName
	}

	amount, unit := "1", ""
	switch {
	case lead != nil:
		amount = lead.amount
	case trail != nil:
		amount = trail.amount
	}
	switch {
	case lead != nil && lead.unit != "":
		unit = lead.unit
	case trail != nil && trail.unit != "":
		unit = trail.unit
	}

	var discarded string
	if lead != nil && trail != nil {
		discarded = trail.raw
	}

	var name string
	if len(toks) == 1 && toks[0].quoted {
		name = strings.Trim(toks[0].text, `"`)
	} else {
		words := make([]string, len(toks))
		for i, t := range toks {
			words[i] = t.text
		}
		if unit == "" && len(words) >= 2 {
			// best effort: "grams cheese" carries its unit in the name
			if q, err := quantity.Parse(words[0]); err == nil && q.Unit() != "" {
				unit = q.Unit()
				words = words[1:]
			}
		}
		name = strings.Join(words, " ")
		name = strings.TrimPrefix(name, "of ")
		name = strings.ReplaceAll(name, `"`, "")
	}

	name = titleCase(name)
	if name == "" {
		return Ingredient{}, ErrNoIngredientName
	}

	amount, err = normalizeAmount(amount)
	if err != nil {
		return Ingredient{}, err
	}
	qty, err := quantity.Parse(amount + " " + unit)
	if err != nil {
		return Ingredient{}, fmt.Errorf("parse quantity %q: %w", strings.TrimSpace(amount+" "+unit), err)
	}

	return Ingredient{Name: name, Qty: qty, Discarded: discarded}, nil
}

// tokenize splits on whitespace, keeping double-quoted runs in one token.
func tokenize(s string) ([]token, error) {
	var (
		toks    []token
		cur     strings.Builder
		inQuote bool
	)
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		t := cur.String()
		toks = append(toks, token{
			text:   t,
			quoted: len(t) >= 2 && strings.HasPrefix(t, `"`) && strings.HasSuffix(t, `"`),
		})
		cur.Reset()
	}

	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
			cur.WriteRune(r)
		case unicode.IsSpace(r) && !inQuote:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	if inQuote {
		return nil, fmt.Errorf("%w: unbalanced quote", ErrNoValidMatch)
	}
	flush()
	return toks, nil
}

func splitNumeric(t token) (amount, unit string, ok bool) {
	if t.quoted {
		return "", "", false
	}
	m := numericToken.FindStringSubmatch(t.text)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

func isInteger(t token) bool  { return !t.quoted && integerToken.MatchString(t.text) }
func isFraction(s string) bool { return fractionToken.MatchString(s) }

func isUnitWord(t token) bool {
	if t.quoted {
		return false
	}
	symbol, _, ok := quantity.LookupUnit(t.text)
	return ok && symbol != ""
}

// malformed reports a number followed by more number syntax, as in "1/2/3"
// or "1.5/2".
func (m *measure) malformed() bool {
	return m.unit != "" && strings.ContainsAny(m.unit[:1], "0123456789./")
}

// takeLeading consumes "<n>[unit]" or a mixed number "<n> <a/b>[unit]"
// from the front of toks.
func takeLeading(toks []token) (*measure, []token) {
	if len(toks) == 0 {
		return nil, toks
	}
	amount, unit, ok := splitNumeric(toks[0])
	if !ok {
		return nil, toks
	}
	if unit == "" && isInteger(toks[0]) && len(toks) > 1 {
		if frac, fracUnit, ok := splitNumeric(toks[1]); ok && isFraction(frac) {
			return &measure{
				amount: amount + " " + frac,
				unit:   fracUnit,
				raw:    toks[0].text + " " + toks[1].text,
			}, toks[2:]
		}
	}
	return &measure{amount: amount, unit: unit, raw: toks[0].text}, toks[1:]
}

// takeTrailing consumes "<n>[unit]", "<n> <unit>" or their mixed-number
// forms from the back of toks.
func takeTrailing(toks []token) (*measure, []token) {
	n := len(toks)
	if n == 0 {
		return nil, toks
	}

	end, unit := n, ""
	if n >= 2 && isUnitWord(toks[n-1]) {
		if _, attached, ok := splitNumeric(toks[n-2]); ok && attached == "" {
			end, unit = n-1, toks[n-1].text
		}
	}

	amount, attached, ok := splitNumeric(toks[end-1])
	if !ok {
		return nil, toks
	}
	if unit == "" {
		unit = attached
	}
	start := end - 1
	if isFraction(amount) && start > 0 && isInteger(toks[start-1]) {
		start--
		amount = toks[start].text + " " + amount
	}

	raw := make([]string, 0, n-start)
	for _, t := range toks[start:] {
		raw = append(raw, t.text)
	}
	return &measure{amount: amount, unit: unit, raw: strings.Join(raw, " ")}, toks[:start]
}

// normalizeAmount turns "a/b" and "w a/b" into a decimal string and passes
// anything else through.
func normalizeAmount(s string) (string, error) {
	if !strings.Contains(s, "/") {
		return s, nil
	}
	var whole float64
	if w, frac, ok := strings.Cut(s, " "); ok {
		v, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q", quantity.ErrInvalidFormat, s)
		}
		whole, s = v, frac
	}
	num, den, _ := strings.Cut(s, "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", quantity.ErrInvalidFormat, s)
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return "", fmt.Errorf("%w: %q", quantity.ErrInvalidFormat, s)
	}
	return strconv.FormatFloat(whole+n/d, 'f', -1, 64), nil
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
