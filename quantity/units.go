package quantity

import "strings"

// Kind groups units that measure the same dimension.
type Kind string

const (
	KindCount  Kind = "count"
	KindMass   Kind = "mass"
	KindVolume Kind = "volume"
)

type unitDef struct {
	symbol  string
	kind    Kind
	aliases []string
}

// units is the known-units table. The first alias of each entry is its
// canonical symbol, which is what a Quantity stores.
var units = []unitDef{
	{symbol: "g", kind: KindMass, aliases: []string{"g", "gram", "grams", "gramme", "grammes"}},
	{symbol: "kg", kind: KindMass, aliases: []string{"kg", "kgs", "kilogram", "kilograms", "kilo", "kilos"}},
	{symbol: "mg", kind: KindMass, aliases: []string{"mg", "milligram", "milligrams"}},
	{symbol: "oz", kind: KindMass, aliases: []string{"oz", "ounce", "ounces"}},
	{symbol: "lbs", kind: KindMass, aliases: []string{"lbs", "lb", "pound", "pounds"}},
	{symbol: "ml", kind: KindVolume, aliases: []string{"ml", "milliliter", "milliliters", "millilitre", "millilitres"}},
	{symbol: "l", kind: KindVolume, aliases: []string{"l", "liter", "liters", "litre", "litres"}},
	{symbol: "cu", kind: KindVolume, aliases: []string{"cu", "cup", "cups"}},
	{symbol: "tb", kind: KindVolume, aliases: []string{"tb", "tbs", "tbsp", "tablespoon", "tablespoons"}},
	{symbol: "tsp", kind: KindVolume, aliases: []string{"tsp", "teaspoon", "teaspoons"}},
	{symbol: "floz", kind: KindVolume, aliases: []string{"floz", "fl-oz", "fluid-ounce", "fluid-ounces"}},
	{symbol: "pt", kind: KindVolume, aliases: []string{"pt", "pint", "pints"}},
	{symbol: "qt", kind: KindVolume, aliases: []string{"qt", "quart", "quarts"}},
	{symbol: "gal", kind: KindVolume, aliases: []string{"gal", "gallon", "gallons"}},
}

var unitIndex = func() map[string]unitDef {
	idx := make(map[string]unitDef)
	for _, u := range units {
		for _, a := range u.aliases {
			idx[a] = u
		}
	}
	return idx
}()

// LookupUnit resolves a unit token or alias to its canonical symbol.
// The empty token resolves to the bare unit.
func LookupUnit(token string) (symbol string, kind Kind, ok bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return "", KindCount, true
	}
	def, ok := unitIndex[t]
	if !ok {
		return "", "", false
	}
	return def.symbol, def.kind, true
}
