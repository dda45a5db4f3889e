package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		input         string
		wantName      string
		wantQty       string
		wantDiscarded string
	}{
		{name: "name only defaults to one", input: "apples", wantName: "Apples", wantQty: "1"},
		{name: "multi word name only", input: "  red   onion ", wantName: "Red Onion", wantQty: "1"},
		{name: "leading quantity and unit", input: "350g flour", wantName: "Flour", wantQty: "350 g"},
		{name: "trailing quantity and unit", input: "flour 350g", wantName: "Flour", wantQty: "350 g"},
		{name: "leading bare count", input: "3 eggs", wantName: "Eggs", wantQty: "3"},
		{name: "trailing bare count", input: "eggs 3", wantName: "Eggs", wantQty: "3"},
		{name: "cup alias", input: "2cu rice", wantName: "Rice", wantQty: "2 cup"},
		{name: "fraction literal", input: "1/2g Apple", wantName: "Apple", wantQty: "0.5 g"},
		{name: "decimal literal trailing", input: "Apple 0.5g", wantName: "Apple", wantQty: "0.5 g"},
		{name: "bare fraction", input: "1/2 lemon", wantName: "Lemon", wantQty: "1/2"},
		{name: "input is lower cased then title cased", input: "OLIVE oIL 2tbsp", wantName: "Olive Oil", wantQty: "2 tbsp"},
		{name: "embedded unit recovery", input: "grams cheese", wantName: "Cheese", wantQty: "1 g"},
		{name: "embedded unit after count", input: "2 cups of flour", wantName: "Flour", wantQty: "2 cup"},
		{name: "embedded non unit word is kept", input: "2 green apples", wantName: "Green Apples", wantQty: "2"},
		{name: "failed embedded recovery is silent", input: "2 teaspon sugar", wantName: "Teaspon Sugar", wantQty: "2"},
		{name: "single word unit is a name", input: "2 cups", wantName: "Cups", wantQty: "2"},
		{name: "of is stripped", input: "100g of rice", wantName: "Rice", wantQty: "100 g"},
		{name: "of inside a name is kept", input: "cream of tartar 1tsp", wantName: "Cream Of Tartar", wantQty: "1 tsp"},
		{name: "escaped name keeps unit word", input: `100g "Grams Cookies"`, wantName: "Grams Cookies", wantQty: "100 g"},
		{name: "escaped name keeps of", input: `100g "of rice"`, wantName: "Of Rice", wantQty: "100 g"},
		{name: "escaped numbers are part of the name", input: `"7 spice mix"`, wantName: "7 Spice Mix", wantQty: "1"},
		{name: "partial quotes are stripped", input: `"grams" cheese`, wantName: "Grams Cheese", wantQty: "1"},
		{name: "mixed number leading", input: "2 1/2 cups flour", wantName: "Flour", wantQty: "2.5 cup"},
		{name: "mixed number trailing", input: "flour 2 1/2 cups", wantName: "Flour", wantQty: "2.5 cup"},
		{name: "spaced trailing unit", input: "sugar 3 tablespoons", wantName: "Sugar", wantQty: "3 tbsp"},
		{name: "third of a cup", input: "1/3cup milk", wantName: "Milk", wantQty: "1/3 cup"},
		{name: "leading wins over trailing", input: "2 apples 3", wantName: "Apples", wantQty: "2", wantDiscarded: "3"},
		{name: "leading wins and trailing unit fills in", input: "2 butter 100g", wantName: "Butter", wantQty: "2 g", wantDiscarded: "100g"},
		{name: "number inside name", input: "apple 2 pie", wantName: "Apple 2 Pie", wantQty: "1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, got.Name)
			assert.Equal(t, tc.wantQty, got.Qty.String())
			assert.Equal(t, tc.wantDiscarded, got.Discarded)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		wantErr     error
		wantMessage string
	}{
		{name: "empty", input: "", wantErr: ErrNoValidMatch, wantMessage: MessageGeneric},
		{name: "whitespace", input: " \t ", wantErr: ErrNoValidMatch, wantMessage: MessageGeneric},
		{name: "unbalanced quote", input: `apple "pie`, wantErr: ErrNoValidMatch, wantMessage: MessageGeneric},
		{name: "number only", input: "20", wantErr: ErrNoIngredientName, wantMessage: MessageGeneric},
		{name: "two numbers only", input: "20 30g", wantErr: ErrNoIngredientName, wantMessage: MessageGeneric},
		{name: "empty quotes", input: `2 ""`, wantErr: ErrNoIngredientName, wantMessage: MessageGeneric},
		{name: "unknown unit", input: "20foo apples", wantErr: ErrInvalidUnit, wantMessage: MessageInvalidUnit},
		{name: "unknown trailing unit", input: "apples 20foo", wantErr: ErrInvalidUnit, wantMessage: MessageInvalidUnit},
		{name: "malformed number", input: "1/2/3 apples", wantErr: ErrInvalidFormat, wantMessage: MessageGeneric},
		{name: "malformed trailing number", input: "apples 1/2/3", wantErr: ErrInvalidFormat, wantMessage: MessageGeneric},
		{name: "chained fraction", input: "2/4/2 eggs", wantErr: ErrInvalidFormat, wantMessage: MessageGeneric},
		{name: "decimal over integer", input: "1.5/2 eggs", wantErr: ErrInvalidFormat, wantMessage: MessageGeneric},
		{name: "malformed number that would be discarded", input: "2 apples 1/2/3", wantErr: ErrInvalidFormat, wantMessage: MessageGeneric},
		{name: "zero denominator", input: "1/0 apples", wantErr: ErrInvalidFormat, wantMessage: MessageGeneric},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantMessage, Message(err))
		})
	}
}

func TestParse_OrderIndependent(t *testing.T) {
	t.Parallel()

	cases := []struct{ amount, name string }{
		{amount: "350g", name: "plain flour"},
		{amount: "2cu", name: "rice"},
		{amount: "1/4tsp", name: "salt"},
		{amount: "12", name: "eggs"},
		{amount: "0.75l", name: "stock"},
	}

	for _, c := range cases {
		before, err := Parse(c.amount + " " + c.name)
		require.NoError(t, err)
		after, err := Parse(c.name + " " + c.amount)
		require.NoError(t, err)

		assert.Equal(t, before.Name, after.Name, c.name)
		assert.Equal(t, before.Qty.String(), after.Qty.String(), c.name)
	}
}

func TestMessage(t *testing.T) {
	assert.Empty(t, Message(nil))

	_, err := Parse("2teaspon sugar")
	require.Error(t, err)
	assert.Equal(t, `Invalid measurement unit, did you mean "teaspoon"?`, Message(err))
}

func TestIngredient_String(t *testing.T) {
	got, err := Parse("1/4 cup sugar")
	require.NoError(t, err)
	assert.Equal(t, "1/4 cup Sugar", got.String())
}
