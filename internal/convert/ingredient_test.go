package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientQuantityFirst(t *testing.T) {
	t.Run("french with unit", func(t *testing.T) {
		ing := Ingredient("200 g de farine")
		assert.Equal(t, "farine", ing.Name)
		assert.Equal(t, "200", ing.Quantity)
		assert.Equal(t, "g", ing.Unit)
		require.NotNil(t, ing.QuantityNumeric)
		assert.Equal(t, 200.0, *ing.QuantityNumeric)
	})

	t.Run("elided article", func(t *testing.T) {
		ing := Ingredient("20 g d'huile d'olive")
		assert.Equal(t, "huile d'olive", ing.Name)
		assert.Equal(t, "20", ing.Quantity)
	})

	t.Run("count without unit", func(t *testing.T) {
		ing := Ingredient("3 oeufs")
		assert.Equal(t, "oeufs", ing.Name)
		assert.Equal(t, "3", ing.Quantity)
		assert.Empty(t, ing.Unit)
	})

	t.Run("english cup", func(t *testing.T) {
		ing := Ingredient("1 cup flour")
		assert.Equal(t, "flour", ing.Name)
		assert.Equal(t, "1", ing.Quantity)
		assert.Equal(t, "cup", ing.Unit)
	})
}

func TestIngredientNameFirst(t *testing.T) {
	t.Run("bare count", func(t *testing.T) {
		ing := Ingredient("Oignon blanc - 1")
		assert.Equal(t, "Oignon blanc", ing.Name)
		assert.Equal(t, "1", ing.Quantity)
		assert.Empty(t, ing.Unit)
	})

	t.Run("unit normalized", func(t *testing.T) {
		ing := Ingredient("Huile d'olive - 20 grammes")
		assert.Equal(t, "Huile d'olive", ing.Name)
		assert.Equal(t, "20", ing.Quantity)
		assert.Equal(t, "g", ing.Unit)
	})
}

func TestIngredientFallbackBareName(t *testing.T) {
	ing := Ingredient("Sel et poivre")
	assert.Equal(t, "Sel et poivre", ing.Name)
	assert.Empty(t, ing.Quantity)
	assert.Nil(t, ing.QuantityNumeric)
}

func TestNormalizeQuantity(t *testing.T) {
	assert.Equal(t, "½", normalizeQuantity("0.5"))
	assert.Equal(t, "¾", normalizeQuantity("0,75"))
	assert.Equal(t, "1 ½", normalizeQuantity("1.5"))
	assert.Equal(t, "200", normalizeQuantity("200"))
	assert.Equal(t, "une", normalizeQuantity("une"))
}

func TestNormalizeUnit(t *testing.T) {
	assert.Equal(t, "g", normalizeUnit("grammes"))
	assert.Equal(t, "tbsp", normalizeUnit("tablespoons"))
	assert.Equal(t, "lb", normalizeUnit("pounds"))
	assert.Equal(t, "pincée", normalizeUnit("pincée"))
	assert.Empty(t, normalizeUnit(""))
}

func TestParseNumericQuantity(t *testing.T) {
	require.NotNil(t, parseNumericQuantity("3/4"))
	assert.Equal(t, 0.75, *parseNumericQuantity("3/4"))
	assert.Equal(t, 1.5, *parseNumericQuantity("1,5"))
	assert.Nil(t, parseNumericQuantity("une"))
	assert.Nil(t, parseNumericQuantity("1/0"))
}
