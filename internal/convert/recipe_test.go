package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roivaz/cookidoo-thermomix-mcp/internal/recipe"
)

func TestFrenchArticle(t *testing.T) {
	assert.Equal(t, "le boulgour", frenchArticle("Boulgour"))
	assert.Equal(t, "l'oignon", frenchArticle("Oignon"))
	assert.Equal(t, "l'huile d'olive", frenchArticle("Huile d'olive"))
}

func TestStripIngredientQuantities(t *testing.T) {
	ingredients := []recipe.Ingredient{
		{Name: "boulgour", Quantity: "200", Unit: "g"},
		{Name: "huile d'olive", Quantity: "20", Unit: "g"},
	}

	t.Run("french articles", func(t *testing.T) {
		out := stripIngredientQuantities("Verser 200 g de boulgour et 20 g d'huile d'olive", ingredients, "fr")
		assert.Equal(t, "Verser le boulgour et l'huile d'olive", out)
	})

	t.Run("english keeps bare name", func(t *testing.T) {
		out := stripIngredientQuantities("Add 200 g boulgour", ingredients, "en")
		assert.Equal(t, "Add boulgour", out)
	})

	t.Run("untouched without quantity", func(t *testing.T) {
		out := stripIngredientQuantities("Rincer le boulgour", ingredients, "fr")
		assert.Equal(t, "Rincer le boulgour", out)
	})
}

func TestFindIngredientMentions(t *testing.T) {
	ingredients := []recipe.Ingredient{
		{Name: "boulgour"},
		{Name: "oignon"},
	}
	annotations := findIngredientMentions("Mélanger le boulgour dans le bol", ingredients)

	require.Len(t, annotations, 1)
	assert.Equal(t, "boulgour", annotations[0].Ingredient.Name)
	// Offsets count characters, not bytes.
	assert.Equal(t, 12, annotations[0].Position.Offset)
	assert.Equal(t, 8, annotations[0].Position.Length)
}

func TestDetectTools(t *testing.T) {
	t.Run("base machine only", func(t *testing.T) {
		assert.Equal(t, []string{"TM7"}, detectTools([]string{"Mélanger le tout"}))
	})

	t.Run("oven and varoma", func(t *testing.T) {
		tools := detectTools([]string{"Préchauffer le four à 180°C", "Cuire à la vapeur"})
		assert.Equal(t, []string{"TM7", "Four", "Varoma"}, tools)
	})

	t.Run("butterfly whisk", func(t *testing.T) {
		tools := detectTools([]string{"Monter en neige les blancs"})
		assert.Equal(t, []string{"TM7", "Fouet papillon"}, tools)
	})
}

func TestRecipeConversion(t *testing.T) {
	scraped := recipe.Scraped{
		Title:       "Boulgour aux légumes",
		Ingredients: []string{"200 g de boulgour", "1 oignon"},
		Instructions: []string{
			"Mélanger 200 g de boulgour dans le Thermomix",
			"Cuire 10 minutes",
		},
		SourceURL: "https://example.com/boulgour",
	}

	converted := Recipe(scraped, "fr")

	assert.Equal(t, "Boulgour aux légumes", converted.Name)
	assert.Equal(t, "fr", converted.Locale)
	require.Len(t, converted.Ingredients, 2)
	assert.Equal(t, "boulgour", converted.Ingredients[0].Name)

	require.Len(t, converted.Steps, 2)
	first := converted.Steps[0]
	assert.Equal(t, "Mélanger le boulgour dans le bol", first.Description)
	assert.Equal(t, 3, first.Speed)
	assert.Equal(t, 30, first.DurationSeconds)

	// TTS annotation reflects the description after quantity stripping.
	require.Len(t, first.TTSAnnotations, 1)
	assert.Equal(t, 33, first.TTSAnnotations[0].Position.Offset)

	require.Len(t, first.IngredientAnnotations, 1)
	assert.Equal(t, "boulgour", first.IngredientAnnotations[0].Ingredient.Name)
	assert.Equal(t, 12, first.IngredientAnnotations[0].Position.Offset)

	second := converted.Steps[1]
	assert.Equal(t, 1, second.Speed)
	assert.Equal(t, 100, second.Temperature)
	assert.Equal(t, 600, second.DurationSeconds)

	// Defaults fill in what the page never stated.
	assert.Equal(t, 4, converted.Servings)
	assert.Equal(t, 15, converted.PrepTimeMinutes)
	assert.Equal(t, 45, converted.TotalTimeMinutes)

	assert.Equal(t, []string{"TM7"}, converted.Tools)
	require.Len(t, converted.Hints, 1)
	assert.Equal(t, "Original recipe: https://example.com/boulgour", converted.Hints[0])
}

func TestRecipeConversionKeepsScrapedTimes(t *testing.T) {
	scraped := recipe.Scraped{
		Title:        "Soupe",
		Instructions: []string{"Cuire 20 minutes"},
		Servings:     6,
		PrepTime:     10,
		TotalTime:    30,
	}

	converted := Recipe(scraped, "fr")
	assert.Equal(t, 6, converted.Servings)
	assert.Equal(t, 10, converted.PrepTimeMinutes)
	assert.Equal(t, 30, converted.TotalTimeMinutes)
	assert.Empty(t, converted.Hints)
}
