package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientText(t *testing.T) {
	t.Run("french with consonant", func(t *testing.T) {
		ing := Ingredient{Name: "Farine", Quantity: "200", Unit: "g"}
		assert.Equal(t, "200 g de farine", ing.Text("fr"))
	})

	t.Run("french elision before vowel", func(t *testing.T) {
		ing := Ingredient{Name: "Oignon", Quantity: "1", Unit: "pincée"}
		assert.Equal(t, "1 pincée d'oignon", ing.Text("fr"))
	})

	t.Run("english keeps plain order", func(t *testing.T) {
		ing := Ingredient{Name: "Flour", Quantity: "200", Unit: "g"}
		assert.Equal(t, "200 g flour", ing.Text("en"))
	})

	t.Run("quantity without unit", func(t *testing.T) {
		ing := Ingredient{Name: "Oeufs", Quantity: "3"}
		assert.Equal(t, "3 oeufs", ing.Text("fr"))
	})

	t.Run("bare name", func(t *testing.T) {
		ing := Ingredient{Name: "Sel"}
		assert.Equal(t, "sel", ing.Text("fr"))
	})
}

func TestIngredientVolumeAnnotation(t *testing.T) {
	qty := 200.0
	max := 300.0

	t.Run("nil without numeric quantity", func(t *testing.T) {
		assert.Nil(t, Ingredient{Name: "Sel"}.VolumeAnnotation())
	})

	t.Run("amount with unit and range", func(t *testing.T) {
		ing := Ingredient{Name: "Farine", Unit: "g", QuantityNumeric: &qty, QuantityMax: &max}
		data := ing.VolumeAnnotation()
		require.NotNil(t, data)
		assert.Equal(t, 200.0, data["amount"])
		assert.Equal(t, 300.0, data["amountMax"])
		assert.Equal(t, "g", data["unit"])
	})
}

func TestStepTTSText(t *testing.T) {
	t.Run("full time temperature speed", func(t *testing.T) {
		step := Step{DurationSeconds: 300, Temperature: 100, Speed: 1}
		assert.Equal(t, "5 min/100°C/vitesse 1", step.TTSText("fr"))
	})

	t.Run("seconds only", func(t *testing.T) {
		step := Step{DurationSeconds: 30, Speed: 3}
		assert.Equal(t, "30 sec/vitesse 3", step.TTSText("fr"))
	})

	t.Run("minutes and seconds", func(t *testing.T) {
		step := Step{DurationSeconds: 90, Speed: 2}
		assert.Equal(t, "1 min 30 sec/vitesse 2", step.TTSText("fr"))
	})

	t.Run("varoma replaces temperature", func(t *testing.T) {
		step := Step{DurationSeconds: 600, Temperature: 100, Varoma: true, Speed: 1}
		assert.Equal(t, "10 min/Varoma/vitesse 1", step.TTSText("fr"))
	})

	t.Run("turbo replaces speed", func(t *testing.T) {
		step := Step{DurationSeconds: 15, Turbo: true}
		assert.Equal(t, "15 sec/Turbo", step.TTSText("fr"))
	})

	t.Run("english speed label", func(t *testing.T) {
		step := Step{DurationSeconds: 30, Speed: 4}
		assert.Equal(t, "30 sec/speed 4", step.TTSText("en"))
	})

	t.Run("empty without parameters", func(t *testing.T) {
		assert.Empty(t, Step{Description: "Réserver"}.TTSText("fr"))
	})
}

func TestStepText(t *testing.T) {
	step := Step{Description: "Mélanger le tout", DurationSeconds: 30, Speed: 3}
	assert.Equal(t, "Mélanger le tout 30 sec/vitesse 3", step.Text("fr"))

	plain := Step{Description: "Réserver au frais"}
	assert.Equal(t, "Réserver au frais", plain.Text("fr"))
}

func TestTTSAnnotationPayload(t *testing.T) {
	annotation := TTSAnnotation{
		Position:         AnnotationPosition{Offset: 17, Length: 20},
		Speed:            "1",
		TimeSeconds:      300,
		TemperatureValue: "100",
	}
	payload := annotation.Payload()

	assert.Equal(t, "TTS", payload["type"])
	data := payload["data"].(map[string]any)
	assert.Equal(t, "1", data["speed"])
	assert.Equal(t, 300, data["time"])
	temp := data["temperature"].(map[string]any)
	assert.Equal(t, "100", temp["value"])
	assert.Equal(t, "C", temp["unit"])
}

func TestCookidooPayload(t *testing.T) {
	r := Thermomix{
		Name: "Boulgour aux légumes",
		Ingredients: []Ingredient{
			{Name: "Boulgour", Quantity: "200", Unit: "g"},
		},
		Steps: []Step{
			{Description: "Mélanger le boulgour", DurationSeconds: 30, Speed: 3},
		},
		Servings:         4,
		PrepTimeMinutes:  15,
		TotalTimeMinutes: 45,
		Hints:            []string{"Original recipe: https://example.com"},
		Tools:            []string{"TM7"},
		Locale:           "fr",
	}
	payload := r.CookidooPayload()

	assert.Equal(t, "Boulgour aux légumes", payload["name"])
	assert.Equal(t, "PRIVATE", payload["workStatus"])
	assert.Equal(t, 900, payload["prepTime"])
	assert.Equal(t, 2700, payload["totalTime"])

	yield := payload["yield"].(map[string]any)
	assert.Equal(t, 4, yield["value"])
	assert.Equal(t, "portion", yield["unitText"])

	ingredients := payload["ingredients"].([]map[string]any)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "INGREDIENT", ingredients[0]["type"])
	assert.Equal(t, "200 g de boulgour", ingredients[0]["text"])

	instructions := payload["instructions"].([]map[string]any)
	require.Len(t, instructions, 1)
	assert.Equal(t, "STEP", instructions[0]["type"])
	assert.Equal(t, "Mélanger le boulgour 30 sec/vitesse 3", instructions[0]["text"])

	assert.Equal(t, "Original recipe: https://example.com", payload["hints"])
}

func TestCookidooPayloadEnglishYield(t *testing.T) {
	r := Thermomix{Name: "Apple pie", Servings: 6, Locale: "en"}
	yield := r.CookidooPayload()["yield"].(map[string]any)
	assert.Equal(t, "serving", yield["unitText"])
}
