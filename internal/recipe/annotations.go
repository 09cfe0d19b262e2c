package recipe

// AnnotationPosition locates an annotation within step text. Offset and length
// count characters from the start of the step text.
type AnnotationPosition struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
}

// TTSAnnotation is a Time/Temperature/Speed annotation for a Thermomix step.
// It maps to Cookidoo's {"type": "TTS"} annotation format.
type TTSAnnotation struct {
	Position         AnnotationPosition
	Speed            string // "1".."10" or "Turbo"
	TimeSeconds      int
	TemperatureValue string // "37".."120" or "varoma"
	TemperatureUnit  string // defaults to "C"
}

// Payload converts the annotation to the Cookidoo API shape.
func (a TTSAnnotation) Payload() map[string]any {
	data := map[string]any{}
	if a.Speed != "" {
		data["speed"] = a.Speed
	}
	if a.TimeSeconds > 0 {
		data["time"] = a.TimeSeconds
	}
	if a.TemperatureValue != "" {
		unit := a.TemperatureUnit
		if unit == "" {
			unit = "C"
		}
		data["temperature"] = map[string]any{
			"value": a.TemperatureValue,
			"unit":  unit,
		}
	}
	return map[string]any{
		"type": "TTS",
		"position": map[string]any{
			"offset": a.Position.Offset,
			"length": a.Position.Length,
		},
		"data": data,
	}
}

// IngredientAnnotation links a recipe ingredient to its mention in step text.
// It maps to Cookidoo's {"type": "INGREDIENT"} annotation format.
type IngredientAnnotation struct {
	Position   AnnotationPosition
	Ingredient Ingredient
}

// Payload converts the annotation to the Cookidoo API shape.
func (a IngredientAnnotation) Payload(locale string) map[string]any {
	return map[string]any{
		"type": "INGREDIENT",
		"position": map[string]any{
			"offset": a.Position.Offset,
			"length": a.Position.Length,
		},
		"data": map[string]any{
			"description": map[string]any{
				"text":        a.Ingredient.Text(locale),
				"annotations": []any{},
			},
		},
	}
}
