package recipe

import "strings"

// Scraped is the raw recipe as extracted from a web page, before any
// Thermomix conversion.
type Scraped struct {
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	TotalTime    int      `json:"total_time,omitempty"` // minutes
	PrepTime     int      `json:"prep_time,omitempty"`  // minutes
	CookTime     int      `json:"cook_time,omitempty"`  // minutes
	Servings     int      `json:"servings,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	SourceURL    string   `json:"source_url"`
}

// Thermomix is a complete converted recipe, ready for Cookidoo upload.
type Thermomix struct {
	Name             string       `json:"name"`
	Ingredients      []Ingredient `json:"ingredients"`
	Steps            []Step       `json:"steps"`
	Servings         int          `json:"servings"`
	PrepTimeMinutes  int          `json:"prep_time_minutes"`
	TotalTimeMinutes int          `json:"total_time_minutes"`
	Hints            []string     `json:"hints,omitempty"`
	SourceURL        string       `json:"source_url"`
	Tools            []string     `json:"tools"`
	Locale           string       `json:"locale"`
}

// CookidooPayload builds the created-recipes PATCH body for the recipe.
func (r Thermomix) CookidooPayload() map[string]any {
	lang := r.Locale
	unitText := "serving"
	if strings.HasPrefix(lang, "fr") {
		unitText = "portion"
	}

	instructions := make([]map[string]any, 0, len(r.Steps))
	for _, step := range r.Steps {
		instructions = append(instructions, map[string]any{
			"type":         "STEP",
			"text":         step.Text(lang),
			"annotations":  step.AnnotationPayloads(lang),
			"missedUsages": []any{},
		})
	}

	ingredients := make([]map[string]any, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, map[string]any{
			"type": "INGREDIENT",
			"text": ing.Text(lang),
		})
	}

	return map[string]any{
		"name":           r.Name,
		"image":          nil,
		"tools":          r.Tools,
		"yield":          map[string]any{"value": r.Servings, "unitText": unitText},
		"prepTime":       r.PrepTimeMinutes * 60,
		"cookTime":       0,
		"totalTime":      r.TotalTimeMinutes * 60,
		"ingredients":    ingredients,
		"instructions":   instructions,
		"hints":          strings.Join(r.Hints, "\n"),
		"workStatus":     "PRIVATE",
		"recipeMetadata": map[string]any{"requiresAnnotationsCheck": false},
	}
}
