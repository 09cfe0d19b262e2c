package convert

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/roivaz/cookidoo-thermomix-mcp/internal/recipe"
)

const quantityStart = `[\d¼½¾⅓⅔][\d/.,¼½¾⅓⅔]*\s*`

// frenchArticle prefixes the lowercased name with "le " or elides to "l'".
func frenchArticle(name string) string {
	low := lowerFirst(name)
	first, _ := utf8.DecodeRuneInString(low)
	if low != "" && strings.ContainsRune("aeiouyàâéèêëïîôùûüh", first) {
		return "l'" + low
	}
	return "le " + low
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToLower(string(r[0])) + string(r[1:])
}

// stripIngredientQuantities replaces quantity-bearing ingredient mentions in
// step text with articles: "200 grammes de boulgour" -> "le boulgour",
// "20 grammes d'huile d'olive" -> "l'huile d'olive".
func stripIngredientQuantities(text string, ingredients []recipe.Ingredient, locale string) string {
	// Longest names first so partial matches never shadow full ones.
	sorted := make([]recipe.Ingredient, len(ingredients))
	copy(sorted, ingredients)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Name) > len(sorted[j].Name)
	})

	for _, ing := range sorted {
		if ing.Name == "" {
			continue
		}
		pattern := regexp.MustCompile(`(?i)` + quantityStart +
			`(?:` + unitsPattern + `)?\s*(?:de\s+|d['’]\s*)?` + regexp.QuoteMeta(ing.Name))
		replacement := lowerFirst(ing.Name)
		if strings.HasPrefix(locale, "fr") {
			replacement = frenchArticle(ing.Name)
		}
		text = pattern.ReplaceAllString(text, replacement)
	}
	return text
}

// findIngredientMentions locates each ingredient's first mention in the step
// text and returns link annotations with character-based positions.
func findIngredientMentions(stepText string, ingredients []recipe.Ingredient) []recipe.IngredientAnnotation {
	var annotations []recipe.IngredientAnnotation
	textLower := strings.ToLower(stepText)

	for _, ing := range ingredients {
		if ing.Name == "" {
			continue
		}
		idx := strings.Index(textLower, strings.ToLower(ing.Name))
		if idx < 0 {
			continue
		}
		annotations = append(annotations, recipe.IngredientAnnotation{
			Position: recipe.AnnotationPosition{
				Offset: utf8.RuneCountInString(stepText[:idx]),
				Length: utf8.RuneCountInString(ing.Name),
			},
			Ingredient: ing,
		})
	}
	return annotations
}

// detectTools lists the Cookidoo tools implied by the instructions. TM7 is
// always first.
func detectTools(instructions []string) []string {
	tools := []string{"TM7"}
	text := stripAccents(strings.ToLower(strings.Join(instructions, " ")))

	for _, entry := range toolKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(text, kw) {
				tools = append(tools, entry.Tool)
				break
			}
		}
	}
	return tools
}

// Recipe converts a scraped recipe into a complete Thermomix recipe ready for
// Cookidoo upload.
func Recipe(scraped recipe.Scraped, locale string) recipe.Thermomix {
	ingredients := make([]recipe.Ingredient, 0, len(scraped.Ingredients))
	for _, raw := range scraped.Ingredients {
		ingredients = append(ingredients, Ingredient(raw))
	}

	steps := make([]recipe.Step, 0, len(scraped.Instructions))
	for _, raw := range scraped.Instructions {
		steps = append(steps, Step(raw, locale))
	}

	// Quantities live in the ingredient list, not in step prose; link the
	// remaining mentions back to their ingredients. Stripping changes the
	// description length, so TTS annotations are rebuilt afterwards.
	for i := range steps {
		steps[i].Description = stripIngredientQuantities(steps[i].Description, ingredients, locale)
		if len(steps[i].TTSAnnotations) > 0 {
			if annotation, ok := buildTTSAnnotation(steps[i], locale); ok {
				steps[i].TTSAnnotations = []recipe.TTSAnnotation{annotation}
			}
		}
		steps[i].IngredientAnnotations = findIngredientMentions(steps[i].Text(locale), ingredients)
	}

	var hints []string
	if scraped.SourceURL != "" {
		hints = append(hints, "Original recipe: "+scraped.SourceURL)
	}

	servings := scraped.Servings
	if servings == 0 {
		servings = 4
	}
	prep := scraped.PrepTime
	if prep == 0 {
		prep = 15
	}
	total := scraped.TotalTime
	if total == 0 {
		total = 45
	}

	return recipe.Thermomix{
		Name:             scraped.Title,
		Ingredients:      ingredients,
		Steps:            steps,
		Servings:         servings,
		PrepTimeMinutes:  prep,
		TotalTimeMinutes: total,
		Hints:            hints,
		Tools:            detectTools(scraped.Instructions),
		SourceURL:        scraped.SourceURL,
		Locale:           locale,
	}
}
