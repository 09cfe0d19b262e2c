package convert

// stepParams are the machine parameters backing a keyword match. Zero values
// mean "not set".
type stepParams struct {
	Speed    int
	Temp     int
	Duration int // seconds
	Reverse  bool
	Varoma   bool
}

type keywordRule struct {
	Keyword string
	Params  stepParams
}

// Keyword tables are matched against accent-stripped, lowercased step text,
// first match wins. Values follow Vorwerk documentation and official Cookidoo
// recipes.

var mixingKeywords = []keywordRule{
	// French
	{"melanger", stepParams{Speed: 3, Duration: 30}},
	{"mixer", stepParams{Speed: 8, Duration: 30}},
	{"battre", stepParams{Speed: 4, Duration: 45}},
	{"fouetter", stepParams{Speed: 4, Duration: 60}},
	{"petrir", stepParams{Speed: 6, Duration: 120}}, // dough mode, speed 6 = approx
	{"hacher", stepParams{Speed: 5, Duration: 5}},
	{"emincer", stepParams{Speed: 5, Duration: 5}},
	{"pulveriser", stepParams{Speed: 10, Duration: 15}},
	{"broyer", stepParams{Speed: 10, Duration: 30}},
	{"raper", stepParams{Speed: 5, Duration: 10}},
	{"concasser", stepParams{Speed: 5, Duration: 10}},
	{"incorporer", stepParams{Speed: 3, Duration: 30, Reverse: true}},
	{"remuer", stepParams{Speed: 1, Duration: 60, Reverse: true}},   // spoon speed
	{"touiller", stepParams{Speed: 1, Duration: 30, Reverse: true}}, // spoon speed
	// English
	{"mix", stepParams{Speed: 3, Duration: 30}},
	{"blend", stepParams{Speed: 8, Duration: 30}},
	{"beat", stepParams{Speed: 4, Duration: 45}},
	{"whisk", stepParams{Speed: 4, Duration: 60}},
	{"whip", stepParams{Speed: 4, Duration: 60}},
	{"knead", stepParams{Speed: 6, Duration: 120}},
	{"chop", stepParams{Speed: 5, Duration: 5}},
	{"dice", stepParams{Speed: 5, Duration: 5}},
	{"slice", stepParams{Speed: 5, Duration: 5}},
	{"mince", stepParams{Speed: 5, Duration: 5}},
	{"grind", stepParams{Speed: 10, Duration: 30}},
	{"grate", stepParams{Speed: 5, Duration: 10}},
	{"shred", stepParams{Speed: 5, Duration: 10}},
	{"crush", stepParams{Speed: 5, Duration: 10}},
	{"puree", stepParams{Speed: 8, Duration: 30}},
	{"fold", stepParams{Speed: 3, Duration: 30, Reverse: true}},
	{"combine", stepParams{Speed: 3, Duration: 30}},
	{"stir", stepParams{Speed: 1, Duration: 60, Reverse: true}},
	{"emulsify", stepParams{Speed: 4, Duration: 30}},
}

var cookingKeywords = []keywordRule{
	// French
	{"cuire", stepParams{Speed: 1, Temp: 100}},
	{"mijoter", stepParams{Speed: 1, Temp: 90, Reverse: true}},
	{"rissoler", stepParams{Speed: 1, Temp: 120}},
	{"sauter", stepParams{Speed: 1, Temp: 120}},
	{"saute", stepParams{Speed: 1, Temp: 120}},
	{"revenir", stepParams{Speed: 1, Temp: 120, Reverse: true}},
	{"faire revenir", stepParams{Speed: 1, Temp: 120, Reverse: true}},
	{"dorer", stepParams{Speed: 1, Temp: 120, Reverse: true}},
	{"fondre", stepParams{Speed: 1, Temp: 50}},
	{"faire fondre", stepParams{Speed: 1, Temp: 50}},
	{"chauffer", stepParams{Speed: 2, Temp: 90}},
	{"rechauffer", stepParams{Speed: 2, Temp: 70}},
	{"bouillir", stepParams{Speed: 1, Temp: 100}},
	{"fremir", stepParams{Speed: 1, Temp: 90}},
	{"porter a ebullition", stepParams{Speed: 1, Temp: 100}},
	{"blanchir", stepParams{Speed: 1, Temp: 100}},
	{"braiser", stepParams{Speed: 1, Temp: 100, Reverse: true}},
	{"compoter", stepParams{Speed: 1, Temp: 90, Reverse: true}},
	{"confire", stepParams{Speed: 1, Temp: 80, Reverse: true}},
	{"carameliser", stepParams{Speed: 2, Temp: 120}},
	{"vapeur", stepParams{Speed: 1, Temp: 100, Varoma: true}},
	// English
	{"cook", stepParams{Speed: 1, Temp: 100}},
	{"simmer", stepParams{Speed: 1, Temp: 90, Reverse: true}},
	{"sear", stepParams{Speed: 1, Temp: 120}},
	{"fry", stepParams{Speed: 1, Temp: 120}},
	{"brown", stepParams{Speed: 1, Temp: 120, Reverse: true}},
	{"melt", stepParams{Speed: 1, Temp: 50}},
	{"heat", stepParams{Speed: 2, Temp: 90}},
	{"warm", stepParams{Speed: 2, Temp: 70}},
	{"reheat", stepParams{Speed: 2, Temp: 70}},
	{"boil", stepParams{Speed: 1, Temp: 100}},
	{"bring to a boil", stepParams{Speed: 1, Temp: 100}},
	{"blanch", stepParams{Speed: 1, Temp: 100}},
	{"braise", stepParams{Speed: 1, Temp: 100, Reverse: true}},
	{"caramelize", stepParams{Speed: 2, Temp: 120}},
	{"steam", stepParams{Speed: 1, Temp: 100, Varoma: true}},
	{"roast", stepParams{Speed: 1, Temp: 120}},
	{"reduce", stepParams{Speed: 1, Temp: 100}},
	{"poach", stepParams{Speed: 1, Temp: 80}},
	{"scald", stepParams{Speed: 1, Temp: 90}},
}

// Phrases that trigger Turbo pulses instead of a regular speed.
var turboKeywords = []string{
	// French
	"mixer finement", "reduire en poudre", "glace pilee",
	// English
	"crush ice", "grind to powder", "finely blend",
}

// unitsPattern matches ingredient units, longer alternatives first so "lb"
// never loses to a bare "l".
const unitsPattern = `tablespoons?|tbsp|teaspoons?|tsp|cups?|ounces?|oz|pounds?|lbs?` +
	`|pinch|slices?|leaves?|cloves?|bunch|sprigs?|sticks?|cans?|pieces?` +
	`|grammes?|kilogrammes?|litres?|kg|ml|cl|g` +
	`|c\.\s*à\s*[sc]|cuillères?\s*à\s*\w+|pincées?|sachets?|tranches?|feuilles?` +
	`|l\b`

var unitMap = map[string]string{
	// French
	"gramme":      "g",
	"grammes":     "g",
	"kilogramme":  "kg",
	"kilogrammes": "kg",
	"litre":       "l",
	"litres":      "l",
	// English
	"tablespoon":  "tbsp",
	"tablespoons": "tbsp",
	"teaspoon":    "tsp",
	"teaspoons":   "tsp",
	"ounce":       "oz",
	"ounces":      "oz",
	"pound":       "lb",
	"pounds":      "lb",
	"lbs":         "lb",
	"cup":         "cup",
	"cups":        "cup",
}

var fractionMap = map[string]string{
	"0.25": "¼",
	"0.33": "⅓",
	"0.5":  "½",
	"0.66": "⅔",
	"0.75": "¾",
}

// toolKeywords maps Cookidoo tool names to the instruction phrases that imply
// them. Order fixes the tool list order in the payload.
var toolKeywords = []struct {
	Tool     string
	Keywords []string
}{
	{"Four", []string{"four", "enfourner", "oven", "bake", "baking", "prechauffer", "preheat"}},
	{"Varoma", []string{"varoma", "vapeur", "steam", "steaming"}},
	{"Fouet papillon", []string{"fouet papillon", "butterfly", "butterfly whisk", "monter en neige", "chantilly", "creme fouettee", "whipped cream", "stiff peaks", "soft peaks"}},
	{"Panier de cuisson", []string{"panier de cuisson", "steaming basket", "steam basket"}},
}
