package recipe

import (
	"strings"
	"unicode/utf8"
)

// Ingredient is a structured recipe ingredient with optional quantity.
type Ingredient struct {
	Name            string   `json:"name"`
	Quantity        string   `json:"quantity,omitempty"`
	Unit            string   `json:"unit,omitempty"`
	QuantityNumeric *float64 `json:"quantity_numeric,omitempty"`
	QuantityMax     *float64 `json:"quantity_max,omitempty"`
}

const frenchVowels = "aeiouyàâéèêëïîôùûüAEIOUY"

// Text formats the ingredient the way Cookidoo displays it.
//
// FR: "200 g de boulgour", "20 g d'huile d'olive".
// EN: "200 g flour", "1 tbsp olive oil".
func (i Ingredient) Text(locale string) string {
	name := lowerFirst(i.Name)
	switch {
	case i.Quantity != "" && i.Unit != "":
		if strings.HasPrefix(locale, "fr") {
			first, _ := utf8.DecodeRuneInString(name)
			if name != "" && strings.ContainsRune(frenchVowels, first) {
				return i.Quantity + " " + i.Unit + " d'" + name
			}
			return i.Quantity + " " + i.Unit + " de " + name
		}
		return i.Quantity + " " + i.Unit + " " + name
	case i.Quantity != "":
		return i.Quantity + " " + name
	default:
		return name
	}
}

// VolumeAnnotation returns the VOLUME annotation payload for the ingredient,
// or nil when no numeric quantity is known.
func (i Ingredient) VolumeAnnotation() map[string]any {
	if i.QuantityNumeric == nil {
		return nil
	}
	data := map[string]any{"amount": *i.QuantityNumeric}
	if i.QuantityMax != nil {
		data["amountMax"] = *i.QuantityMax
	}
	if i.Unit != "" {
		data["unit"] = i.Unit
	}
	return data
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToLower(string(r[0])) + string(r[1:])
}
