package convert

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/roivaz/cookidoo-thermomix-mcp/internal/recipe"
)

var (
	// "Oignon blanc - 1", "Huile d'olive - 20 grammes"
	nameFirstRe = regexp.MustCompile(`(?i)^(.+?)\s*[-–]\s*([\d/.,]+)\s*(` + unitsPattern + `)?\s*$`)
	// "200 g de farine", "3 oeufs", "1 cup flour"
	qtyFirstRe = regexp.MustCompile(`(?i)^([\d/.,]+)\s*(` + unitsPattern + `)?\s*(?:de\s+|d['’]|of\s+)?\s*(.+)$`)
)

func normalizeUnit(unit string) string {
	if unit == "" {
		return ""
	}
	if short, ok := unitMap[strings.ToLower(unit)]; ok {
		return short
	}
	return unit
}

// normalizeQuantity renders decimal quantities as unicode fractions where one
// exists, e.g. "0.75" -> "¾" and "1.5" -> "1 ½".
func normalizeQuantity(qty string) string {
	qty = strings.TrimSpace(qty)
	if qty == "" {
		return ""
	}
	if frac, ok := fractionMap[qty]; ok {
		return frac
	}

	val, err := strconv.ParseFloat(strings.ReplaceAll(qty, ",", "."), 64)
	if err != nil {
		return qty
	}
	whole := int(val)
	decimal := math.Round((val-float64(whole))*100) / 100
	if decimal > 0 {
		if frac, ok := fractionMap[strconv.FormatFloat(decimal, 'g', 2, 64)]; ok {
			if whole > 0 {
				return strconv.Itoa(whole) + " " + frac
			}
			return frac
		}
	}
	return qty
}

// parseNumericQuantity converts a raw quantity ("200", "1.5", "3/4") to its
// numeric value, nil when unparseable.
func parseNumericQuantity(raw string) *float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if cleaned == "" {
		return nil
	}
	if num, denom, ok := strings.Cut(cleaned, "/"); ok {
		n, errN := strconv.ParseFloat(num, 64)
		d, errD := strconv.ParseFloat(denom, 64)
		if errN != nil || errD != nil || d == 0 {
			return nil
		}
		v := n / d
		return &v
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}

// Ingredient parses a raw ingredient line into a structured Ingredient. Both
// "Name - quantity unit" and "quantity unit name" layouts are recognized;
// anything else becomes a bare name.
func Ingredient(raw string) recipe.Ingredient {
	text := strings.TrimSpace(raw)

	if m := nameFirstRe.FindStringSubmatch(text); m != nil {
		return recipe.Ingredient{
			Name:            strings.TrimSpace(m[1]),
			Quantity:        normalizeQuantity(m[2]),
			Unit:            normalizeUnit(m[3]),
			QuantityNumeric: parseNumericQuantity(m[2]),
		}
	}

	if m := qtyFirstRe.FindStringSubmatch(text); m != nil {
		return recipe.Ingredient{
			Quantity:        normalizeQuantity(m[1]),
			Unit:            normalizeUnit(m[2]),
			Name:            strings.TrimSpace(m[3]),
			QuantityNumeric: parseNumericQuantity(m[1]),
		}
	}

	return recipe.Ingredient{Name: text}
}
