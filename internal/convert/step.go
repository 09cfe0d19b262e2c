package convert

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/roivaz/cookidoo-thermomix-mcp/internal/recipe"
)

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// stripAccents removes diacritics, e.g. "émincer" -> "emincer".
func stripAccents(text string) string {
	out, _, err := transform.String(accentStripper, text)
	if err != nil {
		return text
	}
	return out
}

var (
	// Inline TTS fragments: "5 sec/vitesse 5", "2 min/120°C/vitesse 1", "100°C/speed 1".
	ttsTextRe = regexp.MustCompile(`(?i)\s*\.?\s*(?:\d+\s*(?:sec|min|s)\s*/\s*)?(?:\d+\s*°C\s*/\s*)?(?:vitesse|speed)\s*[\d.]+\s*\.?\s*`)
	// Old-format TTS in parentheses: "(100°C, speed 1)", "(30 s, speed 3)".
	oldTTSRe = regexp.MustCompile(`(?i)\s*\([^)]*(?:speed|vitesse)\s*[\d.]+[^)]*\)\s*`)

	inThermomixRe = regexp.MustCompile(`(?i)(?:dans|au)\s+(?:le\s+)?thermomix`)
	ofThermomixRe = regexp.MustCompile(`(?i)du\s+thermomix`)
	multiSpaceRe  = regexp.MustCompile(`\s+`)
	doubleDotRe   = regexp.MustCompile(`\.\s*\.$`)

	speedRe       = regexp.MustCompile(`(?i)(?:vitesse|speed)\s*([\d.]+)`)
	minutesRe     = regexp.MustCompile(`(\d+)\s*(?:minutes?|min)`)
	secondsRe     = regexp.MustCompile(`(\d+)\s*(?:secondes?|seconds?|sec|s\b)`)
	hoursRe       = regexp.MustCompile(`(\d+)\s*h(?:eures?|ours?)?\s*(\d+)?`)
	temperatureRe = regexp.MustCompile(`(\d+)\s*°\s*[Cc]?`)
	varomaRe      = regexp.MustCompile(`\bvaroma\b`)
)

// cleanDescription strips embedded TTS fragments and normalizes Thermomix
// wording in the step text.
func cleanDescription(text string) string {
	text = oldTTSRe.ReplaceAllString(text, " ")
	text = ttsTextRe.ReplaceAllString(text, " ")
	// "dans le Thermomix" / "au Thermomix" -> "dans le bol"
	text = inThermomixRe.ReplaceAllString(text, "dans le bol")
	text = ofThermomixRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(multiSpaceRe.ReplaceAllString(text, " "))
	return doubleDotRe.ReplaceAllString(text, ".")
}

func parseSpeed(text string) int {
	m := speedRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	speed := int(math.Round(v))
	if speed < 1 {
		speed = 1
	}
	return speed
}

// parseDuration extracts a duration in seconds from free text, 0 when absent.
func parseDuration(text string) int {
	lower := strings.ToLower(text)
	if m := minutesRe.FindStringSubmatch(lower); m != nil {
		v, _ := strconv.Atoi(m[1])
		return v * 60
	}
	if m := secondsRe.FindStringSubmatch(lower); m != nil {
		v, _ := strconv.Atoi(m[1])
		return v
	}
	if m := hoursRe.FindStringSubmatch(lower); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes := 0
		if m[2] != "" {
			minutes, _ = strconv.Atoi(m[2])
		}
		return (hours*60 + minutes) * 60
	}
	return 0
}

// parseTemperature extracts a temperature in °C, capped at the Thermomix
// limit of 120°C. Values below 37°C are ignored, 0 means absent.
func parseTemperature(text string) int {
	m := temperatureRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	temp, _ := strconv.Atoi(m[1])
	if temp < 37 {
		return 0
	}
	if temp > 120 {
		return 120
	}
	return temp
}

func mentionsVaroma(text string) bool {
	return varomaRe.MatchString(strings.ToLower(text))
}

// buildTTSAnnotation derives a TTS annotation from the step's machine
// parameters, positioned over the TTS text appended after the description.
func buildTTSAnnotation(step recipe.Step, locale string) (recipe.TTSAnnotation, bool) {
	ttsStr := step.TTSText(locale)
	if ttsStr == "" {
		return recipe.TTSAnnotation{}, false
	}

	annotation := recipe.TTSAnnotation{
		Position: recipe.AnnotationPosition{
			Offset: utf8.RuneCountInString(step.Description) + 1,
			Length: utf8.RuneCountInString(ttsStr),
		},
		TimeSeconds: step.DurationSeconds,
	}
	switch {
	case step.Varoma:
		annotation.TemperatureValue = "varoma"
	case step.Temperature > 0:
		annotation.TemperatureValue = strconv.Itoa(step.Temperature)
	}
	switch {
	case step.Turbo:
		annotation.Speed = "Turbo"
	case step.Speed > 0:
		annotation.Speed = strconv.Itoa(step.Speed)
	}
	return annotation, true
}

// Step converts a plain cooking step into a Thermomix step. Keyword defaults
// fill in speed, temperature and duration; values spelled out in the text
// override them.
func Step(stepText, locale string) recipe.Step {
	normalized := stripAccents(strings.ToLower(stepText))

	var params stepParams
	varoma := mentionsVaroma(stepText)
	turbo := false

	for _, kw := range turboKeywords {
		if strings.Contains(normalized, kw) {
			turbo = true
			params.Duration = 15
			break
		}
	}

	if !turbo {
		// Cooking keywords take priority over mixing keywords.
		for _, rule := range cookingKeywords {
			if strings.Contains(normalized, rule.Keyword) {
				params = rule.Params
				if params.Speed == 0 {
					params.Speed = 1
				}
				if params.Varoma {
					varoma = true
				}
				break
			}
		}
		if params.Speed == 0 {
			for _, rule := range mixingKeywords {
				if strings.Contains(normalized, rule.Keyword) {
					params = rule.Params
					if params.Speed == 0 {
						params.Speed = 3
					}
					if params.Duration == 0 {
						params.Duration = 30
					}
					break
				}
			}
		}
	}

	if !varoma {
		if temp := parseTemperature(stepText); temp > 0 {
			params.Temp = temp
		}
	}
	if d := parseDuration(stepText); d > 0 {
		params.Duration = d
	}
	if s := parseSpeed(stepText); s > 0 {
		params.Speed = s
	}

	step := recipe.Step{
		Description:     cleanDescription(stepText),
		DurationSeconds: params.Duration,
		Temperature:     params.Temp,
		Speed:           params.Speed,
		Reverse:         params.Reverse,
		Turbo:           turbo,
		Varoma:          varoma,
	}

	if annotation, ok := buildTTSAnnotation(step, locale); ok {
		step.TTSAnnotations = []recipe.TTSAnnotation{annotation}
	}

	return step
}
