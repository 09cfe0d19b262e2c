package recipe

import (
	"fmt"
	"strings"
)

// Step is a recipe step in Thermomix form. Duration, temperature and speed are
// the machine parameters inferred from (or parsed out of) the original step.
type Step struct {
	Description     string `json:"description"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
	Temperature     int    `json:"temperature,omitempty"` // °C, 37..120
	Speed           int    `json:"speed,omitempty"`       // 1..10
	Reverse         bool   `json:"reverse,omitempty"`     // spoon mode
	Turbo           bool   `json:"turbo,omitempty"`
	Varoma          bool   `json:"varoma,omitempty"`

	TTSAnnotations        []TTSAnnotation        `json:"-"`
	IngredientAnnotations []IngredientAnnotation `json:"-"`
}

// TTSText formats the machine parameters as Cookidoo TTS text, e.g.
// "30 sec/vitesse 3" or "5 min/100°C/vitesse 1". Returns "" when the step has
// no machine parameters.
func (s Step) TTSText(locale string) string {
	var details []string
	if s.DurationSeconds > 0 {
		minutes, secs := s.DurationSeconds/60, s.DurationSeconds%60
		if minutes > 0 {
			t := fmt.Sprintf("%d min", minutes)
			if secs > 0 {
				t += fmt.Sprintf(" %d sec", secs)
			}
			details = append(details, t)
		} else {
			details = append(details, fmt.Sprintf("%d sec", secs))
		}
	}
	if s.Varoma {
		details = append(details, "Varoma")
	} else if s.Temperature > 0 {
		details = append(details, fmt.Sprintf("%d°C", s.Temperature))
	}
	if s.Turbo {
		details = append(details, "Turbo")
	} else if s.Speed > 0 {
		label := "speed"
		if strings.HasPrefix(locale, "fr") {
			label = "vitesse"
		}
		details = append(details, fmt.Sprintf("%s %d", label, s.Speed))
	}
	return strings.Join(details, "/")
}

// Text formats the step as Cookidoo step text, TTS suffix included.
func (s Step) Text(locale string) string {
	if tts := s.TTSText(locale); tts != "" {
		return s.Description + " " + tts
	}
	return s.Description
}

// AnnotationPayloads builds all Cookidoo annotations for the step, INGREDIENT
// entries first, then TTS.
func (s Step) AnnotationPayloads(locale string) []map[string]any {
	annotations := make([]map[string]any, 0, len(s.IngredientAnnotations)+len(s.TTSAnnotations))
	for _, ing := range s.IngredientAnnotations {
		annotations = append(annotations, ing.Payload(locale))
	}
	for _, tts := range s.TTSAnnotations {
		annotations = append(annotations, tts.Payload())
	}
	return annotations
}
