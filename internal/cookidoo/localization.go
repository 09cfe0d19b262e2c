package cookidoo

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"sigs.k8s.io/yaml"
)

// Localization describes one supported Cookidoo country: which site hosts the
// account and where login tokens come from.
type Localization struct {
	Country  string `json:"country"`
	Language string `json:"language"`
	Label    string `json:"label"`
	Site     string `json:"site"`
	TokenURL string `json:"tokenURL"`
}

//go:embed locales.yaml
var localesYAML []byte

var loadLocales = sync.OnceValues(func() ([]Localization, error) {
	var table struct {
		Locales []Localization `json:"locales"`
	}
	if err := yaml.Unmarshal(localesYAML, &table); err != nil {
		return nil, fmt.Errorf("parse embedded locale table: %w", err)
	}
	return table.Locales, nil
})

// Locales returns the supported localization presets in menu order.
func Locales() []Localization {
	locales, err := loadLocales()
	if err != nil {
		// The table is embedded; a parse failure is a build defect.
		panic(err)
	}
	return locales
}

// LocalizationFor resolves a country code (and optional language override) to
// a Localization.
func LocalizationFor(country, language string) (Localization, error) {
	for _, loc := range Locales() {
		if strings.EqualFold(loc.Country, country) {
			if language != "" {
				loc.Language = language
			}
			return loc, nil
		}
	}
	return Localization{}, fmt.Errorf("unsupported country %q", country)
}

// Host returns the site host without scheme, e.g. "cookidoo.fr".
func (l Localization) Host() string {
	return strings.TrimPrefix(strings.TrimPrefix(l.Site, "https://"), "http://")
}
