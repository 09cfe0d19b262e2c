package scraper

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/net/html"

	"github.com/roivaz/cookidoo-thermomix-mcp/internal/logging"
	"github.com/roivaz/cookidoo-thermomix-mcp/internal/recipe"
)

// ErrNoRecipe is returned when a page carries no schema.org Recipe markup.
var ErrNoRecipe = errors.New("no structured recipe found on page")

// Scraper extracts structured recipes from web pages via their schema.org
// JSON-LD markup, which the large majority of recipe sites publish.
type Scraper struct {
	fetcher *Fetcher
	log     logging.Logger
}

func New(fetcher *Fetcher, log logging.Logger) *Scraper {
	return &Scraper{fetcher: fetcher, log: log}
}

// isoDurationRe covers the PT1H30M shapes found in recipe markup, with an
// optional leading day component.
var isoDurationRe = regexp.MustCompile(`(?i)^P(?:(\d+)D)?T?(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// parseMinutes converts a schema.org time value (ISO-8601 duration or plain
// number of minutes) to minutes. 0 means absent or unparseable.
func parseMinutes(value gjson.Result) int {
	if !value.Exists() {
		return 0
	}
	raw := strings.TrimSpace(value.String())
	if raw == "" {
		return 0
	}

	if m := isoDurationRe.FindStringSubmatch(raw); m != nil {
		days := atoiDefault(m[1])
		hours := atoiDefault(m[2])
		minutes := atoiDefault(m[3])
		seconds := atoiDefault(m[4])
		total := days*24*60 + hours*60 + minutes + seconds/60
		return total
	}

	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	return 0
}

func atoiDefault(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}

var (
	servingsRe   = regexp.MustCompile(`(\d+)`)
	stepHeaderRe = regexp.MustCompile(`(?i)^(?:étape|etape|step|fase|schritt|paso)\s*\d+\s*[:.>)\-]?\s*$`)
)

// parseServings pulls the first integer out of recipeYield, which sites write
// as "4", "4 servings", ["6 portions"], or a bare number.
func parseServings(yield gjson.Result) int {
	raw := yield.String()
	if yield.IsArray() {
		if entries := yield.Array(); len(entries) > 0 {
			raw = entries[0].String()
		}
	}
	if m := servingsRe.FindStringSubmatch(raw); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

// isStepHeader reports whether a line carries no content beyond a step label
// like "Etape 1" or "Step 3:".
func isStepHeader(text string) bool {
	return stepHeaderRe.MatchString(text)
}

func filterStepHeaders(steps []string) []string {
	filtered := steps[:0]
	for _, step := range steps {
		if step = strings.TrimSpace(step); step != "" && !isStepHeader(step) {
			filtered = append(filtered, step)
		}
	}
	return filtered
}

// Scrape fetches the page at url and extracts its recipe.
func (s *Scraper) Scrape(ctx context.Context, url string) (recipe.Scraped, error) {
	page, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return recipe.Scraped{}, err
	}

	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return recipe.Scraped{}, fmt.Errorf("parse HTML: %w", err)
	}

	blocks := extractJSONLDBlocks(doc)
	s.log.Debug("extracted JSON-LD blocks", "url", url, "count", len(blocks))

	for _, block := range blocks {
		node, ok := findRecipeNode(block)
		if !ok {
			continue
		}
		scraped := s.buildScraped(node, url)
		s.log.Info("scraped recipe",
			"url", url,
			"title", scraped.Title,
			"ingredients", len(scraped.Ingredients),
			"steps", len(scraped.Instructions))
		return scraped, nil
	}

	return recipe.Scraped{}, fmt.Errorf("%w: %s", ErrNoRecipe, url)
}

func (s *Scraper) buildScraped(node gjson.Result, url string) recipe.Scraped {
	title := strings.TrimSpace(node.Get("name").String())
	if title == "" {
		title = "Untitled recipe"
	}

	var ingredients []string
	for _, entry := range node.Get("recipeIngredient").Array() {
		if text := strings.TrimSpace(entry.String()); text != "" {
			ingredients = append(ingredients, text)
		}
	}

	instructions := filterStepHeaders(instructionTexts(node.Get("recipeInstructions")))

	return recipe.Scraped{
		Title:        title,
		Ingredients:  ingredients,
		Instructions: instructions,
		TotalTime:    parseMinutes(node.Get("totalTime")),
		PrepTime:     parseMinutes(node.Get("prepTime")),
		CookTime:     parseMinutes(node.Get("cookTime")),
		Servings:     parseServings(node.Get("recipeYield")),
		ImageURL:     imageURL(node.Get("image")),
		SourceURL:    url,
	}
}
