package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/roivaz/cookidoo-thermomix-mcp/internal/convert"
	"github.com/roivaz/cookidoo-thermomix-mcp/internal/cookidoo"
	"github.com/roivaz/cookidoo-thermomix-mcp/internal/history"
	"github.com/roivaz/cookidoo-thermomix-mcp/internal/logging"
	"github.com/roivaz/cookidoo-thermomix-mcp/internal/mcp/tools/types"
	"github.com/roivaz/cookidoo-thermomix-mcp/internal/recipe"
	"github.com/roivaz/cookidoo-thermomix-mcp/internal/scraper"
)

// ErrConnect wraps login failures so handlers can tell them apart from
// scraping errors.
var ErrConnect = errors.New("unable to connect to Cookidoo")

// Credentials and locale are read lazily so the server can start (and
// preview_recipe can work) without a configured account.
type CredentialsFunc func() (cookidoo.Config, error)

// RecipeService backs the import and preview tools: scrape, convert, and for
// imports upload plus history recording.
type RecipeService struct {
	Scraper     *scraper.Scraper
	Locale      string // language tag, e.g. "fr-FR"
	Credentials CredentialsFunc
	History     *history.Store
	Logger      logging.Logger

	mu     sync.Mutex
	client *cookidoo.Client
}

// shortLocale trims a language tag to its language part: "fr-FR" -> "fr".
func shortLocale(language string) string {
	lang, _, _ := strings.Cut(language, "-")
	return lang
}

// Preview scrapes and converts without touching the account API.
func (s *RecipeService) Preview(ctx context.Context, url string) (recipe.Thermomix, error) {
	scraped, err := s.Scraper.Scrape(ctx, url)
	if err != nil {
		return recipe.Thermomix{}, err
	}
	return convert.Recipe(scraped, shortLocale(s.Locale)), nil
}

// connect lazily logs in to Cookidoo, reusing the client across calls.
func (s *RecipeService) connect(ctx context.Context) (*cookidoo.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil && s.client.LoggedIn() {
		return s.client, nil
	}

	cfg, err := s.Credentials()
	if err != nil {
		return nil, err
	}
	client, err := cookidoo.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	if err := client.Login(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}
	s.client = client
	return client, nil
}

// Import scrapes, converts, uploads, and records the import in history when a
// store is configured. History failures never fail the import.
func (s *RecipeService) Import(ctx context.Context, url string) (types.ImportOutcome, error) {
	client, err := s.connect(ctx)
	if err != nil {
		return types.ImportOutcome{}, err
	}

	scraped, err := s.Scraper.Scrape(ctx, url)
	if err != nil {
		return types.ImportOutcome{}, err
	}

	converted := convert.Recipe(scraped, shortLocale(s.Locale))

	upload, err := client.UploadRecipe(ctx, converted)
	if err != nil {
		return types.ImportOutcome{Recipe: converted}, err
	}

	if s.History != nil {
		record := &history.ImportRecord{
			Title:       converted.Name,
			SourceURL:   converted.SourceURL,
			CookidooURL: upload.URL,
			RecipeID:    upload.RecipeID,
			Locale:      s.Locale,
			Servings:    converted.Servings,
			Steps:       len(converted.Steps),
			ImportedAt:  time.Now().UTC(),
		}
		if err := s.History.Record(ctx, record); err != nil {
			s.Logger.Error(err, "failed to record import history", "url", url)
		}
	}

	return types.ImportOutcome{Recipe: converted, Upload: upload}, nil
}
