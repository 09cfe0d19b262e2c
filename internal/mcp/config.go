package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/cookidoo-thermomix-mcp/internal/config"
	"github.com/roivaz/cookidoo-thermomix-mcp/internal/cookidoo"
	"github.com/roivaz/cookidoo-thermomix-mcp/internal/history"
	"github.com/roivaz/cookidoo-thermomix-mcp/internal/logging"
	"github.com/roivaz/cookidoo-thermomix-mcp/internal/mcp/tools"
	"github.com/roivaz/cookidoo-thermomix-mcp/internal/scraper"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
	History      *history.Store
	Logger       logging.Logger
}

// DefaultConfig wires the tool handlers from the process configuration.
// Credentials are resolved lazily on the first import so a misconfigured
// account never prevents startup or previews.
func DefaultConfig() (Config, error) {
	baseLogger := logging.New(logging.ForLevel(config.LogLevel()))

	var store *history.Store
	if dsn := config.HistoryDSN(); dsn != "" {
		var err error
		store, err = history.NewStore(history.Config{DSN: dsn, Debug: config.HistoryDebug()})
		if err != nil {
			return Config{}, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.Bootstrap(ctx); err != nil {
			return Config{}, err
		}
	}

	fetcher := scraper.NewFetcher(config.ScrapeTimeout(), config.ScrapeUserAgent())
	recipeScraper := scraper.New(fetcher, baseLogger.WithName("scraper"))

	service := &tools.RecipeService{
		Scraper:     recipeScraper,
		Locale:      config.Language(),
		Credentials: credentialsFromConfig(baseLogger),
		History:     store,
		Logger:      baseLogger.WithName("service"),
	}

	adapters := map[string]ToolAdapter{
		"import_recipe":  &tools.ImportRecipeHandler{Service: service},
		"preview_recipe": &tools.PreviewRecipeHandler{Service: service},
	}
	if store != nil {
		adapters["list_imports"] = &tools.ListImportsHandler{Service: store}
	}

	return Config{
		ToolAdapters: adapters,
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
		History: store,
		Logger:  baseLogger,
	}, nil
}

func credentialsFromConfig(log logging.Logger) tools.CredentialsFunc {
	return func() (cookidoo.Config, error) {
		email, password := config.Email(), config.Password()
		if email == "" || password == "" {
			return cookidoo.Config{}, cookidoo.ErrMissingCredentials
		}
		localization, err := cookidoo.LocalizationFor(config.Country(), config.Language())
		if err != nil {
			return cookidoo.Config{}, err
		}
		return cookidoo.Config{
			Email:        email,
			Password:     password,
			Localization: localization,
			ClientID:     config.CookidooClientID(),
			UploadDelay:  config.UploadDelay(),
			Logger:       log.WithName("cookidoo"),
		}, nil
	}
}
