package cookidoo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"

	"github.com/roivaz/cookidoo-thermomix-mcp/internal/logging"
	"github.com/roivaz/cookidoo-thermomix-mcp/internal/recipe"
)

// ErrNotLoggedIn is returned by UploadRecipe before a successful Login.
var ErrNotLoggedIn = errors.New("not logged in, call Login first")

// ErrMissingCredentials signals that email or password configuration is
// absent.
var ErrMissingCredentials = errors.New("missing COOKIDOO_EMAIL and COOKIDOO_PASSWORD configuration")

// Config carries everything the client needs to reach one Cookidoo account.
type Config struct {
	Email        string
	Password     string
	Localization Localization
	ClientID     string
	// UploadDelay is the pause between recipe creation and the content
	// update, giving the backend time to propagate the new recipe.
	UploadDelay time.Duration
	Logger      logging.Logger
}

// Client talks to the Cookidoo account API. The write endpoints mirror the
// ones used by the official mobile app.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.Email == "" || cfg.Password == "" {
		return nil, ErrMissingCredentials
	}
	if cfg.UploadDelay <= 0 {
		cfg.UploadDelay = 3 * time.Second
	}
	return &Client{cfg: cfg}, nil
}

// Login authenticates against the Vorwerk token endpoint with the resource
// owner password grant and keeps a token-refreshing HTTP client for
// subsequent calls.
func (c *Client) Login(ctx context.Context) error {
	oauthCfg := oauth2.Config{
		ClientID: c.cfg.ClientID,
		Endpoint: oauth2.Endpoint{TokenURL: c.cfg.Localization.TokenURL},
	}

	token, err := oauthCfg.PasswordCredentialsToken(ctx, c.cfg.Email, c.cfg.Password)
	if err != nil {
		return fmt.Errorf("cookidoo login: %w", err)
	}

	c.http = oauth2.NewClient(context.Background(), oauthCfg.TokenSource(context.Background(), token))
	c.http.Timeout = 30 * time.Second
	c.cfg.Logger.Info("logged in to Cookidoo", "country", c.cfg.Localization.Country)
	return nil
}

// LoggedIn reports whether Login has succeeded.
func (c *Client) LoggedIn() bool {
	return c != nil && c.http != nil
}

// UploadResult identifies the recipe created on the account.
type UploadResult struct {
	RecipeID string `json:"recipe_id"`
	URL      string `json:"url"`
}

// UploadRecipe writes a Thermomix recipe to the account. Creation is a
// two-phase flow: a name-only POST allocates the recipe, then a PATCH fills
// in the content.
func (c *Client) UploadRecipe(ctx context.Context, r recipe.Thermomix) (UploadResult, error) {
	if !c.LoggedIn() {
		return UploadResult{}, ErrNotLoggedIn
	}

	loc := c.cfg.Localization
	createURL := fmt.Sprintf("%s/created-recipes/%s", loc.Site, loc.Language)

	body, err := c.doJSON(ctx, http.MethodPost, createURL, map[string]any{"recipeName": r.Name}, http.StatusOK)
	if err != nil {
		return UploadResult{}, fmt.Errorf("recipe creation failed: %w", err)
	}
	recipeID := gjson.GetBytes(body, "recipeId").String()
	if recipeID == "" {
		return UploadResult{}, errors.New("no recipeId returned by the API")
	}
	c.cfg.Logger.Debug("recipe created", "recipeId", recipeID)

	// Let the backend propagate the freshly created recipe before patching.
	select {
	case <-time.After(c.cfg.UploadDelay):
	case <-ctx.Done():
		return UploadResult{}, ctx.Err()
	}

	updateURL := fmt.Sprintf("%s/created-recipes/%s/%s", loc.Site, loc.Language, recipeID)
	if _, err := c.doJSON(ctx, http.MethodPatch, updateURL, r.CookidooPayload(), http.StatusOK, http.StatusNoContent); err != nil {
		return UploadResult{}, fmt.Errorf("recipe update failed: %w", err)
	}

	result := UploadResult{
		RecipeID: recipeID,
		URL:      fmt.Sprintf("https://%s/recipes/custom-recipes/%s", loc.Host(), recipeID),
	}
	c.cfg.Logger.Info("recipe uploaded", "recipeId", recipeID, "url", result.URL)
	return result, nil
}

func (c *Client) doJSON(ctx context.Context, method, url string, payload any, okStatuses ...int) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	for _, status := range okStatuses {
		if resp.StatusCode == status {
			return body, nil
		}
	}
	return nil, fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(body), 300))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
