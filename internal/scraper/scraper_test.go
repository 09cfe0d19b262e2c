package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-logr/zapr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/roivaz/cookidoo-thermomix-mcp/internal/logging"
)

func testLogger() logging.Logger {
	return logging.New(zapr.NewLogger(zap.NewNop()))
}

const recipePage = `<!DOCTYPE html>
<html><head>
<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@graph": [
    {"@type": "WebSite", "name": "Example"},
    {
      "@type": "Recipe",
      "name": "Tarte aux pommes",
      "recipeIngredient": ["3 pommes", "1 pâte brisée"],
      "recipeInstructions": [
        {"@type": "HowToStep", "text": "Etape 1"},
        {"@type": "HowToStep", "text": "Préchauffer le four à 180°C"},
        {"@type": "HowToStep", "text": "Disposer les pommes sur la pâte"}
      ],
      "totalTime": "PT1H",
      "prepTime": "PT15M",
      "recipeYield": "6 personnes",
      "image": {"@type": "ImageObject", "url": "https://example.com/tarte.jpg"}
    }
  ]
}
</script>
</head><body><h1>Tarte aux pommes</h1></body></html>`

func TestScrape(t *testing.T) {
	var gotAgent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(recipePage))
	}))
	defer ts.Close()

	s := New(NewFetcher(5*time.Second, "test-agent"), testLogger())
	scraped, err := s.Scrape(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Equal(t, "test-agent", gotAgent)
	assert.Equal(t, "Tarte aux pommes", scraped.Title)
	assert.Equal(t, []string{"3 pommes", "1 pâte brisée"}, scraped.Ingredients)
	// "Etape 1" is a bare step label, not an instruction.
	assert.Equal(t, []string{
		"Préchauffer le four à 180°C",
		"Disposer les pommes sur la pâte",
	}, scraped.Instructions)
	assert.Equal(t, 60, scraped.TotalTime)
	assert.Equal(t, 15, scraped.PrepTime)
	assert.Equal(t, 6, scraped.Servings)
	assert.Equal(t, "https://example.com/tarte.jpg", scraped.ImageURL)
	assert.Equal(t, ts.URL, scraped.SourceURL)
}

func TestScrapeNoRecipe(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>No recipe here</p></body></html>"))
	}))
	defer ts.Close()

	s := New(NewFetcher(5*time.Second, ""), testLogger())
	_, err := s.Scrape(context.Background(), ts.URL)
	assert.ErrorIs(t, err, ErrNoRecipe)
}

func TestScrapeHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	s := New(NewFetcher(5*time.Second, ""), testLogger())
	_, err := s.Scrape(context.Background(), ts.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestFetcherValidateURL(t *testing.T) {
	f := NewFetcher(time.Second, "")

	assert.NoError(t, f.validateURL("https://example.com/recipe"))
	assert.Error(t, f.validateURL("ftp://example.com"))
	assert.Error(t, f.validateURL("not a url at all ://"))
	assert.Error(t, f.validateURL("/relative/path"))
}

func TestFindRecipeNode(t *testing.T) {
	t.Run("top level", func(t *testing.T) {
		node, ok := findRecipeNode(`{"@type": "Recipe", "name": "Soupe"}`)
		require.True(t, ok)
		assert.Equal(t, "Soupe", node.Get("name").String())
	})

	t.Run("type array", func(t *testing.T) {
		_, ok := findRecipeNode(`{"@type": ["Thing", "Recipe"]}`)
		assert.True(t, ok)
	})

	t.Run("root array", func(t *testing.T) {
		node, ok := findRecipeNode(`[{"@type": "WebPage"}, {"@type": "Recipe", "name": "Soupe"}]`)
		require.True(t, ok)
		assert.Equal(t, "Soupe", node.Get("name").String())
	})

	t.Run("not a recipe", func(t *testing.T) {
		_, ok := findRecipeNode(`{"@type": "Article"}`)
		assert.False(t, ok)
	})
}

func TestInstructionTexts(t *testing.T) {
	t.Run("howto sections", func(t *testing.T) {
		steps := instructionTexts(gjson.Parse(`[
			{"@type": "HowToSection", "itemListElement": [
				{"@type": "HowToStep", "text": "Première"},
				{"@type": "HowToStep", "text": "Deuxième"}
			]},
			{"@type": "HowToStep", "text": "Troisième"}
		]`))
		assert.Equal(t, []string{"Première", "Deuxième", "Troisième"}, steps)
	})

	t.Run("plain string split on newlines", func(t *testing.T) {
		steps := instructionTexts(gjson.Parse(`"Un\nDeux\n\nTrois"`))
		assert.Equal(t, []string{"Un", "Deux", "Trois"}, steps)
	})
}

func TestParseMinutes(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{`"PT30M"`, 30},
		{`"PT1H"`, 60},
		{`"PT1H30M"`, 90},
		{`"P1DT2H"`, 1560},
		{`"45"`, 45},
		{`"whenever"`, 0},
		{`""`, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseMinutes(gjson.Parse(tc.raw)), "raw=%s", tc.raw)
	}
}

func TestParseServings(t *testing.T) {
	assert.Equal(t, 4, parseServings(gjson.Parse(`"4"`)))
	assert.Equal(t, 6, parseServings(gjson.Parse(`"6 personnes"`)))
	assert.Equal(t, 8, parseServings(gjson.Parse(`["8 servings"]`)))
	assert.Equal(t, 2, parseServings(gjson.Parse(`2`)))
	assert.Zero(t, parseServings(gjson.Parse(`"beaucoup"`)))
}

func TestIsStepHeader(t *testing.T) {
	assert.True(t, isStepHeader("Etape 1"))
	assert.True(t, isStepHeader("Étape 2 :"))
	assert.True(t, isStepHeader("Step 3."))
	assert.False(t, isStepHeader("Etape 1 : mélanger la farine"))
	assert.False(t, isStepHeader("Mélanger"))
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "https://img/a.jpg", imageURL(gjson.Parse(`"https://img/a.jpg"`)))
	assert.Equal(t, "https://img/b.jpg", imageURL(gjson.Parse(`["https://img/b.jpg", "x"]`)))
	assert.Equal(t, "https://img/c.jpg", imageURL(gjson.Parse(`{"url": "https://img/c.jpg"}`)))
}

func TestScrapeContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := New(NewFetcher(5*time.Second, ""), testLogger())
	_, err := s.Scrape(ctx, ts.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}