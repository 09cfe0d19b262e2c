package tools

import (
	"fmt"
	"strings"

	"github.com/roivaz/cookidoo-thermomix-mcp/internal/cookidoo"
	"github.com/roivaz/cookidoo-thermomix-mcp/internal/recipe"
)

const previewStepLimit = 5

// formatImportSummary renders the confirmation text shown to the user after a
// successful import.
func formatImportSummary(r recipe.Thermomix, upload cookidoo.UploadResult) string {
	locale := r.Locale

	var steps []string
	for i, step := range r.Steps {
		if i == previewStepLimit {
			break
		}
		steps = append(steps, fmt.Sprintf("  %d. %s", i+1, step.Text(locale)))
	}
	stepsPreview := strings.Join(steps, "\n")
	if remaining := len(r.Steps) - previewStepLimit; remaining > 0 {
		stepsPreview += fmt.Sprintf("\n  ... and %d more steps", remaining)
	}

	return fmt.Sprintf(
		"Recipe imported successfully!\n\n%s\n%d servings\n%d min\n%d ingredients\n\n"+
			"Thermomix steps:\n%s\n\nView on Cookidoo: %s",
		r.Name, r.Servings, r.TotalTimeMinutes, len(r.Ingredients), stepsPreview, upload.URL)
}

// formatPreview renders the full recipe preview text.
func formatPreview(r recipe.Thermomix) string {
	locale := r.Locale

	var ingredients []string
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, "  • "+ing.Text(locale))
	}
	var steps []string
	for i, step := range r.Steps {
		steps = append(steps, fmt.Sprintf("  %d. %s", i+1, step.Text(locale)))
	}
	var hints []string
	for _, h := range r.Hints {
		hints = append(hints, "  - "+h)
	}

	return fmt.Sprintf(
		"%s\n%d servings | %d min\n\nIngredients:\n%s\n\nThermomix steps:\n%s\n\n%s\n\n"+
			"Use 'import_recipe' to save it to Cookidoo!",
		r.Name, r.Servings, r.TotalTimeMinutes,
		strings.Join(ingredients, "\n"),
		strings.Join(steps, "\n"),
		strings.Join(hints, "\n"))
}

func formatScrapeFailure(url string, err error) string {
	return fmt.Sprintf(
		"Unable to read the recipe from %s\nError: %v\n\n"+
			"Make sure the link is correct and the site is accessible.", url, err)
}

func formatMissingCredentials() string {
	return "Missing configuration: Cookidoo credentials are not set.\n\n" +
		"Add your Cookidoo credentials in the MCP config:\n" +
		"COOKIDOO_EMAIL=your@email.com\n" +
		"COOKIDOO_PASSWORD=yourpassword"
}

func formatUploadFailure(name string, err error) string {
	return fmt.Sprintf(
		"Unable to save the recipe on Cookidoo: %v\n\n"+
			"The recipe '%s' was converted successfully but the upload failed. "+
			"Try again in a few moments.", err, name)
}
