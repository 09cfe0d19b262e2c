package types

import (
	"github.com/roivaz/cookidoo-thermomix-mcp/internal/cookidoo"
	"github.com/roivaz/cookidoo-thermomix-mcp/internal/recipe"
)

// ImportOutcome is the result of a completed import: the converted recipe
// plus where it now lives on the account.
type ImportOutcome struct {
	Recipe recipe.Thermomix      `json:"recipe"`
	Upload cookidoo.UploadResult `json:"upload"`
}
