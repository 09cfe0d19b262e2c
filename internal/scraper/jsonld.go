package scraper

import (
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/net/html"
)

// extractJSONLDBlocks walks the HTML tree and collects the contents of every
// <script type="application/ld+json"> element.
func extractJSONLDBlocks(doc *html.Node) []string {
	var blocks []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "script" {
			for _, attr := range n.Attr {
				if attr.Key == "type" && strings.EqualFold(strings.TrimSpace(attr.Val), "application/ld+json") {
					var sb strings.Builder
					for c := n.FirstChild; c != nil; c = c.NextSibling {
						if c.Type == html.TextNode {
							sb.WriteString(c.Data)
						}
					}
					if text := strings.TrimSpace(sb.String()); text != "" {
						blocks = append(blocks, text)
					}
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return blocks
}

// isRecipeType reports whether a JSON-LD @type value names a schema.org
// Recipe. The value may be a plain string or an array of strings.
func isRecipeType(typeValue gjson.Result) bool {
	if typeValue.IsArray() {
		for _, entry := range typeValue.Array() {
			if strings.EqualFold(entry.String(), "Recipe") {
				return true
			}
		}
		return false
	}
	return strings.EqualFold(typeValue.String(), "Recipe")
}

// findRecipeNode locates the schema.org Recipe object within a JSON-LD block.
// Blocks may hold the recipe at top level, inside a root array, or under
// @graph.
func findRecipeNode(block string) (gjson.Result, bool) {
	root := gjson.Parse(block)

	candidates := []gjson.Result{root}
	if root.IsArray() {
		candidates = root.Array()
	}

	for _, candidate := range candidates {
		if isRecipeType(candidate.Get("@type")) {
			return candidate, true
		}
		for _, node := range candidate.Get("@graph").Array() {
			if isRecipeType(node.Get("@type")) {
				return node, true
			}
		}
	}
	return gjson.Result{}, false
}

// instructionTexts flattens recipeInstructions into plain step strings.
// Instructions come as plain strings, HowToStep objects, or HowToSection
// objects wrapping itemListElement lists; a bare string value is split on
// newlines.
func instructionTexts(instructions gjson.Result) []string {
	var steps []string

	var collect func(node gjson.Result)
	collect = func(node gjson.Result) {
		switch {
		case node.IsArray():
			for _, entry := range node.Array() {
				collect(entry)
			}
		case node.IsObject():
			if items := node.Get("itemListElement"); items.Exists() {
				collect(items)
				return
			}
			if text := strings.TrimSpace(node.Get("text").String()); text != "" {
				steps = append(steps, text)
			}
		default:
			for _, line := range strings.Split(node.String(), "\n") {
				if line = strings.TrimSpace(line); line != "" {
					steps = append(steps, line)
				}
			}
		}
	}
	collect(instructions)
	return steps
}

// imageURL extracts a usable image URL from the schema.org image field, which
// may be a string, an array, or an ImageObject.
func imageURL(image gjson.Result) string {
	switch {
	case image.IsArray():
		entries := image.Array()
		if len(entries) == 0 {
			return ""
		}
		return imageURL(entries[0])
	case image.IsObject():
		return image.Get("url").String()
	default:
		return image.String()
	}
}
