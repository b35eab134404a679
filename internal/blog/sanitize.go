package blog

import (
	"github.com/microcosm-cc/bluemonday"
)

// newSanitizer allows user-generated markup plus the attributes the
// renderer relies on.
func newSanitizer() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("data-callout").OnElements("div")
	p.AllowAttrs("data-anchor").OnElements("aside")
	p.AllowAttrs("loading").Matching(bluemonday.SpaceSeparatedTokens).OnElements("img")
	p.AllowElements("aside", "figure", "figcaption")

	return p
}
