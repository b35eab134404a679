package render

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// TextLength returns the rune count of text with whitespace runs collapsed.
func TextLength(text string) int {
	return utf8.RuneCountInString(collapseSpaces(text))
}

// Excerpt returns the text of the first non-empty paragraph of the markup
// (or of the whole markup when it has no paragraphs), shortened to limit runes.
func Excerpt(html string, limit int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	var text string
	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text = collapseSpaces(s.Text())
		return text == ""
	})
	if text == "" {
		text = collapseSpaces(doc.Find("body").Text())
	}

	return truncateWords(text, limit)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncateWords cuts s to at most limit runes, preferring a word boundary,
// and marks the cut with an ellipsis.
func truncateWords(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)
	cut := string(runes[:limit])
	if i := strings.LastIndex(cut, " "); i > limit/2 {
		cut = cut[:i]
	}

	return strings.TrimRight(cut, " ,;:-") + "…"
}
