package render

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	LeadClass      = "drop-cap"
	HeadingClass   = "article-heading"
	ListClass      = "article-list"
	QuoteClass     = "article-quote"
	PullQuoteClass = "pull-quote"
	CalloutClass   = "callout"

	// PullQuoteInterval anchors pull-quotes after every n-th paragraph.
	PullQuoteInterval = 7
	// MaxPullQuotes caps pull-quotes per article, authored ones included.
	MaxPullQuotes = 2
	// LeadMinLength is the text length a paragraph must exceed to be preferred as lead.
	LeadMinLength = 60
)

// Context carries everything Normalize needs besides the markup itself.
type Context struct {
	FeaturedImage  string
	Title          string
	FallbackImages []string
}

// Normalize rewrites article HTML into its display form. It is a pure
// function of its arguments and idempotent: Normalize(Normalize(x, c), c)
// equals Normalize(x, c).
//
// Passes run in a fixed order over a freshly parsed tree: images, element
// classes, callouts, lead paragraph, pull-quotes.
func Normalize(html string, c Context) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	body := doc.Find("body")

	normalizeImages(body, c)
	normalizeClasses(body)
	wrapCallouts(body)
	markLeadParagraph(body)
	insertPullQuotes(body)

	out, err := body.Html()
	if err != nil {
		return html
	}

	return strings.TrimSpace(out)
}

func normalizeClasses(root *goquery.Selection) {
	root.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		setClassIfMissing(s, HeadingClass)
	})
	root.Find("ul, ol").Each(func(_ int, s *goquery.Selection) {
		setClassIfMissing(s, ListClass)
	})
	root.Find("blockquote").Each(func(_ int, s *goquery.Selection) {
		setClassIfMissing(s, QuoteClass)
	})
}

// markLeadParagraph leaves exactly one eligible paragraph with the lead marker.
// A single existing marker on an eligible paragraph is kept as is.
func markLeadParagraph(root *goquery.Selection) {
	eligible := root.Find("p").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return !insideQuote(s)
	})

	marked := root.Find("p." + LeadClass)
	if marked.Length() == 1 && !insideQuote(marked) {
		return
	}
	marked.Each(func(_ int, s *goquery.Selection) {
		removeClass(s, LeadClass)
	})

	var fallback, lead *goquery.Selection
	eligible.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		n := TextLength(s.Text())
		if n == 0 {
			return true
		}
		if fallback == nil {
			fallback = s
		}
		if n > LeadMinLength {
			lead = s
			return false
		}
		return true
	})

	if lead == nil {
		lead = fallback
	}
	if lead != nil {
		lead.AddClass(LeadClass)
	}
}

func insideQuote(s *goquery.Selection) bool {
	return s.ParentsFiltered("blockquote").Length() > 0
}

func setClassIfMissing(s *goquery.Selection, class string) {
	if v, ok := s.Attr("class"); ok && strings.TrimSpace(v) != "" {
		return
	}
	s.SetAttr("class", class)
}

func removeClass(s *goquery.Selection, class string) {
	s.RemoveClass(class)
	if v, ok := s.Attr("class"); ok && strings.TrimSpace(v) == "" {
		s.RemoveAttr("class")
	}
}
