package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

type CalloutKind string

const (
	CalloutInfo    CalloutKind = "info"
	CalloutWarning CalloutKind = "warning"
	CalloutSuccess CalloutKind = "success"
)

const maxPullQuoteLength = 140

var calloutTokens = []struct {
	prefix string
	kind   CalloutKind
}{
	{"important:", CalloutInfo},
	{"tip:", CalloutInfo},
	{"note:", CalloutInfo},
	{"info:", CalloutInfo},
	{"warning:", CalloutWarning},
	{"caution:", CalloutWarning},
	{"success:", CalloutSuccess},
	{"great:", CalloutSuccess},
}

// CalloutKindOf reports the callout kind for paragraph text starting with a
// recognized lead token.
func CalloutKindOf(text string) (CalloutKind, bool) {
	text = strings.TrimLeftFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, t := range calloutTokens {
		if strings.HasPrefix(text, t.prefix) {
			return t.kind, true
		}
	}

	return "", false
}

func wrapCallouts(root *goquery.Selection) {
	root.Find("p").Each(func(_ int, p *goquery.Selection) {
		kind, ok := CalloutKindOf(p.Text())
		if !ok {
			return
		}
		if p.ParentsFiltered("div."+CalloutClass+", blockquote, aside").Length() > 0 {
			return
		}

		p.WrapHtml(fmt.Sprintf(`<div class="%s %s-%s" data-callout="%s"></div>`,
			CalloutClass, CalloutClass, kind, kind))
	})
}

func insertPullQuotes(root *goquery.Selection) {
	count := root.Find("aside." + PullQuoteClass).Length()
	if count >= MaxPullQuotes {
		return
	}

	paragraphs := root.Find("p").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.ParentsFiltered("blockquote, aside").Length() == 0
	})

	paragraphs.EachWithBreak(func(i int, p *goquery.Selection) bool {
		pos := i + 1
		if pos%PullQuoteInterval != 0 {
			return true
		}
		if hasAdjacentPullQuote(p) {
			return true
		}

		quote := pullQuoteText(p.Text())
		if quote == "" {
			return true
		}

		p.AfterHtml(`<aside class="` + PullQuoteClass + `" data-anchor="` + strconv.Itoa(pos) + `"><span>` +
			html.EscapeString(quote) + `</span></aside>`)
		count++

		return count < MaxPullQuotes
	})
}

func hasAdjacentPullQuote(p *goquery.Selection) bool {
	return p.Next().Is("aside."+PullQuoteClass) || p.Prev().Is("aside."+PullQuoteClass)
}

// pullQuoteText takes the first sentence of the paragraph, shortened on a
// word boundary.
func pullQuoteText(text string) string {
	text = collapseSpaces(text)
	if text == "" {
		return ""
	}

	sentence := text
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			sentence = text[:i+1]
			break
		}
	}

	return truncateWords(sentence, maxPullQuoteLength)
}
