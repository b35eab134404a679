package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MockClient returns a canned article about the prompt topic. It is used for
// local development without model credentials.
type MockClient struct{}

func (MockClient) Complete(ctx context.Context, prompt Prompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	topic := prompt.Topic
	if topic == "" {
		topic = "Everyday Ideas"
	}
	title := capitalize(topic)
	topicHTML, titleHTML := html.EscapeString(topic), html.EscapeString(title)

	var body strings.Builder
	fmt.Fprintf(&body, `<p class="drop-cap">%s is one of those subjects that rewards a slow, careful look, and this guide walks through it step by step.</p>`, titleHTML)
	for section := 1; section <= 4; section++ {
		fmt.Fprintf(&body, `<h2>Part %d of understanding %s</h2>`, section, topicHTML)
		for p := 1; p <= 3; p++ {
			fmt.Fprintf(&body, `<p>Paragraph %d of part %d explains a practical aspect of %s. Start small and build on what already works.</p>`, p, section, topicHTML)
		}
		fmt.Fprintf(&body, `<img src="[IMAGE_%d]" alt="%s illustration %d">`, section, topicHTML, section)
		if section%2 == 0 {
			fmt.Fprintf(&body, `<blockquote><p>Patience is the most underrated tool when it comes to %s.</p></blockquote>`, topicHTML)
		}
	}
	body.WriteString(`<div class="callout callout-info"><p>Tip: write down what you learn as you go.</p></div>`)
	body.WriteString(`<div class="callout callout-warning"><p>Warning: avoid changing everything at once.</p></div>`)
	body.WriteString(`<div class="callout callout-success"><p>Success: small wins add up quickly.</p></div>`)

	doc := map[string]any{
		"title":           title + ": A Practical Guide",
		"excerpt":         "A practical, step by step introduction to " + topic + ".",
		"content":         body.String(),
		"metaTitle":       title + " Guide",
		"metaDescription": "Learn the essentials of " + topic + " with practical tips.",
		"metaKeywords":    []string{topic, "guide", "tips"},
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
