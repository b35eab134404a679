package generator

import (
	"fmt"
	"strings"
)

const (
	minWords = 1000
	maxWords = 1200
)

// Prompt is the message pair sent to the completion service.
type Prompt struct {
	System string
	User   string
	// Topic is the main keyword, kept for clients that do not call a model.
	Topic string
}

// BuildPrompt renders the structural instruction for one article.
func BuildPrompt(req Request, categoryName string) Prompt {
	var sb strings.Builder
	sb.WriteString("You are an experienced blog editor. Write one complete article as HTML.\n")
	sb.WriteString("Structure requirements:\n")
	sb.WriteString("- The first paragraph is the lead: <p class=\"drop-cap\">...</p>.\n")
	sb.WriteString("- Split the body into sections with <h2> headings (<h3> for sub-sections).\n")
	sb.WriteString("- Place exactly these image placeholders across the body, each at most once: ")
	sb.WriteString("<img src=\"[IMAGE_1]\" alt=\"...\">, <img src=\"[IMAGE_2]\" alt=\"...\">, ")
	sb.WriteString("<img src=\"[IMAGE_3]\" alt=\"...\">, <img src=\"[IMAGE_4]\" alt=\"...\">.\n")
	sb.WriteString("- Include at least two <blockquote> elements.\n")
	sb.WriteString("- Include two or three callout boxes, each <div class=\"callout callout-info\">, ")
	sb.WriteString("<div class=\"callout callout-warning\"> or <div class=\"callout callout-success\"> wrapping a <p>.\n")
	fmt.Fprintf(&sb, "- Target length: %d to %d words.\n", minWords, maxWords)
	sb.WriteString("Respond with a single JSON object and nothing else, with the fields: ")
	sb.WriteString("\"title\", \"slug\", \"excerpt\", \"content\" (the HTML), \"metaTitle\", ")
	sb.WriteString("\"metaDescription\", \"metaKeywords\" (array of strings).\n")

	var user strings.Builder
	fmt.Fprintf(&user, "Main keyword: %s\n", strings.TrimSpace(req.MainKeyword))
	if kw := strings.TrimSpace(req.SecondaryKeywords); kw != "" {
		fmt.Fprintf(&user, "Secondary keywords: %s\n", kw)
	}
	if categoryName != "" {
		fmt.Fprintf(&user, "Category: %s\n", categoryName)
	}
	if s := strings.TrimSpace(req.TitleInstructions); s != "" {
		fmt.Fprintf(&user, "Title instructions: %s\n", s)
	}
	if s := strings.TrimSpace(req.ContentInstructions); s != "" {
		fmt.Fprintf(&user, "Content instructions: %s\n", s)
	}
	user.WriteString("Return the JSON object now.")

	return Prompt{
		System: sb.String(),
		User:   user.String(),
		Topic:  strings.TrimSpace(req.MainKeyword),
	}
}
