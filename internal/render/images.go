package render

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// imagePicker hands out replacements for broken image sources: the featured
// image first, then the fallback list in a cycle.
type imagePicker struct {
	featured  string
	fallbacks []string
	used      int
}

func newImagePicker(c Context) *imagePicker {
	p := &imagePicker{}
	if isAbsoluteURL(c.FeaturedImage) {
		p.featured = strings.TrimSpace(c.FeaturedImage)
	}
	for _, f := range c.FallbackImages {
		if isAbsoluteURL(f) {
			p.fallbacks = append(p.fallbacks, strings.TrimSpace(f))
		}
	}

	return p
}

func (p *imagePicker) next() string {
	defer func() { p.used++ }()

	if p.featured != "" {
		if p.used == 0 || len(p.fallbacks) == 0 {
			return p.featured
		}
		return p.fallbacks[(p.used-1)%len(p.fallbacks)]
	}
	if len(p.fallbacks) == 0 {
		return ""
	}

	return p.fallbacks[p.used%len(p.fallbacks)]
}

func normalizeImages(root *goquery.Selection, c Context) {
	picker := newImagePicker(c)
	title := strings.TrimSpace(c.Title)

	root.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		if !isAbsoluteURL(src) {
			if replacement := picker.next(); replacement != "" {
				img.SetAttr("src", replacement)
			}
		}

		img.SetAttr("loading", "lazy")

		if alt, ok := img.Attr("alt"); (!ok || strings.TrimSpace(alt) == "") && title != "" {
			img.SetAttr("alt", title)
		}
	})
}

func isAbsoluteURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
