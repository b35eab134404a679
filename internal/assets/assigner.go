package assets

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/cespare/xxhash/v2"
)

const (
	// FeaturedSlot is the slot index reserved for the article's featured image.
	FeaturedSlot = 0
	// MaxBodySlot is the highest in-body slot index.
	MaxBodySlot = 4

	maxTopicWords  = 2
	minContentWord = 5
)

var fallbackTerms = []string{"abstract", "creative"}

// RandomSource supplies the random draw mixed into every seed. The assigner
// is called from concurrent slot resolution, so implementations must be safe
// for concurrent use.
type RandomSource interface {
	Uint64() uint64
}

// GlobalRandom draws from the process-wide math/rand/v2 generator.
type GlobalRandom struct{}

func (GlobalRandom) Uint64() uint64 { return rand.Uint64() }

// Clock returns the current time.
type Clock func() time.Time

// KeywordSource is the part of the catalog the assigner needs.
type KeywordSource interface {
	Pool(category string) []string
}

// Reference is an opaque image reference resolvable by an image search service.
type Reference struct {
	Slot  int
	Query string
	Seed  string
}

// Terms returns the individual search terms of the query.
func (r Reference) Terms() []string {
	if r.Query == "" {
		return nil
	}
	return strings.Split(r.Query, ",")
}

// Assigner picks a search keyword for a (topic, slot) pair and salts it with
// a time and random based seed, so that repeated calls for the same topic
// still resolve to different images.
type Assigner struct {
	keywords KeywordSource
	clock    Clock
	random   RandomSource
}

func NewAssigner(keywords KeywordSource, clock Clock, random RandomSource) *Assigner {
	if clock == nil {
		clock = time.Now
	}

	return &Assigner{
		keywords: keywords,
		clock:    clock,
		random:   random,
	}
}

// Assign never fails: unmapped categories use the generic pool and an empty
// pool with a topic without content words yields the fixed fallback terms.
func (a *Assigner) Assign(topic, categoryName string, slot int) Reference {
	pool := a.keywords.Pool(categoryName)
	words := contentWords(topic, maxTopicWords)

	terms := make([]string, 0, 1+len(words))
	if len(pool) > 0 {
		idx := slotHash(topic, slot) % uint64(len(pool))
		terms = append(terms, pool[idx])
	}
	for _, w := range words {
		if !containsFold(terms, w) {
			terms = append(terms, w)
		}
	}
	if len(terms) == 0 {
		terms = append(terms, fallbackTerms...)
	}

	return Reference{
		Slot:  slot,
		Query: strings.Join(terms, ","),
		Seed:  a.seed(topic, slot),
	}
}

func (a *Assigner) seed(topic string, slot int) string {
	ts := a.clock().UnixNano()

	var draw uint64
	if a.random != nil {
		draw = a.random.Uint64()
	}

	h := xxhash.New()
	_, _ = h.WriteString(strings.ToLower(topic))
	_, _ = h.WriteString("|")
	_, _ = h.WriteString(strconv.Itoa(slot))
	_, _ = h.WriteString("|")
	_, _ = h.WriteString(strconv.FormatInt(ts, 10))

	return fmt.Sprintf("%x-%x-%x", ts, draw, h.Sum64())
}

func slotHash(topic string, slot int) uint64 {
	return xxhash.Sum64String(strings.ToLower(strings.TrimSpace(topic)) + "#" + strconv.Itoa(slot))
}

// contentWords extracts up to limit lowercase words longer than four characters.
func contentWords(topic string, limit int) []string {
	fields := strings.FieldsFunc(strings.ToLower(topic), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	words := make([]string, 0, limit)
	for _, f := range fields {
		if len([]rune(f)) < minContentWord {
			continue
		}
		if containsFold(words, f) {
			continue
		}
		words = append(words, f)
		if len(words) == limit {
			break
		}
	}

	return words
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
