package assets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// ErrAssetUnavailable is returned when the image search service fails or times out.
var ErrAssetUnavailable = errors.New("asset unavailable")

const maxResponseBody = 64 << 10

// Searcher resolves an image reference into a concrete image URL.
type Searcher interface {
	Search(ctx context.Context, ref Reference) (string, error)
}

// TemplateSearcher renders the reference into a URL template without a
// network round trip. {query} and {seed} are replaced with escaped values.
type TemplateSearcher struct {
	Template string
}

func NewTemplateSearcher(template string) *TemplateSearcher {
	return &TemplateSearcher{Template: template}
}

func (s *TemplateSearcher) Search(_ context.Context, ref Reference) (string, error) {
	if s.Template == "" {
		return "", fmt.Errorf("%w: empty url template", ErrAssetUnavailable)
	}

	r := strings.NewReplacer(
		"{query}", url.QueryEscape(ref.Query),
		"{seed}", url.QueryEscape(ref.Seed),
	)
	result := r.Replace(s.Template)
	if !IsAbsoluteURL(result) {
		return "", fmt.Errorf("%w: template produced invalid url %q", ErrAssetUnavailable, result)
	}

	return result, nil
}

// HTTPSearcher queries an image search endpoint:
// GET {endpoint}?query=<terms>&seed=<seed>. The response is either a JSON
// object with a "url" field or a plain-text URL.
type HTTPSearcher struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
	limiter  *rate.Limiter
}

// NewHTTPSearcher creates a searcher; ratePerSecond <= 0 disables rate limiting.
func NewHTTPSearcher(endpoint string, client *http.Client, timeout time.Duration, ratePerSecond float64) *HTTPSearcher {
	if client == nil {
		client = http.DefaultClient
	}

	limit := rate.Inf
	burst := 1
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
		burst = max(1, int(ratePerSecond))
	}

	return &HTTPSearcher{
		endpoint: endpoint,
		client:   client,
		timeout:  timeout,
		limiter:  rate.NewLimiter(limit, burst),
	}
}

func (s *HTTPSearcher) Search(ctx context.Context, ref Reference) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: rate limit wait: %w", ErrAssetUnavailable, err)
	}

	u, err := url.Parse(s.endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: parse endpoint: %w", ErrAssetUnavailable, err)
	}
	q := u.Query()
	q.Set("query", ref.Query)
	q.Set("seed", ref.Seed)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %w", ErrAssetUnavailable, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAssetUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: image search returned status %d", ErrAssetUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %w", ErrAssetUnavailable, err)
	}

	imageURL := parseSearchResponse(body)
	if !IsAbsoluteURL(imageURL) {
		return "", fmt.Errorf("%w: response does not contain an image url", ErrAssetUnavailable)
	}

	return imageURL, nil
}

func parseSearchResponse(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "{") {
		var payload struct {
			URL string `json:"url"`
		}
		if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
			return ""
		}
		return strings.TrimSpace(payload.URL)
	}

	return trimmed
}

// IsAbsoluteURL reports whether s is an absolute http(s) URL with a host.
func IsAbsoluteURL(s string) bool {
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
