package rpc

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/blog-portal/internal/assets"
	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/daniilsolovey/blog-portal/internal/catalog"
	"github.com/daniilsolovey/blog-portal/internal/generator"
	"github.com/daniilsolovey/blog-portal/internal/memstore"
)

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func newTestServer(t *testing.T) *zenrpc.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	orchestrator := generator.NewOrchestrator(generator.MockClient{}, time.Second, logger)
	assigner := assets.NewAssigner(catalog.Default(), time.Now, assets.GlobalRandom{})
	resolver := generator.NewResolver(assigner, assets.NewTemplateSearcher("https://images.example.com/{query}?sig={seed}"), nil, time.Second, logger)

	manager, err := blog.NewManager(memstore.New(memstore.DefaultCategories()), orchestrator, resolver, blog.Settings{}, logger)
	require.NoError(t, err)

	return New(logger, manager)
}

func call(t *testing.T, srv *zenrpc.Server, method, params string) rpcResponse {
	t.Helper()

	body := fmt.Sprintf(`{"jsonrpc":"2.0","id":1,"method":%q,"params":%s}`, method, params)
	req := httptest.NewRequest(http.MethodPost, "/v1/rpc/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func result[T any](t *testing.T, resp rpcResponse) T {
	t.Helper()
	require.Nil(t, resp.Error)

	var v T
	require.NoError(t, json.Unmarshal(resp.Result, &v), string(resp.Result))
	return v
}

func TestArticleService_VersionFlow(t *testing.T) {
	srv := newTestServer(t)

	created := result[Article](t, call(t, srv, "articles.create",
		`{"article":{"title":"Versioned","content":"<p>v0</p>","categoryId":1,"status":"published"}}`))
	assert.Equal(t, "versioned", created.Slug)
	assert.Equal(t, 0, created.CurrentVersionNumber)

	first := result[ArticleUpdate](t, call(t, srv, "articles.update",
		fmt.Sprintf(`{"id":%d,"article":{"title":"Versioned","content":"<p>v1</p>","author":"ann"}}`, created.ArticleID)))
	assert.Equal(t, 1, first.Version.VersionNumber)
	assert.Equal(t, "Updated", first.Version.Notes)

	result[ArticleUpdate](t, call(t, srv, "articles.update",
		fmt.Sprintf(`[%d,{"title":"Versioned","content":"<p>v2</p>"}]`, created.ArticleID)))

	restored := result[ArticleUpdate](t, call(t, srv, "articles.restore",
		fmt.Sprintf(`{"id":%d,"versionId":%d}`, created.ArticleID, first.Version.VersionID)))
	assert.Equal(t, 3, restored.Version.VersionNumber)
	assert.Equal(t, "Restored from version 1", restored.Version.Notes)
	assert.Equal(t, "<p>v1</p>", restored.Article.Content)

	versions := result[[]ArticleVersion](t, call(t, srv, "articles.versions", fmt.Sprintf(`{"id":%d}`, created.ArticleID)))
	require.Len(t, versions, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{versions[0].VersionNumber, versions[1].VersionNumber, versions[2].VersionNumber})

	version := result[ArticleVersion](t, call(t, srv, "articles.version",
		fmt.Sprintf(`{"id":%d,"versionId":%d}`, created.ArticleID, first.Version.VersionID)))
	assert.Equal(t, "<p>v1</p>", version.Content)

	rendered := result[RenderedArticle](t, call(t, srv, "articles.get", fmt.Sprintf(`{"id":%d}`, created.ArticleID)))
	assert.Contains(t, rendered.HTML, "drop-cap")
	require.NotNil(t, rendered.Category)
	assert.Equal(t, "Technology", rendered.Category.Title)

	assert.True(t, result[bool](t, call(t, srv, "articles.delete", fmt.Sprintf(`{"id":%d}`, created.ArticleID))))

	resp := call(t, srv, "articles.get", fmt.Sprintf(`{"id":%d}`, created.ArticleID))
	require.NotNil(t, resp.Error)
	assert.Equal(t, http.StatusNotFound, resp.Error.Code)
}

func TestArticleService_Errors(t *testing.T) {
	srv := newTestServer(t)
	created := result[Article](t, call(t, srv, "articles.create", `{"article":{"title":"Taken"}}`))

	tests := []struct {
		name   string
		method string
		params string
		code   int
	}{
		{"MissingTitle", "articles.create", `{"article":{"content":"x"}}`, http.StatusBadRequest},
		{"SlugConflict", "articles.create", `{"article":{"title":"Taken"}}`, http.StatusConflict},
		{"UnknownStatus", "articles.create", `{"article":{"title":"Other","status":"deleted"}}`, http.StatusBadRequest},
		{"TitleTooLong", "articles.update", fmt.Sprintf(`{"id":%d,"article":{"title":%q}}`, created.ArticleID, strings.Repeat("t", blog.MaxTitleLength+1)), http.StatusBadRequest},
		{"EmptyTitleUpdate", "articles.update", fmt.Sprintf(`{"id":%d,"article":{"title":""}}`, created.ArticleID), http.StatusBadRequest},
		{"NonPositiveID", "articles.get", `{"id":0}`, http.StatusBadRequest},
		{"ArticleNotFound", "articles.versions", `{"id":999}`, http.StatusNotFound},
		{"VersionNotFound", "articles.version", fmt.Sprintf(`{"id":%d,"versionId":999}`, created.ArticleID), http.StatusNotFound},
		{"InvalidGeneration", "articles.generate", `{"req":{"mainKeyword":"  "}}`, http.StatusBadRequest},
		{"UnknownCategory", "articles.generate", `{"req":{"mainKeyword":"go","categoryId":999}}`, http.StatusBadRequest},
		{"MethodNotFound", "articles.publish", `{}`, zenrpc.MethodNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(t, srv, tt.method, tt.params)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code, resp.Error.Message)
		})
	}
}

func TestArticleService_UpdateKeepsOmittedFields(t *testing.T) {
	srv := newTestServer(t)

	created := result[Article](t, call(t, srv, "articles.create",
		`{"article":{"title":"Green Tea","content":"<p>Keep it below 80C.</p>","categoryId":8,"metaKeywords":["tea"]}}`))

	updated := result[ArticleUpdate](t, call(t, srv, "articles.update",
		fmt.Sprintf(`{"id":%d,"article":{"title":"Green Tea Basics"}}`, created.ArticleID)))
	assert.Equal(t, "Green Tea Basics", updated.Article.Title)
	assert.Equal(t, "green-tea", updated.Article.Slug)
	assert.Equal(t, "<p>Keep it below 80C.</p>", updated.Article.Content)
	assert.Equal(t, []string{"tea"}, updated.Article.MetaKeywords)
	require.NotNil(t, updated.Article.Category)
	assert.Equal(t, "Food", updated.Article.Category.Title)
	assert.Equal(t, "<p>Keep it below 80C.</p>", updated.Version.Content)
}

func TestArticleService_Related(t *testing.T) {
	srv := newTestServer(t)

	var ids []int
	for i := range 6 {
		a := result[Article](t, call(t, srv, "articles.create",
			fmt.Sprintf(`{"article":{"title":"Food %d","categoryId":8,"status":"published"}}`, i)))
		ids = append(ids, a.ArticleID)
	}

	related := result[[]ArticleSummary](t, call(t, srv, "articles.related", fmt.Sprintf(`{"id":%d}`, ids[0])))
	assert.Len(t, related, blog.DefaultRelatedLimit)
	for _, r := range related {
		assert.NotEqual(t, ids[0], r.ArticleID)
	}

	related = result[[]ArticleSummary](t, call(t, srv, "articles.related", fmt.Sprintf(`{"id":%d,"limit":10}`, ids[0])))
	assert.Len(t, related, 5)
}

func TestArticleService_Generate(t *testing.T) {
	srv := newTestServer(t)

	draft := result[GeneratedDraft](t, call(t, srv, "articles.generate",
		`{"req":{"mainKeyword":"home espresso","secondaryKeywords":"grinder, milk","categoryId":8}}`))

	assert.NotEmpty(t, draft.RequestID)
	assert.NotEmpty(t, draft.Draft.Title)
	assert.NotContains(t, draft.Draft.Content, "[IMAGE_")
	assert.NotEmpty(t, draft.Draft.FeaturedImage)
	require.NotNil(t, draft.Draft.CategoryID)
	assert.Equal(t, 8, *draft.Draft.CategoryID)
}

func TestArticleService_PreviewAndCategories(t *testing.T) {
	srv := newTestServer(t)

	html := result[string](t, call(t, srv, "articles.preview",
		`{"req":{"title":"T","content":"<p>Tip: stay hydrated.</p><script>alert(1)</script>"}}`))
	assert.Contains(t, html, `data-callout="info"`)
	assert.NotContains(t, html, "<script>")

	categories := result[[]Category](t, call(t, srv, "articles.categories", `{}`))
	require.Len(t, categories, 10)
	assert.Equal(t, "Technology", categories[0].Title)
}
