package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/daniilsolovey/blog-portal/internal/generator"
	"github.com/daniilsolovey/blog-portal/internal/wizard"
)

type ArticleHandler struct {
	uc  *blog.Manager
	log *slog.Logger
}

func NewArticleHandler(uc *blog.Manager, log *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		uc:  uc,
		log: log,
	}
}

func (h *ArticleHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// handleServiceError maps business errors to HTTP statuses.
func (h *ArticleHandler) handleServiceError(c echo.Context, err error) error {
	status, message := errorStatus(err)
	return h.handleError(c, err, status, message)
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, blog.ErrInvalidArticle), errors.Is(err, generator.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, blog.ErrArticleNotFound):
		return http.StatusNotFound, "article not found"
	case errors.Is(err, blog.ErrVersionNotFound):
		return http.StatusNotFound, "version not found"
	case errors.Is(err, blog.ErrSlugConflict):
		return http.StatusConflict, "slug already in use"
	case errors.Is(err, generator.ErrGenerationIncomplete):
		return http.StatusBadGateway, "generated article is incomplete, please try again"
	case errors.Is(err, generator.ErrGenerationUnavailable):
		return http.StatusServiceUnavailable, "generation service unavailable, please try again later"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}

	return id, nil
}

// CreateArticle handles POST /api/v1/articles
// @Summary Create article
// @Description Persists a new article. Content is sanitized; slug is derived from the title when empty. No version is recorded on create.
// @Tags articles
// @Accept json
// @Produce json
// @Param article body rest.ArticleInput true "Article"
// @Success 201 {object} rest.Article
// @Failure 400,409,500 {object} map[string]string
// @Router /api/v1/articles [post]
func (h *ArticleHandler) CreateArticle(c echo.Context) error {
	var req ArticleInput
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	article, err := h.uc.CreateArticle(c.Request().Context(), req.ToBlog())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, NewArticle(*article))
}

// ArticleByID handles GET /api/v1/articles/:id
// @Summary Get rendered article
// @Description Returns the article with normalized display HTML
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} rest.RenderedArticle
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/articles/{id} [get]
func (h *ArticleHandler) ArticleByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	rendered, err := h.uc.RenderArticle(c.Request().Context(), id)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, RenderedArticle{
		Article: NewArticle(rendered.Article),
		HTML:    rendered.HTML,
	})
}

// UpdateArticle handles PUT /api/v1/articles/:id
// @Summary Update article
// @Description Merges the given fields onto the article and records the new title and content as the next version
// @Tags articles
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param article body rest.ArticlePatch true "Changed fields"
// @Success 200 {object} rest.ArticleUpdate
// @Failure 400,404,409,500 {object} map[string]string
// @Router /api/v1/articles/{id} [put]
func (h *ArticleHandler) UpdateArticle(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req ArticlePatch
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	article, version, err := h.uc.UpdateArticle(c.Request().Context(), id, req.ToBlog())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, ArticleUpdate{
		Article: NewArticle(*article),
		Version: NewArticleVersion(*version),
	})
}

// DeleteArticle handles DELETE /api/v1/articles/:id
// @Summary Delete article
// @Description Deletes the article together with its version history
// @Tags articles
// @Param id path int true "Article ID"
// @Success 204
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if err := h.uc.DeleteArticle(c.Request().Context(), id); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Versions handles GET /api/v1/articles/:id/versions
// @Summary Get article versions
// @Description Returns the version history of an article, most recent first
// @Tags versions
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {array} rest.ArticleVersion
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/articles/{id}/versions [get]
func (h *ArticleHandler) Versions(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	versions, err := h.uc.Versions(c.Request().Context(), id)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, Map(versions, NewArticleVersion))
}

// Version handles GET /api/v1/articles/:id/versions/:versionId
// @Summary Get article version
// @Tags versions
// @Produce json
// @Param id path int true "Article ID"
// @Param versionId path int true "Version ID"
// @Success 200 {object} rest.ArticleVersion
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/articles/{id}/versions/{versionId} [get]
func (h *ArticleHandler) Version(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}
	versionID, err := pathID(c, "versionId")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid version id")
	}

	version, err := h.uc.Version(c.Request().Context(), id, versionID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, NewArticleVersion(*version))
}

// RestoreVersion handles POST /api/v1/articles/:id/versions/:versionId/restore
// @Summary Restore article version
// @Description Writes the title and content of an old version back to the article as a new version
// @Tags versions
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param versionId path int true "Version ID"
// @Param request body rest.RestoreRequest false "Restore options"
// @Success 200 {object} rest.ArticleUpdate
// @Failure 400,404,409,500 {object} map[string]string
// @Router /api/v1/articles/{id}/versions/{versionId}/restore [post]
func (h *ArticleHandler) RestoreVersion(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}
	versionID, err := pathID(c, "versionId")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid version id")
	}

	var req RestoreRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
		}
	}

	article, version, err := h.uc.RestoreVersion(c.Request().Context(), id, versionID, req.Author)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, ArticleUpdate{
		Article: NewArticle(*article),
		Version: NewArticleVersion(*version),
	})
}

// RelatedArticles handles GET /api/v1/articles/:id/related
// @Summary Get related articles
// @Description Returns published articles of the same category, newest first
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Param limit query int false "Number of articles (default: 3, max: 12)"
// @Success 200 {array} rest.ArticleSummary
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/articles/{id}/related [get]
func (h *ArticleHandler) RelatedArticles(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var filter RelatedFilter
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &filter); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	var limit *int
	if filter.Limit > 0 {
		limit = &filter.Limit
	}

	related, err := h.uc.RelatedArticles(c.Request().Context(), id, limit)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, Map(related, NewArticleSummary))
}

// Generate handles POST /api/v1/articles/generate
// @Summary Generate article draft
// @Description Runs the editor wizard from setup through generation. On success the wizard is in review and the draft has every image placeholder resolved; on failure it is back in setup with the request echoed.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body rest.GenerateRequest true "Generation request"
// @Success 200 {object} rest.GenerateResponse
// @Failure 400,502,503,500 {object} rest.GenerateResponse
// @Router /api/v1/articles/generate [post]
func (h *ArticleHandler) Generate(c echo.Context) error {
	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	w := wizard.New(h.uc, h.uc)
	if err := w.Generate(c.Request().Context(), req.ToGenerator()); err != nil {
		status, message := errorStatus(err)
		h.log.Error("generation failed", "error", err, "statusCode", status, "state", w.State())
		return c.JSON(status, GenerateResponse{
			State:   w.State().String(),
			Error:   message,
			Request: req,
		})
	}

	draft := w.Draft()
	return c.JSON(http.StatusOK, GenerateResponse{
		State:     w.State().String(),
		RequestID: draft.RequestID,
		Draft:     NewDraft(draft.Draft),
		Slots:     Map(draft.Slots, NewAssetSlot),
		Warnings:  draft.Warnings,
		Request:   req,
	})
}

// GeneratePublish handles POST /api/v1/articles/generate/publish
// @Summary Generate and save article
// @Description Runs the editor wizard through every step: generation, review edits, featured image and publish. A failed generation answers like the generate endpoint.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body rest.GeneratePublishRequest true "Generation request with edits"
// @Success 201 {object} rest.GeneratePublishResponse
// @Failure 400,502,503 {object} rest.GenerateResponse
// @Failure 409,500 {object} map[string]string
// @Router /api/v1/articles/generate/publish [post]
func (h *ArticleHandler) GeneratePublish(c echo.Context) error {
	var req GeneratePublishRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	w := wizard.New(h.uc, h.uc)
	if err := w.Generate(ctx, req.Request.ToGenerator()); err != nil {
		status, message := errorStatus(err)
		h.log.Error("generation failed", "error", err, "statusCode", status, "state", w.State())
		return c.JSON(status, GenerateResponse{
			State:   w.State().String(),
			Error:   message,
			Request: req.Request,
		})
	}

	err := w.Edit(func(d *generator.Draft) {
		if req.Title != nil {
			d.Title = *req.Title
		}
		if req.Content != nil {
			d.Content = *req.Content
		}
	})
	if err == nil {
		err = w.Next()
	}
	if err == nil && req.FeaturedImage != nil {
		err = w.SetFeaturedImage(*req.FeaturedImage)
	}
	if err == nil {
		err = w.Next()
	}
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	article, err := w.Publish(ctx, blog.Status(req.Status))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, GeneratePublishResponse{
		State:     w.State().String(),
		RequestID: w.Draft().RequestID,
		Article:   NewArticle(*article),
		Warnings:  w.Draft().Warnings,
	})
}

// Preview handles POST /api/v1/render/preview
// @Summary Preview rendering
// @Description Normalizes unsaved markup exactly as a saved article would be rendered
// @Tags render
// @Accept json
// @Produce json
// @Param request body rest.PreviewRequest true "Markup"
// @Success 200 {object} rest.PreviewResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/render/preview [post]
func (h *ArticleHandler) Preview(c echo.Context) error {
	var req PreviewRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	return c.JSON(http.StatusOK, PreviewResponse{
		HTML: h.uc.Preview(req.Content, req.Title, req.FeaturedImage),
	})
}

// Categories handles GET /api/v1/categories
// @Summary Get all categories
// @Description Retrieves all categories ordered by orderNumber
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *ArticleHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(categories, NewCategory))
}
