package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/swaggo/swag"
)

const (
	apiV1Prefix = "/api/v1"

	healthPath  = "/health"
	swaggerPath = "/swagger/doc.json"
)

// RegisterRoutes registers all routes for the handler
func (h *ArticleHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.loggingMiddleware)

	h.registerAPIRoutes(e.Group(apiV1Prefix))

	e.GET(healthPath, h.handleHealth)
	e.GET(swaggerPath, h.handleSwagger)

	return e
}

func (h *ArticleHandler) registerAPIRoutes(g *echo.Group) {
	g.GET("/categories", h.Categories)

	g.POST("/articles", h.CreateArticle)
	g.POST("/articles/generate", h.Generate)
	g.POST("/articles/generate/publish", h.GeneratePublish)
	g.GET("/articles/:id", h.ArticleByID)
	g.PUT("/articles/:id", h.UpdateArticle)
	g.DELETE("/articles/:id", h.DeleteArticle)
	g.GET("/articles/:id/related", h.RelatedArticles)

	g.GET("/articles/:id/versions", h.Versions)
	g.GET("/articles/:id/versions/:versionId", h.Version)
	g.POST("/articles/:id/versions/:versionId/restore", h.RestoreVersion)

	g.POST("/render/preview", h.Preview)
}

// handleHealth handles GET /health
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *ArticleHandler) handleHealth(c echo.Context) error {
	if err := h.uc.Ping(c.Request().Context()); err != nil {
		return h.handleError(c, err, http.StatusServiceUnavailable, "storage unavailable")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ArticleHandler) handleSwagger(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusNotFound, "api documentation is not registered")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

func (h *ArticleHandler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		h.log.Info("HTTP request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)

		return nil
	}
}
