package handlers

import (
	"errors"
	"net/http"

	"team-site-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var pageRenderTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "teamsite_page_render_total",
	Help: "Pages served, by template and whether they came from the render cache.",
}, []string{"template", "source"})

// RenderPage serves a seeded page addressed by request path. The home page
// is just the page seeded at "/".
func (h *TemplateHandler) RenderPage(c *gin.Context) {
	path := c.Request.URL.Path

	if cached, err := h.cachedPage(path); err == nil {
		pageRenderTotal.WithLabelValues("cached", "cache").Inc()
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(cached))
		return
	}

	page, err := h.pageService.GetByPath(path)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.NotFound(c)
			return
		}
		logger.Error(err, "Failed to load page", map[string]interface{}{"path": path})
		h.renderError(c, http.StatusInternalServerError, "500 - Server Error", "Something went wrong while loading this page.")
		return
	}

	prefix := page.Template
	if prefix == "" {
		prefix = "page"
	}

	contentHTML, scripts := h.renderSectionsWithPrefix(page.Sections, prefix)

	data := h.basePageData(page.Title, page.Description, gin.H{
		"Page":     page,
		"Sections": contentHTML,
		"Scripts":  scripts,
	})

	html, err := h.renderToString("base.html", page.Template+".html", data)
	if err != nil {
		logger.Error(err, "Failed to render page", map[string]interface{}{"path": path, "template": page.Template})
		h.renderError(c, http.StatusInternalServerError, "500 - Server Error", "Something went wrong while rendering this page.")
		return
	}

	h.storeCachedPage(path, html)
	pageRenderTotal.WithLabelValues(page.Template, "render").Inc()
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// NotFound renders the shared 404 page.
func (h *TemplateHandler) NotFound(c *gin.Context) {
	h.renderError(c, http.StatusNotFound, "404 - Page Not Found", "The page you are looking for does not exist.")
}

func (h *TemplateHandler) cachedPage(path string) (string, error) {
	if !h.pageCache.Enabled() {
		return "", errors.New("cache disabled")
	}
	return h.pageCache.GetCachedPage(path)
}

func (h *TemplateHandler) storeCachedPage(path, html string) {
	if !h.pageCache.Enabled() {
		return
	}
	if err := h.pageCache.CachePage(path, html); err != nil {
		logger.Warn("Failed to cache rendered page", map[string]interface{}{"path": path, "error": err.Error()})
	}
}
