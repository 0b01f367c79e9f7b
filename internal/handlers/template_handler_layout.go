package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"team-site-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *TemplateHandler) basePageData(title, description string, extra gin.H) gin.H {
	site := h.siteSettings()

	data := gin.H{
		"Title":       fmt.Sprintf("%s - %s", title, site.Name),
		"Description": description,
		"Site": gin.H{
			"Name":        site.Name,
			"Description": site.Description,
			"URL":         site.URL,
			"Favicon":     site.Favicon,
		},
		"Navigation": h.navigation,
	}

	for k, v := range extra {
		data[k] = v
	}

	return data
}

func (h *TemplateHandler) templateClone() (*template.Template, error) {
	if h.templates == nil {
		return nil, fmt.Errorf("templates are not configured")
	}
	return h.templates.Clone()
}

// renderWithLayout renders the content template, injects the result into the
// layout exactly once as data["Content"], and writes the final document.
func (h *TemplateHandler) renderWithLayout(c *gin.Context, layout, content string, data gin.H) {
	html, err := h.renderToString(layout, content, data)
	if err != nil {
		logger.Error(err, "Failed to render page", map[string]interface{}{"template": content})
		h.renderError(c, http.StatusInternalServerError, "500 - Server Error", "Something went wrong while rendering this page.")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *TemplateHandler) renderToString(layout, content string, data gin.H) (string, error) {
	tmpl, err := h.templateClone()
	if err != nil {
		return "", err
	}

	contentTmpl := tmpl.Lookup(content)
	if contentTmpl == nil {
		return "", fmt.Errorf("content template %q not found", content)
	}

	buf, err := executeTemplate(contentTmpl, data)
	if err != nil {
		return "", fmt.Errorf("failed to render content template %q: %w", content, err)
	}

	data["Content"] = template.HTML(buf)

	layoutTmpl := tmpl.Lookup(layout)
	if layoutTmpl == nil {
		return "", fmt.Errorf("layout template %q not found", layout)
	}

	output, err := executeTemplate(layoutTmpl, data)
	if err != nil {
		return "", fmt.Errorf("failed to render layout %q: %w", layout, err)
	}

	return output, nil
}

func executeTemplate(tmpl *template.Template, data gin.H) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (h *TemplateHandler) renderError(c *gin.Context, status int, title, message string) {
	data := h.basePageData(title, message, gin.H{
		"ErrorTitle":   title,
		"ErrorMessage": message,
	})

	html, err := h.renderToString("base.html", "error.html", data)
	if err != nil {
		logger.Error(err, "Failed to render error page", nil)
		c.String(status, "%s", message)
		return
	}

	c.Data(status, "text/html; charset=utf-8", []byte(html))
}
