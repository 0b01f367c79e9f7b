package handlers

import (
	"fmt"
	"html/template"

	"team-site-backend/internal/config"
	"team-site-backend/internal/models"
	"team-site-backend/internal/sections"
	"team-site-backend/internal/service"
	"team-site-backend/pkg/cache"
	"team-site-backend/pkg/navigation"

	"github.com/microcosm-cc/bluemonday"
)

// TemplateHandler renders the public site: the composed home page and the
// seeded content pages, all through the shared layout.
type TemplateHandler struct {
	branchService   *service.BranchService
	pageService     *service.PageService
	templates       *template.Template
	config          *config.Config
	sanitizer       *bluemonday.Policy
	sectionRegistry *sections.Registry
	pageCache       *cache.Cache
	navigation      []navigation.Item
}

func NewTemplateHandler(branchService *service.BranchService, pageService *service.PageService, cfg *config.Config, templates *template.Template, pageCache *cache.Cache) (*TemplateHandler, error) {
	if templates == nil {
		return nil, fmt.Errorf("templates are required")
	}

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class", "id").Globally()

	handler := &TemplateHandler{
		branchService:   branchService,
		pageService:     pageService,
		templates:       templates,
		config:          cfg,
		sanitizer:       policy,
		sectionRegistry: sections.DefaultRegistry(),
		pageCache:       pageCache,
		navigation:      navigation.Header(),
	}

	return handler, nil
}

// SanitizeHTML implements sections.RenderContext.
func (h *TemplateHandler) SanitizeHTML(input string) string {
	return h.sanitizer.Sanitize(input)
}

// Branches implements sections.RenderContext.
func (h *TemplateHandler) Branches() ([]models.Branch, error) {
	if h.branchService == nil {
		return nil, fmt.Errorf("branch service not configured")
	}
	return h.branchService.List()
}

// ImageSources implements sections.RenderContext.
func (h *TemplateHandler) ImageSources() sections.ImageSources {
	if h.config == nil {
		return sections.ImageSources{}
	}
	return sections.ImageSources{
		PlaceholderBase: h.config.PlaceholderImageBase,
		HeroFallback:    h.config.FallbackHeroImage,
		BranchFallback:  h.config.FallbackBranchImage,
	}
}

// RegisterSectionRenderer allows registration of custom section renderers.
func (h *TemplateHandler) RegisterSectionRenderer(sectionType string, renderer sections.Renderer) error {
	if h == nil {
		return nil
	}

	if h.sectionRegistry == nil {
		h.sectionRegistry = sections.NewRegistry()
	}

	return h.sectionRegistry.Register(sectionType, renderer)
}

func (h *TemplateHandler) siteSettings() models.SiteSettings {
	if h.config == nil {
		return models.SiteSettings{}
	}
	return models.SiteSettings{
		Name:        h.config.SiteName,
		Description: h.config.SiteDescription,
		URL:         h.config.SiteURL,
		Favicon:     h.config.SiteFavicon,
	}
}
