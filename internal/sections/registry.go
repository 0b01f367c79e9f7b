package sections

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"team-site-backend/internal/models"
	"team-site-backend/pkg/logger"
)

// RenderContext exposes the minimal capabilities required by section renderers.
type RenderContext interface {
	// SanitizeHTML should clean potentially unsafe markup before rendering.
	SanitizeHTML(input string) string
	// Branches returns the branch records in their declaration order.
	Branches() ([]models.Branch, error)
	// ImageSources describes where remote images come from and which local
	// assets stand in when they fail.
	ImageSources() ImageSources
}

// ImageSources carries the placeholder-image service base URL and the
// locally provisioned fallback assets.
type ImageSources struct {
	PlaceholderBase string
	HeroFallback    string
	BranchFallback  string
}

// PlaceholderURL builds the remote image URL for a piece of display text.
func (s ImageSources) PlaceholderURL(text string) string {
	base := strings.TrimSpace(s.PlaceholderBase)
	if base == "" {
		return ""
	}
	return base + "?text=" + url.QueryEscape(text)
}

// Renderer renders a section element into HTML output and optional scripts.
type Renderer func(ctx RenderContext, prefix string, elem models.SectionElement) (string, []string)

// Registry stores the mapping between section element types and their renderers.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry creates an empty section renderer registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// Register associates a renderer with a normalised element type. It returns an error when the input is invalid.
func (r *Registry) Register(sectionType string, renderer Renderer) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}

	sectionType = strings.TrimSpace(strings.ToLower(sectionType))
	if sectionType == "" {
		return fmt.Errorf("section type is empty")
	}
	if renderer == nil {
		return fmt.Errorf("renderer is nil for type %s", sectionType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.renderers == nil {
		r.renderers = make(map[string]Renderer)
	}
	r.renderers[sectionType] = renderer
	return nil
}

// RegisterSafe registers the renderer and logs failures instead of returning
// them. Used for the built-in sections during startup.
func (r *Registry) RegisterSafe(sectionType string, renderer Renderer) {
	if err := r.Register(sectionType, renderer); err != nil {
		logger.Warn("Failed to register section renderer", map[string]interface{}{"type": sectionType, "error": err.Error()})
	}
}

// Get retrieves a renderer for the provided section type if it exists.
func (r *Registry) Get(sectionType string) (Renderer, bool) {
	if r == nil {
		return nil, false
	}

	sectionType = strings.TrimSpace(strings.ToLower(sectionType))
	if sectionType == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[sectionType]
	return renderer, ok
}

// Clone creates a copy of the registry with the same renderer mappings.
func (r *Registry) Clone() *Registry {
	if r == nil {
		return NewRegistry()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for key, renderer := range r.renderers {
		cloned.renderers[key] = renderer
	}
	return cloned
}
