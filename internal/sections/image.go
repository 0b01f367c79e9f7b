package sections

import (
	"fmt"
	"html/template"
	"strings"

	"team-site-backend/internal/models"
)

// RegisterImage registers the default image renderer on the provided registry.
func RegisterImage(reg *Registry) {
	if reg == nil {
		return
	}
	reg.RegisterSafe("image", renderImage)
}

func renderImage(ctx RenderContext, prefix string, elem models.SectionElement) (string, []string) {
	content := sectionContent(elem)
	url := getString(content, "url")
	fallback := getString(content, "fallback_url")
	alt := getString(content, "alt")
	caption := getString(content, "caption")

	if strings.TrimSpace(url) == "" {
		return "", nil
	}

	figureClass := fmt.Sprintf("%s__image", prefix)
	imageClass := fmt.Sprintf("%s__image-img", prefix)

	var sb strings.Builder
	sb.WriteString(`<figure class="` + figureClass + `">`)
	sb.WriteString(imageWithFallback(imageClass, url, fallback, alt))
	if caption = strings.TrimSpace(caption); caption != "" {
		sanitizedCaption := ctx.SanitizeHTML(caption)
		captionClass := fmt.Sprintf("%s__image-caption", prefix)
		sb.WriteString(`<figcaption class="` + captionClass + `">` + sanitizedCaption + `</figcaption>`)
	}
	sb.WriteString(`</figure>`)

	return sb.String(), nil
}

// imageWithFallback emits an img tag whose error handler swaps to the local
// fallback exactly once. The handler clears itself before swapping, so a
// failing fallback leaves the source untouched instead of looping. A second
// failure of the primary is likewise a no-op. The fallback asset itself
// failing is left visibly broken on purpose.
func imageWithFallback(class, src, fallback, alt string) string {
	var sb strings.Builder
	sb.WriteString(`<img class="` + class + `"`)
	sb.WriteString(` src="` + template.HTMLEscapeString(src) + `"`)
	if strings.TrimSpace(fallback) != "" {
		sb.WriteString(` data-fallback="` + template.HTMLEscapeString(fallback) + `"`)
		sb.WriteString(` onerror="this.onerror=null;this.src=this.dataset.fallback;"`)
	}
	sb.WriteString(` alt="` + template.HTMLEscapeString(alt) + `" loading="lazy" />`)
	return sb.String()
}
