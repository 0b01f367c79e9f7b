package sections

import (
	"fmt"
	"html/template"
	"strings"

	"team-site-backend/internal/models"
)

// RegisterHero registers the hero section renderer.
func RegisterHero(reg *Registry) {
	if reg == nil {
		return
	}
	reg.RegisterSafe("hero", renderHero)
}

func renderHero(ctx RenderContext, prefix string, elem models.SectionElement) (string, []string) {
	// Hero settings live on the Section model, not on individual elements.
	section, ok := extractSection(elem)
	if !ok {
		content := sectionContent(elem)
		if settings, settingsOK := content["settings"].(map[string]interface{}); settingsOK {
			section.Settings = settings
		} else {
			section.Settings = content
		}
	}

	settings := map[string]interface{}(section.Settings)
	if settings == nil {
		return "", nil
	}

	title := getString(settings, "title")
	text := getString(settings, "text")
	imageURL := getString(settings, "image_url")
	imageAlt := getString(settings, "image_alt")
	fallbackURL := getString(settings, "fallback_url")
	buttonText := getString(settings, "button_text")
	buttonURL := getString(settings, "button_url")

	if strings.TrimSpace(title) == "" || strings.TrimSpace(imageURL) == "" {
		return "", nil
	}

	if strings.TrimSpace(imageAlt) == "" {
		imageAlt = "Hero image"
	}
	if strings.TrimSpace(fallbackURL) == "" {
		fallbackURL = ctx.ImageSources().HeroFallback
	}

	sanitizedTitle := ctx.SanitizeHTML(title)
	sanitizedText := ctx.SanitizeHTML(text)

	heroClass := fmt.Sprintf("%s__hero", prefix)
	heroContainerClass := fmt.Sprintf("%s__hero-container", prefix)
	heroContentClass := fmt.Sprintf("%s__hero-content", prefix)
	heroTitleClass := fmt.Sprintf("%s__hero-title", prefix)
	heroTextClass := fmt.Sprintf("%s__hero-text", prefix)
	heroButtonClass := fmt.Sprintf("%s__hero-button", prefix)
	heroImageClass := fmt.Sprintf("%s__hero-image", prefix)
	heroImageImgClass := fmt.Sprintf("%s__hero-image-img", prefix)

	var sb strings.Builder
	sb.WriteString(`<div class="` + heroClass + `">`)
	sb.WriteString(`<div class="` + heroContainerClass + `">`)

	sb.WriteString(`<div class="` + heroContentClass + `">`)
	sb.WriteString(`<h1 class="` + heroTitleClass + `">` + sanitizedTitle + `</h1>`)

	if strings.TrimSpace(text) != "" {
		sb.WriteString(`<p class="` + heroTextClass + `">` + sanitizedText + `</p>`)
	}

	if strings.TrimSpace(buttonText) != "" && strings.TrimSpace(buttonURL) != "" {
		sb.WriteString(`<a href="` + template.HTMLEscapeString(buttonURL) + `" class="` + heroButtonClass + `">`)
		sb.WriteString(template.HTMLEscapeString(buttonText))
		sb.WriteString(`</a>`)
	}
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="` + heroImageClass + `">`)
	sb.WriteString(imageWithFallback(heroImageImgClass, imageURL, fallbackURL, imageAlt))
	sb.WriteString(`</div>`)

	sb.WriteString(`</div>`)
	sb.WriteString(`</div>`)

	return sb.String(), nil
}
