package handlers

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"team-site-backend/internal/models"
)

// renderSectionsWithPrefix renders a page's sections in order into a single
// HTML fragment. Sections with equal Order keep their declaration order.
func (h *TemplateHandler) renderSectionsWithPrefix(pageSections models.PageSections, prefix string) (template.HTML, []string) {
	if len(pageSections) == 0 {
		return "", nil
	}

	ordered := make([]models.Section, len(pageSections))
	copy(ordered, pageSections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	var sb strings.Builder
	var scripts []string

	for _, section := range ordered {
		sectionType := strings.TrimSpace(strings.ToLower(section.Type))
		if sectionType == "" {
			sectionType = "standard"
		}

		title := strings.TrimSpace(section.Title)
		escapedTitle := template.HTMLEscapeString(title)

		baseClass := fmt.Sprintf("%s__section", prefix)
		sectionClasses := []string{baseClass, fmt.Sprintf("%s__section--%s", prefix, sectionType)}
		sectionTitleClass := fmt.Sprintf("%s__section-title", prefix)

		sb.WriteString(`<section class="` + strings.Join(sectionClasses, " ") + `" id="section-` + template.HTMLEscapeString(section.ID) + `">`)
		if title != "" {
			sb.WriteString(`<h2 class="` + sectionTitleClass + `">` + escapedTitle + `</h2>`)
		}

		// Hero and branch sections are rendered from the section itself;
		// every other type walks its elements.
		switch sectionType {
		case "hero", "branches":
			if renderer, ok := h.sectionRegistry.Get(sectionType); ok {
				html, sectionScripts := renderer(h, prefix, models.SectionElement{Type: sectionType, Content: section})
				sb.WriteString(html)
				scripts = append(scripts, sectionScripts...)
			}
		default:
			elements := make([]models.SectionElement, len(section.Elements))
			copy(elements, section.Elements)
			sort.SliceStable(elements, func(i, j int) bool {
				return elements[i].Order < elements[j].Order
			})

			for _, elem := range elements {
				renderer, ok := h.sectionRegistry.Get(elem.Type)
				if !ok {
					continue
				}
				html, elemScripts := renderer(h, prefix, elem)
				sb.WriteString(html)
				scripts = append(scripts, elemScripts...)
			}
		}

		sb.WriteString(`</section>`)
	}

	return template.HTML(sb.String()), scripts
}
