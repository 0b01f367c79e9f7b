package sections

import (
	"fmt"
	"html/template"
	"strings"

	"team-site-backend/internal/models"
	"team-site-backend/pkg/logger"
)

// RegisterBranches registers the branch card collection renderer.
func RegisterBranches(reg *Registry) {
	if reg == nil {
		return
	}
	reg.RegisterSafe("branches", renderBranches)
}

func renderBranches(ctx RenderContext, prefix string, elem models.SectionElement) (string, []string) {
	listClass := fmt.Sprintf("%s__branch-list", prefix)
	emptyClass := fmt.Sprintf("%s__branch-list-empty", prefix)

	branches, err := ctx.Branches()
	if err != nil {
		logger.Error(err, "Failed to load branches for section", nil)
		return `<p class="` + emptyClass + `">Branches are not available right now.</p>`, nil
	}
	if len(branches) == 0 {
		return `<p class="` + emptyClass + `">No branches yet.</p>`, nil
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + listClass + `">`)
	for _, branch := range branches {
		sb.WriteString(BranchCard(ctx, prefix, branch))
	}
	sb.WriteString(`</div>`)

	return sb.String(), nil
}

// BranchCard renders a single branch card. It is deterministic: the same
// record always yields the same markup. Inputs are escaped but never
// validated or trimmed; data quality is owned by the seed layer.
func BranchCard(ctx RenderContext, prefix string, branch models.Branch) string {
	cardClass := fmt.Sprintf("%s__branch-card branch-card", prefix)
	figureClass := "branch-card__figure"
	imageClass := "branch-card__image"
	bodyClass := "branch-card__body"
	nameClass := "branch-card__name"
	descriptionClass := "branch-card__description"

	images := ctx.ImageSources()
	primary := images.PlaceholderURL(branch.Name)

	var sb strings.Builder
	sb.WriteString(`<article class="` + cardClass + `">`)
	sb.WriteString(`<figure class="` + figureClass + `">`)
	sb.WriteString(imageWithFallback(imageClass, primary, images.BranchFallback, branch.Name))
	sb.WriteString(`</figure>`)
	sb.WriteString(`<div class="` + bodyClass + `">`)
	sb.WriteString(`<h3 class="` + nameClass + `">` + template.HTMLEscapeString(branch.Name) + `</h3>`)
	sb.WriteString(`<p class="` + descriptionClass + `">` + template.HTMLEscapeString(branch.Description) + `</p>`)
	sb.WriteString(`</div>`)
	sb.WriteString(`</article>`)

	return sb.String()
}
