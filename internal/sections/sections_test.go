package sections

import (
	"team-site-backend/internal/models"
)

// testContext is the minimal RenderContext used across section tests.
// Sanitization is identity here; bluemonday behaviour is not under test.
type testContext struct {
	branches    []models.Branch
	branchesErr error
	images      ImageSources
}

func (c *testContext) SanitizeHTML(input string) string {
	return input
}

func (c *testContext) Branches() ([]models.Branch, error) {
	return c.branches, c.branchesErr
}

func (c *testContext) ImageSources() ImageSources {
	return c.images
}

func defaultTestImages() ImageSources {
	return ImageSources{
		PlaceholderBase: "https://placehold.co/800x400",
		HeroFallback:    "/fallback-image.png",
		BranchFallback:  "/fallback-branch.png",
	}
}
