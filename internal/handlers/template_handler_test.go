package handlers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"team-site-backend/internal/config"
	"team-site-backend/internal/models"
	"team-site-backend/internal/service"
	"team-site-backend/pkg/cache"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type stubBranchRepo struct {
	branches []models.Branch
}

func (r *stubBranchRepo) List() ([]models.Branch, error) {
	return r.branches, nil
}

func (r *stubBranchRepo) GetByName(name string) (*models.Branch, error) {
	for i := range r.branches {
		if r.branches[i].Name == name {
			return &r.branches[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubBranchRepo) Create(branch *models.Branch) error {
	r.branches = append(r.branches, *branch)
	return nil
}

func (r *stubBranchRepo) NextPosition() (int, error) {
	return len(r.branches) + 1, nil
}

type stubPageRepo struct {
	pages []models.Page
}

func (r *stubPageRepo) List() ([]models.Page, error) {
	return r.pages, nil
}

func (r *stubPageRepo) GetBySlug(slug string) (*models.Page, error) {
	for i := range r.pages {
		if r.pages[i].Slug == slug {
			return &r.pages[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPageRepo) GetByPath(path string) (*models.Page, error) {
	for i := range r.pages {
		if r.pages[i].Path == path {
			return &r.pages[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPageRepo) Create(page *models.Page) error {
	r.pages = append(r.pages, *page)
	return nil
}

func (r *stubPageRepo) Update(page *models.Page) error {
	return nil
}

func testTemplates(t *testing.T) *template.Template {
	t.Helper()

	tmpl := template.New("base.html")
	for _, def := range []string{
		`{{define "base.html"}}<html><body><nav aria-label="Main navigation">{{range .Navigation}}<a href="{{.Path}}" aria-label="{{.AriaLabel}}">{{.Label}}</a>{{end}}</nav><main>{{.Content}}</main></body></html>{{end}}`,
		`{{define "home.html"}}<div class="home">{{.Sections}}</div>{{end}}`,
		`{{define "page.html"}}<div class="page">{{.Sections}}</div>{{end}}`,
		`{{define "error.html"}}<div class="error-page"><h1>{{.ErrorTitle}}</h1><p>{{.ErrorMessage}}</p></div>{{end}}`,
	} {
		if _, err := tmpl.Parse(def); err != nil {
			t.Fatalf("failed to parse test template: %v", err)
		}
	}
	return tmpl
}

func homePage() models.Page {
	return models.Page{
		Title:       "Home",
		Slug:        "home",
		Path:        "/",
		Description: "Meet the team and find the branch nearest to you.",
		Template:    "home",
		Sections: models.PageSections{
			{
				ID:    "home-hero",
				Type:  "hero",
				Order: 1,
				Settings: models.JSONMap{
					"title":        "Welcome to the Team",
					"text":         "Two branches, one team.",
					"image_url":    "https://placehold.co/800x400?text=Welcome",
					"image_alt":    "Team banner",
					"fallback_url": "/fallback-image.png",
				},
			},
			{
				ID:    "home-branches",
				Type:  "branches",
				Title: "Our Branches",
				Order: 2,
			},
		},
	}
}

func newTestRouter(t *testing.T, branches []models.Branch, pages []models.Page) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		SiteName:             "Team Site",
		SiteDescription:      "Meet the team.",
		SiteURL:              "http://localhost:8080",
		PlaceholderImageBase: "https://placehold.co/800x400",
		FallbackHeroImage:    "/fallback-image.png",
		FallbackBranchImage:  "/fallback-branch.png",
	}

	disabledCache, _ := cache.NewCache("", false)

	handler, err := NewTemplateHandler(
		service.NewBranchService(&stubBranchRepo{branches: branches}),
		service.NewPageService(&stubPageRepo{pages: pages}),
		cfg,
		testTemplates(t),
		disabledCache,
	)
	if err != nil {
		t.Fatalf("failed to create template handler: %v", err)
	}

	router := gin.New()
	router.GET("/", handler.RenderPage)
	router.GET("/about", handler.RenderPage)
	router.GET("/branches", handler.RenderPage)
	router.GET("/contact", handler.RenderPage)
	router.NoRoute(handler.NotFound)
	return router
}

func seededBranches() []models.Branch {
	return []models.Branch{
		{ID: 1, Name: "Parañaque City", Description: "Our flagship branch in Metro Manila.", Position: 1},
		{ID: 2, Name: "Lucena City", Description: "Our Quezon province branch.", Position: 2},
	}
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHomeComposesHeroThenBranchCards(t *testing.T) {
	router := newTestRouter(t, seededBranches(), []models.Page{homePage()})

	resp := get(t, router, "/")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	body := resp.Body.String()
	heroAt := strings.Index(body, "Welcome to the Team")
	firstCardAt := strings.Index(body, "Parañaque City")
	secondCardAt := strings.Index(body, "Lucena City")

	if heroAt < 0 || firstCardAt < 0 || secondCardAt < 0 {
		t.Fatalf("missing hero or branch content in body:\n%s", body)
	}
	if !(heroAt < firstCardAt && firstCardAt < secondCardAt) {
		t.Fatalf("hero and branch cards rendered out of order")
	}
	if !strings.Contains(body, "Our flagship branch in Metro Manila.") {
		t.Fatalf("branch description missing from body")
	}
}

func TestHomeRendersFullyWithoutFetchingRemoteImages(t *testing.T) {
	// Rendering is entirely server-side: the placeholder service is only
	// ever referenced in markup, so an unreachable image host still yields
	// a complete page with fallback wiring in place.
	router := newTestRouter(t, seededBranches(), []models.Page{homePage()})

	body := get(t, router, "/").Body.String()

	if got := strings.Count(body, `data-fallback="/fallback-branch.png"`); got != 2 {
		t.Fatalf("expected both cards to carry the branch fallback, found %d", got)
	}
	if !strings.Contains(body, `data-fallback="/fallback-image.png"`) {
		t.Fatalf("expected the hero to carry its fallback")
	}
	if !strings.Contains(body, "Lucena City") || !strings.Contains(body, "Our Quezon province branch.") {
		t.Fatalf("branch text missing from body")
	}
}

func TestLayoutRendersContentExactlyOnce(t *testing.T) {
	marker := "unique-content-marker-417"
	page := models.Page{
		Title:    "About",
		Slug:     "about",
		Path:     "/about",
		Template: "page",
		Sections: models.PageSections{
			{
				ID:   "about-intro",
				Type: "standard",
				Elements: []models.SectionElement{
					{ID: "p1", Type: "paragraph", Content: map[string]interface{}{"text": marker}},
				},
			},
		},
	}
	router := newTestRouter(t, nil, []models.Page{page})

	body := get(t, router, "/about").Body.String()
	if got := strings.Count(body, marker); got != 1 {
		t.Fatalf("expected content to appear exactly once, found %d times", got)
	}
}

func TestHeaderExposesFourNavigationEntriesInOrder(t *testing.T) {
	router := newTestRouter(t, nil, []models.Page{homePage()})

	body := get(t, router, "/").Body.String()

	linkRe := regexp.MustCompile(`<a href="([^"]*)" aria-label="([^"]*)">([^<]*)</a>`)
	matches := linkRe.FindAllStringSubmatch(body, -1)
	if len(matches) != 4 {
		t.Fatalf("expected 4 navigation links, found %d", len(matches))
	}

	wantLabels := []string{"Home", "About", "Branches", "Contact"}
	for i, match := range matches {
		if match[3] != wantLabels[i] {
			t.Fatalf("link %d: expected label %q, got %q", i, wantLabels[i], match[3])
		}
		if match[1] == "" || match[2] == "" {
			t.Fatalf("link %d has an empty target or aria label", i)
		}
	}
}

func TestUnknownPathRendersNotFoundPage(t *testing.T) {
	router := newTestRouter(t, nil, []models.Page{homePage()})

	resp := get(t, router, "/nowhere")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "404 - Page Not Found") {
		t.Fatalf("expected rendered 404 page, got: %s", resp.Body.String())
	}
}

func TestSeededRouteWithoutPageRecordRendersNotFound(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	resp := get(t, router, "/contact")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing page record, got %d", resp.Code)
	}
}
