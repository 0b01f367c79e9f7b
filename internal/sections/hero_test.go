package sections

import (
	"strings"
	"testing"

	"team-site-backend/internal/models"
)

func heroElement(settings map[string]interface{}) models.SectionElement {
	return models.SectionElement{
		Type:    "hero",
		Content: models.Section{Type: "hero", Settings: settings},
	}
}

func TestHeroRendersTitleTextAndImage(t *testing.T) {
	ctx := &testContext{images: defaultTestImages()}

	html, _ := renderHero(ctx, "home", heroElement(map[string]interface{}{
		"title":     "Welcome to the Team",
		"text":      "Two branches, one team.",
		"image_url": "https://placehold.co/800x400?text=Team",
		"image_alt": "Team banner",
	}))

	if !strings.Contains(html, `<h1 class="home__hero-title">Welcome to the Team</h1>`) {
		t.Fatalf("expected hero title, got: %s", html)
	}
	if !strings.Contains(html, "Two branches, one team.") {
		t.Fatalf("expected hero text, got: %s", html)
	}
	if !strings.Contains(html, `alt="Team banner"`) {
		t.Fatalf("expected hero image alt, got: %s", html)
	}
}

func TestHeroRequiresTitleAndImage(t *testing.T) {
	ctx := &testContext{images: defaultTestImages()}

	if html, _ := renderHero(ctx, "home", heroElement(map[string]interface{}{
		"text":      "No title",
		"image_url": "https://placehold.co/800x400",
	})); html != "" {
		t.Fatalf("expected empty output without title, got: %s", html)
	}

	if html, _ := renderHero(ctx, "home", heroElement(map[string]interface{}{
		"title": "No image",
	})); html != "" {
		t.Fatalf("expected empty output without image, got: %s", html)
	}
}

func TestHeroUsesConfiguredFallbackWhenUnset(t *testing.T) {
	ctx := &testContext{images: defaultTestImages()}

	html, _ := renderHero(ctx, "home", heroElement(map[string]interface{}{
		"title":     "Welcome",
		"image_url": "https://placehold.co/800x400?text=Team",
	}))

	if !strings.Contains(html, `data-fallback="/fallback-image.png"`) {
		t.Fatalf("expected configured hero fallback, got: %s", html)
	}
}

func TestHeroButtonIsOptional(t *testing.T) {
	ctx := &testContext{images: defaultTestImages()}

	withoutButton, _ := renderHero(ctx, "home", heroElement(map[string]interface{}{
		"title":     "Welcome",
		"image_url": "https://placehold.co/800x400",
	}))
	if strings.Contains(withoutButton, "home__hero-button") {
		t.Fatalf("expected no button without settings, got: %s", withoutButton)
	}

	withButton, _ := renderHero(ctx, "home", heroElement(map[string]interface{}{
		"title":       "Welcome",
		"image_url":   "https://placehold.co/800x400",
		"button_text": "Visit a branch",
		"button_url":  "/branches",
	}))
	if !strings.Contains(withButton, `<a href="/branches" class="home__hero-button">Visit a branch</a>`) {
		t.Fatalf("expected hero button, got: %s", withButton)
	}
}
