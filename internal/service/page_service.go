package service

import (
	"errors"
	"fmt"
	"strings"

	"team-site-backend/internal/models"
	"team-site-backend/internal/repository"
	"team-site-backend/pkg/utils"
	"team-site-backend/pkg/validator"
)

var ErrPageExists = errors.New("a page with this slug already exists")

type PageService struct {
	repo repository.PageRepository
}

func NewPageService(repo repository.PageRepository) *PageService {
	if repo == nil {
		return nil
	}
	return &PageService{repo: repo}
}

func (s *PageService) List() ([]models.Page, error) {
	if s == nil || s.repo == nil {
		return nil, errors.New("page repository not configured")
	}
	return s.repo.List()
}

func (s *PageService) GetBySlug(slug string) (*models.Page, error) {
	if s == nil || s.repo == nil {
		return nil, errors.New("page repository not configured")
	}
	return s.repo.GetBySlug(strings.TrimSpace(slug))
}

func (s *PageService) GetByPath(path string) (*models.Page, error) {
	if s == nil || s.repo == nil {
		return nil, errors.New("page repository not configured")
	}
	return s.repo.GetByPath(strings.TrimSpace(path))
}

func (s *PageService) Create(req models.CreatePageRequest) (*models.Page, error) {
	if s == nil || s.repo == nil {
		return nil, errors.New("page repository not configured")
	}

	if err := validator.Validate(req); err != nil {
		return nil, fmt.Errorf("invalid page definition: %w", err)
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}

	if existing, err := s.repo.GetBySlug(slug); err == nil && existing != nil {
		return nil, ErrPageExists
	}

	template := strings.TrimSpace(req.Template)
	if template == "" {
		template = "page"
	}

	page := &models.Page{
		Title:       req.Title,
		Slug:        slug,
		Path:        req.Path,
		Description: req.Description,
		Sections:    models.PageSections(req.Sections),
		Template:    template,
		Order:       req.Order,
	}

	if err := s.repo.Create(page); err != nil {
		return nil, err
	}

	return page, nil
}
