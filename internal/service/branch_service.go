package service

import (
	"errors"
	"fmt"
	"strings"

	"team-site-backend/internal/models"
	"team-site-backend/internal/repository"
	"team-site-backend/pkg/validator"
)

var ErrBranchExists = errors.New("a branch with this name already exists")

type BranchService struct {
	repo repository.BranchRepository
}

func NewBranchService(repo repository.BranchRepository) *BranchService {
	if repo == nil {
		return nil
	}
	return &BranchService{repo: repo}
}

// List returns every branch in declaration order of the seed data.
func (s *BranchService) List() ([]models.Branch, error) {
	if s == nil || s.repo == nil {
		return nil, errors.New("branch repository not configured")
	}
	return s.repo.List()
}

func (s *BranchService) GetByName(name string) (*models.Branch, error) {
	if s == nil || s.repo == nil {
		return nil, errors.New("branch repository not configured")
	}
	return s.repo.GetByName(strings.TrimSpace(name))
}

func (s *BranchService) Create(req models.CreateBranchRequest) (*models.Branch, error) {
	if s == nil || s.repo == nil {
		return nil, errors.New("branch repository not configured")
	}

	if err := validator.Validate(req); err != nil {
		return nil, fmt.Errorf("invalid branch definition: %w", err)
	}

	name := strings.TrimSpace(req.Name)
	if existing, err := s.repo.GetByName(name); err == nil && existing != nil {
		return nil, ErrBranchExists
	}

	position := 0
	if req.Position != nil {
		position = *req.Position
	} else {
		next, err := s.repo.NextPosition()
		if err != nil {
			return nil, err
		}
		position = next
	}

	branch := &models.Branch{
		Name:        name,
		Description: req.Description,
		Position:    position,
	}

	if err := s.repo.Create(branch); err != nil {
		return nil, err
	}

	return branch, nil
}
