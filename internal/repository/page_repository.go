package repository

import (
	"team-site-backend/internal/models"

	"gorm.io/gorm"
)

type PageRepository interface {
	List() ([]models.Page, error)
	GetBySlug(slug string) (*models.Page, error)
	GetByPath(path string) (*models.Page, error)
	Create(page *models.Page) error
	Update(page *models.Page) error
}

type pageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) PageRepository {
	return &pageRepository{db: db}
}

func (r *pageRepository) List() ([]models.Page, error) {
	var pages []models.Page
	err := r.db.Order("\"order\" ASC, id ASC").Find(&pages).Error
	return pages, err
}

func (r *pageRepository) GetBySlug(slug string) (*models.Page, error) {
	var page models.Page
	err := r.db.Where("slug = ?", slug).First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *pageRepository) GetByPath(path string) (*models.Page, error) {
	var page models.Page
	err := r.db.Where("path = ?", path).First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *pageRepository) Create(page *models.Page) error {
	return r.db.Create(page).Error
}

func (r *pageRepository) Update(page *models.Page) error {
	return r.db.Save(page).Error
}
