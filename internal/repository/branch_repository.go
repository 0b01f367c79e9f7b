package repository

import (
	"team-site-backend/internal/models"

	"gorm.io/gorm"
)

type BranchRepository interface {
	List() ([]models.Branch, error)
	GetByName(name string) (*models.Branch, error)
	Create(branch *models.Branch) error
	NextPosition() (int, error)
}

type branchRepository struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) List() ([]models.Branch, error) {
	var branches []models.Branch
	err := r.db.Order("position ASC, id ASC").Find(&branches).Error
	return branches, err
}

func (r *branchRepository) GetByName(name string) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.Where("name = ?", name).First(&branch).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepository) Create(branch *models.Branch) error {
	return r.db.Create(branch).Error
}

func (r *branchRepository) NextPosition() (int, error) {
	var maxPosition int64
	err := r.db.Model(&models.Branch{}).Select("COALESCE(MAX(position), 0)").Scan(&maxPosition).Error
	if err != nil {
		return 0, err
	}
	return int(maxPosition) + 1, nil
}
