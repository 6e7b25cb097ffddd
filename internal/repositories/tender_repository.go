package repositories

import (
	"errors"

	"smmehub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTenderNotFound = errors.New("tender not found")

type TenderRepository interface {
	Create(tender *models.Tender) error
	FindByID(id string) (*models.Tender, error)
	FindAll() ([]models.Tender, error)
	Update(tender *models.Tender) error
}

type TenderRepositoryImpl struct {
	db *gorm.DB
}

func NewTenderRepository(db *gorm.DB) TenderRepository {
	return &TenderRepositoryImpl{db: db}
}

func (r *TenderRepositoryImpl) Create(tender *models.Tender) error {
	return r.db.Create(tender).Error
}

func (r *TenderRepositoryImpl) FindByID(id string) (*models.Tender, error) {
	var tender models.Tender
	if err := r.db.First(&tender, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenderNotFound
		}
		return nil, err
	}
	return &tender, nil
}

// FindAll lists open tenders first, newest first within each group.
func (r *TenderRepositoryImpl) FindAll() ([]models.Tender, error) {
	var tenders []models.Tender
	err := r.db.Order("CASE WHEN status = 'open' THEN 0 ELSE 1 END, created_at DESC").Find(&tenders).Error
	return tenders, err
}

func (r *TenderRepositoryImpl) Update(tender *models.Tender) error {
	return r.db.Save(tender).Error
}
