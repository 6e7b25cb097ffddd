package repositories

import (
	"smmehub_backend/internal/models"

	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(invoice *models.Invoice) error
	ListByProfile(profileID string) ([]models.Invoice, error)
}

type InvoiceRepositoryImpl struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &InvoiceRepositoryImpl{db: db}
}

func (r *InvoiceRepositoryImpl) Create(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

func (r *InvoiceRepositoryImpl) ListByProfile(profileID string) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Where("profile_id = ?", profileID).Order("created_at DESC").Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}
