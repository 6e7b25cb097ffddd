package services

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"

	"smmehub_backend/internal/models"
	"smmehub_backend/internal/repositories"
	"smmehub_backend/internal/services/dto"
	"smmehub_backend/pkg/apperrors"
)

type InvoiceService interface {
	Create(userID string, req *dto.CreateInvoiceRequest) (*models.Invoice, error)
	List(userID string) ([]models.Invoice, error)
}

type InvoiceServiceImpl struct {
	invoiceRepo repositories.InvoiceRepository
	profileRepo repositories.ProfileRepository
}

func NewInvoiceService(
	invoiceRepo repositories.InvoiceRepository,
	profileRepo repositories.ProfileRepository,
) InvoiceService {
	return &InvoiceServiceImpl{
		invoiceRepo: invoiceRepo,
		profileRepo: profileRepo,
	}
}

func (s *InvoiceServiceImpl) Create(userID string, req *dto.CreateInvoiceRequest) (*models.Invoice, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileRequired
		}
		return nil, apperrors.InternalError(err)
	}

	var total int64
	for _, item := range req.Items {
		total += item.Quantity * item.UnitCents
	}

	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	invoice := &models.Invoice{
		ProfileID:        profile.ID,
		CustomerName:     req.CustomerName,
		Items:            datatypes.JSON(itemsJSON),
		TotalAmountCents: total,
	}
	if err := s.invoiceRepo.Create(invoice); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return invoice, nil
}

func (s *InvoiceServiceImpl) List(userID string) ([]models.Invoice, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileRequired
		}
		return nil, apperrors.InternalError(err)
	}

	invoices, err := s.invoiceRepo.ListByProfile(profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return invoices, nil
}
