package repositories

import (
	"errors"
	"time"

	"smmehub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrVoucherNotFound  = errors.New("voucher not found")
	ErrVoucherNotActive = errors.New("voucher is not active")
)

type VoucherRepository interface {
	CreateBatch(vouchers []models.Voucher) error
	FindByCode(code string) (*models.Voucher, error)
	FindAll() ([]models.Voucher, error)
	Count() (int64, error)
	// Redeem atomically marks the voucher redeemed and activates the
	// profile's subscription until expiry. The voucher update is a
	// compare-and-set on status so concurrent redemptions collapse to
	// exactly one winner.
	Redeem(code, profileID string, now time.Time, expiry time.Time) (*models.Voucher, error)
}

type VoucherRepositoryImpl struct {
	db *gorm.DB
}

func NewVoucherRepository(db *gorm.DB) VoucherRepository {
	return &VoucherRepositoryImpl{db: db}
}

func (r *VoucherRepositoryImpl) CreateBatch(vouchers []models.Voucher) error {
	if len(vouchers) == 0 {
		return nil
	}
	return r.db.Create(&vouchers).Error
}

func (r *VoucherRepositoryImpl) FindByCode(code string) (*models.Voucher, error) {
	var voucher models.Voucher
	if err := r.db.First(&voucher, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoucherNotFound
		}
		return nil, err
	}
	return &voucher, nil
}

func (r *VoucherRepositoryImpl) FindAll() ([]models.Voucher, error) {
	var vouchers []models.Voucher
	err := r.db.Order("created_at DESC").Find(&vouchers).Error
	return vouchers, err
}

func (r *VoucherRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Voucher{}).Count(&count).Error
	return count, err
}

func (r *VoucherRepositoryImpl) Redeem(code, profileID string, now time.Time, expiry time.Time) (*models.Voucher, error) {
	var voucher models.Voucher

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Voucher{}).
			Where("code = ? AND status = ?", code, models.VoucherStatusActive).
			Updates(map[string]interface{}{
				"status":                 models.VoucherStatusRedeemed,
				"redeemed_at":            now,
				"redeemed_by_profile_id": profileID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrVoucherNotActive
		}

		profileResult := tx.Model(&models.SmeProfile{}).
			Where("id = ?", profileID).
			Updates(map[string]interface{}{
				"subscription_status": models.SubscriptionStatusActive,
				"subscription_expiry": expiry,
			})
		if profileResult.Error != nil {
			return profileResult.Error
		}
		if profileResult.RowsAffected == 0 {
			return ErrProfileNotFound
		}

		return tx.First(&voucher, "code = ?", code).Error
	})
	if err != nil {
		return nil, err
	}

	return &voucher, nil
}
