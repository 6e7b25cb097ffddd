package repositories

import (
	"smmehub_backend/internal/models"

	"gorm.io/gorm"
)

// PlatformStats is the admin dashboard summary.
type PlatformStats struct {
	TotalSmes           int64 `json:"totalSmes"`
	ActiveSubscriptions int64 `json:"activeSubscriptions"`
	RedeemedVouchers    int64 `json:"redeemedVouchers"`
}

type AnalyticsRepository interface {
	GetPlatformStats() (*PlatformStats, error)
}

type AnalyticsRepositoryImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &AnalyticsRepositoryImpl{db: db}
}

func (r *AnalyticsRepositoryImpl) GetPlatformStats() (*PlatformStats, error) {
	var stats PlatformStats

	if err := r.db.Model(&models.SmeProfile{}).Count(&stats.TotalSmes).Error; err != nil {
		return nil, err
	}
	err := r.db.Model(&models.SmeProfile{}).
		Where("subscription_status = ?", models.SubscriptionStatusActive).
		Count(&stats.ActiveSubscriptions).Error
	if err != nil {
		return nil, err
	}
	err = r.db.Model(&models.Voucher{}).
		Where("status = ?", models.VoucherStatusRedeemed).
		Count(&stats.RedeemedVouchers).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
