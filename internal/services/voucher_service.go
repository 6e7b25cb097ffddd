package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"smmehub_backend/internal/logger"
	"smmehub_backend/internal/models"
	"smmehub_backend/internal/repositories"
	"smmehub_backend/pkg/apperrors"
)

// subscriptionDuration is how long a redeemed voucher keeps the
// subscription active.
const subscriptionDuration = 6 * 30 * 24 * time.Hour

const voucherCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type VoucherService interface {
	Redeem(ctx context.Context, userID, code string) (*models.Voucher, *models.SmeProfile, error)
	Generate(ctx context.Context, count int) ([]models.Voucher, error)
	List() ([]models.Voucher, error)
	// SeedInitial creates a starter batch when the voucher table is empty.
	SeedInitial(ctx context.Context) error
}

type VoucherServiceImpl struct {
	voucherRepo repositories.VoucherRepository
	profileRepo repositories.ProfileRepository
}

func NewVoucherService(
	voucherRepo repositories.VoucherRepository,
	profileRepo repositories.ProfileRepository,
) VoucherService {
	return &VoucherServiceImpl{
		voucherRepo: voucherRepo,
		profileRepo: profileRepo,
	}
}

func (s *VoucherServiceImpl) Redeem(ctx context.Context, userID, code string) (*models.Voucher, *models.SmeProfile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, nil, apperrors.ErrProfileRequired
		}
		return nil, nil, apperrors.InternalError(err)
	}

	now := time.Now()
	voucher, err := s.voucherRepo.Redeem(code, profile.ID, now, now.Add(subscriptionDuration))
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrVoucherNotFound),
			errors.Is(err, repositories.ErrVoucherNotActive):
			return nil, nil, apperrors.ErrVoucherInvalid
		case errors.Is(err, repositories.ErrProfileNotFound):
			return nil, nil, apperrors.ErrProfileRequired
		default:
			return nil, nil, apperrors.InternalError(err)
		}
	}

	refreshed, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "voucher redeemed",
		"code", voucher.Code,
		"profile_id", profile.ID,
	)
	return voucher, refreshed, nil
}

func (s *VoucherServiceImpl) Generate(ctx context.Context, count int) ([]models.Voucher, error) {
	vouchers := make([]models.Voucher, 0, count)
	for i := 0; i < count; i++ {
		code, err := newVoucherCode()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		vouchers = append(vouchers, models.Voucher{
			Code:   code,
			Status: models.VoucherStatusActive,
		})
	}

	if err := s.voucherRepo.CreateBatch(vouchers); err != nil {
		// A code collision surfaces as a unique violation. Retry once
		// with fresh codes before giving up.
		retry := make([]models.Voucher, 0, count)
		for i := 0; i < count; i++ {
			code, genErr := newVoucherCode()
			if genErr != nil {
				return nil, apperrors.InternalError(genErr)
			}
			retry = append(retry, models.Voucher{Code: code, Status: models.VoucherStatusActive})
		}
		if retryErr := s.voucherRepo.CreateBatch(retry); retryErr != nil {
			return nil, apperrors.InternalError(retryErr)
		}
		vouchers = retry
	}

	logger.CtxInfo(ctx, "vouchers generated", "count", len(vouchers))
	return vouchers, nil
}

func (s *VoucherServiceImpl) List() ([]models.Voucher, error) {
	vouchers, err := s.voucherRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return vouchers, nil
}

func (s *VoucherServiceImpl) SeedInitial(ctx context.Context) error {
	count, err := s.voucherRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = s.Generate(ctx, 10)
	return err
}

// newVoucherCode returns a code like "SMME-7KQ2-X9TC" built from a
// crypto-random draw over an alphabet without lookalike characters.
func newVoucherCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	chars := make([]byte, 8)
	for i, b := range buf {
		chars[i] = voucherCodeAlphabet[int(b)%len(voucherCodeAlphabet)]
	}
	return fmt.Sprintf("SMME-%s-%s", chars[:4], chars[4:]), nil
}
