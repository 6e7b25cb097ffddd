package services

import (
	"testing"

	"smmehub_backend/internal/models"
	"smmehub_backend/internal/services/dto"
	"smmehub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfileRequest() *dto.CreateSmeProfileRequest {
	return &dto.CreateSmeProfileRequest{
		BusinessName:     "Thandi's Bakery",
		OwnerName:        "Thandi Nkosi",
		Phone:            "+27 82 000 0000",
		Email:            "thandi@bakery.za",
		Location:         "Soweto",
		Industry:         "Food",
		ProductsServices: "Bread, cakes, catering",
		PopiaConsent:     true,
	}
}

func TestCreateProfile(t *testing.T) {
	t.Parallel()
	svc := NewProfileService(newFakeProfileRepo())

	profile, err := svc.Create("user-1", validProfileRequest())
	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.UserID)
	assert.Equal(t, models.SubscriptionStatusInactive, profile.SubscriptionStatus)
	assert.True(t, profile.PopiaConsent)
}

func TestCreateProfileWithoutConsent(t *testing.T) {
	t.Parallel()
	svc := NewProfileService(newFakeProfileRepo())

	req := validProfileRequest()
	req.PopiaConsent = false
	_, err := svc.Create("user-1", req)
	assert.ErrorIs(t, err, apperrors.ErrConsentRequired)
}

func TestCreateProfileDuplicate(t *testing.T) {
	t.Parallel()
	svc := NewProfileService(newFakeProfileRepo())

	_, err := svc.Create("user-1", validProfileRequest())
	require.NoError(t, err)

	_, err = svc.Create("user-1", validProfileRequest())
	assert.ErrorIs(t, err, apperrors.ErrProfileAlreadyExists)
}

func TestGetProfileNotFound(t *testing.T) {
	t.Parallel()
	svc := NewProfileService(newFakeProfileRepo())

	_, err := svc.GetByUserID("user-1")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestUpdateProfilePartial(t *testing.T) {
	t.Parallel()
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	_, err := svc.Create("user-1", validProfileRequest())
	require.NoError(t, err)

	name := "Thandi's Bakery & Catering"
	updated, err := svc.Update("user-1", &dto.UpdateSmeProfileRequest{BusinessName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.BusinessName)
	assert.Equal(t, "Soweto", updated.Location)

	// An empty patch returns the current profile unchanged.
	same, err := svc.Update("user-1", &dto.UpdateSmeProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, name, same.BusinessName)
}
