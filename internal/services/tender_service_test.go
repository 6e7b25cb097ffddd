package services

import (
	"testing"

	"smmehub_backend/internal/models"
	"smmehub_backend/internal/services/dto"
	"smmehub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTenderFixture() (*fakeTenderRepo, *fakeBidRepo, *fakeProfileRepo, TenderService) {
	tenderRepo := newFakeTenderRepo()
	bidRepo := newFakeBidRepo()
	profileRepo := newFakeProfileRepo()
	return tenderRepo, bidRepo, profileRepo, NewTenderService(tenderRepo, bidRepo, profileRepo)
}

func createOpenTender(t *testing.T, svc TenderService) *models.Tender {
	t.Helper()
	tender, err := svc.Create("admin-1", &dto.CreateTenderRequest{
		Title:       "Catering",
		Description: "Catering for a three day workshop in Pretoria.",
	})
	require.NoError(t, err)
	require.Equal(t, models.TenderStatusOpen, tender.Status)
	return tender
}

func TestSubmitBidRequiresProfile(t *testing.T) {
	t.Parallel()
	_, _, _, svc := newTenderFixture()
	tender := createOpenTender(t, svc)

	_, err := svc.SubmitBid("user-1", tender.ID, &dto.SubmitBidRequest{
		Proposal: "We can cater this event with a full staff of ten.",
	})
	assert.ErrorIs(t, err, apperrors.ErrProfileRequired)
}

func TestSubmitBidOnClosedTender(t *testing.T) {
	t.Parallel()
	_, _, profileRepo, svc := newTenderFixture()
	seedProfile(profileRepo, "user-1")
	tender := createOpenTender(t, svc)

	closed := "closed"
	_, err := svc.Update(tender.ID, &dto.UpdateTenderRequest{Status: &closed})
	require.NoError(t, err)

	_, err = svc.SubmitBid("user-1", tender.ID, &dto.SubmitBidRequest{
		Proposal: "We can cater this event with a full staff of ten.",
	})
	assert.ErrorIs(t, err, apperrors.ErrTenderNotOpen)
}

func TestSubmitBidUpsertResetsStatus(t *testing.T) {
	t.Parallel()
	_, bidRepo, profileRepo, svc := newTenderFixture()
	profile := seedProfile(profileRepo, "user-1")
	tender := createOpenTender(t, svc)

	first, err := svc.SubmitBid("user-1", tender.ID, &dto.SubmitBidRequest{
		Proposal: "First proposal with enough characters in it.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BidStatusSubmitted, first.Status)

	// Admin shortlists, bidder resubmits: status resets to submitted.
	_, err = svc.UpdateBidStatus(first.ID, models.BidStatusShortlisted)
	require.NoError(t, err)

	amount := int64(250000)
	second, err := svc.SubmitBid("user-1", tender.ID, &dto.SubmitBidRequest{
		Proposal:    "Second proposal with enough characters in it.",
		AmountCents: &amount,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "resubmission must update the same row")
	assert.Equal(t, models.BidStatusSubmitted, second.Status)
	assert.Equal(t, "Second proposal with enough characters in it.", second.Proposal)

	bids, err := bidRepo.ListByTenderWithProfiles(tender.ID)
	require.NoError(t, err)
	assert.Len(t, bids, 1)
	assert.Equal(t, profile.ID, bids[0].Bid.BidderProfileID)
}

func TestGetMyBid(t *testing.T) {
	t.Parallel()
	_, _, profileRepo, svc := newTenderFixture()
	seedProfile(profileRepo, "user-1")
	tender := createOpenTender(t, svc)

	_, err := svc.GetMyBid("user-1", tender.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	submitted, err := svc.SubmitBid("user-1", tender.ID, &dto.SubmitBidRequest{
		Proposal: "A proposal with enough characters in it.",
	})
	require.NoError(t, err)

	mine, err := svc.GetMyBid("user-1", tender.ID)
	require.NoError(t, err)
	assert.Equal(t, submitted.ID, mine.ID)
}

func TestUpdateTenderTerminalStatus(t *testing.T) {
	t.Parallel()
	_, _, _, svc := newTenderFixture()
	tender := createOpenTender(t, svc)

	closed := "closed"
	updated, err := svc.Update(tender.ID, &dto.UpdateTenderRequest{Status: &closed})
	require.NoError(t, err)
	assert.Equal(t, models.TenderStatusClosed, updated.Status)

	// Terminal statuses cannot change again.
	awarded := "awarded"
	_, err = svc.Update(tender.ID, &dto.UpdateTenderRequest{Status: &awarded})
	assert.ErrorIs(t, err, apperrors.ErrTenderStatusFinal)

	// Repeating the current status is a no-op, not an error.
	_, err = svc.Update(tender.ID, &dto.UpdateTenderRequest{Status: &closed})
	assert.NoError(t, err)
}

func TestUpdateTenderPartialPatch(t *testing.T) {
	t.Parallel()
	_, _, _, svc := newTenderFixture()
	tender := createOpenTender(t, svc)

	title := "Catering (extended)"
	budget := int64(5000000)
	updated, err := svc.Update(tender.ID, &dto.UpdateTenderRequest{
		Title:       &title,
		BudgetCents: &budget,
	})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	require.NotNil(t, updated.BudgetCents)
	assert.EqualValues(t, budget, *updated.BudgetCents)
	assert.Equal(t, tender.Description, updated.Description)
	assert.Equal(t, models.TenderStatusOpen, updated.Status)
}

func TestUpdateBidStatusNotFound(t *testing.T) {
	t.Parallel()
	_, _, _, svc := newTenderFixture()

	_, err := svc.UpdateBidStatus("missing", models.BidStatusAccepted)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
