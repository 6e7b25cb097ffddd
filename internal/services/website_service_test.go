package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"smmehub_backend/internal/services/dto"
	"smmehub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWebsiteFixture(provider *fakeProvider) (*fakeWebsiteRepo, *fakeProfileRepo, WebsiteService) {
	websiteRepo := newFakeWebsiteRepo()
	profileRepo := newFakeProfileRepo()
	var svc WebsiteService
	if provider != nil {
		svc = NewWebsiteService(websiteRepo, profileRepo, provider)
	} else {
		svc = NewWebsiteService(websiteRepo, profileRepo, nil)
	}
	return websiteRepo, profileRepo, svc
}

func TestGenerateWebsiteRequiresProfile(t *testing.T) {
	t.Parallel()
	_, _, svc := newWebsiteFixture(nil)

	_, err := svc.Generate(context.Background(), "user-1", "")
	assert.ErrorIs(t, err, apperrors.ErrProfileRequired)
}

func TestGenerateWebsiteFallbackWithoutProvider(t *testing.T) {
	t.Parallel()
	_, profileRepo, svc := newWebsiteFixture(nil)
	seedProfile(profileRepo, "user-1")

	draft, err := svc.Generate(context.Background(), "user-1", "")
	require.NoError(t, err)

	var content dto.WebsiteContent
	require.NoError(t, json.Unmarshal(draft.Content, &content))
	assert.Contains(t, content.Headline, "Thandi's Bakery")
	assert.Contains(t, content.About, "Food")
	assert.Contains(t, content.About, "Soweto")
	assert.Equal(t, []string{"Bread", "cakes", "catering"}, content.Services)
}

func TestGenerateWebsiteFallbackOnProviderError(t *testing.T) {
	t.Parallel()
	provider := &fakeProvider{err: errors.New("upstream unavailable")}
	_, profileRepo, svc := newWebsiteFixture(provider)
	seedProfile(profileRepo, "user-1")

	draft, err := svc.Generate(context.Background(), "user-1", "playful")
	require.NoError(t, err, "provider failure must not surface to the caller")
	assert.Equal(t, 1, provider.calls)

	var content dto.WebsiteContent
	require.NoError(t, json.Unmarshal(draft.Content, &content))
	assert.Contains(t, content.Headline, "Thandi's Bakery")
}

func TestGenerateWebsiteUsesProviderPayload(t *testing.T) {
	t.Parallel()
	provider := &fakeProvider{payload: json.RawMessage(`{
		"headline": "Fresh bread daily",
		"tagline": "Baked in Soweto",
		"about": "About text",
		"services": ["Bread"],
		"callToAction": "Order now",
		"contactText": "Call us"
	}`)}
	_, profileRepo, svc := newWebsiteFixture(provider)
	seedProfile(profileRepo, "user-1")

	draft, err := svc.Generate(context.Background(), "user-1", "")
	require.NoError(t, err)

	var content dto.WebsiteContent
	require.NoError(t, json.Unmarshal(draft.Content, &content))
	assert.Equal(t, "Fresh bread daily", content.Headline)
}

func TestGenerateWebsiteUpserts(t *testing.T) {
	t.Parallel()
	websiteRepo, profileRepo, svc := newWebsiteFixture(nil)
	profile := seedProfile(profileRepo, "user-1")

	_, err := svc.Generate(context.Background(), "user-1", "")
	require.NoError(t, err)
	_, err = svc.Generate(context.Background(), "user-1", "")
	require.NoError(t, err)

	assert.Len(t, websiteRepo.drafts, 1)
	_, ok := websiteRepo.drafts[profile.ID]
	assert.True(t, ok)
}

func TestPublishWebsite(t *testing.T) {
	t.Parallel()
	_, profileRepo, svc := newWebsiteFixture(nil)
	seedProfile(profileRepo, "user-1")

	// Publishing before generating fails.
	_, err := svc.Publish("user-1", "thandis-bakery")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)

	_, err = svc.Generate(context.Background(), "user-1", "")
	require.NoError(t, err)

	draft, err := svc.Publish("user-1", "thandis-bakery")
	require.NoError(t, err)
	assert.True(t, draft.IsPublished)
	require.NotNil(t, draft.Slug)
	assert.Equal(t, "thandis-bakery", *draft.Slug)

	site, err := svc.GetPublished("thandis-bakery")
	require.NoError(t, err)
	assert.Equal(t, "Thandi's Bakery", site.BusinessName)
	assert.Equal(t, "thandis-bakery", site.Slug)
}

func TestPublishSlugConflict(t *testing.T) {
	t.Parallel()
	_, profileRepo, svc := newWebsiteFixture(nil)
	seedProfile(profileRepo, "user-1")
	seedProfile(profileRepo, "user-2")

	_, err := svc.Generate(context.Background(), "user-1", "")
	require.NoError(t, err)
	_, err = svc.Generate(context.Background(), "user-2", "")
	require.NoError(t, err)

	_, err = svc.Publish("user-1", "bakery")
	require.NoError(t, err)

	_, err = svc.Publish("user-2", "bakery")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
}

func TestGetPublishedUnknownSlug(t *testing.T) {
	t.Parallel()
	_, _, svc := newWebsiteFixture(nil)

	_, err := svc.GetPublished("nothing-here")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
