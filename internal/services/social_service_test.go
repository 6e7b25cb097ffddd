package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"smmehub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSocialRequiresProfile(t *testing.T) {
	t.Parallel()
	svc := NewSocialService(&fakeSocialRepo{}, newFakeProfileRepo(), nil)

	_, err := svc.Generate(context.Background(), "user-1", "")
	assert.ErrorIs(t, err, apperrors.ErrProfileRequired)
}

func TestGenerateSocialFallback(t *testing.T) {
	t.Parallel()
	profileRepo := newFakeProfileRepo()
	seedProfile(profileRepo, "user-1")
	socialRepo := &fakeSocialRepo{}
	provider := &fakeProvider{err: errors.New("upstream unavailable")}
	svc := NewSocialService(socialRepo, profileRepo, provider)

	posts, err := svc.Generate(context.Background(), "user-1", "winter specials")
	require.NoError(t, err, "provider failure must not surface to the caller")
	require.Len(t, posts, 3)

	platforms := []string{posts[0].Platform, posts[1].Platform, posts[2].Platform}
	assert.ElementsMatch(t, []string{"Facebook", "Instagram", "LinkedIn"}, platforms)
	for _, p := range posts {
		assert.Contains(t, p.Content, "Thandi's Bakery")
		assert.Contains(t, p.Content, "winter specials")
	}
	assert.Len(t, socialRepo.posts, 3, "fallback posts must be persisted")
}

func TestGenerateSocialUsesProviderPayload(t *testing.T) {
	t.Parallel()
	profileRepo := newFakeProfileRepo()
	seedProfile(profileRepo, "user-1")
	provider := &fakeProvider{payload: json.RawMessage(`{
		"posts": [
			{"platform": "Facebook", "content": "FB post"},
			{"platform": "Instagram", "content": "IG post"},
			{"platform": "LinkedIn", "content": "LI post"}
		]
	}`)}
	svc := NewSocialService(&fakeSocialRepo{}, profileRepo, provider)

	posts, err := svc.Generate(context.Background(), "user-1", "")
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "FB post", posts[0].Content)
}

func TestGenerateSocialRejectsMalformedPayload(t *testing.T) {
	t.Parallel()
	profileRepo := newFakeProfileRepo()
	seedProfile(profileRepo, "user-1")
	provider := &fakeProvider{payload: json.RawMessage(`{"posts": [{"platform": "", "content": ""}]}`)}
	svc := NewSocialService(&fakeSocialRepo{}, profileRepo, provider)

	posts, err := svc.Generate(context.Background(), "user-1", "")
	require.NoError(t, err)
	require.Len(t, posts, 3, "malformed payload falls back to the local template")
	for _, p := range posts {
		assert.NotEmpty(t, p.Content)
	}
}

func TestListSocialPostsScopedToProfile(t *testing.T) {
	t.Parallel()
	profileRepo := newFakeProfileRepo()
	seedProfile(profileRepo, "user-1")
	seedProfile(profileRepo, "user-2")
	socialRepo := &fakeSocialRepo{}
	svc := NewSocialService(socialRepo, profileRepo, nil)

	_, err := svc.Generate(context.Background(), "user-1", "")
	require.NoError(t, err)
	_, err = svc.Generate(context.Background(), "user-2", "")
	require.NoError(t, err)

	posts, err := svc.List("user-1")
	require.NoError(t, err)
	assert.Len(t, posts, 3)
}
