package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"smmehub_backend/internal/ai"
	"smmehub_backend/internal/logger"
	"smmehub_backend/internal/models"
	"smmehub_backend/internal/repositories"
	"smmehub_backend/internal/services/dto"
	"smmehub_backend/pkg/apperrors"
)

type SocialService interface {
	Generate(ctx context.Context, userID, topic string) ([]models.SocialPost, error)
	List(userID string) ([]models.SocialPost, error)
}

type SocialServiceImpl struct {
	socialRepo  repositories.SocialPostRepository
	profileRepo repositories.ProfileRepository
	provider    ai.Provider
}

func NewSocialService(
	socialRepo repositories.SocialPostRepository,
	profileRepo repositories.ProfileRepository,
	provider ai.Provider,
) SocialService {
	return &SocialServiceImpl{
		socialRepo:  socialRepo,
		profileRepo: profileRepo,
		provider:    provider,
	}
}

func (s *SocialServiceImpl) Generate(ctx context.Context, userID, topic string) ([]models.SocialPost, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileRequired
		}
		return nil, apperrors.InternalError(err)
	}

	contents := s.generatePosts(ctx, profile, topic)

	posts := make([]models.SocialPost, 0, len(contents))
	for _, c := range contents {
		posts = append(posts, models.SocialPost{
			ProfileID: profile.ID,
			Platform:  c.Platform,
			Content:   c.Content,
		})
	}
	if err := s.socialRepo.CreateBatch(posts); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return posts, nil
}

func (s *SocialServiceImpl) List(userID string) ([]models.SocialPost, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileRequired
		}
		return nil, apperrors.InternalError(err)
	}

	posts, err := s.socialRepo.ListByProfile(profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return posts, nil
}

func (s *SocialServiceImpl) generatePosts(ctx context.Context, profile *models.SmeProfile, topic string) []dto.SocialPostContent {
	if s.provider != nil {
		raw, err := s.provider.GenerateJSON(ctx, socialPrompt(profile, topic))
		if err == nil {
			if posts, ok := parseSocialPayload(raw); ok {
				return posts
			}
			logger.CtxWarn(ctx, "social generation returned unusable payload, using fallback")
		} else {
			logger.CtxWarn(ctx, "social generation failed, using fallback", "error", err)
		}
	}
	return fallbackSocialPosts(profile, topic)
}

func socialPrompt(profile *models.SmeProfile, topic string) string {
	var b strings.Builder
	b.WriteString("Write one short social media post per platform for a small South African business. ")
	fmt.Fprintf(&b, "Platforms: %s. ", strings.Join(models.SocialPlatforms, ", "))
	b.WriteString("Respond with a JSON object {\"posts\": [{\"platform\": ..., \"content\": ...}]}.\n")
	fmt.Fprintf(&b, "Business name: %s\n", profile.BusinessName)
	fmt.Fprintf(&b, "Industry: %s\n", profile.Industry)
	fmt.Fprintf(&b, "Location: %s\n", profile.Location)
	fmt.Fprintf(&b, "Products and services: %s\n", profile.ProductsServices)
	if topic != "" {
		fmt.Fprintf(&b, "Topic: %s\n", topic)
	}
	return b.String()
}

func parseSocialPayload(raw json.RawMessage) ([]dto.SocialPostContent, bool) {
	var payload struct {
		Posts []dto.SocialPostContent `json:"posts"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Posts) == 0 {
		return nil, false
	}
	for _, p := range payload.Posts {
		if p.Platform == "" || p.Content == "" {
			return nil, false
		}
	}
	return payload.Posts, true
}

func fallbackSocialPosts(profile *models.SmeProfile, topic string) []dto.SocialPostContent {
	subject := topic
	if subject == "" {
		subject = profile.ProductsServices
	}
	posts := make([]dto.SocialPostContent, 0, len(models.SocialPlatforms))
	for _, platform := range models.SocialPlatforms {
		posts = append(posts, dto.SocialPostContent{
			Platform: platform,
			Content: fmt.Sprintf("%s in %s brings you %s. Get in touch on %s to learn more!",
				profile.BusinessName, profile.Location, subject, platform),
		})
	}
	return posts
}
