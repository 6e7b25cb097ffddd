package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/datatypes"

	"smmehub_backend/internal/ai"
	"smmehub_backend/internal/logger"
	"smmehub_backend/internal/models"
	"smmehub_backend/internal/repositories"
	"smmehub_backend/internal/services/dto"
	"smmehub_backend/pkg/apperrors"
)

// PublishedSite is the public view of a published website.
type PublishedSite struct {
	Slug         string             `json:"slug"`
	BusinessName string             `json:"businessName"`
	Location     string             `json:"location"`
	Industry     string             `json:"industry"`
	Phone        string             `json:"phone"`
	Email        string             `json:"email"`
	Content      dto.WebsiteContent `json:"content"`
}

type WebsiteService interface {
	Generate(ctx context.Context, userID, style string) (*models.WebsiteDraft, error)
	Get(userID string) (*models.WebsiteDraft, error)
	Publish(userID, slug string) (*models.WebsiteDraft, error)
	GetPublished(slug string) (*PublishedSite, error)
}

type WebsiteServiceImpl struct {
	websiteRepo repositories.WebsiteRepository
	profileRepo repositories.ProfileRepository
	provider    ai.Provider
}

func NewWebsiteService(
	websiteRepo repositories.WebsiteRepository,
	profileRepo repositories.ProfileRepository,
	provider ai.Provider,
) WebsiteService {
	return &WebsiteServiceImpl{
		websiteRepo: websiteRepo,
		profileRepo: profileRepo,
		provider:    provider,
	}
}

func (s *WebsiteServiceImpl) Generate(ctx context.Context, userID, style string) (*models.WebsiteDraft, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileRequired
		}
		return nil, apperrors.InternalError(err)
	}

	content := s.generateContent(ctx, profile, style)
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	draft := &models.WebsiteDraft{
		ProfileID: profile.ID,
		Content:   datatypes.JSON(raw),
	}
	if err := s.websiteRepo.UpsertDraft(draft); err != nil {
		return nil, apperrors.InternalError(err)
	}

	stored, err := s.websiteRepo.FindByProfileID(profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stored, nil
}

func (s *WebsiteServiceImpl) Get(userID string) (*models.WebsiteDraft, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileRequired
		}
		return nil, apperrors.InternalError(err)
	}

	draft, err := s.websiteRepo.FindByProfileID(profile.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrWebsiteNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return draft, nil
}

func (s *WebsiteServiceImpl) Publish(userID, slug string) (*models.WebsiteDraft, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileRequired
		}
		return nil, apperrors.InternalError(err)
	}

	draft, err := s.websiteRepo.Publish(profile.ID, slug)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrWebsiteNotFound):
			return nil, apperrors.ErrInvalidOperation("website", "Generate a website before publishing")
		case errors.Is(err, repositories.ErrSlugAlreadyTaken):
			return nil, apperrors.ErrConflict(err, "website", "Slug already taken")
		default:
			return nil, apperrors.InternalError(err)
		}
	}
	return draft, nil
}

func (s *WebsiteServiceImpl) GetPublished(slug string) (*PublishedSite, error) {
	draft, err := s.websiteRepo.FindPublishedBySlug(slug)
	if err != nil {
		if errors.Is(err, repositories.ErrWebsiteNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	profile, err := s.profileRepo.FindByID(draft.ProfileID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var content dto.WebsiteContent
	if err := json.Unmarshal(draft.Content, &content); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &PublishedSite{
		Slug:         slug,
		BusinessName: profile.BusinessName,
		Location:     profile.Location,
		Industry:     profile.Industry,
		Phone:        profile.Phone,
		Email:        profile.Email,
		Content:      content,
	}, nil
}

// generateContent asks the provider for site copy and falls back to a
// deterministic template when the provider is unavailable or returns
// malformed output. Generation must never fail the request.
func (s *WebsiteServiceImpl) generateContent(ctx context.Context, profile *models.SmeProfile, style string) dto.WebsiteContent {
	if s.provider != nil {
		raw, err := s.provider.GenerateJSON(ctx, websitePrompt(profile, style))
		if err == nil {
			var content dto.WebsiteContent
			if jsonErr := json.Unmarshal(raw, &content); jsonErr == nil && content.Headline != "" {
				return content
			}
			logger.CtxWarn(ctx, "website generation returned unusable payload, using fallback")
		} else {
			logger.CtxWarn(ctx, "website generation failed, using fallback", "error", err)
		}
	}
	return fallbackWebsiteContent(profile)
}

func websitePrompt(profile *models.SmeProfile, style string) string {
	var b strings.Builder
	b.WriteString("Write website copy for a small South African business. ")
	b.WriteString("Respond with a JSON object with keys: headline, tagline, about, services (array of strings), callToAction, contactText.\n")
	fmt.Fprintf(&b, "Business name: %s\n", profile.BusinessName)
	fmt.Fprintf(&b, "Industry: %s\n", profile.Industry)
	fmt.Fprintf(&b, "Location: %s\n", profile.Location)
	fmt.Fprintf(&b, "Products and services: %s\n", profile.ProductsServices)
	if style != "" {
		fmt.Fprintf(&b, "Tone and style: %s\n", style)
	}
	return b.String()
}

func fallbackWebsiteContent(profile *models.SmeProfile) dto.WebsiteContent {
	services := splitServices(profile.ProductsServices)
	return dto.WebsiteContent{
		Headline:     fmt.Sprintf("Welcome to %s", profile.BusinessName),
		Tagline:      fmt.Sprintf("Proudly serving %s", profile.Location),
		About:        fmt.Sprintf("%s is a %s business based in %s, run by %s.", profile.BusinessName, profile.Industry, profile.Location, profile.OwnerName),
		Services:     services,
		CallToAction: fmt.Sprintf("Contact %s today to find out more.", profile.BusinessName),
		ContactText:  fmt.Sprintf("Call %s or email %s.", profile.Phone, profile.Email),
	}
}

func splitServices(productsServices string) []string {
	parts := strings.Split(productsServices, ",")
	services := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			services = append(services, trimmed)
		}
	}
	if len(services) == 0 {
		services = []string{productsServices}
	}
	return services
}
