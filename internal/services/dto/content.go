package dto

type GenerateWebsiteRequest struct {
	Style string `json:"style,omitempty" validate:"omitempty,max=100"`
}

type PublishWebsiteRequest struct {
	Slug string `json:"slug" validate:"required,min=3,max=60,slug"`
}

type GenerateSocialPostsRequest struct {
	Topic string `json:"topic,omitempty" validate:"omitempty,max=200"`
}

// WebsiteContent is the generated site payload stored as the draft body.
type WebsiteContent struct {
	Headline     string   `json:"headline"`
	Tagline      string   `json:"tagline"`
	About        string   `json:"about"`
	Services     []string `json:"services"`
	CallToAction string   `json:"callToAction"`
	ContactText  string   `json:"contactText"`
}

// SocialPostContent is a single generated post before persistence.
type SocialPostContent struct {
	Platform string `json:"platform"`
	Content  string `json:"content"`
}
