package dto

type CreateSmeProfileRequest struct {
	BusinessName     string `json:"businessName" validate:"required,min=2,max=200"`
	OwnerName        string `json:"ownerName" validate:"required,min=2,max=200"`
	Phone            string `json:"phone" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Location         string `json:"location" validate:"required"`
	Industry         string `json:"industry" validate:"required"`
	ProductsServices string `json:"productsServices" validate:"required"`
	// Consent must be affirmatively given; a false value fails validation.
	PopiaConsent bool `json:"popiaConsent" validate:"required"`
}

type UpdateSmeProfileRequest struct {
	BusinessName     *string `json:"businessName,omitempty" validate:"omitempty,min=2,max=200"`
	OwnerName        *string `json:"ownerName,omitempty" validate:"omitempty,min=2,max=200"`
	Phone            *string `json:"phone,omitempty"`
	Email            *string `json:"email,omitempty" validate:"omitempty,email"`
	Location         *string `json:"location,omitempty"`
	Industry         *string `json:"industry,omitempty"`
	ProductsServices *string `json:"productsServices,omitempty"`
}
