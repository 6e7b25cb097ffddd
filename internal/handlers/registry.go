package handlers

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	ProfileHandler   *ProfileHandler
	VoucherHandler   *VoucherHandler
	TenderHandler    *TenderHandler
	WebsiteHandler   *WebsiteHandler
	SocialHandler    *SocialHandler
	InvoiceHandler   *InvoiceHandler
	AnalyticsHandler *AnalyticsHandler
}
