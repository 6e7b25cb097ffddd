package services

// ServiceContainer bundles every service for handler wiring.
type ServiceContainer struct {
	AuthService      AuthService
	ProfileService   ProfileService
	VoucherService   VoucherService
	TenderService    TenderService
	WebsiteService   WebsiteService
	SocialService    SocialService
	InvoiceService   InvoiceService
	AnalyticsService AnalyticsService
}
