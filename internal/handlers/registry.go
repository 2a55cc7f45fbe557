package handlers

// AppHandlers holds all HTTP handlers.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	DashboardHandler *DashboardHandler
	TutorHandler     *TutorHandler
	RequestHandler   *RequestHandler
	BillingHandler   *BillingHandler
	MessagingHandler *MessagingHandler
	BlogHandler      *BlogHandler
	AdminHandler     *AdminHandler
	CatalogHandler   *CatalogHandler
	FileHandler      *FileHandler
}
