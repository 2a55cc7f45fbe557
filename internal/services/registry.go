package services

import (
	"monprof_backend/internal/email"
	"monprof_backend/internal/storage"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	AuthService       AuthService
	ProfileService    ProfileService
	ModerationService ModerationService
	RequestService    RequestService
	BillingService    BillingService
	ReviewService     ReviewService
	MessagingService  MessagingService
	BlogService       BlogService
	AdminService      AdminService
	EmailProvider     email.Provider
	Storage           storage.Storage
}
