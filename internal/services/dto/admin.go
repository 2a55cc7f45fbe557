package dto

import (
	"monprof_backend/internal/models"
)

// AdminDashboardResponse feeds the back-office landing page.
type AdminDashboardResponse struct {
	Stats          AdminStats         `json:"stats"`
	RecentUsers    []UserDTO          `json:"recent_users"`
	RecentRequests []CourseRequestDTO `json:"recent_requests"`
	PendingTutors  []TutorProfileDTO  `json:"pending_tutors"`
}

type AdminStats struct {
	ParentCount     int64 `json:"parent_count"`
	TutorCount      int64 `json:"tutor_count"`
	ValidatedTutors int64 `json:"validated_tutors"`
	PendingTutors   int64 `json:"pending_tutors"`
	ActiveRequests  int64 `json:"active_requests"`
	TotalUnlocks    int64 `json:"total_unlocks"`
	PublishedPosts  int64 `json:"published_posts"`
}

const (
	ModerationActionValidate = "validate"
	ModerationActionReject   = "reject"
)

type ModerateTutorRequest struct {
	Action string `json:"action" binding:"required,oneof=validate reject"`
	// Note is mandatory on rejection; the service enforces it so the
	// error is a domain message, not a binding failure.
	Note string `json:"note"`
}

type CreateAdminRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
}

type AdminUserListResponse struct {
	Users []UserDTO `json:"users"`
	Total int64     `json:"total"`
}

type CreateCountryRequest struct {
	Name           string `json:"name" binding:"required"`
	Code           string `json:"code" binding:"required,min=2,max=5"`
	CurrencySymbol string `json:"currency_symbol"`
}

type UpdateCountryRequest struct {
	Name               string             `json:"name"`
	IsActive           *bool              `json:"is_active"`
	CurrencySymbol     string             `json:"currency_symbol"`
	SubscriptionPrice  *int64             `json:"subscription_price"`
	ContactPrices      map[string]int64   `json:"contact_prices"`
	MinBudgetThreshold models.BudgetRange `json:"min_budget_threshold" binding:"omitempty,is-budget-range"`
	CasierDelayWeeks   *int               `json:"casier_delay_weeks"`
	ReminderDayOffsets []int              `json:"reminder_day_offsets"`
}

type CountryDTO struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Code               string             `json:"code"`
	CurrencySymbol     string             `json:"currency_symbol,omitempty"`
	IsActive           bool               `json:"is_active"`
	SubscriptionPrice  int64              `json:"subscription_price"`
	ContactPrices      map[string]int64   `json:"contact_prices,omitempty"`
	MinBudgetThreshold models.BudgetRange `json:"min_budget_threshold,omitempty"`
	CasierDelayWeeks   int                `json:"casier_delay_weeks"`
	ReminderDayOffsets []int              `json:"reminder_day_offsets,omitempty"`
}

func NewCountryDTO(country *models.Country) CountryDTO {
	return CountryDTO{
		ID:                 country.ID,
		Name:               country.Name,
		Code:               country.Code,
		CurrencySymbol:     country.CurrencySymbol,
		IsActive:           country.IsActive,
		SubscriptionPrice:  country.SubscriptionPrice,
		ContactPrices:      country.GetContactPrices(),
		MinBudgetThreshold: country.MinBudgetThreshold,
		CasierDelayWeeks:   country.CasierDelayWeeks,
		ReminderDayOffsets: country.GetReminderDayOffsets(),
	}
}
