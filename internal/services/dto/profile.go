package dto

import (
	"time"

	"monprof_backend/internal/models"
)

// UpdateDashboardRequest updates the account plus the role profile in
// one call, matching the single dashboard form.
type UpdateDashboardRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`

	Tutor  *TutorProfileInput  `json:"tutor,omitempty"`
	Parent *ParentProfileInput `json:"parent,omitempty"`
}

type TutorProfileInput struct {
	Bio           string   `json:"bio"`
	CityID        string   `json:"city_id"`
	Quartier      string   `json:"quartier"`
	Subjects      []string `json:"subjects"`
	Levels        []string `json:"levels"`
	IsOnlineClass bool     `json:"is_online_class"`
	IsHomeClass   bool     `json:"is_home_class"`
	HourlyRate    float64  `json:"hourly_rate" binding:"min=0"`
}

type ParentProfileInput struct {
	Address string `json:"address"`
}

// DashboardResponse branches on role: tutors see their profile and its
// moderation state, parents see their profile and their requests.
type DashboardResponse struct {
	User           UserDTO             `json:"user"`
	TutorProfile   *TutorProfileDTO    `json:"tutor_profile,omitempty"`
	ParentProfile  *ParentProfileDTO   `json:"parent_profile,omitempty"`
	Requests       []CourseRequestDTO  `json:"requests,omitempty"`
	UnreadMessages int64               `json:"unread_messages"`
}

// TutorProfileDTO is the owner's view, moderation state included.
type TutorProfileDTO struct {
	ID                string             `json:"id"`
	Bio               string             `json:"bio"`
	PhotoURL          string             `json:"photo_url,omitempty"`
	IdentityDocURL    string             `json:"identity_doc_url,omitempty"`
	CriminalRecordURL string             `json:"criminal_record_url,omitempty"`
	DiplomasURL       string             `json:"diplomas_url,omitempty"`
	CityID            *string            `json:"city_id,omitempty"`
	CityName          string             `json:"city_name,omitempty"`
	Quartier          string             `json:"quartier,omitempty"`
	Subjects          []string           `json:"subjects"`
	Levels            []string           `json:"levels"`
	IsOnlineClass     bool               `json:"is_online_class"`
	IsHomeClass       bool               `json:"is_home_class"`
	HourlyRate        float64            `json:"hourly_rate"`
	Status            models.TutorStatus `json:"status"`
	AdminNotes        string             `json:"admin_notes,omitempty"`
	ValidatedAt       *time.Time         `json:"validated_at,omitempty"`
}

type ParentProfileDTO struct {
	ID              string `json:"id"`
	Address         string `json:"address,omitempty"`
	IsPhoneVerified bool   `json:"is_phone_verified"`
}

// TutorCardDTO is one row of the public directory. No contact details.
type TutorCardDTO struct {
	ID            string   `json:"id"`
	FirstName     string   `json:"first_name"`
	Bio           string   `json:"bio"`
	PhotoURL      string   `json:"photo_url,omitempty"`
	CityName      string   `json:"city_name,omitempty"`
	Quartier      string   `json:"quartier,omitempty"`
	Subjects      []string `json:"subjects"`
	Levels        []string `json:"levels"`
	IsOnlineClass bool     `json:"is_online_class"`
	IsHomeClass   bool     `json:"is_home_class"`
	HourlyRate    float64  `json:"hourly_rate"`
	AverageRating float64  `json:"average_rating"`
	ReviewCount   int64    `json:"review_count"`
}

// TutorDetailDTO is the public detail page. Contact fields hold masked
// placeholders until the viewer unlocks them.
type TutorDetailDTO struct {
	TutorCardDTO
	LastName    string      `json:"last_name,omitempty"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	IsUnlocked  bool        `json:"is_unlocked"`
	Reviews     []ReviewDTO `json:"reviews"`
	UserID      string      `json:"user_id,omitempty"`
}

func NewTutorProfileDTO(profile *models.TutorProfile) *TutorProfileDTO {
	dto := &TutorProfileDTO{
		ID:                profile.ID,
		Bio:               profile.Bio,
		PhotoURL:          profile.PhotoURL,
		IdentityDocURL:    profile.IdentityDocURL,
		CriminalRecordURL: profile.CriminalRecordURL,
		DiplomasURL:       profile.DiplomasURL,
		CityID:            profile.CityID,
		Quartier:          profile.Quartier,
		Subjects:          profile.Subjects,
		Levels:            profile.Levels,
		IsOnlineClass:     profile.IsOnlineClass,
		IsHomeClass:       profile.IsHomeClass,
		HourlyRate:        profile.HourlyRate,
		Status:            profile.Status,
		AdminNotes:        profile.AdminNotes,
		ValidatedAt:       profile.ValidatedAt,
	}
	if profile.City != nil {
		dto.CityName = profile.City.Name
	}
	return dto
}

func NewParentProfileDTO(profile *models.ParentProfile) *ParentProfileDTO {
	return &ParentProfileDTO{
		ID:              profile.ID,
		Address:         profile.Address,
		IsPhoneVerified: profile.IsPhoneVerified,
	}
}
