package models

import (
	"time"

	"github.com/lib/pq"
)

// TutorProfile is the tutor's public card plus the verification documents
// reviewed during moderation. One per tutor user.
type TutorProfile struct {
	BaseModel
	UserID   string `gorm:"type:uuid;uniqueIndex;not null"`
	Bio      string `gorm:"type:text"`
	PhotoURL string

	// Verification documents, restricted area (owner and staff only)
	IdentityDocURL    string
	CriminalRecordURL string
	DiplomasURL       string

	CityID   *string `gorm:"type:uuid;index"`
	Quartier string

	Subjects pq.StringArray `gorm:"type:text[]" json:"subjects"`
	Levels   pq.StringArray `gorm:"type:text[]" json:"levels"`

	IsOnlineClass bool `gorm:"default:false"`
	IsHomeClass   bool `gorm:"default:true"`

	HourlyRate float64

	Status TutorStatus `gorm:"type:varchar(20);default:'draft';index"`
	// AdminNotes holds the moderation note; required on rejection so the
	// tutor knows what to fix.
	AdminNotes  string `gorm:"type:text"`
	ValidatedAt *time.Time

	// Relations
	User    *User    `gorm:"foreignKey:UserID"`
	City    *City    `gorm:"foreignKey:CityID"`
	Reviews []Review `gorm:"foreignKey:TutorProfileID"`
}

// IsVisible reports whether the profile appears in the public directory.
// Only validated profiles are ever listed or fetchable publicly.
func (p *TutorProfile) IsVisible() bool {
	return p.Status == TutorStatusValidated
}

// ParentProfile carries the parent-side extras. One per parent user.
type ParentProfile struct {
	BaseModel
	UserID          string `gorm:"type:uuid;uniqueIndex;not null"`
	Address         string
	IsPhoneVerified bool `gorm:"default:false"`

	User *User `gorm:"foreignKey:UserID"`
}
