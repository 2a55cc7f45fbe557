package models

import (
	"github.com/lib/pq"
)

// CourseRequest is a parent's published lead: what they need, where,
// and the budget/timing signals the qualification engine scores.
type CourseRequest struct {
	BaseModel
	ParentID string `gorm:"type:uuid;not null;index"`

	Subjects    pq.StringArray `gorm:"type:text[]" json:"subjects"`
	Level       string
	CityID      *string `gorm:"type:uuid;index"`
	Quartier    string
	Frequency   string
	IsOnline    bool   `gorm:"default:false"`
	Description string `gorm:"type:text"`

	BudgetRange BudgetRange `gorm:"type:varchar(20);not null"`
	StartTime   StartTime   `gorm:"type:varchar(20);not null"`
	Intention   Intention   `gorm:"type:varchar(20);not null"`

	// Qualification is the persisted lead label computed when the request
	// is created (and recomputed when the scored fields are edited).
	Qualification string `gorm:"type:varchar(40)"`

	Status RequestStatus `gorm:"type:varchar(20);default:'active';index"`

	// Relations
	Parent *User `gorm:"foreignKey:ParentID"`
	City   *City `gorm:"foreignKey:CityID"`
}
