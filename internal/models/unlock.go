package models

// ContactUnlock records a parent's paid access to a tutor's contact
// details. One row per (parent, tutor) pair, never expires; repeat
// purchase attempts are absorbed without a new row or charge.
type ContactUnlock struct {
	BaseModel
	ParentUserID   string `gorm:"type:uuid;not null;uniqueIndex:idx_unlock_pair;index"`
	TutorProfileID string `gorm:"type:uuid;not null;uniqueIndex:idx_unlock_pair;index"`
	AmountPaid     int64  `gorm:"not null"`
	Currency       string `gorm:"type:varchar(10)"`

	Parent       *User         `gorm:"foreignKey:ParentUserID"`
	TutorProfile *TutorProfile `gorm:"foreignKey:TutorProfileID"`
}
