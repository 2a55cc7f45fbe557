package models

// Review is a parent's rating of a tutor. One review per (tutor, author)
// pair; only parents who unlocked the tutor's contact may post one.
type Review struct {
	BaseModel
	TutorProfileID string `gorm:"type:uuid;not null;uniqueIndex:idx_review_pair;index"`
	AuthorID       string `gorm:"type:uuid;not null;uniqueIndex:idx_review_pair;index"`
	Rating         int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment        string `gorm:"type:text"`

	// Relations
	TutorProfile *TutorProfile `gorm:"foreignKey:TutorProfileID"`
	Author       *User         `gorm:"foreignKey:AuthorID"`
}
