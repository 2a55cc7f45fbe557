package models

import "time"

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`
	// IsSuperuser marks the top admin tier; sub-admins have Role admin
	// with IsSuperuser false.
	IsSuperuser bool `gorm:"default:false"`
	FirstName   string
	LastName    string
	Phone       string
	CountryID   *string `gorm:"type:uuid;index"`
	IsActive    bool    `gorm:"default:true"`

	// Relations
	Country       *Country       `gorm:"foreignKey:CountryID"`
	TutorProfile  *TutorProfile  `gorm:"foreignKey:UserID"`
	ParentProfile *ParentProfile `gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID"`
}

// IsStaff reports whether the user can enter the back-office.
func (u *User) IsStaff() bool {
	return u.Role == UserRoleAdmin
}

// FullName is the display name used across listings and threads.
func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Email
	}
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
