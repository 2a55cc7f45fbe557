package models

import (
	"github.com/lib/pq"
)

type Category struct {
	BaseModel
	Name string `gorm:"not null"`
	Slug string `gorm:"uniqueIndex;not null"`
}

// Article is a blog post. Likes are stored as the liking user ids so the
// toggle stays a single column update.
type Article struct {
	BaseModel
	Title       string  `gorm:"not null"`
	Slug        string  `gorm:"uniqueIndex;not null"`
	AuthorID    string  `gorm:"type:uuid;not null;index"`
	CategoryID  *string `gorm:"type:uuid;index"`
	ImageURL    string
	Excerpt     string         `gorm:"type:text"`
	Content     string         `gorm:"type:text"`
	IsPublished bool           `gorm:"default:false;index"`
	LikedBy     pq.StringArray `gorm:"type:text[]" json:"liked_by"`

	// Relations
	Author   *User     `gorm:"foreignKey:AuthorID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
	Comments []Comment `gorm:"foreignKey:ArticleID"`
}

// LikeCount is the number of users who liked the article.
func (a *Article) LikeCount() int {
	return len(a.LikedBy)
}

// IsLikedBy reports whether userID already liked the article.
func (a *Article) IsLikedBy(userID string) bool {
	for _, id := range a.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

type Comment struct {
	BaseModel
	ArticleID string `gorm:"type:uuid;not null;index"`
	AuthorID  string `gorm:"type:uuid;not null;index"`
	Content   string `gorm:"type:text;not null"`

	Author *User `gorm:"foreignKey:AuthorID"`
}
