package messaging

import "time"

type Message struct {
	ID       string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ThreadID string `gorm:"type:uuid;index;not null"`
	SenderID string `gorm:"type:uuid;index;not null"`
	Content  string `gorm:"type:text;not null"`
	// IsRead flips when the other participant opens the thread.
	IsRead    bool `gorm:"default:false;index"`
	CreatedAt time.Time
}

func (Message) TableName() string {
	return "messaging.messages"
}
