package dto

import (
	"time"

	"monprof_backend/internal/models/messaging"
)

type PostMessageRequest struct {
	Content string `json:"content" binding:"required,min=1,max=4000"`
}

type MessageDTO struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"sender_id"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type ParticipantDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// ThreadSummaryDTO is one inbox row.
type ThreadSummaryDTO struct {
	ID            string         `json:"id"`
	Other         ParticipantDTO `json:"other_participant"`
	LastMessage   *MessageDTO    `json:"last_message,omitempty"`
	UnreadCount   int64          `json:"unread_count"`
	LastMessageAt time.Time      `json:"last_message_at"`
}

// ThreadDetailDTO is the open conversation, messages oldest first.
type ThreadDetailDTO struct {
	ID       string         `json:"id"`
	Other    ParticipantDTO `json:"other_participant"`
	Messages []MessageDTO   `json:"messages"`
}

type StartThreadResponse struct {
	ThreadID string `json:"thread_id"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

func NewMessageDTO(message *messaging.Message) MessageDTO {
	return MessageDTO{
		ID:        message.ID,
		SenderID:  message.SenderID,
		Content:   message.Content,
		IsRead:    message.IsRead,
		CreatedAt: message.CreatedAt,
	}
}
