package repositories

import (
	"errors"
	"time"

	"monprof_backend/internal/models/messaging"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrThreadNotFound  = errors.New("thread not found")
	ErrMessageNotFound = errors.New("message not found")
)

type MessagingRepository interface {
	// Thread operations
	GetOrCreateThread(userA, userB string) (*messaging.Thread, error)
	FindThreadByID(id string) (*messaging.Thread, error)
	FindUserThreads(userID string) ([]messaging.Thread, error)
	TouchThread(threadID string, at time.Time) error

	// Message operations
	CreateMessage(message *messaging.Message) error
	FindThreadMessages(threadID string) ([]messaging.Message, error)
	FindLastMessage(threadID string) (*messaging.Message, error)
	MarkThreadRead(threadID, readerID string) error
	CountThreadUnread(threadID, readerID string) (int64, error)
	CountUserUnread(userID string) (int64, error)
}

type MessagingRepositoryImpl struct {
	db *gorm.DB
}

func NewMessagingRepository(db *gorm.DB) MessagingRepository {
	return &MessagingRepositoryImpl{db: db}
}

// Thread operations

// GetOrCreateThread returns the single thread for a pair, creating it on
// first contact. The pair is normalized so direction never matters, and
// the unique index resolves concurrent first messages to one row.
func (r *MessagingRepositoryImpl) GetOrCreateThread(userA, userB string) (*messaging.Thread, error) {
	a, b := messaging.NormalizePair(userA, userB)

	thread := messaging.Thread{
		ParticipantAID: a,
		ParticipantBID: b,
		LastMessageAt:  time.Now(),
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "participant_a_id"}, {Name: "participant_b_id"}},
		DoNothing: true,
	}).Create(&thread).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the conflict case also returns the existing row.
	var existing messaging.Thread
	err = r.db.Where("participant_a_id = ? AND participant_b_id = ?", a, b).
		First(&existing).Error
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *MessagingRepositoryImpl) FindThreadByID(id string) (*messaging.Thread, error) {
	var thread messaging.Thread
	err := r.db.First(&thread, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrThreadNotFound
		}
		return nil, err
	}
	return &thread, nil
}

func (r *MessagingRepositoryImpl) FindUserThreads(userID string) ([]messaging.Thread, error) {
	var threads []messaging.Thread
	err := r.db.Where("participant_a_id = ? OR participant_b_id = ?", userID, userID).
		Order("last_message_at DESC").
		Find(&threads).Error
	return threads, err
}

func (r *MessagingRepositoryImpl) TouchThread(threadID string, at time.Time) error {
	result := r.db.Model(&messaging.Thread{}).Where("id = ?", threadID).
		Update("last_message_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrThreadNotFound
	}
	return nil
}

// Message operations

func (r *MessagingRepositoryImpl) CreateMessage(message *messaging.Message) error {
	return r.db.Create(message).Error
}

func (r *MessagingRepositoryImpl) FindThreadMessages(threadID string) ([]messaging.Message, error) {
	var messages []messaging.Message
	err := r.db.Where("thread_id = ?", threadID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *MessagingRepositoryImpl) FindLastMessage(threadID string) (*messaging.Message, error) {
	var message messaging.Message
	err := r.db.Where("thread_id = ?", threadID).
		Order("created_at DESC").
		First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

// MarkThreadRead flips every message the reader did not send. The
// reader's own messages keep their state.
func (r *MessagingRepositoryImpl) MarkThreadRead(threadID, readerID string) error {
	return r.db.Model(&messaging.Message{}).
		Where("thread_id = ? AND sender_id != ? AND is_read = ?", threadID, readerID, false).
		Update("is_read", true).Error
}

func (r *MessagingRepositoryImpl) CountThreadUnread(threadID, readerID string) (int64, error) {
	var count int64
	err := r.db.Model(&messaging.Message{}).
		Where("thread_id = ? AND sender_id != ? AND is_read = ?", threadID, readerID, false).
		Count(&count).Error
	return count, err
}

// CountUserUnread is the badge count: unread messages addressed to the
// user across all their threads.
func (r *MessagingRepositoryImpl) CountUserUnread(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&messaging.Message{}).
		Joins("JOIN messaging.threads t ON t.id = messaging.messages.thread_id").
		Where("(t.participant_a_id = ? OR t.participant_b_id = ?)", userID, userID).
		Where("messaging.messages.sender_id != ? AND messaging.messages.is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
