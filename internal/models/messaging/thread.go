package messaging

import "time"

// Thread is a two-party conversation. Participants are stored as an
// ordered pair (ParticipantAID < ParticipantBID) so the pair maps to
// exactly one row regardless of who started it.
type Thread struct {
	ID             string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ParticipantAID string `gorm:"type:uuid;not null;uniqueIndex:idx_thread_pair;index"`
	ParticipantBID string `gorm:"type:uuid;not null;uniqueIndex:idx_thread_pair;index"`
	LastMessageAt  time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Messages []Message `gorm:"foreignKey:ThreadID"`
}

func (Thread) TableName() string {
	return "messaging.threads"
}

// NormalizePair orders two user ids into the stored (A, B) pair.
func NormalizePair(userA, userB string) (string, string) {
	if userA < userB {
		return userA, userB
	}
	return userB, userA
}

// HasParticipant reports whether userID is one of the two parties.
func (t *Thread) HasParticipant(userID string) bool {
	return t.ParticipantAID == userID || t.ParticipantBID == userID
}

// OtherParticipant returns the counterpart of userID, or "" when userID
// is not in the thread.
func (t *Thread) OtherParticipant(userID string) string {
	switch userID {
	case t.ParticipantAID:
		return t.ParticipantBID
	case t.ParticipantBID:
		return t.ParticipantAID
	default:
		return ""
	}
}
