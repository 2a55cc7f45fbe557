package dto

import "time"

// UnlockResponse is returned for both the first purchase and every
// repeat attempt; AlreadyUnlocked tells them apart.
type UnlockResponse struct {
	TutorProfileID  string    `json:"tutor_profile_id"`
	AmountPaid      int64     `json:"amount_paid"`
	Currency        string    `json:"currency,omitempty"`
	AlreadyUnlocked bool      `json:"already_unlocked"`
	UnlockedAt      time.Time `json:"unlocked_at"`
}
