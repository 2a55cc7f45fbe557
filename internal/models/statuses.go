package models

type UserRole string
type TutorStatus string
type RequestStatus string
type BudgetRange string
type StartTime string
type Intention string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleParent UserRole = "parent"
	UserRoleTutor  UserRole = "tutor"

	// Tutor moderation lifecycle
	TutorStatusDraft     TutorStatus = "draft"
	TutorStatusPending   TutorStatus = "pending"
	TutorStatusValidated TutorStatus = "validated"
	TutorStatusRejected  TutorStatus = "rejected"
	TutorStatusSuspended TutorStatus = "suspended"

	RequestStatusActive     RequestStatus = "active"
	RequestStatusConsulting RequestStatus = "consulting"
	RequestStatusClosed     RequestStatus = "closed"
	RequestStatusExpired    RequestStatus = "expired"
	RequestStatusAbandoned  RequestStatus = "abandoned"

	// Monthly budget tiers, ordered low to premium
	BudgetLow      BudgetRange = "low"
	BudgetMedium   BudgetRange = "medium"
	BudgetStandard BudgetRange = "standard"
	BudgetHigh     BudgetRange = "high"
	BudgetPremium  BudgetRange = "premium"

	StartASAP        StartTime = "asap"
	StartWithinMonth StartTime = "weeks_1_4"
	StartLater       StartTime = "later"

	IntentionStart Intention = "start"
	IntentionInfo  Intention = "info"
)

func (s TutorStatus) IsValid() bool {
	switch s {
	case TutorStatusDraft, TutorStatusPending, TutorStatusValidated, TutorStatusRejected, TutorStatusSuspended:
		return true
	}
	return false
}

// budgetOrder ranks tiers for threshold comparisons.
var budgetOrder = map[BudgetRange]int{
	BudgetLow:      0,
	BudgetMedium:   1,
	BudgetStandard: 2,
	BudgetHigh:     3,
	BudgetPremium:  4,
}

// AtLeast reports whether b is at or above the floor tier.
// Unknown tiers rank below everything.
func (b BudgetRange) AtLeast(floor BudgetRange) bool {
	bi, ok := budgetOrder[b]
	if !ok {
		return false
	}
	fi, ok := budgetOrder[floor]
	if !ok {
		return false
	}
	return bi >= fi
}
