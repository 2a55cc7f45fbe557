package models

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestTutorProfileVisibility(t *testing.T) {
	for _, status := range []TutorStatus{TutorStatusDraft, TutorStatusPending, TutorStatusRejected, TutorStatusSuspended} {
		profile := &TutorProfile{Status: status}
		assert.False(t, profile.IsVisible(), "status %s must stay hidden", status)
	}

	profile := &TutorProfile{Status: TutorStatusValidated}
	assert.True(t, profile.IsVisible())
}

func TestTutorStatusIsValid(t *testing.T) {
	assert.True(t, TutorStatusPending.IsValid())
	assert.False(t, TutorStatus("published").IsValid())
}

func TestBudgetAtLeast(t *testing.T) {
	assert.True(t, BudgetStandard.AtLeast(BudgetStandard))
	assert.True(t, BudgetPremium.AtLeast(BudgetLow))
	assert.False(t, BudgetLow.AtLeast(BudgetStandard))

	// Unknown tiers never clear a floor.
	assert.False(t, BudgetRange("unlimited").AtLeast(BudgetLow))
}

func TestUserFullName(t *testing.T) {
	user := &User{FirstName: "Claire", LastName: "Martin", Email: "claire@test.local"}
	assert.Equal(t, "Claire Martin", user.FullName())

	user.LastName = ""
	assert.Equal(t, "Claire", user.FullName())

	user.FirstName = ""
	assert.Equal(t, "claire@test.local", user.FullName())
}

func TestArticleLikes(t *testing.T) {
	article := &Article{LikedBy: pq.StringArray{"u1", "u2"}}

	assert.Equal(t, 2, article.LikeCount())
	assert.True(t, article.IsLikedBy("u1"))
	assert.False(t, article.IsLikedBy("u3"))
}

func TestCountryContactPrices(t *testing.T) {
	country := &Country{}
	assert.Empty(t, country.GetContactPrices())

	country.SetContactPrices(map[string]int64{"tutor_contact": 2000})
	prices := country.GetContactPrices()
	assert.Equal(t, int64(2000), prices["tutor_contact"])

	country.SetReminderDayOffsets([]int{3, 7, 14})
	assert.Equal(t, []int{3, 7, 14}, country.GetReminderDayOffsets())
}
