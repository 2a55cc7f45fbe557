package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Country carries the per-market configuration the back-office tunes:
// pricing, the qualification budget floor, and operational delays.
type Country struct {
	BaseModel
	Name           string `gorm:"not null"`
	Code           string `gorm:"type:varchar(5);uniqueIndex;not null"`
	CurrencySymbol string `gorm:"type:varchar(10)"`
	IsActive       bool   `gorm:"default:true"`

	SubscriptionPrice int64 `gorm:"default:0"`
	// ContactPrices maps a product key to its price, e.g.
	// {"tutor_contact": 2000}.
	ContactPrices datatypes.JSON `gorm:"type:jsonb"`
	// MinBudgetThreshold is the tier a lead must reach to score as a
	// real intention. Empty means the default floor.
	MinBudgetThreshold BudgetRange `gorm:"type:varchar(20)"`
	// CasierDelayWeeks is how long tutors get to supply the criminal
	// record after validation.
	CasierDelayWeeks int `gorm:"default:4"`
	// ReminderDayOffsets are the day marks for follow-up reminders,
	// e.g. [3, 7, 14].
	ReminderDayOffsets datatypes.JSON `gorm:"type:jsonb"`

	Cities []City `gorm:"foreignKey:CountryID"`
}

// GetContactPrices decodes the tier price map.
func (c *Country) GetContactPrices() map[string]int64 {
	prices := make(map[string]int64)
	if len(c.ContactPrices) > 0 {
		_ = json.Unmarshal(c.ContactPrices, &prices)
	}
	return prices
}

// SetContactPrices encodes the tier price map.
func (c *Country) SetContactPrices(prices map[string]int64) {
	data, _ := json.Marshal(prices)
	c.ContactPrices = datatypes.JSON(data)
}

// GetReminderDayOffsets decodes the reminder schedule.
func (c *Country) GetReminderDayOffsets() []int {
	var offsets []int
	if len(c.ReminderDayOffsets) > 0 {
		_ = json.Unmarshal(c.ReminderDayOffsets, &offsets)
	}
	return offsets
}

// SetReminderDayOffsets encodes the reminder schedule.
func (c *Country) SetReminderDayOffsets(offsets []int) {
	data, _ := json.Marshal(offsets)
	c.ReminderDayOffsets = datatypes.JSON(data)
}

type City struct {
	BaseModel
	CountryID string `gorm:"type:uuid;not null;index"`
	Name      string `gorm:"not null"`

	Country   *Country   `gorm:"foreignKey:CountryID"`
	Quartiers []Quartier `gorm:"foreignKey:CityID"`
}

type Quartier struct {
	BaseModel
	CityID string `gorm:"type:uuid;not null;index"`
	Name   string `gorm:"not null"`

	City *City `gorm:"foreignKey:CityID"`
}
