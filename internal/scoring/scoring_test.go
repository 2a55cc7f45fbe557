package scoring

import (
	"fmt"
	"testing"

	"monprof_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

var (
	allBudgets = []models.BudgetRange{
		models.BudgetLow, models.BudgetMedium, models.BudgetStandard,
		models.BudgetHigh, models.BudgetPremium,
	}
	allStarts = []models.StartTime{
		models.StartASAP, models.StartWithinMonth, models.StartLater,
	}
	allIntentions = []models.Intention{
		models.IntentionStart, models.IntentionInfo,
	}
)

// expectedDefault mirrors the rule priority with the default floor.
func expectedDefault(in Input) string {
	budgetOK := in.Budget.AtLeast(models.BudgetStandard)
	startsSoon := in.StartTime == models.StartASAP || in.StartTime == models.StartWithinMonth

	switch {
	case in.Intention == models.IntentionStart && startsSoon && budgetOK:
		return LabelStrong
	case budgetOK:
		return LabelWarm
	default:
		return LabelLimited
	}
}

func TestQualify_AllCombinations(t *testing.T) {
	count := 0
	for _, budget := range allBudgets {
		for _, start := range allStarts {
			for _, intention := range allIntentions {
				count++
				in := Input{Budget: budget, StartTime: start, Intention: intention}
				name := fmt.Sprintf("%s/%s/%s", budget, start, intention)

				t.Run(name, func(t *testing.T) {
					got := Qualify(in, "")
					assert.Equal(t, expectedDefault(in), got)

					// Deterministic: same input, same label.
					assert.Equal(t, got, Qualify(in, ""))
				})
			}
		}
	}
	assert.Equal(t, 30, count)
}

func TestQualify_StrongLead(t *testing.T) {
	got := Qualify(Input{
		Budget:    models.BudgetStandard,
		StartTime: models.StartASAP,
		Intention: models.IntentionStart,
	}, "")
	assert.Equal(t, LabelStrong, got)
}

func TestQualify_LowBudgetNeverStrong(t *testing.T) {
	got := Qualify(Input{
		Budget:    models.BudgetLow,
		StartTime: models.StartASAP,
		Intention: models.IntentionStart,
	}, "")
	assert.Equal(t, LabelLimited, got)
}

func TestQualify_InfoIntentionIsWarm(t *testing.T) {
	got := Qualify(Input{
		Budget:    models.BudgetPremium,
		StartTime: models.StartASAP,
		Intention: models.IntentionInfo,
	}, "")
	assert.Equal(t, LabelWarm, got)
}

func TestQualify_LaterStartIsWarm(t *testing.T) {
	got := Qualify(Input{
		Budget:    models.BudgetHigh,
		StartTime: models.StartLater,
		Intention: models.IntentionStart,
	}, "")
	assert.Equal(t, LabelWarm, got)
}

func TestQualify_CustomFloor(t *testing.T) {
	in := Input{
		Budget:    models.BudgetLow,
		StartTime: models.StartASAP,
		Intention: models.IntentionStart,
	}

	// A market with a low floor accepts low budgets as strong leads.
	assert.Equal(t, LabelStrong, Qualify(in, models.BudgetLow))
	// The default floor rejects them.
	assert.Equal(t, LabelLimited, Qualify(in, ""))
}

func TestQualifyForCountry(t *testing.T) {
	in := Input{
		Budget:    models.BudgetMedium,
		StartTime: models.StartWithinMonth,
		Intention: models.IntentionStart,
	}

	assert.Equal(t, LabelLimited, QualifyForCountry(in, nil))

	country := &models.Country{MinBudgetThreshold: models.BudgetMedium}
	assert.Equal(t, LabelStrong, QualifyForCountry(in, country))

	// Unconfigured country falls back to the default floor.
	assert.Equal(t, LabelLimited, QualifyForCountry(in, &models.Country{}))
}

func TestBudgetRange_AtLeast(t *testing.T) {
	assert.True(t, models.BudgetPremium.AtLeast(models.BudgetStandard))
	assert.True(t, models.BudgetStandard.AtLeast(models.BudgetStandard))
	assert.False(t, models.BudgetMedium.AtLeast(models.BudgetStandard))
	assert.False(t, models.BudgetRange("bogus").AtLeast(models.BudgetLow))
}
