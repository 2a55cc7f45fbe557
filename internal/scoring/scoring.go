package scoring

import (
	"monprof_backend/internal/models"
)

// Lead qualification labels, shown to staff in the back-office.
const (
	LabelStrong  = "Intention Forte"
	LabelWarm    = "Intention Tiède"
	LabelLimited = "Budget Limité / Autre"
)

// DefaultBudgetFloor is the tier a lead must reach when the country has
// no threshold configured.
const DefaultBudgetFloor = models.BudgetStandard

// Input are the three signals a course request is scored on.
type Input struct {
	Budget    models.BudgetRange
	StartTime models.StartTime
	Intention models.Intention
}

// Qualify labels a lead. Rules apply in priority order:
//  1. ready to start, soon, with real budget -> strong
//  2. real budget but hesitant timing or just gathering info -> warm
//  3. everything else -> limited
//
// floor is the country's minimum budget tier; pass "" for the default.
func Qualify(in Input, floor models.BudgetRange) string {
	if floor == "" {
		floor = DefaultBudgetFloor
	}

	budgetOK := in.Budget.AtLeast(floor)
	startsSoon := in.StartTime == models.StartASAP || in.StartTime == models.StartWithinMonth

	if in.Intention == models.IntentionStart && startsSoon && budgetOK {
		return LabelStrong
	}
	if budgetOK {
		// Reaching here with budget means intention=info or start=later.
		return LabelWarm
	}
	return LabelLimited
}

// QualifyForCountry reads the floor from the parent's country, falling
// back to the default when the country is nil or unconfigured.
func QualifyForCountry(in Input, country *models.Country) string {
	floor := models.BudgetRange("")
	if country != nil {
		floor = country.MinBudgetThreshold
	}
	return Qualify(in, floor)
}
