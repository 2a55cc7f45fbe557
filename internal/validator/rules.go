package validator

import (
	"log"

	"monprof_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the domain enum checks into the validator.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Startup-time failure, nothing sensible to continue with.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-budget-range", validateBudgetRange)
	mustRegister("is-start-time", validateStartTime)
	mustRegister("is-intention", validateIntention)
	mustRegister("is-request-status", validateRequestStatus)
}

// Empty values pass here; 'required' owns the presence check.

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleParent, models.UserRoleTutor, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateBudgetRange(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.BudgetRange(value) {
	case models.BudgetLow, models.BudgetMedium, models.BudgetStandard, models.BudgetHigh, models.BudgetPremium:
		return true
	default:
		return false
	}
}

func validateStartTime(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.StartTime(value) {
	case models.StartASAP, models.StartWithinMonth, models.StartLater:
		return true
	default:
		return false
	}
}

func validateIntention(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.Intention(value) {
	case models.IntentionStart, models.IntentionInfo:
		return true
	default:
		return false
	}
}

func validateRequestStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.RequestStatus(value) {
	case models.RequestStatusActive, models.RequestStatusConsulting, models.RequestStatusClosed,
		models.RequestStatusExpired, models.RequestStatusAbandoned:
		return true
	default:
		return false
	}
}
