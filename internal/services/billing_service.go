package services

import (
	"monprof_backend/internal/config"
	"monprof_backend/internal/models"
	"monprof_backend/internal/repositories"
	"monprof_backend/internal/services/dto"
	"monprof_backend/pkg/apperrors"
)

// unlockPriceKey selects the tutor-contact tier from a country's
// contact price table.
const unlockPriceKey = "tutor_contact"

type BillingService interface {
	UnlockContact(parentUserID, tutorProfileID string) (*dto.UnlockResponse, error)
	ListUnlocks(parentUserID string) ([]dto.UnlockResponse, error)
}

type BillingServiceImpl struct {
	unlockRepo  repositories.UnlockRepository
	profileRepo repositories.ProfileRepository
}

func NewBillingService(unlockRepo repositories.UnlockRepository, profileRepo repositories.ProfileRepository) BillingService {
	return &BillingServiceImpl{
		unlockRepo:  unlockRepo,
		profileRepo: profileRepo,
	}
}

// UnlockContact grants permanent access to a tutor's contact details.
// There is no payment provider yet, the unlock is granted instantly at
// the configured price. Repeat purchases are idempotent: the DB keeps
// one row per (parent, tutor) pair and the caller is never charged
// twice.
func (s *BillingServiceImpl) UnlockContact(parentUserID, tutorProfileID string) (*dto.UnlockResponse, error) {
	profile, err := s.profileRepo.FindTutorProfileByID(tutorProfileID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !profile.IsVisible() {
		return nil, apperrors.ErrNotFound(repositories.ErrProfileNotFound)
	}

	price, currency := s.resolvePrice(profile)

	unlock := &models.ContactUnlock{
		ParentUserID:   parentUserID,
		TutorProfileID: profile.ID,
		AmountPaid:     price,
		Currency:       currency,
	}

	created, err := s.unlockRepo.CreateIfAbsent(unlock)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if !created {
		existing, err := s.unlockRepo.FindByPair(parentUserID, profile.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return &dto.UnlockResponse{
			TutorProfileID:  existing.TutorProfileID,
			AmountPaid:      existing.AmountPaid,
			Currency:        existing.Currency,
			AlreadyUnlocked: true,
			UnlockedAt:      existing.CreatedAt,
		}, nil
	}

	fresh, err := s.unlockRepo.FindByPair(parentUserID, profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.UnlockResponse{
		TutorProfileID: fresh.TutorProfileID,
		AmountPaid:     fresh.AmountPaid,
		Currency:       fresh.Currency,
		UnlockedAt:     fresh.CreatedAt,
	}, nil
}

func (s *BillingServiceImpl) ListUnlocks(parentUserID string) ([]dto.UnlockResponse, error) {
	unlocks, err := s.unlockRepo.FindByParent(parentUserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.UnlockResponse, 0, len(unlocks))
	for i := range unlocks {
		items = append(items, dto.UnlockResponse{
			TutorProfileID: unlocks[i].TutorProfileID,
			AmountPaid:     unlocks[i].AmountPaid,
			Currency:       unlocks[i].Currency,
			UnlockedAt:     unlocks[i].CreatedAt,
		})
	}
	return items, nil
}

// resolvePrice reads the unlock price from the tutor's country table,
// falling back to the configured default when the country has no tier
// for tutor contacts.
func (s *BillingServiceImpl) resolvePrice(profile *models.TutorProfile) (int64, string) {
	cfg := config.GetConfig()
	price := cfg.Billing.DefaultUnlockPrice
	currency := ""

	if profile.User != nil && profile.User.Country != nil {
		country := profile.User.Country
		currency = country.CurrencySymbol
		if p, ok := country.GetContactPrices()[unlockPriceKey]; ok && p > 0 {
			price = p
		}
	}

	return price, currency
}
