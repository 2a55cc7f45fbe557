package services

import (
	"time"

	"monprof_backend/internal/email"
	"monprof_backend/internal/logger"
	"monprof_backend/internal/models"
	"monprof_backend/internal/repositories"
	"monprof_backend/internal/services/dto"
	"monprof_backend/pkg/apperrors"
)

type ModerationService interface {
	ListByStatus(status models.TutorStatus, page, pageSize int) (*dto.Paginated[dto.TutorProfileDTO], error)
	Validate(profileID string) (*dto.TutorProfileDTO, error)
	Reject(profileID, note string) (*dto.TutorProfileDTO, error)
	Suspend(profileID, note string) (*dto.TutorProfileDTO, error)
}

type ModerationServiceImpl struct {
	profileRepo   repositories.ProfileRepository
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	templates     *email.TemplateManager
}

func NewModerationService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	templates *email.TemplateManager,
) ModerationService {
	return &ModerationServiceImpl{
		profileRepo:   profileRepo,
		userRepo:      userRepo,
		emailProvider: emailProvider,
		templates:     templates,
	}
}

func (s *ModerationServiceImpl) ListByStatus(status models.TutorStatus, page, pageSize int) (*dto.Paginated[dto.TutorProfileDTO], error) {
	if !status.IsValid() {
		return nil, apperrors.NewBadRequestError("Unknown tutor status")
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	profiles, total, err := s.profileRepo.FindTutorsByStatus(status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.TutorProfileDTO, 0, len(profiles))
	for i := range profiles {
		items = append(items, *dto.NewTutorProfileDTO(&profiles[i]))
	}

	result := dto.NewPaginated(items, total, page, pageSize)
	return &result, nil
}

// Validate approves a pending profile and makes it publicly visible.
func (s *ModerationServiceImpl) Validate(profileID string) (*dto.TutorProfileDTO, error) {
	profile, err := s.loadProfile(profileID)
	if err != nil {
		return nil, err
	}

	if profile.Status != models.TutorStatusPending {
		return nil, apperrors.ErrInvalidStatus("moderation", "Profile is not awaiting review")
	}

	now := time.Now()
	if err := s.profileRepo.UpdateTutorStatus(profile.ID, models.TutorStatusValidated, "", &now); err != nil {
		return nil, apperrors.InternalError(err)
	}

	go s.notifyOutcome(profile.UserID, email.TemplateProfileValidated, "")

	return s.reload(profile.ID)
}

// Reject sends a pending profile back to its owner. The note is
// mandatory: it is the only feedback the tutor gets.
func (s *ModerationServiceImpl) Reject(profileID, note string) (*dto.TutorProfileDTO, error) {
	if note == "" {
		return nil, apperrors.NewBadRequestError("A rejection note is required")
	}

	profile, err := s.loadProfile(profileID)
	if err != nil {
		return nil, err
	}

	if profile.Status != models.TutorStatusPending {
		return nil, apperrors.ErrInvalidStatus("moderation", "Profile is not awaiting review")
	}

	if err := s.profileRepo.UpdateTutorStatus(profile.ID, models.TutorStatusRejected, note, nil); err != nil {
		return nil, apperrors.InternalError(err)
	}

	go s.notifyOutcome(profile.UserID, email.TemplateProfileRejected, note)

	return s.reload(profile.ID)
}

// Suspend pulls a validated profile out of the directory.
func (s *ModerationServiceImpl) Suspend(profileID, note string) (*dto.TutorProfileDTO, error) {
	profile, err := s.loadProfile(profileID)
	if err != nil {
		return nil, err
	}

	if profile.Status != models.TutorStatusValidated {
		return nil, apperrors.ErrInvalidStatus("moderation", "Only validated profiles can be suspended")
	}

	if err := s.profileRepo.UpdateTutorStatus(profile.ID, models.TutorStatusSuspended, note, nil); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.reload(profile.ID)
}

func (s *ModerationServiceImpl) loadProfile(profileID string) (*models.TutorProfile, error) {
	profile, err := s.profileRepo.FindTutorProfileByID(profileID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ModerationServiceImpl) reload(profileID string) (*dto.TutorProfileDTO, error) {
	profile, err := s.profileRepo.FindTutorProfileByID(profileID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewTutorProfileDTO(profile), nil
}

// notifyOutcome emails the tutor about a moderation decision. Failures
// are logged only; the decision itself already committed.
func (s *ModerationServiceImpl) notifyOutcome(userID, templateName, note string) {
	if s.emailProvider == nil || s.templates == nil {
		return
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		logger.WithError(err).Error("moderation email: user lookup failed")
		return
	}

	body, err := s.templates.Render(templateName, email.TemplateData{
		"Name": user.FirstName,
		"Note": note,
	})
	if err != nil {
		logger.WithError(err).Error("moderation email: template render failed")
		return
	}

	subject := "Votre profil MonProf a été validé"
	if templateName == email.TemplateProfileRejected {
		subject = "Votre profil MonProf nécessite des corrections"
	}

	msg := &email.Email{
		To:       []string{user.Email},
		Subject:  subject,
		HTMLBody: body,
	}
	if err := s.emailProvider.Send(msg); err != nil {
		logger.WithError(err).Error("moderation email: send failed")
	}
}
