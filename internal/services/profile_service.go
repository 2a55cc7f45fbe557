package services

import (
	"monprof_backend/internal/models"
	"monprof_backend/internal/repositories"
	"monprof_backend/internal/services/dto"
	"monprof_backend/pkg/apperrors"
)

// maskedContact replaces contact fields the viewer has not paid for.
const maskedContact = "••••••••"

type ProfileService interface {
	GetDashboard(userID string) (*dto.DashboardResponse, error)
	UpdateDashboard(userID string, req *dto.UpdateDashboardRequest) (*dto.DashboardResponse, error)
	SetTutorDocument(userID, kind, url string) error

	// Public directory
	SearchTutors(criteria repositories.TutorSearchCriteria) (*dto.Paginated[dto.TutorCardDTO], error)
	GetTutorDetail(profileID string, viewer *models.User) (*dto.TutorDetailDTO, error)
}

type ProfileServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	requestRepo repositories.RequestRepository
	unlockRepo  repositories.UnlockRepository
	reviewRepo  repositories.ReviewRepository
	msgRepo     repositories.MessagingRepository
}

func NewProfileService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	requestRepo repositories.RequestRepository,
	unlockRepo repositories.UnlockRepository,
	reviewRepo repositories.ReviewRepository,
	msgRepo repositories.MessagingRepository,
) ProfileService {
	return &ProfileServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		requestRepo: requestRepo,
		unlockRepo:  unlockRepo,
		reviewRepo:  reviewRepo,
		msgRepo:     msgRepo,
	}
}

// GetDashboard builds the role-branched home view. Accounts created
// before their profile row exists get one on first visit.
func (s *ProfileServiceImpl) GetDashboard(userID string) (*dto.DashboardResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.DashboardResponse{User: dto.NewUserDTO(user)}

	switch user.Role {
	case models.UserRoleTutor:
		profile, err := s.ensureTutorProfile(userID)
		if err != nil {
			return nil, err
		}
		resp.TutorProfile = dto.NewTutorProfileDTO(profile)

	case models.UserRoleParent:
		profile, err := s.ensureParentProfile(userID)
		if err != nil {
			return nil, err
		}
		resp.ParentProfile = dto.NewParentProfileDTO(profile)

		requests, err := s.requestRepo.FindByParent(userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.Requests = make([]dto.CourseRequestDTO, 0, len(requests))
		for i := range requests {
			resp.Requests = append(resp.Requests, dto.NewCourseRequestDTO(&requests[i]))
		}
	}

	unread, err := s.msgRepo.CountUserUnread(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp.UnreadMessages = unread

	return resp, nil
}

// UpdateDashboard saves the account fields plus the role profile. A
// tutor saving while draft or rejected goes straight to pending review;
// rejected profiles re-enter the queue because the rejection note told
// the tutor what to fix.
func (s *ProfileServiceImpl) UpdateDashboard(userID string, req *dto.UpdateDashboardRequest) (*dto.DashboardResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	switch user.Role {
	case models.UserRoleTutor:
		if req.Tutor != nil {
			if err := s.applyTutorInput(userID, req.Tutor); err != nil {
				return nil, err
			}
		}
	case models.UserRoleParent:
		if req.Parent != nil {
			if err := s.applyParentInput(userID, req.Parent); err != nil {
				return nil, err
			}
		}
	default:
		if req.Tutor != nil || req.Parent != nil {
			return nil, apperrors.ErrInvalidUserRole
		}
	}

	return s.GetDashboard(userID)
}

// SetTutorDocument records an uploaded file URL on the tutor profile.
func (s *ProfileServiceImpl) SetTutorDocument(userID, kind, url string) error {
	profile, err := s.ensureTutorProfile(userID)
	if err != nil {
		return err
	}

	switch kind {
	case "photo":
		profile.PhotoURL = url
	case "identity_doc":
		profile.IdentityDocURL = url
	case "criminal_record":
		profile.CriminalRecordURL = url
	case "diplomas":
		profile.DiplomasURL = url
	default:
		return apperrors.NewBadRequestError("Unknown document kind")
	}

	if err := s.profileRepo.UpdateTutorProfile(profile); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// SearchTutors lists the public directory: validated profiles only.
func (s *ProfileServiceImpl) SearchTutors(criteria repositories.TutorSearchCriteria) (*dto.Paginated[dto.TutorCardDTO], error) {
	profiles, total, err := s.profileRepo.SearchVisibleTutors(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	cards := make([]dto.TutorCardDTO, 0, len(profiles))
	for i := range profiles {
		card, err := s.buildTutorCard(&profiles[i])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	page := criteria.Page
	if page == 0 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize == 0 {
		pageSize = 20
	}

	result := dto.NewPaginated(cards, total, page, pageSize)
	return &result, nil
}

// GetTutorDetail returns the public profile page. Non-validated
// profiles 404 for everyone, including their owner (the owner sees the
// real state on the dashboard). Contact details stay masked unless the
// viewer owns the profile, is a superuser, or holds an unlock.
func (s *ProfileServiceImpl) GetTutorDetail(profileID string, viewer *models.User) (*dto.TutorDetailDTO, error) {
	profile, err := s.profileRepo.FindTutorProfileByID(profileID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !profile.IsVisible() {
		return nil, apperrors.ErrNotFound(repositories.ErrProfileNotFound)
	}

	card, err := s.buildTutorCard(profile)
	if err != nil {
		return nil, err
	}

	detail := &dto.TutorDetailDTO{
		TutorCardDTO: card,
		Email:        maskedContact,
		Phone:        maskedContact,
	}

	unlocked, err := s.viewerHasAccess(profile, viewer)
	if err != nil {
		return nil, err
	}
	if unlocked {
		detail.IsUnlocked = true
		detail.UserID = profile.UserID
		if profile.User != nil {
			detail.LastName = profile.User.LastName
			detail.Email = profile.User.Email
			detail.Phone = profile.User.Phone
		}
	}

	reviews, err := s.reviewRepo.FindByTutor(profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	detail.Reviews = make([]dto.ReviewDTO, 0, len(reviews))
	for i := range reviews {
		detail.Reviews = append(detail.Reviews, dto.NewReviewDTO(&reviews[i]))
	}

	return detail, nil
}

// --- helpers ---

func (s *ProfileServiceImpl) ensureTutorProfile(userID string) (*models.TutorProfile, error) {
	profile, err := s.profileRepo.FindTutorProfileByUserID(userID)
	if err == nil {
		return profile, nil
	}
	if !apperrors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	fresh := &models.TutorProfile{
		UserID: userID,
		Status: models.TutorStatusDraft,
	}
	if err := s.profileRepo.CreateTutorProfile(fresh); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.profileRepo.FindTutorProfileByUserID(userID)
}

func (s *ProfileServiceImpl) ensureParentProfile(userID string) (*models.ParentProfile, error) {
	profile, err := s.profileRepo.FindParentProfileByUserID(userID)
	if err == nil {
		return profile, nil
	}
	if !apperrors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	fresh := &models.ParentProfile{UserID: userID}
	if err := s.profileRepo.CreateParentProfile(fresh); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.profileRepo.FindParentProfileByUserID(userID)
}

func (s *ProfileServiceImpl) applyTutorInput(userID string, input *dto.TutorProfileInput) error {
	profile, err := s.ensureTutorProfile(userID)
	if err != nil {
		return err
	}

	profile.Bio = input.Bio
	profile.Quartier = input.Quartier
	profile.Subjects = input.Subjects
	profile.Levels = input.Levels
	profile.IsOnlineClass = input.IsOnlineClass
	profile.IsHomeClass = input.IsHomeClass
	profile.HourlyRate = input.HourlyRate
	if input.CityID != "" {
		profile.CityID = &input.CityID
	}

	// Saving a draft or rejected profile submits it for review.
	if profile.Status == models.TutorStatusDraft || profile.Status == models.TutorStatusRejected {
		profile.Status = models.TutorStatusPending
	}

	if err := s.profileRepo.UpdateTutorProfile(profile); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProfileServiceImpl) applyParentInput(userID string, input *dto.ParentProfileInput) error {
	profile, err := s.ensureParentProfile(userID)
	if err != nil {
		return err
	}

	profile.Address = input.Address

	if err := s.profileRepo.UpdateParentProfile(profile); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProfileServiceImpl) buildTutorCard(profile *models.TutorProfile) (dto.TutorCardDTO, error) {
	card := dto.TutorCardDTO{
		ID:            profile.ID,
		Bio:           profile.Bio,
		PhotoURL:      profile.PhotoURL,
		Quartier:      profile.Quartier,
		Subjects:      profile.Subjects,
		Levels:        profile.Levels,
		IsOnlineClass: profile.IsOnlineClass,
		IsHomeClass:   profile.IsHomeClass,
		HourlyRate:    profile.HourlyRate,
	}
	if profile.User != nil {
		card.FirstName = profile.User.FirstName
	}
	if profile.City != nil {
		card.CityName = profile.City.Name
	}

	stats, err := s.reviewRepo.GetTutorStats(profile.ID)
	if err != nil {
		return card, apperrors.InternalError(err)
	}
	card.AverageRating = roundRating(stats.AverageRating)
	card.ReviewCount = stats.ReviewCount

	return card, nil
}

func (s *ProfileServiceImpl) viewerHasAccess(profile *models.TutorProfile, viewer *models.User) (bool, error) {
	if viewer == nil {
		return false, nil
	}
	if viewer.ID == profile.UserID {
		return true, nil
	}
	if viewer.IsSuperuser {
		return true, nil
	}

	unlocked, err := s.unlockRepo.Exists(viewer.ID, profile.ID)
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	return unlocked, nil
}

// roundRating keeps one decimal, matching the public rating display.
func roundRating(r float64) float64 {
	return float64(int(r*10+0.5)) / 10
}
