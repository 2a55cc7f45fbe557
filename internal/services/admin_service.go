package services

import (
	"strings"

	"monprof_backend/internal/auth"
	"monprof_backend/internal/models"
	"monprof_backend/internal/repositories"
	"monprof_backend/internal/services/dto"
	"monprof_backend/pkg/apperrors"
)

type AdminService interface {
	GetDashboard() (*dto.AdminDashboardResponse, error)

	ListUsers(filter repositories.UserFilter) (*dto.Paginated[dto.UserDTO], error)
	CreateAdmin(actorID string, req *dto.CreateAdminRequest) (*dto.UserDTO, error)
	SetUserActive(actorID, targetID string, active bool) (*dto.UserDTO, error)
	DeleteUser(actorID, targetID string) error

	ListCountries() ([]dto.CountryDTO, error)
	CreateCountry(req *dto.CreateCountryRequest) (*dto.CountryDTO, error)
	UpdateCountry(countryID string, req *dto.UpdateCountryRequest) (*dto.CountryDTO, error)
	DeleteCountry(actorID, countryID string) error

	DeleteRequest(actorID, requestID string) error
	DeleteArticle(actorID, articleID string) error

	CreateCity(req *dto.CreateCityRequest) (*dto.CityDTO, error)
	CreateQuartier(req *dto.CreateQuartierRequest) (*dto.QuartierDTO, error)
	CreateSubject(req *dto.CreateSubjectRequest) (*dto.SubjectDTO, error)
	CreateLevel(req *dto.CreateLevelRequest) (*dto.LevelDTO, error)
}

type AdminServiceImpl struct {
	userRepo      repositories.UserRepository
	profileRepo   repositories.ProfileRepository
	requestRepo   repositories.RequestRepository
	unlockRepo    repositories.UnlockRepository
	blogRepo      repositories.BlogRepository
	geoRepo       repositories.GeoRepository
	educationRepo repositories.EducationRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	requestRepo repositories.RequestRepository,
	unlockRepo repositories.UnlockRepository,
	blogRepo repositories.BlogRepository,
	geoRepo repositories.GeoRepository,
	educationRepo repositories.EducationRepository,
) AdminService {
	return &AdminServiceImpl{
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		requestRepo:   requestRepo,
		unlockRepo:    unlockRepo,
		blogRepo:      blogRepo,
		geoRepo:       geoRepo,
		educationRepo: educationRepo,
	}
}

func (s *AdminServiceImpl) GetDashboard() (*dto.AdminDashboardResponse, error) {
	stats, err := s.collectStats()
	if err != nil {
		return nil, err
	}

	resp := &dto.AdminDashboardResponse{Stats: *stats}

	recentUsers, err := s.userRepo.FindRecent(5)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp.RecentUsers = make([]dto.UserDTO, 0, len(recentUsers))
	for i := range recentUsers {
		resp.RecentUsers = append(resp.RecentUsers, dto.NewUserDTO(&recentUsers[i]))
	}

	recentRequests, err := s.requestRepo.FindRecent(5)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp.RecentRequests = make([]dto.CourseRequestDTO, 0, len(recentRequests))
	for i := range recentRequests {
		resp.RecentRequests = append(resp.RecentRequests, dto.NewCourseRequestDTO(&recentRequests[i]))
	}

	pending, _, err := s.profileRepo.FindTutorsByStatus(models.TutorStatusPending, 5, 0)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp.PendingTutors = make([]dto.TutorProfileDTO, 0, len(pending))
	for i := range pending {
		resp.PendingTutors = append(resp.PendingTutors, *dto.NewTutorProfileDTO(&pending[i]))
	}

	return resp, nil
}

func (s *AdminServiceImpl) ListUsers(filter repositories.UserFilter) (*dto.Paginated[dto.UserDTO], error) {
	users, total, err := s.userRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserDTO(&users[i]))
	}

	page := filter.Page
	if page == 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize == 0 {
		pageSize = 20
	}
	result := dto.NewPaginated(items, total, page, pageSize)
	return &result, nil
}

// CreateAdmin adds a back-office account. Only superusers may do this,
// and the created account is never itself a superuser.
func (s *AdminServiceImpl) CreateAdmin(actorID string, req *dto.CreateAdminRequest) (*dto.UserDTO, error) {
	if err := s.requireSuperuser(actorID); err != nil {
		return nil, err
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewUserDTO(user)
	return &result, nil
}

// SetUserActive bans or reinstates an account.
func (s *AdminServiceImpl) SetUserActive(actorID, targetID string, active bool) (*dto.UserDTO, error) {
	if actorID == targetID {
		return nil, apperrors.ErrCannotModifySelf
	}

	target, err := s.loadUser(targetID)
	if err != nil {
		return nil, err
	}
	if target.IsSuperuser {
		return nil, apperrors.ErrSuperuserProtected
	}

	if err := s.userRepo.SetActive(target.ID, active); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// A ban takes effect immediately: open sessions cannot refresh.
	if !active {
		if err := s.userRepo.DeleteUserRefreshTokens(target.ID); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	target, err = s.loadUser(targetID)
	if err != nil {
		return nil, err
	}
	result := dto.NewUserDTO(target)
	return &result, nil
}

// DeleteUser removes an account entirely. Superusers may delete any
// regular account; superuser accounts themselves are untouchable.
func (s *AdminServiceImpl) DeleteUser(actorID, targetID string) error {
	if err := s.requireSuperuser(actorID); err != nil {
		return err
	}
	if actorID == targetID {
		return apperrors.ErrCannotModifySelf
	}

	target, err := s.loadUser(targetID)
	if err != nil {
		return err
	}
	if target.IsSuperuser {
		return apperrors.ErrSuperuserProtected
	}

	if err := s.userRepo.DeleteUserRefreshTokens(target.ID); err != nil {
		return apperrors.InternalError(err)
	}
	if target.Role == models.UserRoleTutor {
		profile, err := s.profileRepo.FindTutorProfileByUserID(target.ID)
		if err != nil && !apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.InternalError(err)
		}
		if profile != nil {
			if err := s.profileRepo.DeleteTutorProfile(profile.ID); err != nil {
				return apperrors.InternalError(err)
			}
		}
	}

	if err := s.userRepo.Delete(target.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) ListCountries() ([]dto.CountryDTO, error) {
	countries, err := s.geoRepo.FindAllCountries(false)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.CountryDTO, 0, len(countries))
	for i := range countries {
		items = append(items, dto.NewCountryDTO(&countries[i]))
	}
	return items, nil
}

func (s *AdminServiceImpl) CreateCountry(req *dto.CreateCountryRequest) (*dto.CountryDTO, error) {
	country := &models.Country{
		Name:           req.Name,
		Code:           strings.ToUpper(req.Code),
		CurrencySymbol: req.CurrencySymbol,
		IsActive:       true,
	}
	if err := s.geoRepo.CreateCountry(country); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewCountryDTO(country)
	return &result, nil
}

// UpdateCountry edits the per-country business configuration. Nil and
// empty fields are left untouched so partial updates are safe.
func (s *AdminServiceImpl) UpdateCountry(countryID string, req *dto.UpdateCountryRequest) (*dto.CountryDTO, error) {
	country, err := s.geoRepo.FindCountryByID(countryID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCountryNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != "" {
		country.Name = req.Name
	}
	if req.IsActive != nil {
		country.IsActive = *req.IsActive
	}
	if req.CurrencySymbol != "" {
		country.CurrencySymbol = req.CurrencySymbol
	}
	if req.SubscriptionPrice != nil {
		country.SubscriptionPrice = *req.SubscriptionPrice
	}
	if req.ContactPrices != nil {
		country.SetContactPrices(req.ContactPrices)
	}
	if req.MinBudgetThreshold != "" {
		country.MinBudgetThreshold = req.MinBudgetThreshold
	}
	if req.CasierDelayWeeks != nil {
		country.CasierDelayWeeks = *req.CasierDelayWeeks
	}
	if req.ReminderDayOffsets != nil {
		country.SetReminderDayOffsets(req.ReminderDayOffsets)
	}

	if err := s.geoRepo.UpdateCountry(country); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewCountryDTO(country)
	return &result, nil
}

func (s *AdminServiceImpl) DeleteCountry(actorID, countryID string) error {
	if err := s.requireSuperuser(actorID); err != nil {
		return err
	}

	if err := s.geoRepo.DeleteCountry(countryID); err != nil {
		if apperrors.Is(err, repositories.ErrCountryNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// DeleteRequest removes a course request from the marketplace.
func (s *AdminServiceImpl) DeleteRequest(actorID, requestID string) error {
	if err := s.requireSuperuser(actorID); err != nil {
		return err
	}

	if err := s.requestRepo.Delete(requestID); err != nil {
		if apperrors.Is(err, repositories.ErrRequestNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// DeleteArticle removes a blog post and its comments.
func (s *AdminServiceImpl) DeleteArticle(actorID, articleID string) error {
	if err := s.requireSuperuser(actorID); err != nil {
		return err
	}

	if err := s.blogRepo.DeleteArticle(articleID); err != nil {
		if apperrors.Is(err, repositories.ErrArticleNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// CreateCity adds a city to an existing country's catalog.
func (s *AdminServiceImpl) CreateCity(req *dto.CreateCityRequest) (*dto.CityDTO, error) {
	if _, err := s.geoRepo.FindCountryByID(req.CountryID); err != nil {
		if apperrors.Is(err, repositories.ErrCountryNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	city := &models.City{CountryID: req.CountryID, Name: req.Name}
	if err := s.geoRepo.CreateCity(city); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewCityDTO(city)
	return &result, nil
}

func (s *AdminServiceImpl) CreateQuartier(req *dto.CreateQuartierRequest) (*dto.QuartierDTO, error) {
	if _, err := s.geoRepo.FindCityByID(req.CityID); err != nil {
		if apperrors.Is(err, repositories.ErrCityNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	quartier := &models.Quartier{CityID: req.CityID, Name: req.Name}
	if err := s.geoRepo.CreateQuartier(quartier); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewQuartierDTO(quartier)
	return &result, nil
}

func (s *AdminServiceImpl) CreateSubject(req *dto.CreateSubjectRequest) (*dto.SubjectDTO, error) {
	subject := &models.Subject{Name: req.Name, IsAcademic: true}
	if req.IsAcademic != nil {
		subject.IsAcademic = *req.IsAcademic
	}
	if err := s.educationRepo.CreateSubject(subject); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewSubjectDTO(subject)
	return &result, nil
}

func (s *AdminServiceImpl) CreateLevel(req *dto.CreateLevelRequest) (*dto.LevelDTO, error) {
	level := &models.Level{Name: req.Name, Category: req.Category, Order: req.Order}
	if err := s.educationRepo.CreateLevel(level); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewLevelDTO(level)
	return &result, nil
}

func (s *AdminServiceImpl) collectStats() (*dto.AdminStats, error) {
	stats := &dto.AdminStats{}

	var err error
	if stats.ParentCount, err = s.userRepo.CountByRole(models.UserRoleParent); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TutorCount, err = s.userRepo.CountByRole(models.UserRoleTutor); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ValidatedTutors, err = s.profileRepo.CountTutorsByStatus(models.TutorStatusValidated); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.PendingTutors, err = s.profileRepo.CountTutorsByStatus(models.TutorStatusPending); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ActiveRequests, err = s.requestRepo.CountByStatus(models.RequestStatusActive); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalUnlocks, err = s.unlockRepo.CountAll(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.PublishedPosts, err = s.blogRepo.CountPublished(); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return stats, nil
}

func (s *AdminServiceImpl) requireSuperuser(actorID string) error {
	actor, err := s.loadUser(actorID)
	if err != nil {
		return err
	}
	if !actor.IsSuperuser {
		return apperrors.ErrInsufficientPermissions
	}
	return nil
}

func (s *AdminServiceImpl) loadUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
