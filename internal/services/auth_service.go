package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"monprof_backend/internal/auth"
	"monprof_backend/internal/config"
	"monprof_backend/internal/email"
	"monprof_backend/internal/logger"
	"monprof_backend/internal/models"
	"monprof_backend/internal/repositories"
	"monprof_backend/internal/services/dto"
	"monprof_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	AdminLogin(req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(refreshToken string) (*dto.AuthResponse, error)
	Logout(refreshToken string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	profileRepo   repositories.ProfileRepository
	geoRepo       repositories.GeoRepository
	emailProvider email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	geoRepo repositories.GeoRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		geoRepo:       geoRepo,
		emailProvider: emailProvider,
	}
}

// Register creates a parent or tutor account and logs it in. Admin
// accounts never come through here.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePublicRole(req.Role); err != nil {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         req.Role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		IsActive:     true,
	}

	if req.CountryCode != "" {
		country, err := s.geoRepo.FindCountryByCode(req.CountryCode)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Unknown country code")
		}
		if !country.IsActive {
			return nil, apperrors.NewBadRequestError("Country is not open yet")
		}
		user.CountryID = &country.ID
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.createRoleProfile(user); err != nil {
		s.userRepo.Delete(user.ID)
		return nil, apperrors.InternalError(err)
	}

	s.sendWelcomeEmail(user)

	return s.issueTokens(user)
}

// Login authenticates parents and tutors. Staff accounts are refused
// here and use the back-office login instead.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.authenticate(req)
	if err != nil {
		return nil, err
	}

	if user.IsStaff() {
		return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth",
			"Staff accounts must use the back-office login", 401)
	}

	return s.issueTokens(user)
}

// AdminLogin authenticates staff for the back-office.
func (s *AuthServiceImpl) AdminLogin(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.authenticate(req)
	if err != nil {
		return nil, err
	}

	if !user.IsStaff() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.AuthResponse, error) {
	token, err := s.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeInvalidToken, "auth", "Invalid refresh token", 401)
	}

	if time.Now().After(token.ExpiresAt) {
		s.userRepo.DeleteRefreshToken(refreshToken)
		return nil, apperrors.New(apperrors.CodeTokenExpired, "auth", "Refresh token expired", 401)
	}

	user, err := s.userRepo.FindByID(token.UserID)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeInvalidToken, "auth", "Invalid refresh token", 401)
	}
	if !user.IsActive {
		return nil, apperrors.NewForbiddenError("Account is deactivated")
	}

	// Rotate: the old token dies with the refresh.
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Refreshes are frequent enough to double as expired-token cleanup.
	if err := s.userRepo.CleanExpiredRefreshTokens(); err != nil {
		logger.Warn("Failed to clean expired refresh tokens", "error", err)
	}

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) Logout(refreshToken string) error {
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Already gone, logout is idempotent.
			return nil
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// --- helpers ---

func (s *AuthServiceImpl) authenticate(req *dto.LoginRequest) (*models.User, error) {
	invalidCredentials := apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", 401)

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, invalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, invalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.NewForbiddenError("Account is deactivated")
	}

	return user, nil
}

func (s *AuthServiceImpl) createRoleProfile(user *models.User) error {
	switch user.Role {
	case models.UserRoleTutor:
		return s.profileRepo.CreateTutorProfile(&models.TutorProfile{
			UserID: user.ID,
			Status: models.TutorStatusDraft,
		})
	case models.UserRoleParent:
		return s.profileRepo.CreateParentProfile(&models.ParentProfile{
			UserID: user.ID,
		})
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.createRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserDTO(user),
	}, nil
}

func (s *AuthServiceImpl) createRefreshToken(userID string) (string, error) {
	token := generateRandomToken()
	ttlDays := config.GetConfig().JWT.RefreshTTL

	model := &models.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().AddDate(0, 0, ttlDays),
	}
	if err := s.userRepo.CreateRefreshToken(model); err != nil {
		return "", err
	}
	return token, nil
}

func (s *AuthServiceImpl) sendWelcomeEmail(user *models.User) {
	if s.emailProvider == nil {
		return
	}

	go func() {
		tm := email.NewTemplateManager()
		body, err := tm.Render(email.TemplateWelcome, email.TemplateData{"Name": user.FirstName})
		if err != nil {
			return
		}
		msg := &email.Email{
			To:       []string{user.Email},
			Subject:  "Bienvenue sur MonProf",
			HTMLBody: body,
		}
		if err := s.emailProvider.Send(msg); err != nil {
			logger.WithError(err).Warn("failed to send welcome email", "email", user.Email)
		}
	}()
}

func generateRandomToken() string {
	buf := make([]byte, 32)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}
