package repositories

import (
	"errors"
	"time"

	"monprof_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

type ProfileRepository interface {
	// TutorProfile operations
	CreateTutorProfile(profile *models.TutorProfile) error
	FindTutorProfileByID(id string) (*models.TutorProfile, error)
	FindTutorProfileByUserID(userID string) (*models.TutorProfile, error)
	UpdateTutorProfile(profile *models.TutorProfile) error
	UpdateTutorStatus(profileID string, status models.TutorStatus, adminNotes string, validatedAt *time.Time) error
	DeleteTutorProfile(id string) error
	SearchVisibleTutors(criteria TutorSearchCriteria) ([]models.TutorProfile, int64, error)
	FindTutorsByStatus(status models.TutorStatus, limit, offset int) ([]models.TutorProfile, int64, error)
	CountTutorsByStatus(status models.TutorStatus) (int64, error)

	// ParentProfile operations
	CreateParentProfile(profile *models.ParentProfile) error
	FindParentProfileByUserID(userID string) (*models.ParentProfile, error)
	UpdateParentProfile(profile *models.ParentProfile) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

// TutorSearchCriteria filters the public directory. Only validated
// profiles are searched regardless of criteria.
type TutorSearchCriteria struct {
	Subject  string `form:"subject"`
	Level    string `form:"level"`
	CityID   string `form:"city_id"`
	Online   *bool  `form:"online"`
	Page     int    `form:"page" binding:"min=0"`
	PageSize int    `form:"page_size" binding:"min=0,max=100"`
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// TutorProfile operations

func (r *ProfileRepositoryImpl) CreateTutorProfile(profile *models.TutorProfile) error {
	var existing models.TutorProfile
	if err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindTutorProfileByID(id string) (*models.TutorProfile, error) {
	var profile models.TutorProfile
	err := r.db.Preload("User").Preload("User.Country").Preload("City").
		First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindTutorProfileByUserID(userID string) (*models.TutorProfile, error) {
	var profile models.TutorProfile
	err := r.db.Preload("User").Preload("City").
		First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateTutorProfile(profile *models.TutorProfile) error {
	result := r.db.Model(profile).Updates(map[string]interface{}{
		"bio":                 profile.Bio,
		"photo_url":           profile.PhotoURL,
		"identity_doc_url":    profile.IdentityDocURL,
		"criminal_record_url": profile.CriminalRecordURL,
		"diplomas_url":        profile.DiplomasURL,
		"city_id":             profile.CityID,
		"quartier":            profile.Quartier,
		"subjects":            profile.Subjects,
		"levels":              profile.Levels,
		"is_online_class":     profile.IsOnlineClass,
		"is_home_class":       profile.IsHomeClass,
		"hourly_rate":         profile.HourlyRate,
		"status":              profile.Status,
		"updated_at":          time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) UpdateTutorStatus(profileID string, status models.TutorStatus, adminNotes string, validatedAt *time.Time) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if adminNotes != "" {
		updates["admin_notes"] = adminNotes
	}
	if validatedAt != nil {
		updates["validated_at"] = validatedAt
	}

	result := r.db.Model(&models.TutorProfile{}).Where("id = ?", profileID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) DeleteTutorProfile(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.TutorProfile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) SearchVisibleTutors(criteria TutorSearchCriteria) ([]models.TutorProfile, int64, error) {
	var profiles []models.TutorProfile
	query := r.db.Model(&models.TutorProfile{}).
		Where("status = ?", models.TutorStatusValidated)

	if criteria.Subject != "" {
		query = query.Where("? = ANY(subjects)", criteria.Subject)
	}
	if criteria.Level != "" {
		query = query.Where("? = ANY(levels)", criteria.Level)
	}
	if criteria.CityID != "" {
		query = query.Where("city_id = ?", criteria.CityID)
	}
	if criteria.Online != nil {
		query = query.Where("is_online_class = ?", *criteria.Online)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	if limit == 0 {
		limit = 20
	}
	page := criteria.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit

	err := query.Preload("User").Preload("City").
		Order("validated_at DESC NULLS LAST").Limit(limit).Offset(offset).
		Find(&profiles).Error

	return profiles, total, err
}

func (r *ProfileRepositoryImpl) FindTutorsByStatus(status models.TutorStatus, limit, offset int) ([]models.TutorProfile, int64, error) {
	var profiles []models.TutorProfile
	query := r.db.Model(&models.TutorProfile{}).Where("status = ?", status)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("User").Preload("City").
		Order("updated_at ASC").Limit(limit).Offset(offset).
		Find(&profiles).Error

	return profiles, total, err
}

func (r *ProfileRepositoryImpl) CountTutorsByStatus(status models.TutorStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.TutorProfile{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// ParentProfile operations

func (r *ProfileRepositoryImpl) CreateParentProfile(profile *models.ParentProfile) error {
	var existing models.ParentProfile
	if err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindParentProfileByUserID(userID string) (*models.ParentProfile, error) {
	var profile models.ParentProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateParentProfile(profile *models.ParentProfile) error {
	result := r.db.Model(profile).Updates(map[string]interface{}{
		"address":           profile.Address,
		"is_phone_verified": profile.IsPhoneVerified,
		"updated_at":        time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
