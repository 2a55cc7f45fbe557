package repositories

import (
	"errors"

	"monprof_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUnlockNotFound = errors.New("contact unlock not found")

type UnlockRepository interface {
	// CreateIfAbsent inserts the pair row unless it already exists and
	// reports whether a new row was written. Safe under concurrent calls.
	CreateIfAbsent(unlock *models.ContactUnlock) (bool, error)
	FindByPair(parentUserID, tutorProfileID string) (*models.ContactUnlock, error)
	Exists(parentUserID, tutorProfileID string) (bool, error)
	FindByParent(parentUserID string) ([]models.ContactUnlock, error)
	CountAll() (int64, error)
}

type UnlockRepositoryImpl struct {
	db *gorm.DB
}

func NewUnlockRepository(db *gorm.DB) UnlockRepository {
	return &UnlockRepositoryImpl{db: db}
}

func (r *UnlockRepositoryImpl) CreateIfAbsent(unlock *models.ContactUnlock) (bool, error) {
	// ON CONFLICT DO NOTHING: concurrent purchases of the same pair
	// resolve to a single row, the loser sees RowsAffected == 0.
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "parent_user_id"}, {Name: "tutor_profile_id"}},
		DoNothing: true,
	}).Create(unlock)

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *UnlockRepositoryImpl) FindByPair(parentUserID, tutorProfileID string) (*models.ContactUnlock, error) {
	var unlock models.ContactUnlock
	err := r.db.Where("parent_user_id = ? AND tutor_profile_id = ?", parentUserID, tutorProfileID).
		First(&unlock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnlockNotFound
		}
		return nil, err
	}
	return &unlock, nil
}

func (r *UnlockRepositoryImpl) Exists(parentUserID, tutorProfileID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.ContactUnlock{}).
		Where("parent_user_id = ? AND tutor_profile_id = ?", parentUserID, tutorProfileID).
		Count(&count).Error
	return count > 0, err
}

func (r *UnlockRepositoryImpl) FindByParent(parentUserID string) ([]models.ContactUnlock, error) {
	var unlocks []models.ContactUnlock
	err := r.db.Preload("TutorProfile").Preload("TutorProfile.User").
		Where("parent_user_id = ?", parentUserID).
		Order("created_at DESC").
		Find(&unlocks).Error
	return unlocks, err
}

func (r *UnlockRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactUnlock{}).Count(&count).Error
	return count, err
}
