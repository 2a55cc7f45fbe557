package repositories

import (
	"errors"

	"monprof_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("review already exists for this tutor")
)

type ReviewRepository interface {
	Create(review *models.Review) error
	FindByTutor(tutorProfileID string) ([]models.Review, error)
	ExistsByPair(tutorProfileID, authorID string) (bool, error)
	GetTutorStats(tutorProfileID string) (*ReviewStats, error)
	Delete(id string) error
}

type ReviewStats struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) Create(review *models.Review) error {
	exists, err := r.ExistsByPair(review.TutorProfileID, review.AuthorID)
	if err != nil {
		return err
	}
	if exists {
		return ErrReviewAlreadyExists
	}
	return r.db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByTutor(tutorProfileID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("Author").
		Where("tutor_profile_id = ?", tutorProfileID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) ExistsByPair(tutorProfileID, authorID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("tutor_profile_id = ? AND author_id = ?", tutorProfileID, authorID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepositoryImpl) GetTutorStats(tutorProfileID string) (*ReviewStats, error) {
	var stats ReviewStats
	err := r.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as average_rating, COUNT(*) as review_count").
		Where("tutor_profile_id = ?", tutorProfileID).
		Scan(&stats).Error
	return &stats, err
}

func (r *ReviewRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}
