package repositories

import (
	"monprof_backend/internal/models"

	"gorm.io/gorm"
)

type EducationRepository interface {
	FindAllSubjects() ([]models.Subject, error)
	CreateSubject(subject *models.Subject) error
	FindAllLevels() ([]models.Level, error)
	CreateLevel(level *models.Level) error
}

type EducationRepositoryImpl struct {
	db *gorm.DB
}

func NewEducationRepository(db *gorm.DB) EducationRepository {
	return &EducationRepositoryImpl{db: db}
}

func (r *EducationRepositoryImpl) FindAllSubjects() ([]models.Subject, error) {
	var subjects []models.Subject
	err := r.db.Order("name ASC").Find(&subjects).Error
	return subjects, err
}

func (r *EducationRepositoryImpl) CreateSubject(subject *models.Subject) error {
	return r.db.Create(subject).Error
}

func (r *EducationRepositoryImpl) FindAllLevels() ([]models.Level, error) {
	var levels []models.Level
	err := r.db.Order("category ASC, display_order ASC").Find(&levels).Error
	return levels, err
}

func (r *EducationRepositoryImpl) CreateLevel(level *models.Level) error {
	return r.db.Create(level).Error
}
