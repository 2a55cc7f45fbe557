package repositories

import (
	"errors"
	"time"

	"monprof_backend/internal/models"

	"gorm.io/gorm"
)

var ErrRequestNotFound = errors.New("course request not found")

type RequestRepository interface {
	Create(request *models.CourseRequest) error
	FindByID(id string) (*models.CourseRequest, error)
	Update(request *models.CourseRequest) error
	Delete(id string) error
	FindActive(criteria RequestFilter) ([]models.CourseRequest, int64, error)
	FindByParent(parentID string) ([]models.CourseRequest, error)
	CountByStatus(status models.RequestStatus) (int64, error)
	FindRecent(limit int) ([]models.CourseRequest, error)
}

type RequestRepositoryImpl struct {
	db *gorm.DB
}

// RequestFilter narrows the marketplace listing tutors browse.
type RequestFilter struct {
	CityID   string `form:"city_id"`
	Subject  string `form:"subject"`
	Page     int    `form:"page" binding:"min=0"`
	PageSize int    `form:"page_size" binding:"min=0,max=100"`
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &RequestRepositoryImpl{db: db}
}

func (r *RequestRepositoryImpl) Create(request *models.CourseRequest) error {
	return r.db.Create(request).Error
}

func (r *RequestRepositoryImpl) FindByID(id string) (*models.CourseRequest, error) {
	var request models.CourseRequest
	err := r.db.Preload("Parent").Preload("Parent.Country").Preload("City").
		First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *RequestRepositoryImpl) Update(request *models.CourseRequest) error {
	result := r.db.Model(request).Updates(map[string]interface{}{
		"subjects":      request.Subjects,
		"level":         request.Level,
		"city_id":       request.CityID,
		"quartier":      request.Quartier,
		"frequency":     request.Frequency,
		"is_online":     request.IsOnline,
		"description":   request.Description,
		"budget_range":  request.BudgetRange,
		"start_time":    request.StartTime,
		"intention":     request.Intention,
		"qualification": request.Qualification,
		"status":        request.Status,
		"updated_at":    time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.CourseRequest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// FindActive lists the marketplace view: active requests only, newest first.
func (r *RequestRepositoryImpl) FindActive(criteria RequestFilter) ([]models.CourseRequest, int64, error) {
	var requests []models.CourseRequest
	query := r.db.Model(&models.CourseRequest{}).
		Where("status = ?", models.RequestStatusActive)

	if criteria.CityID != "" {
		query = query.Where("city_id = ?", criteria.CityID)
	}
	if criteria.Subject != "" {
		query = query.Where("? = ANY(subjects)", criteria.Subject)
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

	err := query.Preload("Parent").Preload("City").
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&requests).Error

	return requests, total, err
}

func (r *RequestRepositoryImpl) FindByParent(parentID string) ([]models.CourseRequest, error) {
	var requests []models.CourseRequest
	err := r.db.Preload("City").
		Where("parent_id = ?", parentID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *RequestRepositoryImpl) CountByStatus(status models.RequestStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.CourseRequest{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *RequestRepositoryImpl) FindRecent(limit int) ([]models.CourseRequest, error) {
	var requests []models.CourseRequest
	err := r.db.Preload("Parent").Preload("City").
		Order("created_at DESC").Limit(limit).Find(&requests).Error
	return requests, err
}
