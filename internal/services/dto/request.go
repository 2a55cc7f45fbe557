package dto

import (
	"time"

	"monprof_backend/internal/models"
)

type CreateRequestRequest struct {
	Subjects    []string           `json:"subjects" binding:"required,min=1"`
	Level       string             `json:"level" binding:"required"`
	CityID      string             `json:"city_id"`
	Quartier    string             `json:"quartier"`
	Frequency   string             `json:"frequency"`
	IsOnline    bool               `json:"is_online"`
	Description string             `json:"description"`
	BudgetRange models.BudgetRange `json:"budget_range" binding:"required,is-budget-range"`
	StartTime   models.StartTime   `json:"start_time" binding:"required,is-start-time"`
	Intention   models.Intention   `json:"intention" binding:"required,is-intention"`
}

// UpdateRequestRequest mirrors creation; every field is re-submitted.
type UpdateRequestRequest struct {
	CreateRequestRequest
}

type CourseRequestDTO struct {
	ID            string               `json:"id"`
	ParentID      string               `json:"parent_id"`
	ParentName    string               `json:"parent_name,omitempty"`
	Subjects      []string             `json:"subjects"`
	Level         string               `json:"level"`
	CityID        *string              `json:"city_id,omitempty"`
	CityName      string               `json:"city_name,omitempty"`
	Quartier      string               `json:"quartier,omitempty"`
	Frequency     string               `json:"frequency,omitempty"`
	IsOnline      bool                 `json:"is_online"`
	Description   string               `json:"description,omitempty"`
	BudgetRange   models.BudgetRange   `json:"budget_range"`
	StartTime     models.StartTime     `json:"start_time"`
	Intention     models.Intention     `json:"intention"`
	Qualification string               `json:"qualification,omitempty"`
	Status        models.RequestStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
}

func NewCourseRequestDTO(request *models.CourseRequest) CourseRequestDTO {
	dto := CourseRequestDTO{
		ID:            request.ID,
		ParentID:      request.ParentID,
		Subjects:      request.Subjects,
		Level:         request.Level,
		CityID:        request.CityID,
		Quartier:      request.Quartier,
		Frequency:     request.Frequency,
		IsOnline:      request.IsOnline,
		Description:   request.Description,
		BudgetRange:   request.BudgetRange,
		StartTime:     request.StartTime,
		Intention:     request.Intention,
		Qualification: request.Qualification,
		Status:        request.Status,
		CreatedAt:     request.CreatedAt,
	}
	if request.Parent != nil {
		dto.ParentName = request.Parent.FullName()
	}
	if request.City != nil {
		dto.CityName = request.City.Name
	}
	return dto
}
