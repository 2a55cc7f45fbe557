package dto

import (
	"time"

	"monprof_backend/internal/models"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type ReviewDTO struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews       []ReviewDTO `json:"reviews"`
	AverageRating float64     `json:"average_rating"`
	ReviewCount   int64       `json:"review_count"`
}

func NewReviewDTO(review *models.Review) ReviewDTO {
	dto := ReviewDTO{
		ID:        review.ID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
	if review.Author != nil {
		dto.AuthorName = review.Author.FullName()
	}
	return dto
}
