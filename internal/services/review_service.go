package services

import (
	"monprof_backend/internal/models"
	"monprof_backend/internal/repositories"
	"monprof_backend/internal/services/dto"
	"monprof_backend/pkg/apperrors"
)

type ReviewService interface {
	Create(tutorProfileID, authorID string, req *dto.CreateReviewRequest) (*dto.ReviewDTO, error)
	ListByTutor(tutorProfileID string) (*dto.ReviewListResponse, error)
	Delete(reviewID string) error
}

type ReviewServiceImpl struct {
	reviewRepo  repositories.ReviewRepository
	unlockRepo  repositories.UnlockRepository
	profileRepo repositories.ProfileRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	unlockRepo repositories.UnlockRepository,
	profileRepo repositories.ProfileRepository,
) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:  reviewRepo,
		unlockRepo:  unlockRepo,
		profileRepo: profileRepo,
	}
}

// Create posts a review. Only parents who unlocked the tutor's contact
// may review, one review per author per tutor.
func (s *ReviewServiceImpl) Create(tutorProfileID, authorID string, req *dto.CreateReviewRequest) (*dto.ReviewDTO, error) {
	profile, err := s.profileRepo.FindTutorProfileByID(tutorProfileID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !profile.IsVisible() {
		return nil, apperrors.ErrNotFound(repositories.ErrProfileNotFound)
	}

	unlocked, err := s.unlockRepo.Exists(authorID, profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !unlocked {
		return nil, apperrors.NewForbiddenError("Reviews require an unlocked contact")
	}

	review := &models.Review{
		TutorProfileID: profile.ID,
		AuthorID:       authorID,
		Rating:         req.Rating,
		Comment:        req.Comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		if apperrors.Is(err, repositories.ErrReviewAlreadyExists) {
			return nil, apperrors.ErrConflict(err, "reviews", "You already reviewed this tutor")
		}
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewReviewDTO(review)
	return &result, nil
}

func (s *ReviewServiceImpl) ListByTutor(tutorProfileID string) (*dto.ReviewListResponse, error) {
	profile, err := s.profileRepo.FindTutorProfileByID(tutorProfileID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !profile.IsVisible() {
		return nil, apperrors.ErrNotFound(repositories.ErrProfileNotFound)
	}

	reviews, err := s.reviewRepo.FindByTutor(profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats, err := s.reviewRepo.GetTutorStats(profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.ReviewListResponse{
		Reviews:       make([]dto.ReviewDTO, 0, len(reviews)),
		AverageRating: roundRating(stats.AverageRating),
		ReviewCount:   stats.ReviewCount,
	}
	for i := range reviews {
		resp.Reviews = append(resp.Reviews, dto.NewReviewDTO(&reviews[i]))
	}
	return resp, nil
}

func (s *ReviewServiceImpl) Delete(reviewID string) error {
	if err := s.reviewRepo.Delete(reviewID); err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
