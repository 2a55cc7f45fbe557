package handlers

import (
	"net/http"

	"monprof_backend/internal/middleware"
	"monprof_backend/internal/models"
	"monprof_backend/internal/repositories"
	"monprof_backend/internal/services"
	"monprof_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// TutorHandler serves the public directory and the reviews under it.
type TutorHandler struct {
	*BaseHandler
	profileService services.ProfileService
	reviewService  services.ReviewService
	userRepo       repositories.UserRepository
}

func NewTutorHandler(
	base *BaseHandler,
	profileService services.ProfileService,
	reviewService services.ReviewService,
	userRepo repositories.UserRepository,
) *TutorHandler {
	return &TutorHandler{
		BaseHandler:    base,
		profileService: profileService,
		reviewService:  reviewService,
		userRepo:       userRepo,
	}
}

func (h *TutorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tutors := rg.Group("/tutors")
	tutors.Use(middleware.OptionalAuthMiddleware())
	{
		tutors.GET("", h.Search)
		tutors.GET("/:id", h.GetDetail)
		tutors.GET("/:id/reviews", h.ListReviews)
	}

	reviews := rg.Group("/tutors/:id/reviews")
	reviews.Use(middleware.AuthMiddleware())
	{
		reviews.POST("", h.CreateReview)
	}
}

func (h *TutorHandler) Search(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	criteria := repositories.TutorSearchCriteria{
		Subject:  c.Query("subject"),
		Level:    c.Query("level"),
		CityID:   c.Query("city_id"),
		Page:     page,
		PageSize: pageSize,
	}
	if online := c.Query("online"); online != "" {
		v := online == "true"
		criteria.Online = &v
	}

	response, err := h.profileService.SearchTutors(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *TutorHandler) GetDetail(c *gin.Context) {
	profileID := c.Param("id")

	viewer := h.loadViewer(c)
	response, err := h.profileService.GetTutorDetail(profileID, viewer)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *TutorHandler) ListReviews(c *gin.Context) {
	profileID := c.Param("id")

	response, err := h.reviewService.ListByTutor(profileID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *TutorHandler) CreateReview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.reviewService.Create(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// loadViewer resolves the optional authenticated viewer; anonymous
// requests get nil and see masked contact fields.
func (h *TutorHandler) loadViewer(c *gin.Context) *models.User {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return nil
	}
	viewer, err := h.userRepo.FindByID(userID)
	if err != nil {
		return nil
	}
	return viewer
}
