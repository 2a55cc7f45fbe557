package handlers

import (
	"net/http"

	"monprof_backend/internal/middleware"
	"monprof_backend/internal/models"
	"monprof_backend/internal/repositories"
	"monprof_backend/internal/services"
	"monprof_backend/internal/services/dto"
	"monprof_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AdminHandler is the whole back-office surface.
type AdminHandler struct {
	*BaseHandler
	adminService      services.AdminService
	moderationService services.ModerationService
	blogService       services.BlogService
	reviewService     services.ReviewService
}

func NewAdminHandler(
	base *BaseHandler,
	adminService services.AdminService,
	moderationService services.ModerationService,
	blogService services.BlogService,
	reviewService services.ReviewService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:       base,
		adminService:      adminService,
		moderationService: moderationService,
		blogService:       blogService,
		reviewService:     reviewService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.StaffOnly())
	{
		admin.GET("/dashboard", h.Dashboard)

		admin.GET("/tutors", h.ListTutorsByStatus)
		admin.POST("/tutors/:id/moderate", h.ModerateTutor)
		admin.POST("/tutors/:id/suspend", h.SuspendTutor)

		admin.GET("/users", h.ListUsers)
		admin.POST("/users", h.CreateAdmin)
		admin.PUT("/users/:id/active", h.SetUserActive)
		admin.DELETE("/users/:id", h.DeleteUser)

		admin.GET("/countries", h.ListCountries)
		admin.POST("/countries", h.CreateCountry)
		admin.PUT("/countries/:id", h.UpdateCountry)
		admin.DELETE("/countries/:id", h.DeleteCountry)

		admin.POST("/cities", h.CreateCity)
		admin.POST("/quartiers", h.CreateQuartier)
		admin.POST("/subjects", h.CreateSubject)
		admin.POST("/levels", h.CreateLevel)

		admin.DELETE("/requests/:id", h.DeleteRequest)
		admin.DELETE("/reviews/:id", h.DeleteReview)

		admin.POST("/articles", h.CreateArticle)
		admin.PUT("/articles/:id", h.UpdateArticle)
		admin.DELETE("/articles/:id", h.DeleteArticle)
		admin.POST("/categories", h.CreateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)
		admin.DELETE("/comments/:id", h.DeleteComment)
	}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	response, err := h.adminService.GetDashboard()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListTutorsByStatus is the moderation queue, oldest submission first.
func (h *AdminHandler) ListTutorsByStatus(c *gin.Context) {
	status := models.TutorStatus(c.DefaultQuery("status", string(models.TutorStatusPending)))
	page, pageSize := ParsePagination(c)

	response, err := h.moderationService.ListByStatus(status, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) ModerateTutor(c *gin.Context) {
	var req dto.ModerateTutorRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	var (
		response *dto.TutorProfileDTO
		err      error
	)
	switch req.Action {
	case dto.ModerationActionValidate:
		response, err = h.moderationService.Validate(c.Param("id"))
	case dto.ModerationActionReject:
		response, err = h.moderationService.Reject(c.Param("id"), req.Note)
	default:
		err = apperrors.NewBadRequestError("Unknown moderation action")
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) SuspendTutor(c *gin.Context) {
	var req struct {
		Note string `json:"note"`
	}
	if err := c.ShouldBind(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	response, err := h.moderationService.Suspend(c.Param("id"), req.Note)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	filter := repositories.UserFilter{
		Role:     models.UserRole(c.Query("role")),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}
	if active := c.Query("is_active"); active != "" {
		v := active == "true"
		filter.IsActive = &v
	}

	response, err := h.adminService.ListUsers(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAdminRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.adminService.CreateAdmin(actorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AdminHandler) SetUserActive(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	response, err := h.adminService.SetUserActive(actorID, c.Param("id"), *req.IsActive)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.adminService.DeleteUser(actorID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *AdminHandler) ListCountries(c *gin.Context) {
	response, err := h.adminService.ListCountries()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"countries": response})
}

func (h *AdminHandler) CreateCountry(c *gin.Context) {
	var req dto.CreateCountryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.adminService.CreateCountry(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AdminHandler) UpdateCountry(c *gin.Context) {
	var req dto.UpdateCountryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.adminService.UpdateCountry(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) DeleteCountry(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.adminService.DeleteCountry(actorID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Country deleted"})
}

func (h *AdminHandler) CreateCity(c *gin.Context) {
	var req dto.CreateCityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.adminService.CreateCity(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AdminHandler) CreateQuartier(c *gin.Context) {
	var req dto.CreateQuartierRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.adminService.CreateQuartier(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AdminHandler) CreateSubject(c *gin.Context) {
	var req dto.CreateSubjectRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.adminService.CreateSubject(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AdminHandler) CreateLevel(c *gin.Context) {
	var req dto.CreateLevelRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.adminService.CreateLevel(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AdminHandler) DeleteRequest(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.adminService.DeleteRequest(actorID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request deleted"})
}

// DeleteReview removes an abusive or off-topic review.
func (h *AdminHandler) DeleteReview(c *gin.Context) {
	if err := h.reviewService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

func (h *AdminHandler) CreateArticle(c *gin.Context) {
	authorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateArticleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.blogService.CreateArticle(authorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AdminHandler) UpdateArticle(c *gin.Context) {
	var req dto.UpdateArticleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.blogService.UpdateArticle(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) DeleteArticle(c *gin.Context) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.adminService.DeleteArticle(actorID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article deleted"})
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.blogService.CreateCategory(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	if err := h.blogService.DeleteCategory(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

func (h *AdminHandler) DeleteComment(c *gin.Context) {
	if err := h.blogService.DeleteComment(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
