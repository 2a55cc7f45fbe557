package handlers

import (
	"net/http"

	"monprof_backend/internal/middleware"
	"monprof_backend/internal/repositories"
	"monprof_backend/internal/services"
	"monprof_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	*BaseHandler
	blogService services.BlogService
}

func NewBlogHandler(base *BaseHandler, blogService services.BlogService) *BlogHandler {
	return &BlogHandler{
		BaseHandler: base,
		blogService: blogService,
	}
}

func (h *BlogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	articles := rg.Group("/articles")
	articles.Use(middleware.OptionalAuthMiddleware())
	{
		articles.GET("", h.ListArticles)
		articles.GET("/:slug", h.GetArticle)
	}

	interactions := rg.Group("/articles/:slug")
	interactions.Use(middleware.AuthMiddleware())
	{
		interactions.POST("/comments", h.AddComment)
		interactions.POST("/like", h.ToggleLike)
	}

	rg.GET("/categories", h.ListCategories)
}

func (h *BlogHandler) ListArticles(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	filter := repositories.ArticleFilter{
		CategorySlug: c.Query("category"),
		Page:         page,
		PageSize:     pageSize,
	}

	response, err := h.blogService.ListPublished(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BlogHandler) GetArticle(c *gin.Context) {
	viewerID := middleware.GetUserID(c)

	response, err := h.blogService.GetBySlug(c.Param("slug"), viewerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BlogHandler) AddComment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.blogService.AddComment(c.Param("slug"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *BlogHandler) ToggleLike(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.blogService.ToggleLike(c.Param("slug"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *BlogHandler) ListCategories(c *gin.Context) {
	response, err := h.blogService.ListCategories()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": response})
}
