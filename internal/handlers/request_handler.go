package handlers

import (
	"net/http"

	"monprof_backend/internal/auth"
	"monprof_backend/internal/middleware"
	"monprof_backend/internal/repositories"
	"monprof_backend/internal/services"
	"monprof_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	*BaseHandler
	requestService services.RequestService
}

func NewRequestHandler(base *BaseHandler, requestService services.RequestService) *RequestHandler {
	return &RequestHandler{
		BaseHandler:    base,
		requestService: requestService,
	}
}

func (h *RequestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	requests := rg.Group("/requests")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.POST("", middleware.RequireCapability(auth.CapPostRequests), h.Create)
		requests.GET("", middleware.RequireCapability(auth.CapBrowseRequests), h.ListActive)
		requests.GET("/my", h.ListMine)
		requests.GET("/:id", middleware.RequireCapability(auth.CapBrowseRequests), h.GetByID)
		requests.PUT("/:id", h.Update)
		requests.DELETE("/:id", h.Delete)
	}
}

func (h *RequestHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.requestService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *RequestHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.requestService.Update(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *RequestHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.requestService.Delete(c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request deleted"})
}

func (h *RequestHandler) GetByID(c *gin.Context) {
	response, err := h.requestService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListActive is the marketplace feed tutors browse.
func (h *RequestHandler) ListActive(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	filter := repositories.RequestFilter{
		CityID:   c.Query("city_id"),
		Subject:  c.Query("subject"),
		Page:     page,
		PageSize: pageSize,
	}

	response, err := h.requestService.ListActive(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *RequestHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.requestService.ListMine(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": response})
}
