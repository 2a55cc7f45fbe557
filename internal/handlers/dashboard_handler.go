package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"monprof_backend/internal/config"
	"monprof_backend/internal/middleware"
	"monprof_backend/internal/services"
	"monprof_backend/internal/services/dto"
	"monprof_backend/internal/storage"
	"monprof_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DashboardHandler struct {
	*BaseHandler
	profileService services.ProfileService
	storage        storage.Storage
}

func NewDashboardHandler(base *BaseHandler, profileService services.ProfileService, store storage.Storage) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:    base,
		profileService: profileService,
		storage:        store,
	}
}

func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	{
		dashboard.GET("", h.GetDashboard)
		dashboard.PUT("", h.UpdateDashboard)
		dashboard.POST("/documents/:kind", h.UploadDocument)
	}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.profileService.GetDashboard(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *DashboardHandler) UpdateDashboard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateDashboardRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.profileService.UpdateDashboard(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// UploadDocument receives one tutor file: the profile photo or one of
// the verification documents. Photos land in the public area, documents
// go behind the authorized file route.
func (h *DashboardHandler) UploadDocument(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	kind := c.Param("kind")
	allowedTypes, known := config.UploadRules.AllowedTypes[kind]
	if !known || kind == "article_image" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Unknown document kind"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file field"))
		return
	}

	if fileHeader.Size > config.UploadRules.MaxSize {
		apperrors.HandleError(c, apperrors.ErrFileTooLarge)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !typeAllowed(contentType, allowedTypes) {
		apperrors.HandleError(c, apperrors.ErrInvalidFileType)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	name := fmt.Sprintf("%s_%s%s", kind, uuid.NewString()[:8], ext)

	var path string
	if kind == "photo" {
		path = fmt.Sprintf("public/tutors/%s/%s", userID, name)
	} else {
		path = fmt.Sprintf("docs/%s/%s", userID, name)
	}

	if err := h.storage.Save(c.Request.Context(), path, file, contentType); err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}

	url, err := h.storage.GetURL(c.Request.Context(), path)
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}

	if err := h.profileService.SetTutorDocument(userID, kind, url); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

func typeAllowed(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if t == contentType {
			return true
		}
	}
	return false
}
