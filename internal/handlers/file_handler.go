package handlers

import (
	"io"
	"net/http"
	"strconv"

	"monprof_backend/internal/middleware"
	"monprof_backend/internal/models"
	"monprof_backend/internal/storage"
	"monprof_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler streams stored files. Photos and article images live in
// the public area; tutor verification documents are served only to
// their owner and staff.
type FileHandler struct {
	*BaseHandler
	storage storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		storage:     store,
	}
}

func (h *FileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	files := rg.Group("/files")
	{
		files.GET("/public/*path", h.ServePublic)
		files.GET("/docs/:userId/*path", middleware.AuthMiddleware(), h.ServeDocument)
	}
}

func (h *FileHandler) ServePublic(c *gin.Context) {
	h.stream(c, "public/"+c.Param("path"))
}

// ServeDocument serves a restricted tutor document.
func (h *FileHandler) ServeDocument(c *gin.Context) {
	ownerID := c.Param("userId")

	callerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if callerID != ownerID {
		roleVal, _ := c.Get("role")
		role, _ := roleVal.(models.UserRole)
		if role != models.UserRoleAdmin {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied"))
			return
		}
	}

	h.stream(c, "docs/"+ownerID+"/"+c.Param("path"))
}

func (h *FileHandler) stream(c *gin.Context, path string) {
	ctx := c.Request.Context()

	reader, err := h.storage.Get(ctx, path)
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrNotFound(err))
		return
	}
	defer reader.Close()

	if size, err := h.storage.GetSize(ctx, path); err == nil {
		c.Header("Content-Length", strconv.FormatInt(size, 10))
	}
	c.Header("Content-Disposition", "inline")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Headers already sent; nothing more to do than record it.
		_ = c.Error(err)
	}
}
