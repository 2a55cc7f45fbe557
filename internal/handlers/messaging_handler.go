package handlers

import (
	"net/http"

	"monprof_backend/internal/middleware"
	"monprof_backend/internal/services"
	"monprof_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MessagingHandler struct {
	*BaseHandler
	messagingService services.MessagingService
}

func NewMessagingHandler(base *BaseHandler, messagingService services.MessagingService) *MessagingHandler {
	return &MessagingHandler{
		BaseHandler:      base,
		messagingService: messagingService,
	}
}

func (h *MessagingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	messages := rg.Group("/messages")
	messages.Use(middleware.AuthMiddleware())
	{
		messages.POST("/start/:userId", h.StartThread)
		messages.GET("/inbox", h.GetInbox)
		messages.GET("/threads/:id", h.OpenThread)
		messages.POST("/threads/:id", h.PostMessage)
		messages.GET("/unread-count", h.CountUnread)
	}
}

func (h *MessagingHandler) StartThread(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.messagingService.StartThread(userID, c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MessagingHandler) GetInbox(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.messagingService.GetInbox(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"threads": response})
}

// OpenThread returns the conversation and marks incoming messages read.
func (h *MessagingHandler) OpenThread(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.messagingService.OpenThread(c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MessagingHandler) PostMessage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PostMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.messagingService.PostMessage(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *MessagingHandler) CountUnread(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.messagingService.CountUnread(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
