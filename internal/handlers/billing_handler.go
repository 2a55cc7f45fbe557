package handlers

import (
	"net/http"

	"monprof_backend/internal/auth"
	"monprof_backend/internal/middleware"
	"monprof_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	*BaseHandler
	billingService services.BillingService
}

func NewBillingHandler(base *BaseHandler, billingService services.BillingService) *BillingHandler {
	return &BillingHandler{
		BaseHandler:    base,
		billingService: billingService,
	}
}

func (h *BillingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	billing := rg.Group("/billing")
	billing.Use(middleware.AuthMiddleware())
	billing.Use(middleware.RequireCapability(auth.CapUnlockContacts))
	{
		billing.POST("/unlock/:tutorId", h.Unlock)
		billing.GET("/unlocks", h.ListUnlocks)
	}
}

// Unlock grants access to a tutor's contact details. Safe to call
// twice; the second call reports already_unlocked.
func (h *BillingHandler) Unlock(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.billingService.UnlockContact(userID, c.Param("tutorId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	status := http.StatusCreated
	if response.AlreadyUnlocked {
		status = http.StatusOK
	}
	c.JSON(status, response)
}

func (h *BillingHandler) ListUnlocks(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.billingService.ListUnlocks(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unlocks": response})
}
