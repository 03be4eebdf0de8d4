package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amsa221/softskills-project/internal/services"
	"github.com/Amsa221/softskills-project/internal/services/dto"
)

type NewsletterHandler struct {
	*BaseHandler
	newsletterService services.NewsletterService
}

func NewNewsletterHandler(base *BaseHandler, newsletterService services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{
		BaseHandler:       base,
		newsletterService: newsletterService,
	}
}

func (h *NewsletterHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/newsletter", h.Subscribe)
	r.POST("/contact", h.Contact)
}

func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	sub, err := h.newsletterService.Subscribe(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Subscription registered",
		"email":   sub.Email,
	})
}

func (h *NewsletterHandler) Contact(c *gin.Context) {
	var req dto.ContactRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.newsletterService.Contact(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Message sent"})
}
