package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/model"
	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/repository"
	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/service"
)

type EmailHandler struct {
	processor *service.ProcessorService
	triage    *service.TriageService
	emailRepo *repository.EmailRepository
}

func NewEmailHandler(processor *service.ProcessorService, triage *service.TriageService, emailRepo *repository.EmailRepository) *EmailHandler {
	return &EmailHandler{
		processor: processor,
		triage:    triage,
		emailRepo: emailRepo,
	}
}

// CreateEmail handles POST /emails
func (h *EmailHandler) CreateEmail(c *gin.Context) {
	var req struct {
		Sender   string     `json:"sender" binding:"required"`
		Subject  string     `json:"subject" binding:"required"`
		Body     string     `json:"body" binding:"required"`
		SentDate *time.Time `json:"sent_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: sender, subject, body"})
		return
	}

	email, err := h.processor.ProcessEmail(c.Request.Context(), model.RawEmail{
		Sender:   req.Sender,
		Subject:  req.Subject,
		Body:     req.Body,
		SentDate: req.SentDate,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":   email,
		"message": "Email processed successfully",
	})
}

// ListEmails handles GET /emails
func (h *EmailHandler) ListEmails(c *gin.Context) {
	emails, err := h.emailRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch emails"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"emails": emails})
}

// GetEmail handles GET /emails/:id
func (h *EmailHandler) GetEmail(c *gin.Context) {
	email, err := h.emailRepo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Email not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch email"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": email})
}

// UpdateStatus handles PUT /emails/:id/status
func (h *EmailHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status model.Status `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: status"})
		return
	}
	if !model.IsValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	email, err := h.triage.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Email not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update email status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":   email,
		"message": "Email status updated successfully",
	})
}

// UpdateResponse handles PUT /emails/:id/response
func (h *EmailHandler) UpdateResponse(c *gin.Context) {
	var req struct {
		AIResponse string `json:"ai_response"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	email, err := h.triage.UpdateResponse(c.Request.Context(), c.Param("id"), req.AIResponse)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Email not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update AI response"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":   email,
		"message": "AI response updated successfully",
	})
}
