package handlers

import (
	"errors"
	"net/http"

	"lawmate-backend/models"
	"lawmate-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChatHandler handles HTTP requests for submissions and setup status.
type ChatHandler struct {
	adviceService *service.AdviceService
	gate          *service.SetupGate
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(adviceService *service.AdviceService, gate *service.SetupGate) *ChatHandler {
	return &ChatHandler{
		adviceService: adviceService,
		gate:          gate,
	}
}

// AskRequest represents the request body for submitting a question.
type AskRequest struct {
	Question string `json:"question" binding:"required"`
	Category string `json:"category"`
}

// Ask handles POST /api/sessions/:id/ask
func (h *ChatHandler) Ask(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	result, err := h.adviceService.Ask(c.Request.Context(), service.AskRequest{
		SessionID: id,
		Category:  models.Category(req.Category),
		Question:  req.Question,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyQuestion):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "EMPTY_QUESTION",
					"message": "Question must not be empty",
				},
			})
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Session not found",
				},
			})
		case errors.Is(err, service.ErrSessionBusy):
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "SESSION_BUSY",
					"message": "A submission is already running for this session",
				},
			})
		case errors.Is(err, service.ErrSetupInProgress):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "SETUP_IN_PROGRESS",
					"message": "Provider setup is still running, try again shortly",
				},
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ASK_FAILED",
					"message": err.Error(),
				},
			})
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"success":       true,
		"submission_id": result.SubmissionID.String(),
		"category":      result.Category,
	})
}

// GetSubmission handles GET /api/submissions/:id
func (h *ChatHandler) GetSubmission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_SUBMISSION_ID",
				"message": "Invalid submission id format",
			},
		})
		return
	}

	sub, err := h.adviceService.GetSubmission(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Submission not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"submission": sub,
	})
}

// SetupStatus handles GET /api/setup/status
func (h *ChatHandler) SetupStatus(c *gin.Context) {
	status, message, lastLine := h.gate.Status()
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    status,
		"message":   message,
		"last_line": lastLine,
	})
}
