package counsel

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"aspirebot-backend/internal/shared/server/middleware"
	"aspirebot-backend/internal/shared/server/respond"
)

// Handler exposes the counseling endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the counsel routes on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/counsel", h.counsel)
}

type counselRequest struct {
	Interests     string `json:"interests"`
	SkillsToLearn string `json:"skills_to_learn"`
	CareerGoals   string `json:"career_goals"`
}

func (h *Handler) counsel(c *gin.Context) {
	var req counselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON.", nil)
		return
	}

	pc := PromptContext{
		Interests:     strings.TrimSpace(req.Interests),
		SkillsToLearn: strings.TrimSpace(req.SkillsToLearn),
		CareerGoals:   strings.TrimSpace(req.CareerGoals),
	}

	combined, err := h.svc.Counsel(c.Request.Context(), pc, middleware.RequestIDFromContext(c))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			respond.Error(c, http.StatusBadRequest, "validation_failed", "All fields are required.", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to generate recommendations.", nil)
		return
	}

	payload := gin.H{}
	failures := 0
	for name, result := range combined {
		key := name + "_recommendation"
		if result.Err != nil {
			failures++
			payload[key] = gin.H{"error": "Failed to generate " + name + " recommendation."}
			continue
		}
		payload[key] = result.Recommendation
	}
	if failures == len(combined) {
		respond.Error(c, http.StatusBadGateway, "provider_error", "Failed to generate recommendations.", nil)
		return
	}

	respond.OK(c, payload)
}
