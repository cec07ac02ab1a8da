package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"nurtureplan/internal/dietplan"
)

// PlanStore defines the interface for diet plan data operations.
type PlanStore interface {
	GetPlan(ctx context.Context, planID string) (*dietplan.DietPlan, error)
	SavePlan(ctx context.Context, planID string, plan *dietplan.DietPlan) error
	ListPlans(ctx context.Context, filter dietplan.ListFilter) ([]*dietplan.Record, error)
	GetPlanSummary(ctx context.Context, planID string) (string, error)
	SavePlanSummary(ctx context.Context, planID, summary string) error
}

// PlanAssistant defines the interface for language models that explain a plan.
// Both the Gemini and the local LLM clients implement it.
type PlanAssistant interface {
	SummarizePlan(ctx context.Context, plan *dietplan.DietPlan) (string, error)
	AnswerQuestion(ctx context.Context, plan *dietplan.DietPlan, question string) (string, error)
}

// DefaultTimeout bounds store and model calls when no timeout is configured.
const DefaultTimeout = 45 * time.Second

// Handler handles HTTP requests.
type Handler struct {
	GeminiClient   PlanAssistant
	LocalLLMClient PlanAssistant
	PlanStore      PlanStore
	ImagesDir      string
	Timeout        time.Duration
}

// NewHandler creates a new Handler.
func NewHandler(geminiClient, localLLMClient PlanAssistant, planStore PlanStore, imagesDir string, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Handler{
		GeminiClient:   geminiClient,
		LocalLLMClient: localLLMClient,
		PlanStore:      planStore,
		ImagesDir:      imagesDir,
		Timeout:        timeout,
	}
}

// Register mounts the handler's routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/dietplans", h.CreatePlan)
	r.GET("/dietplans", h.ListPlans)
	r.GET("/dietplans/:plan_id", h.GetPlan)
	r.GET("/dietplans/:plan_id/export", h.ExportPlan)
	r.GET("/dietplans/:plan_id/summary", h.GetSummary)
	r.POST("/dietplans/:plan_id/questions", h.AskQuestion)
	r.GET("/v2/dietplans/:plan_id/summary", h.GetSummaryV2)
	r.POST("/v2/dietplans/:plan_id/questions", h.AskQuestionV2)
	r.GET("/meals", h.ListMeals)
	r.POST("/meals/:slug/image", h.UploadMealImage)
	r.GET("/healthz", h.Health)
}

// Health reports that the process is serving.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) withTimeout(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.Timeout)
}

func logger(c *gin.Context) *zerolog.Logger {
	return zerolog.Ctx(c.Request.Context())
}

// fail writes the response for err. what names the failed operation.
func (h *Handler) fail(c *gin.Context, err error, what string) {
	var ve *dietplan.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "field": ve.Field})
	case errors.Is(err, dietplan.ErrPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "diet plan not found"})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusRequestTimeout, gin.H{"error": fmt.Sprintf("%s timed out after %s", what, h.Timeout)})
	default:
		logger(c).Error().Err(err).Msg(what + " failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("%s: %s", what, err.Error())})
	}
}
