package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Summaries from the local model are stored apart from Gemini's.
const localSummarySuffix = ":local"

type questionRequest struct {
	Question string `json:"question" binding:"required,max=1000"`
}

// GetSummary returns a Gemini summary of a stored plan.
func (h *Handler) GetSummary(c *gin.Context) {
	h.summarize(c, h.GeminiClient, "gemini", "")
}

// GetSummaryV2 returns a local LLM summary of a stored plan.
func (h *Handler) GetSummaryV2(c *gin.Context) {
	h.summarize(c, h.LocalLLMClient, "local llm", localSummarySuffix)
}

// AskQuestion answers a question about a stored plan with Gemini.
func (h *Handler) AskQuestion(c *gin.Context) {
	h.answer(c, h.GeminiClient, "gemini")
}

// AskQuestionV2 answers a question about a stored plan with the local LLM.
func (h *Handler) AskQuestionV2(c *gin.Context) {
	h.answer(c, h.LocalLLMClient, "local llm")
}

func (h *Handler) summarize(c *gin.Context, assistant PlanAssistant, source, keySuffix string) {
	planID := c.Param("plan_id")
	log := logger(c).With().Str("plan_id", planID).Str("source", source).Logger()

	ctx, cancel := h.withTimeout(c)
	defer cancel()

	plan, err := h.PlanStore.GetPlan(ctx, planID)
	if err != nil {
		h.fail(c, err, "database query")
		return
	}

	summary, err := h.PlanStore.GetPlanSummary(ctx, planID+keySuffix)
	if err != nil {
		h.fail(c, err, "database query")
		return
	}
	if summary != "" {
		log.Info().Msg("summary found in store")
		c.JSON(http.StatusOK, gin.H{"plan_id": planID, "summary": summary})
		return
	}

	log.Info().Msg("summary not found in store, generating")
	summary, err = assistant.SummarizePlan(ctx, plan)
	if err != nil {
		h.fail(c, err, fmt.Sprintf("%s summary", source))
		return
	}

	if saveErr := h.PlanStore.SavePlanSummary(ctx, planID+keySuffix, summary); saveErr != nil {
		log.Warn().Err(saveErr).Msg("failed to save plan summary")
	}

	c.JSON(http.StatusOK, gin.H{"plan_id": planID, "summary": summary})
}

func (h *Handler) answer(c *gin.Context, assistant PlanAssistant, source string) {
	planID := c.Param("plan_id")

	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %s", err.Error()), "field": "question"})
		return
	}

	ctx, cancel := h.withTimeout(c)
	defer cancel()

	plan, err := h.PlanStore.GetPlan(ctx, planID)
	if err != nil {
		h.fail(c, err, "database query")
		return
	}

	answer, err := assistant.AnswerQuestion(ctx, plan, req.Question)
	if err != nil {
		h.fail(c, err, fmt.Sprintf("%s answer", source))
		return
	}

	logger(c).Info().Str("plan_id", planID).Str("source", source).Msg("question answered")
	c.JSON(http.StatusOK, gin.H{"plan_id": planID, "question": req.Question, "answer": answer})
}
