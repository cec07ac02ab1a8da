package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nurtureplan/internal/dietplan"
	"nurtureplan/internal/export"
	"nurtureplan/internal/metrics"
)

// CreatePlan validates a profile and returns its plan. A plan already stored
// under the profile's id is returned as is; otherwise it is generated and saved.
func (h *Handler) CreatePlan(c *gin.Context) {
	var profile dietplan.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		resp := gin.H{"error": fmt.Sprintf("invalid request body: %s", err.Error())}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			resp["field"] = typeErr.Field
		}
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	if err := dietplan.Validate(profile); err != nil {
		var ve *dietplan.ValidationError
		if errors.As(err, &ve) {
			metrics.IncValidationFailure(ve.Field)
		}
		h.fail(c, err, "validate profile")
		return
	}

	planID := dietplan.PlanID(profile)
	log := logger(c).With().Str("plan_id", planID).Logger()

	ctx, cancel := h.withTimeout(c)
	defer cancel()

	plan, err := h.PlanStore.GetPlan(ctx, planID)
	if err == nil {
		log.Info().Msg("plan found in store")
		c.JSON(http.StatusOK, dietplan.Record{ID: planID, Plan: plan})
		return
	}
	if !errors.Is(err, dietplan.ErrPlanNotFound) {
		h.fail(c, err, "database query")
		return
	}

	start := time.Now()
	plan, err = dietplan.Generate(profile)
	if err != nil {
		h.fail(c, err, "generate plan")
		return
	}
	metrics.ObserveGeneration(time.Since(start))
	metrics.IncPlanGenerated(string(profile.ProfileType))

	if err := h.PlanStore.SavePlan(ctx, planID, plan); err != nil {
		h.fail(c, err, "save plan")
		return
	}

	log.Info().Str("profile_type", string(profile.ProfileType)).Msg("plan generated")
	c.JSON(http.StatusOK, dietplan.Record{ID: planID, Plan: plan})
}

// ListPlans returns stored plans, optionally filtered by profile type,
// trimester and child age.
func (h *Handler) ListPlans(c *gin.Context) {
	filter := dietplan.ListFilter{
		ProfileType:        dietplan.ProfileType(c.Query("profile_type")),
		PregnancyTrimester: dietplan.Trimester(c.Query("pregnancy_trimester")),
		ChildAge:           dietplan.ChildAge(c.Query("child_age")),
	}

	ctx, cancel := h.withTimeout(c)
	defer cancel()

	records, err := h.PlanStore.ListPlans(ctx, filter)
	if err != nil {
		h.fail(c, err, "database query")
		return
	}
	if records == nil {
		records = []*dietplan.Record{}
	}

	c.JSON(http.StatusOK, records)
}

// GetPlan returns a stored plan by id.
func (h *Handler) GetPlan(c *gin.Context) {
	planID := c.Param("plan_id")

	ctx, cancel := h.withTimeout(c)
	defer cancel()

	plan, err := h.PlanStore.GetPlan(ctx, planID)
	if err != nil {
		h.fail(c, err, "database query")
		return
	}

	c.JSON(http.StatusOK, dietplan.Record{ID: planID, Plan: plan})
}

// ExportPlan returns a stored plan as an xlsx attachment.
func (h *Handler) ExportPlan(c *gin.Context) {
	planID := c.Param("plan_id")

	ctx, cancel := h.withTimeout(c)
	defer cancel()

	plan, err := h.PlanStore.GetPlan(ctx, planID)
	if err != nil {
		h.fail(c, err, "database query")
		return
	}

	var buf bytes.Buffer
	if err := export.WritePlan(&buf, planID, plan); err != nil {
		h.fail(c, err, "export plan")
		return
	}

	name := planID
	if len(name) > 12 {
		name = name[:12]
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="dietplan-%s.xlsx"`, name))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
