package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nurtureplan/internal/api"
	"nurtureplan/internal/config"
	"nurtureplan/internal/dietplan"
	"nurtureplan/internal/metrics"
)

// mockAssistant is a mock of the Gemini and local LLM clients.
type mockAssistant struct {
	returnError error
	summary     string
}

// SummarizePlan mocks the SummarizePlan method.
func (m *mockAssistant) SummarizePlan(ctx context.Context, plan *dietplan.DietPlan) (string, error) {
	if m.returnError != nil {
		return "", m.returnError
	}
	return m.summary, nil
}

// AnswerQuestion mocks the AnswerQuestion method.
func (m *mockAssistant) AnswerQuestion(ctx context.Context, plan *dietplan.DietPlan, question string) (string, error) {
	if m.returnError != nil {
		return "", m.returnError
	}
	return "mock answer to " + question, nil
}

// mockPlanStore is an in-memory mock of the plan store.
type mockPlanStore struct {
	plans     map[string]*dietplan.DietPlan
	summaries map[string]string
}

func newMockPlanStore() *mockPlanStore {
	return &mockPlanStore{plans: make(map[string]*dietplan.DietPlan), summaries: make(map[string]string)}
}

func (m *mockPlanStore) GetPlan(ctx context.Context, planID string) (*dietplan.DietPlan, error) {
	plan, ok := m.plans[planID]
	if !ok {
		return nil, dietplan.ErrPlanNotFound
	}
	return plan, nil
}

func (m *mockPlanStore) SavePlan(ctx context.Context, planID string, plan *dietplan.DietPlan) error {
	m.plans[planID] = plan
	return nil
}

func (m *mockPlanStore) ListPlans(ctx context.Context, filter dietplan.ListFilter) ([]*dietplan.Record, error) {
	records := make([]*dietplan.Record, 0, len(m.plans))
	for id, plan := range m.plans {
		records = append(records, &dietplan.Record{ID: id, Plan: plan})
	}
	return records, nil
}

func (m *mockPlanStore) GetPlanSummary(ctx context.Context, planID string) (string, error) {
	return m.summaries[planID], nil
}

func (m *mockPlanStore) SavePlanSummary(ctx context.Context, planID, summary string) error {
	m.summaries[planID] = summary
	return nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
			RequestTimeout: 5 * time.Second,
		},
		Images: config.ImagesConfig{Dir: t.TempDir()},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) (*gin.Engine, *mockPlanStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	metrics.Register()

	store := newMockPlanStore()
	handler := api.NewHandler(&mockAssistant{summary: "mock gemini summary"}, &mockAssistant{summary: "mock local summary"}, store, cfg.Images.Dir, cfg.Server.RequestTimeout)
	return setupRouter(handler, cfg), store
}

func TestPlanLifecycle(t *testing.T) {
	router, store := newTestRouter(t, testConfig(t))

	body := []byte(`{"age":2,"height":88,"weight":12,"profileType":"child","childAge":"1-3y"}`)
	req, _ := http.NewRequest(http.MethodPost, "/dietplans", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		ID   string             `json:"id"`
		Plan *dietplan.DietPlan `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 1000.0, created.Plan.CalorieTarget)
	assert.Equal(t, dietplan.MacroBreakdown{Protein: 15, Carbs: 45, Fats: 40}, created.Plan.MacroBreakdown)
	assert.Contains(t, store.plans, created.ID)

	req, _ = http.NewRequest(http.MethodGet, "/dietplans/"+created.ID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest(http.MethodGet, "/v2/dietplans/"+created.ID+"/summary", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock local summary")

	req, _ = http.NewRequest(http.MethodGet, "/metrics", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `nurtureplan_plans_generated_total{profile_type="child"}`)
}

func TestCORS(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(t))

	req, _ := http.NewRequest(http.MethodOptions, "/dietplans", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req, _ = http.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStaticImages(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.Images.Dir, "meals"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Images.Dir, "meals", "bedtime-milk.png"), []byte("png"), 0644))

	router, _ := newTestRouter(t, cfg)

	req, _ := http.NewRequest(http.MethodGet, "/images/meals/bedtime-milk.png", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png", w.Body.String())
}

func TestSetupLogger(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	setupLogger(config.LoggingConfig{Level: "debug"})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	setupLogger(config.LoggingConfig{Level: "not-a-level"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	setupLogger(config.LoggingConfig{})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
