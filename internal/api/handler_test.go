package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"nurtureplan/internal/dietplan"
	"nurtureplan/internal/export"
)

// MockPlanStore is a mock implementation of the PlanStore interface.
type MockPlanStore struct {
	plans     map[string]*dietplan.DietPlan
	summaries map[string]string
	filter    dietplan.ListFilter
	getErr    error
	saves     int
}

func newMockPlanStore() *MockPlanStore {
	return &MockPlanStore{plans: make(map[string]*dietplan.DietPlan), summaries: make(map[string]string)}
}

func (m *MockPlanStore) GetPlan(ctx context.Context, planID string) (*dietplan.DietPlan, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	plan, ok := m.plans[planID]
	if !ok {
		return nil, dietplan.ErrPlanNotFound
	}
	return plan, nil
}

func (m *MockPlanStore) SavePlan(ctx context.Context, planID string, plan *dietplan.DietPlan) error {
	m.saves++
	m.plans[planID] = plan
	return nil
}

func (m *MockPlanStore) ListPlans(ctx context.Context, filter dietplan.ListFilter) ([]*dietplan.Record, error) {
	m.filter = filter
	var records []*dietplan.Record
	for id, plan := range m.plans {
		if filter.ProfileType != "" && plan.UserProfile.ProfileType != filter.ProfileType {
			continue
		}
		records = append(records, &dietplan.Record{ID: id, Plan: plan})
	}
	return records, nil
}

func (m *MockPlanStore) GetPlanSummary(ctx context.Context, planID string) (string, error) {
	return m.summaries[planID], nil
}

func (m *MockPlanStore) SavePlanSummary(ctx context.Context, planID, summary string) error {
	m.summaries[planID] = summary
	return nil
}

// MockAssistant is a mock implementation of the PlanAssistant interface.
type MockAssistant struct {
	summary   string
	answer    string
	err       error
	calls     int
	questions []string
}

func (m *MockAssistant) SummarizePlan(ctx context.Context, plan *dietplan.DietPlan) (string, error) {
	m.calls++
	return m.summary, m.err
}

func (m *MockAssistant) AnswerQuestion(ctx context.Context, plan *dietplan.DietPlan, question string) (string, error) {
	m.calls++
	m.questions = append(m.questions, question)
	return m.answer, m.err
}

type testEnv struct {
	router *gin.Engine
	store  *MockPlanStore
	gemini *MockAssistant
	local  *MockAssistant
	images string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		store:  newMockPlanStore(),
		gemini: &MockAssistant{summary: "gemini summary", answer: "gemini answer"},
		local:  &MockAssistant{summary: "local summary", answer: "local answer"},
		images: t.TempDir(),
	}
	h := NewHandler(env.gemini, env.local, env.store, env.images, 0)

	env.router = gin.New()
	env.router.Use(RequestID())
	h.Register(env.router)
	return env
}

func (e *testEnv) do(method, target string, body []byte, contentType string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, target, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postJSON(target, body string) *httptest.ResponseRecorder {
	return e.do(http.MethodPost, target, []byte(body), "application/json")
}

func (e *testEnv) seedPlan(t *testing.T) string {
	t.Helper()
	profile := dietplan.UserProfile{ProfileType: dietplan.Pregnant, PregnancyTrimester: dietplan.SecondTrimester, Age: 28, Height: 165, Weight: 68}
	plan, err := dietplan.Generate(profile)
	require.NoError(t, err)
	id := dietplan.PlanID(profile)
	e.store.plans[id] = plan
	return id
}

type recordResponse struct {
	ID   string             `json:"id"`
	Plan *dietplan.DietPlan `json:"plan"`
}

func TestCreatePlan(t *testing.T) {
	env := newTestEnv(t)

	w := env.postJSON("/dietplans", `{"age":28,"height":165,"weight":68,"profileType":"pregnant","pregnancyTrimester":"second","foodAllergies":"peanuts"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp recordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	want := dietplan.PlanID(dietplan.UserProfile{ProfileType: dietplan.Pregnant, PregnancyTrimester: dietplan.SecondTrimester, Age: 28, Height: 165, Weight: 68})
	assert.Equal(t, want, resp.ID)
	assert.InDelta(t, 1750.25, resp.Plan.CalorieTarget, 1e-9)
	assert.Len(t, resp.Plan.DailyPlans, 7)
	assert.Equal(t, 1, env.store.saves)
	assert.Contains(t, env.store.plans, want)
}

func TestCreatePlan_ReturnsStoredPlan(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedPlan(t)
	env.store.plans[id].Recommendations = []string{"stored"}

	w := env.postJSON("/dietplans", `{"age":28,"height":165,"weight":68,"profileType":"pregnant","pregnancyTrimester":"second"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp recordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"stored"}, resp.Plan.Recommendations)
	assert.Equal(t, 0, env.store.saves)
}

func TestCreatePlan_LogsStoreMissAndHitAlike(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = orig }()

	env := newTestEnv(t)
	body := `{"age":30,"height":160,"weight":65,"profileType":"breastfeeding"}`
	require.Equal(t, http.StatusOK, env.postJSON("/dietplans", body).Code)
	require.Equal(t, http.StatusOK, env.postJSON("/dietplans", body).Code)

	var entries []map[string]interface{}
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(raw), &entry))
		entries = append(entries, entry)
	}
	require.Len(t, entries, 2)
	assert.Equal(t, "plan generated", entries[0]["message"])
	assert.Equal(t, "plan found in store", entries[1]["message"])
	for _, entry := range entries {
		assert.Equal(t, "info", entry["level"])
		assert.NotEmpty(t, entry["request_id"])
		assert.Equal(t, dietplan.PlanID(dietplan.UserProfile{ProfileType: dietplan.Breastfeeding, Age: 30, Height: 160, Weight: 65}), entry["plan_id"])
	}
}

func TestCreatePlan_StrayChildAgeIsNotStored(t *testing.T) {
	env := newTestEnv(t)

	w := env.postJSON("/dietplans", `{"age":25,"height":170,"weight":60,"profileType":"planning","childAge":"1-3y"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp recordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dietplan.PlanID(dietplan.UserProfile{ProfileType: dietplan.Planning, Age: 25, Height: 170, Weight: 60}), resp.ID)
	assert.Empty(t, resp.Plan.UserProfile.ChildAge)
	assert.Empty(t, env.store.plans[resp.ID].UserProfile.ChildAge)
}

func TestCreatePlan_InvalidProfile(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing profile type", `{"age":28,"height":165,"weight":68}`, "profileType"},
		{"unknown profile type", `{"age":28,"height":165,"weight":68,"profileType":"athlete"}`, "profileType"},
		{"zero weight", `{"age":28,"height":165,"weight":0,"profileType":"planning"}`, "weight"},
		{"negative height", `{"age":28,"height":-1,"weight":60,"profileType":"planning"}`, "height"},
		{"bad trimester", `{"age":28,"height":165,"weight":60,"profileType":"pregnant","pregnancyTrimester":"fourth"}`, "pregnancyTrimester"},
		{"bad child age", `{"age":2,"height":90,"weight":12,"profileType":"child","childAge":"9-12y"}`, "childAge"},
		{"age as string", `{"age":"twenty","height":165,"weight":60,"profileType":"planning"}`, "age"},
		{"adult below height range", `{"age":90,"height":50,"weight":10,"profileType":"planning"}`, "height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			w := env.postJSON("/dietplans", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantField, resp["field"])
			assert.NotEmpty(t, resp["error"])
			assert.Equal(t, 0, env.store.saves)
		})
	}
}

func TestCreatePlan_StoreErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"timeout", context.DeadlineExceeded, http.StatusRequestTimeout},
		{"failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.store.getErr = tt.err

			w := env.postJSON("/dietplans", `{"age":30,"height":160,"weight":65,"profileType":"breastfeeding"}`)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, 0, env.store.saves)
		})
	}
}

func TestGetPlan(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedPlan(t)

	w := env.do(http.MethodGet, "/dietplans/"+id, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp recordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, dietplan.Pregnant, resp.Plan.UserProfile.ProfileType)

	w = env.do(http.MethodGet, "/dietplans/unknown", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPlans(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/dietplans?profile_type=child", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	env.seedPlan(t)
	w = env.do(http.MethodGet, "/dietplans?profile_type=pregnant&pregnancy_trimester=second&child_age=", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var records []recordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, 1)
	assert.Equal(t, dietplan.ListFilter{ProfileType: dietplan.Pregnant, PregnancyTrimester: dietplan.SecondTrimester}, env.store.filter)
}

func TestExportPlan(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedPlan(t)

	w := env.do(http.MethodGet, "/dietplans/"+id+"/export", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.ContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "dietplan-"+id[:12]+".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), export.SheetMealPlan)

	w = env.do(http.MethodGet, "/dietplans/unknown/export", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSummary_StoresResult(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedPlan(t)

	for i := 0; i < 2; i++ {
		w := env.do(http.MethodGet, "/dietplans/"+id+"/summary", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"plan_id":"`+id+`","summary":"gemini summary"}`, w.Body.String())
	}
	assert.Equal(t, 1, env.gemini.calls)
	assert.Equal(t, "gemini summary", env.store.summaries[id])

	w := env.do(http.MethodGet, "/v2/dietplans/"+id+"/summary", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"plan_id":"`+id+`","summary":"local summary"}`, w.Body.String())
	assert.Equal(t, 1, env.local.calls)
	assert.Equal(t, "local summary", env.store.summaries[id+localSummarySuffix])
}

func TestGetSummary_Errors(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/dietplans/unknown/summary", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, env.gemini.calls)

	id := env.seedPlan(t)
	env.gemini.err = context.DeadlineExceeded
	w = env.do(http.MethodGet, "/dietplans/"+id+"/summary", nil, "")
	assert.Equal(t, http.StatusRequestTimeout, w.Code)

	env.local.err = errors.New("model unavailable")
	w = env.do(http.MethodGet, "/v2/dietplans/"+id+"/summary", nil, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, env.store.summaries)
}

func TestAskQuestion(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedPlan(t)

	w := env.postJSON("/dietplans/"+id+"/questions", `{"question":"Is tuna safe?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"plan_id":"`+id+`","question":"Is tuna safe?","answer":"gemini answer"}`, w.Body.String())
	assert.Equal(t, []string{"Is tuna safe?"}, env.gemini.questions)

	w = env.postJSON("/v2/dietplans/"+id+"/questions", `{"question":"More iron?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "local answer")

	w = env.postJSON("/dietplans/"+id+"/questions", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.postJSON("/dietplans/unknown/questions", `{"question":"Hello?"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListMeals(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/meals", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var catalog map[string]dietplan.Meal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &catalog))
	assert.Len(t, catalog, len(dietplan.CatalogSlugs()))
	assert.Equal(t, "greek-yogurt-parfait", catalog["greek-yogurt-parfait"].Slug)
}

func multipartImage(t *testing.T, filename string, data []byte) ([]byte, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return body.Bytes(), mw.FormDataContentType()
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadMealImage(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartImage(t, "Parfait.PNG", pngBytes(t, 1600, 400))
	w := env.do(http.MethodPost, "/meals/greek-yogurt-parfait/image", body, contentType)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"slug":"greek-yogurt-parfait","image_url":"/images/meals/greek-yogurt-parfait.png"}`, w.Body.String())

	f, err := os.Open(filepath.Join(env.images, "meals", "greek-yogurt-parfait.png"))
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
}

func TestUploadMealImage_Rejects(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartImage(t, "photo.png", pngBytes(t, 10, 10))
	w := env.do(http.MethodPost, "/meals/no-such-meal/image", body, contentType)
	assert.Equal(t, http.StatusNotFound, w.Code)

	body, contentType = multipartImage(t, "photo.gif", pngBytes(t, 10, 10))
	w = env.do(http.MethodPost, "/meals/greek-yogurt-parfait/image", body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, contentType = multipartImage(t, "photo.jpg", []byte("not an image"))
	w = env.do(http.MethodPost, "/meals/greek-yogurt-parfait/image", body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "failed to decode image"))

	w = env.do(http.MethodPost, "/meals/greek-yogurt-parfait/image", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/healthz", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	id := uuid.NewString()
	req, _ := http.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, id, w.Header().Get(RequestIDHeader))
}
