package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydash/internal/config"
	"studydash/internal/llm"
	"studydash/internal/materials"
	"studydash/internal/models"
	"studydash/internal/storage"
)

// fakeProvider antwortet immer mit demselben Text
type fakeProvider struct {
	reply string
}

func (f *fakeProvider) Chat(ctx context.Context, messages []llm.ChatMessage, options *llm.GenerateOptions) (*llm.GenerateResponse, error) {
	return &llm.GenerateResponse{Content: f.reply}, nil
}

func (f *fakeProvider) IsConfigured() bool { return true }
func (f *fakeProvider) GetName() string    { return "fake" }

func newTestServer(t *testing.T) (http.Handler, *storage.SQLiteStorage) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewSQLiteStorage(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Seed())

	cfg := config.Default()
	cfg.MaterialsDir = filepath.Join(dir, "materials")
	files := materials.NewManager(cfg.MaterialsDir, store)

	h := NewHandler(store, &fakeProvider{reply: "ok"}, files, cfg)
	h.now = func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	return NewRouter(h), store
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func addURLMaterial(t *testing.T, router http.Handler, courseID, title, materialType string) models.Material {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("course_id", courseID))
	require.NoError(t, w.WriteField("title", title))
	require.NoError(t, w.WriteField("type", materialType))
	require.NoError(t, w.WriteField("url", "https://example.com/slides"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/materials", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var m models.Material
	decode(t, rec, &m)
	return m
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestServer(t)
	rec := doJSON(t, router, "GET", "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetCourses(t *testing.T) {
	router, _ := newTestServer(t)
	rec := doJSON(t, router, "GET", "/api/courses", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var courses []models.CourseSummary
	decode(t, rec, &courses)
	require.Len(t, courses, 3)
	for _, c := range courses {
		assert.Equal(t, 0, c.TotalMaterials)
		assert.Greater(t, c.TotalWeeks, 0)
	}
}

func TestGetCourseNotFound(t *testing.T) {
	router, _ := newTestServer(t)
	rec := doJSON(t, router, "GET", "/api/course/gibt-es-nicht", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddMaterialFreezesXP(t *testing.T) {
	router, _ := newTestServer(t)

	m := addURLMaterial(t, router, "nlp", "Lab Sheet", "lab_exercise")
	assert.Equal(t, 25, m.XP)
	assert.Equal(t, "https://example.com/slides", m.URL)
	assert.Equal(t, 0, m.Week)
	assert.False(t, m.Completed)
}

func TestAddMaterialUnknownCourse(t *testing.T) {
	router, _ := newTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("course_id", "gibt-es-nicht"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/materials", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToggleMaterialRoundtrip(t *testing.T) {
	router, _ := newTestServer(t)
	m1 := addURLMaterial(t, router, "nlp", "Slides A", "lecture_slides")
	addURLMaterial(t, router, "nlp", "Slides B", "lecture_slides")

	rec := doJSON(t, router, "PATCH", "/api/materials/"+m1.ID+"/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Completed bool                 `json:"completed"`
		XP        int                  `json:"xp"`
		Level     models.LevelProgress `json:"level"`
	}
	decode(t, rec, &resp)
	assert.True(t, resp.Completed)
	assert.Equal(t, 10, resp.XP)
	assert.Equal(t, 1, resp.Level.Current.Level)

	rec = doJSON(t, router, "PATCH", "/api/materials/"+m1.ID+"/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &resp)
	assert.False(t, resp.Completed)
	assert.Equal(t, 0, resp.XP, "doppeltes Umschalten stellt den Stand wieder her")
}

func TestToggleMaterialNotFound(t *testing.T) {
	router, _ := newTestServer(t)
	rec := doJSON(t, router, "PATCH", "/api/materials/fehlt/complete", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCompletedMaterialFloorsXPAtZero(t *testing.T) {
	router, store := newTestServer(t)
	m := addURLMaterial(t, router, "nlp", "Einziges Material", "lecture_slides")

	// Abschluss bringt 10 XP + 10 Wochenbonus
	rec := doJSON(t, router, "PATCH", "/api/materials/"+m.ID+"/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// XP künstlich auf 0 drücken, dann löschen
	require.NoError(t, store.SetXP(0))
	rec = doJSON(t, router, "DELETE", "/api/materials/"+m.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	xp, err := store.GetXP()
	require.NoError(t, err)
	assert.Equal(t, 0, xp, "XP fallen nie unter 0")
}

func TestSetMaterialWeek(t *testing.T) {
	router, _ := newTestServer(t)
	m := addURLMaterial(t, router, "nlp", "Slides", "lecture_slides")

	rec := doJSON(t, router, "PATCH", "/api/materials/"+m.ID+"/week", map[string]int{"week": 4})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Material
	decode(t, rec, &updated)
	assert.Equal(t, 4, updated.Week)

	rec = doJSON(t, router, "PATCH", "/api/materials/fehlt/week", map[string]int{"week": 4})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeMaterialFileMissing(t *testing.T) {
	router, _ := newTestServer(t)
	rec := doJSON(t, router, "GET", "/api/materials/file/nlp/fehlt.pdf", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDeadlinesAnnotatesUrgency(t *testing.T) {
	router, _ := newTestServer(t)
	rec := doJSON(t, router, "GET", "/api/deadlines", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var deadlines []models.Deadline
	decode(t, rec, &deadlines)
	require.NotEmpty(t, deadlines)

	byID := map[string]models.Deadline{}
	for i, d := range deadlines {
		byID[d.ID] = d
		if i > 0 {
			assert.LessOrEqual(t, deadlines[i-1].Date, d.Date, "aufsteigend nach Datum")
		}
	}

	// Stichtag ist der fixierte 2026-03-01
	assert.Equal(t, "overdue", byID["nlp-quiz1"].Urgency)
	assert.Equal(t, "this_week", byID["cvpr-lab5"].Urgency)
	assert.Equal(t, "next_week", byID["cvpr-lab6"].Urgency)
	assert.Equal(t, "future", byID["nlp-exam"].Urgency)
}

func TestToggleDeadline(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, "PATCH", "/api/deadlines/nlp-quiz1/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var d models.Deadline
	decode(t, rec, &d)
	assert.True(t, d.Done)

	rec = doJSON(t, router, "PATCH", "/api/deadlines/fehlt/toggle", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStudyTaskDefaults(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, "POST", "/api/study-tasks", map[string]string{
		"date":  "2026-03-02",
		"title": "Review attention",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var task models.StudyTask
	decode(t, rec, &task)
	assert.Equal(t, 1.0, task.Hours)
	assert.Equal(t, "review", task.Category)
	assert.False(t, task.Done)

	rec = doJSON(t, router, "PATCH", "/api/study-tasks/"+task.ID+"/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &task)
	assert.True(t, task.Done)

	rec = doJSON(t, router, "DELETE", "/api/study-tasks/"+task.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetStudyTasksIncludesCategories(t *testing.T) {
	router, _ := newTestServer(t)
	rec := doJSON(t, router, "GET", "/api/study-tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Tasks      []models.StudyTask             `json:"tasks"`
		Categories map[string]models.TaskCategory `json:"categories"`
	}
	decode(t, rec, &resp)
	assert.NotEmpty(t, resp.Tasks)
	assert.Contains(t, resp.Categories, "review")
}

func TestGetStatsHandlesEmptyCourses(t *testing.T) {
	router, _ := newTestServer(t)
	rec := doJSON(t, router, "GET", "/api/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats models.Stats
	decode(t, rec, &stats)
	assert.Equal(t, 0, stats.XP)
	assert.Equal(t, 0, stats.MaterialProgress, "keine Division durch Null bei 0 Materialien")
	require.Contains(t, stats.PerCourse, "nlp")
	assert.Equal(t, 0, stats.PerCourse["nlp"].Progress)
	assert.Equal(t, 1, stats.Level.Current.Level)
	assert.NotEmpty(t, stats.Levels)
}

func TestGetStatsCountsProgress(t *testing.T) {
	router, _ := newTestServer(t)
	m1 := addURLMaterial(t, router, "nlp", "A", "lecture_slides")
	addURLMaterial(t, router, "nlp", "B", "lecture_slides")

	rec := doJSON(t, router, "PATCH", "/api/materials/"+m1.ID+"/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "GET", "/api/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats models.Stats
	decode(t, rec, &stats)
	assert.Equal(t, 2, stats.TotalMaterials)
	assert.Equal(t, 1, stats.CompletedMaterials)
	assert.Equal(t, 50, stats.MaterialProgress)
	assert.Equal(t, 50, stats.PerCourse["nlp"].Progress)
}

func TestAIChatPersistsHistory(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, "POST", "/api/ai/chat", map[string]string{
		"message":   "What is attention?",
		"course_id": "nlp",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var entry models.ChatEntry
	decode(t, rec, &entry)
	assert.Equal(t, "ok", entry.AIReply)

	rec = doJSON(t, router, "GET", "/api/ai/chat/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var history []models.ChatEntry
	decode(t, rec, &history)
	require.Len(t, history, 1)
	assert.Equal(t, entry.ID, history[0].ID)
}

func TestAIQuizUnknownCourse(t *testing.T) {
	router, _ := newTestServer(t)
	rec := doJSON(t, router, "POST", "/api/ai/quiz", map[string]string{"course_id": "fehlt"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAIStudyPlan(t *testing.T) {
	router, _ := newTestServer(t)
	rec := doJSON(t, router, "POST", "/api/ai/study-plan", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	decode(t, rec, &resp)
	assert.Equal(t, "ok", resp["plan"])
	assert.Equal(t, "2026-03-01", resp["generated_at"])
}

func TestAISummarizeMissingMaterial(t *testing.T) {
	router, _ := newTestServer(t)
	rec := doJSON(t, router, "POST", "/api/ai/summarize", map[string]string{"material_id": "fehlt"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
