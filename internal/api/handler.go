package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"studydash/internal/config"
	"studydash/internal/llm"
	"studydash/internal/materials"
	"studydash/internal/models"
	"studydash/internal/progress"
	"studydash/internal/seed"
	"studydash/internal/storage"
)

// Handler verwaltet alle API-Endpunkte
type Handler struct {
	store     storage.Storage
	assistant *llm.Assistant
	files     *materials.Manager
	config    *config.Config
	upgrader  websocket.Upgrader

	// now liefert das aktuelle Datum; in Tests austauschbar
	now func() time.Time
}

// NewHandler erstellt einen neuen API-Handler
func NewHandler(store storage.Storage, provider llm.Provider, files *materials.Manager, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		assistant: llm.NewAssistant(provider, store),
		files:     files,
		config:    cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		now: time.Now,
	}
}

// Response-Helper
func jsonResponse(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResponse(w http.ResponseWriter, message string, status int) {
	jsonResponse(w, map[string]string{"error": message}, status)
}

func (h *Handler) today() string {
	return h.now().Format("2006-01-02")
}

// === System ===

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]interface{}{
		"status":    "ok",
		"timestamp": h.now().Format(time.RFC3339),
	}, http.StatusOK)
}

// === Kurse ===

func (h *Handler) GetCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.store.GetAllCourses()
	if err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	allMaterials, err := h.store.GetAllMaterials()
	if err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summaries := make([]models.CourseSummary, 0, len(courses))
	for _, course := range courses {
		total, completed := 0, 0
		for _, m := range allMaterials {
			if m.CourseID != course.ID {
				continue
			}
			total++
			if m.Completed {
				completed++
			}
		}

		totalWeeks := 0
		for _, week := range course.Weeks {
			if week.Status != "holiday" {
				totalWeeks++
			}
		}

		summaries = append(summaries, models.CourseSummary{
			Course:             course,
			TotalMaterials:     total,
			CompletedMaterials: completed,
			TotalWeeks:         totalWeeks,
		})
	}
	jsonResponse(w, summaries, http.StatusOK)
}

func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	course, err := h.store.GetCourse(id)
	if err != nil {
		errorResponse(w, "Course not found", http.StatusNotFound)
		return
	}

	courseMaterials, err := h.store.GetMaterialsByCourse(id)
	if err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if courseMaterials == nil {
		courseMaterials = []models.Material{}
	}

	completed := 0
	for _, m := range courseMaterials {
		if m.Completed {
			completed++
		}
	}

	jsonResponse(w, models.CourseDetail{
		Course:         *course,
		Materials:      courseMaterials,
		TotalMaterials: len(courseMaterials),
		CompletedCount: completed,
	}, http.StatusOK)
}

// === Materialien ===

// AddMaterial legt ein Material an: per Datei-Upload (multipart) oder als
// Link. Der XP-Wert wird beim Anlegen aus dem Typ eingefroren.
func (h *Handler) AddMaterial(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		errorResponse(w, "Ungültige Anfrage", http.StatusBadRequest)
		return
	}

	courseID := r.FormValue("course_id")
	if courseID == "" {
		errorResponse(w, "course_id fehlt", http.StatusBadRequest)
		return
	}
	if _, err := h.store.GetCourse(courseID); err != nil {
		errorResponse(w, "Course not found", http.StatusNotFound)
		return
	}

	materialType := r.FormValue("type")
	if materialType == "" {
		materialType = "other"
	}
	week, _ := strconv.Atoi(r.FormValue("week"))
	title := r.FormValue("title")

	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()

		material, err := h.files.SaveUpload(courseID, title, materialType, header.Filename, file)
		if err != nil {
			errorResponse(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if week != 0 {
			if err := h.store.SetMaterialWeek(material.ID, week); err == nil {
				material.Week = week
			}
		}
		jsonResponse(w, material, http.StatusCreated)
		return
	}

	// Kein Upload: Material als Link anlegen
	material := &models.Material{
		ID:        uuid.New().String(),
		CourseID:  courseID,
		Week:      week,
		Title:     title,
		Type:      materialType,
		XP:        seed.XPForType(materialType),
		URL:       r.FormValue("url"),
		CreatedAt: h.now().UTC().Format(time.RFC3339),
	}
	if err := h.store.SaveMaterial(material); err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(w, material, http.StatusCreated)
}

func (h *Handler) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	material, err := h.store.DeleteMaterial(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			errorResponse(w, "Not found", http.StatusNotFound)
			return
		}
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.files.RemoveFile(material)
	jsonResponse(w, map[string]bool{"ok": true}, http.StatusOK)
}

// ToggleMaterialComplete kippt den Abschluss-Status und liefert den neuen
// XP-Stand samt Stufe zurück.
func (h *Handler) ToggleMaterialComplete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	completed, xp, err := h.store.ToggleMaterial(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			errorResponse(w, "Not found", http.StatusNotFound)
			return
		}
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResponse(w, map[string]interface{}{
		"completed": completed,
		"xp":        xp,
		"level":     progress.GetLevel(xp),
	}, http.StatusOK)
}

func (h *Handler) SetMaterialWeek(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Week int `json:"week"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, "Ungültige Anfrage", http.StatusBadRequest)
		return
	}
	if req.Week < 0 {
		errorResponse(w, "Ungültige Woche", http.StatusBadRequest)
		return
	}

	if err := h.store.SetMaterialWeek(id, req.Week); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			errorResponse(w, "Not found", http.StatusNotFound)
			return
		}
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	material, err := h.store.GetMaterial(id)
	if err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(w, material, http.StatusOK)
}

// ServeMaterialFile liefert gespeicherte Dateien unterhalb des
// Materials-Verzeichnisses aus. Pfade außerhalb werden abgelehnt.
func (h *Handler) ServeMaterialFile(w http.ResponseWriter, r *http.Request) {
	relPath := mux.Vars(r)["path"]

	full, err := h.files.ResolveFile(relPath)
	if err != nil {
		errorResponse(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Disposition", "inline; filename=\""+filepath.Base(full)+"\"")
	http.ServeFile(w, r, full)
}

func (h *Handler) ScanMaterials(w http.ResponseWriter, r *http.Request) {
	added, err := h.files.Scan()
	if err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(w, map[string]int{"new_materials": added}, http.StatusOK)
}

func (h *Handler) AutoMapMaterials(w http.ResponseWriter, r *http.Request) {
	mapped, err := h.files.AutoMapWeeks()
	if err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(w, map[string]int{"mapped": mapped}, http.StatusOK)
}

// === Deadlines ===

// GetDeadlines liefert alle Deadlines aufsteigend nach Datum, jeweils mit
// Dringlichkeits-Einstufung relativ zu heute.
func (h *Handler) GetDeadlines(w http.ResponseWriter, r *http.Request) {
	deadlines, err := h.store.GetAllDeadlines()
	if err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	today := h.today()
	for i := range deadlines {
		deadlines[i].Urgency = progress.ClassifyUrgency(deadlines[i].Date, today, deadlines[i].Done)
	}
	if deadlines == nil {
		deadlines = []models.Deadline{}
	}
	jsonResponse(w, deadlines, http.StatusOK)
}

func (h *Handler) ToggleDeadline(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deadline, err := h.store.GetDeadline(id)
	if err != nil {
		errorResponse(w, "Not found", http.StatusNotFound)
		return
	}

	deadline.Done = !deadline.Done
	if err := h.store.SetDeadlineDone(id, deadline.Done); err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(w, deadline, http.StatusOK)
}

// === Lernaufgaben ===

func (h *Handler) GetStudyTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.store.GetAllStudyTasks()
	if err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if tasks == nil {
		tasks = []models.StudyTask{}
	}
	jsonResponse(w, map[string]interface{}{
		"tasks":      tasks,
		"categories": seed.TaskCategories,
	}, http.StatusOK)
}

func (h *Handler) AddStudyTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date     string  `json:"date"`
		CourseID string  `json:"course_id"`
		Title    string  `json:"title"`
		Hours    float64 `json:"hours"`
		Category string  `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, "Ungültige Anfrage", http.StatusBadRequest)
		return
	}

	if req.Hours == 0 {
		req.Hours = 1
	}
	if req.Category == "" {
		req.Category = "review"
	}

	task := &models.StudyTask{
		ID:       uuid.New().String(),
		Date:     req.Date,
		CourseID: req.CourseID,
		Title:    req.Title,
		Hours:    req.Hours,
		Category: req.Category,
		Done:     false,
	}
	if err := h.store.SaveStudyTask(task); err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(w, task, http.StatusCreated)
}

func (h *Handler) ToggleStudyTask(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	task, err := h.store.GetStudyTask(id)
	if err != nil {
		errorResponse(w, "Not found", http.StatusNotFound)
		return
	}

	task.Done = !task.Done
	if err := h.store.SaveStudyTask(task); err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(w, task, http.StatusOK)
}

func (h *Handler) DeleteStudyTask(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.store.DeleteStudyTask(id); err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResponse(w, map[string]bool{"ok": true}, http.StatusOK)
}

// === Statistik ===

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	xp, err := h.store.GetXP()
	if err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	allMaterials, err := h.store.GetAllMaterials()
	if err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	deadlines, err := h.store.GetAllDeadlines()
	if err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	courses, err := h.store.GetAllCourses()
	if err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	totalMaterials, completedMaterials := len(allMaterials), 0
	for _, m := range allMaterials {
		if m.Completed {
			completedMaterials++
		}
	}

	completedDeadlines := 0
	for _, d := range deadlines {
		if d.Done {
			completedDeadlines++
		}
	}

	perCourse := make(map[string]models.CourseProgress, len(courses))
	for _, course := range courses {
		total, completed := 0, 0
		for _, m := range allMaterials {
			if m.CourseID != course.ID {
				continue
			}
			total++
			if m.Completed {
				completed++
			}
		}
		perCourse[course.ID] = models.CourseProgress{
			Name:      course.Name,
			Total:     total,
			Completed: completed,
			Progress:  progress.Percent(completed, total),
		}
	}

	jsonResponse(w, models.Stats{
		XP:                 xp,
		Level:              progress.GetLevel(xp),
		TotalMaterials:     totalMaterials,
		CompletedMaterials: completedMaterials,
		MaterialProgress:   progress.Percent(completedMaterials, totalMaterials),
		TotalDeadlines:     len(deadlines),
		CompletedDeadlines: completedDeadlines,
		PerCourse:          perCourse,
		XPValues:           seed.XPValues,
		Levels:             seed.Levels,
	}, http.StatusOK)
}
