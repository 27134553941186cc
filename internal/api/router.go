package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter erstellt den HTTP-Router mit allen Endpoints
func NewRouter(h *Handler) http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()

	// System
	api.HandleFunc("/health", h.HealthCheck).Methods("GET")

	// Kurse
	api.HandleFunc("/courses", h.GetCourses).Methods("GET")
	api.HandleFunc("/course/{id}", h.GetCourse).Methods("GET")

	// Materialien
	api.HandleFunc("/materials", h.AddMaterial).Methods("POST")
	api.HandleFunc("/materials/scan", h.ScanMaterials).Methods("POST")
	api.HandleFunc("/materials/automap", h.AutoMapMaterials).Methods("POST")
	api.HandleFunc("/materials/file/{path:.*}", h.ServeMaterialFile).Methods("GET")
	api.HandleFunc("/materials/{id}", h.DeleteMaterial).Methods("DELETE")
	api.HandleFunc("/materials/{id}/complete", h.ToggleMaterialComplete).Methods("PATCH")
	api.HandleFunc("/materials/{id}/week", h.SetMaterialWeek).Methods("PATCH")

	// Deadlines
	api.HandleFunc("/deadlines", h.GetDeadlines).Methods("GET")
	api.HandleFunc("/deadlines/{id}/toggle", h.ToggleDeadline).Methods("PATCH")

	// Lernaufgaben
	api.HandleFunc("/study-tasks", h.GetStudyTasks).Methods("GET")
	api.HandleFunc("/study-tasks", h.AddStudyTask).Methods("POST")
	api.HandleFunc("/study-tasks/{id}/toggle", h.ToggleStudyTask).Methods("PATCH")
	api.HandleFunc("/study-tasks/{id}", h.DeleteStudyTask).Methods("DELETE")

	// Statistik
	api.HandleFunc("/stats", h.GetStats).Methods("GET")

	// AI
	api.HandleFunc("/ai/chat", h.AIChat).Methods("POST")
	api.HandleFunc("/ai/chat/history", h.GetChatHistory).Methods("GET")
	api.HandleFunc("/ai/chat/ws", h.AIChatSocket).Methods("GET")
	api.HandleFunc("/ai/quiz", h.AIGenerateQuiz).Methods("POST")
	api.HandleFunc("/ai/summarize", h.AISummarize).Methods("POST")
	api.HandleFunc("/ai/explain", h.AIExplain).Methods("POST")
	api.HandleFunc("/ai/study-plan", h.AIStudyPlan).Methods("POST")

	// CORS für lokale Entwicklung
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	return c.Handler(r)
}
