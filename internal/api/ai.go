package api

import (
	"encoding/json"
	"log"
	"net/http"
	"path/filepath"

	"studydash/internal/models"
	"studydash/internal/pdf"
)

// === AI-Endpunkte ===

func (h *Handler) AIChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message  string `json:"message"`
		CourseID string `json:"course_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, "Ungültige Anfrage", http.StatusBadRequest)
		return
	}

	entry, err := h.assistant.Chat(r.Context(), req.CourseID, req.Message)
	if err != nil {
		errorResponse(w, err.Error(), http.StatusBadGateway)
		return
	}
	jsonResponse(w, entry, http.StatusOK)
}

func (h *Handler) GetChatHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.store.GetChatHistory()
	if err != nil {
		errorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if history == nil {
		history = []models.ChatEntry{}
	}
	jsonResponse(w, history, http.StatusOK)
}

func (h *Handler) AIGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CourseID string `json:"course_id"`
		Week     int    `json:"week"`
		Topic    string `json:"topic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, "Ungültige Anfrage", http.StatusBadRequest)
		return
	}

	quiz, err := h.assistant.GenerateQuiz(r.Context(), req.CourseID, req.Week, req.Topic)
	if err != nil {
		errorResponse(w, "Course not found", http.StatusNotFound)
		return
	}
	jsonResponse(w, quiz, http.StatusOK)
}

// AISummarize extrahiert den Text einer PDF-Datei und lässt ihn als
// Lernnotizen zusammenfassen.
func (h *Handler) AISummarize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MaterialID string `json:"material_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, "Ungültige Anfrage", http.StatusBadRequest)
		return
	}

	material, err := h.store.GetMaterial(req.MaterialID)
	if err != nil || material.FilePath == "" {
		errorResponse(w, "Material not found or no file", http.StatusNotFound)
		return
	}

	fullPath := filepath.Join(h.files.Dir(), filepath.FromSlash(material.FilePath))
	text, err := pdf.ExtractText(fullPath)
	if err != nil {
		errorResponse(w, "Could not read PDF: "+err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.assistant.Summarize(r.Context(), text)
	if err != nil {
		errorResponse(w, err.Error(), http.StatusBadGateway)
		return
	}
	jsonResponse(w, map[string]string{
		"summary":     summary,
		"material_id": req.MaterialID,
	}, http.StatusOK)
}

func (h *Handler) AIExplain(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic    string `json:"topic"`
		CourseID string `json:"course_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, "Ungültige Anfrage", http.StatusBadRequest)
		return
	}

	explanation, err := h.assistant.Explain(r.Context(), req.CourseID, req.Topic)
	if err != nil {
		errorResponse(w, err.Error(), http.StatusBadGateway)
		return
	}
	jsonResponse(w, map[string]string{
		"explanation": explanation,
		"topic":       req.Topic,
	}, http.StatusOK)
}

func (h *Handler) AIStudyPlan(w http.ResponseWriter, r *http.Request) {
	today := h.today()

	plan, err := h.assistant.StudyPlan(r.Context(), today)
	if err != nil {
		errorResponse(w, err.Error(), http.StatusBadGateway)
		return
	}
	jsonResponse(w, map[string]string{
		"plan":         plan,
		"generated_at": today,
	}, http.StatusOK)
}

// AIChatSocket führt den Chat über eine WebSocket-Verbindung: pro
// empfangener Nachricht kommt der gespeicherte Chat-Eintrag zurück.
func (h *Handler) AIChatSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		var req struct {
			Message  string `json:"message"`
			CourseID string `json:"course_id"`
		}
		if err := conn.ReadJSON(&req); err != nil {
			return
		}

		entry, err := h.assistant.Chat(r.Context(), req.CourseID, req.Message)
		if err != nil {
			conn.WriteJSON(map[string]string{"error": err.Error()})
			continue
		}
		if err := conn.WriteJSON(entry); err != nil {
			log.Printf("⚠️ WebSocket-Schreiben fehlgeschlagen: %v", err)
			return
		}
	}
}
