package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"studydash/internal/models"
	"studydash/internal/storage"
)

// Assistant ist die Prompt-Schicht über dem Provider: Chat mit Kurskontext,
// Quiz-Generierung, Zusammenfassung, Erklärung und Lernplan.
type Assistant struct {
	provider Provider
	store    storage.Storage
}

// NewAssistant erstellt einen neuen Assistant
func NewAssistant(provider Provider, store storage.Storage) *Assistant {
	return &Assistant{provider: provider, store: store}
}

// Chat beantwortet eine Nachricht mit optionalem Kurskontext und legt den
// Austausch in der Chat-Historie ab.
func (a *Assistant) Chat(ctx context.Context, courseID, message string) (*models.ChatEntry, error) {
	courseInfo := ""
	if courseID != "" {
		if course, err := a.store.GetCourse(courseID); err == nil {
			topics := make([]string, 0, len(course.Weeks))
			for _, w := range course.Weeks {
				topics = append(topics, w.Topic)
			}
			courseInfo = fmt.Sprintf("Course: %s. Topics covered: %s.", course.Name, strings.Join(topics, ", "))
		}
	}

	systemPrompt := "You are StudyDash AI, a helpful study assistant for a university student in Hong Kong. " +
		"You help with course material understanding, exam preparation, and study strategies. " +
		courseInfo + " " +
		"Be concise, clear, and educational. Use examples when helpful. " +
		"If asked about a topic, explain it at an appropriate academic level."

	resp, err := a.provider.Chat(ctx, []ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: message},
	}, nil)
	if err != nil {
		return nil, err
	}

	entry := &models.ChatEntry{
		ID:          uuid.New().String(),
		CourseID:    courseID,
		UserMessage: message,
		AIReply:     resp.Content,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	if err := a.store.SaveChatEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GenerateQuiz erzeugt ein Quiz mit 5 Multiple-Choice-Fragen zu einem Thema
// oder einer Kurswoche. Antwortet das Modell nicht mit parsbarem JSON, wird
// die Rohantwort unter "raw" zurückgegeben.
func (a *Assistant) GenerateQuiz(ctx context.Context, courseID string, week int, topic string) (map[string]interface{}, error) {
	course, err := a.store.GetCourse(courseID)
	if err != nil {
		return nil, err
	}

	if week > 0 {
		for _, w := range course.Weeks {
			if w.Week == week {
				topic = fmt.Sprintf("%s: %s", w.Topic, w.Details)
				break
			}
		}
	}

	systemPrompt := "You are a quiz generator for university courses. Generate a quiz with 5 multiple-choice questions. " +
		"Format your response as JSON with this structure: " +
		`{"questions": [{"question": "...", "options": ["A) ...", "B) ...", "C) ...", "D) ..."], "correct": "A", "explanation": "..."}]}`
	userPrompt := fmt.Sprintf("Generate a quiz about: %s for the course %s.", topic, course.Name)

	resp, err := a.provider.Chat(ctx, []ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	}, &GenerateOptions{Temperature: 0.5, MaxTokens: 2000})
	if err != nil {
		return nil, err
	}

	return parseQuizReply(resp.Content), nil
}

// parseQuizReply versucht, die Modellantwort als JSON zu lesen. Markdown-Zäune
// werden entfernt; als letzter Versuch wird der Bereich zwischen erster '{'
// und letzter '}' geparst. Scheitert alles, kommt {"raw": antwort} zurück.
func parseQuizReply(reply string) map[string]interface{} {
	clean := stripFences(reply)

	var quiz map[string]interface{}
	if err := json.Unmarshal([]byte(clean), &quiz); err == nil {
		return quiz
	}
	if extracted := extractJSON(clean); extracted != "" {
		if err := json.Unmarshal([]byte(extracted), &quiz); err == nil {
			return quiz
		}
	}
	return map[string]interface{}{"raw": reply}
}

// stripFences entfernt einen umschließenden Markdown-Codeblock
func stripFences(s string) string {
	clean := strings.TrimSpace(s)
	if !strings.HasPrefix(clean, "```") {
		return clean
	}
	if idx := strings.Index(clean, "\n"); idx >= 0 {
		clean = clean[idx+1:]
	}
	if idx := strings.LastIndex(clean, "```"); idx >= 0 {
		clean = clean[:idx]
	}
	return strings.TrimSpace(clean)
}

// extractJSON schneidet den Text von der ersten '{' bis zur letzten '}' aus
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// Summarize fasst extrahierten Dokumenttext als Lernnotizen zusammen
func (a *Assistant) Summarize(ctx context.Context, text string) (string, error) {
	resp, err := a.provider.Chat(ctx, []ChatMessage{
		{Role: "system", Content: "You are a study assistant. Summarize the following lecture/document content into clear, concise study notes with key points and important concepts. Use bullet points and headers."},
		{Role: "user", Content: "Summarize this document:\n\n" + text},
	}, &GenerateOptions{MaxTokens: 1500})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// Explain erklärt ein Thema ausführlich im Kontext eines Kurses
func (a *Assistant) Explain(ctx context.Context, courseID, topic string) (string, error) {
	courseName := "your course"
	if courseID != "" {
		if course, err := a.store.GetCourse(courseID); err == nil {
			courseName = course.Name
		}
	}

	systemPrompt := fmt.Sprintf("You are a university tutor for %s. Explain topics clearly with examples, analogies, and key takeaways. Structure your explanation with headers and bullet points.", courseName)

	resp, err := a.provider.Chat(ctx, []ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: "Explain this topic in detail: " + topic},
	}, &GenerateOptions{MaxTokens: 2000})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// StudyPlan erstellt einen Lernplan für die nächsten 7 Tage auf Basis des
// aktuellen Fortschritts und der offenen Deadlines.
func (a *Assistant) StudyPlan(ctx context.Context, today string) (string, error) {
	courses, err := a.store.GetAllCourses()
	if err != nil {
		return "", err
	}
	allMaterials, err := a.store.GetAllMaterials()
	if err != nil {
		return "", err
	}
	allDeadlines, err := a.store.GetAllDeadlines()
	if err != nil {
		return "", err
	}

	var summary []string
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

		var upcoming []string
		for _, d := range allDeadlines {
			if d.CourseID == course.ID && !d.Done && d.Date >= today {
				upcoming = append(upcoming, fmt.Sprintf("%s (%s)", d.Title, d.Date))
				if len(upcoming) == 3 {
					break
				}
			}
		}

		summary = append(summary, fmt.Sprintf(
			"%s: %d/%d materials completed. Upcoming deadlines: %s",
			course.Name, completed, total, strings.Join(upcoming, ", ")))
	}

	resp, err := a.provider.Chat(ctx, []ChatMessage{
		{Role: "system", Content: "You are a study planner. Based on the student's current progress and upcoming deadlines, create a focused, actionable study plan for the next 7 days. Be specific about what to study each day and for how long."},
		{Role: "user", Content: fmt.Sprintf("Today is %s. Here's my progress:\n%s", today, strings.Join(summary, "\n"))},
	}, &GenerateOptions{MaxTokens: 1500})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}
