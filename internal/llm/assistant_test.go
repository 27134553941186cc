package llm

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydash/internal/storage"
)

// fakeProvider liefert vorgegebene Antworten und zeichnet Anfragen auf
type fakeProvider struct {
	reply    string
	lastMsgs []ChatMessage
}

func (f *fakeProvider) Chat(ctx context.Context, messages []ChatMessage, options *GenerateOptions) (*GenerateResponse, error) {
	f.lastMsgs = messages
	return &GenerateResponse{Content: f.reply}, nil
}

func (f *fakeProvider) IsConfigured() bool { return true }
func (f *fakeProvider) GetName() string    { return "fake" }

func newTestAssistant(t *testing.T, reply string) (*Assistant, *fakeProvider, storage.Storage) {
	t.Helper()
	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Seed())

	fake := &fakeProvider{reply: reply}
	return NewAssistant(fake, store), fake, store
}

func TestChatStoresHistoryEntry(t *testing.T) {
	assistant, fake, store := newTestAssistant(t, "Transformers use attention.")

	entry, err := assistant.Chat(context.Background(), "nlp", "What is attention?")
	require.NoError(t, err)
	assert.Equal(t, "What is attention?", entry.UserMessage)
	assert.Equal(t, "Transformers use attention.", entry.AIReply)
	assert.Equal(t, "nlp", entry.CourseID)
	assert.NotEmpty(t, entry.ID)

	history, err := store.GetChatHistory()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, entry.ID, history[0].ID)

	// Kurskontext landet im System-Prompt
	require.NotEmpty(t, fake.lastMsgs)
	assert.Equal(t, "system", fake.lastMsgs[0].Role)
	assert.Contains(t, fake.lastMsgs[0].Content, "Topics covered:")
}

func TestChatWithoutCourseContext(t *testing.T) {
	assistant, fake, _ := newTestAssistant(t, "Hi!")

	_, err := assistant.Chat(context.Background(), "", "Hello")
	require.NoError(t, err)
	assert.NotContains(t, fake.lastMsgs[0].Content, "Topics covered:")
}

func TestGenerateQuizParsesJSON(t *testing.T) {
	assistant, _, _ := newTestAssistant(t, `{"questions": [{"question": "Q1", "correct": "A"}]}`)

	quiz, err := assistant.GenerateQuiz(context.Background(), "nlp", 0, "attention")
	require.NoError(t, err)
	questions, ok := quiz["questions"].([]interface{})
	require.True(t, ok)
	assert.Len(t, questions, 1)
}

func TestGenerateQuizUnknownCourse(t *testing.T) {
	assistant, _, _ := newTestAssistant(t, "{}")

	_, err := assistant.GenerateQuiz(context.Background(), "gibt-es-nicht", 0, "x")
	assert.Error(t, err)
}

func TestParseQuizReply(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		wantRaw bool
	}{
		{"nacktes JSON", `{"questions": []}`, false},
		{"markdown-zaun", "```json\n{\"questions\": []}\n```", false},
		{"zaun ohne sprache", "```\n{\"questions\": []}\n```", false},
		{"json in prosa", `Here is your quiz: {"questions": []} Good luck!`, false},
		{"reine prosa", "Sorry, I cannot generate a quiz right now.", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz := parseQuizReply(tt.reply)
			if tt.wantRaw {
				assert.Equal(t, tt.reply, quiz["raw"])
			} else {
				_, hasQuestions := quiz["questions"]
				assert.True(t, hasQuestions)
				_, hasRaw := quiz["raw"]
				assert.False(t, hasRaw)
			}
		})
	}
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, stripFences("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, stripFences(`{"a": 1}`))
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, extractJSON(`vorher {"a": 1} nachher`))
	assert.Equal(t, "", extractJSON("kein json hier"))
}

func TestStudyPlanIncludesProgress(t *testing.T) {
	assistant, fake, _ := newTestAssistant(t, "Day 1: review NLP.")

	plan, err := assistant.StudyPlan(context.Background(), "2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, "Day 1: review NLP.", plan)

	require.Len(t, fake.lastMsgs, 2)
	assert.Contains(t, fake.lastMsgs[1].Content, "Today is 2026-03-01")
	assert.Contains(t, fake.lastMsgs[1].Content, "materials completed")
}

func TestExplainFallsBackToGenericCourse(t *testing.T) {
	assistant, fake, _ := newTestAssistant(t, "An explanation.")

	_, err := assistant.Explain(context.Background(), "", "gradients")
	require.NoError(t, err)
	assert.Contains(t, fake.lastMsgs[0].Content, "your course")
}
