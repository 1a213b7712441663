package application_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/readysethire/readysethire/internal/application"
)

// fakeCompletionServer answers chat completion calls with the given content.
func fakeCompletionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func newGenerator(srvURL string) *application.GeneratorService {
	bank := application.LoadQuestionBank("")
	return application.NewGeneratorService("test-key", srvURL+"/", "gpt-4o-mini", bank)
}

func TestGenerateParsesFencedJSONArray(t *testing.T) {
	content := "Here are your questions:\n```json\n" +
		`[{"question":"What is a goroutine?","difficulty":"Easy"},` +
		`{"question":"Explain channel deadlocks.","difficulty":"Advanced"}]` +
		"\n```"
	srv := fakeCompletionServer(t, content)
	defer srv.Close()

	got := newGenerator(srv.URL).GenerateInterviewQuestions(context.Background(), "Go Engineer", "backend role", 2)
	require.Len(t, got, 2)
	require.Equal(t, "What is a goroutine?", got[0].Question)
	require.Equal(t, "Advanced", got[1].Difficulty)
}

func TestGenerateFallsBackOnInvalidJSON(t *testing.T) {
	srv := fakeCompletionServer(t, "Sorry, I can only answer in prose today.")
	defer srv.Close()

	got := newGenerator(srv.URL).GenerateInterviewQuestions(context.Background(), "Go Engineer", "backend role", 5)
	require.Len(t, got, 8, "fallback set is the fixed 8-item bank")
}

func TestGenerateFallsBackOnTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":{"message":"overloaded"}}`)
	}))
	defer srv.Close()

	got := newGenerator(srv.URL).GenerateInterviewQuestions(context.Background(), "Go Engineer", "", 3)
	require.Len(t, got, 8)
}

func TestGenerateNormalizesUnknownDifficulty(t *testing.T) {
	content := `[{"question":"Q","difficulty":"Impossible"},{"question":"  ","difficulty":"Easy"}]`
	srv := fakeCompletionServer(t, content)
	defer srv.Close()

	got := newGenerator(srv.URL).GenerateInterviewQuestions(context.Background(), "Role", "", 2)
	require.Len(t, got, 1, "blank questions are dropped")
	require.Equal(t, "Intermediate", got[0].Difficulty)
}

func TestLoadQuestionBankDefaults(t *testing.T) {
	bank := application.LoadQuestionBank("")
	require.Len(t, bank.Fallback, 8)
	require.NotEmpty(t, bank.PromptTemplate)

	// Unreadable path keeps the built-in bank rather than failing.
	bank = application.LoadQuestionBank("/nonexistent/questions.yaml")
	require.Len(t, bank.Fallback, 8)
}
