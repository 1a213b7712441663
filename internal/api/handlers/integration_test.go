package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/readysethire/readysethire/internal/api/middleware"
	"github.com/readysethire/readysethire/internal/application"
	"github.com/readysethire/readysethire/internal/config"
	"github.com/readysethire/readysethire/internal/postgrest"
	"github.com/readysethire/readysethire/internal/repository"
	"github.com/readysethire/readysethire/internal/testutils"
	"github.com/readysethire/readysethire/internal/titlecache"
)

type env struct {
	backend *testutils.FakeBackend
	router  *gin.Engine
	token   string
}

func setupEnv(t *testing.T) *env {
	t.Helper()

	backend := testutils.NewFakeBackend()
	t.Cleanup(backend.Close)

	config.JwtSecret = "test-secret"
	config.Issuer = "readysethire-test"
	middleware.Init()

	client := postgrest.New(backend.URL(), "test-token", "s1234567")
	repos := repository.New(client)
	cache := titlecache.NewMemoryCache()
	generator := application.NewGeneratorService("unused", "http://localhost:1/", "none", application.LoadQuestionBank(""))
	services := application.New(repos, cache, generator)

	token, err := middleware.GenerateToken("admin", time.Hour)
	require.NoError(t, err)

	return &env{
		backend: backend,
		router:  testutils.SetupRouter(services),
		token:   token,
	}
}

func (e *env) do(t *testing.T, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestInterviewRoundTrip(t *testing.T) {
	e := setupEnv(t)

	w := e.do(t, http.MethodPost, "/interviews", map[string]any{
		"title":    "Backend Screen",
		"job_role": "Go Engineer",
		"status":   "Published",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = e.do(t, http.MethodGet, "/interviews", nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	require.Equal(t, "Backend Screen", listed[0]["title"])
	require.Equal(t, "Go Engineer", listed[0]["job_role"])
	require.Equal(t, "Published", listed[0]["status"])
}

func TestListSurfacesBackendErrorVerbatim(t *testing.T) {
	e := setupEnv(t)

	e.backend.FailNext["GET /interview"] = http.StatusInternalServerError
	w := e.do(t, http.MethodGet, "/interviews", nil, true)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "injected failure")

	// A user-triggered retry is just the same fetch again.
	w = e.do(t, http.MethodGet, "/interviews", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteApplicantRemovesRow(t *testing.T) {
	e := setupEnv(t)
	e.backend.Seed("applicant", map[string]any{
		"id": int64(7), "title": "Mr", "firstname": "Sam", "surname": "Lee",
		"interview_id": int64(1), "interview_status": "Not Started",
	})

	w := e.do(t, http.MethodDelete, "/applicants/7", nil, true)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, 0, e.backend.Count("applicant"))
}

func TestDeleteApplicantFailureKeepsRow(t *testing.T) {
	e := setupEnv(t)
	e.backend.Seed("applicant", map[string]any{"id": int64(7), "interview_id": int64(1)})

	e.backend.FailNext["DELETE /applicant"] = http.StatusBadRequest
	w := e.do(t, http.MethodDelete, "/applicants/7", nil, true)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, 1, e.backend.Count("applicant"))
}

func TestCreateInterviewBindErrorsAreFriendly(t *testing.T) {
	e := setupEnv(t)

	w := e.do(t, http.MethodPost, "/interviews", map[string]any{
		"status": "Launched",
	}, true)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	require.Contains(t, body, "title is required")
	require.Contains(t, body, "job role is required")
	require.Contains(t, body, "status must be one of:")
	require.NotContains(t, body, "CreateInterviewDTO")
}

func TestConsoleRoutesRequireAuth(t *testing.T) {
	e := setupEnv(t)
	w := e.do(t, http.MethodGet, "/interviews", nil, false)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin(t *testing.T) {
	e := setupEnv(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
	require.NoError(t, err)
	config.AdminUsername = "admin"
	config.AdminPasswordHash = string(hash)

	w := e.do(t, http.MethodPost, "/login", map[string]any{"username": "admin", "password": "hunter2"}, false)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), "token")

	w = e.do(t, http.MethodPost, "/login", map[string]any{"username": "admin", "password": "wrong"}, false)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTakeInterviewEndToEnd(t *testing.T) {
	e := setupEnv(t)
	e.backend.Seed("applicant", map[string]any{
		"id": int64(7), "title": "Ms", "firstname": "Ada", "surname": "Nguyen",
		"interview_id": int64(4), "interview_status": "Not Started",
	})
	for i := 1; i <= 3; i++ {
		e.backend.Seed("question", map[string]any{
			"id": int64(i), "interview_id": int64(4),
			"question": fmt.Sprintf("Q%d", i), "difficulty": "Easy",
		})
	}

	// Start the public session.
	w := e.do(t, http.MethodPost, "/sessions", map[string]any{"applicant_id": 7}, false)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var view struct {
		Token     string `json:"token"`
		Questions []struct {
			ID int64 `json:"id"`
		} `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Questions, 3)

	// Answer question 1 only, skip 2 and 3.
	w = e.do(t, http.MethodPut, "/sessions/"+view.Token+"/questions/1/answer",
		map[string]any{"text": "My answer to the first question."}, false)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = e.do(t, http.MethodPost, "/sessions/"+view.Token+"/submit", nil, false)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result struct {
		Submitted []int64 `json:"submitted"`
		Skipped   []int64 `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Equal(t, []int64{1}, result.Submitted)
	require.Len(t, result.Skipped, 2)

	// Exactly one answer row was created, for question 1.
	rows := e.backend.Rows("applicant_answer")
	require.Len(t, rows, 1)
	require.EqualValues(t, 1, rows[0]["question_id"])

	// The applicant is now Completed.
	applicants := e.backend.Rows("applicant")
	require.Equal(t, "Completed", applicants[0]["interview_status"])

	// Exactly one answer-create call went to the backend.
	creates := 0
	for _, r := range e.backend.Requests {
		if strings.HasPrefix(r, "POST /applicant_answer") {
			creates++
		}
	}
	require.Equal(t, 1, creates)
}

func TestSubmitWithNoAnswersMakesNoAnswerCalls(t *testing.T) {
	e := setupEnv(t)
	e.backend.Seed("applicant", map[string]any{
		"id": int64(7), "interview_id": int64(4), "interview_status": "Not Started",
	})
	e.backend.Seed("question", map[string]any{
		"id": int64(1), "interview_id": int64(4), "question": "Q1", "difficulty": "Easy",
	})

	w := e.do(t, http.MethodPost, "/sessions", map[string]any{"applicant_id": 7}, false)
	require.Equal(t, http.StatusCreated, w.Code)
	var view struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))

	before := len(e.backend.Requests)
	w = e.do(t, http.MethodPost, "/sessions/"+view.Token+"/submit", nil, false)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, before, len(e.backend.Requests), "rejected submission must not touch the backend")
}
