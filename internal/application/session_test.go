package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/readysethire/readysethire/internal/application"
	"github.com/readysethire/readysethire/internal/domain/answer"
	"github.com/readysethire/readysethire/internal/domain/applicant"
	"github.com/readysethire/readysethire/internal/domain/question"
	"github.com/readysethire/readysethire/internal/postgrest"
	"github.com/readysethire/readysethire/internal/repository"
	"github.com/readysethire/readysethire/internal/repository/mock"
)

func setupSessionMocks(t *testing.T) (*application.SessionService, *mock.MockApplicantRepo, *mock.MockQuestionRepo, *mock.MockAnswerRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockApplicant := mock.NewMockApplicantRepo(ctrl)
	mockQuestion := mock.NewMockQuestionRepo(ctrl)
	mockAnswer := mock.NewMockAnswerRepo(ctrl)

	repos := &repository.Repos{
		Applicant: mockApplicant,
		Question:  mockQuestion,
		Answer:    mockAnswer,
	}
	return application.NewSessionService(repos), mockApplicant, mockQuestion, mockAnswer
}

func startThreeQuestionSession(t *testing.T, svc *application.SessionService,
	mockApplicant *mock.MockApplicantRepo, mockQuestion *mock.MockQuestionRepo) application.SessionView {

	appl := applicant.Applicant{ID: 7, InterviewID: 4, InterviewStatus: string(applicant.StatusNotStarted)}
	questions := []question.Question{
		{ID: 1, InterviewID: 4, Question: "Q1", Difficulty: "Easy"},
		{ID: 2, InterviewID: 4, Question: "Q2", Difficulty: "Intermediate"},
		{ID: 3, InterviewID: 4, Question: "Q3", Difficulty: "Advanced"},
	}

	mockApplicant.EXPECT().Get(gomock.Any(), int64(7)).Return(appl, nil)
	mockQuestion.EXPECT().ListByInterview(gomock.Any(), int64(4)).Return(questions, nil)

	view, err := svc.Start(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error starting session: %v", err)
	}
	return view
}

func TestStartFailsWithoutQuestions(t *testing.T) {
	svc, mockApplicant, mockQuestion, _ := setupSessionMocks(t)

	appl := applicant.Applicant{ID: 7, InterviewID: 4}
	mockApplicant.EXPECT().Get(gomock.Any(), int64(7)).Return(appl, nil)
	mockQuestion.EXPECT().ListByInterview(gomock.Any(), int64(4)).Return([]question.Question{}, nil)

	_, err := svc.Start(context.Background(), 7)
	if !errors.Is(err, application.ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestSubmitRejectedWithNoContent(t *testing.T) {
	svc, mockApplicant, mockQuestion, _ := setupSessionMocks(t)
	view := startThreeQuestionSession(t, svc, mockApplicant, mockQuestion)

	// Whitespace-only text does not count as an answer.
	if _, err := svc.SetTypedAnswer(view.Token, 1, "   "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No answer repo expectations are set: any backend call fails the test.
	_, err := svc.Submit(context.Background(), view.Token)
	if !errors.Is(err, application.ErrNoAnswers) {
		t.Fatalf("expected ErrNoAnswers, got %v", err)
	}
}

func TestSubmitSkipsEmptyQuestions(t *testing.T) {
	svc, mockApplicant, mockQuestion, mockAnswer := setupSessionMocks(t)
	view := startThreeQuestionSession(t, svc, mockApplicant, mockQuestion)

	if _, err := svc.SetTypedAnswer(view.Token, 1, "I have five years of Go experience."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mockAnswer.EXPECT().DeleteByApplicant(gomock.Any(), int64(7)).Return(nil)
	mockAnswer.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a answer.Answer) (answer.Answer, error) {
			if a.QuestionID != 1 {
				t.Fatalf("expected answer for question 1 only, got %d", a.QuestionID)
			}
			if a.ApplicantID != 7 || a.InterviewID != 4 {
				t.Fatalf("answer row has wrong references: %+v", a)
			}
			if a.Answer != "I have five years of Go experience." {
				t.Fatalf("unexpected answer text %q", a.Answer)
			}
			a.ID = 100
			return a, nil
		})
	mockApplicant.EXPECT().Update(gomock.Any(), int64(7),
		map[string]any{"interview_status": string(applicant.StatusCompleted)}).
		Return(applicant.Applicant{ID: 7, InterviewStatus: string(applicant.StatusCompleted)}, nil)

	result, err := svc.Submit(context.Background(), view.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Submitted) != 1 || result.Submitted[0] != 1 {
		t.Fatalf("expected exactly question 1 submitted, got %v", result.Submitted)
	}
	if len(result.Skipped) != 2 {
		t.Fatalf("expected questions 2 and 3 skipped, got %v", result.Skipped)
	}
	if len(result.Failed) != 0 {
		t.Fatalf("expected no failures, got %v", result.Failed)
	}
}

func TestSubmitJoinsTypedTextAndTranscript(t *testing.T) {
	svc, mockApplicant, mockQuestion, mockAnswer := setupSessionMocks(t)
	view := startThreeQuestionSession(t, svc, mockApplicant, mockQuestion)

	if _, err := svc.SetTypedAnswer(view.Token, 2, "typed part"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.StartRecording(view.Token, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.UpdateTranscript(view.Token, 2, "spoken part"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.StopRecording(view.Token, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mockAnswer.EXPECT().DeleteByApplicant(gomock.Any(), int64(7)).Return(nil)
	mockAnswer.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a answer.Answer) (answer.Answer, error) {
			want := "typed part" + application.AnswerSeparator + "spoken part"
			if a.Answer != want {
				t.Fatalf("expected joined answer %q, got %q", want, a.Answer)
			}
			return a, nil
		})
	mockApplicant.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).
		Return(applicant.Applicant{}, nil)

	if _, err := svc.Submit(context.Background(), view.Token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSubmitCollectsPerQuestionFailures(t *testing.T) {
	svc, mockApplicant, mockQuestion, mockAnswer := setupSessionMocks(t)
	view := startThreeQuestionSession(t, svc, mockApplicant, mockQuestion)

	if _, err := svc.SetTypedAnswer(view.Token, 1, "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.SetTypedAnswer(view.Token, 3, "third"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mockAnswer.EXPECT().DeleteByApplicant(gomock.Any(), int64(7)).Return(nil)
	mockAnswer.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a answer.Answer) (answer.Answer, error) {
			if a.QuestionID == 1 {
				return answer.Answer{}, errors.New("row insert failed")
			}
			return a, nil
		}).Times(2)
	// Status still flips: the flow is best-effort past the answer loop.
	mockApplicant.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).
		Return(applicant.Applicant{}, nil)

	result, err := svc.Submit(context.Background(), view.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Failed) != 1 || result.Failed[0] != 1 {
		t.Fatalf("expected question 1 in failed set, got %v", result.Failed)
	}
	if len(result.Submitted) != 1 || result.Submitted[0] != 3 {
		t.Fatalf("expected question 3 submitted, got %v", result.Submitted)
	}
}

func TestSubmitCompletesWhenStatusUpdateFails(t *testing.T) {
	svc, mockApplicant, mockQuestion, mockAnswer := setupSessionMocks(t)
	view := startThreeQuestionSession(t, svc, mockApplicant, mockQuestion)

	if _, err := svc.SetTypedAnswer(view.Token, 1, "answer"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mockAnswer.EXPECT().DeleteByApplicant(gomock.Any(), int64(7)).Return(nil)
	mockAnswer.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a answer.Answer) (answer.Answer, error) { return a, nil })
	mockApplicant.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).
		Return(applicant.Applicant{}, errors.New("backend unavailable"))

	result, err := svc.Submit(context.Background(), view.Token)
	if err != nil {
		t.Fatalf("status update failure must not fail the submission: %v", err)
	}
	if len(result.Submitted) != 1 {
		t.Fatalf("expected one submitted answer, got %v", result.Submitted)
	}

	after, err := svc.Get(view.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !after.Completed {
		t.Fatal("session should be complete after submission")
	}
}

func TestRecordingIsExclusive(t *testing.T) {
	svc, mockApplicant, mockQuestion, _ := setupSessionMocks(t)
	view := startThreeQuestionSession(t, svc, mockApplicant, mockQuestion)

	if _, err := svc.StartRecording(view.Token, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.StartRecording(view.Token, 2); !errors.Is(err, application.ErrRecordingBusy) {
		t.Fatalf("expected ErrRecordingBusy, got %v", err)
	}
	if _, err := svc.UpdateTranscript(view.Token, 2, "nope"); !errors.Is(err, application.ErrNotRecording) {
		t.Fatalf("expected ErrNotRecording, got %v", err)
	}
	if _, err := svc.StopRecording(view.Token, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The slot is free again after stopping.
	if _, err := svc.StartRecording(view.Token, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNavigationPreservesDrafts(t *testing.T) {
	svc, mockApplicant, mockQuestion, _ := setupSessionMocks(t)
	view := startThreeQuestionSession(t, svc, mockApplicant, mockQuestion)

	if _, err := svc.SetTypedAnswer(view.Token, 1, "kept across navigation"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	next, err := svc.Navigate(view.Token, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Index != 1 {
		t.Fatalf("expected index 1, got %d", next.Index)
	}

	// Clamped at both ends.
	if v, _ := svc.Navigate(view.Token, 10); v.Index != 2 {
		t.Fatalf("expected index clamped to 2, got %d", v.Index)
	}
	if v, _ := svc.Navigate(view.Token, -10); v.Index != 0 {
		t.Fatalf("expected index clamped to 0, got %d", v.Index)
	}

	final, _ := svc.Get(view.Token)
	if final.Drafts[1].Typed != "kept across navigation" {
		t.Fatal("draft lost during navigation")
	}
}

func TestSubmitClearingFailureKeepsBackendError(t *testing.T) {
	svc, mockApplicant, mockQuestion, mockAnswer := setupSessionMocks(t)
	view := startThreeQuestionSession(t, svc, mockApplicant, mockQuestion)

	if _, err := svc.SetTypedAnswer(view.Token, 1, "answer"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	backendErr := &postgrest.APIError{StatusCode: 503, Body: "backend briefly down"}
	mockAnswer.EXPECT().DeleteByApplicant(gomock.Any(), int64(7)).Return(backendErr)

	_, err := svc.Submit(context.Background(), view.Token)
	if !errors.Is(err, application.ErrClearingAnswers) {
		t.Fatalf("expected ErrClearingAnswers, got %v", err)
	}
	var apiErr *postgrest.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 503 {
		t.Fatalf("backend error lost in the wrap: %v", err)
	}

	// The session stays open for another attempt.
	after, err := svc.Get(view.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after.Completed {
		t.Fatal("a failed clear must not complete the session")
	}
}

func TestCompletedSessionsEvictedAfterRetention(t *testing.T) {
	svc, mockApplicant, mockQuestion, _ := setupSessionMocks(t)
	old := startThreeQuestionSession(t, svc, mockApplicant, mockQuestion)
	recent := startThreeQuestionSession(t, svc, mockApplicant, mockQuestion)

	svc.CompleteSessionAt(old.Token, time.Now().Add(-2*time.Hour))
	svc.CompleteSessionAt(recent.Token, time.Now())

	// Eviction runs when a new session starts.
	startThreeQuestionSession(t, svc, mockApplicant, mockQuestion)

	if _, err := svc.Get(old.Token); !errors.Is(err, application.ErrSessionNotFound) {
		t.Fatalf("expected expired session to be evicted, got %v", err)
	}
	if _, err := svc.Get(recent.Token); err != nil {
		t.Fatalf("recently completed session must survive eviction: %v", err)
	}
}

func TestResubmissionRejected(t *testing.T) {
	svc, mockApplicant, mockQuestion, mockAnswer := setupSessionMocks(t)
	view := startThreeQuestionSession(t, svc, mockApplicant, mockQuestion)

	if _, err := svc.SetTypedAnswer(view.Token, 1, "answer"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mockAnswer.EXPECT().DeleteByApplicant(gomock.Any(), int64(7)).Return(nil)
	mockAnswer.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a answer.Answer) (answer.Answer, error) { return a, nil })
	mockApplicant.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).
		Return(applicant.Applicant{}, nil)

	if _, err := svc.Submit(context.Background(), view.Token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Submit(context.Background(), view.Token); !errors.Is(err, application.ErrSessionComplete) {
		t.Fatalf("expected ErrSessionComplete, got %v", err)
	}
}
