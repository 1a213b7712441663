package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/readysethire/readysethire/internal/domain/answer"
	"github.com/readysethire/readysethire/internal/domain/applicant"
	"github.com/readysethire/readysethire/internal/domain/question"
	"github.com/readysethire/readysethire/internal/repository"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoQuestions     = errors.New("interview has no questions")
	ErrUnknownQuestion = errors.New("question does not belong to this session")
	ErrRecordingBusy   = errors.New("another question is already recording")
	ErrNotRecording    = errors.New("question is not recording")
	ErrNoAnswers       = errors.New("please answer at least one question before submitting")
	ErrSessionComplete = errors.New("interview has already been submitted")
	ErrClearingAnswers = errors.New("failed to clear previous answers")
)

// AnswerSeparator joins typed text and a speech transcript when a question
// has both.
const AnswerSeparator = "\n\n"

// completedSessionTTL is how long a submitted session stays retrievable.
// Older completed sessions are evicted when a new session starts.
const completedSessionTTL = time.Hour

// RecordingState is the per-question speech capture sub-state.
type RecordingState string

const (
	RecordingIdle     RecordingState = "idle"
	RecordingActive   RecordingState = "recording"
	RecordingFinished RecordingState = "recorded"
)

// Draft is everything captured for one question before submission. It
// persists across navigation, keyed by question id.
type Draft struct {
	Typed       string         `json:"typed"`
	Transcript  string         `json:"transcript"`
	Recording   RecordingState `json:"recording"`
	AudioObject string         `json:"audio_object,omitempty"`
}

func (d *Draft) hasContent() bool {
	return strings.TrimSpace(d.Typed) != "" || strings.TrimSpace(d.Transcript) != ""
}

// composed is the answer text stored on submission: typed text, transcript,
// or both joined by AnswerSeparator.
func (d *Draft) composed() string {
	typed := strings.TrimSpace(d.Typed)
	transcript := strings.TrimSpace(d.Transcript)
	switch {
	case typed != "" && transcript != "":
		return typed + AnswerSeparator + transcript
	case typed != "":
		return typed
	default:
		return transcript
	}
}

// Session is the server-held state of one applicant working through an
// interview via the public link.
type Session struct {
	Token     string
	Applicant applicant.Applicant
	Questions []question.Question
	Index     int
	Drafts    map[int64]*Draft
	// ActiveRecording is the question currently capturing speech, 0 if none.
	// At most one question records at a time.
	ActiveRecording int64
	Completed       bool

	completedAt time.Time
	mu          sync.Mutex
}

// SessionView is the lock-free snapshot handed to the API layer.
type SessionView struct {
	Token           string              `json:"token"`
	Applicant       applicant.Applicant `json:"applicant"`
	Questions       []question.Question `json:"questions"`
	Index           int                 `json:"index"`
	Drafts          map[int64]Draft     `json:"drafts"`
	ActiveRecording int64               `json:"active_recording,omitempty"`
	Completed       bool                `json:"completed"`
}

// SubmissionResult reports the outcome of every attempted answer creation
// separately, so a partial failure is visible instead of folded into an
// aggregate count.
type SubmissionResult struct {
	Submitted []int64 `json:"submitted"`
	Failed    []int64 `json:"failed"`
	Skipped   []int64 `json:"skipped"`
}

type SessionService struct {
	Repos *repository.Repos

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionService(repos *repository.Repos) *SessionService {
	return &SessionService{
		Repos:    repos,
		sessions: map[string]*Session{},
	}
}

// Start resolves the applicant and the question set of its interview. An
// unknown applicant or an empty question set is terminal: no session is
// created.
func (s *SessionService) Start(ctx context.Context, applicantID int64) (SessionView, error) {
	appl, err := s.Repos.Applicant.Get(ctx, applicantID)
	if err != nil {
		return SessionView{}, err
	}
	questions, err := s.Repos.Question.ListByInterview(ctx, appl.InterviewID)
	if err != nil {
		return SessionView{}, err
	}
	if len(questions) == 0 {
		return SessionView{}, ErrNoQuestions
	}

	sess := &Session{
		Token:     uuid.NewString(),
		Applicant: appl,
		Questions: questions,
		Drafts:    make(map[int64]*Draft, len(questions)),
	}
	for _, q := range questions {
		sess.Drafts[q.ID] = &Draft{Recording: RecordingIdle}
	}

	s.mu.Lock()
	s.evictExpiredLocked()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	return sess.view(), nil
}

func (s *SessionService) Get(token string) (SessionView, error) {
	sess, err := s.lookup(token)
	if err != nil {
		return SessionView{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view(), nil
}

// StartRecording begins speech capture for one question. Capture is
// exclusive: starting while another question records is rejected rather
// than silently stopping the other capture.
func (s *SessionService) StartRecording(token string, questionID int64) (SessionView, error) {
	return s.withDraft(token, questionID, func(sess *Session, d *Draft) error {
		if sess.ActiveRecording != 0 && sess.ActiveRecording != questionID {
			return ErrRecordingBusy
		}
		sess.ActiveRecording = questionID
		d.Recording = RecordingActive
		return nil
	})
}

// UpdateTranscript mirrors the live transcript into the recording question's
// draft as it grows. Each message carries the full transcript so far.
func (s *SessionService) UpdateTranscript(token string, questionID int64, transcript string) (SessionView, error) {
	return s.withDraft(token, questionID, func(sess *Session, d *Draft) error {
		if sess.ActiveRecording != questionID {
			return ErrNotRecording
		}
		d.Transcript = transcript
		return nil
	})
}

// StopRecording finalizes the capture, keeping the last transcript.
func (s *SessionService) StopRecording(token string, questionID int64) (SessionView, error) {
	return s.withDraft(token, questionID, func(sess *Session, d *Draft) error {
		if sess.ActiveRecording != questionID {
			return ErrNotRecording
		}
		sess.ActiveRecording = 0
		d.Recording = RecordingFinished
		return nil
	})
}

// SetTypedAnswer edits the free-text field, allowed at any time regardless
// of recording state.
func (s *SessionService) SetTypedAnswer(token string, questionID int64, text string) (SessionView, error) {
	return s.withDraft(token, questionID, func(sess *Session, d *Draft) error {
		d.Typed = text
		return nil
	})
}

// AttachAudio records the object name of an uploaded audio blob.
func (s *SessionService) AttachAudio(token string, questionID int64, objectName string) (SessionView, error) {
	return s.withDraft(token, questionID, func(sess *Session, d *Draft) error {
		d.AudioObject = objectName
		return nil
	})
}

// Navigate moves the displayed question index by delta, clamped to the
// question set. Drafts are untouched.
func (s *SessionService) Navigate(token string, delta int) (SessionView, error) {
	sess, err := s.lookup(token)
	if err != nil {
		return SessionView{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	next := sess.Index + delta
	if next < 0 {
		next = 0
	}
	if next > len(sess.Questions)-1 {
		next = len(sess.Questions) - 1
	}
	sess.Index = next
	return sess.view(), nil
}

// Submit stores one answer row per question with content and then flips the
// applicant to Completed. Questions with no typed text and no transcript are
// skipped, never stored as empty answers. Prior answer rows for the
// applicant are cleared first so resubmission replaces rather than appends.
// The status update is best-effort: its failure is logged and the session
// still completes.
func (s *SessionService) Submit(ctx context.Context, token string) (SubmissionResult, error) {
	sess, err := s.lookup(token)
	if err != nil {
		return SubmissionResult{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Completed {
		return SubmissionResult{}, ErrSessionComplete
	}

	answered := 0
	for _, q := range sess.Questions {
		if sess.Drafts[q.ID].hasContent() {
			answered++
		}
	}
	if answered == 0 {
		return SubmissionResult{}, ErrNoAnswers
	}

	if err := s.Repos.Answer.DeleteByApplicant(ctx, sess.Applicant.ID); err != nil {
		return SubmissionResult{}, fmt.Errorf("%w: %w", ErrClearingAnswers, err)
	}

	var result SubmissionResult
	for _, q := range sess.Questions {
		d := sess.Drafts[q.ID]
		if !d.hasContent() {
			result.Skipped = append(result.Skipped, q.ID)
			continue
		}
		_, err := s.Repos.Answer.Create(ctx, answer.Answer{
			ApplicantID: sess.Applicant.ID,
			InterviewID: sess.Applicant.InterviewID,
			QuestionID:  q.ID,
			Answer:      d.composed(),
			AudioObject: d.AudioObject,
		})
		if err != nil {
			log.Printf("answer create failed for question %d: %v", q.ID, err)
			result.Failed = append(result.Failed, q.ID)
			continue
		}
		result.Submitted = append(result.Submitted, q.ID)
	}

	fields := map[string]any{"interview_status": string(applicant.StatusCompleted)}
	if _, err := s.Repos.Applicant.Update(ctx, sess.Applicant.ID, fields); err != nil {
		log.Printf("applicant %d status update failed: %v", sess.Applicant.ID, err)
	} else {
		sess.Applicant.InterviewStatus = string(applicant.StatusCompleted)
	}

	sess.Completed = true
	sess.completedAt = time.Now()
	return result, nil
}

// evictExpiredLocked drops completed sessions past their retention window.
// Callers hold s.mu.
func (s *SessionService) evictExpiredLocked() {
	cutoff := time.Now().Add(-completedSessionTTL)
	for token, sess := range s.sessions {
		sess.mu.Lock()
		expired := sess.Completed && sess.completedAt.Before(cutoff)
		sess.mu.Unlock()
		if expired {
			delete(s.sessions, token)
		}
	}
}

func (s *SessionService) lookup(token string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *SessionService) withDraft(token string, questionID int64, fn func(*Session, *Draft) error) (SessionView, error) {
	sess, err := s.lookup(token)
	if err != nil {
		return SessionView{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.Completed {
		return SessionView{}, ErrSessionComplete
	}
	d, ok := sess.Drafts[questionID]
	if !ok {
		return SessionView{}, ErrUnknownQuestion
	}
	if err := fn(sess, d); err != nil {
		return SessionView{}, err
	}
	return sess.view(), nil
}

// view copies the session; callers hold sess.mu.
func (sess *Session) view() SessionView {
	drafts := make(map[int64]Draft, len(sess.Drafts))
	for id, d := range sess.Drafts {
		drafts[id] = *d
	}
	return SessionView{
		Token:           sess.Token,
		Applicant:       sess.Applicant,
		Questions:       sess.Questions,
		Index:           sess.Index,
		Drafts:          drafts,
		ActiveRecording: sess.ActiveRecording,
		Completed:       sess.Completed,
	}
}
