package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/readysethire/readysethire/internal/domain/question"
	"github.com/readysethire/readysethire/internal/postgrest"
)

type QuestionRepo interface {
	List(ctx context.Context) ([]question.Question, error)
	ListByInterview(ctx context.Context, interviewID int64) ([]question.Question, error)
	Get(ctx context.Context, id int64) (question.Question, error)
	Create(ctx context.Context, q question.Question) (question.Question, error)
	Update(ctx context.Context, id int64, fields map[string]any) (question.Question, error)
	Delete(ctx context.Context, id int64) error
}

type APIQuestionRepo struct {
	client *postgrest.Client
}

func NewQuestionRepo(client *postgrest.Client) *APIQuestionRepo {
	return &APIQuestionRepo{client: client}
}

func (r *APIQuestionRepo) List(ctx context.Context) ([]question.Question, error) {
	var out []question.Question
	if err := r.client.Do(ctx, http.MethodGet, "/question", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *APIQuestionRepo) ListByInterview(ctx context.Context, interviewID int64) ([]question.Question, error) {
	var out []question.Question
	endpoint := fmt.Sprintf("/question?interview_id=eq.%d", interviewID)
	if err := r.client.Do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *APIQuestionRepo) Get(ctx context.Context, id int64) (question.Question, error) {
	var rows []question.Question
	endpoint := fmt.Sprintf("/question?id=eq.%d", id)
	if err := r.client.Do(ctx, http.MethodGet, endpoint, nil, &rows); err != nil {
		return question.Question{}, err
	}
	if len(rows) == 0 {
		return question.Question{}, ErrNotFound
	}
	return rows[0], nil
}

func (r *APIQuestionRepo) Create(ctx context.Context, q question.Question) (question.Question, error) {
	var rows []question.Question
	if err := r.client.Do(ctx, http.MethodPost, "/question", q, &rows); err != nil {
		return question.Question{}, err
	}
	if len(rows) == 0 {
		return question.Question{}, ErrNotFound
	}
	return rows[0], nil
}

func (r *APIQuestionRepo) Update(ctx context.Context, id int64, fields map[string]any) (question.Question, error) {
	var rows []question.Question
	endpoint := fmt.Sprintf("/question?id=eq.%d", id)
	if err := r.client.Do(ctx, http.MethodPatch, endpoint, fields, &rows); err != nil {
		return question.Question{}, err
	}
	if len(rows) == 0 {
		return question.Question{}, ErrNotFound
	}
	return rows[0], nil
}

func (r *APIQuestionRepo) Delete(ctx context.Context, id int64) error {
	endpoint := fmt.Sprintf("/question?id=eq.%d", id)
	return r.client.Do(ctx, http.MethodDelete, endpoint, nil, nil)
}
