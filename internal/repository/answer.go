package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/readysethire/readysethire/internal/domain/answer"
	"github.com/readysethire/readysethire/internal/postgrest"
)

type AnswerRepo interface {
	ListByApplicant(ctx context.Context, applicantID int64) ([]answer.Answer, error)
	Create(ctx context.Context, a answer.Answer) (answer.Answer, error)
	Update(ctx context.Context, id int64, fields map[string]any) (answer.Answer, error)
	Delete(ctx context.Context, id int64) error
	DeleteByApplicant(ctx context.Context, applicantID int64) error
}

type APIAnswerRepo struct {
	client *postgrest.Client
}

func NewAnswerRepo(client *postgrest.Client) *APIAnswerRepo {
	return &APIAnswerRepo{client: client}
}

func (r *APIAnswerRepo) ListByApplicant(ctx context.Context, applicantID int64) ([]answer.Answer, error) {
	var out []answer.Answer
	endpoint := fmt.Sprintf("/applicant_answer?applicant_id=eq.%d", applicantID)
	if err := r.client.Do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *APIAnswerRepo) Create(ctx context.Context, a answer.Answer) (answer.Answer, error) {
	var rows []answer.Answer
	if err := r.client.Do(ctx, http.MethodPost, "/applicant_answer", a, &rows); err != nil {
		return answer.Answer{}, err
	}
	if len(rows) == 0 {
		return answer.Answer{}, ErrNotFound
	}
	return rows[0], nil
}

func (r *APIAnswerRepo) Update(ctx context.Context, id int64, fields map[string]any) (answer.Answer, error) {
	var rows []answer.Answer
	endpoint := fmt.Sprintf("/applicant_answer?id=eq.%d", id)
	if err := r.client.Do(ctx, http.MethodPatch, endpoint, fields, &rows); err != nil {
		return answer.Answer{}, err
	}
	if len(rows) == 0 {
		return answer.Answer{}, ErrNotFound
	}
	return rows[0], nil
}

func (r *APIAnswerRepo) Delete(ctx context.Context, id int64) error {
	endpoint := fmt.Sprintf("/applicant_answer?id=eq.%d", id)
	return r.client.Do(ctx, http.MethodDelete, endpoint, nil, nil)
}

// DeleteByApplicant clears all prior answer rows for an applicant.
// Resubmission replaces answers instead of appending duplicates.
func (r *APIAnswerRepo) DeleteByApplicant(ctx context.Context, applicantID int64) error {
	endpoint := fmt.Sprintf("/applicant_answer?applicant_id=eq.%d", applicantID)
	return r.client.Do(ctx, http.MethodDelete, endpoint, nil, nil)
}
