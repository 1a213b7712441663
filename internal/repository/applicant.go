package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/readysethire/readysethire/internal/domain/applicant"
	"github.com/readysethire/readysethire/internal/postgrest"
)

type ApplicantRepo interface {
	List(ctx context.Context) ([]applicant.Applicant, error)
	ListByInterview(ctx context.Context, interviewID int64) ([]applicant.Applicant, error)
	Get(ctx context.Context, id int64) (applicant.Applicant, error)
	Create(ctx context.Context, a applicant.Applicant) (applicant.Applicant, error)
	Update(ctx context.Context, id int64, fields map[string]any) (applicant.Applicant, error)
	Delete(ctx context.Context, id int64) error
}

type APIApplicantRepo struct {
	client *postgrest.Client
}

func NewApplicantRepo(client *postgrest.Client) *APIApplicantRepo {
	return &APIApplicantRepo{client: client}
}

func (r *APIApplicantRepo) List(ctx context.Context) ([]applicant.Applicant, error) {
	var out []applicant.Applicant
	if err := r.client.Do(ctx, http.MethodGet, "/applicant", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *APIApplicantRepo) ListByInterview(ctx context.Context, interviewID int64) ([]applicant.Applicant, error) {
	var out []applicant.Applicant
	endpoint := fmt.Sprintf("/applicant?interview_id=eq.%d", interviewID)
	if err := r.client.Do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *APIApplicantRepo) Get(ctx context.Context, id int64) (applicant.Applicant, error) {
	var rows []applicant.Applicant
	endpoint := fmt.Sprintf("/applicant?id=eq.%d", id)
	if err := r.client.Do(ctx, http.MethodGet, endpoint, nil, &rows); err != nil {
		return applicant.Applicant{}, err
	}
	if len(rows) == 0 {
		return applicant.Applicant{}, ErrNotFound
	}
	return rows[0], nil
}

func (r *APIApplicantRepo) Create(ctx context.Context, a applicant.Applicant) (applicant.Applicant, error) {
	var rows []applicant.Applicant
	if err := r.client.Do(ctx, http.MethodPost, "/applicant", a, &rows); err != nil {
		return applicant.Applicant{}, err
	}
	if len(rows) == 0 {
		return applicant.Applicant{}, ErrNotFound
	}
	return rows[0], nil
}

func (r *APIApplicantRepo) Update(ctx context.Context, id int64, fields map[string]any) (applicant.Applicant, error) {
	var rows []applicant.Applicant
	endpoint := fmt.Sprintf("/applicant?id=eq.%d", id)
	if err := r.client.Do(ctx, http.MethodPatch, endpoint, fields, &rows); err != nil {
		return applicant.Applicant{}, err
	}
	if len(rows) == 0 {
		return applicant.Applicant{}, ErrNotFound
	}
	return rows[0], nil
}

func (r *APIApplicantRepo) Delete(ctx context.Context, id int64) error {
	endpoint := fmt.Sprintf("/applicant?id=eq.%d", id)
	return r.client.Do(ctx, http.MethodDelete, endpoint, nil, nil)
}
