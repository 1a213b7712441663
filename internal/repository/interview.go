package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/readysethire/readysethire/internal/domain/interview"
	"github.com/readysethire/readysethire/internal/postgrest"
)

var ErrNotFound = fmt.Errorf("resource not found")

type InterviewRepo interface {
	List(ctx context.Context) ([]interview.Interview, error)
	Get(ctx context.Context, id int64) (interview.Interview, error)
	Create(ctx context.Context, in interview.Interview) (interview.Interview, error)
	Update(ctx context.Context, id int64, fields map[string]any) (interview.Interview, error)
	Delete(ctx context.Context, id int64) error
}

type APIInterviewRepo struct {
	client *postgrest.Client
}

func NewInterviewRepo(client *postgrest.Client) *APIInterviewRepo {
	return &APIInterviewRepo{client: client}
}

func (r *APIInterviewRepo) List(ctx context.Context) ([]interview.Interview, error) {
	var out []interview.Interview
	if err := r.client.Do(ctx, http.MethodGet, "/interview", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *APIInterviewRepo) Get(ctx context.Context, id int64) (interview.Interview, error) {
	var rows []interview.Interview
	endpoint := fmt.Sprintf("/interview?id=eq.%d", id)
	if err := r.client.Do(ctx, http.MethodGet, endpoint, nil, &rows); err != nil {
		return interview.Interview{}, err
	}
	if len(rows) == 0 {
		return interview.Interview{}, ErrNotFound
	}
	return rows[0], nil
}

func (r *APIInterviewRepo) Create(ctx context.Context, in interview.Interview) (interview.Interview, error) {
	var rows []interview.Interview
	if err := r.client.Do(ctx, http.MethodPost, "/interview", in, &rows); err != nil {
		return interview.Interview{}, err
	}
	if len(rows) == 0 {
		return interview.Interview{}, ErrNotFound
	}
	return rows[0], nil
}

func (r *APIInterviewRepo) Update(ctx context.Context, id int64, fields map[string]any) (interview.Interview, error) {
	var rows []interview.Interview
	endpoint := fmt.Sprintf("/interview?id=eq.%d", id)
	if err := r.client.Do(ctx, http.MethodPatch, endpoint, fields, &rows); err != nil {
		return interview.Interview{}, err
	}
	if len(rows) == 0 {
		return interview.Interview{}, ErrNotFound
	}
	return rows[0], nil
}

func (r *APIInterviewRepo) Delete(ctx context.Context, id int64) error {
	endpoint := fmt.Sprintf("/interview?id=eq.%d", id)
	return r.client.Do(ctx, http.MethodDelete, endpoint, nil, nil)
}
