package postgrest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/readysethire/readysethire/internal/postgrest"
)

func TestRequestHeaders(t *testing.T) {
	var gotAuth, gotContentType, gotPrefer string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotPrefer = r.Header.Get("Prefer")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := postgrest.New(srv.URL, "secret-token", "s1234567")

	var out []map[string]any
	err := client.Do(context.Background(), http.MethodGet, "/interview", nil, &out)
	require.NoError(t, err)
	require.Equal(t, "Bearer secret-token", gotAuth)
	require.Equal(t, "application/json", gotContentType)
	require.Empty(t, gotPrefer, "GET must not ask for a representation")

	err = client.Do(context.Background(), http.MethodPost, "/interview", map[string]any{"title": "x"}, nil)
	require.NoError(t, err)
	require.Equal(t, "return=representation", gotPrefer)
}

func TestMutationBodiesCarryUsername(t *testing.T) {
	bodies := map[string]map[string]any{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		var body map[string]any
		json.Unmarshal(data, &body)
		bodies[r.Method] = body
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := postgrest.New(srv.URL, "t", "s1234567")
	ctx := context.Background()

	require.NoError(t, client.Do(ctx, http.MethodPost, "/interview", map[string]any{"title": "T"}, nil))
	require.Equal(t, "s1234567", bodies[http.MethodPost]["username"])
	require.Equal(t, "T", bodies[http.MethodPost]["title"])

	require.NoError(t, client.Do(ctx, http.MethodPatch, "/interview?id=eq.1", map[string]any{"title": "U"}, nil))
	require.Equal(t, "s1234567", bodies[http.MethodPatch]["username"])

	// DELETE carries only the username, nothing else.
	require.NoError(t, client.Do(ctx, http.MethodDelete, "/interview?id=eq.1", nil, nil))
	require.Equal(t, map[string]any{"username": "s1234567"}, bodies[http.MethodDelete])
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"JWSError"}`))
	}))
	defer srv.Close()

	client := postgrest.New(srv.URL, "bad", "u")
	err := client.Do(context.Background(), http.MethodGet, "/interview", nil, nil)

	var apiErr *postgrest.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Contains(t, apiErr.Body, "JWSError")
}

func TestEmptyResponseSucceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := postgrest.New(srv.URL, "t", "u")
	var out []map[string]any
	err := client.Do(context.Background(), http.MethodDelete, "/interview?id=eq.1", nil, &out)
	require.NoError(t, err)
	require.Nil(t, out)
}
