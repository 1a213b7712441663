package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// FakeBackend is an in-memory stand-in for the hosted PostgREST backend.
// It understands the subset of conventions the client relies on: equality
// filters, Prefer: return=representation, and username-carrying bodies.
type FakeBackend struct {
	mu     sync.Mutex
	nextID int64
	rows   map[string][]map[string]any

	// Requests lists every call as "METHOD /path?query" for assertions.
	Requests []string

	// FailNext maps "METHOD /resource" to a status to fail the next
	// matching call with.
	FailNext map[string]int

	Server *httptest.Server
}

func NewFakeBackend() *FakeBackend {
	b := &FakeBackend{
		nextID:   1,
		rows:     map[string][]map[string]any{},
		FailNext: map[string]int{},
	}
	b.Server = httptest.NewServer(http.HandlerFunc(b.handle))
	return b
}

func (b *FakeBackend) Close() { b.Server.Close() }

func (b *FakeBackend) URL() string { return b.Server.URL }

// Seed inserts a row directly, bypassing the HTTP surface.
func (b *FakeBackend) Seed(resource string, row map[string]any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := row["id"]; !ok {
		row["id"] = b.nextID
		b.nextID++
	}
	b.rows[resource] = append(b.rows[resource], row)
}

// Count reports how many rows a resource holds.
func (b *FakeBackend) Count(resource string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.rows[resource])
}

// Rows copies the current rows of a resource.
func (b *FakeBackend) Rows(resource string) []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]map[string]any, len(b.rows[resource]))
	copy(out, b.rows[resource])
	return out
}

func (b *FakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	resource := strings.TrimPrefix(r.URL.Path, "/")
	b.Requests = append(b.Requests, r.Method+" "+r.URL.String())

	key := r.Method + " /" + resource
	if status, ok := b.FailNext[key]; ok {
		delete(b.FailNext, key)
		w.WriteHeader(status)
		fmt.Fprintf(w, `{"message":"injected failure"}`)
		return
	}

	field, value, filtered := parseEqFilter(r.URL.RawQuery)

	switch r.Method {
	case http.MethodGet:
		matched := b.match(resource, field, value, filtered)
		writeJSON(w, http.StatusOK, matched)

	case http.MethodPost:
		var row map[string]any
		json.NewDecoder(r.Body).Decode(&row)
		delete(row, "username")
		row["id"] = b.nextID
		b.nextID++
		b.rows[resource] = append(b.rows[resource], row)
		writeJSON(w, http.StatusCreated, []map[string]any{row})

	case http.MethodPatch:
		var patch map[string]any
		json.NewDecoder(r.Body).Decode(&patch)
		delete(patch, "username")
		var updated []map[string]any
		for _, row := range b.rows[resource] {
			if !filtered || matchEq(row, field, value) {
				for k, v := range patch {
					row[k] = v
				}
				updated = append(updated, row)
			}
		}
		writeJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		var kept []map[string]any
		for _, row := range b.rows[resource] {
			if filtered && matchEq(row, field, value) {
				continue
			}
			kept = append(kept, row)
		}
		b.rows[resource] = kept
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (b *FakeBackend) match(resource, field, value string, filtered bool) []map[string]any {
	matched := []map[string]any{}
	for _, row := range b.rows[resource] {
		if !filtered || matchEq(row, field, value) {
			matched = append(matched, row)
		}
	}
	return matched
}

func parseEqFilter(rawQuery string) (field, value string, ok bool) {
	if rawQuery == "" {
		return "", "", false
	}
	parts := strings.SplitN(rawQuery, "=eq.", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func matchEq(row map[string]any, field, value string) bool {
	return fmt.Sprintf("%v", row[field]) == value
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
