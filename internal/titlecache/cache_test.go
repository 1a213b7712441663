package titlecache_test

import (
	"strings"
	"testing"

	"github.com/readysethire/readysethire/internal/domain/interview"
	"github.com/readysethire/readysethire/internal/titlecache"
)

func TestResolveCachedInterview(t *testing.T) {
	cache := titlecache.NewMemoryCache()
	cache.Put([]interview.Interview{
		{ID: 1, Title: "T", JobRole: "R"},
		{ID: 2, Title: "Backend Screen", JobRole: "Go Engineer"},
	})

	if got := cache.Resolve(1); got != "T (R)" {
		t.Fatalf("expected %q, got %q", "T (R)", got)
	}
	if got := cache.Resolve(2); got != "Backend Screen (Go Engineer)" {
		t.Fatalf("unexpected resolution %q", got)
	}
}

func TestResolveAbsentIDContainsID(t *testing.T) {
	cache := titlecache.NewMemoryCache()
	got := cache.Resolve(42)
	if got == "" {
		t.Fatal("expected a placeholder, got empty string")
	}
	if want := "42"; !strings.Contains(got, want) {
		t.Fatalf("placeholder %q does not mention id %s", got, want)
	}
}

func TestPutReplacesSnapshot(t *testing.T) {
	cache := titlecache.NewMemoryCache()
	cache.Put([]interview.Interview{{ID: 1, Title: "Old", JobRole: "R"}})
	cache.Put([]interview.Interview{{ID: 2, Title: "New", JobRole: "R"}})

	if _, ok := cache.Get(1); ok {
		t.Fatal("stale entry survived a Put")
	}
	if _, ok := cache.Get(2); !ok {
		t.Fatal("fresh entry missing after Put")
	}
}
