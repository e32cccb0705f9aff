package footballdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/prediction-league/internal/platform/resilience"
	"github.com/riskibarqy/prediction-league/internal/usecase"
)

const matchesPayload = `{
	"matches": [
		{
			"utcDate": "2026-08-15T14:00:00Z",
			"status": "FINISHED",
			"homeTeam": {"id": 57, "name": "Arsenal FC"},
			"awayTeam": {"id": 64, "name": "Liverpool FC"},
			"score": {"fullTime": {"home": 2, "away": 1}}
		},
		{
			"utcDate": "2026-09-05T16:30:00Z",
			"status": "SCHEDULED",
			"homeTeam": {"id": 64, "name": "Liverpool FC"},
			"awayTeam": {"id": 61, "name": "Chelsea FC"},
			"score": {"fullTime": {"home": null, "away": null}}
		}
	]
}`

func TestClient_FetchMatchesForTeam(t *testing.T) {
	var gotPath, gotToken, gotCompetitions string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Auth-Token")
		gotCompetitions = r.URL.Query().Get("competitions")
		_, _ = w.Write([]byte(matchesPayload))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, Token: "secret-token"})
	fixtures, err := client.FetchMatchesForTeam(context.Background(), 57, "PL")
	if err != nil {
		t.Fatalf("fetch matches: %v", err)
	}

	if gotPath != "/teams/57/matches" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotToken != "secret-token" {
		t.Fatalf("unexpected auth token: %q", gotToken)
	}
	if gotCompetitions != "PL" {
		t.Fatalf("unexpected competitions filter: %q", gotCompetitions)
	}

	if len(fixtures) != 2 {
		t.Fatalf("unexpected fixture count: got=%d want=2", len(fixtures))
	}
	finished := fixtures[0]
	if finished.HomeTeam != "Arsenal FC" || finished.AwayTeam != "Liverpool FC" {
		t.Fatalf("unexpected teams: %+v", finished)
	}
	if finished.Date != "2026-08-15" {
		t.Fatalf("date must truncate to day precision: %s", finished.Date)
	}
	if finished.Result == nil || *finished.Result != "2-1" {
		t.Fatalf("unexpected result: %v", finished.Result)
	}
	if fixtures[1].Result != nil {
		t.Fatalf("scheduled fixture must have no result, got %q", *fixtures[1].Result)
	}
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(matchesPayload))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, MaxRetries: 2})
	fixtures, err := client.FetchMatchesForTeam(context.Background(), 57, "")
	if err != nil {
		t.Fatalf("fetch matches: %v", err)
	}
	if len(fixtures) != 2 {
		t.Fatalf("unexpected fixture count: got=%d want=2", len(fixtures))
	}
	if calls.Load() != 2 {
		t.Fatalf("expected one retry, got %d calls", calls.Load())
	}
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, MaxRetries: 3})
	if _, err := client.FetchMatchesForTeam(context.Background(), 57, ""); err == nil {
		t.Fatalf("expected error for 404 response")
	}
	if calls.Load() != 1 {
		t.Fatalf("client errors must not retry, got %d calls", calls.Load())
	}
}

func TestClient_CircuitBreakerRejectsWhenOpen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	if _, err := client.FetchMatchesForTeam(context.Background(), 57, ""); err == nil {
		t.Fatalf("expected provider failure")
	}
	if _, err := client.FetchMatchesForTeam(context.Background(), 57, ""); !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable from open breaker, got %v", err)
	}
}

func TestClient_FetchCompetitionTeams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/competitions/PL/teams" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"teams": [{"id": 57, "name": "Arsenal FC", "crest": "https://crests.football-data.org/57.png", "venue": "Emirates Stadium"}]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL})
	teams, err := client.FetchCompetitionTeams(context.Background(), "PL")
	if err != nil {
		t.Fatalf("fetch competition teams: %v", err)
	}
	if len(teams) != 1 || teams[0].ID != 57 || teams[0].Stadium != "Emirates Stadium" {
		t.Fatalf("unexpected teams: %+v", teams)
	}
}
