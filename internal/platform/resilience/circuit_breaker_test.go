package resilience

import (
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAfterThresholdAndRecovers(t *testing.T) {
	current := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	breaker := NewCircuitBreaker(2, 10*time.Second, 1)
	breaker.now = func() time.Time { return current }

	if err := breaker.Allow(); err != nil {
		t.Fatalf("closed breaker rejected call: %v", err)
	}
	breaker.RecordFailure()
	breaker.RecordFailure()

	if err := breaker.Allow(); err == nil {
		t.Fatal("expected open breaker to reject call")
	}

	current = current.Add(11 * time.Second)
	if err := breaker.Allow(); err != nil {
		t.Fatalf("half-open breaker rejected probe: %v", err)
	}
	if err := breaker.Allow(); err == nil {
		t.Fatal("expected half-open breaker to cap in-flight probes")
	}

	breaker.RecordSuccess()
	if err := breaker.Allow(); err != nil {
		t.Fatalf("closed breaker rejected call after recovery: %v", err)
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	current := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	breaker := NewCircuitBreaker(1, 10*time.Second, 1)
	breaker.now = func() time.Time { return current }

	breaker.RecordFailure()
	current = current.Add(11 * time.Second)
	if err := breaker.Allow(); err != nil {
		t.Fatalf("half-open breaker rejected probe: %v", err)
	}
	breaker.RecordFailure()

	if err := breaker.Allow(); err == nil {
		t.Fatal("expected breaker to reopen after failed probe")
	}
}
