package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bankstack/bankstack/internal/core/domain"
)

type stubAttemptRepo struct {
	mu       sync.Mutex
	appended []domain.LoginAttempt
}

func (r *stubAttemptRepo) Append(_ context.Context, attempt domain.LoginAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appended = append(r.appended, attempt)
	return nil
}

func (r *stubAttemptRepo) snapshot() []domain.LoginAttempt {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.LoginAttempt, len(r.appended))
	copy(out, r.appended)
	return out
}

func waitForAppends(t *testing.T, repo *stubAttemptRepo, want int) []domain.LoginAttempt {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got := repo.snapshot(); len(got) >= want {
			return got
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d appended attempts, have %d", want, len(repo.snapshot()))
	return nil
}

func TestAuditWriter_PersistsRecords(t *testing.T) {
	repo := &stubAttemptRepo{}
	writer := NewAuditWriter(2, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	writer.Start(ctx)

	writer.Record(domain.LoginAttempt{Email: "a@b.com", SourceIP: "10.0.0.1", Outcome: domain.OutcomeFail, Timestamp: time.Now()})
	writer.Record(domain.LoginAttempt{Email: "x@y.com", SourceIP: "10.0.0.2", Outcome: domain.OutcomeSuccess, Timestamp: time.Now()})

	got := waitForAppends(t, repo, 2)
	seen := map[string]domain.LoginOutcome{}
	for _, a := range got {
		seen[a.Email] = a.Outcome
	}
	if seen["a@b.com"] != domain.OutcomeFail || seen["x@y.com"] != domain.OutcomeSuccess {
		t.Fatalf("unexpected persisted attempts: %+v", got)
	}
}

func TestAuditWriter_SameEmailKeepsSubmissionOrder(t *testing.T) {
	repo := &stubAttemptRepo{}
	writer := NewAuditWriter(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	writer.Start(ctx)

	outcomes := []domain.LoginOutcome{domain.OutcomeFail, domain.OutcomeFail, domain.OutcomeSuccess}
	for _, o := range outcomes {
		writer.Record(domain.LoginAttempt{Email: "a@b.com", SourceIP: "10.0.0.1", Outcome: o, Timestamp: time.Now()})
	}

	got := waitForAppends(t, repo, len(outcomes))
	for i, o := range outcomes {
		if got[i].Outcome != o {
			t.Fatalf("attempt %d: expected outcome %q, got %q", i, o, got[i].Outcome)
		}
	}
}

func TestAuditWriter_SameEmailSameShard(t *testing.T) {
	writer := NewAuditWriter(4, &stubAttemptRepo{}, zerolog.Nop())

	first := writer.shardIndex("a@b.com")
	for i := 0; i < 10; i++ {
		if got := writer.shardIndex("a@b.com"); got != first {
			t.Fatalf("shard index not stable: %d vs %d", got, first)
		}
	}
}
