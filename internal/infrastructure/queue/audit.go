package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bankstack/bankstack/internal/api/metrics"
	"github.com/bankstack/bankstack/internal/core/domain"
	"github.com/bankstack/bankstack/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// AuditWriter fans login-attempt records out to a fixed set of workers using
// consistent hashing on the email, so records for one identity are appended
// in submission order. Persisting the audit trail off the request path keeps
// login latency at one hash plus one lookup; a record lost to a crash costs
// an audit line, never account state.
type AuditWriter struct {
	workers []chan domain.LoginAttempt
	repo    ports.LoginAttemptRepository
	log     zerolog.Logger
}

// NewAuditWriter creates an AuditWriter with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditWriter(numWorkers int, repo ports.LoginAttemptRepository, log zerolog.Logger) *AuditWriter {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	w := &AuditWriter{
		workers: make([]chan domain.LoginAttempt, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range w.workers {
		w.workers[i] = make(chan domain.LoginAttempt, channelBuffer)
	}
	return w
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (w *AuditWriter) Start(ctx context.Context) {
	for i, ch := range w.workers {
		go w.runWorker(ctx, i, ch)
	}
}

// Record implements ports.LoginAttemptRecorder. It sends the attempt to the
// worker responsible for its email; non-blocking up to channelBuffer capacity.
func (w *AuditWriter) Record(attempt domain.LoginAttempt) {
	i := w.shardIndex(attempt.Email)
	w.workers[i] <- attempt
	metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(w.workers[i])))
}

// shardIndex maps an email deterministically to a worker index.
func (w *AuditWriter) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(w.workers)
}

func (w *AuditWriter) runWorker(ctx context.Context, id int, ch <-chan domain.LoginAttempt) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case attempt, ok := <-ch:
			if !ok {
				return
			}
			if err := w.repo.Append(ctx, attempt); err != nil {
				w.log.Error().Err(err).
					Str("email", attempt.Email).
					Int("worker_id", id).
					Msg("login attempt append failed")
			}
			metrics.AuditQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
		}
	}
}
