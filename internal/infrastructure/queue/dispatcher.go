package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/barangaylink/records-system/internal/api/metrics"
	"github.com/barangaylink/records-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes activity entries to a fixed set of workers using
// consistent hashing on the entity name, so entries for the same entity
// are persisted in the order they were recorded.
type Dispatcher struct {
	workers []chan ports.ActivityInput
	service ports.AuditService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ActivityInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ActivityInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an entry to the worker responsible for its entity. When
// the worker's buffer is full the entry is dropped rather than blocking a
// request handler; the trail is best-effort.
func (d *Dispatcher) Enqueue(entry ports.ActivityInput) {
	select {
	case d.workers[d.shardIndex(entry.Entity)] <- entry:
	default:
		metrics.AuditDroppedTotal.Inc()
		d.log.Warn().Str("entity", entry.Entity).Msg("audit queue full, entry dropped")
	}
}

// shardIndex maps an entity name deterministically to a worker index.
func (d *Dispatcher) shardIndex(entity string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(entity))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ActivityInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, entry); err != nil {
				metrics.AuditErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("entity", entry.Entity).
					Int("worker_id", id).
					Msg("activity persistence failed")
			} else {
				metrics.AuditRecordedTotal.WithLabelValues(entry.Entity).Inc()
			}
		}
	}
}
