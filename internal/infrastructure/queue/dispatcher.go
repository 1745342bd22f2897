package queue

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/projclock/projclock/internal/api/metrics"
	"github.com/projclock/projclock/internal/core/domain"
	"github.com/projclock/projclock/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// AuditDispatcher persists audit events off the request path. Events are
// routed to a fixed set of workers by hashing the entity key, so all events
// for one entity are written in order.
type AuditDispatcher struct {
	workers []chan domain.AuditEvent
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewAuditDispatcher creates an AuditDispatcher with numWorkers sharded
// workers. If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AuditDispatcher{
		workers: make([]chan domain.AuditEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *AuditDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an audit event. When the shard's buffer is full the event
// is dropped rather than blocking the request path.
func (d *AuditDispatcher) Record(e domain.AuditEvent) {
	idx := d.shardIndex(e)
	select {
	case d.workers[idx] <- e:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.log.Warn().
			Str("entity", e.Entity).
			Int64("entity_id", e.EntityID).
			Msg("audit queue full, event dropped")
	}
}

// shardIndex maps an entity deterministically to a worker index.
func (d *AuditDispatcher) shardIndex(e domain.AuditEvent) int {
	h := fnv.New32a()
	_, _ = fmt.Fprintf(h, "%s:%d", e.Entity, e.EntityID)
	return int(h.Sum32()) % len(d.workers)
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEvent) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.repo.Insert(ctx, &event); err != nil {
				d.log.Error().Err(err).
					Str("entity", event.Entity).
					Int64("entity_id", event.EntityID).
					Int("worker_id", id).
					Msg("audit event persistence failed")
				continue
			}
			metrics.AuditEventsTotal.WithLabelValues(event.Entity, event.Action).Inc()
		}
	}
}
