// Package clinicstore implements the entity repositories over the
// storage adapter. Every mutation is read whole collection, mutate in
// memory, write whole collection back; there is no locking and no
// compare-and-swap. Last writer wins at collection granularity.
package clinicstore

import (
	"errors"
	"fmt"
	"time"

	"github.com/cliniccare/clinic-api/internal/storage"
	"github.com/cliniccare/clinic-api/pkg/logger"
	"github.com/cliniccare/clinic-api/pkg/metrics"
)

type base struct {
	store storage.Store
	log   *logger.Logger
	m     *metrics.Metrics
}

func newBase(store storage.Store, log *logger.Logger, m *metrics.Metrics) base {
	return base{store: store, log: log, m: m}
}

// readCollection loads a collection, falling back to the empty slice
// when the key is absent or undecodable. Undecodable data is logged
// and counted, never swallowed silently.
func readCollection[T any](b *base, key string) []T {
	var items []T
	start := time.Now()
	err := b.store.Read(key, &items)
	b.m.StoreLatency.WithLabelValues("read").Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		b.m.StoreReads.WithLabelValues(key, "ok").Inc()
	case errors.Is(err, storage.ErrKeyNotFound):
		b.m.StoreReads.WithLabelValues(key, "missing").Inc()
	default:
		b.m.StoreReads.WithLabelValues(key, "corrupt").Inc()
		b.m.CorruptReads.WithLabelValues(key).Inc()
		b.log.Error(err, "collection unreadable, using empty collection", "collection", key)
		return nil
	}
	return items
}

func writeCollection[T any](b *base, key string, items []T) error {
	start := time.Now()
	err := b.store.Write(key, items)
	b.m.StoreLatency.WithLabelValues("write").Observe(time.Since(start).Seconds())

	if err != nil {
		b.m.StoreWrites.WithLabelValues(key, "error").Inc()
		return fmt.Errorf("write %s: %w", key, err)
	}
	b.m.StoreWrites.WithLabelValues(key, "ok").Inc()
	return nil
}
