package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all application metrics. Instruments are created
// unregistered so tests can construct as many instances as they like;
// main registers one instance via Register.
type Metrics struct {
	// Store metrics
	StoreReads   *prometheus.CounterVec
	StoreWrites  *prometheus.CounterVec
	StoreLatency *prometheus.HistogramVec

	// Degraded-data events. The store policy is fail-open (default on
	// unreadable data, clamp instead of reject), so these counters are
	// the only trace those paths leave.
	CorruptReads   *prometheus.CounterVec
	ParseFallbacks prometheus.Counter
	StockClamps    prometheus.Counter
	UnknownDrugs   prometheus.Counter
}

// New creates the application metric set.
func New(namespace string) *Metrics {
	return &Metrics{
		StoreReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_reads_total",
			Help:      "Total number of collection reads",
		}, []string{"collection", "status"}),
		StoreWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_writes_total",
			Help:      "Total number of collection writes",
		}, []string{"collection", "status"}),
		StoreLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_operation_duration_seconds",
			Help:      "Duration of store operations",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		CorruptReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_corrupt_reads_total",
			Help:      "Reads that fell back to the default value because stored data was missing or undecodable",
		}, []string{"collection"}),
		ParseFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "amount_parse_fallbacks_total",
			Help:      "Prescription amount strings with no leading numeric run, treated as zero",
		}),
		StockClamps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_clamps_total",
			Help:      "Dispenses that exceeded on-hand stock and were clamped to zero",
		}),
		UnknownDrugs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unknown_drug_dispenses_total",
			Help:      "Prescription lines whose drug name matched no inventory item",
		}),
	}
}

// Register registers every instrument with the given registerer.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.StoreReads,
		m.StoreWrites,
		m.StoreLatency,
		m.CorruptReads,
		m.ParseFallbacks,
		m.StockClamps,
		m.UnknownDrugs,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
