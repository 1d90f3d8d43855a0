package tree

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics receives instrumentation callbacks from Workers and the
// Tree. Implementations must be safe for concurrent use.
type Metrics interface {
	// InflightWorkers adjusts the count of workers currently inside a
	// rollout, by delta (+1 on start, -1 on completion).
	InflightWorkers(delta int)

	// RolloutStarted is called when a worker begins a new rollout.
	RolloutStarted(workerID int)

	// RolloutCompleted is called when a worker finishes a rollout,
	// reporting the depth reached and the wall-clock duration, in
	// milliseconds, of each protocol phase.
	RolloutCompleted(workerID, depth int, rollinMS, expandMS, scoreMS, backpropMS float64)

	// ExpansionRace is called whenever two workers raced to expand the
	// same edge and one of them discarded its Node.
	ExpansionRace()

	// PendingUpdatesSample reports a point-in-time count of
	// in-flight (selected but not yet backpropagated) edges.
	PendingUpdatesSample(n int64)
}

// NullMetrics discards every call. It is the default Metrics so the
// core never pays for instrumentation it hasn't asked for.
type NullMetrics struct{}

func (NullMetrics) InflightWorkers(int)                                       {}
func (NullMetrics) RolloutStarted(int)                                        {}
func (NullMetrics) RolloutCompleted(int, int, float64, float64, float64, float64) {}
func (NullMetrics) ExpansionRace()                                            {}
func (NullMetrics) PendingUpdatesSample(int64)                                {}

// PrometheusMetrics records Metrics callbacks as Prometheus
// collectors, namespaced "mctscore".
type PrometheusMetrics struct {
	inflightWorkers prometheus.Gauge
	rolloutsTotal   *prometheus.CounterVec
	rolloutLatency  *prometheus.HistogramVec
	treeDepth       prometheus.Histogram
	pendingUpdates  prometheus.Gauge
	expansionRaces  prometheus.Counter
}

// NewPrometheusMetrics registers and returns a PrometheusMetrics
// backed by reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		inflightWorkers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "mctscore",
			Name:      "inflight_workers",
			Help:      "Number of workers currently inside a rollout.",
		}),
		rolloutsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mctscore",
			Name:      "rollouts_total",
			Help:      "Completed rollouts, by worker.",
		}, []string{"worker_id"}),
		rolloutLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mctscore",
			Name:      "rollout_latency_ms",
			Help:      "Rollout phase duration in milliseconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"phase"}),
		treeDepth: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mctscore",
			Name:      "tree_depth",
			Help:      "Depth reached by each rollin.",
			Buckets:   prometheus.LinearBuckets(0, 4, 16),
		}),
		pendingUpdates: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "mctscore",
			Name:      "pending_updates",
			Help:      "Sampled count of edges selected but not yet backpropagated.",
		}),
		expansionRaces: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mctscore",
			Name:      "expansion_races_total",
			Help:      "Times two workers raced to expand the same edge.",
		}),
	}
}

func (p *PrometheusMetrics) InflightWorkers(delta int) {
	p.inflightWorkers.Add(float64(delta))
}

func (p *PrometheusMetrics) RolloutStarted(int) {}

func (p *PrometheusMetrics) RolloutCompleted(workerID, depth int, rollinMS, expandMS, scoreMS, backpropMS float64) {
	p.rolloutsTotal.WithLabelValues(strconv.Itoa(workerID)).Inc()
	p.rolloutLatency.WithLabelValues("rollin").Observe(rollinMS)
	p.rolloutLatency.WithLabelValues("expand").Observe(expandMS)
	p.rolloutLatency.WithLabelValues("score").Observe(scoreMS)
	p.rolloutLatency.WithLabelValues("backprop").Observe(backpropMS)
	p.treeDepth.Observe(float64(depth))
}

func (p *PrometheusMetrics) ExpansionRace() {
	p.expansionRaces.Inc()
}

func (p *PrometheusMetrics) PendingUpdatesSample(n int64) {
	p.pendingUpdates.Set(float64(n))
}
