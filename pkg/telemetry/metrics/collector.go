package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/Gredelston/minecraft-scripts/pkg/config"
)

const subsystem = "backup"

// Collector owns the run metrics on a private registry. The tool is a
// short-lived batch process and never opens a listener: when a
// Pushgateway URL is configured the registry is pushed once at the end
// of a run, and without one every recording call is a no-op.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	runsTotal      *prometheus.CounterVec
	backupsCreated *prometheus.CounterVec
	archivesPruned *prometheus.CounterVec
	bytesReclaimed *prometheus.CounterVec
	runDuration    prometheus.Histogram
	lastSuccess    prometheus.Gauge
}

// NewCollector creates a metrics collector with its own registry.
func NewCollector(cfg *config.MetricsConfig) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		config:   cfg,
		registry: registry,
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: subsystem,
			Name:      "runs_total",
			Help:      "Backup runs by final status (success, failed).",
		}, []string{"status"}),
		backupsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: subsystem,
			Name:      "archives_created_total",
			Help:      "Archives created, per tier.",
		}, []string{"tier"}),
		archivesPruned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: subsystem,
			Name:      "archives_pruned_total",
			Help:      "Archives deleted by retention, per tier.",
		}, []string{"tier"}),
		bytesReclaimed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: subsystem,
			Name:      "bytes_reclaimed_total",
			Help:      "Bytes reclaimed by retention pruning, per tier.",
		}, []string{"tier"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: subsystem,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of one backup run.",
			// A run is dominated by tar over a multi-GB world.
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Subsystem: subsystem,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful backup run.",
		}),
	}

	registry.MustRegister(
		c.runsTotal,
		c.backupsCreated,
		c.archivesPruned,
		c.bytesReclaimed,
		c.runDuration,
		c.lastSuccess,
	)

	return c
}

// Enabled reports whether metrics will be pushed anywhere.
func (c *Collector) Enabled() bool {
	return c.config.PushURL != ""
}

// RecordRun records one completed run with its final status ("success"
// or "failed") and wall-clock duration.
func (c *Collector) RecordRun(status string, duration time.Duration) {
	if !c.Enabled() {
		return
	}

	c.runsTotal.WithLabelValues(status).Inc()
	c.runDuration.Observe(duration.Seconds())
	if status == "success" {
		c.lastSuccess.SetToCurrentTime()
	}
}

// RecordBackupCreated records one created archive.
func (c *Collector) RecordBackupCreated(tier string) {
	if !c.Enabled() {
		return
	}

	c.backupsCreated.WithLabelValues(tier).Inc()
}

// RecordArchivePruned records one archive deleted by retention. Size may
// be zero when it was not known at scan time.
func (c *Collector) RecordArchivePruned(tier string, sizeBytes int64) {
	if !c.Enabled() {
		return
	}

	c.archivesPruned.WithLabelValues(tier).Inc()
	if sizeBytes > 0 {
		c.bytesReclaimed.WithLabelValues(tier).Add(float64(sizeBytes))
	}
}

// Push sends the registry to the configured Pushgateway under the
// configured job name. It is a no-op without a push URL.
func (c *Collector) Push(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}

	return push.New(c.config.PushURL, c.config.Job).
		Gatherer(c.registry).
		PushContext(ctx)
}

// Registry returns the collector's private Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
