package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the process module: document analysis
// outcomes, merge latency, timeline reconstructions, and the pending-patch
// backlog.
type Metrics struct {
	ProcessesCreated  prometheus.Counter
	DocumentsAnalyzed *prometheus.CounterVec
	MergeDuration     prometheus.Histogram
	TimelinesBuilt    prometheus.Counter
	PhaseChanges      *prometheus.CounterVec
	PendingPatches    prometheus.Gauge
}

// New creates a new Metrics instance with all process module metrics registered.
func New() *Metrics {
	return &Metrics{
		ProcessesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dossier_processes_created_total",
			Help: "Total number of processes created",
		}),
		DocumentsAnalyzed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dossier_documents_analyzed_total",
			Help: "Document analysis attempts by document type and outcome",
		}, []string{"document_type", "outcome"}),
		MergeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dossier_field_merge_duration_seconds",
			Help:    "Duration of analyze-and-merge operations end to end",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		TimelinesBuilt: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dossier_timelines_reconstructed_total",
			Help: "Total number of timeline reconstructions served",
		}),
		PhaseChanges: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dossier_phase_changes_total",
			Help: "Recorded phase changes by target phase",
		}, []string{"phase"}),
		PendingPatches: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "dossier_pending_patches",
			Help: "Merge patches retained after a failed save, awaiting retry",
		}),
	}
}

// IncrementProcessCreated records a successful process creation.
func (m *Metrics) IncrementProcessCreated() {
	m.ProcessesCreated.Inc()
}

// RecordDocumentAnalyzed records one analysis attempt.
func (m *Metrics) RecordDocumentAnalyzed(documentType, outcome string) {
	m.DocumentsAnalyzed.WithLabelValues(documentType, outcome).Inc()
}

// ObserveMerge records the duration of an analyze-and-merge operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveMerge(start time.Time) {
	m.MergeDuration.Observe(time.Since(start).Seconds())
}

// IncrementTimelinesBuilt records one timeline reconstruction.
func (m *Metrics) IncrementTimelinesBuilt() {
	m.TimelinesBuilt.Inc()
}

// RecordPhaseChange records one status transition.
func (m *Metrics) RecordPhaseChange(phase string) {
	m.PhaseChanges.WithLabelValues(phase).Inc()
}

// PendingPatchRetained / PendingPatchResolved track the retry backlog.
func (m *Metrics) PendingPatchRetained() { m.PendingPatches.Inc() }
func (m *Metrics) PendingPatchResolved() { m.PendingPatches.Dec() }
