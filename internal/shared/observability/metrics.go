package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	FilesScanned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "code2uml_files_scanned_total",
		Help: "Total number of source files handed to the extractor.",
	})

	ExtractionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "code2uml_extraction_seconds",
		Help:    "Time spent extracting one source file.",
		Buckets: prometheus.DefBuckets,
	})

	GraphModules = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "code2uml_graph_modules_total",
		Help: "Number of module clusters in the last built diagram model.",
	})

	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "code2uml_graph_edges_total",
		Help: "Number of edges in the last built diagram model.",
	})

	RenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "code2uml_render_seconds",
		Help:    "Time spent serializing the diagram model to DOT.",
		Buckets: prometheus.DefBuckets,
	})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "code2uml_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})

	RegenerationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "code2uml_regenerations_total",
		Help: "Total number of diagram regenerations triggered in watch mode.",
	})
)
