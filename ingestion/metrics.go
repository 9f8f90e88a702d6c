package ingestion

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	jobsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "regulatorai",
		Subsystem: "ingestion",
		Name:      "jobs_submitted_total",
		Help:      "Number of ingestion jobs submitted.",
	})

	jobsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "regulatorai",
		Subsystem: "ingestion",
		Name:      "jobs_completed_total",
		Help:      "Number of ingestion jobs that reached the completed state.",
	})

	jobsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "regulatorai",
		Subsystem: "ingestion",
		Name:      "jobs_failed_total",
		Help:      "Number of ingestion jobs that reached the failed state, by stage.",
	}, []string{"stage"})

	chunksEmbedded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "regulatorai",
		Subsystem: "ingestion",
		Name:      "chunks_embedded_total",
		Help:      "Number of chunks that received an embedding.",
	})
)
