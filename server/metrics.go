package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "segmenter_requests_total",
		Help: "Number of segmentation requests served.",
	})

	segmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "segmenter_segments_total",
		Help: "Segments emitted, labeled by kind.",
	}, []string{"kind"})

	fallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "segmenter_fallbacks_total",
		Help: "Requests with no extractable structure, answered with the single fallback segment.",
	})
)
