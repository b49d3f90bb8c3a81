package light

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	updatesImported = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "light_client_updates_imported_total",
		Help: "Count of light client updates accepted, per network.",
	}, []string{"network"})
	updatesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "light_client_updates_rejected_total",
		Help: "Count of light client updates rejected, per network and reason.",
	}, []string{"network", "reason"})
	finalizedSlot = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "light_client_finalized_slot",
		Help: "Slot of the latest finalized header.",
	}, []string{"network"})
	optimisticSlot = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "light_client_optimistic_slot",
		Help: "Slot of the latest optimistic header.",
	}, []string{"network"})
	committeeRotations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "light_client_sync_committee_rotations_total",
		Help: "Count of sync committee rotations, per network.",
	}, []string{"network"})
	updateProcessingTime = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "light_client_update_processing_milliseconds",
		Help:    "Time to verify and apply one light client update.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
)
