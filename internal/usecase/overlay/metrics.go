package overlay

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	overlaySyncTicksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "overlay_sync_ticks_total",
		Help: "Total number of overlay sync ticks executed.",
	}, []string{"camera"})

	overlaySyncErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "overlay_sync_errors_total",
		Help: "Total number of overlay sync ticks that failed.",
	}, []string{"camera"})
)
