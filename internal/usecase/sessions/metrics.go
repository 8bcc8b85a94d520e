package sessions

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	logins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "camera_logins_total",
			Help: "Successful token exchanges per camera",
		},
		[]string{"camera"},
	)

	loginFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "camera_login_failures_total",
			Help: "Failed login attempts per camera",
		},
		[]string{"camera"},
	)
)
