package rpc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// rpcCalls tracks calls per daemon method
	rpcCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keyctl_rpc_calls_total",
			Help: "Total number of RPC calls to keymapd",
		},
		[]string{"method"},
	)

	// rpcErrors tracks failed calls per method and status code
	rpcErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keyctl_rpc_errors_total",
			Help: "Total number of failed RPC calls to keymapd",
		},
		[]string{"method", "code"},
	)

	// rpcLatency tracks call latency per method
	rpcLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "keyctl_rpc_latency_seconds",
			Help:    "RPC call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)
