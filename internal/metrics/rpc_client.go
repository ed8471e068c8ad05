package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cryptocator",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of node RPC operations.",
	}, []string{"operation", "method", "chain", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cryptocator",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "method", "chain", "status"})
)

// RPCClient tracks metrics for calls to the Ethereum node.
type RPCClient struct {
	chain string
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(chainID uint64) *RPCClient {
	chain := "unknown"
	if chainID != 0 {
		chain = strconv.FormatUint(chainID, 10)
	}
	return &RPCClient{chain: chain}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation, method string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if method == "" {
		method = "none"
	}

	rpcRequestsTotal.WithLabelValues(operation, method, m.chain, status).Inc()
	rpcRequestDuration.WithLabelValues(operation, method, m.chain, status).Observe(time.Since(started).Seconds())
}
