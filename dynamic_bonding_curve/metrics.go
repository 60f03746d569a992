package dynamic_bonding_curve

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/krazyTry/meteora-dbc-config/dynamic_bonding_curve/codec"
)

const (
	resultOK           = "ok"
	resultNotFound     = "not_found"
	resultInvalidOwner = "invalid_owner"
	resultDecodeError  = "decode_error"
	resultRPCError     = "rpc_error"
)

type stateMetrics struct {
	fetches      *prometheus.CounterVec
	decodeErrors *prometheus.CounterVec
}

func newStateMetrics(reg prometheus.Registerer) *stateMetrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	return &stateMetrics{
		fetches: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "dbc",
			Subsystem: "state",
			Name:      "fetch_total",
			Help:      "PoolConfig account fetches by result.",
		}, []string{"result"}),
		decodeErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "dbc",
			Subsystem: "state",
			Name:      "decode_errors_total",
			Help:      "PoolConfig decode failures by kind.",
		}, []string{"kind"}),
	}
}

func (m *stateMetrics) observeFetch(err error) {
	result := resultOK
	switch {
	case err == nil:
	case errors.Is(err, ErrAccountNotFound):
		result = resultNotFound
	case errors.Is(err, ErrInvalidOwner):
		result = resultInvalidOwner
	case isDecodeError(err):
		result = resultDecodeError
	default:
		result = resultRPCError
	}
	m.fetches.WithLabelValues(result).Inc()
}

func (m *stateMetrics) observeDecodeError(err error) {
	m.decodeErrors.WithLabelValues(decodeErrorKind(err)).Inc()
}

func isDecodeError(err error) bool {
	return errors.Is(err, codec.ErrNotPoolConfig) ||
		errors.Is(err, codec.ErrTruncated) ||
		errors.Is(err, codec.ErrUnknownEnumValue)
}

func decodeErrorKind(err error) string {
	switch {
	case errors.Is(err, codec.ErrNotPoolConfig):
		return "format"
	case errors.Is(err, codec.ErrTruncated):
		return "truncated"
	case errors.Is(err, codec.ErrUnknownEnumValue):
		return "domain"
	}
	return "other"
}
