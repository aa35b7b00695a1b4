package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "golf_caddy"

// Store 는 함수 호출과 업스트림 호출 통계를 Prometheus 컬렉터로 보관한다.
type Store struct {
	invocations      *prometheus.CounterVec
	invocationTimes  *prometheus.HistogramVec
	upstreamCalls    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
}

// NewStore 는 통계 저장소를 생성하고 registerer 에 등록한다.
// registerer 가 nil 이면 등록하지 않는다.
func NewStore(registerer prometheus.Registerer) (*Store, error) {
	s := &Store{
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invocations_total",
			Help:      "Function invocations by function and outcome.",
		}, []string{"function", "outcome"}),
		invocationTimes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "invocation_duration_seconds",
			Help:      "Function invocation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"function"}),
		upstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_calls_total",
			Help:      "Gemini generateContent calls by model and status.",
		}, []string{"model", "status"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_duration_seconds",
			Help:      "Gemini generateContent latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"model"}),
	}

	if registerer == nil {
		return s, nil
	}

	var err error
	if s.invocations, err = register(registerer, s.invocations); err != nil {
		return nil, err
	}
	if s.invocationTimes, err = register(registerer, s.invocationTimes); err != nil {
		return nil, err
	}
	if s.upstreamCalls, err = register(registerer, s.upstreamCalls); err != nil {
		return nil, err
	}
	if s.upstreamDuration, err = register(registerer, s.upstreamDuration); err != nil {
		return nil, err
	}
	return s, nil
}

// register 는 컬렉터를 등록하고, 이미 등록된 경우 기존 컬렉터를 재사용한다.
func register[T prometheus.Collector](registerer prometheus.Registerer, collector T) (T, error) {
	err := registerer.Register(collector)
	if err == nil {
		return collector, nil
	}
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(T); ok {
			return existing, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("register metrics: %w", err)
}

// ProvideStore 는 기본 레지스트리에 등록된 저장소를 반환한다.
func ProvideStore() (*Store, error) {
	return NewStore(prometheus.DefaultRegisterer)
}

// RecordInvocation 는 함수 호출 결과를 기록한다. outcome 은 ok, method_not_allowed 또는 오류 종류다.
func (s *Store) RecordInvocation(function string, outcome string, duration time.Duration) {
	if s == nil {
		return
	}
	s.invocations.WithLabelValues(function, outcome).Inc()
	s.invocationTimes.WithLabelValues(function).Observe(duration.Seconds())
}

// RecordUpstream 는 업스트림 호출 결과를 기록한다.
func (s *Store) RecordUpstream(model string, status string, duration time.Duration) {
	if s == nil {
		return
	}
	s.upstreamCalls.WithLabelValues(model, status).Inc()
	s.upstreamDuration.WithLabelValues(model).Observe(duration.Seconds())
}

// Invocations 는 호출 카운터를 노출한다.
func (s *Store) Invocations() *prometheus.CounterVec {
	return s.invocations
}

// UpstreamCalls 는 업스트림 호출 카운터를 노출한다.
func (s *Store) UpstreamCalls() *prometheus.CounterVec {
	return s.upstreamCalls
}
