package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/alexanderramin/studypal/internal/llm"
)

const metricsNamespace = "studypal"

// PrometheusObserver exports use-case and LLM call metrics. It satisfies
// both UseCaseObserver and llm.Observer.
type PrometheusObserver struct {
	useCases        *prometheus.CounterVec
	useCaseDuration *prometheus.HistogramVec
	llmCalls        *prometheus.CounterVec
	llmLatency      prometheus.Histogram
	stressLevel     *prometheus.GaugeVec
	motivation      *prometheus.GaugeVec
}

// NewPrometheusObserver registers the studypal collectors on reg, reusing
// collectors that are already registered. A nil reg uses the default registerer.
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	o := &PrometheusObserver{
		useCases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "use_cases_total",
			Help:      "Service use cases by name and outcome.",
		}, []string{"use_case", "outcome"}),
		useCaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "use_case_duration_seconds",
			Help:      "Latency of service use cases.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"use_case"}),
		llmCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "llm_calls_total",
			Help:      "LLM calls by task and error code (empty on success).",
		}, []string{"task", "error_code"}),
		llmLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "llm_call_duration_seconds",
			Help:      "Latency of LLM calls including retries.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
		}),
		stressLevel: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "student_stress_level",
			Help:      "Stress level from the latest profile recompute (0 low .. 3 critical).",
		}, []string{"user_id"}),
		motivation: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "student_motivation_level",
			Help:      "Motivation from the latest profile recompute (0..10).",
		}, []string{"user_id"}),
	}

	var err error
	if o.useCases, err = register(reg, o.useCases); err != nil {
		return nil, err
	}
	if o.useCaseDuration, err = register(reg, o.useCaseDuration); err != nil {
		return nil, err
	}
	if o.llmCalls, err = register(reg, o.llmCalls); err != nil {
		return nil, err
	}
	if o.llmLatency, err = register(reg, o.llmLatency); err != nil {
		return nil, err
	}
	if o.stressLevel, err = register(reg, o.stressLevel); err != nil {
		return nil, err
	}
	if o.motivation, err = register(reg, o.motivation); err != nil {
		return nil, err
	}
	return o, nil
}

// register adds c to reg, returning the already registered collector when an
// identical one exists.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("registering metric: %w", err)
	}
	return c, nil
}

func (o *PrometheusObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	outcome := "success"
	if !event.Success {
		outcome = "error"
	}
	o.useCases.WithLabelValues(event.Name, outcome).Inc()
	o.useCaseDuration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())

	if event.Name != useCaseRecompute {
		return
	}
	user, _ := event.Fields["user_id"].(string)
	if stress, ok := event.Fields["stress_level"].(int); ok {
		o.stressLevel.WithLabelValues(user).Set(float64(stress))
	}
	if motivation, ok := event.Fields["motivation"].(int); ok {
		o.motivation.WithLabelValues(user).Set(float64(motivation))
	}
}

func (o *PrometheusObserver) OnCallComplete(event llm.LLMCallEvent) {
	o.llmCalls.WithLabelValues(string(event.Task), event.ErrorCode).Inc()
	o.llmLatency.Observe(float64(event.LatencyMs) / 1000)
}

var (
	_ UseCaseObserver = (*PrometheusObserver)(nil)
	_ llm.Observer    = (*PrometheusObserver)(nil)
)
