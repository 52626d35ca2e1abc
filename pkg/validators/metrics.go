/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package validators

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Checker metrics. Nil *Metrics is valid and records nothing
type Metrics struct {
	checksTotal             *prometheus.CounterVec
	violationsTotal         *prometheus.CounterVec
	checkDuration           *prometheus.HistogramVec
	labelResolutionFailures prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		checksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "checks_total",
			Help:      "Number of executed constraint checks by checker.",
		}, []string{metricsLabelChecker}),
		violationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "violations_total",
			Help:      "Number of data paths violating constraints by checker.",
		}, []string{metricsLabelChecker}),
		checkDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "check_duration_seconds",
			Help:      "Time taken by constraint check.",
			Buckets:   prometheus.DefBuckets,
		}, []string{metricsLabelChecker}),
		labelResolutionFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "label_resolution_failures_total",
			Help:      "Number of display label resolutions degraded to empty labels.",
		}),
	}
	for _, c := range []prometheus.Collector{m.checksTotal, m.violationsTotal, m.checkDuration, m.labelResolutionFailures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) checkDone(checker string, started time.Time, violations int) {
	if m == nil {
		return
	}
	m.checksTotal.WithLabelValues(checker).Inc()
	m.violationsTotal.WithLabelValues(checker).Add(float64(violations))
	m.checkDuration.WithLabelValues(checker).Observe(time.Since(started).Seconds())
}

func (m *Metrics) labelResolutionFailed() {
	if m == nil {
		return
	}
	m.labelResolutionFailures.Inc()
}
