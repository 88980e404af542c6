package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts processing outcomes for operational visibility.
type Metrics struct {
	Processed   *prometheus.CounterVec
	DraftSource *prometheus.CounterVec
}

// NewMetrics registers the counters on the default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		Processed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "persberichten_documents_total",
			Help: "Processed documents by result and fatal code.",
		}, []string{"result", "code"}),
		DraftSource: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "persberichten_drafts_total",
			Help: "Produced drafts by source strategy.",
		}, []string{"source"}),
	}
}

func (m *Metrics) IncProcessed(result, code string) {
	if m == nil || m.Processed == nil {
		return
	}
	m.Processed.WithLabelValues(result, code).Inc()
}

func (m *Metrics) IncDraft(source string) {
	if m == nil || m.DraftSource == nil {
		return
	}
	m.DraftSource.WithLabelValues(source).Inc()
}
