package sortedlist

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors shared by every list configured
// WithMetrics. Series are labelled by list name.
type Metrics struct {
	inserts    *prometheus.CounterVec
	removals   *prometheus.CounterVec
	rejections *prometheus.CounterVec
	elements   *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg. A nil
// registerer leaves them unregistered. Like promauto, it panics if the
// collectors are already registered with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		inserts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sortedlist_inserts_total",
			Help: "The total number of elements inserted",
		}, []string{"list"}),

		removals: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sortedlist_removals_total",
			Help: "The total number of elements removed",
		}, []string{"list"}),

		rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sortedlist_rejections_total",
			Help: "The total number of insertions rejected, by reason",
		}, []string{"list", "reason"}),

		elements: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sortedlist_elements",
			Help: "The current number of elements in the list",
		}, []string{"list"}),
	}
}

func (m *Metrics) inserted(list string, size int) {
	if m == nil {
		return
	}

	m.inserts.WithLabelValues(list).Inc()
	m.elements.WithLabelValues(list).Set(float64(size))
}

func (m *Metrics) removed(list string, size int) {
	if m == nil {
		return
	}

	m.removals.WithLabelValues(list).Inc()
	m.elements.WithLabelValues(list).Set(float64(size))
}

func (m *Metrics) cleared(list string) {
	if m == nil {
		return
	}

	m.elements.WithLabelValues(list).Set(0)
}

func (m *Metrics) rejected(list string, err error) {
	if m == nil {
		return
	}

	m.rejections.WithLabelValues(list, rejectionReason(err)).Inc()
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrTypeMismatch):
		return "type_mismatch"
	case errors.Is(err, ErrUnsupportedKind):
		return "unsupported_kind"
	default:
		return "other"
	}
}
