// Package metrics counts what happens during a dispatch session.
//
// Counters live on a private prometheus.Registry so that several menus
// (for example in tests) never collide on the global default registerer.
package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

const (
	actionsName  = "dispatchsim_menu_actions_total"
	failuresName = "dispatchsim_soft_failures_total"
)

// Recorder holds the session counters.
type Recorder struct {
	// ActionsTotal counts menu selections by action label.
	ActionsTotal *prometheus.CounterVec
	// SoftFailuresTotal counts requests that were rendered as a notice
	// instead of a result (unknown location, no route, empty container).
	SoftFailuresTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRecorder creates a Recorder with all counters registered.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()

	r := &Recorder{registry: reg}
	r.ActionsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: actionsName,
			Help: "Total number of menu actions executed",
		},
		[]string{"action"},
	)
	r.SoftFailuresTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: failuresName,
			Help: "Total number of actions that found nothing to act on",
		},
		[]string{"action", "reason"},
	)

	return r
}

// RecordAction counts one menu selection.
func (r *Recorder) RecordAction(action string) {
	r.ActionsTotal.WithLabelValues(action).Inc()
}

// RecordSoftFailure counts one absorbed failure for action.
func (r *Recorder) RecordSoftFailure(action, reason string) {
	r.SoftFailuresTotal.WithLabelValues(action, reason).Inc()
}

// Registry returns the underlying Prometheus registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Summary is a flat snapshot of the counters, used for the exit log line.
type Summary struct {
	Actions      map[string]int
	SoftFailures int
}

// Total returns the number of actions across all labels.
func (s Summary) Total() int {
	n := 0
	for _, v := range s.Actions {
		n += v
	}

	return n
}

// ActionLabels returns the recorded action labels in sorted order.
func (s Summary) ActionLabels() []string {
	labels := make([]string, 0, len(s.Actions))
	for k := range s.Actions {
		labels = append(labels, k)
	}
	sort.Strings(labels)

	return labels
}

// Summary gathers the registry into a Summary.
func (r *Recorder) Summary() (Summary, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return Summary{}, err
	}

	s := Summary{Actions: map[string]int{}}
	for _, mf := range families {
		switch mf.GetName() {
		case actionsName:
			for _, m := range mf.GetMetric() {
				s.Actions[labelValue(m, "action")] += int(m.GetCounter().GetValue())
			}
		case failuresName:
			for _, m := range mf.GetMetric() {
				s.SoftFailures += int(m.GetCounter().GetValue())
			}
		}
	}

	return s, nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}

	return ""
}
