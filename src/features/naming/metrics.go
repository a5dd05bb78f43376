package naming

import (
	"errors"

	"github.com/contre95/namer/src/names"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts parse attempts by strategy and failures by kind.
type Metrics struct {
	parses *prometheus.CounterVec
	errors *prometheus.CounterVec
}

// NewMetrics registers the naming counters on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		parses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "namer_parse_total",
			Help: "Names parsed, by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "namer_parse_errors_total",
			Help: "Parse failures, by error kind.",
		}, []string{"kind"}),
	}
	for _, c := range []prometheus.Collector{m.parses, m.errors} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(strategy Strategy, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.parses.WithLabelValues(string(strategy), "error").Inc()
		m.errors.WithLabelValues(ErrorKind(err)).Inc()
		return
	}
	m.parses.WithLabelValues(string(strategy), "ok").Inc()
}

var errorKinds = []struct {
	err  error
	kind string
}{
	{names.ErrEmptyInput, "empty_input"},
	{names.ErrPartOverflow, "part_overflow"},
	{names.ErrMalformedPartPrefix, "malformed_part_prefix"},
	{names.ErrUnterminatedAttributeBlock, "unterminated_attribute_block"},
	{names.ErrMalformedAttributeToken, "malformed_attribute_token"},
	{names.ErrMissingAssignment, "missing_assignment"},
	{names.ErrInvalidAttributeValue, "invalid_attribute_value"},
	{names.ErrSuffixAttributeAdjacency, "suffix_attribute_adjacency"},
	{names.ErrInvalidDateComponent, "invalid_date_component"},
}

// ErrorKind maps a parse error to a short label.
func ErrorKind(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "other"
}

// Totals sums every counter gathered from g by metric name.
func Totals(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(families))
	for _, f := range families {
		for _, m := range f.GetMetric() {
			out[f.GetName()] += m.GetCounter().GetValue()
		}
	}
	return out, nil
}
