package report

import (
	"fmt"
	"io"

	"github.com/VictoriaMetrics/metrics"
)

// Stats counts the work of a run.
type Stats struct {
	set *metrics.Set
}

func NewStats() *Stats {
	return &Stats{set: metrics.NewSet()}
}

// Packages adds n analyzed packages.
func (s *Stats) Packages(n int) {
	s.set.GetOrCreateCounter("closed_packages_total").Add(n)
}

// Add counts f by category, apart from the suppressed ones.
func (s *Stats) Add(fs ...Finding) {
	for _, f := range fs {
		name := "closed_findings_total"
		if f.Suppressed != "" {
			name = "closed_suppressed_total"
		}
		s.set.GetOrCreateCounter(fmt.Sprintf(`%s{category=%q}`, name, f.Category)).Inc()
	}
}

// Write the counters in Prometheus text format.
func (s *Stats) Write(w io.Writer) {
	s.set.WritePrometheus(w)
}
