package sorting

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// sortsTotal counts sort invocations by algorithm and outcome.
	//
	// Labels:
	//   - algorithm: the SortType tag of the sorter.
	//   - has_error: "true" if the invocation returned an error (nil
	//     sequence, unresolvable ordering), "false" otherwise.
	sortsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sort_operations_total",
		Help: "The total number of sort invocations",
	}, []string{"algorithm", "has_error"})

	// sortTime tracks the duration of successful sorts in milliseconds.
	// Buckets cover sub-millisecond sorts of small slices up to multi-second
	// sorts of large inputs under the quadratic algorithms.
	sortTime = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "sort_duration_millis",
		Help: "The time spent sorting, in milliseconds",
		Buckets: []float64{
			0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000, 5000,
		},
	}, []string{"algorithm"})
)

// observeSort records the outcome and duration of one sort invocation.
func observeSort(algorithm SortType, start time.Time, err error) {
	sortsTotal.WithLabelValues(algorithm.String(), strconv.FormatBool(err != nil)).Inc()

	if err == nil {
		sortTime.WithLabelValues(algorithm.String()).
			Observe(float64(time.Since(start).Microseconds()) / 1e3)
	}
}

// init pre-registers every label combination so the time series exist from
// process start, keeping rate() queries and zero-vs-absent distinctions
// accurate before the first sort runs.
func init() {
	for _, t := range SortTypes() {
		sortsTotal.WithLabelValues(t.String(), "true").Add(0)
		sortsTotal.WithLabelValues(t.String(), "false").Add(0)
	}
}
