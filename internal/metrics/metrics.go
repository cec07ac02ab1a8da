package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	plansGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nurtureplan",
			Name:      "plans_generated_total",
			Help:      "Count of diet plans generated by profile type.",
		},
		[]string{"profile_type"},
	)

	validationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nurtureplan",
			Name:      "validation_failures_total",
			Help:      "Count of rejected profiles by offending field.",
		},
		[]string{"field"},
	)

	generationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "nurtureplan",
			Name:      "plan_generation_duration_seconds",
			Help:      "Time spent generating a diet plan.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
	)

	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nurtureplan",
			Name:      "plan_cache_lookups_total",
			Help:      "Count of plan cache lookups by result.",
		},
		[]string{"result"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(plansGenerated, validationFailures, generationDuration, cacheLookups)
	})
}

func IncPlanGenerated(profileType string) {
	plansGenerated.WithLabelValues(profileType).Inc()
}

func IncValidationFailure(field string) {
	validationFailures.WithLabelValues(field).Inc()
}

func ObserveGeneration(d time.Duration) {
	generationDuration.Observe(d.Seconds())
}

// ObserveCacheLookup matches dietplan.CacheObserver.
func ObserveCacheLookup(result string) {
	cacheLookups.WithLabelValues(result).Inc()
}
