package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ContractCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poe_engagement_calls_total",
			Help: "Total number of engagement contract calls",
		},
		[]string{"method", "status"},
	)

	DistributedFundsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poe_engagement_distributed_funds_total",
			Help: "Total amount of distributed funds",
		},
		[]string{"denom"},
	)

	WithdrawnFundsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poe_engagement_withdrawn_funds_total",
			Help: "Total amount of withdrawn funds",
		},
		[]string{"denom"},
	)

	HalflifeAppliedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "poe_engagement_halflife_applied_total",
			Help: "Total number of applied half-life decays",
		},
	)

	MixerScoresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poe_mixer_scores_total",
			Help: "Total number of computed mixer scores",
		},
		[]string{"function", "status"},
	)
)

// Status returns status label value for err.
func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
