package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreMutationsTotal counts store mutations by store and operation.
	StoreMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "photofeed_store_mutations_total",
		Help: "Total number of store mutations by store and operation",
	}, []string{"store", "operation"})

	// AuthAttemptsTotal counts login/register attempts by operation and outcome.
	AuthAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "photofeed_auth_attempts_total",
		Help: "Total number of authentication attempts by operation and outcome",
	}, []string{"operation", "outcome"})

	// BannerShowsTotal counts notification banner displays by kind.
	BannerShowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "photofeed_banner_shows_total",
		Help: "Total number of notification banner displays by kind",
	}, []string{"kind"})

	// DanglingParentsTotal counts comments surfaced as roots because their
	// parent id named no comment on the post.
	DanglingParentsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "photofeed_comment_dangling_parents_total",
		Help: "Total number of comments with a parent id that resolved to no comment",
	})
)
