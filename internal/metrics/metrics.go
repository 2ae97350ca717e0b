package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_login_attempts_total",
		Help: "Total number of login attempts (successful and failed).",
	}, []string{"status"}) // status: "success" or "failed"

	PaintingsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_paintings_created_total",
		Help: "Total number of paintings created.",
	})
	BlogPostsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_blog_posts_created_total",
		Help: "Total number of blog posts created.",
	})
	SubmissionsReceivedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_submissions_received_total",
		Help: "Total number of reader submissions received.",
	})
	RelatedLookupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_related_lookups_total",
		Help: "Total number of related-item selections served.",
	})
	FacetBuildsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_facet_builds_total",
		Help: "Total number of facet sets computed.",
	})
)
