package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PostsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "board_posts_created_total",
			Help: "Total posts created",
		},
	)
	LikesRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "board_post_likes_total",
			Help: "Total likes recorded",
		},
	)
	SeedLoads = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "board_seed_loads_total",
			Help: "Times the post collection was seeded with sample data",
		},
	)
	StorageLoadFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "board_storage_load_failures_total",
			Help: "Persisted blobs that could not be read or decoded",
		},
	)
)

func Init() {
	prometheus.MustRegister(PostsCreated)
	prometheus.MustRegister(LikesRecorded)
	prometheus.MustRegister(SeedLoads)
	prometheus.MustRegister(StorageLoadFailures)
}
