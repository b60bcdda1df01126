package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opListTranslations = "list_translations"
	opListBooks        = "list_books"
	opGetChapter       = "get_chapter"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "helloao_client",
			Name:      "requests_total",
			Help:      "API requests issued, by operation.",
		},
		[]string{"operation"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "helloao_client",
			Name:      "request_failures_total",
			Help:      "API requests that ended in a load failure, by operation.",
		},
		[]string{"operation"},
	)
)
