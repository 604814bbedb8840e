package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BidsAdmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bids_admitted_total",
		Help: "Total number of bids admitted into the ledger",
	})

	BidsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bids_rejected_total",
		Help: "Total number of rejected bid submissions",
	}, []string{"reason"})

	AdmissionRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bid_admission_retries_total",
		Help: "Total number of admission attempts retried after losing an update race",
	})

	AuctionsCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auctions_cancelled_total",
		Help: "Total number of auctions cancelled by their seller",
	})

	AuctionsExpiredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auctions_expired_total",
		Help: "Total number of auctions lazily resolved past their end date",
	}, []string{"outcome"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
