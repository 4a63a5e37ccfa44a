package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillsphere_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skillsphere_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	Purchases = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillsphere_purchases_total",
		Help: "Purchase attempts by outcome.",
	}, []string{"outcome"})

	CouponRedemptions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillsphere_coupon_redemptions_total",
		Help: "Coupon redemption attempts by outcome.",
	}, []string{"outcome"})
)

// Outcome buckets an error into a low-cardinality metric label
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case IsValidationError(err):
		return "invalid"
	case IsNotFoundError(err):
		return "not_found"
	case IsConflictError(err):
		return "conflict"
	case StatusOf(err) < 500:
		return "rejected"
	default:
		return "error"
	}
}

// MetricsHandler exposes the prometheus registry
func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
