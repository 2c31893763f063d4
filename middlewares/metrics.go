package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zarbdor/zarbdor-api/metrics"
)

// Metrics records request count and latency per route. The route template
// is used instead of the raw URL so path parameters do not explode the
// label cardinality.
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(ctx.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(ctx.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(ctx.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
