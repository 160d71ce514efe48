package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/agency-dashboard/pkg/metrics"
)

// routePrefixes limitam a cardinalidade do label route
var routePrefixes = []string{
	"/v1/manager",
	"/v1/summary",
	"/manager",
	"/summary",
	"/access",
	"/logout",
	"/healthcheck",
	"/metrics",
}

// RouteOf retorna o prefixo conhecido do caminho, ou "other"
func RouteOf(path string) string {
	for _, prefix := range routePrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return prefix
		}
	}
	if path == "/" {
		return "/"
	}
	return "other"
}

// MetricsMiddleware registra contagem e duração das requisições
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := RouteOf(r.URL.Path)
			lrw := newLoggingResponseWriter(w)
			start := time.Now()

			next.ServeHTTP(lrw, r)

			metrics.HTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
			metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(lrw.statusCode)).Inc()
		})
	}
}
