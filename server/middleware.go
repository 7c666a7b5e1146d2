package server

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/relaypage/logging"
	"github.com/ncobase/relaypage/tracing"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
)

// TraceHeader carries the request trace id in and out.
const TraceHeader = "X-Trace-ID"

// Trace assigns a trace id to every request and opens a server span.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		if id := c.GetHeader(TraceHeader); id != "" {
			ctx = tracing.SetTraceID(ctx, id)
		}
		ctx, traceID := tracing.EnsureTraceID(ctx)
		c.Header(TraceHeader, traceID)

		ctx, span := tracing.Start(ctx, fmt.Sprintf("%s %s", c.Request.Method, c.FullPath()),
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.target", c.Request.URL.Path),
			attribute.String(tracing.TraceIDKey, traceID),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= 500 {
			span.SetStatus(codes.Error, fmt.Sprintf("status %d", status))
		}
	}
}

// AccessLog logs one line per request.
func AccessLog(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.EntryWithFields(c.Request.Context(), logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"query":   c.Request.URL.RawQuery,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		})
		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("request failed")
		case status >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request")
		}
	}
}
