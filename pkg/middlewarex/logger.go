package middlewarex

import (
	"log/slog"
	"net/http"
	"time"

	"bankocr/pkg/contextx"
	"bankocr/pkg/logx"
)

// Logger puts a request-scoped logger into the context and logs the
// request duration at debug level.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		start := time.Now()

		traceID, err := contextx.TraceIDFromContext(ctx)
		if err != nil {
			logger(ctx).Error("contextx.TraceIDFromContext", logx.Error(err))
		}

		log := logger(ctx).With(
			logx.Stringer(logx.FieldTraceID, traceID),
			logx.Stringer(logx.FieldURL, r.URL),
			slog.String(logx.FieldHTTPMethod, r.Method),
			slog.String(logx.FieldIP, r.RemoteAddr),
		)

		next.ServeHTTP(w, r.WithContext(contextx.WithLogger(ctx, log)))

		log.Debug("request served", slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()))
	})
}
