package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"trade-analytics/internal/shared/loggers"
	"trade-analytics/internal/shared/metrics"
	"trade-analytics/internal/shared/svcerrors"
	"trade-analytics/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

func setupMiddleware(router *chi.Mux, httpLogger loggers.Logger) {
	router.Use(mwRequestID(httpLogger))
	router.Use(mwAppResponseWriter)
	router.Use(mwPrometheus)
	router.Use(mwRequestCompletionLog)
	router.Use(mwRecoverer)
}

// mwAppResponseWriter initializes the appResponseWriter once and passes it through the middleware chain.
func mwAppResponseWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appWriter := newAppResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(appWriter, r)
	})
}

// mwPrometheus records request counts and latency per chi route pattern, and the bytes of
// every artifact streamed.
func mwPrometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}

		status := http.StatusOK
		errorCode := metrics.ValueNoError
		if appWriter, ok := w.(*appResponseWriter); ok {
			status = appWriter.StatusOrOK()
			errorCode = appWriter.ErrorCode()
			if artifact, served := appWriter.Artifact(); served {
				metricArtifactBytesServed.WithLabelValues(string(artifact.Kind)).Add(float64(appWriter.BytesWritten()))
			}
		}
		statusStr := strconv.Itoa(status)

		metricHTTPRequestsTotal.WithLabelValues(r.Method, route, statusStr, errorCode).Inc()
		metricHTTPRequestDuration.WithLabelValues(r.Method, route, statusStr, errorCode).
			Observe(time.Since(start).Seconds())
	})
}

// mwRequestID extracts or generates a request ID and attaches a request-scoped logger to context.
func mwRequestID(httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := requestID(r)
			if requestID == "" {
				requestID = ulid.NewULID()
				setRequestID(r, requestID)
			}
			ctxWithReqLogger := httpLogger.With().
				Str(loggers.FieldRequestID, requestID).
				Logger().WithContext(r.Context())

			next.ServeHTTP(w, r.WithContext(ctxWithReqLogger))
		})
	}
}

// mwRequestCompletionLog logs one line per request, naming the artifact when one was streamed.
func mwRequestCompletionLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			event := loggers.Ctx(r.Context()).Info().
				Str(loggers.FieldHttpMethod, r.Method).
				Str(loggers.FieldHttpPath, r.URL.Path)

			status := http.StatusOK
			if appWriter, ok := w.(*appResponseWriter); ok {
				status = appWriter.StatusOrOK()
				if artifact, served := appWriter.Artifact(); served {
					event = event.
						Str(loggers.FieldArtifact, artifact.Name).
						Int("bytes", appWriter.BytesWritten())
				}
			}
			event.
				Int(loggers.FieldHttpStatus, status).
				Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
				Msg("request completed")
		}()

		next.ServeHTTP(w, r)
	})
}

// mwRecoverer provides panic recovery middleware.
func mwRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				loggers.Ctx(r.Context()).Error().
					Bytes(loggers.FieldErrorStack, debug.Stack()).
					Msgf("http panic recovered: %v", p)

				// Convert panic value to error
				var panicErr error
				if err, ok := p.(error); ok {
					panicErr = err
				} else {
					panicErr = fmt.Errorf("%v", p)
				}

				svcErr := svcerrors.NewInternalErrorPanic(panicErr)
				writeErrorResponse(w, r, svcErr)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// mwUploadRateLimit rejects requests once the shared token bucket is empty.
func mwUploadRateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				loggers.Ctx(r.Context()).Warn().
					Str(loggers.FieldHttpPath, r.URL.Path).
					Msg("upload rate limit exceeded")
				metricUploadsRateLimitedTotal.WithLabelValues().Inc()

				w.Header().Set(headerRetryAfter, "1")
				writeErrorResponse(w, r, errRateLimited())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
