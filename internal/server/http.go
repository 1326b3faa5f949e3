package server

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/qcm-math/internal/config"
	"github.com/gokatarajesh/qcm-math/internal/logging"
	"github.com/gokatarajesh/qcm-math/internal/quiz"
	"github.com/gokatarajesh/qcm-math/internal/scoring"
)

const requestIDHeader = "X-Request-ID"

// Handlers groups the endpoints mounted by NewHTTPServer.
type Handlers struct {
	Quiz    *quiz.HTTPHandler
	Scoring *scoring.HTTPHandler
	// Metrics defaults to promhttp.Handler().
	Metrics http.Handler
}

// NewHTTPServer wires the API routes behind CORS and request logging.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, h Handlers) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewHandler(cfg.CORS, logger, h),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// NewHandler builds the router without binding it to an address.
func NewHandler(corsCfg config.CORS, logger zerolog.Logger, h Handlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	metricsHandler := h.Metrics
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	mux.Handle("GET /metrics", metricsHandler)

	if h.Quiz != nil {
		mux.HandleFunc("POST /api/generate", h.Quiz.HandleGenerate)
		mux.HandleFunc("GET /api/subjects", h.Quiz.HandleSubjects)
	}
	if h.Scoring != nil {
		mux.HandleFunc("POST /api/score", h.Scoring.HandleScore)
		mux.HandleFunc("GET /api/scores/recent", h.Scoring.HandleRecent)
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   corsCfg.AllowedOrigins,
		AllowedMethods:   corsCfg.AllowedMethods,
		AllowedHeaders:   corsCfg.AllowedHeaders,
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: corsCfg.AllowCredentials,
		MaxAge:           corsCfg.MaxAge,
	})
	return corsHandler(requestLogger(logger)(mux))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// requestLogger tags every request with an id and stores the derived
// logger in the request context.
func requestLogger(base zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(requestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, requestID)

			logger := base.With().Str("request_id", requestID).Logger()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rec, r.WithContext(logging.IntoContext(r.Context(), logger)))

			event := logger.Info()
			if rec.status >= http.StatusInternalServerError {
				event = logger.Error()
			}
			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.status).
				Dur("duration", time.Since(start)).
				Msg("http request")
		})
	}
}
