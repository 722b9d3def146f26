package monitoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"video-detective/shared/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HealthServer struct {
	monitor *Monitor
	port    int
	router  *chi.Mux
}

func NewHealthServer(monitor *Monitor, port int) *HealthServer {
	if port == 0 {
		port = 8080
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	h := &HealthServer{
		monitor: monitor,
		port:    port,
		router:  router,
	}

	router.Get("/health", h.healthHandler)
	router.Get("/status", h.statusHandler)
	router.Handle("/metrics", promhttp.Handler())

	return h
}

func (h *HealthServer) Handler() http.Handler {
	return h.router
}

// Start serves until ctx is cancelled. It does not block.
func (h *HealthServer) Start(ctx context.Context) {
	logger := logging.WithComponent("health")
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", h.port),
		Handler:           h.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info().Int("port", h.port).Msg("Health check server starting")
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("Health server error")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
}

func (h *HealthServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if h.monitor.IsHealthy() {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK - %s", h.monitor.GetStatusSummary())
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprintf(w, "Service unhealthy - %s", h.monitor.GetStatusSummary())
	}
}

func (h *HealthServer) statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"healthy":        h.monitor.IsHealthy(),
		"summary":        h.monitor.GetStatusSummary(),
		"uptime_seconds": int64(h.monitor.Uptime().Seconds()),
		"reports":        h.monitor.Count(OutcomeReport),
	})
}
