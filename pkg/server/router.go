package server

import (
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NVIDIA/semver-parser/pkg/serializer"
)

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// System endpoints (no rate limiting)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	// API endpoints with middleware; the root handler stays unwrapped so
	// probes and casual GETs don't consume rate limit tokens
	for path, handler := range s.config.Handlers {
		if path == "/" {
			mux.HandleFunc(path, handler)
			continue
		}
		mux.HandleFunc(path, s.withMiddleware(handler))
	}

	return mux
}

func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	slog.Debug("handling default route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	routes := make([]string, 0, len(s.config.Handlers)+3)
	for path := range s.config.Handlers {
		if path == "/" {
			continue
		}
		routes = append(routes, "GET "+path)
	}
	sort.Strings(routes)
	routes = append(routes, "GET /health", "GET /ready", "GET /metrics")

	resp := struct {
		Name      string   `json:"name"`
		Version   string   `json:"version"`
		Ready     bool     `json:"ready"`
		Timestamp string   `json:"timestamp"`
		Routes    []string `json:"routes"`
	}{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    routes,
	}

	s.mu.RLock()
	resp.Ready = s.ready
	s.mu.RUnlock()

	serializer.RespondJSON(w, http.StatusOK, resp)
}
