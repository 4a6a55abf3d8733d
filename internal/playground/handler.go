package playground

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	ratalog "github.com/rata-lang/rata/core/log"
)

// Handler serves the playground's plain HTTP endpoints.
type Handler struct {
	logger    *ratalog.Logger
	startTime time.Time
	version   string
}

// NewHandler creates a new HTTP handler.
func NewHandler(version string, logger *ratalog.Logger) *Handler {
	if logger == nil {
		logger = ratalog.GetDefault()
	}
	return &Handler{
		logger:    logger,
		startTime: time.Now(),
		version:   version,
	}
}

// ErrorResponse is the JSON body of failed HTTP requests.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is the JSON body of the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers so browser-based playground clients can connect
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	path := strings.Trim(r.URL.Path, "/")

	switch path {
	case "":
		h.handleRoot(w, r)
	case "health":
		h.handleHealth(w, r)
	default:
		h.writeError(w, http.StatusNotFound, "not_found", "Endpoint not found", "")
	}
}

// handleRoot describes the available endpoints.
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	info := map[string]interface{}{
		"name":    "Rata Playground",
		"version": h.version,
		"endpoints": []string{
			"GET /health",
			"WS  /ws",
		},
		"protocol": map[string]string{
			"request":  `{"type": "parse"|"tokens"|"ping", "id": "...", "payload": {"source": "..."}}`,
			"response": `{"type": "result"|"pong"|"error", "id": "...", "ok": bool, "payload"|"error": {...}}`,
		},
	}
	h.writeJSON(w, http.StatusOK, info)
}

// handleHealth reports process liveness.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}

	resp := HealthResponse{
		Status:  "healthy",
		Version: h.version,
		Uptime:  time.Since(h.startTime).String(),
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.ErrorWithErr("HTTP response encoding failed", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message, details string) {
	h.writeJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}
