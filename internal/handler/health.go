package handler

import (
	"net/http"
	"runtime"
	"time"

	"ascend-local-store/internal/repository"
	"ascend-local-store/pkg/response"
)

// StartTime tracks when the server started for uptime calculation
var StartTime = time.Now()

// Handler contains shared HTTP handlers and their dependencies.
type Handler struct {
	db      *repository.DB
	version string
}

// New creates a new handler.
func New(db *repository.DB, version string) *Handler {
	return &Handler{db: db, version: version}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// Health handles GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   h.version,
	}
	response.OK(w, resp)
}

// StatusChecks represents the checks in status response
type StatusChecks struct {
	Store         string  `json:"store"`
	SchemaVersion int     `json:"schema_version"`
	MemoryMB      float64 `json:"memory_mb"`
}

// StatusResponse represents the unified status response
type StatusResponse struct {
	Service       string       `json:"service"`
	Status        string       `json:"status"`
	Timestamp     string       `json:"timestamp"`
	UptimeSeconds int64        `json:"uptime_seconds"`
	Checks        StatusChecks `json:"checks"`
}

// Status handles GET /api/status - unified health check including the store
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	memoryMB := float64(memStats.Alloc) / 1024 / 1024

	storeStatus := "ok"
	schemaVersion, err := h.db.SchemaVersion()
	if err != nil {
		storeStatus = "error"
	}

	resp := StatusResponse{
		Service:       "ascend-local-store",
		Status:        "ok",
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds: int64(time.Since(StartTime).Seconds()),
		Checks: StatusChecks{
			Store:         storeStatus,
			SchemaVersion: schemaVersion,
			MemoryMB:      float64(int(memoryMB*100)) / 100,
		},
	}

	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	response.OK(w, resp)
}
