package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jaekwang-park/todo-rest-api/internal/http/response"
)

// ServiceInfo identifies the running service in health and index responses.
type ServiceInfo struct {
	Name    string
	Version string
	Env     string
}

type healthStatus struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	Version       string `json:"version"`
	Env           string `json:"env"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

type HealthHandler struct {
	info    ServiceInfo
	started time.Time
}

func NewHealthHandler(info ServiceInfo) *HealthHandler {
	return &HealthHandler{info: info, started: time.Now()}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		response.MethodNotAllowed(w)
		return
	}

	response.WriteData(w, http.StatusOK, healthStatus{
		Status:        "ok",
		Service:       h.info.Name,
		Version:       h.info.Version,
		Env:           h.info.Env,
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
	})
}

// Pinger is satisfied by *sql.DB and *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type dbStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// DBHealthHandler reports whether the database answers a ping within timeout.
type DBHealthHandler struct {
	db      Pinger
	timeout time.Duration
	logger  *slog.Logger
}

func NewDBHealthHandler(db Pinger, timeout time.Duration, logger *slog.Logger) *DBHealthHandler {
	return &DBHealthHandler{db: db, timeout: timeout, logger: logger}
}

func (h *DBHealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		response.MethodNotAllowed(w)
		return
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("database health check failed", "error", err)
		response.WriteError(w, http.StatusServiceUnavailable, response.KindServiceUnavailable, "database unreachable")
		return
	}

	response.WriteData(w, http.StatusOK, dbStatus{Status: "ok", Database: "connected"})
}
