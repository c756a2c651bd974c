package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/flarewebs/flarewebs-server/internal/logger"
)

const pingTimeout = 2 * time.Second

// Root serves the unauthenticated service endpoints.
type Root struct {
	db     Pinger
	logger *logger.Logger
}

func NewRoot(db Pinger, logger *logger.Logger) *Root {
	return &Root{db: db, logger: logger}
}

func (h *Root) Hello(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"Hello": "World"})
}

// Health reports whether the database answers.
func (h *Root) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("Health check failed",
			"error", err.Error())
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
