package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/flarewebs/flarewebs-server/internal/logger"
	"github.com/flarewebs/flarewebs-server/internal/model"
)

type detail struct {
	Detail any `json:"detail"`
}

type validationDetail struct {
	Body map[string]string `json:"body"`
	Path []string          `json:"path"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, detail{Detail: msg})
}

// WriteError converts err into a JSON error response. Errors that do not
// carry a status are logged and reported as 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error, l *logger.Logger) {
	var apiErr *model.APIError
	switch {
	case errors.As(err, &apiErr):
		if apiErr.Status == http.StatusUnprocessableEntity {
			writeJSON(w, apiErr.Status, detail{Detail: validationDetail{Body: apiErr.Fields, Path: apiErr.Path}})
			return
		}
		if apiErr.Status == http.StatusUnauthorized {
			w.Header().Set("WWW-Authenticate", "Bearer")
		}
		writeJSON(w, apiErr.Status, detail{Detail: apiErr.Message})
	case errors.Is(err, model.ErrNotFound):
		writeJSON(w, http.StatusNotFound, detail{Detail: "Could not find this record"})
	case errors.Is(err, model.ErrStorageUnavailable):
		l.Warn("HTTP handler: object storage unavailable",
			"path", r.URL.Path,
			"error", err.Error())
		writeJSON(w, http.StatusServiceUnavailable, detail{Detail: "Object storage is unavailable"})
	case errors.Is(err, model.ErrNameUnavailable):
		writeJSON(w, http.StatusConflict, detail{Detail: "Could not allocate a free object name"})
	default:
		l.Error("HTTP handler: request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error())
		writeJSON(w, http.StatusInternalServerError, detail{Detail: "Internal Server Error"})
	}
}
