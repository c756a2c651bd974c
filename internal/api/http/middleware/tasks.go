package middleware

import (
	"net/http"

	"github.com/flarewebs/flarewebs-server/internal/worker"
)

// Flusher submits the tasks collected in a batch.
type Flusher interface {
	Flush(b *worker.Batch)
}

// Tasks holds back tasks deferred while a request is served and releases
// them once the handler has written its response.
type Tasks struct {
	flusher Flusher
}

func NewTasks(flusher Flusher) *Tasks {
	return &Tasks{flusher: flusher}
}

func (m *Tasks) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, batch := worker.WithBatch(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
		m.flusher.Flush(batch)
	})
}
