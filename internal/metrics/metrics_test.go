package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Requests(t *testing.T) {
	m := New()

	m.RequestStarted()
	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpInflight))

	m.RequestDone(http.MethodGet, "/users/{id}", http.StatusOK, 10*time.Millisecond)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.httpInflight))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/users/{id}", "200")))
}

func TestMetrics_Tasks(t *testing.T) {
	m := New()

	m.TaskDone("delete_object", time.Millisecond, nil)
	m.TaskDone("delete_object", time.Millisecond, errors.New("boom"))
	m.TaskDone("delete_object", time.Millisecond, nil)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.tasksTotal.WithLabelValues("delete_object", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.tasksTotal.WithLabelValues("delete_object", "failed")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.TaskDone("send_mail", time.Millisecond, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `background_tasks_total{result="ok",task="send_mail"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
