package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flarewebs/flarewebs-server/internal/testutil"
)

func TestRoot_Hello(t *testing.T) {
	h := NewRoot(pinger{}, testutil.MakeNoopLogger())
	rec := serve(t, http.MethodGet, "/", "/", nil, "", nil, h.Hello)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"Hello":"World"}`, rec.Body.String())
}

func TestRoot_Health(t *testing.T) {
	rec := serve(t, http.MethodGet, "/healthz", "/healthz", nil, "", nil,
		NewRoot(pinger{}, testutil.MakeNoopLogger()).Health)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = serve(t, http.MethodGet, "/healthz", "/healthz", nil, "", nil,
		NewRoot(pinger{err: errors.New("connection refused")}, testutil.MakeNoopLogger()).Health)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
