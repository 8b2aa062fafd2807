package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPingHandler(t *testing.T) {
	t.Run("Answers pong when checks pass", func(t *testing.T) {
		// Given: a handler with a passing check
		handler := NewPingHandler(func(context.Context) error { return nil })

		// When: it is called
		recorder := httptest.NewRecorder()
		handler(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

		// Then: it answers pong
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "pong", recorder.Body.String())
	})

	t.Run("Answers 503 when a check fails", func(t *testing.T) {
		handler := NewPingHandler(
			func(context.Context) error { return nil },
			func(context.Context) error { return errors.New("redis down") },
		)

		recorder := httptest.NewRecorder()
		handler(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})
}
