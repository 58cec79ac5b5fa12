package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	Health(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, `{"status":"UP","app":"mita"}`, w.Body.String())

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "UP", body["status"])
	assert.Equal(t, "mita", body["app"])
}

func TestHello(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/hello", nil)
	w := httptest.NewRecorder()
	Hello(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, `{"message":"Hello from MITA App!"}`, w.Body.String())
}

func TestFixedResponsesAreIdempotent(t *testing.T) {
	handlers := map[string]http.HandlerFunc{
		"/health": Health,
		"/hello":  Hello,
	}
	for path, h := range handlers {
		t.Run(path, func(t *testing.T) {
			var first string
			for i := 0; i < 5; i++ {
				w := httptest.NewRecorder()
				h(w, httptest.NewRequest(http.MethodGet, path, nil))
				require.Equal(t, http.StatusOK, w.Code)
				if i == 0 {
					first = w.Body.String()
					continue
				}
				assert.Equal(t, first, w.Body.String())
			}
		})
	}
}

func TestHealthIgnoresQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health?verbose=1", nil)
	w := httptest.NewRecorder()
	Health(w, req)

	assert.Equal(t, `{"status":"UP","app":"mita"}`, w.Body.String())
}
