package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	newRouter := func(requestsPerMinute, burst int) *mux.Router {
		r := mux.NewRouter()
		r.Use(RateLimit(requestsPerMinute, burst))
		r.HandleFunc("/tenants/{tenantId}/ping", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}).Methods(http.MethodGet)
		return r
	}

	do := func(router *mux.Router, tenantID int) int {
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/tenants/%d/ping", tenantID), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	t.Run("burst exhausted", func(t *testing.T) {
		router := newRouter(1, 2)

		assert.Equal(t, http.StatusOK, do(router, 1))
		assert.Equal(t, http.StatusOK, do(router, 1))
		assert.Equal(t, http.StatusTooManyRequests, do(router, 1))
	})

	t.Run("tenants are limited independently", func(t *testing.T) {
		router := newRouter(1, 1)

		assert.Equal(t, http.StatusOK, do(router, 1))
		assert.Equal(t, http.StatusTooManyRequests, do(router, 1))
		assert.Equal(t, http.StatusOK, do(router, 2))
	})
}
