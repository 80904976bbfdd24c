package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/Salon-AvailabilityService/internal/api/handlers"
)

// tenantLimiterStore хранит лимитеры по ключу тенанта
type tenantLimiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newTenantLimiterStore(requestsPerMinute, burst int) *tenantLimiterStore {
	return &tenantLimiterStore{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    burst,
	}
}

func (s *tenantLimiterStore) getLimiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(s.limit, s.burst)
		s.limiters[key] = limiter
	}
	return limiter
}

// RateLimit ограничивает частоту запросов по тенанту
// Запросы без tenantId в пути лимитируются по адресу клиента
func RateLimit(requestsPerMinute, burst int) mux.MiddlewareFunc {
	store := newTenantLimiterStore(requestsPerMinute, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := mux.Vars(r)["tenantId"]
			if key == "" {
				key = r.RemoteAddr
			}

			if !store.getLimiter(key).Allow() {
				handlers.RespondError(w, http.StatusTooManyRequests, "превышен лимит запросов, попробуйте позже")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
