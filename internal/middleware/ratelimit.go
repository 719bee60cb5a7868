package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/emogo-app/emogo-backend/pkg/clientip"
)

const (
	// rateLimitWindow is the counting window per client IP.
	rateLimitWindow = 60 * time.Second
	// rateLimitMaxRequests is the number of requests allowed per window.
	// The mobile client batches submissions, so legitimate traffic is low.
	rateLimitMaxRequests = 120
	rateLimitKeyPrefix   = "ratelimit:"
	blockedIPKeyPrefix   = "blocked_ip:"
	// blockedIPDuration is how long an IP stays blocked after exceeding the limit.
	blockedIPDuration = 1 * time.Hour
)

// RateLimit limits requests per client IP using Redis counters with a TTL
// window. Redis errors fail open: a rate limiter outage must not take the
// ingestion path down with it.
func RateLimit(rdb *redis.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientip.FromRequest(r)
			ctx := r.Context()

			blocked, err := rdb.Exists(ctx, blockedIPKeyPrefix+ip).Result()
			if err == nil && blocked > 0 {
				writeTooManyRequests(w)
				return
			}

			count, err := rdb.Incr(ctx, rateLimitKeyPrefix+ip).Result()
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				rdb.Expire(ctx, rateLimitKeyPrefix+ip, rateLimitWindow)
			}

			if count > rateLimitMaxRequests {
				rdb.Set(ctx, blockedIPKeyPrefix+ip, "1", blockedIPDuration)
				writeTooManyRequests(w)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimitMaxRequests))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(rateLimitMaxRequests-count, 10))
			next.ServeHTTP(w, r)
		})
	}
}

func writeTooManyRequests(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	fmt.Fprintf(w, `{"error":"rate limit exceeded, try again later","retry_after":%d}`, int(rateLimitWindow.Seconds()))
}
