package google

import (
	"context"

	"golang.org/x/time/rate"
)

// DefaultDriveRate is a conservative sustained request rate, below the
// 10 requests/sec/user Drive allows.
const DefaultDriveRate = 8.0

// DefaultBurstSize is the maximum burst size for Drive requests.
const DefaultBurstSize = 10

// RateLimiter provides client-side rate limiting for Drive API requests
// using a token bucket.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a rate limiter with the given sustained rate.
// Non-positive rates fall back to the default.
func NewRateLimiter(requestsPerSecond float64) *RateLimiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = DefaultDriveRate
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), DefaultBurstSize),
	}
}

// Wait blocks until a request can be made without exceeding the rate limit.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

// Allow checks if a request can be made immediately without blocking.
func (r *RateLimiter) Allow() bool {
	return r.limiter.Allow()
}
