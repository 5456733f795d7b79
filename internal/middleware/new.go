package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"timeclerk/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l        log.Logger
	limiters *expirable.LRU[string, *rate.Limiter]
	rps      rate.Limit
	burst    int
}

// RateLimitConfig tunes the per-client rate limiter.
type RateLimitConfig struct {
	RPS        float64
	Burst      int
	MaxClients int           // max tracked clients
	TTL        time.Duration // idle client eviction
}

func New(l log.Logger, rl RateLimitConfig) Middleware {
	if rl.RPS <= 0 {
		rl.RPS = 5
	}
	if rl.Burst <= 0 {
		rl.Burst = 10
	}
	if rl.MaxClients <= 0 {
		rl.MaxClients = 1024
	}
	if rl.TTL <= 0 {
		rl.TTL = 10 * time.Minute
	}

	return Middleware{
		l:        l,
		limiters: expirable.NewLRU[string, *rate.Limiter](rl.MaxClients, nil, rl.TTL),
		rps:      rate.Limit(rl.RPS),
		burst:    rl.Burst,
	}
}
