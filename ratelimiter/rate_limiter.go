package ratelimiter

import (
	"math"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"

	"github.com/ritikbusiness/career-academy-backend-sub003/models"
)

const defaultRejectionMessage = "Too many requests, please try again later."

type Limiter interface {
	Name() string
	Admit(key string) Decision
}

// Decision is the outcome of a single admission check.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
	// RetryAfter is in whole seconds and only set on rejection.
	RetryAfter int
	Message    string
}

type RateLimiter struct {
	name             string
	maxAmount        int
	rejectionMessage string
	store            Store
	clock            clock.Clock
	logger           lager.Logger
}

func NewRateLimiter(name string, conf models.RateLimitConfig, clock clock.Clock, logger lager.Logger) *RateLimiter {
	message := conf.RejectionMessage
	if message == "" {
		message = defaultRejectionMessage
	}
	return &RateLimiter{
		name:             name,
		maxAmount:        conf.MaxAmount,
		rejectionMessage: message,
		store:            NewStore(conf.ValidDuration),
		clock:            clock,
		logger:           logger.Session("rate-limiter", lager.Data{"limiter": name}),
	}
}

func (r *RateLimiter) Name() string {
	return r.name
}

func (r *RateLimiter) Admit(key string) Decision {
	now := r.clock.Now()
	window := r.store.Increment(key, now)

	decision := Decision{
		Limit:   r.maxAmount,
		ResetAt: window.ResetAt,
	}
	if window.RequestCount > r.maxAmount {
		decision.Message = r.rejectionMessage
		decision.RetryAfter = int(math.Ceil(window.ResetAt.Sub(now).Seconds()))
		return decision
	}

	decision.Allowed = true
	decision.Remaining = max(0, r.maxAmount-window.RequestCount)
	return decision
}

// Sweep drops every window that has ended and returns how many are still active.
func (r *RateLimiter) Sweep() int {
	removed, remaining := r.store.Sweep(r.clock.Now())
	if removed > 0 {
		r.logger.Debug("removed-expired-windows", lager.Data{"removed": removed, "remaining": remaining})
	}
	return remaining
}

func (r *RateLimiter) ActiveWindows() int {
	return r.store.Len()
}
