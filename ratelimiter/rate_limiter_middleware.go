package ratelimiter

import (
	"net/http"
	"strconv"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"golang.org/x/time/rate"

	"github.com/ritikbusiness/career-academy-backend-sub003/healthendpoint"
	"github.com/ritikbusiness/career-academy-backend-sub003/helpers/handlers"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"
)

const (
	HeaderLimit      = "X-RateLimit-Limit"
	HeaderRemaining  = "X-RateLimit-Remaining"
	HeaderReset      = "X-RateLimit-Reset"
	HeaderRetryAfter = "Retry-After"

	// ISO 8601 with millisecond precision, always rendered in UTC.
	resetTimeLayout = "2006-01-02T15:04:05.000Z07:00"
)

type RateLimiterMiddleware struct {
	logger      lager.Logger
	RateLimiter Limiter
	keyFunc     KeyFunc
	collector   healthendpoint.RateLimitCollector
	rejectLog   *rate.Sometimes
}

func NewRateLimiterMiddleware(rateLimiter Limiter, keyFunc KeyFunc, collector healthendpoint.RateLimitCollector, logger lager.Logger) *RateLimiterMiddleware {
	return &RateLimiterMiddleware{
		logger:      logger.Session("rate-limiter-middleware", lager.Data{"limiter": rateLimiter.Name()}),
		RateLimiter: rateLimiter,
		keyFunc:     keyFunc,
		collector:   collector,
		rejectLog:   &rate.Sometimes{First: 5, Interval: 10 * time.Second},
	}
}

func (mw *RateLimiterMiddleware) CheckRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := mw.keyFunc(r)
		decision := mw.RateLimiter.Admit(key)

		header := w.Header()
		header.Set(HeaderLimit, strconv.Itoa(decision.Limit))
		header.Set(HeaderRemaining, strconv.Itoa(decision.Remaining))
		header.Set(HeaderReset, decision.ResetAt.UTC().Format(resetTimeLayout))

		if !decision.Allowed {
			if mw.collector != nil {
				mw.collector.IncRejected(mw.RateLimiter.Name())
			}
			mw.rejectLog.Do(func() {
				mw.logger.Info("exceed-rate-limit", lager.Data{"client": key, "path": r.URL.Path, "retry_after": decision.RetryAfter})
			})
			header.Set(HeaderRetryAfter, strconv.Itoa(decision.RetryAfter))
			handlers.WriteJSONResponse(w, http.StatusTooManyRequests, models.RateLimitErrorResponse{
				Error:      decision.Message,
				RetryAfter: decision.RetryAfter,
			})
			return
		}

		if mw.collector != nil {
			mw.collector.IncAdmitted(mw.RateLimiter.Name())
		}
		next.ServeHTTP(w, r)
	})
}
