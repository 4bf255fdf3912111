package ratelimiter_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ritikbusiness/career-academy-backend-sub003/fakes"
	"github.com/ritikbusiness/career-academy-backend-sub003/healthendpoint"
	"github.com/ritikbusiness/career-academy-backend-sub003/ratelimiter"
)

var _ = Describe("RateLimiterMiddleware", func() {
	var (
		req         *http.Request
		resp        *httptest.ResponseRecorder
		router      *mux.Router
		rateLimiter *fakes.FakeLimiter
		rlmw        *ratelimiter.RateLimiterMiddleware
		resetAt     time.Time
	)

	Describe("CheckRateLimit", func() {
		BeforeEach(func() {
			resetAt = time.Date(2024, 3, 1, 12, 15, 0, 0, time.UTC)
			rateLimiter = &fakes.FakeLimiter{}
			rateLimiter.NameReturns("general")
			rlmw = ratelimiter.NewRateLimiterMiddleware(rateLimiter, ratelimiter.ClientIPKeyFunc(false),
				healthendpoint.NewRateLimitCollector("career_academy", "test"), lagertest.NewTestLogger("ratelimiter-middleware"))
			router = mux.NewRouter()
			router.HandleFunc("/api/courses", GetTestHandler())
			router.Use(rlmw.CheckRateLimit)

			req = httptest.NewRequest(http.MethodGet, "/api/courses", nil)
			req.RemoteAddr = "192.168.1.100:40000"
			resp = httptest.NewRecorder()
		})

		JustBeforeEach(func() {
			router.ServeHTTP(resp, req)
		})

		It("keys the limiter by client address", func() {
			Expect(rateLimiter.AdmitCallCount()).To(Equal(1))
			Expect(rateLimiter.AdmitArgsForCall(0)).To(Equal("192.168.1.100"))
		})

		Context("below rate limiting", func() {
			BeforeEach(func() {
				rateLimiter.AdmitReturns(ratelimiter.Decision{Allowed: true, Limit: 100, Remaining: 99, ResetAt: resetAt})
			})

			It("forwards the request with quota headers", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))
				Expect(resp.Body.String()).To(Equal("Success"))
				Expect(resp.Header().Get("X-RateLimit-Limit")).To(Equal("100"))
				Expect(resp.Header().Get("X-RateLimit-Remaining")).To(Equal("99"))
				Expect(resp.Header().Get("X-RateLimit-Reset")).To(Equal("2024-03-01T12:15:00.000Z"))
				Expect(resp.Header().Get("Retry-After")).To(BeEmpty())
			})
		})

		Context("exceed rate limiting", func() {
			BeforeEach(func() {
				rateLimiter.AdmitReturns(ratelimiter.Decision{
					Allowed:    false,
					Limit:      5,
					ResetAt:    resetAt,
					RetryAfter: 840,
					Message:    "Too many authentication attempts",
				})
			})

			It("responds 429 without calling the handler", func() {
				Expect(resp.Code).To(Equal(http.StatusTooManyRequests))
				Expect(resp.Body.String()).To(MatchJSON(`{"error":"Too many authentication attempts","retryAfter":840}`))
				Expect(resp.Header().Get("Retry-After")).To(Equal("840"))
				Expect(resp.Header().Get("X-RateLimit-Remaining")).To(Equal("0"))
			})
		})
	})
})

func GetTestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte("Success"))
		Expect(err).NotTo(HaveOccurred())
	}
}
