package apiserver_test

import (
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ritikbusiness/career-academy-backend-sub003/api/apiserver"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"
)

var _ = Describe("ApiServer pipeline", func() {
	Context("CORS", func() {
		It("answers a preflight from an allowed dev origin without touching the limiter", func() {
			rsp := serve(http.MethodOptions, "/api/auth/login", nil,
				"Origin", "http://localhost:5173",
				"Access-Control-Request-Method", "POST")

			Expect(rsp.Code).To(Equal(http.StatusOK))
			Expect(rsp.Header().Get("Access-Control-Allow-Origin")).To(Equal("http://localhost:5173"))
			Expect(rsp.Header().Get("X-RateLimit-Limit")).To(BeEmpty())
			Expect(limitCollector.IncAdmittedCallCount()).To(Equal(0))
			Expect(userDB.GetUserByUsernameCallCount()).To(Equal(0))
		})

		It("answers a preflight from an unknown origin without the allow-origin header", func() {
			rsp := serve(http.MethodOptions, "/api/courses", nil, "Origin", "https://evil.example.com")

			Expect(rsp.Code).To(Equal(http.StatusOK))
			Expect(rsp.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
		})

		When("running in production", func() {
			BeforeEach(func() {
				conf.Environment = "production"
				conf.CORS.AllowedOrigins = []string{"https://academy.example.com"}
			})

			It("no longer trusts local dev servers", func() {
				rsp := serve(http.MethodGet, "/api/info", nil, "Origin", "http://localhost:3000")
				Expect(rsp.Code).To(Equal(http.StatusOK))
				Expect(rsp.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())

				rsp = serve(http.MethodGet, "/api/info", nil, "Origin", "https://academy.example.com")
				Expect(rsp.Header().Get("Access-Control-Allow-Origin")).To(Equal("https://academy.example.com"))
			})
		})
	})

	Context("rate limiting", func() {
		BeforeEach(func() {
			conf.RateLimit.Auth = models.RateLimitConfig{MaxAmount: 2, ValidDuration: 15 * time.Minute, RejectionMessage: "Too many authentication attempts"}
		})

		It("rejects the request past the auth limit with retry guidance", func() {
			for i := 0; i < 2; i++ {
				rsp := serve(http.MethodPost, "/api/auth/login", map[string]any{"username": "ada", "password": "wrong"})
				Expect(rsp.Code).To(Equal(http.StatusUnauthorized))
				Expect(rsp.Header().Get("X-RateLimit-Limit")).To(Equal("2"))
			}
			Expect(userDB.GetUserByUsernameCallCount()).To(Equal(2))

			rsp := serve(http.MethodPost, "/api/auth/login", map[string]any{"username": "ada", "password": "wrong"})
			Expect(rsp.Code).To(Equal(http.StatusTooManyRequests))
			Expect(rsp.Body.String()).To(MatchJSON(`{"error":"Too many authentication attempts","retryAfter":900}`))
			Expect(rsp.Header().Get("Retry-After")).To(Equal("900"))
			Expect(rsp.Header().Get("X-RateLimit-Remaining")).To(Equal("0"))
			Expect(userDB.GetUserByUsernameCallCount()).To(Equal(2))
			Expect(limitCollector.IncRejectedArgsForCall(0)).To(Equal("auth"))
		})

		It("keeps the groups independent", func() {
			for i := 0; i < 3; i++ {
				serve(http.MethodPost, "/api/auth/login", map[string]any{"username": "ada", "password": "wrong"})
			}
			rsp := serve(http.MethodGet, "/api/info", nil)
			Expect(rsp.Code).To(Equal(http.StatusOK))
			Expect(rsp.Header().Get("X-RateLimit-Limit")).To(Equal("100"))
			Expect(rsp.Header().Get("X-RateLimit-Remaining")).To(Equal("99"))
		})

		It("admits again once the window has passed", func() {
			for i := 0; i < 3; i++ {
				serve(http.MethodPost, "/api/auth/login", map[string]any{"username": "ada", "password": "wrong"})
			}
			fakeClock.Increment(15 * time.Minute)
			rsp := serve(http.MethodPost, "/api/auth/login", map[string]any{"username": "ada", "password": "wrong"})
			Expect(rsp.Code).To(Equal(http.StatusUnauthorized))
			Expect(rsp.Header().Get("X-RateLimit-Remaining")).To(Equal("1"))
		})

		It("counts requests that then fail validation", func() {
			rsp := serve(http.MethodPost, "/api/auth/register", map[string]any{"username": "ab"})
			Expect(rsp.Code).To(Equal(http.StatusBadRequest))
			Expect(rsp.Header().Get("X-RateLimit-Remaining")).To(Equal("1"))
		})
	})

	Context("validation", func() {
		It("reports every invalid field of a registration", func() {
			rsp := serve(http.MethodPost, "/api/auth/register", map[string]any{"username": "ab"})

			Expect(rsp.Code).To(Equal(http.StatusBadRequest))
			body := decode[models.ValidationErrorResponse](rsp)
			Expect(body.Error).To(Equal("Validation failed"))
			fields := []string{}
			for _, detail := range body.Details {
				fields = append(fields, detail.Field)
			}
			Expect(fields).To(ContainElements("username", "password", "fullName", "email"))
			Expect(userDB.CreateUserCallCount()).To(Equal(0))
		})

		It("rejects a non-numeric course id", func() {
			rsp := serve(http.MethodGet, "/api/courses/abc", nil)
			Expect(rsp.Code).To(Equal(http.StatusBadRequest))
			Expect(decode[models.ValidationErrorResponse](rsp).Details[0].Field).To(Equal("courseId"))
			Expect(courseDB.GetCourseCallCount()).To(Equal(0))
		})
	})

	Context("request ids", func() {
		It("assigns one when the caller sends none", func() {
			rsp := serve(http.MethodGet, "/api/info", nil)
			Expect(rsp.Header().Get(apiserver.HeaderRequestID)).To(MatchRegexp(`^[0-9a-f-]{36}$`))
		})

		It("echoes the caller's id", func() {
			rsp := serve(http.MethodGet, "/api/info", nil, apiserver.HeaderRequestID, "trace-me")
			Expect(rsp.Header().Get(apiserver.HeaderRequestID)).To(Equal("trace-me"))
		})
	})

	It("tracks concurrent requests", func() {
		serve(http.MethodGet, "/api/info", nil)
		Expect(httpCollector.IncConcurrentHTTPRequestCallCount()).To(Equal(1))
		Expect(httpCollector.DecConcurrentHTTPRequestCallCount()).To(Equal(1))
	})

	It("serves the api info", func() {
		rsp := serve(http.MethodGet, "/api/info", nil)
		Expect(rsp.Code).To(Equal(http.StatusOK))
		Expect(decode[models.Info](rsp)).To(Equal(models.Info{
			Name:        "career-academy-api",
			Description: "Career Academy learning platform API",
			Environment: "development",
		}))
	})
})
