package cors_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ritikbusiness/career-academy-backend-sub003/cors"
)

var _ = Describe("Gate", func() {
	var (
		env        string
		conf       cors.Config
		req        *http.Request
		resp       *httptest.ResponseRecorder
		nextCalled bool
	)

	BeforeEach(func() {
		env = cors.EnvDevelopment
		conf = cors.Config{
			AllowedOrigins:   []string{"https://academy.example.com"},
			AllowCredentials: true,
			MaxAge:           10 * time.Minute,
		}
		nextCalled = false
		resp = httptest.NewRecorder()
	})

	JustBeforeEach(func() {
		gate := cors.NewGate(env, conf, lagertest.NewTestLogger("cors"))
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			w.WriteHeader(http.StatusTeapot)
		})
		gate.Middleware(next).ServeHTTP(resp, req)
	})

	Context("preflight in development", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
			req.Header.Set("Origin", "http://localhost:3000")
			req.Header.Set("Access-Control-Request-Method", "POST")
		})

		It("answers 200 with the origin echoed and never calls the handler", func() {
			Expect(resp.Code).To(Equal(http.StatusOK))
			Expect(resp.Body.Len()).To(BeZero())
			Expect(nextCalled).To(BeFalse())
			Expect(resp.Header().Get("Access-Control-Allow-Origin")).To(Equal("http://localhost:3000"))
			Expect(resp.Header().Get("Access-Control-Allow-Methods")).To(ContainSubstring("POST"))
			Expect(resp.Header().Get("Access-Control-Allow-Headers")).To(ContainSubstring("Authorization"))
			Expect(resp.Header().Get("Access-Control-Allow-Credentials")).To(Equal("true"))
			Expect(resp.Header().Get("Access-Control-Max-Age")).To(Equal("600"))
		})

		Context("with an unrecognized origin", func() {
			BeforeEach(func() {
				req.Header.Set("Origin", "http://evil.example.org")
			})

			It("answers 200 without an allow-origin header", func() {
				Expect(resp.Code).To(Equal(http.StatusOK))
				Expect(nextCalled).To(BeFalse())
				Expect(resp.Header().Values("Access-Control-Allow-Origin")).To(BeEmpty())
				Expect(resp.Header().Get("Access-Control-Allow-Credentials")).To(BeEmpty())
			})
		})
	})

	Context("in production", func() {
		BeforeEach(func() {
			env = cors.EnvProduction
			req = httptest.NewRequest(http.MethodGet, "/api/courses", nil)
		})

		Context("with a local development origin", func() {
			BeforeEach(func() {
				req.Header.Set("Origin", "http://localhost:3000")
			})

			It("forwards the request without an allow-origin header", func() {
				Expect(nextCalled).To(BeTrue())
				Expect(resp.Code).To(Equal(http.StatusTeapot))
				Expect(resp.Header().Values("Access-Control-Allow-Origin")).To(BeEmpty())
			})
		})

		Context("with a configured origin", func() {
			BeforeEach(func() {
				req.Header.Set("Origin", "https://academy.example.com")
			})

			It("allows it and exposes the quota headers", func() {
				Expect(nextCalled).To(BeTrue())
				Expect(resp.Header().Get("Access-Control-Allow-Origin")).To(Equal("https://academy.example.com"))
				Expect(resp.Header().Get("Access-Control-Expose-Headers")).To(ContainSubstring("X-RateLimit-Remaining"))
				Expect(resp.Header().Get("Vary")).To(Equal("Origin"))
			})
		})
	})

	Context("without an Origin header", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/api/info", nil)
		})

		It("passes the request through untouched", func() {
			Expect(nextCalled).To(BeTrue())
			Expect(resp.Header().Values("Access-Control-Allow-Origin")).To(BeEmpty())
		})
	})
})
