package healthendpoint_test

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ritikbusiness/career-academy-backend-sub003/healthendpoint"
)

type staticDBStatus sql.DBStats

func (s staticDBStatus) GetDBStatus() sql.DBStats { return sql.DBStats(s) }

var _ = Describe("Collectors", func() {
	Describe("RateLimitCollector", func() {
		var collector healthendpoint.RateLimitCollector

		BeforeEach(func() {
			collector = healthendpoint.NewRateLimitCollector("career_academy", "ratelimiter")
		})

		It("counts decisions and windows per limiter", func() {
			collector.IncAdmitted("auth")
			collector.IncAdmitted("auth")
			collector.IncRejected("auth")
			collector.IncAdmitted("general")
			collector.SetActiveWindows("auth", 7)

			expected := `
# HELP career_academy_ratelimiter_admitted_requests_total Number of requests admitted by a rate limiter
# TYPE career_academy_ratelimiter_admitted_requests_total counter
career_academy_ratelimiter_admitted_requests_total{limiter="auth"} 2
career_academy_ratelimiter_admitted_requests_total{limiter="general"} 1
# HELP career_academy_ratelimiter_rejected_requests_total Number of requests rejected by a rate limiter
# TYPE career_academy_ratelimiter_rejected_requests_total counter
career_academy_ratelimiter_rejected_requests_total{limiter="auth"} 1
# HELP career_academy_ratelimiter_active_windows Number of client windows held by a rate limiter after the last sweep
# TYPE career_academy_ratelimiter_active_windows gauge
career_academy_ratelimiter_active_windows{limiter="auth"} 7
`
			Expect(testutil.CollectAndCompare(collector, strings.NewReader(expected))).To(Succeed())
		})
	})

	Describe("HTTPStatusCollector", func() {
		It("tracks in-flight requests", func() {
			collector := healthendpoint.NewHTTPStatusCollector("career_academy", "api")
			var inFlight float64
			handler := healthendpoint.CountConcurrentRequests(collector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				inFlight = testutil.ToFloat64(collector)
			}))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

			Expect(inFlight).To(Equal(1.0))
			Expect(testutil.ToFloat64(collector)).To(Equal(0.0))
		})
	})

	Describe("DatabaseStatusCollector", func() {
		It("exports the pool statistics", func() {
			collector := healthendpoint.NewDatabaseStatusCollector("career_academy", "api", "user_db", staticDBStatus{
				MaxOpenConnections: 10,
				OpenConnections:    4,
				InUse:              3,
				Idle:               1,
				WaitDuration:       2 * time.Nanosecond,
			})

			Expect(testutil.CollectAndCount(collector)).To(Equal(8))
			Expect(testutil.CollectAndCompare(collector, strings.NewReader(`
# HELP career_academy_api_user_db_in_use The number of connections currently in use
# TYPE career_academy_api_user_db_in_use gauge
career_academy_api_user_db_in_use 3
`), "career_academy_api_user_db_in_use")).To(Succeed())
		})
	})

	Describe("RegisterCollectors", func() {
		It("registers every collector and logs duplicates", func() {
			registry := prometheus.NewRegistry()
			logger := lagertest.NewTestLogger("registrar")
			collector := healthendpoint.NewHTTPStatusCollector("career_academy", "api")

			healthendpoint.RegisterCollectors(registry, []prometheus.Collector{collector, collector}, true, logger)

			families, err := registry.Gather()
			Expect(err).NotTo(HaveOccurred())
			names := []string{}
			for _, family := range families {
				names = append(names, family.GetName())
			}
			Expect(names).To(ContainElements("career_academy_api_concurrent_http_request", "go_goroutines"))
			Expect(logger.LogMessages()).To(ContainElement("registrar.collector-already-registered"))
		})
	})
})
