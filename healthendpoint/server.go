package healthendpoint

import (
	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tedsuo/ifrit"

	"github.com/ritikbusiness/career-academy-backend-sub003/helpers"
)

// NewHealthRouter serves readiness at /health/readiness without
// authentication and the prometheus metrics everywhere else, behind basic
// auth when it is configured.
func NewHealthRouter(conf helpers.HealthConfig, healthCheckers []Checker, logger lager.Logger, gatherer prometheus.Gatherer) (*mux.Router, error) {
	basicAuthentication, err := helpers.CreateBasicAuthMiddleware(logger.Session("health-basic-auth"), conf.BasicAuth)
	if err != nil {
		return nil, err
	}

	router := mux.NewRouter()
	if conf.ReadinessCheckEnabled {
		router.Handle("/health/readiness", readiness(healthCheckers))
	}

	everything := router.PathPrefix("").Subrouter()
	everything.Use(basicAuthentication.Middleware)
	everything.PathPrefix("").Handler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return router, nil
}

func NewHealthServer(conf helpers.HealthConfig, healthCheckers []Checker, logger lager.Logger, gatherer prometheus.Gatherer) (ifrit.Runner, error) {
	healthRouter, err := NewHealthRouter(conf, healthCheckers, logger, gatherer)
	if err != nil {
		return nil, err
	}
	return helpers.NewHTTPServer(logger.Session("health-server"), conf.ServerConfig, healthRouter)
}
