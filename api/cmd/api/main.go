package main

import (
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tedsuo/ifrit"

	"github.com/ritikbusiness/career-academy-backend-sub003/aiclient"
	"github.com/ritikbusiness/career-academy-backend-sub003/api/apiserver"
	"github.com/ritikbusiness/career-academy-backend-sub003/api/config"
	"github.com/ritikbusiness/career-academy-backend-sub003/db"
	"github.com/ritikbusiness/career-academy-backend-sub003/healthendpoint"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"
	"github.com/ritikbusiness/career-academy-backend-sub003/ratelimiter"
	"github.com/ritikbusiness/career-academy-backend-sub003/routes"
	"github.com/ritikbusiness/career-academy-backend-sub003/startup"
)

const (
	metricsNamespace = "career_academy"
	metricsSubsystem = "api"
)

func main() {
	conf, flags, logger := startup.Bootstrap("api", config.LoadConfig)

	if flags.CreateSchema {
		startup.CreateSchema(conf.Db, logger)
	}

	databases := startup.CreateDatabases(conf.Db, logger)
	defer databases.Close()

	apiClock := clock.NewClock()

	limiters := map[routes.Group]ratelimiter.Limiter{}
	var sweepables []ratelimiter.Sweepable
	limitConfigs := map[routes.Group]models.RateLimitConfig{
		routes.GroupGeneral: conf.RateLimit.General,
		routes.GroupAuth:    conf.RateLimit.Auth,
		routes.GroupAI:      conf.RateLimit.AI,
		routes.GroupUpload:  conf.RateLimit.Upload,
	}
	for _, group := range routes.Groups {
		limiter := ratelimiter.NewRateLimiter(string(group), limitConfigs[group], apiClock, logger)
		limiters[group] = limiter
		sweepables = append(sweepables, limiter)
	}

	httpStatusCollector := healthendpoint.NewHTTPStatusCollector(metricsNamespace, metricsSubsystem)
	rateLimitCollector := healthendpoint.NewRateLimitCollector(metricsNamespace, metricsSubsystem)

	promRegistry := prometheus.NewRegistry()
	healthendpoint.RegisterCollectors(promRegistry, []prometheus.Collector{
		httpStatusCollector,
		rateLimitCollector,
		healthendpoint.NewDatabaseStatusCollector(metricsNamespace, metricsSubsystem, db.UserDb, databases.User),
		healthendpoint.NewDatabaseStatusCollector(metricsNamespace, metricsSubsystem, db.CourseDb, databases.Course),
		healthendpoint.NewDatabaseStatusCollector(metricsNamespace, metricsSubsystem, db.QuizDb, databases.Quiz),
		healthendpoint.NewDatabaseStatusCollector(metricsNamespace, metricsSubsystem, db.ProgressDb, databases.Progress),
	}, true, logger.Session("api-prometheus"))

	var aiClient aiclient.AIClient
	if conf.AI.URL != "" {
		aiClient = aiclient.NewClient(conf.AI, logger)
	} else {
		logger.Info("ai-features-disabled")
	}

	server := apiserver.NewApiServer(logger, conf, databases.User, databases.Course, databases.Quiz,
		databases.Progress, aiClient, limiters, rateLimitCollector, httpStatusCollector, apiClock)

	checkers := []healthendpoint.Checker{
		healthendpoint.DbChecker(db.UserDb, databases.User),
		healthendpoint.DbChecker(db.CourseDb, databases.Course),
		healthendpoint.DbChecker(db.QuizDb, databases.Quiz),
		healthendpoint.DbChecker(db.ProgressDb, databases.Progress),
	}

	startup.StartService(logger,
		startup.Member("api_server", server.GetServer),
		startup.Member("health_server", func() (ifrit.Runner, error) {
			return healthendpoint.NewHealthServer(conf.Health, checkers, logger, promRegistry)
		}),
		startup.RunnerMember("rate_limit_sweeper",
			ratelimiter.NewSweeper(sweepables, conf.RateLimit.SweepInterval, apiClock, rateLimitCollector, logger)),
	)
	logger.Info("stopped", lager.Data{"environment": conf.Environment})
}
