package apiserver

import (
	"fmt"
	"net/http"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/tedsuo/ifrit"

	"github.com/ritikbusiness/career-academy-backend-sub003/aiclient"
	"github.com/ritikbusiness/career-academy-backend-sub003/api/config"
	"github.com/ritikbusiness/career-academy-backend-sub003/cors"
	"github.com/ritikbusiness/career-academy-backend-sub003/db"
	"github.com/ritikbusiness/career-academy-backend-sub003/healthendpoint"
	"github.com/ritikbusiness/career-academy-backend-sub003/helpers"
	"github.com/ritikbusiness/career-academy-backend-sub003/ratelimiter"
	"github.com/ritikbusiness/career-academy-backend-sub003/routes"
	"github.com/ritikbusiness/career-academy-backend-sub003/validation"
)

type ApiServer struct {
	logger              lager.Logger
	conf                *config.Config
	userDB              db.UserDB
	courseDB            db.CourseDB
	quizDB              db.QuizDB
	progressDB          db.ProgressDB
	aiClient            aiclient.AIClient
	limiters            map[routes.Group]ratelimiter.Limiter
	rateLimitCollector  healthendpoint.RateLimitCollector
	httpStatusCollector healthendpoint.HTTPStatusCollector
	clock               clock.Clock
}

func NewApiServer(logger lager.Logger, conf *config.Config, userDB db.UserDB, courseDB db.CourseDB,
	quizDB db.QuizDB, progressDB db.ProgressDB, aiClient aiclient.AIClient,
	limiters map[routes.Group]ratelimiter.Limiter, rateLimitCollector healthendpoint.RateLimitCollector,
	httpStatusCollector healthendpoint.HTTPStatusCollector, clock clock.Clock) *ApiServer {
	return &ApiServer{
		logger:              logger.Session("api-server"),
		conf:                conf,
		userDB:              userDB,
		courseDB:            courseDB,
		quizDB:              quizDB,
		progressDB:          progressDB,
		aiClient:            aiClient,
		limiters:            limiters,
		rateLimitCollector:  rateLimitCollector,
		httpStatusCollector: httpStatusCollector,
		clock:               clock,
	}
}

func (s *ApiServer) GetServer() (ifrit.Runner, error) {
	handler, err := s.Handler()
	if err != nil {
		return nil, err
	}
	return helpers.NewHTTPServer(s.logger, s.conf.Server, helpers.TraceHandler(handler, "career-academy-api"))
}

// Handler assembles the request pipeline: request id, CORS, the limiter of
// the route's group, authentication where required, input validation and
// finally the route handler.
func (s *ApiServer) Handler() (http.Handler, error) {
	schemas, err := validation.LoadSchemas()
	if err != nil {
		return nil, err
	}

	r := routes.NewRouter()
	if err := s.setupRateLimits(r); err != nil {
		return nil, err
	}

	mw := NewMiddleware(s.logger, s.userDB, s.clock)
	gate := validation.NewGate(schemas, s.logger)
	auth := mw.Authenticate

	ah := NewAuthHandler(s.logger, s.userDB, s.clock, s.conf.SessionTTL)
	ch := NewCourseHandler(s.logger, s.courseDB, s.progressDB, s.clock, s.conf.CourseCache)
	qh := NewQuizHandler(s.logger, s.quizDB, s.progressDB, s.clock)
	aih := NewAIHandler(s.logger, s.aiClient)
	uh := NewUploadHandler(s.logger, s.conf.Uploads)
	ih := NewInfoHandler(s.conf.Info)

	router := r.Router()
	router.Get(routes.RegisterRouteName).Handler(chain(ah.Register, gate.Body("register")))
	router.Get(routes.LoginRouteName).Handler(chain(ah.Login, gate.Body("login")))

	router.Get(routes.ListCoursesRouteName).Handler(chain(ch.ListCourses, gate.Query("course-query")))
	router.Get(routes.GetCourseRouteName).Handler(chain(ch.GetCourse, gate.Path("course-path")))
	router.Get(routes.EnrollRouteName).Handler(chain(ch.Enroll, auth, gate.Path("course-path")))
	router.Get(routes.GetLessonRouteName).Handler(chain(ch.GetLesson, auth, gate.Path("lesson-path")))
	router.Get(routes.CompleteLessonRouteName).Handler(chain(ch.CompleteLesson, auth, gate.Path("lesson-path")))
	router.Get(routes.GetProgressRouteName).Handler(chain(ch.GetProgress, auth))
	router.Get(routes.GetInfoRouteName).HandlerFunc(ih.GetInfo)

	router.Get(routes.CreateQuizRouteName).Handler(chain(qh.CreateQuiz, auth, gate.Body("quiz")))
	router.Get(routes.CreateQuizAttemptRouteName).Handler(chain(qh.CreateAttempt, auth, gate.Path("quiz-path"), gate.Body("quiz-attempt")))

	router.Get(routes.AISummarizeRouteName).Handler(chain(aih.Summarize, auth, gate.Body("ai-summarize")))
	router.Get(routes.AIQuizSuggestionsRouteName).Handler(chain(aih.SuggestQuiz, auth, gate.Body("ai-quiz-suggestions")))
	router.Get(routes.AIExplainRouteName).Handler(chain(aih.Explain, auth, gate.Body("ai-explain")))

	router.Get(routes.UploadRouteName).Handler(chain(uh.Upload, auth))

	var handler http.Handler = router
	if s.httpStatusCollector != nil {
		handler = healthendpoint.CountConcurrentRequests(s.httpStatusCollector)(handler)
	}
	handler = cors.NewGate(s.conf.Environment, s.conf.CORS, s.logger).Middleware(handler)
	return mw.RequestID(handler), nil
}

func (s *ApiServer) setupRateLimits(r *routes.CareerAcademyRoute) error {
	keyFunc := ratelimiter.ClientIPKeyFunc(s.conf.TrustProxy)
	for _, group := range routes.Groups {
		limiter, ok := s.limiters[group]
		if !ok {
			return fmt.Errorf("no rate limiter for route group %q", group)
		}
		rateLimiterMiddleware := ratelimiter.NewRateLimiterMiddleware(limiter, keyFunc, s.rateLimitCollector, s.logger)
		r.Group(group).Use(rateLimiterMiddleware.CheckRateLimit)
	}
	return nil
}

// chain wraps h with middlewares, the first one outermost.
func chain(h http.HandlerFunc, middlewares ...mux.MiddlewareFunc) http.Handler {
	var handler http.Handler = h
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}
