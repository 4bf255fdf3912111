package routes

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

const (
	RegisterPath      = "/api/auth/register"
	RegisterRouteName = "Register"

	LoginPath      = "/api/auth/login"
	LoginRouteName = "Login"

	CoursesPath          = "/api/courses"
	ListCoursesRouteName = "ListCourses"

	CoursePath         = "/api/courses/{courseId}"
	GetCourseRouteName = "GetCourse"

	EnrollPath      = "/api/courses/{courseId}/enroll"
	EnrollRouteName = "Enroll"

	LessonPath         = "/api/lessons/{lessonId}"
	GetLessonRouteName = "GetLesson"

	CompleteLessonPath      = "/api/lessons/{lessonId}/complete"
	CompleteLessonRouteName = "CompleteLesson"

	ProgressPath         = "/api/progress"
	GetProgressRouteName = "GetProgress"

	QuizzesPath         = "/api/quizzes"
	CreateQuizRouteName = "CreateQuiz"

	QuizAttemptsPath           = "/api/quizzes/{quizId}/attempts"
	CreateQuizAttemptRouteName = "CreateQuizAttempt"

	AISummarizePath      = "/api/ai/summarize"
	AISummarizeRouteName = "AISummarize"

	AIQuizSuggestionsPath      = "/api/ai/quiz-suggestions"
	AIQuizSuggestionsRouteName = "AIQuizSuggestions"

	AIExplainPath      = "/api/ai/explain"
	AIExplainRouteName = "AIExplain"

	UploadsPath     = "/api/uploads"
	UploadRouteName = "Upload"

	InfoPath         = "/api/info"
	GetInfoRouteName = "GetInfo"
)

// Group names the limiter instance a route is admitted by.
type Group string

const (
	GroupGeneral Group = "general"
	GroupAuth    Group = "auth"
	GroupAI      Group = "ai"
	GroupUpload  Group = "upload"
)

var Groups = []Group{GroupGeneral, GroupAuth, GroupAI, GroupUpload}

type route struct {
	group  Group
	path   string
	method string
	name   string
}

var careerAcademyRoutes = []route{
	{GroupAuth, RegisterPath, http.MethodPost, RegisterRouteName},
	{GroupAuth, LoginPath, http.MethodPost, LoginRouteName},
	{GroupAI, AISummarizePath, http.MethodPost, AISummarizeRouteName},
	{GroupAI, AIQuizSuggestionsPath, http.MethodPost, AIQuizSuggestionsRouteName},
	{GroupAI, AIExplainPath, http.MethodPost, AIExplainRouteName},
	{GroupUpload, UploadsPath, http.MethodPost, UploadRouteName},
	{GroupGeneral, CoursesPath, http.MethodGet, ListCoursesRouteName},
	{GroupGeneral, CoursePath, http.MethodGet, GetCourseRouteName},
	{GroupGeneral, EnrollPath, http.MethodPost, EnrollRouteName},
	{GroupGeneral, LessonPath, http.MethodGet, GetLessonRouteName},
	{GroupGeneral, CompleteLessonPath, http.MethodPost, CompleteLessonRouteName},
	{GroupGeneral, ProgressPath, http.MethodGet, GetProgressRouteName},
	{GroupGeneral, QuizzesPath, http.MethodPost, CreateQuizRouteName},
	{GroupGeneral, QuizAttemptsPath, http.MethodPost, CreateQuizAttemptRouteName},
	{GroupGeneral, InfoPath, http.MethodGet, GetInfoRouteName},
}

// groupPrefixes are matched in order; general catches the rest of /api.
var groupPrefixes = []struct {
	group  Group
	prefix string
}{
	{GroupAuth, "/api/auth/"},
	{GroupAI, "/api/ai/"},
	{GroupUpload, UploadsPath},
	{GroupGeneral, "/api/"},
}

type CareerAcademyRoute struct {
	router *mux.Router
	groups map[Group]*mux.Router
}

// NewRouter returns a router with one subrouter per limiter group. Every
// named route is registered on the subrouter of its group.
func NewRouter() *CareerAcademyRoute {
	instance := &CareerAcademyRoute{
		router: mux.NewRouter(),
		groups: make(map[Group]*mux.Router, len(groupPrefixes)),
	}
	for _, g := range groupPrefixes {
		instance.groups[g.group] = instance.router.MatcherFunc(hasPrefix(g.prefix)).Subrouter()
	}
	for _, r := range careerAcademyRoutes {
		instance.groups[r.group].Path(r.path).Methods(r.method).Name(r.name)
	}
	return instance
}

func (r *CareerAcademyRoute) Router() *mux.Router {
	return r.router
}

func (r *CareerAcademyRoute) Group(group Group) *mux.Router {
	return r.groups[group]
}

// hasPrefix matches on the raw path without adding to the route template,
// so the subroutes keep their absolute paths.
func hasPrefix(prefix string) mux.MatcherFunc {
	return func(req *http.Request, _ *mux.RouteMatch) bool {
		return strings.HasPrefix(req.URL.Path, prefix)
	}
}

// GroupOf reports which limiter group serves the named route.
func GroupOf(routeName string) (Group, bool) {
	for _, r := range careerAcademyRoutes {
		if r.name == routeName {
			return r.group, true
		}
	}
	return "", false
}
