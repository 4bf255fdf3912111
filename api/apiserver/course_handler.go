package apiserver

import (
	"context"
	"errors"
	"net/http"
	"regexp"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/patrickmn/go-cache"

	"github.com/ritikbusiness/career-academy-backend-sub003/api/config"
	"github.com/ritikbusiness/career-academy-backend-sub003/db"
	"github.com/ritikbusiness/career-academy-backend-sub003/helpers/handlers"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"
	"github.com/ritikbusiness/career-academy-backend-sub003/validation"
)

const (
	courseNotFound = "Course not found"
	lessonNotFound = "Lesson not found"
	notEnrolled    = "Enroll in the course to access its lessons"
)

type coursePath struct {
	CourseId int64 `json:"courseId"`
}

type lessonPath struct {
	LessonId int64 `json:"lessonId"`
}

type CourseHandler struct {
	logger     lager.Logger
	courseDB   db.CourseDB
	progressDB db.ProgressDB
	clock      clock.Clock
	catalog    *cache.Cache
}

func NewCourseHandler(logger lager.Logger, courseDB db.CourseDB, progressDB db.ProgressDB, clock clock.Clock, cacheConf config.CourseCacheConfig) *CourseHandler {
	return &CourseHandler{
		logger:     logger.Session("course-handler"),
		courseDB:   courseDB,
		progressDB: progressDB,
		clock:      clock,
		catalog:    cache.New(cacheConf.TTL, cacheConf.CleanupInterval),
	}
}

// ListCourses pages through the catalog, optionally narrowed to a category
// and to courses whose title or description contains search.
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.Session("list-courses", lager.Data{"request_id": RequestIDFromContext(r.Context())})

	var query models.CourseQuery
	if err := validation.Bind(r, validation.SourceQuery, &query); err != nil {
		writeInternalError(w, logger, "failed-to-bind-query", err)
		return
	}

	courses, err := h.courses(r.Context(), query.Category)
	if err != nil {
		writeInternalError(w, logger, "failed-to-list-courses", err)
		return
	}

	if query.Search != "" {
		pattern, err := regexp.Compile("(?i)" + validation.EscapeLiteral(query.Search))
		if err != nil {
			writeInternalError(w, logger, "failed-to-compile-search", err)
			return
		}
		matching := make([]*models.Course, 0, len(courses))
		for _, course := range courses {
			if pattern.MatchString(course.Title) || pattern.MatchString(course.Description) {
				matching = append(matching, course)
			}
		}
		courses = matching
	}

	page := models.CoursePage{
		Courses: []*models.Course{},
		Page:    query.Page,
		Limit:   query.Limit,
		Total:   len(courses),
	}
	if offset := query.Offset(); offset >= 0 && offset < len(courses) {
		page.Courses = courses[offset:min(offset+query.Limit, len(courses))]
	}
	handlers.WriteJSONResponse(w, http.StatusOK, page)
}

// courses returns the catalog for category from the cache, loading it on a miss.
func (h *CourseHandler) courses(ctx context.Context, category string) ([]*models.Course, error) {
	key := "catalog:" + category
	if cached, found := h.catalog.Get(key); found {
		return cached.([]*models.Course), nil
	}
	courses, err := h.courseDB.ListCourses(ctx, category)
	if err != nil {
		return nil, err
	}
	h.catalog.SetDefault(key, courses)
	return courses, nil
}

func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.Session("get-course", lager.Data{"request_id": RequestIDFromContext(r.Context())})

	var path coursePath
	if err := validation.Bind(r, validation.SourcePath, &path); err != nil {
		writeInternalError(w, logger, "failed-to-bind-path", err)
		return
	}

	course, err := h.courseDB.GetCourse(r.Context(), path.CourseId)
	if errors.Is(err, db.ErrDoesNotExist) {
		handlers.WriteErrorResponse(w, http.StatusNotFound, courseNotFound)
		return
	}
	if err != nil {
		writeInternalError(w, logger, "failed-to-get-course", err)
		return
	}

	// lesson bodies are only served to enrolled learners
	for _, lesson := range course.Lessons {
		lesson.Content = ""
	}
	handlers.WriteJSONResponse(w, http.StatusOK, course)
}

func (h *CourseHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.Session("enroll", lager.Data{"request_id": RequestIDFromContext(r.Context())})
	user, ok := currentUser(w, r, logger)
	if !ok {
		return
	}

	var path coursePath
	if err := validation.Bind(r, validation.SourcePath, &path); err != nil {
		writeInternalError(w, logger, "failed-to-bind-path", err)
		return
	}

	enrollment, err := h.courseDB.Enroll(r.Context(), user.Id, path.CourseId, h.clock.Now())
	switch {
	case errors.Is(err, db.ErrAlreadyExists):
		handlers.WriteErrorResponse(w, http.StatusConflict, "Already enrolled in this course")
		return
	case errors.Is(err, db.ErrDoesNotExist):
		handlers.WriteErrorResponse(w, http.StatusNotFound, courseNotFound)
		return
	case err != nil:
		writeInternalError(w, logger, "failed-to-enroll", err)
		return
	}

	logger.Info("enrolled", lager.Data{"userId": user.Id, "courseId": path.CourseId})
	handlers.WriteJSONResponse(w, http.StatusCreated, enrollment)
}

func (h *CourseHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.Session("get-lesson", lager.Data{"request_id": RequestIDFromContext(r.Context())})
	lesson, _, ok := h.enrolledLesson(w, r, logger)
	if !ok {
		return
	}

	lesson.Content = validation.SanitizeHTML(lesson.Content)
	handlers.WriteJSONResponse(w, http.StatusOK, lesson)
}

func (h *CourseHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.Session("complete-lesson", lager.Data{"request_id": RequestIDFromContext(r.Context())})
	lesson, user, ok := h.enrolledLesson(w, r, logger)
	if !ok {
		return
	}

	completion, err := h.progressDB.CompleteLesson(r.Context(), user.Id, lesson, h.clock.Now())
	if err != nil {
		writeInternalError(w, logger, "failed-to-complete-lesson", err)
		return
	}
	if completion.Lesson != nil {
		completion.Lesson.Content = ""
	}

	logger.Info("lesson-completed", lager.Data{"userId": user.Id, "lessonId": lesson.Id, "xp": completion.XPAwarded})
	handlers.WriteJSONResponse(w, http.StatusOK, completion)
}

// enrolledLesson loads the lesson named by the path and checks that the
// current user is enrolled in its course. It writes the response itself
// when it returns false.
func (h *CourseHandler) enrolledLesson(w http.ResponseWriter, r *http.Request, logger lager.Logger) (*models.Lesson, *models.User, bool) {
	user, ok := currentUser(w, r, logger)
	if !ok {
		return nil, nil, false
	}

	var path lessonPath
	if err := validation.Bind(r, validation.SourcePath, &path); err != nil {
		writeInternalError(w, logger, "failed-to-bind-path", err)
		return nil, nil, false
	}

	lesson, err := h.courseDB.GetLesson(r.Context(), path.LessonId)
	if errors.Is(err, db.ErrDoesNotExist) {
		handlers.WriteErrorResponse(w, http.StatusNotFound, lessonNotFound)
		return nil, nil, false
	}
	if err != nil {
		writeInternalError(w, logger, "failed-to-get-lesson", err)
		return nil, nil, false
	}

	enrolled, err := h.courseDB.IsEnrolled(r.Context(), user.Id, lesson.CourseId)
	if err != nil {
		writeInternalError(w, logger, "failed-to-check-enrollment", err)
		return nil, nil, false
	}
	if !enrolled {
		handlers.WriteErrorResponse(w, http.StatusForbidden, notEnrolled)
		return nil, nil, false
	}
	return lesson, user, true
}

func (h *CourseHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.Session("get-progress", lager.Data{"request_id": RequestIDFromContext(r.Context())})
	user, ok := currentUser(w, r, logger)
	if !ok {
		return
	}

	progress, err := h.progressDB.GetProgress(r.Context(), user.Id)
	if err != nil {
		writeInternalError(w, logger, "failed-to-get-progress", err)
		return
	}
	progress.Level = models.LevelForXP(progress.XP)
	handlers.WriteJSONResponse(w, http.StatusOK, progress)
}
