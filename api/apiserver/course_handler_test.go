package apiserver_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ritikbusiness/career-academy-backend-sub003/db"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"
)

var _ = Describe("CourseHandler", func() {
	var catalog []*models.Course

	BeforeEach(func() {
		catalog = []*models.Course{
			{Id: 1, Title: "Go Fundamentals", Description: "Types, interfaces and goroutines", Category: "programming"},
			{Id: 2, Title: "C++ for Systems", Description: "Templates and RAII", Category: "programming"},
			{Id: 3, Title: "Negotiation (Advanced)", Description: "Closing deals", Category: "business"},
		}
		courseDB.ListCoursesStub = func(_ context.Context, category string) ([]*models.Course, error) {
			if category == "" {
				return catalog, nil
			}
			matching := []*models.Course{}
			for _, course := range catalog {
				if course.Category == category {
					matching = append(matching, course)
				}
			}
			return matching, nil
		}
	})

	Describe("ListCourses", func() {
		It("applies the default page and limit", func() {
			rsp := serve(http.MethodGet, "/api/courses", nil)
			Expect(rsp.Code).To(Equal(http.StatusOK))
			page := decode[models.CoursePage](rsp)
			Expect(page.Page).To(Equal(1))
			Expect(page.Limit).To(Equal(20))
			Expect(page.Total).To(Equal(3))
			Expect(page.Courses).To(HaveLen(3))
		})

		It("paginates", func() {
			page := decode[models.CoursePage](serve(http.MethodGet, "/api/courses?page=2&limit=2", nil))
			Expect(page.Total).To(Equal(3))
			Expect(page.Courses).To(HaveLen(1))
			Expect(page.Courses[0].Id).To(Equal(int64(3)))
		})

		It("returns an empty page past the end", func() {
			rsp := serve(http.MethodGet, "/api/courses?page=9", nil)
			Expect(rsp.Code).To(Equal(http.StatusOK))
			Expect(rsp.Body.String()).To(ContainSubstring(`"courses":[]`))
		})

		It("returns an empty page for the last allowed page", func() {
			rsp := serve(http.MethodGet, "/api/courses?page=100000&limit=100", nil)
			Expect(rsp.Code).To(Equal(http.StatusOK))
			Expect(decode[models.CoursePage](rsp).Courses).To(BeEmpty())
		})

		It("rejects a page number whose offset would overflow", func() {
			rsp := serve(http.MethodGet, "/api/courses?page=2305843009213693953&limit=4", nil)
			Expect(rsp.Code).To(Equal(http.StatusBadRequest))
			Expect(decode[models.ValidationErrorResponse](rsp).Details).To(ConsistOf(HaveField("Field", "page")))
		})

		It("treats search text literally", func() {
			page := decode[models.CoursePage](serve(http.MethodGet, "/api/courses?search=c%2B%2B", nil))
			Expect(page.Courses).To(HaveLen(1))
			Expect(page.Courses[0].Id).To(Equal(int64(2)))

			page = decode[models.CoursePage](serve(http.MethodGet, "/api/courses?search=(advanced)", nil))
			Expect(page.Courses).To(HaveLen(1))
			Expect(page.Courses[0].Id).To(Equal(int64(3)))

			page = decode[models.CoursePage](serve(http.MethodGet, "/api/courses?search=.*", nil))
			Expect(page.Courses).To(BeEmpty())
		})

		It("matches descriptions case-insensitively", func() {
			page := decode[models.CoursePage](serve(http.MethodGet, "/api/courses?search=GOROUTINES", nil))
			Expect(page.Courses).To(HaveLen(1))
			Expect(page.Courses[0].Id).To(Equal(int64(1)))
		})

		It("caches the catalog per category", func() {
			serve(http.MethodGet, "/api/courses?category=programming", nil)
			serve(http.MethodGet, "/api/courses?category=programming&page=2", nil)
			serve(http.MethodGet, "/api/courses?category=business", nil)

			Expect(courseDB.ListCoursesCallCount()).To(Equal(2))
			_, category := courseDB.ListCoursesArgsForCall(0)
			Expect(category).To(Equal("programming"))
		})

		It("rejects an out of range limit", func() {
			rsp := serve(http.MethodGet, "/api/courses?limit=500", nil)
			Expect(rsp.Code).To(Equal(http.StatusBadRequest))
			Expect(decode[models.ValidationErrorResponse](rsp).Details).To(ConsistOf(HaveField("Field", "limit")))
		})

		It("answers 500 when the catalog cannot be loaded", func() {
			courseDB.ListCoursesStub = nil
			courseDB.ListCoursesReturns(nil, errors.New("boom"))
			rsp := serve(http.MethodGet, "/api/courses", nil)
			Expect(rsp.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("GetCourse", func() {
		It("returns the course with its lesson outline", func() {
			courseDB.GetCourseReturns(&models.Course{
				Id:      1,
				Title:   "Go Fundamentals",
				Lessons: []*models.Lesson{{Id: 10, CourseId: 1, Title: "Hello", Content: "<p>secret</p>"}},
			}, nil)

			rsp := serve(http.MethodGet, "/api/courses/1", nil)
			Expect(rsp.Code).To(Equal(http.StatusOK))
			Expect(rsp.Body.String()).NotTo(ContainSubstring("secret"))
			_, courseId := courseDB.GetCourseArgsForCall(0)
			Expect(courseId).To(Equal(int64(1)))
		})

		It("answers 404 for an unknown course", func() {
			courseDB.GetCourseReturns(nil, db.ErrDoesNotExist)
			rsp := serve(http.MethodGet, "/api/courses/99", nil)
			Expect(rsp.Code).To(Equal(http.StatusNotFound))
			Expect(rsp.Body.String()).To(MatchJSON(`{"error":"Course not found"}`))
		})
	})

	Describe("Enroll", func() {
		It("enrolls the current user", func() {
			courseDB.EnrollReturns(&models.Enrollment{UserId: 7, CourseId: 2, EnrolledAt: fakeClock.Now()}, nil)
			rsp := serve(http.MethodPost, "/api/courses/2/enroll", nil, authorized()...)
			Expect(rsp.Code).To(Equal(http.StatusCreated))
			_, userId, courseId, at := courseDB.EnrollArgsForCall(0)
			Expect(userId).To(Equal(int64(7)))
			Expect(courseId).To(Equal(int64(2)))
			Expect(at).To(Equal(fakeClock.Now()))
		})

		DescribeTable("maps storage errors",
			func(err error, status int) {
				courseDB.EnrollReturns(nil, err)
				rsp := serve(http.MethodPost, "/api/courses/2/enroll", nil, authorized()...)
				Expect(rsp.Code).To(Equal(status))
			},
			Entry("already enrolled", db.ErrAlreadyExists, http.StatusConflict),
			Entry("no such course", db.ErrDoesNotExist, http.StatusNotFound),
			Entry("anything else", fmt.Errorf("wrapped: %w", errors.New("boom")), http.StatusInternalServerError),
		)
	})

	Describe("lessons", func() {
		BeforeEach(func() {
			courseDB.GetLessonReturns(&models.Lesson{
				Id:       10,
				CourseId: 1,
				Title:    "Hello",
				Content:  `<p onclick="steal()">Welcome <script>alert(1)</script><a href="javascript:alert(1)">link</a></p>`,
				XPReward: 20,
			}, nil)
			courseDB.IsEnrolledReturns(true, nil)
		})

		It("serves sanitized lesson content to enrolled learners", func() {
			rsp := serve(http.MethodGet, "/api/lessons/10", nil, authorized()...)
			Expect(rsp.Code).To(Equal(http.StatusOK))
			lesson := decode[models.Lesson](rsp)
			Expect(lesson.Content).To(ContainSubstring("Welcome"))
			Expect(lesson.Content).NotTo(ContainSubstring("script"))
			Expect(lesson.Content).NotTo(ContainSubstring("onclick"))
			Expect(lesson.Content).NotTo(ContainSubstring("javascript:"))
		})

		It("answers 403 to learners not enrolled in the course", func() {
			courseDB.IsEnrolledReturns(false, nil)
			rsp := serve(http.MethodGet, "/api/lessons/10", nil, authorized()...)
			Expect(rsp.Code).To(Equal(http.StatusForbidden))
			_, userId, courseId := courseDB.IsEnrolledArgsForCall(0)
			Expect(userId).To(Equal(int64(7)))
			Expect(courseId).To(Equal(int64(1)))
		})

		It("answers 404 for an unknown lesson", func() {
			courseDB.GetLessonReturns(nil, db.ErrDoesNotExist)
			rsp := serve(http.MethodGet, "/api/lessons/10", nil, authorized()...)
			Expect(rsp.Code).To(Equal(http.StatusNotFound))
		})

		It("completes a lesson and reports the XP awarded", func() {
			progressDB.CompleteLessonStub = func(_ context.Context, userId int64, lesson *models.Lesson, _ time.Time) (*models.LessonCompletion, error) {
				return &models.LessonCompletion{
					Lesson:    lesson,
					XPAwarded: lesson.XPReward,
					Progress:  &models.Progress{UserId: userId, XP: 120, StreakDays: 2, Level: 2},
				}, nil
			}

			rsp := serve(http.MethodPost, "/api/lessons/10/complete", nil, authorized()...)
			Expect(rsp.Code).To(Equal(http.StatusOK))
			completion := decode[models.LessonCompletion](rsp)
			Expect(completion.XPAwarded).To(Equal(20))
			Expect(completion.Progress.Level).To(Equal(2))
			Expect(completion.Lesson.Content).To(BeEmpty())
			_, _, _, at := progressDB.CompleteLessonArgsForCall(0)
			Expect(at).To(Equal(fakeClock.Now()))
		})

		It("does not complete lessons of courses the learner is not enrolled in", func() {
			courseDB.IsEnrolledReturns(false, nil)
			rsp := serve(http.MethodPost, "/api/lessons/10/complete", nil, authorized()...)
			Expect(rsp.Code).To(Equal(http.StatusForbidden))
			Expect(progressDB.CompleteLessonCallCount()).To(Equal(0))
		})
	})
})
