package routes_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ritikbusiness/career-academy-backend-sub003/routes"
)

var _ = Describe("Routes", func() {
	var careerAcademyRoute *routes.CareerAcademyRoute

	BeforeEach(func() {
		careerAcademyRoute = routes.NewRouter()
	})

	Context("URL building", func() {
		It("builds the course path", func() {
			path, err := careerAcademyRoute.Router().Get(routes.GetCourseRouteName).URLPath("courseId", "42")
			Expect(err).NotTo(HaveOccurred())
			Expect(path.Path).To(Equal("/api/courses/42"))
		})

		It("builds the quiz attempts path", func() {
			path, err := careerAcademyRoute.Router().Get(routes.CreateQuizAttemptRouteName).URLPath("quizId", "7")
			Expect(err).NotTo(HaveOccurred())
			Expect(path.Path).To(Equal("/api/quizzes/7/attempts"))
		})

		It("fails on a wrong route variable", func() {
			_, err := careerAcademyRoute.Router().Get(routes.CompleteLessonRouteName).URLPath("wrongVariable", "1")
			Expect(err).To(HaveOccurred())
		})
	})

	DescribeTable("group of each route",
		func(routeName string, expected routes.Group) {
			group, ok := routes.GroupOf(routeName)
			Expect(ok).To(BeTrue())
			Expect(group).To(Equal(expected))
		},
		Entry("register", routes.RegisterRouteName, routes.GroupAuth),
		Entry("login", routes.LoginRouteName, routes.GroupAuth),
		Entry("courses", routes.ListCoursesRouteName, routes.GroupGeneral),
		Entry("enroll", routes.EnrollRouteName, routes.GroupGeneral),
		Entry("progress", routes.GetProgressRouteName, routes.GroupGeneral),
		Entry("summarize", routes.AISummarizeRouteName, routes.GroupAI),
		Entry("explain", routes.AIExplainRouteName, routes.GroupAI),
		Entry("upload", routes.UploadRouteName, routes.GroupUpload),
		Entry("info", routes.GetInfoRouteName, routes.GroupGeneral),
	)

	It("does not know unnamed routes", func() {
		_, ok := routes.GroupOf("NoSuchRoute")
		Expect(ok).To(BeFalse())
	})

	Context("dispatch", func() {
		var served map[routes.Group]int

		BeforeEach(func() {
			served = map[routes.Group]int{}
			for _, group := range routes.Groups {
				group := group
				careerAcademyRoute.Group(group).Use(func(next http.Handler) http.Handler {
					return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
						served[group]++
						next.ServeHTTP(w, r)
					})
				})
			}
			_ = careerAcademyRoute.Router().Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
				if route.GetName() != "" {
					route.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
				}
				return nil
			})
		})

		DescribeTable("sends each path through its group's subrouter",
			func(method, path string, expected routes.Group) {
				rsp := httptest.NewRecorder()
				careerAcademyRoute.Router().ServeHTTP(rsp, httptest.NewRequest(method, path, nil))
				Expect(rsp.Code).To(Equal(http.StatusNoContent))
				Expect(served).To(Equal(map[routes.Group]int{expected: 1}))
			},
			Entry("login", http.MethodPost, "/api/auth/login", routes.GroupAuth),
			Entry("course list", http.MethodGet, "/api/courses", routes.GroupGeneral),
			Entry("lesson completion", http.MethodPost, "/api/lessons/3/complete", routes.GroupGeneral),
			Entry("ai explain", http.MethodPost, "/api/ai/explain", routes.GroupAI),
			Entry("upload", http.MethodPost, "/api/uploads", routes.GroupUpload),
		)
	})
})
