package validation_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ritikbusiness/career-academy-backend-sub003/models"
	"github.com/ritikbusiness/career-academy-backend-sub003/validation"
)

var _ = Describe("Gate", func() {
	var (
		router     *mux.Router
		gate       *validation.Gate
		req        *http.Request
		resp       *httptest.ResponseRecorder
		registered models.RegistrationRequest
		courseId   int64
		called     bool
	)

	BeforeEach(func() {
		schemas, err := validation.LoadSchemas()
		Expect(err).NotTo(HaveOccurred())
		gate = validation.NewGate(schemas, lagertest.NewTestLogger("validation"))
		called = false
		registered = models.RegistrationRequest{}
		courseId = 0

		router = mux.NewRouter()
		router.Handle("/api/auth/register", gate.Body("register")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			Expect(validation.Bind(r, validation.SourceBody, &registered)).To(Succeed())
			w.WriteHeader(http.StatusCreated)
		}))).Methods(http.MethodPost)
		router.Handle("/api/courses/{courseId}", gate.Path("course-path")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			var path struct {
				CourseId int64 `json:"courseId"`
			}
			Expect(validation.Bind(r, validation.SourcePath, &path)).To(Succeed())
			courseId = path.CourseId
		}))).Methods(http.MethodGet)
		router.Handle("/api/broken", gate.Body("missing-schema")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))).Methods(http.MethodPost)

		resp = httptest.NewRecorder()
	})

	JustBeforeEach(func() {
		router.ServeHTTP(resp, req)
	})

	Context("with a valid body", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/api/auth/register",
				strings.NewReader(`{"username":"validname","password":"longenough1","fullName":" A B ","email":"a@b.com"}`))
		})

		It("hands the normalized input to the handler", func() {
			Expect(resp.Code).To(Equal(http.StatusCreated))
			Expect(called).To(BeTrue())
			Expect(registered).To(Equal(models.RegistrationRequest{
				Username: "validname",
				Password: "longenough1",
				FullName: "A B",
				Email:    "a@b.com",
			}))
		})
	})

	Context("with an invalid body", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"username":"ab"}`))
		})

		It("responds 400 with every field error", func() {
			Expect(called).To(BeFalse())
			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(resp.Body.String()).To(MatchJSON(`{
				"error": "Validation failed",
				"details": [
					{"field": "email", "message": "email is required"},
					{"field": "fullName", "message": "fullName is required"},
					{"field": "password", "message": "password is required"},
					{"field": "username", "message": "String length must be greater than or equal to 3"}
				]
			}`))
		})
	})

	Context("with malformed JSON", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"username":`))
		})

		It("responds 400 citing the body", func() {
			Expect(called).To(BeFalse())
			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(resp.Body.String()).To(ContainSubstring(`"field":"body"`))
		})
	})

	Context("with data after the JSON object", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/api/auth/register",
				strings.NewReader(`{"username":"validname","password":"longenough1","fullName":"A B","email":"a@b.com"}garbage`))
		})

		It("responds 400 citing the body", func() {
			Expect(called).To(BeFalse())
			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(resp.Body.String()).To(ContainSubstring(`"field":"body"`))
		})

		Context("that is a second JSON value", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodPost, "/api/auth/register",
					strings.NewReader(`{"username":"validname","password":"longenough1","fullName":"A B","email":"a@b.com"} {}`))
			})

			It("responds 400 citing the body", func() {
				Expect(called).To(BeFalse())
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Body.String()).To(ContainSubstring(`"field":"body"`))
			})
		})

		Context("that is only whitespace", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodPost, "/api/auth/register",
					strings.NewReader("{\"username\":\"validname\",\"password\":\"longenough1\",\"fullName\":\"A B\",\"email\":\"a@b.com\"}\n\t "))
			})

			It("accepts the body", func() {
				Expect(called).To(BeTrue())
				Expect(resp.Code).To(Equal(http.StatusCreated))
			})
		})
	})

	Context("with an empty body", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/api/auth/register", http.NoBody)
		})

		It("reports the missing fields", func() {
			Expect(resp.Code).To(Equal(http.StatusBadRequest))
			Expect(resp.Body.String()).To(ContainSubstring("username is required"))
		})
	})

	Context("with path variables", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/api/courses/42", nil)
		})

		It("coerces them to the declared type", func() {
			Expect(resp.Code).To(Equal(http.StatusOK))
			Expect(courseId).To(Equal(int64(42)))
		})

		Context("that are not numbers", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/api/courses/intro", nil)
			})

			It("responds 400", func() {
				Expect(called).To(BeFalse())
				Expect(resp.Code).To(Equal(http.StatusBadRequest))
				Expect(resp.Body.String()).To(ContainSubstring(`"field":"courseId"`))
			})
		})
	})

	Context("when the schema is unknown", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/api/broken", strings.NewReader(`{}`))
		})

		It("responds 500 with a generic message", func() {
			Expect(called).To(BeFalse())
			Expect(resp.Code).To(Equal(http.StatusInternalServerError))
			Expect(resp.Body.String()).To(MatchJSON(`{"error":"Internal server error"}`))
		})
	})
})
