package validation_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ritikbusiness/career-academy-backend-sub003/models"
	"github.com/ritikbusiness/career-academy-backend-sub003/validation"
)

func decode(body string) any {
	var raw any
	Expect(json.Unmarshal([]byte(body), &raw)).To(Succeed())
	return raw
}

var _ = Describe("Schema", func() {
	var (
		schemas *validation.Schemas
		schema  *validation.Schema
		data    map[string]any
		details []models.FieldError
		err     error
	)

	BeforeEach(func() {
		schemas, err = validation.LoadSchemas()
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("registration", func() {
		BeforeEach(func() {
			schema, err = schemas.Get("register")
			Expect(err).NotTo(HaveOccurred())
		})

		Context("when the username is too short", func() {
			BeforeEach(func() {
				data, details, err = schema.Validate(decode(`{"username":"ab"}`), validation.SourceBody)
			})

			It("reports every failing field", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(data).To(BeNil())
				fields := []string{}
				for _, d := range details {
					fields = append(fields, d.Field)
				}
				Expect(fields).To(ConsistOf("email", "fullName", "password", "username"))
				Expect(details).To(ContainElement(models.FieldError{
					Field:   "username",
					Message: "String length must be greater than or equal to 3",
				}))
			})
		})

		Context("with a complete registration", func() {
			BeforeEach(func() {
				data, details, err = schema.Validate(decode(`{"username":"  validname ","password":"longenough1","fullName":"A B","email":"a@b.com","role":"admin"}`), validation.SourceBody)
			})

			It("returns the normalized input", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(details).To(BeEmpty())
				Expect(data).To(Equal(map[string]any{
					"username": "validname",
					"password": "longenough1",
					"fullName": "A B",
					"email":    "a@b.com",
				}))
			})
		})

		Context("with a malformed email", func() {
			BeforeEach(func() {
				data, details, err = schema.Validate(decode(`{"username":"validname","password":"longenough1","fullName":"A B","email":"not-an-email"}`), validation.SourceBody)
			})

			It("cites the email field", func() {
				Expect(details).To(HaveLen(1))
				Expect(details[0].Field).To(Equal("email"))
			})
		})

		Context("when the body is not an object", func() {
			BeforeEach(func() {
				data, details, err = schema.Validate(decode(`["validname"]`), validation.SourceBody)
			})

			It("attributes the error to the body", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(details).To(ContainElement(HaveField("Field", "body")))
			})
		})
	})

	Describe("course listing query", func() {
		BeforeEach(func() {
			schema, err = schemas.Get("course-query")
			Expect(err).NotTo(HaveOccurred())
		})

		It("coerces numeric strings and applies defaults", func() {
			data, details, err = schema.Validate(map[string]any{"limit": "50", "category": " web "}, validation.SourceQuery)
			Expect(err).NotTo(HaveOccurred())
			Expect(details).To(BeEmpty())
			Expect(data).To(HaveKeyWithValue("limit", int64(50)))
			Expect(data).To(HaveKeyWithValue("page", float64(1)))
			Expect(data).To(HaveKeyWithValue("category", "web"))
		})

		It("rejects values out of range", func() {
			_, details, err = schema.Validate(map[string]any{"page": "0", "limit": "101"}, validation.SourceQuery)
			Expect(err).NotTo(HaveOccurred())
			Expect(details).To(HaveLen(2))
			Expect(details[0].Field).To(Equal("limit"))
			Expect(details[1].Field).To(Equal("page"))
		})

		It("rejects values that are not numbers", func() {
			_, details, err = schema.Validate(map[string]any{"page": "two"}, validation.SourceQuery)
			Expect(details).To(HaveLen(1))
			Expect(details[0].Field).To(Equal("page"))
		})
	})

	Describe("quiz", func() {
		BeforeEach(func() {
			schema, err = schemas.Get("quiz")
			Expect(err).NotTo(HaveOccurred())
		})

		It("reports nested fields with dotted paths", func() {
			_, details, err = schema.Validate(decode(`{"courseId":1,"title":"Go basics","questions":[{"prompt":"Pick one","options":["a"],"answerIndex":0},{"options":["a","b"],"answerIndex":1}]}`), validation.SourceBody)
			Expect(err).NotTo(HaveOccurred())
			Expect(details).To(ConsistOf(
				HaveField("Field", "questions.0.options"),
				HaveField("Field", "questions.1.prompt"),
			))
		})
	})

	Describe("Get", func() {
		It("fails with an internal error for unknown schemas", func() {
			_, err = schemas.Get("does-not-exist")
			Expect(err).To(MatchError(validation.ErrInternal))
		})
	})

	Describe("NewSchema", func() {
		It("fails with an internal error for an invalid document", func() {
			_, err = validation.NewSchema("broken", []byte(`{"type": 12}`))
			Expect(err).To(MatchError(validation.ErrInternal))
		})
	})
})
