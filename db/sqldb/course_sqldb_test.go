package sqldb_test

import (
	"context"
	"time"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ritikbusiness/career-academy-backend-sub003/db"
	"github.com/ritikbusiness/career-academy-backend-sub003/db/sqldb"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"
)

var _ = Describe("CourseSQLDB", func() {
	var (
		cdb      *sqldb.CourseSQLDB
		udb      *sqldb.UserSQLDB
		ctx      context.Context
		goId     int64
		userId   int64
		lessonId int64
		err      error
	)

	BeforeEach(func() {
		cleanTables()
		ctx = context.Background()
		logger := lagertest.NewTestLogger("course-sqldb-test")
		cdb, err = sqldb.NewCourseSQLDB(dbConfig, logger)
		Expect(err).NotTo(HaveOccurred())
		udb, err = sqldb.NewUserSQLDB(dbConfig, logger)
		Expect(err).NotTo(HaveOccurred())

		goId = insertCourse("Go basics", "programming")
		insertCourse("Watercolor", "art")
		insertLesson(goId, 2, 20)
		lessonId = insertLesson(goId, 1, 10)

		user, err := udb.CreateUser(ctx, &models.User{Username: "learner", Email: "l@b.com", FullName: "L", PasswordHash: "x", CreatedAt: time.Now()})
		Expect(err).NotTo(HaveOccurred())
		userId = user.Id
	})

	AfterEach(func() {
		Expect(cdb.Close()).To(Succeed())
		Expect(udb.Close()).To(Succeed())
	})

	It("lists courses by category", func() {
		all, err := cdb.ListCourses(ctx, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(2))

		art, err := cdb.ListCourses(ctx, "art")
		Expect(err).NotTo(HaveOccurred())
		Expect(art).To(HaveLen(1))
		Expect(art[0].Title).To(Equal("Watercolor"))
	})

	It("loads a course with its lessons in order", func() {
		course, err := cdb.GetCourse(ctx, goId)
		Expect(err).NotTo(HaveOccurred())
		Expect(course.Lessons).To(HaveLen(2))
		Expect(course.Lessons[0].Id).To(Equal(lessonId))

		_, err = cdb.GetCourse(ctx, goId+1000)
		Expect(err).To(MatchError(db.ErrDoesNotExist))
	})

	It("enrolls a user once", func() {
		enrolled, err := cdb.IsEnrolled(ctx, userId, goId)
		Expect(err).NotTo(HaveOccurred())
		Expect(enrolled).To(BeFalse())

		_, err = cdb.Enroll(ctx, userId, goId, time.Now())
		Expect(err).NotTo(HaveOccurred())
		_, err = cdb.Enroll(ctx, userId, goId, time.Now())
		Expect(err).To(MatchError(db.ErrAlreadyExists))

		enrolled, err = cdb.IsEnrolled(ctx, userId, goId)
		Expect(err).NotTo(HaveOccurred())
		Expect(enrolled).To(BeTrue())
	})
})
