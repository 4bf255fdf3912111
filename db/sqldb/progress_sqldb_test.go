package sqldb_test

import (
	"context"
	"time"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ritikbusiness/career-academy-backend-sub003/db/sqldb"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"
)

var _ = Describe("ProgressSQLDB and QuizSQLDB", func() {
	var (
		pdb    *sqldb.ProgressSQLDB
		qdb    *sqldb.QuizSQLDB
		udb    *sqldb.UserSQLDB
		ctx    context.Context
		lesson *models.Lesson
		userId int64
		now    time.Time
		err    error
	)

	BeforeEach(func() {
		cleanTables()
		ctx = context.Background()
		now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		logger := lagertest.NewTestLogger("progress-sqldb-test")
		pdb, err = sqldb.NewProgressSQLDB(dbConfig, logger)
		Expect(err).NotTo(HaveOccurred())
		qdb, err = sqldb.NewQuizSQLDB(dbConfig, logger)
		Expect(err).NotTo(HaveOccurred())
		udb, err = sqldb.NewUserSQLDB(dbConfig, logger)
		Expect(err).NotTo(HaveOccurred())

		courseId := insertCourse("Go basics", "programming")
		lesson = &models.Lesson{Id: insertLesson(courseId, 1, 60), CourseId: courseId, XPReward: 60}
		user, err := udb.CreateUser(ctx, &models.User{Username: "learner", Email: "l@b.com", FullName: "L", PasswordHash: "x", CreatedAt: now})
		Expect(err).NotTo(HaveOccurred())
		userId = user.Id
	})

	AfterEach(func() {
		Expect(pdb.Close()).To(Succeed())
		Expect(qdb.Close()).To(Succeed())
		Expect(udb.Close()).To(Succeed())
	})

	It("starts with empty progress", func() {
		progress, err := pdb.GetProgress(ctx, userId)
		Expect(err).NotTo(HaveOccurred())
		Expect(progress.XP).To(Equal(0))
		Expect(progress.Level).To(Equal(1))
	})

	It("awards lesson xp only once", func() {
		completion, err := pdb.CompleteLesson(ctx, userId, lesson, now)
		Expect(err).NotTo(HaveOccurred())
		Expect(completion.XPAwarded).To(Equal(60))
		Expect(completion.Progress.StreakDays).To(Equal(1))

		completion, err = pdb.CompleteLesson(ctx, userId, lesson, now.Add(time.Hour))
		Expect(err).NotTo(HaveOccurred())
		Expect(completion.AlreadyDone).To(BeTrue())
		Expect(completion.XPAwarded).To(Equal(0))
		Expect(completion.Progress.XP).To(Equal(60))
	})

	It("extends the streak on the following day", func() {
		_, err = pdb.AwardXP(ctx, userId, 50, now)
		Expect(err).NotTo(HaveOccurred())
		progress, err := pdb.AwardXP(ctx, userId, 70, now.AddDate(0, 0, 1))
		Expect(err).NotTo(HaveOccurred())
		Expect(progress.XP).To(Equal(120))
		Expect(progress.Level).To(Equal(2))
		Expect(progress.StreakDays).To(Equal(2))

		progress, err = pdb.GetProgress(ctx, userId)
		Expect(err).NotTo(HaveOccurred())
		Expect(progress.StreakDays).To(Equal(2))
	})

	It("stores quizzes with their questions", func() {
		quiz, err := qdb.CreateQuiz(ctx, &models.Quiz{
			CourseId:  lesson.CourseId,
			AuthorId:  userId,
			Title:     "Go quiz",
			Questions: []*models.QuizQuestion{{Prompt: "2+2?", Options: []string{"3", "4"}, AnswerIndex: 1}},
			CreatedAt: now,
		})
		Expect(err).NotTo(HaveOccurred())

		loaded, err := qdb.GetQuiz(ctx, quiz.Id)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.Questions).To(HaveLen(1))
		Expect(loaded.Questions[0].Options).To(Equal([]string{"3", "4"}))

		Expect(qdb.SaveAttempt(ctx, userId, loaded.Score([]int{1}), now)).To(Succeed())
	})
})
