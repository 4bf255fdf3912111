package models_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ritikbusiness/career-academy-backend-sub003/models"
)

var _ = Describe("Quiz", func() {
	var quiz *models.Quiz

	BeforeEach(func() {
		quiz = &models.Quiz{
			Id: 3,
			Questions: []*models.QuizQuestion{
				{Prompt: "2+2", Options: []string{"3", "4"}, AnswerIndex: 1},
				{Prompt: "Go keyword for goroutines", Options: []string{"go", "async", "spawn"}, AnswerIndex: 0},
				{Prompt: "HTTP 429", Options: []string{"Not Found", "Too Many Requests"}, AnswerIndex: 1},
			},
		}
	})

	It("scores correct answers and awards xp for each", func() {
		result := quiz.Score([]int{1, 0, 0})
		Expect(result).To(Equal(models.QuizAttemptResult{QuizId: 3, Correct: 2, Total: 3, XPEarned: 2 * models.XPPerCorrectAnswer}))
	})

	It("counts missing answers as wrong", func() {
		result := quiz.Score([]int{1})
		Expect(result.Correct).To(Equal(1))
		Expect(result.Total).To(Equal(3))
	})

	It("ignores extra answers", func() {
		result := quiz.Score([]int{1, 0, 1, 1, 1})
		Expect(result.Correct).To(Equal(3))
	})
})
