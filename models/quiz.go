package models

import "time"

type Quiz struct {
	Id        int64           `db:"id" json:"id"`
	CourseId  int64           `db:"course_id" json:"courseId"`
	AuthorId  int64           `db:"author_id" json:"authorId"`
	Title     string          `db:"title" json:"title"`
	Questions []*QuizQuestion `db:"-" json:"questions"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}

type QuizQuestion struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answerIndex"`
}

type QuizRequest struct {
	CourseId  int64           `json:"courseId"`
	Title     string          `json:"title"`
	Questions []*QuizQuestion `json:"questions"`
}

type QuizAttemptRequest struct {
	Answers []int `json:"answers"`
}

type QuizAttemptResult struct {
	QuizId   int64 `json:"quizId"`
	Correct  int   `json:"correct"`
	Total    int   `json:"total"`
	XPEarned int   `json:"xpEarned"`
}

// Score compares the submitted answers against the quiz key. Missing answers count as wrong.
func (q *Quiz) Score(answers []int) QuizAttemptResult {
	result := QuizAttemptResult{QuizId: q.Id, Total: len(q.Questions)}
	for i, question := range q.Questions {
		if i < len(answers) && answers[i] == question.AnswerIndex {
			result.Correct++
		}
	}
	result.XPEarned = result.Correct * XPPerCorrectAnswer
	return result
}

type QuizAttemptResponse struct {
	Result   QuizAttemptResult `json:"result"`
	Progress *Progress         `json:"progress,omitempty"`
}
