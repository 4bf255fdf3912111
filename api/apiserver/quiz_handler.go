package apiserver

import (
	"errors"
	"fmt"
	"net/http"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"

	"github.com/ritikbusiness/career-academy-backend-sub003/db"
	"github.com/ritikbusiness/career-academy-backend-sub003/helpers/handlers"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"
	"github.com/ritikbusiness/career-academy-backend-sub003/validation"
)

type quizPath struct {
	QuizId int64 `json:"quizId"`
}

type QuizHandler struct {
	logger     lager.Logger
	quizDB     db.QuizDB
	progressDB db.ProgressDB
	clock      clock.Clock
}

func NewQuizHandler(logger lager.Logger, quizDB db.QuizDB, progressDB db.ProgressDB, clock clock.Clock) *QuizHandler {
	return &QuizHandler{
		logger:     logger.Session("quiz-handler"),
		quizDB:     quizDB,
		progressDB: progressDB,
		clock:      clock,
	}
}

func (h *QuizHandler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.Session("create-quiz", lager.Data{"request_id": RequestIDFromContext(r.Context())})
	user, ok := currentUser(w, r, logger)
	if !ok {
		return
	}

	var req models.QuizRequest
	if err := validation.Bind(r, validation.SourceBody, &req); err != nil {
		writeInternalError(w, logger, "failed-to-bind-body", err)
		return
	}

	var details []models.FieldError
	stripped := func(field string, value string) string {
		text := validation.StripHTML(value)
		if text == "" {
			details = append(details, models.FieldError{Field: field, Message: emptyAfterStrip})
		}
		return text
	}

	req.Title = stripped("title", req.Title)
	for i, question := range req.Questions {
		question.Prompt = stripped(fmt.Sprintf("questions.%d.prompt", i), question.Prompt)
		for j := range question.Options {
			question.Options[j] = stripped(fmt.Sprintf("questions.%d.options.%d", i, j), question.Options[j])
		}
		// answerIndex must point at one of the question's own options
		if question.AnswerIndex >= len(question.Options) {
			details = append(details, models.FieldError{
				Field:   fmt.Sprintf("questions.%d.answerIndex", i),
				Message: fmt.Sprintf("answerIndex must be less than the number of options (%d)", len(question.Options)),
			})
		}
	}
	if len(details) > 0 {
		writeFieldErrors(w, details...)
		return
	}

	quiz, err := h.quizDB.CreateQuiz(r.Context(), &models.Quiz{
		CourseId:  req.CourseId,
		AuthorId:  user.Id,
		Title:     req.Title,
		Questions: req.Questions,
		CreatedAt: h.clock.Now(),
	})
	if errors.Is(err, db.ErrDoesNotExist) {
		handlers.WriteErrorResponse(w, http.StatusNotFound, courseNotFound)
		return
	}
	if err != nil {
		writeInternalError(w, logger, "failed-to-create-quiz", err)
		return
	}

	logger.Info("quiz-created", lager.Data{"quizId": quiz.Id, "courseId": quiz.CourseId})
	handlers.WriteJSONResponse(w, http.StatusCreated, quiz)
}

// CreateAttempt scores the answers and awards XP for every correct one.
func (h *QuizHandler) CreateAttempt(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.Session("create-attempt", lager.Data{"request_id": RequestIDFromContext(r.Context())})
	user, ok := currentUser(w, r, logger)
	if !ok {
		return
	}

	var path quizPath
	if err := validation.Bind(r, validation.SourcePath, &path); err != nil {
		writeInternalError(w, logger, "failed-to-bind-path", err)
		return
	}
	var req models.QuizAttemptRequest
	if err := validation.Bind(r, validation.SourceBody, &req); err != nil {
		writeInternalError(w, logger, "failed-to-bind-body", err)
		return
	}

	quiz, err := h.quizDB.GetQuiz(r.Context(), path.QuizId)
	if errors.Is(err, db.ErrDoesNotExist) {
		handlers.WriteErrorResponse(w, http.StatusNotFound, "Quiz not found")
		return
	}
	if err != nil {
		writeInternalError(w, logger, "failed-to-get-quiz", err)
		return
	}

	now := h.clock.Now()
	result := quiz.Score(req.Answers)
	if err := h.quizDB.SaveAttempt(r.Context(), user.Id, result, now); err != nil {
		writeInternalError(w, logger, "failed-to-save-attempt", err)
		return
	}

	response := models.QuizAttemptResponse{Result: result}
	if result.XPEarned > 0 {
		response.Progress, err = h.progressDB.AwardXP(r.Context(), user.Id, result.XPEarned, now)
		if err != nil {
			writeInternalError(w, logger, "failed-to-award-xp", err)
			return
		}
	}

	logger.Info("attempt-scored", lager.Data{"userId": user.Id, "quizId": quiz.Id, "correct": result.Correct, "total": result.Total})
	handlers.WriteJSONResponse(w, http.StatusCreated, response)
}
