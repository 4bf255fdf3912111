package sqldb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/jmoiron/sqlx"

	"github.com/ritikbusiness/career-academy-backend-sub003/db"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"
)

type QuizSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

var _ db.QuizDB = &QuizSQLDB{}

// dbQuiz keeps the questions as the JSON document stored in the quizzes table.
type dbQuiz struct {
	Id        int64     `db:"id"`
	CourseId  int64     `db:"course_id"`
	AuthorId  int64     `db:"author_id"`
	Title     string    `db:"title"`
	Questions string    `db:"questions"`
	CreatedAt time.Time `db:"created_at"`
}

func NewQuizSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*QuizSQLDB, error) {
	sqldb, err := connect(dbConfig, db.QuizDb, logger)
	if err != nil {
		return nil, err
	}
	return &QuizSQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (qdb *QuizSQLDB) Close() error {
	err := qdb.sqldb.Close()
	if err != nil {
		qdb.logger.Error("close-quiz-db", err, lager.Data{"dbConfig": qdb.dbConfig})
		return err
	}
	return nil
}

func (qdb *QuizSQLDB) Ping() error {
	return qdb.sqldb.Ping()
}

func (qdb *QuizSQLDB) GetDBStatus() sql.DBStats {
	return qdb.sqldb.Stats()
}

func (qdb *QuizSQLDB) CreateQuiz(ctx context.Context, quiz *models.Quiz) (*models.Quiz, error) {
	questions, err := json.Marshal(quiz.Questions)
	if err != nil {
		return nil, err
	}

	query := "INSERT INTO quizzes (course_id, author_id, title, questions, created_at) VALUES (?, ?, ?, ?, ?)"
	id, err := insertReturningId(ctx, qdb.sqldb, query, quiz.CourseId, quiz.AuthorId, quiz.Title, string(questions), quiz.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, db.ErrDoesNotExist
		}
		qdb.logger.Error("create-quiz", err, lager.Data{"query": query, "courseId": quiz.CourseId})
		return nil, err
	}

	created := *quiz
	created.Id = id
	return &created, nil
}

func (qdb *QuizSQLDB) GetQuiz(ctx context.Context, quizId int64) (*models.Quiz, error) {
	query := qdb.sqldb.Rebind("SELECT id, course_id, author_id, title, questions, created_at FROM quizzes WHERE id = ?")
	row := dbQuiz{}
	err := qdb.sqldb.GetContext(ctx, &row, query, quizId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, db.ErrDoesNotExist
		}
		qdb.logger.Error("get-quiz", err, lager.Data{"query": query, "quizId": quizId})
		return nil, err
	}

	quiz := &models.Quiz{
		Id:        row.Id,
		CourseId:  row.CourseId,
		AuthorId:  row.AuthorId,
		Title:     row.Title,
		CreatedAt: row.CreatedAt,
	}
	err = json.Unmarshal([]byte(row.Questions), &quiz.Questions)
	if err != nil {
		qdb.logger.Error("get-quiz-unmarshal-questions", err, lager.Data{"quizId": quizId})
		return nil, err
	}
	return quiz, nil
}

func (qdb *QuizSQLDB) SaveAttempt(ctx context.Context, userId int64, result models.QuizAttemptResult, at time.Time) error {
	query := qdb.sqldb.Rebind("INSERT INTO quiz_attempts (quiz_id, user_id, correct, total, xp_earned, attempted_at) VALUES (?, ?, ?, ?, ?, ?)")
	_, err := qdb.sqldb.ExecContext(ctx, query, result.QuizId, userId, result.Correct, result.Total, result.XPEarned, at)
	if err != nil {
		qdb.logger.Error("save-quiz-attempt", err, lager.Data{"query": query, "quizId": result.QuizId, "userId": userId})
	}
	return err
}
