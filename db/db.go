package db

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ritikbusiness/career-academy-backend-sub003/healthendpoint"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"
)

const (
	PostgresDriverName = "pgx"
	MysqlDriverName    = "mysql"
	UserDb             = "user_db"
	CourseDb           = "course_db"
	QuizDb             = "quiz_db"
	ProgressDb         = "progress_db"
)

var ErrAlreadyExists = fmt.Errorf("already exists")
var ErrDoesNotExist = fmt.Errorf("doesn't exist")

type DatabaseConfig struct {
	URL                   string        `yaml:"url"`
	MaxOpenConnections    int           `yaml:"max_open_connections"`
	MaxIdleConnections    int           `yaml:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
	ConnectionMaxIdleTime time.Duration `yaml:"connection_max_idletime"`
}

type UserDB interface {
	healthendpoint.DatabaseStatus
	healthendpoint.Pinger
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserById(ctx context.Context, userId int64) (*models.User, error)
	SaveSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, token string) (*models.Session, error)
	io.Closer
}

type CourseDB interface {
	healthendpoint.DatabaseStatus
	ListCourses(ctx context.Context, category string) ([]*models.Course, error)
	GetCourse(ctx context.Context, courseId int64) (*models.Course, error)
	GetLesson(ctx context.Context, lessonId int64) (*models.Lesson, error)
	Enroll(ctx context.Context, userId int64, courseId int64, at time.Time) (*models.Enrollment, error)
	IsEnrolled(ctx context.Context, userId int64, courseId int64) (bool, error)
	io.Closer
}

type QuizDB interface {
	healthendpoint.DatabaseStatus
	CreateQuiz(ctx context.Context, quiz *models.Quiz) (*models.Quiz, error)
	GetQuiz(ctx context.Context, quizId int64) (*models.Quiz, error)
	SaveAttempt(ctx context.Context, userId int64, result models.QuizAttemptResult, at time.Time) error
	io.Closer
}

type ProgressDB interface {
	healthendpoint.DatabaseStatus
	GetProgress(ctx context.Context, userId int64) (*models.Progress, error)
	CompleteLesson(ctx context.Context, userId int64, lesson *models.Lesson, at time.Time) (*models.LessonCompletion, error)
	AwardXP(ctx context.Context, userId int64, xp int, at time.Time) (*models.Progress, error)
	io.Closer
}
