package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/jmoiron/sqlx"

	"github.com/ritikbusiness/career-academy-backend-sub003/db"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"
)

const courseColumns = "id, title, description, category, level, created_at"
const lessonColumns = "id, course_id, title, content, position, xp_reward, duration_minutes"

type CourseSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

var _ db.CourseDB = &CourseSQLDB{}

func NewCourseSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*CourseSQLDB, error) {
	sqldb, err := connect(dbConfig, db.CourseDb, logger)
	if err != nil {
		return nil, err
	}
	return &CourseSQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (cdb *CourseSQLDB) Close() error {
	err := cdb.sqldb.Close()
	if err != nil {
		cdb.logger.Error("close-course-db", err, lager.Data{"dbConfig": cdb.dbConfig})
		return err
	}
	return nil
}

func (cdb *CourseSQLDB) Ping() error {
	return cdb.sqldb.Ping()
}

func (cdb *CourseSQLDB) GetDBStatus() sql.DBStats {
	return cdb.sqldb.Stats()
}

// ListCourses returns the catalog ordered by id, optionally restricted to one category.
func (cdb *CourseSQLDB) ListCourses(ctx context.Context, category string) ([]*models.Course, error) {
	query := "SELECT " + courseColumns + " FROM courses"
	args := []any{}
	if category != "" {
		query += " WHERE category = ?"
		args = append(args, category)
	}
	query = cdb.sqldb.Rebind(query + " ORDER BY id")

	courses := []*models.Course{}
	err := cdb.sqldb.SelectContext(ctx, &courses, query, args...)
	if err != nil {
		cdb.logger.Error("list-courses", err, lager.Data{"query": query, "category": category})
		return nil, err
	}
	return courses, nil
}

func (cdb *CourseSQLDB) GetCourse(ctx context.Context, courseId int64) (*models.Course, error) {
	query := cdb.sqldb.Rebind("SELECT " + courseColumns + " FROM courses WHERE id = ?")
	course := &models.Course{}
	err := cdb.sqldb.GetContext(ctx, course, query, courseId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, db.ErrDoesNotExist
		}
		cdb.logger.Error("get-course", err, lager.Data{"query": query, "courseId": courseId})
		return nil, err
	}

	query = cdb.sqldb.Rebind("SELECT " + lessonColumns + " FROM lessons WHERE course_id = ? ORDER BY position")
	course.Lessons = []*models.Lesson{}
	err = cdb.sqldb.SelectContext(ctx, &course.Lessons, query, courseId)
	if err != nil {
		cdb.logger.Error("get-course-lessons", err, lager.Data{"query": query, "courseId": courseId})
		return nil, err
	}
	for _, lesson := range course.Lessons {
		lesson.Content = ""
	}
	return course, nil
}

func (cdb *CourseSQLDB) GetLesson(ctx context.Context, lessonId int64) (*models.Lesson, error) {
	query := cdb.sqldb.Rebind("SELECT " + lessonColumns + " FROM lessons WHERE id = ?")
	lesson := &models.Lesson{}
	err := cdb.sqldb.GetContext(ctx, lesson, query, lessonId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, db.ErrDoesNotExist
		}
		cdb.logger.Error("get-lesson", err, lager.Data{"query": query, "lessonId": lessonId})
		return nil, err
	}
	return lesson, nil
}

func (cdb *CourseSQLDB) Enroll(ctx context.Context, userId int64, courseId int64, at time.Time) (*models.Enrollment, error) {
	query := cdb.sqldb.Rebind("INSERT INTO enrollments (user_id, course_id, enrolled_at) VALUES (?, ?, ?)")
	_, err := cdb.sqldb.ExecContext(ctx, query, userId, courseId, at)
	switch {
	case isUniqueViolation(err):
		return nil, db.ErrAlreadyExists
	case isForeignKeyViolation(err):
		return nil, db.ErrDoesNotExist
	case err != nil:
		cdb.logger.Error("enroll", err, lager.Data{"query": query, "userId": userId, "courseId": courseId})
		return nil, err
	}
	return &models.Enrollment{UserId: userId, CourseId: courseId, EnrolledAt: at}, nil
}

func (cdb *CourseSQLDB) IsEnrolled(ctx context.Context, userId int64, courseId int64) (bool, error) {
	query := cdb.sqldb.Rebind("SELECT COUNT(*) FROM enrollments WHERE user_id = ? AND course_id = ?")
	var count int
	err := cdb.sqldb.GetContext(ctx, &count, query, userId, courseId)
	if err != nil {
		cdb.logger.Error("is-enrolled", err, lager.Data{"query": query, "userId": userId, "courseId": courseId})
		return false, err
	}
	return count > 0, nil
}
