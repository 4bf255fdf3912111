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

type ProgressSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

var _ db.ProgressDB = &ProgressSQLDB{}

func NewProgressSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*ProgressSQLDB, error) {
	sqldb, err := connect(dbConfig, db.ProgressDb, logger)
	if err != nil {
		return nil, err
	}
	return &ProgressSQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (pdb *ProgressSQLDB) Close() error {
	err := pdb.sqldb.Close()
	if err != nil {
		pdb.logger.Error("close-progress-db", err, lager.Data{"dbConfig": pdb.dbConfig})
		return err
	}
	return nil
}

func (pdb *ProgressSQLDB) Ping() error {
	return pdb.sqldb.Ping()
}

func (pdb *ProgressSQLDB) GetDBStatus() sql.DBStats {
	return pdb.sqldb.Stats()
}

func (pdb *ProgressSQLDB) GetProgress(ctx context.Context, userId int64) (*models.Progress, error) {
	progress, _, err := getProgress(ctx, pdb.sqldb, userId, false)
	if err != nil {
		pdb.logger.Error("get-progress", err, lager.Data{"userId": userId})
		return nil, err
	}

	query := pdb.sqldb.Rebind("SELECT COUNT(*) FROM lesson_completions WHERE user_id = ?")
	err = pdb.sqldb.GetContext(ctx, &progress.CompletedLessons, query, userId)
	if err != nil {
		pdb.logger.Error("get-progress-completed-lessons", err, lager.Data{"query": query, "userId": userId})
		return nil, err
	}

	query = pdb.sqldb.Rebind("SELECT COUNT(*) FROM enrollments WHERE user_id = ?")
	err = pdb.sqldb.GetContext(ctx, &progress.Enrollments, query, userId)
	if err != nil {
		pdb.logger.Error("get-progress-enrollments", err, lager.Data{"query": query, "userId": userId})
		return nil, err
	}
	return progress, nil
}

// CompleteLesson records the completion and awards the lesson's XP. A lesson
// already completed by the user awards nothing.
func (pdb *ProgressSQLDB) CompleteLesson(ctx context.Context, userId int64, lesson *models.Lesson, at time.Time) (*models.LessonCompletion, error) {
	completion := &models.LessonCompletion{Lesson: lesson}
	err := pdb.inTx(ctx, func(tx *sqlx.Tx) error {
		query := tx.Rebind("INSERT INTO lesson_completions (user_id, lesson_id, completed_at) VALUES (?, ?, ?)")
		_, err := tx.ExecContext(ctx, query, userId, lesson.Id, at)
		if err != nil {
			return err
		}
		completion.XPAwarded = lesson.XPReward
		completion.Progress, err = addXP(ctx, tx, userId, lesson.XPReward, at)
		return err
	})
	if isUniqueViolation(err) {
		completion.AlreadyDone = true
		completion.Progress, _, err = getProgress(ctx, pdb.sqldb, userId, false)
	}
	if err != nil {
		pdb.logger.Error("complete-lesson", err, lager.Data{"userId": userId, "lessonId": lesson.Id})
		return nil, err
	}
	return completion, nil
}

func (pdb *ProgressSQLDB) AwardXP(ctx context.Context, userId int64, xp int, at time.Time) (*models.Progress, error) {
	var progress *models.Progress
	err := pdb.inTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		progress, err = addXP(ctx, tx, userId, xp, at)
		return err
	})
	if err != nil {
		pdb.logger.Error("award-xp", err, lager.Data{"userId": userId, "xp": xp})
		return nil, err
	}
	return progress, nil
}

func (pdb *ProgressSQLDB) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := pdb.sqldb.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// addXP adds xp and advances the streak, creating the progress row on first activity.
func addXP(ctx context.Context, tx *sqlx.Tx, userId int64, xp int, at time.Time) (*models.Progress, error) {
	progress, found, err := getProgress(ctx, tx, userId, true)
	if err != nil {
		return nil, err
	}

	progress.StreakDays = models.NextStreak(progress.StreakDays, progress.LastActivityAt, at)
	progress.XP += xp
	progress.LastActivityAt = &at
	progress.Level = models.LevelForXP(progress.XP)

	if !found {
		query := tx.Rebind("INSERT INTO progress (user_id, xp, streak_days, last_activity_at) VALUES (?, ?, ?, ?)")
		_, err = tx.ExecContext(ctx, query, userId, progress.XP, progress.StreakDays, at)
	} else {
		query := tx.Rebind("UPDATE progress SET xp = ?, streak_days = ?, last_activity_at = ? WHERE user_id = ?")
		_, err = tx.ExecContext(ctx, query, progress.XP, progress.StreakDays, at, userId)
	}
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// getProgress loads the progress row, returning a zero progress when the
// user has no activity yet.
func getProgress(ctx context.Context, q sqlx.ExtContext, userId int64, forUpdate bool) (*models.Progress, bool, error) {
	query := "SELECT user_id, xp, streak_days, last_activity_at FROM progress WHERE user_id = ?"
	if forUpdate {
		query += " FOR UPDATE"
	}

	found := true
	progress := &models.Progress{}
	err := sqlx.GetContext(ctx, q, progress, q.Rebind(query), userId)
	if errors.Is(err, sql.ErrNoRows) {
		found = false
		progress = &models.Progress{UserId: userId}
	} else if err != nil {
		return nil, false, err
	}
	progress.Level = models.LevelForXP(progress.XP)
	return progress, found, nil
}
