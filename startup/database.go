package startup

import (
	"context"
	"time"

	"code.cloudfoundry.org/lager/v3"

	"github.com/ritikbusiness/career-academy-backend-sub003/db"
	"github.com/ritikbusiness/career-academy-backend-sub003/db/sqldb"
)

const schemaTimeout = time.Minute

// Databases holds one connection pool per store.
type Databases struct {
	User     *sqldb.UserSQLDB
	Course   *sqldb.CourseSQLDB
	Quiz     *sqldb.QuizSQLDB
	Progress *sqldb.ProgressSQLDB
}

func (d *Databases) Close() {
	_ = d.User.Close()
	_ = d.Course.Close()
	_ = d.Quiz.Close()
	_ = d.Progress.Close()
}

func connectDB[T any](name string, dbConfig db.DatabaseConfig, logger lager.Logger, connect func(db.DatabaseConfig, lager.Logger) (T, error)) T {
	database, err := connect(dbConfig, logger.Session(name))
	ExitOnError(err, logger, "failed to connect "+name, lager.Data{"dbConfig": dbConfig})
	logger.Debug("connected", lager.Data{"db": name})
	return database
}

func CreateDatabases(dbConfigs map[string]db.DatabaseConfig, logger lager.Logger) *Databases {
	return &Databases{
		User:     connectDB(db.UserDb, dbConfigs[db.UserDb], logger, sqldb.NewUserSQLDB),
		Course:   connectDB(db.CourseDb, dbConfigs[db.CourseDb], logger, sqldb.NewCourseSQLDB),
		Quiz:     connectDB(db.QuizDb, dbConfigs[db.QuizDb], logger, sqldb.NewQuizSQLDB),
		Progress: connectDB(db.ProgressDb, dbConfigs[db.ProgressDb], logger, sqldb.NewProgressSQLDB),
	}
}

// CreateSchema creates the tables once per distinct database url.
func CreateSchema(dbConfigs map[string]db.DatabaseConfig, logger lager.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), schemaTimeout)
	defer cancel()

	done := map[string]bool{}
	for _, name := range []string{db.UserDb, db.CourseDb, db.QuizDb, db.ProgressDb} {
		dbConfig := dbConfigs[name]
		if done[dbConfig.URL] {
			continue
		}
		err := sqldb.CreateSchema(ctx, dbConfig, logger.Session("create-schema"))
		ExitOnError(err, logger, "failed to create schema", lager.Data{"db": name})
		done[dbConfig.URL] = true
	}
}
