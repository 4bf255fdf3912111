package sqldb

import (
	"context"
	"errors"

	"code.cloudfoundry.org/lager/v3"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/ritikbusiness/career-academy-backend-sub003/db"
)

const (
	pgUniqueViolation    = "23505"
	mysqlDuplicateEntry  = 1062
	pgForeignKeyViolated = "23503"
	mysqlNoReferencedRow = 1452
)

// connect opens and pings a connection pool configured from dbConfig.
func connect(dbConfig db.DatabaseConfig, dbName string, logger lager.Logger) (*sqlx.DB, error) {
	database, err := db.GetConnection(dbConfig.URL)
	if err != nil {
		return nil, err
	}

	sqldb, err := sqlx.Open(database.DriverName, database.DataSourceName)
	if err != nil {
		logger.Error("open-"+dbName, err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	err = sqldb.Ping()
	if err != nil {
		_ = sqldb.Close()
		logger.Error("ping-"+dbName, err, lager.Data{"dbConfig": dbConfig})
		return nil, err
	}

	sqldb.SetConnMaxLifetime(dbConfig.ConnectionMaxLifetime)
	sqldb.SetMaxIdleConns(dbConfig.MaxIdleConnections)
	sqldb.SetMaxOpenConns(dbConfig.MaxOpenConnections)
	sqldb.SetConnMaxIdleTime(dbConfig.ConnectionMaxIdleTime)

	return sqldb, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolated
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlNoReferencedRow
	}
	return false
}

// insertReturningId runs an INSERT written with ? placeholders and returns
// the generated id of the row.
func insertReturningId(ctx context.Context, ext sqlx.ExtContext, query string, args ...any) (int64, error) {
	if ext.DriverName() == db.PostgresDriverName {
		var id int64
		err := ext.QueryRowxContext(ctx, ext.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}
	result, err := ext.ExecContext(ctx, ext.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// CreateSchema creates any missing tables in the configured database.
func CreateSchema(ctx context.Context, dbConfig db.DatabaseConfig, logger lager.Logger) error {
	sqldb, err := connect(dbConfig, "schema", logger)
	if err != nil {
		return err
	}
	defer func() { _ = sqldb.Close() }()

	statements, err := db.SchemaStatements(sqldb.DriverName())
	if err != nil {
		return err
	}
	for _, stmt := range statements {
		if _, err := sqldb.ExecContext(ctx, stmt); err != nil {
			logger.Error("create-schema", err, lager.Data{"statement": stmt})
			return err
		}
	}
	logger.Info("schema-created", lager.Data{"tables": len(statements)})
	return nil
}
