package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"code.cloudfoundry.org/lager/v3"
	"github.com/jmoiron/sqlx"

	"github.com/ritikbusiness/career-academy-backend-sub003/db"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"
)

type UserSQLDB struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
}

var _ db.UserDB = &UserSQLDB{}

func NewUserSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger) (*UserSQLDB, error) {
	sqldb, err := connect(dbConfig, db.UserDb, logger)
	if err != nil {
		return nil, err
	}
	return &UserSQLDB{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
	}, nil
}

func (udb *UserSQLDB) Close() error {
	err := udb.sqldb.Close()
	if err != nil {
		udb.logger.Error("close-user-db", err, lager.Data{"dbConfig": udb.dbConfig})
		return err
	}
	return nil
}

func (udb *UserSQLDB) Ping() error {
	return udb.sqldb.Ping()
}

func (udb *UserSQLDB) GetDBStatus() sql.DBStats {
	return udb.sqldb.Stats()
}

func (udb *UserSQLDB) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	query := "INSERT INTO users (username, email, full_name, password_hash, created_at) VALUES (?, ?, ?, ?, ?)"
	id, err := insertReturningId(ctx, udb.sqldb, query, user.Username, user.Email, user.FullName, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, db.ErrAlreadyExists
		}
		udb.logger.Error("create-user", err, lager.Data{"query": query, "username": user.Username})
		return nil, err
	}

	created := *user
	created.Id = id
	return &created, nil
}

func (udb *UserSQLDB) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := udb.sqldb.Rebind("SELECT id, username, email, full_name, password_hash, created_at FROM users WHERE username = ?")
	return udb.getUser(ctx, query, username)
}

func (udb *UserSQLDB) GetUserById(ctx context.Context, userId int64) (*models.User, error) {
	query := udb.sqldb.Rebind("SELECT id, username, email, full_name, password_hash, created_at FROM users WHERE id = ?")
	return udb.getUser(ctx, query, userId)
}

func (udb *UserSQLDB) getUser(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	err := udb.sqldb.GetContext(ctx, user, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, db.ErrDoesNotExist
		}
		udb.logger.Error("get-user", err, lager.Data{"query": query})
		return nil, err
	}
	return user, nil
}

func (udb *UserSQLDB) SaveSession(ctx context.Context, session *models.Session) error {
	query := udb.sqldb.Rebind("INSERT INTO sessions (token, user_id, expires_at) VALUES (?, ?, ?)")
	_, err := udb.sqldb.ExecContext(ctx, query, session.Token, session.UserId, session.ExpiresAt)
	if err != nil {
		udb.logger.Error("save-session", err, lager.Data{"query": query, "userId": session.UserId})
	}
	return err
}

func (udb *UserSQLDB) GetSession(ctx context.Context, token string) (*models.Session, error) {
	query := udb.sqldb.Rebind("SELECT token, user_id, expires_at FROM sessions WHERE token = ?")
	session := &models.Session{}
	err := udb.sqldb.GetContext(ctx, session, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, db.ErrDoesNotExist
		}
		udb.logger.Error("get-session", err, lager.Data{"query": query})
		return nil, err
	}
	return session, nil
}
