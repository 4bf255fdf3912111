package apiserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/google/uuid"

	"github.com/ritikbusiness/career-academy-backend-sub003/db"
	"github.com/ritikbusiness/career-academy-backend-sub003/helpers"
	"github.com/ritikbusiness/career-academy-backend-sub003/helpers/handlers"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"
)

const HeaderRequestID = "X-Request-ID"

type contextKey string

const (
	userKey      contextKey = "user"
	requestIDKey contextKey = "request-id"
)

type Middleware struct {
	logger lager.Logger
	userDB db.UserDB
	clock  clock.Clock
}

func NewMiddleware(logger lager.Logger, userDB db.UserDB, clock clock.Clock) *Middleware {
	return &Middleware{
		logger: logger.Session("middleware"),
		userDB: userDB,
		clock:  clock,
	}
}

// RequestID keeps a caller supplied X-Request-ID or assigns a new one, and
// echoes it on the response.
func (mw *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, requestID)
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authenticate resolves the bearer session token to a user.
func (mw *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := mw.logger.Session("authenticate", helpers.AddTraceID(r.Context(), lager.Data{"path": r.URL.Path, "request_id": RequestIDFromContext(r.Context())}))

		token, ok := bearerToken(r)
		if !ok {
			handlers.WriteErrorResponse(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		session, err := mw.userDB.GetSession(r.Context(), token)
		if errors.Is(err, db.ErrDoesNotExist) {
			handlers.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid or expired session")
			return
		}
		if err != nil {
			logger.Error("failed-to-get-session", err)
			handlers.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if !mw.clock.Now().Before(session.ExpiresAt) {
			logger.Debug("session-expired", lager.Data{"userId": session.UserId})
			handlers.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid or expired session")
			return
		}

		user, err := mw.userDB.GetUserById(r.Context(), session.UserId)
		if errors.Is(err, db.ErrDoesNotExist) {
			handlers.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid or expired session")
			return
		}
		if err != nil {
			logger.Error("failed-to-get-user", err, lager.Data{"userId": session.UserId})
			handlers.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok && user != nil
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey).(string)
	return requestID
}
