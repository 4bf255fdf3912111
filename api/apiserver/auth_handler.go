package apiserver

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ritikbusiness/career-academy-backend-sub003/db"
	"github.com/ritikbusiness/career-academy-backend-sub003/helpers/handlers"
	"github.com/ritikbusiness/career-academy-backend-sub003/models"
	"github.com/ritikbusiness/career-academy-backend-sub003/validation"
)

const (
	invalidCredentials = "Invalid username or password"
	maxPasswordBytes   = 72
	emptyAfterStrip    = "String length must be greater than or equal to 1 after removing markup"
)

type AuthHandler struct {
	logger     lager.Logger
	userDB     db.UserDB
	clock      clock.Clock
	sessionTTL time.Duration
	bcryptCost int
}

func NewAuthHandler(logger lager.Logger, userDB db.UserDB, clock clock.Clock, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		logger:     logger.Session("auth-handler"),
		userDB:     userDB,
		clock:      clock,
		sessionTTL: sessionTTL,
		bcryptCost: bcrypt.DefaultCost,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.Session("register", lager.Data{"request_id": RequestIDFromContext(r.Context())})

	var req models.RegistrationRequest
	if err := validation.Bind(r, validation.SourceBody, &req); err != nil {
		writeInternalError(w, logger, "failed-to-bind-body", err)
		return
	}

	// bcrypt only hashes the first 72 bytes and rejects longer input.
	if len(req.Password) > maxPasswordBytes {
		writeFieldErrors(w, models.FieldError{Field: "password", Message: fmt.Sprintf("String length must be at most %d bytes", maxPasswordBytes)})
		return
	}
	fullName := validation.StripHTML(req.FullName)
	if fullName == "" {
		writeFieldErrors(w, models.FieldError{Field: "fullName", Message: emptyAfterStrip})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.bcryptCost)
	if err != nil {
		writeInternalError(w, logger, "failed-to-hash-password", err)
		return
	}

	user, err := h.userDB.CreateUser(r.Context(), &models.User{
		Username:     req.Username,
		Email:        req.Email,
		FullName:     fullName,
		PasswordHash: string(passwordHash),
		CreatedAt:    h.clock.Now(),
	})
	if errors.Is(err, db.ErrAlreadyExists) {
		handlers.WriteErrorResponse(w, http.StatusConflict, "Username or email is already registered")
		return
	}
	if err != nil {
		writeInternalError(w, logger, "failed-to-create-user", err)
		return
	}

	logger.Info("registered", lager.Data{"userId": user.Id})
	handlers.WriteJSONResponse(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.Session("login", lager.Data{"request_id": RequestIDFromContext(r.Context())})

	var req models.LoginRequest
	if err := validation.Bind(r, validation.SourceBody, &req); err != nil {
		writeInternalError(w, logger, "failed-to-bind-body", err)
		return
	}

	user, err := h.userDB.GetUserByUsername(r.Context(), req.Username)
	if errors.Is(err, db.ErrDoesNotExist) {
		handlers.WriteErrorResponse(w, http.StatusUnauthorized, invalidCredentials)
		return
	}
	if err != nil {
		writeInternalError(w, logger, "failed-to-get-user", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		logger.Info("invalid-password", lager.Data{"userId": user.Id})
		handlers.WriteErrorResponse(w, http.StatusUnauthorized, invalidCredentials)
		return
	}

	session := &models.Session{
		Token:     uuid.NewString(),
		UserId:    user.Id,
		ExpiresAt: h.clock.Now().Add(h.sessionTTL),
	}
	if err := h.userDB.SaveSession(r.Context(), session); err != nil {
		writeInternalError(w, logger, "failed-to-save-session", err)
		return
	}

	handlers.WriteJSONResponse(w, http.StatusOK, models.LoginResponse{User: user, Session: session})
}

func writeFieldErrors(w http.ResponseWriter, details ...models.FieldError) {
	handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ValidationErrorResponse{Error: "Validation failed", Details: details})
}

func writeInternalError(w http.ResponseWriter, logger lager.Logger, action string, err error) {
	logger.Error(action, err)
	handlers.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
}

// currentUser returns the user put on the request by Authenticate.
func currentUser(w http.ResponseWriter, r *http.Request, logger lager.Logger) (*models.User, bool) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		logger.Error("no-user-on-request", nil)
		handlers.WriteErrorResponse(w, http.StatusUnauthorized, "Authentication required")
	}
	return user, ok
}
