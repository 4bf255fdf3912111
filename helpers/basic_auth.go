package helpers

import (
	"net/http"

	"github.com/ritikbusiness/career-academy-backend-sub003/models"

	"code.cloudfoundry.org/lager/v3"
	"golang.org/x/crypto/bcrypt"
)

const bcryptMaxInputLength = 72

type BasicAuthenticationMiddleware struct {
	usernameHash []byte
	passwordHash []byte
	logger       lager.Logger
}

func (bam *BasicAuthenticationMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if bam.usernameHash == nil && bam.passwordHash == nil {
			next.ServeHTTP(w, r)
			return
		}

		username, password, authOK := r.BasicAuth()
		if !authOK || bcrypt.CompareHashAndPassword(bam.usernameHash, []byte(username)) != nil || bcrypt.CompareHashAndPassword(bam.passwordHash, []byte(password)) != nil {
			bam.logger.Info("basic-authentication-failed", lager.Data{"url": r.URL.Path})
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func CreateBasicAuthMiddleware(logger lager.Logger, ba models.BasicAuth) (*BasicAuthenticationMiddleware, error) {
	usernameHash, err := hashBytes(logger, "username", ba.UsernameHash, ba.Username)
	if err != nil {
		return nil, err
	}

	passwordHash, err := hashBytes(logger, "password", ba.PasswordHash, ba.Password)
	if err != nil {
		return nil, err
	}

	return &BasicAuthenticationMiddleware{
		usernameHash: usernameHash,
		passwordHash: passwordHash,
		logger:       logger,
	}, nil
}

// hashBytes prefers the configured hash and otherwise hashes the cleartext value.
// An empty pair yields nil, which disables the check.
func hashBytes(logger lager.Logger, name string, hash string, cleartext string) ([]byte, error) {
	if hash != "" {
		return []byte(hash), nil
	}
	if cleartext == "" {
		return nil, nil
	}
	if len(cleartext) > bcryptMaxInputLength {
		logger.Error("warning-configured-"+name+"-too-long-using-only-first-72-characters", bcrypt.ErrPasswordTooLong, lager.Data{name + "-length": len(cleartext)})
		cleartext = cleartext[:bcryptMaxInputLength]
	}
	// the config provides cleartext, so MinCost is enough
	hashed, err := bcrypt.GenerateFromPassword([]byte(cleartext), bcrypt.MinCost)
	if err != nil {
		logger.Error("failed-new-server-"+name, err)
		return nil, err
	}
	return hashed, nil
}
