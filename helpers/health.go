package helpers

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ritikbusiness/career-academy-backend-sub003/models"
)

// HealthConfig configures the separate listener serving readiness and
// metrics.
type HealthConfig struct {
	ServerConfig          ServerConfig     `yaml:"server_config" json:"server_config"`
	BasicAuth             models.BasicAuth `yaml:"basic_auth" json:"basic_auth"`
	ReadinessCheckEnabled bool             `yaml:"readiness_enabled" json:"readiness_enabled"`
}

var ErrConfiguration = fmt.Errorf("configuration error")

func (c *HealthConfig) Validate() error {
	ba := c.BasicAuth
	for _, credential := range []struct {
		name      string
		cleartext string
		hash      string
	}{
		{"username", ba.Username, ba.UsernameHash},
		{"password", ba.Password, ba.PasswordHash},
	} {
		if credential.cleartext != "" && credential.hash != "" {
			return fmt.Errorf("%w: both healthcheck %s and healthcheck %s_hash are set, please provide only one of them", ErrConfiguration, credential.name, credential.name)
		}
		if credential.hash == "" {
			continue
		}
		if _, err := bcrypt.Cost([]byte(credential.hash)); err != nil {
			return fmt.Errorf("%w: healthcheck %s_hash is not a valid bcrypt hash", ErrConfiguration, credential.name)
		}
	}

	switch {
	case ba.Username == "" && ba.Password != "":
		return fmt.Errorf("%w: healthcheck username is empty", ErrConfiguration)
	case ba.Username != "" && ba.Password == "":
		return fmt.Errorf("%w: healthcheck password is empty", ErrConfiguration)
	}
	return c.ServerConfig.Validate()
}

func (c *HealthConfig) BasicAuthEnabled() bool {
	return c.BasicAuth.Enabled()
}
