package models

import (
	"crypto/tls"

	"code.cloudfoundry.org/tlsconfig"
)

// TLSCerts names the PEM files a listener serves with. A CA file turns on
// client certificate verification.
type TLSCerts struct {
	KeyFile    string `yaml:"key_file" json:"keyFile"`
	CertFile   string `yaml:"cert_file" json:"certFile"`
	CACertFile string `yaml:"ca_file" json:"caCertFile"`
}

func (t *TLSCerts) Enabled() bool {
	return t != nil && t.CertFile != "" && t.KeyFile != ""
}

func (t *TLSCerts) CreateServerConfig() (*tls.Config, error) {
	if !t.Enabled() {
		return nil, nil
	}
	build := tlsconfig.Build(
		tlsconfig.WithInternalServiceDefaults(),
		tlsconfig.WithIdentityFromFile(t.CertFile, t.KeyFile),
	)
	if t.CACertFile == "" {
		return build.Server()
	}
	return build.Server(tlsconfig.WithClientAuthenticationFromFile(t.CACertFile))
}

// BasicAuth holds the credentials guarding the metrics endpoint, given
// either in cleartext or as bcrypt hashes.
type BasicAuth struct {
	Username     string `yaml:"username" json:"username"`
	UsernameHash string `yaml:"username_hash" json:"usernameHash"`
	Password     string `yaml:"password" json:"password"`
	PasswordHash string `yaml:"password_hash" json:"passwordHash"`
}

func (ba BasicAuth) Enabled() bool {
	return ba.Username != "" || ba.UsernameHash != "" || ba.Password != "" || ba.PasswordHash != ""
}
