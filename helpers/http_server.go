package helpers

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/http_server"

	"github.com/ritikbusiness/career-academy-backend-sub003/models"
)

// EnvTestRun binds listeners to localhost only.
const EnvTestRun = "CAREER_ACADEMY_TEST_RUN"

type ServerConfig struct {
	Port int             `yaml:"port" json:"port"`
	TLS  models.TLSCerts `yaml:"tls" json:"tls"`
}

func (c ServerConfig) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d is out of range", ErrConfiguration, c.Port)
	}
	if (c.TLS.CertFile == "") != (c.TLS.KeyFile == "") {
		return fmt.Errorf("%w: tls needs both cert_file and key_file", ErrConfiguration)
	}
	return nil
}

func (c ServerConfig) Addr() string {
	host := "0.0.0.0"
	if os.Getenv(EnvTestRun) == "true" {
		host = "localhost"
	}
	return net.JoinHostPort(host, strconv.Itoa(c.Port))
}

func NewHTTPServer(logger lager.Logger, conf ServerConfig, handler http.Handler) (ifrit.Runner, error) {
	addr := conf.Addr()
	logger.Info("new-http-server", lager.Data{"addr": addr, "tls": conf.TLS.Enabled()})

	if !conf.TLS.Enabled() {
		return http_server.New(addr, handler), nil
	}

	tlsConfig, err := conf.TLS.CreateServerConfig()
	if err != nil {
		logger.Error("failed-new-server-new-tls-config", err, lager.Data{"tls": conf.TLS})
		return nil, fmt.Errorf("server tls config error: %w", err)
	}
	return http_server.NewTLSServer(addr, handler, tlsConfig), nil
}
