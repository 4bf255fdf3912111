package db

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/go-sql-driver/mysql"
)

type Database struct {
	DriverName     string
	DataSourceName string
}

type MySQLConfig struct {
	config *mysql.Config
	cert   string
}

// GetConnection turns a database url into a driver name and DSN.
//
//	academy:pw@tcp(localhost:3306)/academy?tls=custom&sslrootcert=db_ca.crt
//	  -> mysql, academy:pw@tcp(localhost:3306)/academy?parseTime=true&tls=custom
//	postgres://academy:pw@localhost:5432/academy?sslmode=disable
//	  -> pgx, unchanged
func GetConnection(dbUrl string) (*Database, error) {
	database := &Database{}

	database.DriverName = detectDriver(dbUrl)

	switch database.DriverName {
	case MysqlDriverName:
		cfg, err := parseMySQLURL(dbUrl)
		if err != nil {
			return nil, err
		}

		err = registerConfig(cfg)
		if err != nil {
			return nil, err
		}
		database.DataSourceName = cfg.config.FormatDSN()
	case PostgresDriverName:
		database.DataSourceName = dbUrl
	}
	return database, nil
}

// registerConfig registers a named TLS profile with the mysql driver when
// the url asks for server verification.
func registerConfig(cfg *MySQLConfig) error {
	tlsValue := cfg.config.TLSConfig
	if _, isBool := readBool(tlsValue); isBool || tlsValue == "" {
		return nil
	}
	switch strings.ToLower(tlsValue) {
	case "skip-verify", "preferred":
		return nil
	}
	if cfg.cert == "" {
		return fmt.Errorf("sql ca file is not provided")
	}

	certBytes, err := os.ReadFile(cfg.cert)
	if err != nil {
		return err
	}
	caCertPool := x509.NewCertPool()
	if ok := caCertPool.AppendCertsFromPEM(certBytes); !ok {
		return fmt.Errorf("no certificates found in %s", cfg.cert)
	}

	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
		RootCAs:    caCertPool,
	}
	if tlsValue == "verify_identity" {
		tlsConfig.ServerName = strings.Split(cfg.config.Addr, ":")[0]
	}
	return mysql.RegisterTLSConfig(tlsValue, tlsConfig)
}

func readBool(input string) (value bool, valid bool) {
	switch input {
	case "1", "true", "TRUE", "True":
		return true, true
	case "0", "false", "FALSE", "False":
		return false, true
	}
	return
}

func detectDriver(dbUrl string) string {
	if strings.HasPrefix(dbUrl, "postgres://") || strings.HasPrefix(dbUrl, "postgresql://") {
		return PostgresDriverName
	}
	return MysqlDriverName
}

// parseMySQLURL strips the tls and sslrootcert parameters, which the mysql
// driver cannot parse before the TLS profile is registered.
func parseMySQLURL(dbUrl string) (*MySQLConfig, error) {
	var caCert, tlsValue string
	if base, rawQuery, found := strings.Cut(dbUrl, "?"); found {
		params, err := url.ParseQuery(rawQuery)
		if err != nil {
			return nil, err
		}
		caCert = params.Get("sslrootcert")
		tlsValue = params.Get("tls")
		params.Del("sslrootcert")
		params.Del("tls")
		dbUrl = base
		if len(params) > 0 {
			dbUrl = base + "?" + params.Encode()
		}
	}

	config, err := mysql.ParseDSN(dbUrl)
	if err != nil {
		return nil, err
	}
	config.ParseTime = true
	if tlsValue != "" {
		config.TLSConfig = tlsValue
	}

	return &MySQLConfig{
		config: config,
		cert:   caCert,
	}, nil
}
