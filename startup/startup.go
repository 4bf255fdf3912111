package startup

import (
	"flag"
	"fmt"
	"os"

	"code.cloudfoundry.org/lager/v3"
	"github.com/joho/godotenv"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"

	"github.com/ritikbusiness/career-academy-backend-sub003/helpers"
)

type ConfigValidator interface {
	Validate() error
}

type ConfigWithLogging interface {
	ConfigValidator
	GetLogging() *helpers.LoggingConfig
}

type Flags struct {
	ConfigPath   string
	CreateSchema bool
}

func ParseFlags() Flags {
	var flags Flags
	flag.StringVar(&flags.ConfigPath, "c", "", "config file")
	flag.BoolVar(&flags.CreateSchema, "create-schema", false, "create the database tables before serving")
	flag.Parse()
	return flags
}

// LoadDotEnv reads .env from the working directory when it exists. Variables
// already set in the environment win.
func LoadDotEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		_, _ = fmt.Fprintf(os.Stdout, "failed to read .env : %s\n", err.Error())
	}
}

func LoadAndValidateConfig[T ConfigWithLogging](path string, loader func(path string) (T, error)) (T, error) {
	var zero T
	conf, err := loader(path)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stdout, "failed to read config file '%s' : %s\n", path, err.Error())
		return zero, err
	}

	err = conf.Validate()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stdout, "failed to validate configuration : %s\n", err.Error())
		return zero, err
	}

	return conf, nil
}

func InitLogger(loggingConfig *helpers.LoggingConfig, serviceName string) lager.Logger {
	return helpers.InitLoggerFromConfig(loggingConfig, serviceName)
}

func StartServices(logger lager.Logger, members grouper.Members) error {
	monitor := ifrit.Invoke(sigmon.New(grouper.NewOrdered(os.Interrupt, members)))
	logger.Info("started")
	err := <-monitor.Wait()
	if err != nil {
		logger.Error("exited-with-failure", err)
		return err
	}
	logger.Info("exited")
	return nil
}

func ExitOnError(err error, logger lager.Logger, message string, data ...lager.Data) {
	if err != nil {
		if len(data) > 0 {
			logger.Error(message, err, data[0])
		} else {
			logger.Error(message, err)
		}
		os.Exit(1)
	}
}

// Bootstrap loads .env and the config file named by -c, then sets up
// tracing and the logger.
func Bootstrap[T ConfigWithLogging](serviceName string, configLoader func(path string) (T, error)) (T, Flags, lager.Logger) {
	flags := ParseFlags()
	LoadDotEnv()

	conf, err := LoadAndValidateConfig(flags.ConfigPath, configLoader)
	if err != nil {
		os.Exit(1)
	}

	helpers.SetupOpenTelemetry()
	logger := InitLogger(conf.GetLogging(), serviceName)

	return conf, flags, logger
}
