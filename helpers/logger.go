package helpers

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"code.cloudfoundry.org/lager/v3"
)

type LoggingConfig struct {
	Level         string `yaml:"level" json:"level"`
	PlainTextSink bool   `yaml:"plaintext_sink" json:"plaintext_sink"`
}

// Keys matching these patterns have their values replaced before a log line
// is written. Session tokens and AI provider keys are covered here.
var redactedKeyPatterns = []string{"[Pp]wd", "[Pp]ass", "[Ss]ecret", "[Tt]oken", "[Aa]pi_?[Kk]ey", "[Aa]uthorization"}

var logLevels = map[string]lager.LogLevel{
	"debug": lager.DEBUG,
	"info":  lager.INFO,
	"error": lager.ERROR,
	"fatal": lager.FATAL,
}

func InitLoggerFromConfig(conf *LoggingConfig, name string) lager.Logger {
	logger, err := NewLogger(conf, name, os.Stdout)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to initialize logger: %s\n", err.Error())
		os.Exit(1)
	}
	return logger
}

// NewLogger builds a logger writing to w: redacted JSON by default, or
// human-readable text when the plaintext sink is configured.
func NewLogger(conf *LoggingConfig, name string, w io.Writer) (lager.Logger, error) {
	logLevel, ok := logLevels[strings.ToLower(conf.Level)]
	if !ok {
		return nil, fmt.Errorf("unsupported log level: %s", conf.Level)
	}

	logger := lager.NewLogger(name)
	if conf.PlainTextSink {
		handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel(logLevel)})
		logger.RegisterSink(lager.NewSlogSink(slog.New(handler)))
		return logger, nil
	}

	sink, err := NewRedactingWriterSink(w, logLevel, redactedKeyPatterns, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redacted sink: %w", err)
	}
	logger.RegisterSink(sink)
	return logger, nil
}

func slogLevel(l lager.LogLevel) slog.Level {
	switch l {
	case lager.DEBUG:
		return slog.LevelDebug
	case lager.ERROR, lager.FATAL:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
