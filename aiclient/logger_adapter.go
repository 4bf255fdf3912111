package aiclient

import (
	"code.cloudfoundry.org/lager/v3"
	"github.com/hashicorp/go-retryablehttp"
)

var _ retryablehttp.LeveledLogger = &leveledLoggerAdapter{}

// leveledLoggerAdapter routes retryablehttp logging into lager.
type leveledLoggerAdapter struct{ logger lager.Logger }

func (l leveledLoggerAdapter) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, nil, toData(keysAndValues))
}

func (l leveledLoggerAdapter) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, toData(keysAndValues))
}

func (l leveledLoggerAdapter) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, toData(keysAndValues))
}

// lager has no warn level.
func (l leveledLoggerAdapter) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Info("warning-"+msg, toData(keysAndValues))
}

func toData(keysAndValues []interface{}) lager.Data {
	data := lager.Data{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			data[key] = keysAndValues[i+1]
		}
	}
	return data
}
