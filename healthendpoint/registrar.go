package healthendpoint

import (
	"errors"

	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// RegisterCollectors registers cols, plus the process and Go runtime
// collectors when includeRuntime is set. A collector that fails to register
// is logged and skipped.
func RegisterCollectors(registerer prometheus.Registerer, cols []prometheus.Collector, includeRuntime bool, logger lager.Logger) {
	if includeRuntime {
		cols = append([]prometheus.Collector{
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		}, cols...)
	}

	for _, c := range cols {
		if err := registerer.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				logger.Info("collector-already-registered")
				continue
			}
			logger.Error("failed-to-register-collector", err)
		}
	}
}
