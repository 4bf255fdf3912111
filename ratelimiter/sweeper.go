package ratelimiter

import (
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"

	"github.com/ritikbusiness/career-academy-backend-sub003/healthendpoint"
)

type Sweepable interface {
	Name() string
	Sweep() int
}

// Sweeper removes ended client windows from every limiter on a fixed
// interval. It is an ifrit.Runner and stops when signalled.
type Sweeper struct {
	limiters  []Sweepable
	interval  time.Duration
	clock     clock.Clock
	collector healthendpoint.RateLimitCollector
	logger    lager.Logger
}

func NewSweeper(limiters []Sweepable, interval time.Duration, clock clock.Clock, collector healthendpoint.RateLimitCollector, logger lager.Logger) *Sweeper {
	return &Sweeper{
		limiters:  limiters,
		interval:  interval,
		clock:     clock,
		collector: collector,
		logger:    logger.Session("window-sweeper"),
	}
}

func (s *Sweeper) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ticker := s.clock.NewTicker(s.interval)
	close(ready)

	s.logger.Info("started", lager.Data{"sweep_interval": s.interval.String()})

	for {
		select {
		case <-signals:
			ticker.Stop()
			s.logger.Info("stopped")
			return nil
		case <-ticker.C():
			s.SweepAll()
		}
	}
}

func (s *Sweeper) SweepAll() {
	for _, l := range s.limiters {
		active := l.Sweep()
		if s.collector != nil {
			s.collector.SetActiveWindows(l.Name(), active)
		}
	}
}
