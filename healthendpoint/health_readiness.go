package healthendpoint

import (
	"net/http"

	"github.com/ritikbusiness/career-academy-backend-sub003/helpers/handlers"
)

type (
	Pinger interface {
		Ping() error
	}

	ReadinessCheck struct {
		Name   string `json:"name"`
		Type   string `json:"type"`
		Status string `json:"status"`
	}
	readinessResponse struct {
		OverallStatus string           `json:"overall_status"`
		Checks        []ReadinessCheck `json:"checks"`
	}
	Checker func() ReadinessCheck
)

const (
	statusUp   = "UP"
	statusDown = "DOWN"
)

// readiness answers 503 when any check is down.
func readiness(checkers []Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := make([]ReadinessCheck, 0, len(checkers))
		overallStatus := statusUp
		for _, checker := range checkers {
			check := checker()
			checks = append(checks, check)
			if check.Status == statusDown {
				overallStatus = statusDown
			}
		}

		status := http.StatusOK
		if overallStatus == statusDown {
			status = http.StatusServiceUnavailable
		}
		handlers.WriteJSONResponse(w, status, readinessResponse{OverallStatus: overallStatus, Checks: checks})
	}
}

func DbChecker(dbName string, pinger Pinger) Checker {
	return func() ReadinessCheck {
		status := statusUp
		if pinger != nil && pinger.Ping() != nil {
			status = statusDown
		}
		return ReadinessCheck{Name: dbName, Type: "database", Status: status}
	}
}
