package handler

import (
	"net/http"

	"deposit-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type dependencyHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type healthReport struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyHealth `json:"dependencies"`
}

// HealthCheck handles GET /health. Dependencies are pinged in parallel so
// one slow backend does not hide the others; any failure turns the report
// "degraded" with a 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		report := healthReport{
			Status:       "healthy",
			Dependencies: make(map[string]dependencyHealth, len(checkers)),
		}

		results := make([]dependencyHealth, len(checkers))
		var g errgroup.Group
		for i, hc := range checkers {
			g.Go(func() error {
				results[i] = dependencyHealth{Status: "healthy"}
				if err := hc.Ping(c.Request.Context()); err != nil {
					results[i] = dependencyHealth{Status: "unhealthy", Error: err.Error()}
				}
				return nil
			})
		}
		_ = g.Wait()

		for i, hc := range checkers {
			report.Dependencies[hc.Name()] = results[i]
			if results[i].Error != "" {
				report.Status = "degraded"
			}
		}

		code := http.StatusOK
		if report.Status != "healthy" {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, report)
	}
}
