package requestlogger

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/heroarena/ledger/pkg/logger"
)

type Config struct {
	Disable bool `env:"DISABLE" envDefault:"false" mapstructure:"disable"` // Disable logger level `INFO`
}

// New logs one line per request with method, route, status and latency.
func New(config Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Continue stack
		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()
		if err != nil {
			if e := new(fiber.Error); errors.As(err, &e) {
				status = e.Code
			} else {
				status = http.StatusInternalServerError
			}
		}

		attrs := []any{
			slog.String("event", "api_request"),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("route", c.Route().Path),
			slog.Int("status", status),
			slog.Int64("latency", latency.Milliseconds()),
			slog.String("latencyHuman", latency.String()),
			slog.String("ip", c.IP()),
		}

		ctx := c.UserContext()
		switch {
		case status >= http.StatusInternalServerError:
			logger.ErrorContext(ctx, "Incoming request", attrs...)
		case status >= http.StatusBadRequest:
			logger.WarnContext(ctx, "Incoming request", attrs...)
		case !config.Disable:
			logger.InfoContext(ctx, "Incoming request", attrs...)
		}

		return err
	}
}
