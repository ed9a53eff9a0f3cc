package requestcontext

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/heroarena/ledger/pkg/logger"
	"github.com/heroarena/ledger/pkg/logger/slogx"
)

type Response struct {
	Result any    `json:"result"`
	Error  string `json:"error,omitempty"`
}

// Option extracts a value from the request into the request context.
type Option func(ctx context.Context, c *fiber.Ctx) (context.Context, error)

func New(opts ...Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var err error
		ctx := c.UserContext()
		for i, opt := range opts {
			ctx, err = opt(ctx, c)
			if err != nil {
				logger.ErrorContext(ctx, "failed to extract request context",
					slogx.Error(err),
					slogx.String("module", "requestcontext"),
					slogx.Int("optionIndex", i),
				)
				return errors.WithStack(c.Status(http.StatusInternalServerError).JSON(Response{Error: "internal server error"}))
			}
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}
