package requestcontext

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/heroarena/ledger/pkg/logger"
)

type requestIdKey struct{}

// WithRequestId copies the request id assigned by the fiber requestid
// middleware into the request context and logger attributes.
func WithRequestId() Option {
	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		if !ok || id == "" {
			return ctx, nil
		}
		ctx = context.WithValue(ctx, requestIdKey{}, id)
		ctx = logger.WithContext(ctx, "requestId", id)
		return ctx, nil
	}
}

// GetRequestId returns the request id from the context, or empty string.
func GetRequestId(ctx context.Context) string {
	id, _ := ctx.Value(requestIdKey{}).(string)
	return id
}
