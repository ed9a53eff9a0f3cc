package errorhandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/pkg/logger"
	"github.com/heroarena/ledger/pkg/logger/slogx"
)

// statusFromKind maps ledger error kinds to HTTP status codes so that clients
// can branch on cause.
func statusFromKind(err error) (int, bool) {
	switch {
	case errors.Is(err, errs.InvalidInput):
		return http.StatusBadRequest, true
	case errors.Is(err, errs.NotFound):
		return http.StatusNotFound, true
	case errors.Is(err, errs.NotOwner), errors.Is(err, errs.Unauthorized):
		return http.StatusForbidden, true
	case errors.Is(err, errs.AlreadyEscrowed), errors.Is(err, errs.Escrowed):
		return http.StatusConflict, true
	case errors.Is(err, errs.InsufficientPayment):
		return http.StatusPaymentRequired, true
	case errors.Is(err, errs.SelfChallenge):
		return http.StatusUnprocessableEntity, true
	}
	return 0, false
}

func kindOf(err error) string {
	var kind errs.ErrorKind
	if errors.As(err, &kind) {
		return string(kind)
	}
	return ""
}

func NewHTTPErrorHandler() func(ctx *fiber.Ctx, err error) error {
	return func(ctx *fiber.Ctx, err error) error {
		if status, ok := statusFromKind(err); ok {
			return errors.WithStack(ctx.Status(status).JSON(map[string]any{
				"error": err.Error(),
				"kind":  kindOf(err),
			}))
		}
		if e := new(errs.PublicError); errors.As(err, &e) {
			return errors.WithStack(ctx.Status(http.StatusBadRequest).JSON(map[string]any{
				"error": e.Message(),
			}))
		}
		if e := new(fiber.Error); errors.As(err, &e) {
			return errors.WithStack(ctx.Status(e.Code).SendString(e.Error()))
		}

		logger.ErrorContext(ctx.UserContext(), "Something went wrong, unhandled api error",
			slogx.String("event", "api_unhandled_error"),
			slogx.Error(err),
		)

		return errors.WithStack(ctx.Status(http.StatusInternalServerError).JSON(map[string]any{
			"error": "Internal Server Error",
		}))
	}
}
