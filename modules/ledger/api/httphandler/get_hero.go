package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	"github.com/samber/lo"
)

type getHeroRequest struct {
	Id string `params:"id"`
}

func (r getHeroRequest) Validate() error {
	if r.Id == "" {
		return errs.WithPublicMessage(errors.New("'id' is required"), "validation error")
	}
	return nil
}

type getHeroResponse = HttpResponse[hero]

func (h *HttpHandler) GetHero(ctx *fiber.Ctx) (err error) {
	var req getHeroRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	found, err := h.usecase.GetHero(ctx.UserContext(), entity.HeroID(req.Id))
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errors.Wrapf(errs.NotFound, "hero %q", req.Id)
		}
		return errors.Wrap(err, "error during GetHero")
	}

	resp := getHeroResponse{
		Result: lo.ToPtr(heroFromEntity(*found)),
	}
	return errors.WithStack(ctx.JSON(resp))
}
