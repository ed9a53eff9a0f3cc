package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	"github.com/samber/lo"
)

type getHeroesRequest struct {
	Owner string `query:"owner"`
}

func (r getHeroesRequest) Validate() error {
	if r.Owner == "" {
		return errs.WithPublicMessage(errors.New("'owner' is required"), "validation error")
	}
	return nil
}

type getHeroesResult struct {
	List []hero `json:"list"`
}

type getHeroesResponse = HttpResponse[getHeroesResult]

func (h *HttpHandler) GetHeroes(ctx *fiber.Ctx) (err error) {
	var req getHeroesRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	heroes, err := h.usecase.GetHeroesByOwner(ctx.UserContext(), entity.Account(req.Owner))
	if err != nil {
		return errors.Wrap(err, "error during GetHeroesByOwner")
	}

	resp := getHeroesResponse{
		Result: lo.ToPtr(getHeroesResult{
			List: lo.Map(heroes, func(h entity.Hero, _ int) hero { return heroFromEntity(h) }),
		}),
	}
	return errors.WithStack(ctx.JSON(resp))
}
