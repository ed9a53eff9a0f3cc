package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	"github.com/samber/lo"
)

type transferHeroRequest struct {
	HeroID string `json:"heroId"`
	From   string `json:"from"`
	To     string `json:"to"`
}

func (r transferHeroRequest) Validate() error {
	var errList []error
	if r.HeroID == "" {
		errList = append(errList, errors.New("'heroId' is required"))
	}
	if r.From == "" {
		errList = append(errList, errors.New("'from' is required"))
	}
	if r.To == "" {
		errList = append(errList, errors.New("'to' is required"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type transferHeroResult struct {
	HeroID entity.HeroID  `json:"heroId"`
	Owner  entity.Account `json:"owner"`
}

type transferHeroResponse = HttpResponse[transferHeroResult]

func (h *HttpHandler) TransferHero(ctx *fiber.Ctx) (err error) {
	var req transferHeroRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	heroID := entity.HeroID(req.HeroID)
	if err := h.usecase.TransferHero(ctx.UserContext(), heroID, entity.Account(req.From), entity.Account(req.To)); err != nil {
		return errors.Wrap(err, "error during TransferHero")
	}

	resp := transferHeroResponse{
		Result: lo.ToPtr(transferHeroResult{
			HeroID: heroID,
			Owner:  entity.Account(req.To),
		}),
	}
	return errors.WithStack(ctx.JSON(resp))
}
