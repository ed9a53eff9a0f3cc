package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	"github.com/samber/lo"
)

type battleRequest struct {
	Id         string `params:"id"`
	HeroID     string `json:"heroId"`
	Challenger string `json:"challenger"`
}

func (r battleRequest) Validate() error {
	var errList []error
	if r.Id == "" {
		errList = append(errList, errors.New("'id' is required"))
	}
	if r.HeroID == "" {
		errList = append(errList, errors.New("'heroId' is required"))
	}
	if r.Challenger == "" {
		errList = append(errList, errors.New("'challenger' is required"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type battleResult struct {
	ArenaID      entity.ArenaID `json:"arenaId"`
	WinnerHeroID entity.HeroID  `json:"winnerHeroId"`
	LoserHeroID  entity.HeroID  `json:"loserHeroId"`
	Winner       entity.Account `json:"winner"`
}

type battleResponse = HttpResponse[battleResult]

func (h *HttpHandler) Battle(ctx *fiber.Ctx) (err error) {
	var req battleRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.BodyParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	outcome, err := h.usecase.Battle(ctx.UserContext(), entity.ArenaID(req.Id), entity.HeroID(req.HeroID), entity.Account(req.Challenger))
	if err != nil {
		return errors.Wrap(err, "error during Battle")
	}

	resp := battleResponse{
		Result: lo.ToPtr(battleResult{
			ArenaID:      outcome.ArenaID,
			WinnerHeroID: outcome.WinnerHeroID,
			LoserHeroID:  outcome.LoserHeroID,
			Winner:       outcome.Winner,
		}),
	}
	return errors.WithStack(ctx.JSON(resp))
}
