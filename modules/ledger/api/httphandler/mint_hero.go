package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	"github.com/samber/lo"
)

type mintHeroRequest struct {
	Owner    string `json:"owner"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Power    int64  `json:"power"`
}

func (r mintHeroRequest) Validate() error {
	var errList []error
	if r.Owner == "" {
		errList = append(errList, errors.New("'owner' is required"))
	}
	if r.Name == "" {
		errList = append(errList, errors.New("'name' is required"))
	}
	if r.ImageURL == "" {
		errList = append(errList, errors.New("'imageUrl' is required"))
	}
	if r.Power <= 0 {
		errList = append(errList, errors.New("'power' must be positive"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type mintHeroResponse = HttpResponse[hero]

func (h *HttpHandler) MintHero(ctx *fiber.Ctx) (err error) {
	var req mintHeroRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	minted, err := h.usecase.MintHero(ctx.UserContext(), entity.Account(req.Owner), req.Name, req.ImageURL, req.Power)
	if err != nil {
		return errors.Wrap(err, "error during MintHero")
	}

	resp := mintHeroResponse{
		Result: lo.ToPtr(heroFromEntity(*minted)),
	}
	return errors.WithStack(ctx.JSON(resp))
}
