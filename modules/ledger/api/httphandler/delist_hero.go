package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	"github.com/samber/lo"
)

type delistHeroRequest struct {
	Id     string `params:"id"`
	Caller string `json:"caller"`
}

func (r delistHeroRequest) Validate() error {
	var errList []error
	if r.Id == "" {
		errList = append(errList, errors.New("'id' is required"))
	}
	if r.Caller == "" {
		errList = append(errList, errors.New("'caller' is required"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type delistHeroResult struct {
	ListingID entity.ListingID `json:"listingId"`
}

type delistHeroResponse = HttpResponse[delistHeroResult]

func (h *HttpHandler) DelistHero(ctx *fiber.Ctx) (err error) {
	var req delistHeroRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.BodyParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	listingID := entity.ListingID(req.Id)
	if err := h.usecase.DelistHero(ctx.UserContext(), listingID, entity.Account(req.Caller)); err != nil {
		return errors.Wrap(err, "error during DelistHero")
	}

	resp := delistHeroResponse{
		Result: lo.ToPtr(delistHeroResult{ListingID: listingID}),
	}
	return errors.WithStack(ctx.JSON(resp))
}
