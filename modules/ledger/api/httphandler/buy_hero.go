package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	"github.com/samber/lo"
)

type buyHeroRequest struct {
	Id      string `params:"id"`
	Buyer   string `json:"buyer"`
	Payment int64  `json:"payment"`
}

func (r buyHeroRequest) Validate() error {
	var errList []error
	if r.Id == "" {
		errList = append(errList, errors.New("'id' is required"))
	}
	if r.Buyer == "" {
		errList = append(errList, errors.New("'buyer' is required"))
	}
	if r.Payment <= 0 {
		errList = append(errList, errors.New("'payment' must be positive"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type buyHeroResult struct {
	ListingID entity.ListingID `json:"listingId"`
	Buyer     entity.Account   `json:"buyer"`
}

type buyHeroResponse = HttpResponse[buyHeroResult]

func (h *HttpHandler) BuyHero(ctx *fiber.Ctx) (err error) {
	var req buyHeroRequest
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
	if err := h.usecase.BuyHero(ctx.UserContext(), listingID, entity.Account(req.Buyer), req.Payment); err != nil {
		return errors.Wrap(err, "error during BuyHero")
	}

	resp := buyHeroResponse{
		Result: lo.ToPtr(buyHeroResult{
			ListingID: listingID,
			Buyer:     entity.Account(req.Buyer),
		}),
	}
	return errors.WithStack(ctx.JSON(resp))
}
