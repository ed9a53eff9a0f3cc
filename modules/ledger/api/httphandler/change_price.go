package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	"github.com/samber/lo"
)

type changePriceRequest struct {
	Id       string `params:"id"`
	Caller   string `json:"caller"`
	NewPrice int64  `json:"newPrice"`
}

func (r changePriceRequest) Validate() error {
	var errList []error
	if r.Id == "" {
		errList = append(errList, errors.New("'id' is required"))
	}
	if r.Caller == "" {
		errList = append(errList, errors.New("'caller' is required"))
	}
	if r.NewPrice <= 0 {
		errList = append(errList, errors.New("'newPrice' must be positive"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type changePriceResult struct {
	ListingID entity.ListingID `json:"listingId"`
	Price     int64            `json:"price"`
}

type changePriceResponse = HttpResponse[changePriceResult]

func (h *HttpHandler) ChangePrice(ctx *fiber.Ctx) (err error) {
	var req changePriceRequest
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
	if err := h.usecase.ChangePrice(ctx.UserContext(), listingID, req.NewPrice, entity.Account(req.Caller)); err != nil {
		return errors.Wrap(err, "error during ChangePrice")
	}

	resp := changePriceResponse{
		Result: lo.ToPtr(changePriceResult{
			ListingID: listingID,
			Price:     req.NewPrice,
		}),
	}
	return errors.WithStack(ctx.JSON(resp))
}
