package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	"github.com/samber/lo"
)

type depositRequest struct {
	Address string `params:"address"`
	Amount  int64  `json:"amount"`
}

func (r depositRequest) Validate() error {
	var errList []error
	if r.Address == "" {
		errList = append(errList, errors.New("'address' is required"))
	}
	if r.Amount <= 0 {
		errList = append(errList, errors.New("'amount' must be positive"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type balanceResult struct {
	Address entity.Account `json:"address"`
	Balance int64          `json:"balance"`
}

type balanceResponse = HttpResponse[balanceResult]

func (h *HttpHandler) Deposit(ctx *fiber.Ctx) (err error) {
	var req depositRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid path parameters")
	}
	if err := ctx.BodyParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	balance, err := h.usecase.Deposit(ctx.UserContext(), entity.Account(req.Address), req.Amount)
	if err != nil {
		return errors.Wrap(err, "error during Deposit")
	}

	resp := balanceResponse{
		Result: lo.ToPtr(balanceResult{Address: entity.Account(req.Address), Balance: balance}),
	}
	return errors.WithStack(ctx.JSON(resp))
}

type getBalanceRequest struct {
	Address string `params:"address"`
}

func (r getBalanceRequest) Validate() error {
	var errList []error
	if r.Address == "" {
		errList = append(errList, errors.New("'address' is required"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

func (h *HttpHandler) GetBalance(ctx *fiber.Ctx) (err error) {
	var req getBalanceRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid path parameters")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	balance, err := h.usecase.GetBalance(ctx.UserContext(), entity.Account(req.Address))
	if err != nil {
		return errors.Wrap(err, "error during GetBalance")
	}

	resp := balanceResponse{
		Result: lo.ToPtr(balanceResult{Address: entity.Account(req.Address), Balance: balance}),
	}
	return errors.WithStack(ctx.JSON(resp))
}
