package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	"github.com/samber/lo"
)

type transferAdminRequest struct {
	Holder string `json:"holder"`
	To     string `json:"to"`
}

func (r transferAdminRequest) Validate() error {
	var errList []error
	if r.Holder == "" {
		errList = append(errList, errors.New("'holder' is required"))
	}
	if r.To == "" {
		errList = append(errList, errors.New("'to' is required"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type adminResult struct {
	Holder entity.Account `json:"holder"`
}

type adminResponse = HttpResponse[adminResult]

func (h *HttpHandler) TransferAdmin(ctx *fiber.Ctx) (err error) {
	var req transferAdminRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	if err := h.usecase.TransferAdmin(ctx.UserContext(), entity.Account(req.Holder), entity.Account(req.To)); err != nil {
		return errors.Wrap(err, "error during TransferAdmin")
	}

	resp := adminResponse{
		Result: lo.ToPtr(adminResult{Holder: entity.Account(req.To)}),
	}
	return errors.WithStack(ctx.JSON(resp))
}

func (h *HttpHandler) GetAdmin(ctx *fiber.Ctx) (err error) {
	holder, err := h.usecase.GetAdminHolder(ctx.UserContext())
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("admin capability is not initialized")
		}
		return errors.Wrap(err, "error during GetAdminHolder")
	}

	resp := adminResponse{
		Result: lo.ToPtr(adminResult{Holder: holder}),
	}
	return errors.WithStack(ctx.JSON(resp))
}
