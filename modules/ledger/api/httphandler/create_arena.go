package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	"github.com/samber/lo"
)

type createArenaRequest struct {
	HeroID string `json:"heroId"`
	Owner  string `json:"owner"`
}

func (r createArenaRequest) Validate() error {
	var errList []error
	if r.HeroID == "" {
		errList = append(errList, errors.New("'heroId' is required"))
	}
	if r.Owner == "" {
		errList = append(errList, errors.New("'owner' is required"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type createArenaResult struct {
	ID        entity.ArenaID `json:"id"`
	Owner     entity.Account `json:"owner"`
	WarriorID entity.HeroID  `json:"warriorId"`
	CreatedAt int64          `json:"createdAt"` // unix timestamp
}

type createArenaResponse = HttpResponse[createArenaResult]

func (h *HttpHandler) CreateArena(ctx *fiber.Ctx) (err error) {
	var req createArenaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	arena, err := h.usecase.CreateArena(ctx.UserContext(), entity.HeroID(req.HeroID), entity.Account(req.Owner))
	if err != nil {
		return errors.Wrap(err, "error during CreateArena")
	}

	resp := createArenaResponse{
		Result: lo.ToPtr(createArenaResult{
			ID:        arena.ID,
			Owner:     arena.Owner,
			WarriorID: arena.WarriorID,
			CreatedAt: arena.CreatedAt.Unix(),
		}),
	}
	return errors.WithStack(ctx.JSON(resp))
}
