package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	"github.com/samber/lo"
)

// arenaWithHero embeds the defending hero so clients can render an arena
// card without a second round trip.
type arenaWithHero struct {
	ID        entity.ArenaID `json:"id"`
	Owner     entity.Account `json:"owner"`
	CreatedAt int64          `json:"createdAt"` // unix timestamp
	Warrior   hero           `json:"warrior"`
}

type getArenasResult struct {
	List []arenaWithHero `json:"list"`
}

type getArenasResponse = HttpResponse[getArenasResult]

func (h *HttpHandler) GetArenas(ctx *fiber.Ctx) (err error) {
	arenas, err := h.usecase.GetActiveArenas(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during GetActiveArenas")
	}

	list := make([]arenaWithHero, 0, len(arenas))
	for _, arena := range arenas {
		warrior, err := h.usecase.GetHero(ctx.UserContext(), arena.WarriorID)
		if err != nil {
			if errors.Is(err, errs.NotFound) {
				continue
			}
			return errors.Wrap(err, "error during GetHero")
		}
		list = append(list, arenaWithHero{
			ID:        arena.ID,
			Owner:     arena.Owner,
			CreatedAt: arena.CreatedAt.Unix(),
			Warrior:   heroFromEntity(*warrior),
		})
	}

	resp := getArenasResponse{
		Result: lo.ToPtr(getArenasResult{List: list}),
	}
	return errors.WithStack(ctx.JSON(resp))
}
