package httphandler

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/datagateway"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	"github.com/samber/lo"
)

type getEventsRequest struct {
	Kind  string `query:"kind"`
	From  int64  `query:"from"`
	To    int64  `query:"to"`
	Limit int32  `query:"limit"`
}

func (r getEventsRequest) Validate() error {
	var errList []error
	if r.From < 0 {
		errList = append(errList, errors.New("'from' must be a unix timestamp"))
	}
	if r.To < 0 {
		errList = append(errList, errors.New("'to' must be a unix timestamp"))
	}
	if r.Limit < 0 {
		errList = append(errList, errors.New("'limit' must not be negative"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type event struct {
	Sequence     int64            `json:"sequence"`
	Kind         string           `json:"kind"`
	Timestamp    int64            `json:"timestamp"`
	HeroID       entity.HeroID    `json:"heroId,omitempty"`
	ListingID    entity.ListingID `json:"listingId,omitempty"`
	ArenaID      entity.ArenaID   `json:"arenaId,omitempty"`
	Actor        entity.Account   `json:"actor,omitempty"`
	Counterparty entity.Account   `json:"counterparty,omitempty"`
	Price        int64            `json:"price,omitempty"`
	WinnerHeroID entity.HeroID    `json:"winnerHeroId,omitempty"`
	LoserHeroID  entity.HeroID    `json:"loserHeroId,omitempty"`
}

type getEventsResult struct {
	Events []event `json:"events"`
}

type getEventsResponse = HttpResponse[getEventsResult]

func (h *HttpHandler) GetEvents(ctx *fiber.Ctx) (err error) {
	var req getEventsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid query parameters")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	params := datagateway.GetEventsParams{
		Kind:  entity.EventKind(req.Kind),
		Limit: req.Limit,
	}
	if req.From > 0 {
		params.From = time.Unix(req.From, 0)
	}
	if req.To > 0 {
		params.To = time.Unix(req.To, 0)
	}

	events, err := h.usecase.GetEvents(ctx.UserContext(), params)
	if err != nil {
		return errors.Wrap(err, "error during GetEvents")
	}

	resp := getEventsResponse{
		Result: lo.ToPtr(getEventsResult{
			Events: lo.Map(events, func(e entity.Event, _ int) event {
				return event{
					Sequence:     e.Sequence,
					Kind:         string(e.Kind),
					Timestamp:    e.Timestamp.Unix(),
					HeroID:       e.HeroID,
					ListingID:    e.ListingID,
					ArenaID:      e.ArenaID,
					Actor:        e.Actor,
					Counterparty: e.Counterparty,
					Price:        e.Price,
					WinnerHeroID: e.WinnerHeroID,
					LoserHeroID:  e.LoserHeroID,
				}
			}),
		}),
	}
	return errors.WithStack(ctx.JSON(resp))
}
