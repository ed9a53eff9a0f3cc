package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	"github.com/samber/lo"
)

type listHeroRequest struct {
	HeroID string `json:"heroId"`
	Seller string `json:"seller"`
	Price  int64  `json:"price"`
}

func (r listHeroRequest) Validate() error {
	var errList []error
	if r.HeroID == "" {
		errList = append(errList, errors.New("'heroId' is required"))
	}
	if r.Seller == "" {
		errList = append(errList, errors.New("'seller' is required"))
	}
	if r.Price <= 0 {
		errList = append(errList, errors.New("'price' must be positive"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type listingResult struct {
	ID       entity.ListingID `json:"id"`
	HeroID   entity.HeroID    `json:"heroId"`
	Seller   entity.Account   `json:"seller"`
	Price    int64            `json:"price"`
	ListedAt int64            `json:"listedAt"` // unix timestamp
}

type listHeroResponse = HttpResponse[listingResult]

func (h *HttpHandler) ListHero(ctx *fiber.Ctx) (err error) {
	var req listHeroRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	listing, err := h.usecase.ListHero(ctx.UserContext(), entity.HeroID(req.HeroID), entity.Account(req.Seller), req.Price)
	if err != nil {
		return errors.Wrap(err, "error during ListHero")
	}

	resp := listHeroResponse{
		Result: lo.ToPtr(listingResult{
			ID:       listing.ID,
			HeroID:   listing.HeroID,
			Seller:   listing.Seller,
			Price:    listing.Price,
			ListedAt: listing.ListedAt.Unix(),
		}),
	}
	return errors.WithStack(ctx.JSON(resp))
}
