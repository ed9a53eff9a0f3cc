package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	"github.com/samber/lo"
)

// listingWithHero embeds the full hero so clients can render a listing
// without a second round trip.
type listingWithHero struct {
	ID       entity.ListingID `json:"id"`
	Seller   entity.Account   `json:"seller"`
	Price    int64            `json:"price"`
	ListedAt int64            `json:"listedAt"` // unix timestamp
	Hero     hero             `json:"hero"`
}

type getListingsResult struct {
	List []listingWithHero `json:"list"`
}

type getListingsResponse = HttpResponse[getListingsResult]

func (h *HttpHandler) GetListings(ctx *fiber.Ctx) (err error) {
	listings, err := h.usecase.GetActiveListings(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during GetActiveListings")
	}

	list := make([]listingWithHero, 0, len(listings))
	for _, listing := range listings {
		listedHero, err := h.usecase.GetHero(ctx.UserContext(), listing.HeroID)
		if err != nil {
			if errors.Is(err, errs.NotFound) {
				continue
			}
			return errors.Wrap(err, "error during GetHero")
		}
		list = append(list, listingWithHero{
			ID:       listing.ID,
			Seller:   listing.Seller,
			Price:    listing.Price,
			ListedAt: listing.ListedAt.Unix(),
			Hero:     heroFromEntity(*listedHero),
		})
	}

	resp := getListingsResponse{
		Result: lo.ToPtr(getListingsResult{List: list}),
	}
	return errors.WithStack(ctx.JSON(resp))
}
