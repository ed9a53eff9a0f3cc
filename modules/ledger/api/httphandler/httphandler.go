package httphandler

import (
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	"github.com/heroarena/ledger/modules/ledger/usecase"
)

type HttpHandler struct {
	usecase *usecase.Usecase
}

func New(usecase *usecase.Usecase) *HttpHandler {
	return &HttpHandler{
		usecase: usecase,
	}
}

type HttpResponse[T any] struct {
	Error  *string `json:"error"`
	Result *T      `json:"result,omitempty"`
}

// hero is the wire shape shared by all hero-bearing responses.
type hero struct {
	ID        entity.HeroID  `json:"id"`
	Name      string         `json:"name"`
	ImageURL  string         `json:"imageUrl"`
	Power     int64          `json:"power"`
	Owner     entity.Account `json:"owner"`
	CreatedAt int64          `json:"createdAt"` // unix timestamp
}

func heroFromEntity(h entity.Hero) hero {
	return hero{
		ID:        h.ID,
		Name:      h.Name,
		ImageURL:  h.ImageURL,
		Power:     h.Power,
		Owner:     h.Owner,
		CreatedAt: h.CreatedAt.Unix(),
	}
}
