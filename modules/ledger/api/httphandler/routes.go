package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/v1")

	r.Post("/heroes", h.MintHero)
	r.Post("/heroes/transfer", h.TransferHero)
	r.Get("/heroes/:id", h.GetHero)
	r.Get("/heroes", h.GetHeroes)

	r.Post("/listings", h.ListHero)
	r.Post("/listings/:id/buy", h.BuyHero)
	r.Post("/listings/:id/delist", h.DelistHero)
	r.Post("/listings/:id/price", h.ChangePrice)
	r.Get("/listings", h.GetListings)

	r.Post("/arenas", h.CreateArena)
	r.Post("/arenas/:id/battle", h.Battle)
	r.Get("/arenas", h.GetArenas)

	r.Post("/admin/transfer", h.TransferAdmin)
	r.Get("/admin", h.GetAdmin)

	r.Post("/accounts/:address/deposit", h.Deposit)
	r.Get("/accounts/:address/balance", h.GetBalance)

	r.Get("/events", h.GetEvents)
	return nil
}
