package customers

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{customer_id}", h.Show)
	r.Put("/{customer_id}", h.Update)
	r.Delete("/{customer_id}", h.Delete)
}
