package signup

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers signup routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/api/1.0/users", h.create)
}
