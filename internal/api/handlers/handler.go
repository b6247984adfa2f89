// Package handlers translates HTTP requests into store and pricing
// calls. Every handler reports failures as a success-flag payload; none
// of them retries or partially applies an operation.
package handlers

import (
	"github.com/rohits-web03/plotwise/internal/repositories"
)

// Handler carries the store handle shared by every route.
type Handler struct {
	store *repositories.Store
}

func New(store *repositories.Store) *Handler {
	return &Handler{store: store}
}
