package orders

import (
	"context"
	"net/http"

	"cocooriginal_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// OrderLookup is what the tracking endpoint needs from the order layer.
type OrderLookup interface {
	LookupOrder(ctx context.Context, orderNumber, email string) (*structs.OrderLookupResult, error)
}

type OrderRoutesManager struct {
	logger       *gecho.Logger
	orderService OrderLookup
}

func NewOrderRoutesManager(logger *gecho.Logger, orderService OrderLookup) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:       logger,
		orderService: orderService,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/track-order", orm.TrackOrder)
	r.Options("/track-order", orm.Preflight)
}

func (orm *OrderRoutesManager) Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
