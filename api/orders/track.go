package orders

import (
	"net/http"

	"cocooriginal_server/lib"

	"github.com/MonkyMars/gecho"
)

// TrackOrder looks an order up in the tracking sheet by order number,
// optionally scoped by the customer email to also list their other orders.
func (orm *OrderRoutesManager) TrackOrder(w http.ResponseWriter, r *http.Request) {
	orderNumber := r.URL.Query().Get("orderNumber")
	email := r.URL.Query().Get("email")

	if orderNumber == "" {
		lib.WriteError(w, http.StatusBadRequest, "orderNumber parameter is required")
		return
	}

	result, err := orm.orderService.LookupOrder(r.Context(), orderNumber, email)
	if err != nil {
		// Auth failures, network failures and malformed sheets all look
		// the same to the storefront; details stay in the logs.
		orm.logger.Error("Order lookup failed",
			gecho.Field("error", err),
			gecho.Field("order_number", orderNumber),
		)
		lib.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	lib.WriteJSON(w, http.StatusOK, result)
}
