package orders_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cocooriginal_server/api/orders"
	"cocooriginal_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type stubLookup struct {
	result         *structs.OrderLookupResult
	err            error
	gotOrderNumber string
	gotEmail       string
}

func (s *stubLookup) LookupOrder(ctx context.Context, orderNumber, email string) (*structs.OrderLookupResult, error) {
	s.gotOrderNumber = orderNumber
	s.gotEmail = email
	return s.result, s.err
}

func newOrderRouter(lookup orders.OrderLookup) chi.Router {
	r := chi.NewRouter()
	orders.NewOrderRoutesManager(gecho.NewDefaultLogger(), lookup).RegisterRoutes(r)
	return r
}

func TestTrackOrder_Success(t *testing.T) {
	lookup := &stubLookup{
		result: &structs.OrderLookupResult{
			Order: structs.OrderRecord{"id": "123", "email": "a@b.com", "status": "Shipped"},
			OtherOrders: []structs.OrderRecord{
				{"id": "124", "email": "a@b.com", "status": "Pending"},
			},
		},
	}
	r := newOrderRouter(lookup)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/track-order?orderNumber=123&email=a@b.com", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "123", lookup.gotOrderNumber)
	require.Equal(t, "a@b.com", lookup.gotEmail)

	require.JSONEq(t, `{
		"order": {"id": "123", "email": "a@b.com", "status": "Shipped"},
		"other_orders": [{"id": "124", "email": "a@b.com", "status": "Pending"}]
	}`, rec.Body.String())
}

func TestTrackOrder_NoMatchMarshalsNullOrder(t *testing.T) {
	lookup := &stubLookup{
		result: &structs.OrderLookupResult{OtherOrders: []structs.OrderRecord{}},
	}
	r := newOrderRouter(lookup)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/track-order?orderNumber=999", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"order": null, "other_orders": []}`, rec.Body.String())
}

func TestTrackOrder_MissingOrderNumber(t *testing.T) {
	lookup := &stubLookup{}
	r := newOrderRouter(lookup)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/track-order", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "orderNumber parameter is required", body["error"])
	require.Empty(t, lookup.gotOrderNumber)
}

func TestTrackOrder_LookupFailure(t *testing.T) {
	lookup := &stubLookup{err: errors.New("sheets auth failed")}
	r := newOrderRouter(lookup)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/track-order?orderNumber=123", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Internal server error", body["error"])
}

func TestTrackOrder_Preflight(t *testing.T) {
	r := newOrderRouter(&stubLookup{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/track-order", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Body.String())
}
