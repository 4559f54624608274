package structs

// OrderRecord maps slugified sheet headers to one row's cells. It is
// rebuilt from the live sheet on every lookup, never stored.
type OrderRecord map[string]string

// OrderLookupResult is the wire shape /track-order returns. A nil Order
// marshals to null, which is what the storefront checks for.
type OrderLookupResult struct {
	Order       OrderRecord   `json:"order"`
	OtherOrders []OrderRecord `json:"other_orders"`
}
