package services

import (
	"context"
	"slices"

	"cocooriginal_server/lib"
	"cocooriginal_server/structs"

	"github.com/MonkyMars/gecho"
)

// Column headers the tracking sheet must carry. The sheet is maintained by
// hand, so a missing header is a hard error rather than a silent miss.
const (
	orderNumberHeader = "ID"
	emailHeader       = "Email"
)

type OrderService struct {
	logger *gecho.Logger
	rows   RowFetcher
}

func NewOrderService(logger *gecho.Logger, rows RowFetcher) *OrderService {
	return &OrderService{
		logger: logger,
		rows:   rows,
	}
}

// LookupOrder finds the first row whose ID cell equals orderNumber. When
// the customer email is supplied it also collects that customer's other
// orders (same email, different order number); without it OtherOrders
// stays empty.
func (osv *OrderService) LookupOrder(ctx context.Context, orderNumber, email string) (*structs.OrderLookupResult, error) {
	values, err := osv.rows.FetchRows(ctx)
	if err != nil {
		return nil, err
	}

	result := &structs.OrderLookupResult{
		OtherOrders: []structs.OrderRecord{},
	}
	if len(values) == 0 {
		return result, nil
	}

	headers := values[0]
	idIdx := slices.Index(headers, orderNumberHeader)
	if idIdx < 0 {
		return nil, lib.ErrMissingIDColumn
	}
	emailIdx := slices.Index(headers, emailHeader)
	if emailIdx < 0 {
		return nil, lib.ErrMissingEmailColumn
	}

	for _, row := range values[1:] {
		matchesOrder := cellAt(row, idIdx) == orderNumber
		if matchesOrder && result.Order == nil {
			result.Order = buildRecord(headers, row)
		}
		if email != "" && !matchesOrder && cellAt(row, emailIdx) == email {
			result.OtherOrders = append(result.OtherOrders, buildRecord(headers, row))
		}
	}

	osv.logger.Debug("Order lookup completed",
		gecho.Field("order_number", orderNumber),
		gecho.Field("found", result.Order != nil),
		gecho.Field("other_orders", len(result.OtherOrders)),
	)
	return result, nil
}

// buildRecord pairs the header row with one data row positionally. Rows
// short a cell yield empty strings for the trailing columns.
func buildRecord(headers, row []string) structs.OrderRecord {
	record := make(structs.OrderRecord, len(headers))
	for i, header := range headers {
		record[lib.Slugify(header)] = cellAt(row, i)
	}
	return record
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
