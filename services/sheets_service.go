package services

import (
	"context"
	"fmt"

	"cocooriginal_server/structs"

	"github.com/MonkyMars/gecho"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// RowFetcher is the slice of the spreadsheet API the order service needs.
type RowFetcher interface {
	FetchRows(ctx context.Context) ([][]string, error)
}

type SheetsService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	auth   *jwt.Config
}

func NewSheetsService(logger *gecho.Logger, cfg *structs.Config) *SheetsService {
	return &SheetsService{
		logger: logger,
		cfg:    cfg,
		auth: &jwt.Config{
			Email:      cfg.Sheets.ServiceAccountEmail,
			PrivateKey: []byte(cfg.Sheets.PrivateKey),
			Scopes:     []string{sheets.SpreadsheetsScope},
			TokenURL:   google.JWTTokenURL,
		},
	}
}

// FetchRows reads the configured range of the order tracking spreadsheet
// and flattens it into rows of strings. Row 0 is the header row.
func (ss *SheetsService) FetchRows(ctx context.Context) ([][]string, error) {
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(ss.auth.Client(ctx)))
	if err != nil {
		ss.logger.Error("Failed to create sheets client", gecho.Field("error", err))
		return nil, fmt.Errorf("create sheets client: %w", err)
	}

	resp, err := svc.Spreadsheets.Values.
		Get(ss.cfg.Sheets.SpreadsheetID, ss.cfg.Sheets.ReadRange).
		Context(ctx).
		Do()
	if err != nil {
		ss.logger.Error("Failed to fetch spreadsheet values",
			gecho.Field("error", err),
			gecho.Field("spreadsheet_id", ss.cfg.Sheets.SpreadsheetID),
		)
		return nil, err
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = cellString(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// cellString normalizes the API's interface{} cells. Values come back as
// strings for a plain-text sheet; anything else is formatted.
func cellString(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
