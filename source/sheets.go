package source

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsSource fetches table ranges from a Google Sheets spreadsheet,
// authenticated as a service account with read-only scope.
type SheetsSource struct {
	service     *sheets.Service
	spreadsheet string
}

// NewSheetsSource builds a Sheets client from a service account credential
// blob (the JSON key file issued by the Google Cloud console).
func NewSheetsSource(ctx context.Context, spreadsheet string, credentials []byte) (*SheetsSource, error) {
	config, err := google.JWTConfigFromJSON(credentials, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("invalid service account credentials (%v)", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	return &SheetsSource{
		service:     service,
		spreadsheet: spreadsheet,
	}, nil
}

// Fetch retrieves the raw rows for '<table><suffix>'. Values are rendered
// unformatted except dates and times, which come back as the human-readable
// text shown in the sheet rather than as serial numbers.
func (s *SheetsSource) Fetch(ctx context.Context, table string, suffix string) ([][]interface{}, error) {
	response, err := s.service.Spreadsheets.Values.
		Get(s.spreadsheet, table+suffix).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("FORMATTED_STRING").
		Context(ctx).
		Do()

	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet '%s%s' (%v)", table, suffix, err)
	}

	return response.Values, nil
}
