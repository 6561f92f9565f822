package repo

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"landing-leads/internal/lib"
	"landing-leads/internal/lib/config"
	"landing-leads/internal/models"
)

// USER_ENTERED lets the sheet parse dates and numbers as if typed by hand.
const valueInputUserEntered = "USER_ENTERED"

// columns spans timestamp through team size.
const columns = "A:G"

// LeadRepo appends lead rows to one worksheet.
type LeadRepo struct {
	svc           *sheets.Service
	spreadsheetID string
	writeRange    string
	timeout       time.Duration
}

// NewLeadRepo builds a Sheets client authenticated as the configured service account,
// scoped to spreadsheet access only. Options are applied after the credentials
// and may replace them.
func NewLeadRepo(ctx context.Context, cfg config.Sheets, opts ...option.ClientOption) (*LeadRepo, error) {
	const op = "lead_repo.New"

	creds := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	opts = append([]option.ClientOption{option.WithHTTPClient(creds.Client(ctx))}, opts...)

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	sheetName := cfg.SheetName
	if sheetName == "" {
		sheetName = "Sheet1"
	}

	return &LeadRepo{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		writeRange:    fmt.Sprintf("%s!%s", sheetName, columns),
		timeout:       cfg.AppendTimeout,
	}, nil
}

// AppendRow appends row after the last non-empty row of the worksheet.
// Token acquisition happens lazily inside the call, so authentication
// failures surface here too.
func (r *LeadRepo) AppendRow(ctx context.Context, row models.Row) error {
	const op = "lead_repo.AppendRow"

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	vr := &sheets.ValueRange{
		Values: [][]interface{}{row.Values()},
	}

	_, err := r.svc.Spreadsheets.Values.
		Append(r.spreadsheetID, r.writeRange, vr).
		ValueInputOption(valueInputUserEntered).
		Context(ctx).
		Do()
	if err != nil {
		return lib.Err(op, formatErr(err))
	}

	return nil
}
