package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Collection names, matching the worksheet titles in the spreadsheet.
const (
	CollectionMembers    = "members"
	CollectionVisitors   = "visitors"
	CollectionAttendance = "attendance"
)

// The first spreadsheet row holds column headers; data starts at row 2.
const headerRows = 1

var (
	// ErrStoreUnavailable wraps any transport, auth, or quota failure
	// talking to the spreadsheet API.
	ErrStoreUnavailable = errors.New("row store unavailable")

	// ErrPositionInvalid reports a positional mutation whose target row
	// no longer exists, typically after a concurrent delete.
	ErrPositionInvalid = errors.New("row position no longer valid")
)

// Row is a decoded sheet row, column header to cell value. Column order
// is defined by the per-collection schema, not by the map.
type Row = map[string]string

// schemas declares the fixed column layout of each collection. Values
// written to the store are always encoded in this order.
var schemas = map[string][]string{
	CollectionMembers:    {"id", "name", "surname", "address", "phone", "registered_at"},
	CollectionVisitors:   {"id", "name", "origin", "registered_at"},
	CollectionAttendance: {"type", "person_id", "person_name", "date", "present", "id", "created_at"},
}

// Store abstracts the spreadsheet row store: named collections of rows
// addressed by 1-based position. The store has no per-record update
// primitive, so positions must be re-resolved through FindByID
// immediately before every positional mutation.
type Store interface {
	// ReadAll fetches and decodes every row of a collection.
	ReadAll(ctx context.Context, name string) ([]Row, error)

	// FindByID scans for the first row whose id column equals id and
	// returns it with its 1-based sheet position. Absence is reported as
	// (nil, 0, nil), not an error.
	FindByID(ctx context.Context, name, id string) (Row, int, error)

	// Append adds one row, padding values to the header length.
	Append(ctx context.Context, name string, values []string) error

	// UpdateAt overwrites the full row at position.
	UpdateAt(ctx context.Context, name string, position int, values []string) error

	// DeleteAt removes the row at position. Rows below shift up by one,
	// so previously captured positions must not be reused afterwards.
	DeleteAt(ctx context.Context, name string, position int) error
}

// Client implements Store against the Google Sheets API using a service
// account. One spreadsheet holds all collections, one worksheet each.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	sheetIDs      map[string]int64
	timeout       time.Duration
}

// NewClient authenticates with the service account credentials file and
// resolves the numeric sheet ids of all worksheets up front (they are
// stable, unlike row positions).
func NewClient(ctx context.Context, credentialsFile, spreadsheetID string, timeout time.Duration) (*Client, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	conf, err := google.JWTConfigFromJSON(data,
		sheetsapi.SpreadsheetsScope,
		sheetsapi.DriveScope,
	)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}

	svc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	c := &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetIDs:      make(map[string]int64),
		timeout:       timeout,
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	meta, err := c.svc.Spreadsheets.Get(spreadsheetID).Context(callCtx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: open spreadsheet: %v", ErrStoreUnavailable, err)
	}
	for _, sheet := range meta.Sheets {
		if sheet.Properties != nil {
			c.sheetIDs[sheet.Properties.Title] = sheet.Properties.SheetId
		}
	}

	return c, nil
}

// ReadAll implements Store.
func (c *Client) ReadAll(ctx context.Context, name string) ([]Row, error) {
	values, err := c.fetchValues(ctx, name)
	if err != nil {
		return nil, err
	}
	return decodeValues(name, values)
}

// FindByID implements Store.
func (c *Client) FindByID(ctx context.Context, name, id string) (Row, int, error) {
	rows, err := c.ReadAll(ctx, name)
	if err != nil {
		return nil, 0, err
	}
	for i, row := range rows {
		if row["id"] == id {
			return row, i + headerRows + 1, nil
		}
	}
	return nil, 0, nil
}

// Append implements Store.
func (c *Client) Append(ctx context.Context, name string, values []string) error {
	schema, ok := schemas[name]
	if !ok {
		return fmt.Errorf("%w: unknown collection %q", ErrStoreUnavailable, name)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	vr := &sheetsapi.ValueRange{Values: [][]interface{}{toCells(padValues(values, len(schema)))}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, name, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(callCtx).Do()
	if err != nil {
		return fmt.Errorf("%w: append to %s: %v", ErrStoreUnavailable, name, err)
	}
	return nil
}

// UpdateAt implements Store.
func (c *Client) UpdateAt(ctx context.Context, name string, position int, values []string) error {
	current, err := c.fetchValues(ctx, name)
	if err != nil {
		return err
	}
	if position <= headerRows || position > len(current) {
		return fmt.Errorf("%w: %s row %d", ErrPositionInvalid, name, position)
	}

	padded := padValues(values, len(current[0]))

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cellRange := fmt.Sprintf("%s!A%d:%s%d", name, position, columnLetter(len(padded)), position)
	vr := &sheetsapi.ValueRange{Values: [][]interface{}{toCells(padded)}}
	_, err = c.svc.Spreadsheets.Values.Update(c.spreadsheetID, cellRange, vr).
		ValueInputOption("USER_ENTERED").
		Context(callCtx).Do()
	if err != nil {
		return fmt.Errorf("%w: update %s row %d: %v", ErrStoreUnavailable, name, position, err)
	}
	return nil
}

// DeleteAt implements Store.
func (c *Client) DeleteAt(ctx context.Context, name string, position int) error {
	if position <= headerRows {
		return fmt.Errorf("%w: %s row %d", ErrPositionInvalid, name, position)
	}
	sheetID, ok := c.sheetIDs[name]
	if !ok {
		return fmt.Errorf("%w: unknown collection %q", ErrStoreUnavailable, name)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			DeleteDimension: &sheetsapi.DeleteDimensionRequest{
				Range: &sheetsapi.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(position - 1),
					EndIndex:   int64(position),
				},
			},
		}},
	}
	_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(callCtx).Do()
	if err != nil {
		return fmt.Errorf("%w: delete %s row %d: %v", ErrStoreUnavailable, name, position, err)
	}
	return nil
}

func (c *Client) fetchValues(ctx context.Context, name string) ([][]interface{}, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, name).Context(callCtx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStoreUnavailable, name, err)
	}
	return resp.Values, nil
}

// decodeValues turns a raw value grid into rows keyed by the header row.
// Columns with an empty header are dropped; stray spreadsheet columns
// show up that way.
func decodeValues(name string, values [][]interface{}) ([]Row, error) {
	if len(values) < headerRows {
		return nil, fmt.Errorf("%w: %s has no header row", ErrStoreUnavailable, name)
	}

	headers := make([]string, len(values[0]))
	for i, cell := range values[0] {
		headers[i] = fmt.Sprint(cell)
	}

	rows := make([]Row, 0, len(values)-headerRows)
	for _, raw := range values[headerRows:] {
		row := Row{}
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(raw) {
				row[header] = fmt.Sprint(raw[i])
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// padValues extends values with empty cells up to length n so a full-row
// write always covers every column.
func padValues(values []string, n int) []string {
	if len(values) >= n {
		return values
	}
	padded := make([]string, n)
	copy(padded, values)
	return padded
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

// columnLetter converts a 1-based column count to an A1-notation column.
func columnLetter(n int) string {
	letters := ""
	for n > 0 {
		n--
		letters = string(rune('A'+n%26)) + letters
		n /= 26
	}
	return letters
}
