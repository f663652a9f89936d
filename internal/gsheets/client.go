package gsheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/ordersheet/internal/sheetsync"
	"github.com/wellywell/ordersheet/internal/token"
)

const (
	DefaultSheetsEndpoint = "https://sheets.googleapis.com"
	DefaultDriveEndpoint  = "https://www.googleapis.com"
)

var (
	ErrUnauthorized = errors.New("request rejected, check credentials")
	ErrQuota        = errors.New("quota exceeded")
)

// Client implements sheetsync.SheetStore on the Sheets and Drive REST APIs.
// Every created sheet is moved into the configured Drive folder and listing
// is scoped to that folder, so cleanup only ever sees this job's files.
type Client struct {
	sheetsEndpoint string
	driveEndpoint  string
	folderID       string
	tokens         token.Provider
	client         *resty.Client
}

func NewClient(sheetsEndpoint string, driveEndpoint string, folderID string, tokens token.Provider) *Client {
	return &Client{
		sheetsEndpoint: sheetsEndpoint,
		driveEndpoint:  driveEndpoint,
		folderID:       folderID,
		tokens:         tokens,
		client:         resty.New(),
	}
}

type driveFileList struct {
	Files []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"files"`
}

func (c *Client) ListSheets(ctx context.Context, title string) ([]sheetsync.SheetRef, error) {

	query := fmt.Sprintf("name = '%s' and '%s' in parents and trashed = false", title, c.folderID)

	body, err := c.call(ctx, http.MethodGet, c.driveEndpoint+"/drive/v3/files", map[string]string{"q": query}, nil)
	if err != nil {
		return nil, err
	}

	var parsed driveFileList
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("json parsing error %w", err)
	}

	refs := make([]sheetsync.SheetRef, 0, len(parsed.Files))
	for _, file := range parsed.Files {
		refs = append(refs, sheetsync.SheetRef{ID: file.ID, Title: file.Name})
	}
	return refs, nil
}

func (c *Client) CreateSheet(ctx context.Context, title string) (sheetsync.SheetRef, error) {

	payload := map[string]any{
		"properties": map[string]any{"title": title},
	}

	body, err := c.call(ctx, http.MethodPost, c.sheetsEndpoint+"/v4/spreadsheets", nil, payload)
	if err != nil {
		return sheetsync.SheetRef{}, err
	}

	var parsed struct {
		SpreadsheetID string `json:"spreadsheetId"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return sheetsync.SheetRef{}, fmt.Errorf("json parsing error %w", err)
	}
	logger.Infof("Spreadsheet ID: %s", parsed.SpreadsheetID)

	if err := c.moveToFolder(ctx, parsed.SpreadsheetID); err != nil {
		return sheetsync.SheetRef{}, err
	}

	return sheetsync.SheetRef{ID: parsed.SpreadsheetID, Title: title}, nil
}

// moveToFolder reparents a fresh spreadsheet from the account root into the
// job's folder, like the Drive "move file" flow.
func (c *Client) moveToFolder(ctx context.Context, fileID string) error {

	body, err := c.call(ctx, http.MethodGet, c.driveEndpoint+"/drive/v3/files/"+fileID, map[string]string{"fields": "parents"}, nil)
	if err != nil {
		return err
	}

	var parsed struct {
		Parents []string `json:"parents"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("json parsing error %w", err)
	}

	previous := ""
	for i, parent := range parsed.Parents {
		if i > 0 {
			previous += ","
		}
		previous += parent
	}

	_, err = c.call(ctx, http.MethodPatch, c.driveEndpoint+"/drive/v3/files/"+fileID, map[string]string{
		"addParents":    c.folderID,
		"removeParents": previous,
		"fields":        "id, parents",
	}, map[string]any{})
	return err
}

func (c *Client) DeleteSheet(ctx context.Context, id string) error {
	_, err := c.call(ctx, http.MethodDelete, c.driveEndpoint+"/drive/v3/files/"+id, nil, nil)
	return err
}

func (c *Client) AddWorksheet(ctx context.Context, sheet sheetsync.SheetRef, title string, index int, rows int, cols int) (sheetsync.WorksheetRef, error) {

	payload := map[string]any{
		"requests": []map[string]any{{
			"addSheet": map[string]any{
				"properties": map[string]any{
					"title": title,
					"index": index,
					"gridProperties": map[string]any{
						"rowCount":    rows,
						"columnCount": cols,
					},
				},
			},
		}},
	}

	body, err := c.call(ctx, http.MethodPost, c.sheetsEndpoint+"/v4/spreadsheets/"+sheet.ID+":batchUpdate", nil, payload)
	if err != nil {
		return sheetsync.WorksheetRef{}, err
	}

	var parsed struct {
		Replies []struct {
			AddSheet struct {
				Properties struct {
					SheetID int64 `json:"sheetId"`
				} `json:"properties"`
			} `json:"addSheet"`
		} `json:"replies"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return sheetsync.WorksheetRef{}, fmt.Errorf("json parsing error %w", err)
	}
	if len(parsed.Replies) == 0 {
		return sheetsync.WorksheetRef{}, fmt.Errorf("addSheet returned no reply")
	}

	return sheetsync.WorksheetRef{
		SheetID: sheet.ID,
		TabID:   parsed.Replies[0].AddSheet.Properties.SheetID,
		Title:   title,
	}, nil
}

func (c *Client) ReadAllValues(ctx context.Context, ws sheetsync.WorksheetRef) ([][]string, error) {

	body, err := c.call(ctx, http.MethodGet, c.valuesURL(ws, ""), nil, nil)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Values [][]any `json:"values"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("json parsing error %w", err)
	}

	values := make([][]string, 0, len(parsed.Values))
	for _, row := range parsed.Values {
		strRow := make([]string, 0, len(row))
		for _, cell := range row {
			strRow = append(strRow, fmt.Sprint(cell))
		}
		values = append(values, strRow)
	}
	return values, nil
}

func (c *Client) InsertRow(ctx context.Context, ws sheetsync.WorksheetRef, row []string, at int) error {

	values := make([]any, 0, len(row))
	for _, cell := range row {
		values = append(values, cell)
	}

	_, err := c.call(ctx, http.MethodPut, c.valuesURL(ws, fmt.Sprintf("!A%d", at)), map[string]string{
		"valueInputOption": "RAW",
	}, map[string]any{"values": [][]any{values}})
	return err
}

func (c *Client) AppendRows(ctx context.Context, ws sheetsync.WorksheetRef, rows [][]any) error {

	_, err := c.call(ctx, http.MethodPost, c.valuesURL(ws, "")+":append", map[string]string{
		"valueInputOption": "RAW",
	}, map[string]any{"values": rows})
	return err
}

func (c *Client) valuesURL(ws sheetsync.WorksheetRef, suffix string) string {
	return fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s%s", c.sheetsEndpoint, ws.SheetID, ws.Title, suffix)
}

func (c *Client) call(ctx context.Context, method string, url string, query map[string]string, payload any) ([]byte, error) {

	accessToken, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get access token %w", err)
	}

	req := c.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken)
	if query != nil {
		req.SetQueryParams(query)
	}
	if payload != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(payload)
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode() >= 200 && resp.StatusCode() < 300:
		return resp.Body(), nil
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return nil, fmt.Errorf("%w", ErrUnauthorized)
	case resp.StatusCode() == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w", ErrQuota)
	default:
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), resp.Body())
	}
}
