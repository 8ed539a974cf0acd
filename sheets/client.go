package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

//DefaultBaseURL is the Google Sheets v4 spreadsheets endpoint
const DefaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

//Client is a narrow client for the Google Sheets values API. It reads and
//writes whole-tab cell grids; everything richer than that is out of scope.
type Client struct {
	baseURL       string
	spreadsheetID string
	apiKey        string
	httpClient    *http.Client
}

//NewClient creates a values-API client for the given spreadsheet. An empty
//spreadsheetID yields a nil client, signalling "no remote store configured".
func NewClient(baseURL, spreadsheetID, apiKey string) *Client {
	if spreadsheetID == "" {
		return nil
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:       baseURL,
		spreadsheetID: spreadsheetID,
		apiKey:        apiKey,
		httpClient:    &http.Client{},
	}
}

type valueRange struct {
	Values [][]string `json:"values"`
}

func (c *Client) valuesURL(rng string) string {
	u := fmt.Sprintf("%s/%s/values/%s", c.baseURL, url.PathEscape(c.spreadsheetID), url.PathEscape(rng))
	if c.apiKey != "" {
		u += "?key=" + url.QueryEscape(c.apiKey)
	}
	return u
}

//ReadValues returns the full cell grid of the given tab
func (c *Client) ReadValues(ctx context.Context, tab string) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.valuesURL(tab), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("sheets API error (status %d): %s", resp.StatusCode, string(body))
	}

	var vr valueRange
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return vr.Values, nil
}

//UpdateCell overwrites a single cell, addressed by zero-based row and column
//indexes into the tab's grid
func (c *Client) UpdateCell(ctx context.Context, tab string, row, col int, value string) error {
	rng := fmt.Sprintf("%s!%s%d", tab, columnName(col), row+1)

	body, err := json.Marshal(&valueRange{Values: [][]string{{value}}})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	u := c.valuesURL(rng)
	if c.apiKey != "" {
		u += "&valueInputOption=RAW"
	} else {
		u += "?valueInputOption=RAW"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sheets API error (status %d): %s", resp.StatusCode, string(respBody))
	}
	return nil
}

//columnName converts a zero-based column index to an A1-notation column letter
func columnName(col int) string {
	name := ""
	for col >= 0 {
		name = string(rune('A'+col%26)) + name
		col = col/26 - 1
	}
	return name
}
