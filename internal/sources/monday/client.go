// Package monday fetches detection items from a Monday.com board through
// the items_page cursor API.
package monday

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/blueteamops/detsync/internal/transport"
	"github.com/blueteamops/detsync/pkg/detections"
	"github.com/blueteamops/detsync/pkg/errors"
	"github.com/blueteamops/detsync/pkg/logging"
)

const (
	// DefaultEndpoint is the Monday GraphQL API endpoint.
	DefaultEndpoint = "https://api.monday.com/v2"

	// DefaultPageSize is the number of items requested per page.
	DefaultPageSize = 100

	// DefaultPageDelay paces consecutive page requests.
	DefaultPageDelay = 500 * time.Millisecond

	// maxPageSize is the largest page the items_page API accepts.
	maxPageSize = 500

	// apiVersion pins the Monday API release the query targets.
	apiVersion = "2024-10"
)

// itemsPageQuery retrieves one page of board items with their column
// values. The cursor is omitted on the first request; Monday returns a
// null cursor on the final page.
const itemsPageQuery = `query ($boardID: [ID!], $limit: Int!, $cursor: String) {
  boards (ids: $boardID) {
    items_page (limit: $limit, cursor: $cursor) {
      cursor
      items {
        id
        name
        column_values {
          id
          text
          value
        }
      }
    }
  }
}`

// Config holds the board coordinates and paging policy.
type Config struct {
	Endpoint  string
	BoardID   string
	PageSize  int
	PageDelay time.Duration
}

// Client retrieves the complete item set of one board.
type Client struct {
	cfg       Config
	transport *transport.Client
	limiter   *rate.Limiter
}

// NewClient creates a board client. Zero config fields fall back to the
// package defaults.
func NewClient(cfg Config, tc *transport.Client) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.PageSize > maxPageSize {
		cfg.PageSize = maxPageSize
	}
	if cfg.PageDelay <= 0 {
		cfg.PageDelay = DefaultPageDelay
	}

	return &Client{
		cfg:       cfg,
		transport: tc,
		limiter:   rate.NewLimiter(rate.Every(cfg.PageDelay), 1),
	}
}

// ListItems retrieves all items across pages in arrival order. Pagination
// is strictly sequential: the cursor for page N+1 is only known once page
// N has answered, and the limiter spaces the requests out.
//
// A transport or remote-side error mid-pagination halts fetching and the
// partial accumulation is returned; the caller proceeds with what was
// retrieved rather than failing the run.
func (c *Client) ListItems(ctx context.Context) *detections.FetchResult {
	result := &detections.FetchResult{Complete: true}

	cursor := ""
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			result.Complete = false
			result.Err = err
			break
		}

		items, next, err := c.itemsPage(ctx, cursor)
		if err != nil {
			logging.Warn().
				Err(err).
				Str("board", c.cfg.BoardID).
				Int("pages", result.Pages).
				Int("items", len(result.Items)).
				Msg("pagination halted, continuing with partial item set")
			result.Complete = false
			result.Err = err
			break
		}

		result.Items = append(result.Items, items...)
		result.Pages++

		if next == "" {
			break
		}
		cursor = next
	}

	return result
}

// itemsPage requests a single page and returns its items plus the cursor
// for the next page, empty when the board is exhausted.
func (c *Client) itemsPage(ctx context.Context, cursor string) ([]detections.Item, string, error) {
	variables := map[string]any{
		"boardID": []string{c.cfg.BoardID},
		"limit":   c.cfg.PageSize,
	}
	if cursor != "" {
		variables["cursor"] = cursor
	}

	payload, err := json.Marshal(graphQLRequest{
		Query:     itemsPageQuery,
		Variables: variables,
	})
	if err != nil {
		return nil, "", errors.WrapParse("json", "items_page query", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, "", errors.WrapIO("create", "POST "+c.cfg.Endpoint, err)
	}
	req.Header.Set("API-Version", apiVersion)

	resp, err := c.transport.Do(req)
	if err != nil {
		return nil, "", &errors.APIError{
			Source:   "monday",
			Endpoint: c.cfg.Endpoint,
			Message:  "request failed",
			Err:      err,
		}
	}

	var decoded itemsPageResponse
	if err := transport.DecodeResponse(resp, "monday", &decoded); err != nil {
		return nil, "", err
	}

	if len(decoded.Errors) > 0 {
		messages := make([]string, 0, len(decoded.Errors))
		for _, gqlErr := range decoded.Errors {
			messages = append(messages, gqlErr.Message)
		}
		return nil, "", &errors.APIError{
			Source:   "monday",
			Endpoint: c.cfg.Endpoint,
			Message:  strings.Join(messages, "; "),
		}
	}

	if len(decoded.Data.Boards) == 0 {
		return nil, "", errors.NewNotFoundError("board", c.cfg.BoardID)
	}

	page := decoded.Data.Boards[0].ItemsPage
	items := make([]detections.Item, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, convertItem(item))
	}
	return items, page.Cursor, nil
}

// convertItem maps the wire representation onto the domain Item, keeping
// column order as delivered.
func convertItem(item itemResponse) detections.Item {
	fields := make([]detections.Field, 0, len(item.ColumnValues))
	for _, cv := range item.ColumnValues {
		fields = append(fields, detections.Field{
			Key:   cv.ID,
			Text:  cv.Text,
			Value: cv.Value,
		})
	}
	return detections.Item{
		ID:     item.ID,
		Name:   item.Name,
		Fields: fields,
	}
}
