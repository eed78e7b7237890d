package monday

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blueteamops/detsync/internal/transport"
)

// boardPage builds one items_page response body.
func boardPage(cursor string, items ...map[string]any) string {
	page := map[string]any{
		"data": map[string]any{
			"boards": []any{
				map[string]any{
					"items_page": map[string]any{
						"cursor": cursor,
						"items":  items,
					},
				},
			},
		},
	}
	body, _ := json.Marshal(page)
	return string(body)
}

func boardItem(id, name string) map[string]any {
	return map[string]any{
		"id":   id,
		"name": name,
		"column_values": []any{
			map[string]any{"id": "status", "text": "Active", "value": `{"label":"Active"}`},
		},
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Config{
		Endpoint:  server.URL,
		BoardID:   "123456789",
		PageSize:  2,
		PageDelay: time.Millisecond,
	}, transport.New(&transport.TokenAuth{}, "test-token"))
}

func TestListItemsSinglePage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "2024-10", r.Header.Get("API-Version"))

		var req graphQLRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotContains(t, req.Variables, "cursor", "first request must omit the cursor")

		fmt.Fprint(w, boardPage("", boardItem("1", "Alpha")))
	})

	result := client.ListItems(context.Background())

	assert.True(t, result.Complete)
	assert.Equal(t, 1, result.Pages)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Alpha", result.Items[0].Name)
	require.Len(t, result.Items[0].Fields, 1)
	assert.Equal(t, "status", result.Items[0].Fields[0].Key)
	assert.Equal(t, "Active", result.Items[0].Fields[0].Text)
}

func TestListItemsPaginates(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		var req graphQLRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch calls {
		case 1:
			fmt.Fprint(w, boardPage("cursor-2", boardItem("1", "Alpha"), boardItem("2", "Beta")))
		case 2:
			assert.Equal(t, "cursor-2", req.Variables["cursor"])
			fmt.Fprint(w, boardPage("", boardItem("3", "Gamma")))
		default:
			t.Errorf("unexpected request %d", calls)
		}
	})

	result := client.ListItems(context.Background())

	assert.True(t, result.Complete)
	assert.Equal(t, 2, result.Pages)
	require.Len(t, result.Items, 3)
	assert.Equal(t, "Gamma", result.Items[2].Name)
}

func TestListItemsPartialOnTransportError(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			fmt.Fprint(w, boardPage("cursor-2", boardItem("1", "Alpha"), boardItem("2", "Beta")))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	})

	result := client.ListItems(context.Background())

	assert.False(t, result.Complete)
	assert.Error(t, result.Err)
	assert.Equal(t, 1, result.Pages)
	require.Len(t, result.Items, 2, "items already fetched must be preserved")
}

func TestListItemsGraphQLError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"errors":[{"message":"Board not accessible"}]}`)
	})

	result := client.ListItems(context.Background())

	assert.False(t, result.Complete)
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "Board not accessible")
	assert.Empty(t, result.Items)
}

func TestListItemsMissingBoard(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"data":{"boards":[]}}`)
	})

	result := client.ListItems(context.Background())

	assert.False(t, result.Complete)
	assert.Error(t, result.Err)
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{BoardID: "1"}, transport.New(nil, ""))

	assert.Equal(t, DefaultEndpoint, client.cfg.Endpoint)
	assert.Equal(t, DefaultPageSize, client.cfg.PageSize)
	assert.Equal(t, DefaultPageDelay, client.cfg.PageDelay)

	client = NewClient(Config{BoardID: "1", PageSize: 9999}, transport.New(nil, ""))
	assert.Equal(t, maxPageSize, client.cfg.PageSize)
}
