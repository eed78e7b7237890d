package monday

// graphQLRequest is the envelope Monday's API expects.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Wire structures for the items_page response.
type itemsPageResponse struct {
	Data struct {
		Boards []struct {
			ItemsPage struct {
				Cursor string         `json:"cursor"`
				Items  []itemResponse `json:"items"`
			} `json:"items_page"`
		} `json:"boards"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type itemResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	ColumnValues []columnValueResponse `json:"column_values"`
}

// columnValueResponse carries both the rendered text of a column and its
// raw structured payload. Value arrives as a JSON-encoded string and is
// passed through undecoded; the column extractor owns that fallback.
type columnValueResponse struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Value string `json:"value"`
}

type graphQLError struct {
	Message string `json:"message"`
}
