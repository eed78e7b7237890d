package detections

// Item is one row fetched from the remote board. Items are transient:
// they exist between the fetcher and the mapper and are never persisted.
type Item struct {
	ID     string
	Name   string
	Fields []Field
}

// Field is a single column value on an Item. Key is the stable column
// identifier (not the display label), Text the rendered value, and Value
// the raw structured payload when the column carries one.
type Field struct {
	Key   string
	Text  string
	Value string
}

// FetchResult carries the outcome of a full paginated fetch. Items may be
// a partial accumulation when Complete is false; Err holds the condition
// that halted pagination, kept for diagnostics only.
type FetchResult struct {
	Items    []Item
	Pages    int
	Complete bool
	Err      error
}
