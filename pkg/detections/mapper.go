package detections

import (
	"github.com/blueteamops/detsync/pkg/errors"
	"github.com/blueteamops/detsync/pkg/logging"
)

// MapItem converts one board item into a canonical Record.
//
// Attributes are populated from the fixed column-ID table in columns.go;
// a column absent from the item yields that attribute's empty default.
// The DetectionID comes from the dedicated column when it resolves to a
// non-empty value, falling back to the item's own board identity.
// DateAdded is deliberately left unset - only the reconciler knows
// whether the record is new.
func MapItem(item Item) (Record, error) {
	if item.Name == "" && item.ID == "" {
		return Record{}, errors.NewValidationError("item", item, "missing both name and identity")
	}

	columns := make(map[string]string, len(item.Fields))
	for _, f := range item.Fields {
		columns[f.Key] = ResolveValue(f)
	}

	id := columns[ColumnDetectionID]
	if id == "" {
		id = item.ID
	}

	return Record{
		DetectionID:      id,
		Name:             item.Name,
		Description:      columns[ColumnDescription],
		DefaultStatus:    columns[ColumnDefaultStatus],
		KillChainStage:   columns[ColumnKillChainStage],
		MitreTactic:      columns[ColumnMitreTactic],
		MitreTacticID:    columns[ColumnMitreTacticID],
		MitreTechnique:   columns[ColumnMitreTechnique],
		MitreTechniqueID: columns[ColumnMitreTechniqueID],
		Connector:        columns[ColumnConnector],
		Tool:             columns[ColumnTool],
	}, nil
}

// MapItems maps a batch of board items in arrival order. Items that fail
// to map are logged and excluded; the count of rejected items is returned
// alongside the mapped records.
func MapItems(items []Item) ([]Record, int) {
	records := make([]Record, 0, len(items))
	rejected := 0
	for _, item := range items {
		rec, err := MapItem(item)
		if err != nil {
			rejected++
			logging.Warn().
				Err(err).
				Str("item_id", item.ID).
				Str("item_name", item.Name).
				Msg("rejected board item")
			continue
		}
		records = append(records, rec)
	}
	return records, rejected
}
