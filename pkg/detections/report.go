package detections

import (
	"fmt"
	"strings"
)

// FormatReport renders a changeset as the plain-text body handed to the
// notification sink. The layout is fixed: a count header, then one line
// per changed record; added records also carry their stamped date.
func FormatReport(changes *ChangeSet) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Detection catalog changes: %d added, %d updated, %d deleted\n",
		len(changes.Added), len(changes.Updated), len(changes.Deleted))

	for _, rec := range changes.Added {
		fmt.Fprintf(&sb, "added: %s (ID: %s) [date added: %s]\n",
			rec.Name, rec.DetectionID, rec.DateAdded)
	}
	for _, rec := range changes.Updated {
		fmt.Fprintf(&sb, "updated: %s (ID: %s)\n", rec.Name, rec.DetectionID)
	}
	for _, rec := range changes.Deleted {
		fmt.Fprintf(&sb, "deleted: %s (ID: %s)\n", rec.Name, rec.DetectionID)
	}

	return sb.String()
}
