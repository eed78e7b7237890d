package detections

// Stable column identifiers on the detections board. Display labels are
// renamed freely by analysts; column IDs are fixed at board creation and
// are the only safe lookup key.
const (
	ColumnDetectionID      = "detection_id"
	ColumnDescription      = "description"
	ColumnDefaultStatus    = "status"
	ColumnKillChainStage   = "kill_chain_stage"
	ColumnMitreTactic      = "mitre_tactic"
	ColumnMitreTacticID    = "mitre_tactic_id"
	ColumnMitreTechnique   = "mitre_technique"
	ColumnMitreTechniqueID = "mitre_technique_id"
	ColumnConnector        = "connector"
	ColumnTool             = "tool"
	ColumnDateActivated    = "date_activated"
)
