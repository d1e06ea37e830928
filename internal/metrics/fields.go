package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrProvider   = "provider"
	AttrDivision   = "division"
	AttrStage      = "stage"
	AttrChangeType = "change_type"
	AttrOutcome    = "outcome"
)
