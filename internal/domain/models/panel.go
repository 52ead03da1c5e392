package models

import "time"

// PanelState is the read-only view of one panel that the presentation
// layer consumes. Exactly one state is live per panel; it is replaced
// wholesale on every batch, never patched field by field.
type PanelState struct {
	Panel     string     `json:"panel"`
	Seq       uint64     `json:"seq"`
	UpdatedAt *time.Time `json:"updatedAt"`
	Snapshot  any        `json:"snapshot"`
	Error     *string    `json:"error"`
}
