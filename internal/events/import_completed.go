package events

const ImportCompletedTopic = "import.completed"

// ImportCompletedEvent is emitted after an import pipeline finishes, with
// the submitted row count (which may be lower than the upload size).
type ImportCompletedEvent struct {
	Entity    string `json:"entity"`
	Rows      int    `json:"rows"`
	ElapsedMS int64  `json:"elapsed_ms"`
	RequestID string `json:"request_id,omitempty"`
}
