package types

type (
	// DeletionResult describes a deletion request that reached the server.
	// StatusCode is informational only; navigation never depends on it.
	DeletionResult struct {
		Kind       EntityKind `json:"-"`
		Endpoint   string     `json:"endpoint"`
		StatusCode int        `json:"status"`
		Location   string     `json:"location"`
		RequestID  string     `json:"requestId,omitempty"`
	}
)
