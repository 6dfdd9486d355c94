package types

// MoveResult holds the outcome of a transfer attempt for a single entry
type MoveResult struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Moved       bool   `json:"moved"`
	Err         error  `json:"error,omitempty"`
}
