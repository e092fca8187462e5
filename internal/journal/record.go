// Package journal is the observability sink: one structured record per
// tick with every vote and the winning decision. Nothing in the
// arbitration core reads it back.
package journal

// VoteRecord is one brain's entry in a tick record.
type VoteRecord struct {
	Brain     string `json:"brain"`
	Score     int    `json:"score"`
	Kind      string `json:"kind"`
	Rationale string `json:"rationale,omitempty"`
}

// TickRecord is the per-tick journal entry.
type TickRecord struct {
	Tick      uint64       `json:"tick"`
	TS        string       `json:"ts"`
	Votes     []VoteRecord `json:"votes"`
	Winner    string       `json:"winner"`
	Kind      string       `json:"kind"`
	Score     int          `json:"score"`
	Reason    string       `json:"reason,omitempty"`
	CommandID string       `json:"command_id,omitempty"`
	Status    string       `json:"status,omitempty"`
	ErrorCode string       `json:"error_code,omitempty"`
}

// ResultRecord captures asynchronous command outcomes.
type ResultRecord struct {
	CommandID string `json:"command_id"`
	Tick      uint64 `json:"tick,omitempty"`
	TS        string `json:"ts"`
	Status    string `json:"status"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
}
