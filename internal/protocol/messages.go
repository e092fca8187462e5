package protocol

// HELLO (bot -> gateway)
type HelloMsg struct {
	Type            string            `json:"type"`
	ProtocolVersion string            `json:"protocol_version"`
	AgentName       string            `json:"agent_name"`
	Capabilities    HelloCapabilities `json:"capabilities"`
	Auth            *HelloAuth        `json:"auth,omitempty"`
}

type HelloCapabilities struct {
	Retarget    bool `json:"retarget,omitempty"`
	CancelAck   bool `json:"cancel_ack,omitempty"`
	MaxInFlight int  `json:"max_in_flight,omitempty"`
}

type HelloAuth struct {
	Token string `json:"token,omitempty"`
}

// WELCOME (gateway -> bot)
type WelcomeMsg struct {
	Type            string             `json:"type"`
	ProtocolVersion string             `json:"protocol_version"`
	AgentID         string             `json:"agent_id"`
	SessionID       string             `json:"session_id,omitempty"`
	ServerParams    ServerParams       `json:"server_params"`
	Capabilities    ServerCapabilities `json:"server_capabilities,omitempty"`
}

type ServerCapabilities struct {
	Retarget  bool `json:"retarget,omitempty"`
	CancelAck bool `json:"cancel_ack,omitempty"`
}

type ServerParams struct {
	TickRateHz int    `json:"tick_rate_hz"`
	Version    string `json:"version,omitempty"`
	Gamemode   string `json:"gamemode,omitempty"`
}

// SNAPSHOT (gateway -> bot): one immutable world observation per tick.
type SnapshotMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Tick            uint64 `json:"tick"`
	AgentID         string `json:"agent_id"`

	Self       SelfObs     `json:"self"`
	World      WorldObs    `json:"world"`
	Entities   []EntityObs `json:"entities"`
	Blocks     []BlockObs  `json:"blocks"`
	Players    []PlayerObs `json:"players"`
	Inventory  []ItemStack `json:"inventory"`
	Milestones []string    `json:"milestones,omitempty"`
}

type SelfObs struct {
	// Health and Food are pointers so a missing field is distinguishable
	// from an honest zero; absent values default to full on decode.
	Health    *int       `json:"health,omitempty"`
	Food      *int       `json:"food,omitempty"`
	Pos       [3]float64 `json:"pos"`
	Dimension string     `json:"dimension,omitempty"`
	Armor     []string   `json:"armor,omitempty"`
}

type WorldObs struct {
	TimeOfDay string `json:"time_of_day,omitempty"` // "day" or "night"
	Weather   string `json:"weather,omitempty"`     // "clear", "rain", "thunder"
}

type EntityObs struct {
	ID       string  `json:"id"`
	Kind     string  `json:"kind"`
	Distance float64 `json:"distance"`
	Hostile  bool    `json:"hostile,omitempty"`
}

type BlockObs struct {
	Kind     string  `json:"kind"`
	Distance float64 `json:"distance"`
	Pos      [3]int  `json:"pos,omitempty"`
}

type PlayerObs struct {
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
}

type ItemStack struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

// COMMAND (bot -> gateway): dispatch and/or cancel requests.
type CommandMsg struct {
	Type            string       `json:"type"`
	ProtocolVersion string       `json:"protocol_version"`
	Tick            uint64       `json:"tick"`
	AgentID         string       `json:"agent_id"`
	Dispatch        []CommandReq `json:"dispatch,omitempty"`
	Retarget        []CommandReq `json:"retarget,omitempty"`
	Cancel          []string     `json:"cancel,omitempty"`
}

type CommandReq struct {
	ID     string        `json:"id"`
	Kind   string        `json:"kind"`
	Params CommandParams `json:"params"`
	Reason string        `json:"reason,omitempty"`
}

type CommandParams struct {
	TargetID  string     `json:"target_id,omitempty"`
	Pos       [3]float64 `json:"pos,omitempty"`
	HasPos    bool       `json:"has_pos,omitempty"`
	Item      string     `json:"item,omitempty"`
	BlockKind string     `json:"block_kind,omitempty"`
	Recipe    string     `json:"recipe,omitempty"`
	Speed     string     `json:"speed,omitempty"` // "walk" or "sprint"
	Radius    float64    `json:"radius,omitempty"`
}

// RESULT (gateway -> bot): asynchronous execution feedback.
type ResultMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	CommandID       string `json:"command_id"`
	Status          string `json:"status"` // "COMPLETED", "FAILED", "CANCELLED"
	Code            string `json:"code,omitempty"`
	Message         string `json:"message,omitempty"`
	Tick            uint64 `json:"tick,omitempty"`
}

// Result statuses.
const (
	ResultCompleted = "COMPLETED"
	ResultFailed    = "FAILED"
	ResultCancelled = "CANCELLED"
)

// GOODBYE (either direction): the only fatal signal. The connection owner
// decides to stop the loop; the arbitration core never does.
type GoodbyeMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Code            string `json:"code,omitempty"`
	Message         string `json:"message,omitempty"`
}
