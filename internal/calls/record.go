package calls

// Direction is whether a call was received or placed.
type Direction string

// Known directions.
const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

// CallType classifies the outcome of a call. Values outside the known set are
// accepted as-is.
type CallType string

// Known call types.
const (
	CallTypeMissed    CallType = "missed"
	CallTypeAnswered  CallType = "answered"
	CallTypeVoicemail CallType = "voicemail"
)

// Note is a free-text note attached to a call.
type Note struct {
	ID      string `json:"id"      yaml:"id"`
	Content string `json:"content" yaml:"content"`
}

// CallRecord is one call as returned by the calls API.
// Records are treated as immutable once fetched.
type CallRecord struct {
	ID        string    `json:"id"         yaml:"id"`
	Direction Direction `json:"direction"  yaml:"direction"`
	CallType  CallType  `json:"call_type"  yaml:"call_type"`
	From      string    `json:"from"       yaml:"from"`
	To        string    `json:"to"         yaml:"to"`
	Via       string    `json:"via"        yaml:"via,omitempty"`

	// Duration is the call length in milliseconds.
	Duration int64 `json:"duration" yaml:"duration"`

	// CreatedAt is the raw ISO-8601 timestamp; parsing is left to the formatter.
	CreatedAt string `json:"created_at" yaml:"created_at"`

	IsArchived bool   `json:"is_archived" yaml:"is_archived,omitempty"`
	Notes      []Note `json:"notes"       yaml:"notes,omitempty"`
}

// PageResult is one page of calls plus the total number of calls available.
type PageResult struct {
	TotalCount  int          `json:"totalCount"  yaml:"total_count"`
	HasNextPage bool         `json:"hasNextPage" yaml:"has_next_page"`
	Nodes       []CallRecord `json:"nodes"       yaml:"nodes"`
}
