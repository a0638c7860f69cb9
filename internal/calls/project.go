package calls

import "fmt"

// IconKind is the arrow shown next to a call.
type IconKind string

// Icon kinds: down for inbound calls, up for everything else.
const (
	IconDown IconKind = "down"
	IconUp   IconKind = "up"
)

// Titles rendered for each call type.
const (
	TitleMissed    = "Missed call"
	TitleAnswered  = "Call answered"
	TitleVoicemail = "Voicemail"
)

// millisPerSecond converts API durations to the seconds the formatter expects.
const millisPerSecond = 1000

// Formatter renders raw durations and timestamps. Implementations must be
// total and must not panic on malformed input.
type Formatter interface {
	FormatDuration(seconds float64) string
	FormatDate(timestamp string) string
}

// DisplayRecord is the render-ready shape of a CallRecord.
type DisplayRecord struct {
	ID           string   `json:"id"                     yaml:"id"`
	IconKind     IconKind `json:"icon"                   yaml:"icon"`
	Title        string   `json:"title"                  yaml:"title"`
	Subtitle     string   `json:"subtitle"               yaml:"subtitle"`
	DurationText string   `json:"duration"               yaml:"duration"`
	DateText     string   `json:"date"                   yaml:"date"`
	NoteSummary  string   `json:"note_summary,omitempty" yaml:"note_summary,omitempty"`
}

// HasNoteSummary reports whether the record carries a note summary line.
func (d DisplayRecord) HasNoteSummary() bool {
	return d.NoteSummary != ""
}

// Project maps a call record to its display fields.
func Project(record CallRecord, f Formatter) DisplayRecord {
	return DisplayRecord{
		ID:           record.ID,
		IconKind:     iconFor(record.Direction),
		Title:        TitleFor(record.CallType),
		Subtitle:     subtitleFor(record),
		DurationText: f.FormatDuration(float64(record.Duration) / millisPerSecond),
		DateText:     f.FormatDate(record.CreatedAt),
		NoteSummary:  NoteSummary(record.Notes),
	}
}

// ProjectAll projects records preserving their order.
func ProjectAll(records []CallRecord, f Formatter) []DisplayRecord {
	out := make([]DisplayRecord, 0, len(records))
	for _, r := range records {
		out = append(out, Project(r, f))
	}
	return out
}

// TitleFor returns the title for a call type. Anything that is neither missed
// nor answered is shown as a voicemail, including unknown values.
func TitleFor(t CallType) string {
	switch t {
	case CallTypeMissed:
		return TitleMissed
	case CallTypeAnswered:
		return TitleAnswered
	default:
		return TitleVoicemail
	}
}

// NoteSummary returns "Call has N notes", or "" when there are none.
func NoteSummary(notes []Note) string {
	if len(notes) == 0 {
		return ""
	}
	return fmt.Sprintf("Call has %d notes", len(notes))
}

func iconFor(d Direction) IconKind {
	if d == DirectionInbound {
		return IconDown
	}
	return IconUp
}

func subtitleFor(record CallRecord) string {
	if record.Direction == DirectionInbound {
		return "from " + record.From
	}
	return "to " + record.To
}
