package models

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Reasons a session ended
const (
	EndCrash      = "crash"
	EndDeviceLost = "microphone lost"
	EndQuit       = "quit"
)

// SessionRecord describes one run from start to end
type SessionRecord struct {
	ID         uuid.UUID `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	EndedAt    time.Time `json:"ended_at"`
	Frames     int       `json:"frames"`
	FinalScore int       `json:"final_score"`
	Cleared    int       `json:"cleared"` // Opponents that left the road behind the player
	TopSpeed   int       `json:"top_speed"`
	Reason     string    `json:"reason"`
}

// Duration is how long the session ran, zero while it is still open
func (r *SessionRecord) Duration() time.Duration {
	if r.EndedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// Open reports whether the session has not ended yet
func (r *SessionRecord) Open() bool {
	return r.EndedAt.IsZero()
}

// History keeps every session played since launch. Nothing is written to disk.
type History struct {
	records []*SessionRecord
	now     func() time.Time
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{now: time.Now}
}

// Begin opens a record for a session starting now
func (h *History) Begin() *SessionRecord {
	r := &SessionRecord{
		ID:        uuid.New(),
		StartedAt: h.now(),
	}
	h.records = append(h.records, r)
	return r
}

// End closes r with its final numbers. Closing twice keeps the first result.
func (h *History) End(r *SessionRecord, frames, score int, reason string) {
	if r == nil || !r.Open() {
		return
	}
	r.EndedAt = h.now()
	r.Frames = frames
	r.FinalScore = score
	r.Reason = reason
}

// Records returns the sessions in the order they started
func (h *History) Records() []*SessionRecord {
	return h.records
}

// Best returns the highest final score, 0 when nothing has been played
func (h *History) Best() int {
	best := 0
	for _, r := range h.records {
		if r.FinalScore > best {
			best = r.FinalScore
		}
	}
	return best
}

// WriteSummary renders the sessions as a table
func (h *History) WriteSummary(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Session", "Started", "Duration", "Frames", "Cleared", "Top Speed", "Score", "Ended"})
	for i, r := range h.records {
		reason := r.Reason
		if r.Open() {
			reason = "-"
		}
		t.AppendRow(table.Row{
			i + 1,
			r.ID.String()[:8],
			r.StartedAt.Format(time.Kitchen),
			r.Duration().Round(100 * time.Millisecond),
			r.Frames,
			r.Cleared,
			r.TopSpeed,
			r.FinalScore,
			reason,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "", "Best", h.Best(), fmt.Sprintf("%d played", len(h.records))})
	t.Render()
}
