package event

import (
	"time"

	"github.com/viperadnan-git/seeksim/internal/core/track"
)

type EventType string

const (
	EventScheduleCompleted EventType = "schedule.completed"
	EventScheduleRejected  EventType = "schedule.rejected"
)

type Event struct {
	Type      EventType
	Timestamp time.Time
	Payload   any
}

// ScheduleEvent describes one scheduling request and its outcome.
// Result is zero for rejected requests.
type ScheduleEvent struct {
	Policy    track.Policy
	Direction track.Direction
	Start     int
	Requests  int
	Result    track.Result
	Error     string
}
