package realtime

type EventType string

const (
	EventGoalCreated     EventType = "goal_created"
	EventGoalUpdated     EventType = "goal_updated"
	EventGoalDeleted     EventType = "goal_deleted"
	EventProgressUpdated EventType = "progress_updated"
)

// Event is the wire shape sent to every observer: {"type": ..., "data": ...}.
type Event struct {
	Type EventType `json:"type"`
	Data any       `json:"data"`
}

// Broadcaster is what services need from the hub.
type Broadcaster interface {
	Broadcast(event Event)
}
