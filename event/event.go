package event

const (
	_ = iota
	IDStarted
	IDRadarUpdated
	IDAttacked
	IDBumped
)

// Event is a notification delivered to a robot controller.
type Event interface {
	// ID returns the ID of the event type.
	ID() byte
	// Name returns the name of the event type as used in logs.
	Name() string
	// Turn returns the turn the event was delivered in. Events delivered before the first turn
	// return 0.
	Turn() int
}

// NopEvent carries the fields shared by all events.
type NopEvent struct {
	EvTurn int
}

func (n NopEvent) Turn() int {
	return n.EvTurn
}
