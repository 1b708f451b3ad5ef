package event

// Bumped is delivered to a robot whose movement was blocked, after its speed was set to zero.
type Bumped struct {
	NopEvent

	// Obstacle is the display identity of the robot bumped into, or the name of the border:
	// "left", "top", "right" or "bottom".
	Obstacle string
	// RobotID is the ID of the robot bumped into, or -1 if a border was hit.
	RobotID int
}

func (Bumped) ID() byte {
	return IDBumped
}

func (Bumped) Name() string {
	return "bumped"
}

// Border returns true if the robot bumped into one of the arena borders.
func (b Bumped) Border() bool {
	return b.RobotID < 0
}
