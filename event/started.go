package event

import "github.com/go-gl/mathgl/mgl64"

// Started is delivered once to every robot before the first turn.
type Started struct {
	NopEvent

	Position mgl64.Vec2
}

func (Started) ID() byte {
	return IDStarted
}

func (Started) Name() string {
	return "started"
}
