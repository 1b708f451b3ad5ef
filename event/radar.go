package event

import "github.com/go-gl/mathgl/mgl64"

// Blip is a single robot as seen on the radar.
type Blip struct {
	ID       int
	Name     string
	Position mgl64.Vec2
	// Active is false if the robot was destroyed.
	Active bool
}

// RadarUpdated is delivered to every active robot at the start of each turn. It lists every robot in
// the battle, destroyed ones included, in creation order.
type RadarUpdated struct {
	NopEvent

	Blips []Blip
}

func (RadarUpdated) ID() byte {
	return IDRadarUpdated
}

func (RadarUpdated) Name() string {
	return "radar_updated"
}
