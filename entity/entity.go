package entity

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/robobattle/game"
)

// Robot is the authoritative record of a single robot in a battle. Records are only ever handed out
// by value, so holding one never gives access to the battle's own state.
type Robot struct {
	// ID is the stable identity of the robot, assigned in creation order starting at 0.
	ID int
	// Name is the display identity of the robot, used in radar snapshots and notifications.
	Name string
	// Position is the current position of the robot in the arena.
	Position mgl64.Vec2
	// Heading is the direction the robot moves and attacks in, in radians. It is never normalized.
	Heading float64
	// Speed is the current speed of the robot in units per second.
	Speed float64
	// Damage is the accumulated damage of the robot, in [0, game.DestroyedDamage].
	Damage int
	// LastMove is the clock reading at which the robot last moved.
	LastMove time.Time
}

// Active returns true if the robot has not been destroyed yet.
func (r Robot) Active() bool {
	return r.Damage < game.DestroyedDamage
}
