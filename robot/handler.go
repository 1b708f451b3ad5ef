package robot

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/robobattle/event"
)

// Commander is the narrow view a controller has of the battle. It is bound to the controller's own
// robot: reads return that robot's current state and commands apply to it. Every command takes effect
// immediately.
type Commander interface {
	// ID returns the stable ID of the robot.
	ID() int
	// Name returns the display identity of the robot.
	Name() string

	Position() mgl64.Vec2
	Damage() int
	// Heading returns the heading of the robot in radians.
	Heading() float64
	Speed() float64

	// SetHeading changes the direction the robot moves and attacks in.
	SetHeading(radians float64)
	// SetSpeed changes the speed of the robot. Values above the configured maximum are clamped to it
	// and negative values are clamped to zero.
	SetSpeed(speed float64)
	// Attack attacks every robot inside the attack cone in front of the robot.
	Attack()
}

// Controller is the behaviour of a robot. Each method is a notification delivered by the battle, during
// which the controller may call its Commander any number of times before returning. Methods are never
// called concurrently.
type Controller interface {
	// HandleStarted is called once for every robot before the first turn.
	HandleStarted(ev event.Started)
	// HandleRadarUpdated is called at the start of every turn for active robots. Commands issued here
	// apply to the movement of the same turn.
	HandleRadarUpdated(ev event.RadarUpdated)
	// HandleAttacked is called when the robot took damage from an attack.
	HandleAttacked(ev event.Attacked)
	// HandleBumped is called when the robot's movement was blocked. Its speed is already zero.
	HandleBumped(ev event.Bumped)
}

// Factory creates the controller of a robot given the Commander bound to it and its ID.
type Factory func(c Commander, id int) Controller

// NopController implements the Controller interface but does not do anything. It may be embedded to
// only implement the notifications a controller cares about.
type NopController struct{}

func (NopController) HandleStarted(event.Started)           {}
func (NopController) HandleRadarUpdated(event.RadarUpdated) {}
func (NopController) HandleAttacked(event.Attacked)         {}
func (NopController) HandleBumped(event.Bumped)             {}
