package bots

import (
	"math"

	"github.com/oomph-ac/robobattle/event"
	"github.com/oomph-ac/robobattle/omath"
	"github.com/oomph-ac/robobattle/robot"
	"github.com/zeebo/xxh3"
)

// Rammer drives at full speed in a straight line. When it bumps into another robot it attacks it, and
// when it bumps into anything it turns away and speeds up again.
type Rammer struct {
	robot.NopController
	c robot.Commander
}

// NewRammer creates a new Rammer controller.
func NewRammer(c robot.Commander, _ int) robot.Controller {
	return &Rammer{c: c}
}

// HandleStarted ...
func (r *Rammer) HandleStarted(event.Started) {
	// Spread rammers out by starting each one in a direction derived from its name.
	h := xxh3.HashString(r.c.Name())
	r.c.SetHeading(float64(h%360) * math.Pi / 180)
	r.c.SetSpeed(math.Inf(1))
}

// HandleBumped ...
func (r *Rammer) HandleBumped(ev event.Bumped) {
	if !ev.Border() {
		r.c.Attack()
	}
	r.c.SetHeading(omath.NormalizeAngle(r.c.Heading() + math.Pi*3/4))
	r.c.SetSpeed(math.Inf(1))
}
