package bots

import (
	"math"

	"github.com/oomph-ac/robobattle/event"
	"github.com/oomph-ac/robobattle/omath"
	"github.com/oomph-ac/robobattle/robot"
	"github.com/samber/lo"
)

const (
	// hunterRange is the distance within which a Hunter attacks.
	hunterRange = 60
	// hunterAim is the maximum difference between the heading of a Hunter and the direction of its prey
	// for it to attack.
	hunterAim = math.Pi / 24
)

// Hunter chases the nearest active robot and attacks it once it is close enough and facing it.
type Hunter struct {
	robot.NopController
	c robot.Commander
}

// NewHunter creates a new Hunter controller.
func NewHunter(c robot.Commander, _ int) robot.Controller {
	return &Hunter{c: c}
}

// HandleRadarUpdated ...
func (h *Hunter) HandleRadarUpdated(ev event.RadarUpdated) {
	prey, ok := nearest(h.c, ev.Blips)
	if !ok {
		h.c.SetSpeed(0)
		return
	}

	pos := h.c.Position()
	heading := omath.Heading(pos, prey.Position)
	h.c.SetHeading(heading)

	dist := prey.Position.Sub(pos).Len()
	if dist <= hunterRange && math.Abs(omath.AngleDiff(h.c.Heading(), heading)) <= hunterAim {
		h.c.Attack()
	}
	// Slow down when close so the prey stays in front of us.
	h.c.SetSpeed(dist / 2)
}

// HandleAttacked ...
func (h *Hunter) HandleAttacked(event.Attacked) {
	// Fight back whoever is attacking us if they happen to be in front of us.
	h.c.Attack()
}

// nearest returns the nearest active robot on the radar other than the robot of c.
func nearest(c robot.Commander, blips []event.Blip) (event.Blip, bool) {
	pos := c.Position()
	others := lo.Filter(blips, func(b event.Blip, _ int) bool {
		return b.Active && b.ID != c.ID()
	})
	if len(others) == 0 {
		return event.Blip{}, false
	}
	return lo.MinBy(others, func(a, b event.Blip) bool {
		return a.Position.Sub(pos).LenSqr() < b.Position.Sub(pos).LenSqr()
	}), true
}
