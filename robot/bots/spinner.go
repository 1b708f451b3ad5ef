package bots

import (
	"math"

	"github.com/oomph-ac/robobattle/event"
	"github.com/oomph-ac/robobattle/omath"
	"github.com/oomph-ac/robobattle/robot"
)

// spinnerStep is the angle a Spinner turns every turn.
const spinnerStep = math.Pi / 8

// Spinner stands still and turns on the spot, attacking in every direction it faces.
type Spinner struct {
	robot.NopController
	c robot.Commander
}

// NewSpinner creates a new Spinner controller.
func NewSpinner(c robot.Commander, _ int) robot.Controller {
	return &Spinner{c: c}
}

// HandleStarted ...
func (s *Spinner) HandleStarted(event.Started) {
	s.c.SetSpeed(0)
}

// HandleRadarUpdated ...
func (s *Spinner) HandleRadarUpdated(event.RadarUpdated) {
	s.c.SetHeading(omath.NormalizeAngle(s.c.Heading() + spinnerStep))
	s.c.Attack()
}
