package bots

import (
	"github.com/oomph-ac/robobattle/robot"
)

// Sitter never moves and never attacks.
type Sitter struct {
	robot.NopController
}

// NewSitter creates a new Sitter controller.
func NewSitter(robot.Commander, int) robot.Controller {
	return Sitter{}
}
