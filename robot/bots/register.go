package bots

import "github.com/oomph-ac/robobattle/robot"

// init registers all builtin controllers.
func init() {
	robot.Register("bots.Sitter", NewSitter)
	robot.Register("bots.Spinner", NewSpinner)
	robot.Register("bots.Hunter", NewHunter)
	robot.Register("bots.Rammer", NewRammer)
}
