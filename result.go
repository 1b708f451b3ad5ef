package robobattle

import (
	"fmt"
	"strings"

	"github.com/oomph-ac/robobattle/entity"
	"github.com/samber/lo"
)

// Result is the outcome of a battle.
type Result struct {
	// Turns is the amount of turns that were simulated.
	Turns int
	// Survivors are the robots that were still active when the battle ended, in creation order.
	Survivors []entity.Robot
	// Stalemate is true if the turn limit was reached with more than one robot still active.
	Stalemate bool
}

// Winner returns the only surviving robot, if there is exactly one.
func (r Result) Winner() (entity.Robot, bool) {
	if len(r.Survivors) != 1 {
		return entity.Robot{}, false
	}
	return r.Survivors[0], true
}

// String returns the outcome message printed at the end of a battle.
func (r Result) String() string {
	switch len(r.Survivors) {
	case 0:
		return "All robots were destroyed"
	case 1:
		w := r.Survivors[0]
		return fmt.Sprintf("The winner is %s (damage %d)", w.Name, w.Damage)
	}
	survivors := lo.Map(r.Survivors, func(s entity.Robot, _ int) string {
		return fmt.Sprintf("%s (damage %d)", s.Name, s.Damage)
	})
	return "Stalemate. The survivors are " + strings.Join(survivors, ", ")
}
