package robobattle

import (
	"github.com/oomph-ac/robobattle/entity"
	"github.com/oomph-ac/robobattle/event"
)

// Observer watches a battle without taking part in it. Observers are called synchronously from the
// battle and must not call back into it.
type Observer interface {
	// HandleEvent is called before an event is delivered to the controller of a robot. r is the record
	// of the receiving robot at that moment.
	HandleEvent(r entity.Robot, ev event.Event)
	// HandleTurn is called at the end of every turn with a copy of every robot record.
	HandleTurn(turn int, robots []entity.Robot)
}

// NopObserver implements the Observer interface but does not do anything.
type NopObserver struct{}

func (NopObserver) HandleEvent(entity.Robot, event.Event) {}
func (NopObserver) HandleTurn(int, []entity.Robot)        {}
