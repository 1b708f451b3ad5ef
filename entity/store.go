package entity

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/robobattle/assert"
	"github.com/oomph-ac/robobattle/game"
	"github.com/oomph-ac/robobattle/omath"
	"github.com/samber/lo"
)

// Store holds the records of every robot in a battle, indexed by their ID. Robots are never removed,
// only flagged inactive once destroyed.
type Store struct {
	robots   []Robot
	maxSpeed float64
}

// NewStore returns an empty store that clamps speeds to maxSpeed.
func NewStore(maxSpeed float64) *Store {
	return &Store{maxSpeed: maxSpeed}
}

// Add creates a new robot record at the given position and returns its ID.
func (s *Store) Add(name string, pos mgl64.Vec2, now time.Time) int {
	id := len(s.robots)
	s.robots = append(s.robots, Robot{
		ID:       id,
		Name:     name,
		Position: pos,
		LastMove: now,
	})
	return id
}

// Len returns the amount of robots in the store, active or not.
func (s *Store) Len() int {
	return len(s.robots)
}

// Robot returns a copy of the record of the robot with the given ID.
func (s *Store) Robot(id int) (Robot, bool) {
	if id < 0 || id >= len(s.robots) {
		return Robot{}, false
	}
	return s.robots[id], true
}

func (s *Store) robot(id int) *Robot {
	assert.IsTrue(id >= 0 && id < len(s.robots), "unknown robot id %d", id)
	return &s.robots[id]
}

// Position returns the current position of a robot.
func (s *Store) Position(id int) mgl64.Vec2 {
	return s.robot(id).Position
}

// Damage returns the accumulated damage of a robot.
func (s *Store) Damage(id int) int {
	return s.robot(id).Damage
}

// Heading returns the heading of a robot in radians.
func (s *Store) Heading(id int) float64 {
	return s.robot(id).Heading
}

// Speed returns the speed of a robot.
func (s *Store) Speed(id int) float64 {
	return s.robot(id).Speed
}

// SetHeading sets the heading of a robot. Non-finite values are ignored.
func (s *Store) SetHeading(id int, radians float64) {
	if math.IsNaN(radians) || math.IsInf(radians, 0) {
		return
	}
	s.robot(id).Heading = radians
}

// SetSpeed sets the speed of a robot, clamped to [0, max speed]. NaN is ignored.
func (s *Store) SetSpeed(id int, speed float64) {
	if math.IsNaN(speed) {
		return
	}
	s.robot(id).Speed = omath.ClampFloat(speed, 0, s.maxSpeed)
}

// AddDamage adds damage to a robot and returns its new accumulated damage. Damage never decreases and
// never exceeds game.DestroyedDamage.
func (s *Store) AddDamage(id int, damage int) int {
	r := s.robot(id)
	if damage > 0 {
		r.Damage = min(r.Damage+damage, game.DestroyedDamage)
	}
	return r.Damage
}

// Move commits a new position for a robot along with the clock reading it was computed at.
func (s *Store) Move(id int, pos mgl64.Vec2, at time.Time) {
	r := s.robot(id)
	r.Position = pos
	r.LastMove = at
}

// Active returns copies of all robots that have not been destroyed, in creation order.
func (s *Store) Active() []Robot {
	return lo.Filter(s.robots, func(r Robot, _ int) bool {
		return r.Active()
	})
}

// All returns copies of every robot record in creation order.
func (s *Store) All() []Robot {
	return append([]Robot(nil), s.robots...)
}
