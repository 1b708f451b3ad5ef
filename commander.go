package robobattle

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/robobattle/robot"
)

var _ robot.Commander = (*commander)(nil)

// commander is the robot.Commander bound to a single robot of a battle.
type commander struct {
	b  *Battle
	id int
}

func (c *commander) ID() int {
	return c.id
}

func (c *commander) Name() string {
	r, _ := c.b.store.Robot(c.id)
	return r.Name
}

func (c *commander) Position() mgl64.Vec2 {
	return c.b.store.Position(c.id)
}

func (c *commander) Damage() int {
	return c.b.store.Damage(c.id)
}

func (c *commander) Heading() float64 {
	return c.b.store.Heading(c.id)
}

func (c *commander) Speed() float64 {
	return c.b.store.Speed(c.id)
}

func (c *commander) SetHeading(radians float64) {
	c.b.store.SetHeading(c.id, radians)
}

func (c *commander) SetSpeed(speed float64) {
	c.b.store.SetSpeed(c.id, speed)
}

func (c *commander) Attack() {
	c.b.attack(c.id)
}
