package combat

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/robobattle/entity"
	"github.com/oomph-ac/robobattle/omath"
)

// Options configure how attacks deal damage.
type Options struct {
	// Angle is the full width of the attack cone in radians, centered on the heading of the attacker.
	Angle float64
	// Damage is the damage dealt at point blank range. It falls off with the square of the distance.
	Damage float64
}

// DamageAt returns the damage an attacker at origin facing heading deals to a target at pos. Targets
// outside the cone take no damage, and damage below one point truncates to zero.
func (o Options) DamageAt(origin mgl64.Vec2, heading float64, pos mgl64.Vec2) int {
	if !omath.IsInAngle(origin, heading, o.Angle, pos) {
		return 0
	}
	return int(omath.InverseSquareFalloff(origin, pos, o.Damage))
}

// Resolver applies attacks to the robots of a store.
type Resolver struct {
	Options
	Store *entity.Store
}

// Attack resolves an attack by the robot with the ID passed against every other active robot. Damage is
// applied to each target as soon as it is computed, and hit is called with the updated target record
// before the next target is considered, so anything hit does may already affect the rest of the attack.
// Attacks by robots that were destroyed do nothing. The amount of targets hit is returned.
func (r Resolver) Attack(attacker int, hit func(target entity.Robot, damage int)) int {
	a, ok := r.Store.Robot(attacker)
	if !ok || !a.Active() {
		return 0
	}

	var hits int
	for _, candidate := range r.Store.Active() {
		if candidate.ID == attacker {
			continue
		}
		target, _ := r.Store.Robot(candidate.ID)
		if !target.Active() {
			// Destroyed earlier during this same attack.
			continue
		}
		dmg := r.DamageAt(a.Position, a.Heading, target.Position)
		if dmg <= 0 {
			continue
		}
		r.Store.AddDamage(target.ID, dmg)
		target, _ = r.Store.Robot(target.ID)
		hits++
		if hit != nil {
			hit(target, dmg)
		}
	}
	return hits
}
