package simulation

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/robobattle/assert"
	"github.com/oomph-ac/robobattle/entity"
	"github.com/oomph-ac/robobattle/game"
	"github.com/oomph-ac/robobattle/omath"
)

// startEpsilon is the path parameter below which an intersection is considered to be at the start of a
// move.
const startEpsilon = 1e-9

// Move is the candidate straight line movement of a single robot for one turn.
type Move struct {
	ID         int
	Start, End mgl64.Vec2
}

// Obstacle is the party a robot collided with: either another robot or one of the arena borders.
type Obstacle struct {
	// Robot is the ID of the robot collided with. It is only valid if IsBorder is false.
	Robot int
	// Border is the border collided with. It is only valid if IsBorder is true.
	Border   game.Border
	IsBorder bool
}

// Outcome is the resolved movement of a robot for one turn.
type Outcome struct {
	ID int
	// Position is the final position of the robot, clipped at its nearest collision if it had one.
	Position mgl64.Vec2
	// Collided is true if the path of the robot was blocked this turn.
	Collided bool
	// Obstacle is what blocked the robot. It is only valid if Collided is true.
	Obstacle Obstacle
}

// CandidateMove returns the move a robot would make if nothing blocked it, based on its speed and
// heading and the time elapsed since it last moved.
func CandidateMove(r entity.Robot, now time.Time) Move {
	elapsed := math.Max(0, now.Sub(r.LastMove).Seconds())
	delta := omath.Direction(r.Heading).Mul(r.Speed * elapsed)
	return Move{ID: r.ID, Start: r.Position, End: r.Position.Add(delta)}
}

// MovementSimulator resolves the moves of all active robots within an arena.
type MovementSimulator struct {
	Arena game.Arena
}

// Resolve intersects every move with every other move and with the arena borders, and clips each move
// at the collision nearest to its start. Moves are resolved against their unclipped paths, so the order
// of moves does not change which robots collide, only which obstacle wins an exact tie.
func (s MovementSimulator) Resolve(moves []Move) []Outcome {
	outcomes := make([]Outcome, len(moves))
	nearest := make([]float64, len(moves))
	for i, m := range moves {
		outcomes[i] = Outcome{ID: m.ID, Position: m.End}
		nearest[i] = math.Inf(1)
	}

	consider := func(i int, p mgl64.Vec2, o Obstacle) {
		if d := p.Sub(moves[i].Start).Len(); d < nearest[i] {
			nearest[i] = d
			outcomes[i].Position = p
			outcomes[i].Collided = true
			outcomes[i].Obstacle = o
		}
	}

	for i := 0; i < len(moves); i++ {
		for j := i + 1; j < len(moves); j++ {
			a, b := moves[i], moves[j]
			p, t, u, ok := omath.SegmentIntersectParams(a.Start, a.End, b.Start, b.End)
			if !ok {
				// Robots driving straight at each other along the same line.
				if p, t, u, ok = omath.CollinearMeet(a.Start, a.End, b.Start, b.End); !ok {
					continue
				}
			}
			// Robots that collided previously share a start point. Moving away from it is not a collision.
			if t < startEpsilon && u < startEpsilon {
				continue
			}
			consider(i, p, Obstacle{Robot: b.ID})
			consider(j, p, Obstacle{Robot: a.ID})
		}
	}

	for i, m := range moves {
		dir := m.End.Sub(m.Start)
		for _, b := range game.Borders {
			seg := s.Arena.Segment(b)
			p, t, _, ok := omath.SegmentIntersectParams(m.Start, m.End, seg.Start, seg.End)
			if !ok {
				continue
			}
			// A robot resting on a border may always move back into the arena.
			if t < startEpsilon && dir.Dot(b.InwardNormal()) > 0 {
				continue
			}
			consider(i, p, Obstacle{Border: b, IsBorder: true})
		}
	}

	for i := range outcomes {
		outcomes[i].Position = s.Arena.Clamp(outcomes[i].Position)
		assert.IsTrue(s.Arena.Contains(outcomes[i].Position), "robot %d resolved outside the arena: %v", outcomes[i].ID, outcomes[i].Position)
	}
	return outcomes
}
