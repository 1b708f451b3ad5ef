package robobattle

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/robobattle/assert"
	"github.com/oomph-ac/robobattle/combat"
	"github.com/oomph-ac/robobattle/entity"
	"github.com/oomph-ac/robobattle/event"
	"github.com/oomph-ac/robobattle/game"
	"github.com/oomph-ac/robobattle/oerror"
	"github.com/oomph-ac/robobattle/robot"
	"github.com/oomph-ac/robobattle/settings"
	"github.com/oomph-ac/robobattle/simulation"
	"github.com/oomph-ac/robobattle/utils"
	"github.com/sirupsen/logrus"
)

// RecoverFunc is called with the value recovered from a controller that panicked while handling an
// event. r is the record of the robot whose controller panicked.
type RecoverFunc func(r entity.Robot, ev event.Event, v any)

// Option configures a Battle.
type Option func(b *Battle)

// WithClock makes the battle read time from c instead of the wall clock.
func WithClock(c Clock) Option {
	return func(b *Battle) {
		b.clock = c
	}
}

// WithObserver adds an observer to the battle.
func WithObserver(o Observer) Option {
	return func(b *Battle) {
		b.observers = append(b.observers, o)
	}
}

// WithRecoverFunc sets the function called when a controller panics.
func WithRecoverFunc(f RecoverFunc) Option {
	return func(b *Battle) {
		b.recoverFunc = f
	}
}

// Battle runs a battle between robots. It owns every robot record and is the only thing that mutates
// them. Controllers are driven synchronously: one notification is delivered at a time and every command
// a controller issues takes effect before the call returns.
//
// A Battle is not safe for concurrent use.
type Battle struct {
	log *logrus.Logger
	s   settings.Settings

	clock       Clock
	observers   []Observer
	recoverFunc RecoverFunc

	store       *entity.Store
	controllers []robot.Controller
	movement    simulation.MovementSimulator
	combat      combat.Resolver

	started bool
	turn    int
}

// New returns a new battle configured by the settings passed. Robots must be added using Add before the
// battle is started.
func New(log *logrus.Logger, s settings.Settings, opts ...Option) *Battle {
	if log == nil {
		log = logrus.New()
		log.Out = io.Discard
	}
	store := entity.NewStore(s.Robot.MaxSpeed)
	b := &Battle{
		log:      log,
		s:        s,
		clock:    SystemClock{},
		store:    store,
		movement: simulation.MovementSimulator{Arena: game.Arena{Width: s.Arena.Width, Height: s.Arena.Height}},
		combat: combat.Resolver{
			Options: combat.Options{Angle: s.Combat.AttackAngle, Damage: s.Combat.AttackDamage},
			Store:   store,
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Arena returns the arena the battle takes place in.
func (b *Battle) Arena() game.Arena {
	return b.movement.Arena
}

// Add adds a robot with the name passed at pos, clamped to the arena, and creates its controller using
// f. The ID of the robot is returned. Add panics if the battle was already started.
func (b *Battle) Add(name string, pos mgl64.Vec2, f robot.Factory) int {
	assert.IsTrue(!b.started, "robot %s added after the battle started", name)

	id := b.store.Add(name, b.Arena().Clamp(pos), time.Time{})
	b.controllers = append(b.controllers, robot.NopController{})
	if f != nil {
		if c := f(&commander{b: b, id: id}, id); c != nil {
			b.controllers[id] = c
		}
	}
	return id
}

// Robot returns a copy of the record of the robot with the ID passed.
func (b *Battle) Robot(id int) (entity.Robot, bool) {
	return b.store.Robot(id)
}

// Robots returns a copy of every robot record in creation order.
func (b *Battle) Robots() []entity.Robot {
	return b.store.All()
}

// CurrentTurn returns the last turn that was started, or 0 if no turn ran yet.
func (b *Battle) CurrentTurn() int {
	return b.turn
}

// Over returns true once at most one robot is active or the turn limit was reached.
func (b *Battle) Over() bool {
	return len(b.store.Active()) <= 1 || b.turn >= b.s.Simulation.MaxTurns
}

// Result returns the outcome of the battle so far.
func (b *Battle) Result() Result {
	survivors := b.store.Active()
	return Result{
		Turns:     b.turn,
		Survivors: survivors,
		Stalemate: len(survivors) > 1,
	}
}

// Start notifies every robot of its starting position and starts the clock. It returns an error if the
// battle was already started or ctx is done.
func (b *Battle) Start(ctx context.Context) error {
	if b.started {
		return oerror.New("battle already started")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	b.started = true

	now := b.clock.Now()
	for _, r := range b.store.All() {
		b.store.Move(r.ID, r.Position, now)
	}

	fields := orderedmap.NewOrderedMap[string, any]()
	fields.Set("robots", b.store.Len())
	fields.Set("arena", fmt.Sprintf("%vx%v", b.s.Arena.Width, b.s.Arena.Height))
	fields.Set("max_turns", b.s.Simulation.MaxTurns)
	b.log.Infof("battle started %s", utils.OrderedMapToString(fields))

	for _, r := range b.store.All() {
		b.dispatch(r.ID, event.Started{Position: r.Position})
	}
	return nil
}

// Turn simulates a single turn. Every active robot receives the radar, after which all active robots
// move at once and robots whose movement was blocked are notified. Turn returns false without doing
// anything if the battle is over or ctx is done, and otherwise true.
func (b *Battle) Turn(ctx context.Context) bool {
	assert.IsTrue(b.started, "turn simulated before the battle started")
	if ctx.Err() != nil || b.Over() {
		return false
	}
	b.turn++

	blips := b.radar()
	for _, r := range b.store.Active() {
		if cur, _ := b.store.Robot(r.ID); !cur.Active() {
			// Destroyed by an attack earlier in this turn.
			continue
		}
		b.dispatch(r.ID, event.RadarUpdated{NopEvent: event.NopEvent{EvTurn: b.turn}, Blips: append([]event.Blip(nil), blips...)})
	}

	now := b.clock.Now()
	active := b.store.Active()
	moves := make([]simulation.Move, len(active))
	for i, r := range active {
		moves[i] = simulation.CandidateMove(r, now)
	}
	outcomes := b.movement.Resolve(moves)
	for _, o := range outcomes {
		b.store.Move(o.ID, o.Position, now)
	}

	var bumped []simulation.Outcome
	for _, o := range outcomes {
		if o.Collided {
			b.store.SetSpeed(o.ID, 0)
			bumped = append(bumped, o)
		}
	}
	for _, o := range bumped {
		ev := event.Bumped{NopEvent: event.NopEvent{EvTurn: b.turn}, RobotID: -1}
		if o.Obstacle.IsBorder {
			ev.Obstacle = o.Obstacle.Border.String()
		} else {
			other, _ := b.store.Robot(o.Obstacle.Robot)
			ev.Obstacle, ev.RobotID = other.Name, other.ID
		}
		b.dispatch(o.ID, ev)
	}

	robots := b.store.All()
	for _, o := range b.observers {
		o.HandleTurn(b.turn, robots)
	}
	if b.log.IsLevelEnabled(logrus.DebugLevel) {
		fields := orderedmap.NewOrderedMap[string, any]()
		fields.Set("moved", len(moves))
		fields.Set("bumped", len(bumped))
		fields.Set("active", len(b.store.Active()))
		b.log.Debugf("turn %d finished %s", b.turn, utils.OrderedMapToString(fields))
	}
	return !b.Over()
}

// Run starts the battle if needed and simulates turns until it is over, pausing between turns for the
// configured turn interval. If ctx is done before the battle is over, the result so far is returned
// along with the error of ctx.
func (b *Battle) Run(ctx context.Context) (Result, error) {
	if !b.started {
		if err := b.Start(ctx); err != nil {
			return b.Result(), err
		}
	}

	interval := b.s.TurnInterval()
	for !b.Over() {
		if err := ctx.Err(); err != nil {
			return b.Result(), err
		}
		if !b.Turn(ctx) {
			break
		}
		if interval > 0 {
			if err := b.clock.Sleep(ctx, interval); err != nil {
				return b.Result(), err
			}
		}
	}
	if err := ctx.Err(); err != nil && !b.Over() {
		return b.Result(), err
	}

	res := b.Result()
	b.log.Infof("battle ended after %d turns: %s", res.Turns, res)
	return res, nil
}

// radar returns the blips of every robot, destroyed ones included, in creation order.
func (b *Battle) radar() []event.Blip {
	robots := b.store.All()
	blips := make([]event.Blip, len(robots))
	for i, r := range robots {
		blips[i] = event.Blip{ID: r.ID, Name: r.Name, Position: r.Position, Active: r.Active()}
	}
	return blips
}

// attack resolves an attack by the robot with the ID passed and notifies every robot it damaged.
func (b *Battle) attack(id int) {
	attacker, _ := b.store.Robot(id)
	hits := b.combat.Attack(id, func(target entity.Robot, damage int) {
		if !target.Active() {
			b.log.Infof("%s was destroyed by %s", target.Name, attacker.Name)
		}
		b.dispatch(target.ID, event.Attacked{
			NopEvent:   event.NopEvent{EvTurn: b.turn},
			Attacker:   attacker.Name,
			AttackerID: attacker.ID,
			Damage:     damage,
		})
	})
	b.log.Debugf("turn %d: %s attacked and hit %d robots", b.turn, attacker.Name, hits)
}

// dispatch delivers an event to the controller of a robot, recovering from any panic in the controller.
func (b *Battle) dispatch(id int, ev event.Event) {
	r, _ := b.store.Robot(id)
	for _, o := range b.observers {
		o.HandleEvent(r, ev)
	}
	b.log.Debugf("turn %d: %s <- %s", ev.Turn(), r.Name, ev.Name())

	defer func() {
		if v := recover(); v != nil {
			b.log.Warnf("controller of %s panicked handling %s: %v", r.Name, ev.Name(), v)
			if b.recoverFunc != nil {
				b.recoverFunc(r, ev, v)
			}
		}
	}()

	c := b.controllers[id]
	switch ev := ev.(type) {
	case event.Started:
		c.HandleStarted(ev)
	case event.RadarUpdated:
		c.HandleRadarUpdated(ev)
	case event.Attacked:
		c.HandleAttacked(ev)
	case event.Bumped:
		c.HandleBumped(ev)
	default:
		panic(oerror.New("unknown event %T", ev))
	}
}
