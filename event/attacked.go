package event

// Attacked is delivered to a robot that took damage from an attack.
type Attacked struct {
	NopEvent

	// Attacker is the display identity of the attacking robot.
	Attacker   string
	AttackerID int
	// Damage is the damage dealt by this attack.
	Damage int
}

func (Attacked) ID() byte {
	return IDAttacked
}

func (Attacked) Name() string {
	return "attacked"
}
