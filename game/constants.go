package game

const (
	// DestroyedDamage is the amount of accumulated damage at which a robot stops being active.
	DestroyedDamage = 100
	// SpawnInsetFraction is the fraction of the smaller arena side kept clear along each wall when
	// placing robots at the start of a battle.
	SpawnInsetFraction = 0.1
)
