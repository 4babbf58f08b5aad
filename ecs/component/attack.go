package component

// EnemyAttack deals MinDamage plus up to DamageSpread each time Timer
// completes while the enemy is alert and within Range of the player.
type EnemyAttack struct {
	Range        float64
	MinDamage    float64
	DamageSpread float64
	Timer        Timer
}

var EnemyAttackComponent = NewComponent[EnemyAttack]()
