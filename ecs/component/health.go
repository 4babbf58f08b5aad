package component

type Health struct {
	Current float64
	Max     float64
}

func NewHealth(max float64) Health {
	return Health{Current: max, Max: max}
}

// TakeDamage subtracts amount and reports whether health reached zero.
func (h *Health) TakeDamage(amount float64) bool {
	h.Current -= amount
	return h.Current <= 0
}

// Heal adds amount, clamped to [1, Max].
func (h *Health) Heal(amount float64) {
	h.Current = min(max(h.Current+amount, 1), h.Max)
}

var HealthComponent = NewComponent[Health]()
