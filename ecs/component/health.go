package component

type Health struct {
	Current float64
	Max     float64
}

func NewHealth(max float64) *Health {
	return &Health{Current: max, Max: max}
}

var HealthComponent = NewComponent[Health]()
