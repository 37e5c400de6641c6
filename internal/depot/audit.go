package depot

import "stratosfear/internal/models"

// Audit is a snapshot of where the pool's fuel currently sits
type Audit struct {
	Initial   int
	OnShips   int
	InDepot   int
	Accounted int
}

// Audit totals fuel across the fleet and the depot
func (d *Depot) Audit(fleet []*models.Spacecraft) Audit {
	onShips := 0
	for _, sc := range fleet {
		onShips += sc.CurrentFuel
	}
	return Audit{
		Initial:   d.initial,
		OnShips:   onShips,
		InDepot:   d.remaining,
		Accounted: onShips + d.remaining,
	}
}

// Balanced reports whether no fuel has been created or lost
func (a Audit) Balanced() bool {
	return a.Accounted == a.Initial
}
