// Package readiness decides whether a spacecraft is cleared for launch.
//
// Experienced crews are trusted with a thinner fuel margin: the summed crew
// experience picks a tier, and the tier sets the minimum fuel ratio. A captain
// is always required. Results are never cached; every Check recomputes.
package readiness

import (
	"stratosfear/internal/models"
)

// Tier classifies a crew by summed experience
type Tier int

const (
	Rookie Tier = iota
	Veteran
	Elite
)

// Experience score boundaries; both are inclusive
const (
	VeteranScore = 30
	EliteScore   = 60
)

// TierFor returns the tier for a summed crew experience score
func TierFor(score int) Tier {
	switch {
	case score >= EliteScore:
		return Elite
	case score >= VeteranScore:
		return Veteran
	default:
		return Rookie
	}
}

// RequiredPercent is the minimum fuel fill, in whole percent, for the tier
func (t Tier) RequiredPercent() int {
	switch t {
	case Elite:
		return 40
	case Veteran:
		return 45
	default:
		return 50
	}
}

func (t Tier) String() string {
	switch t {
	case Elite:
		return "ELITE CREW"
	case Veteran:
		return "VETERAN CREW"
	default:
		return "ROOKIE CREW"
	}
}

// Flavor is the descriptor used when announcing a launch
func (t Tier) Flavor() string {
	switch t {
	case Elite:
		return "with a legendary, battle-tested crew"
	case Veteran:
		return "with a seasoned veteran crew"
	default:
		return "with a green but eager crew"
	}
}

// Result is the outcome of one readiness evaluation
type Result struct {
	Spacecraft      string
	Score           int
	Tier            Tier
	FuelRatio       float64
	RequiredPercent int
	HasFuel         bool
	HasCaptain      bool
	Ready           bool
}

// Reasons lists what blocks launch clearance; empty when ready
func (r Result) Reasons() []string {
	var reasons []string
	if !r.HasFuel {
		reasons = append(reasons, "needs more fuel")
	}
	if !r.HasCaptain {
		reasons = append(reasons, "needs a captain")
	}
	return reasons
}

// Evaluate is the pure readiness rule over fuel, capacity, crew score and captain presence
func Evaluate(currentFuel, fuelCapacity, score int, hasCaptain bool) Result {
	tier := TierFor(score)
	pct := tier.RequiredPercent()

	ratio := 0.0
	hasFuel := false
	if fuelCapacity > 0 {
		ratio = float64(currentFuel) / float64(fuelCapacity)
		// integer form of ratio >= pct/100 keeps the boundaries exact
		hasFuel = currentFuel*100 >= pct*fuelCapacity
	}

	return Result{
		Score:           score,
		Tier:            tier,
		FuelRatio:       ratio,
		RequiredPercent: pct,
		HasFuel:         hasFuel,
		HasCaptain:      hasCaptain,
		Ready:           hasFuel && hasCaptain,
	}
}

// Check evaluates sc as it is now and refreshes its Ready flag
func Check(sc *models.Spacecraft) Result {
	r := Evaluate(sc.CurrentFuel, sc.FuelCapacity, sc.CrewExperienceScore(), sc.HasCaptain())
	r.Spacecraft = sc.Name
	sc.Ready = r.Ready
	return r
}
