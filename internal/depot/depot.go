// Package depot tracks the shared fuel pool every spacecraft draws from.
package depot

import (
	"errors"
	"fmt"

	"stratosfear/internal/models"
)

// DefaultPool is the fuel available to a run when nothing else is configured
const DefaultPool = 25000

var (
	// ErrOverAllocation is returned when an allocation exceeds free tank space or depot stock
	ErrOverAllocation = errors.New("fuel allocation out of bounds")
	// ErrInsufficientFuel is returned when reclaiming more fuel than a ship carries
	ErrInsufficientFuel = errors.New("fuel reclaim out of bounds")
	// ErrInvalidPool is returned for a negative starting pool
	ErrInvalidPool = errors.New("invalid fuel pool")
)

// Depot holds the fuel that is not currently aboard a spacecraft
type Depot struct {
	initial   int
	remaining int
}

// Transfer describes a completed movement of fuel between the depot and a ship
type Transfer struct {
	Spacecraft     string
	Amount         int
	ShipFuel       int
	ShipCapacity   int
	DepotRemaining int
}

// New creates a depot holding the full pool
func New(pool int) (*Depot, error) {
	if pool < 0 {
		return nil, fmt.Errorf("%w: must not be negative, got %d", ErrInvalidPool, pool)
	}
	return &Depot{initial: pool, remaining: pool}, nil
}

// Initial returns the pool the depot started with
func (d *Depot) Initial() int {
	return d.initial
}

// Remaining returns fuel still held in the depot
func (d *Depot) Remaining() int {
	return d.remaining
}

// Empty reports whether the depot has no fuel left to hand out
func (d *Depot) Empty() bool {
	return d.remaining <= 0
}

// MaxAllocation is the most fuel that can be loaded into sc right now
func (d *Depot) MaxAllocation(sc *models.Spacecraft) int {
	return max(0, min(sc.FreeCapacity(), d.remaining))
}

// Allocate moves amount units from the depot into the ship's tanks
func (d *Depot) Allocate(sc *models.Spacecraft, amount int) (Transfer, error) {
	limit := d.MaxAllocation(sc)
	if amount < 0 || amount > limit {
		return Transfer{}, fmt.Errorf("%w: %d units for %s (allowed 0-%d)", ErrOverAllocation, amount, sc.Name, limit)
	}
	sc.CurrentFuel += amount
	d.remaining -= amount
	return d.transfer(sc, amount), nil
}

// Reclaim moves amount units from the ship's tanks back into the depot
func (d *Depot) Reclaim(sc *models.Spacecraft, amount int) (Transfer, error) {
	if amount < 0 || amount > sc.CurrentFuel {
		return Transfer{}, fmt.Errorf("%w: %d units from %s (carrying %d)", ErrInsufficientFuel, amount, sc.Name, sc.CurrentFuel)
	}
	sc.CurrentFuel -= amount
	d.remaining += amount
	return d.transfer(sc, amount), nil
}

func (d *Depot) transfer(sc *models.Spacecraft, amount int) Transfer {
	return Transfer{
		Spacecraft:     sc.Name,
		Amount:         amount,
		ShipFuel:       sc.CurrentFuel,
		ShipCapacity:   sc.FuelCapacity,
		DepotRemaining: d.remaining,
	}
}
