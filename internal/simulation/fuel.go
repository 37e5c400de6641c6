package simulation

import (
	"context"
	"fmt"

	"stratosfear/internal/events"
	"stratosfear/internal/models"
)

const (
	rebalanceReclaim = iota
	rebalanceAllocate
)

func (r *Run) allocateFuel(ctx context.Context) error {
	r.info("\n--- REFUELING FLEET ---")
	r.info("Total fuel available in depot: %s units", units(r.depot.Remaining()))

	for i, sc := range r.roster.Fleet {
		if r.depot.Empty() {
			r.emit(events.KindNotice, "", "Fuel depot is empty. No more fuel can be assigned.")
			break
		}

		r.info("\nSpacecraft #%d: %s", i+1, sc.Name)
		r.info("  Fuel capacity: %s units", units(sc.FuelCapacity))
		r.info("  Fuel currently on board: %s units", units(sc.CurrentFuel))
		r.info("  Fuel remaining in depot: %s units", units(r.depot.Remaining()))

		limit := r.depot.MaxAllocation(sc)
		if limit <= 0 {
			r.emit(events.KindNotice, sc.Name, "This ship cannot take any more fuel.")
			continue
		}

		amount, err := r.prompt.AskInt(ctx, fmt.Sprintf("  Enter fuel to load into %s (0-%d)", sc.Name, limit), 0, limit)
		if err != nil {
			return err
		}
		r.loadFuel(sc, amount)
	}

	r.emit(events.KindSummary, "", "Fuel left in depot after initial allocation: %s units", units(r.depot.Remaining()))
	return nil
}

func (r *Run) rebalanceFuel(ctx context.Context) error {
	review, err := r.prompt.AskYesNo(ctx, "Would you like to review and re-balance fuel allocations before mission planning?")
	if err != nil || !review {
		return err
	}

	options := []string{
		"Move fuel from a ship back to the depot",
		"Add fuel from the depot to a ship",
	}
	for {
		r.info("\n--- FUEL REVIEW & RE-BALANCE ---")
		for i, sc := range r.roster.Fleet {
			r.info("%d. %s: %s/%s units", i+1, sc.Name, units(sc.CurrentFuel), units(sc.FuelCapacity))
		}
		r.info("Depot fuel remaining: %s units", units(r.depot.Remaining()))

		choice, err := r.prompt.Choose(ctx, "Re-balance options:", options)
		if err != nil {
			return err
		}

		switch choice {
		case rebalanceReclaim:
			err = r.reclaimInteractive(ctx)
		case rebalanceAllocate:
			err = r.allocateInteractive(ctx)
		default:
			r.emit(events.KindSummary, "", "Final depot fuel after re-balance: %s units", units(r.depot.Remaining()))
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (r *Run) reclaimInteractive(ctx context.Context) error {
	sc, err := r.chooseShip(ctx, "Select ship to remove fuel from:")
	if err != nil || sc == nil {
		return err
	}
	if sc.CurrentFuel <= 0 {
		r.emit(events.KindNotice, sc.Name, "That ship has no fuel to remove.")
		return nil
	}

	amount, err := r.prompt.AskInt(ctx, fmt.Sprintf("  Enter fuel to remove from %s (0-%d)", sc.Name, sc.CurrentFuel), 0, sc.CurrentFuel)
	if err != nil {
		return err
	}

	tr, err := r.depot.Reclaim(sc, amount)
	if err != nil {
		r.reject(sc.Name, err)
		return nil
	}
	r.emit(events.KindFuelReclaimed, sc.Name, "%s had %s units removed; now %s / %s units",
		sc.Name, units(tr.Amount), units(tr.ShipFuel), units(tr.ShipCapacity))
	r.emit(events.KindDepot, "", "Fuel remaining in depot: %s units", units(tr.DepotRemaining))
	return nil
}

func (r *Run) allocateInteractive(ctx context.Context) error {
	if r.depot.Empty() {
		r.emit(events.KindNotice, "", "The depot has no remaining fuel to allocate.")
		return nil
	}
	sc, err := r.chooseShip(ctx, "Select ship to add fuel to:")
	if err != nil || sc == nil {
		return err
	}

	limit := r.depot.MaxAllocation(sc)
	if limit <= 0 {
		r.emit(events.KindNotice, sc.Name, "That ship cannot take any more fuel.")
		return nil
	}

	amount, err := r.prompt.AskInt(ctx, fmt.Sprintf("  Enter fuel to add to %s (0-%d)", sc.Name, limit), 0, limit)
	if err != nil {
		return err
	}
	r.loadFuel(sc, amount)
	return nil
}

func (r *Run) loadFuel(sc *models.Spacecraft, amount int) {
	tr, err := r.depot.Allocate(sc, amount)
	if err != nil {
		r.reject(sc.Name, err)
		return
	}
	r.emit(events.KindFuelAllocated, sc.Name, "%s refueled to %s / %s units",
		sc.Name, units(tr.ShipFuel), units(tr.ShipCapacity))
	r.emit(events.KindDepot, "", "Fuel remaining in depot: %s units", units(tr.DepotRemaining))
}

// chooseShip returns nil when the director cancels
func (r *Run) chooseShip(ctx context.Context, prompt string) (*models.Spacecraft, error) {
	fleet := r.roster.Fleet
	items := make([]string, len(fleet))
	for i, sc := range fleet {
		items[i] = fmt.Sprintf("%s: %s/%s units", sc.Name, units(sc.CurrentFuel), units(sc.FuelCapacity))
	}
	idx, err := r.prompt.Choose(ctx, prompt, items)
	if err != nil || idx < 0 {
		return nil, err
	}
	return fleet[idx], nil
}
