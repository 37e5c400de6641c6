package simulation

import (
	"context"
	"fmt"
	"strings"

	"stratosfear/internal/events"
	"stratosfear/internal/models"
	"stratosfear/internal/readiness"
)

func (r *Run) assignCrew(ctx context.Context) error {
	r.info("\n--- ASSIGNING CREW TO SPACECRAFT (INTERACTIVE) ---")
	for _, sc := range r.roster.Fleet {
		r.info("\n--- ASSIGNING CREW FOR %s ---", sc.Name)
		for _, role := range models.Roles {
			if err := r.fillRole(ctx, sc, role); err != nil {
				return err
			}
		}
		r.info("Completed crew assignment for %s.", sc.Name)
	}
	return nil
}

func (r *Run) fillRole(ctx context.Context, sc *models.Spacecraft, role models.Role) error {
	candidates := r.roster.Crew[role]
	items := make([]string, len(candidates))
	for i, m := range candidates {
		items[i] = m.String()
	}

	idx, err := r.prompt.Choose(ctx, fmt.Sprintf("Choose a %s for %s", role.Title(), sc.Name), items)
	if err != nil {
		return err
	}
	if idx < 0 {
		r.emit(events.KindNotice, sc.Name, "%s slot left vacant on %s.", role.Title(), sc.Name)
		return nil
	}
	member := candidates[idx]

	if prev := member.AssignedSpacecraft(); prev != nil && prev != sc {
		move, err := r.prompt.AskYesNo(ctx, fmt.Sprintf("%s already serves on %s. Reassign to %s?", member.Name, prev.Name, sc.Name))
		if err != nil {
			return err
		}
		if move {
			freed, err := prev.UnassignCrewMember(member.Role)
			if err != nil {
				r.reject(prev.Name, err)
				return nil
			}
			r.emit(events.KindCrewUnassigned, prev.Name, "%s removed from %s as %s", freed.Name, prev.Name, freed.Role)
		}
	}

	if err := sc.AssignCrewMember(member); err != nil {
		r.reject(sc.Name, err)
		return nil
	}
	r.emit(events.KindCrewAssigned, sc.Name, "%s assigned as %s to %s", member.Name, member.Role, sc.Name)
	return nil
}

func (r *Run) reportFleet(context.Context) error {
	r.info("\n--- FINAL SPACECRAFT STATUS ---")
	for _, sc := range r.roster.Fleet {
		r.info("%s", sc.String())
		r.info("%s", crewRoster(sc))
	}
	return nil
}

func crewRoster(sc *models.Spacecraft) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\nCrew Roster for %s\n%s", sc.Name, strings.Repeat("-", 40))
	for _, role := range models.Roles {
		if m := sc.CrewMember(role); m != nil {
			fmt.Fprintf(&b, "\n  %s: %s (XP %d)", role.Title(), m.Name, m.Experience)
		} else {
			fmt.Fprintf(&b, "\n  %s: [Unassigned]", role.Title())
		}
	}
	return b.String()
}

func (r *Run) checkFleet(context.Context) error {
	r.info("\n--- CHECKING FLEET READINESS ---")
	for _, sc := range r.roster.Fleet {
		r.reportReadiness(readiness.Check(sc))
	}
	return nil
}

func (r *Run) reportReadiness(res readiness.Result) {
	r.emit(events.KindCrewExperience, res.Spacecraft, "%s experience score: %d (%s, fuel %.0f%% of %d%% required)",
		res.Spacecraft, res.Score, res.Tier, res.FuelRatio*100, res.RequiredPercent)
	if res.Ready {
		r.emit(events.KindSpacecraftReady, res.Spacecraft, "%s is prepped for launch!", res.Spacecraft)
		return
	}
	r.emit(events.KindSpacecraftNotReady, res.Spacecraft, "%s: %s", res.Spacecraft, strings.Join(res.Reasons(), ", "))
}
