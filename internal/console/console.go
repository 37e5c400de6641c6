// Package console is the mission-control main menu. Each menu pick starts a
// fresh simulation run with its own depot, roster and journal.
package console

import (
	"context"
	"fmt"
	"log/slog"

	"stratosfear/internal/events"
	"stratosfear/internal/journal"
	"stratosfear/internal/models"
	"stratosfear/internal/roster"
	"stratosfear/internal/simulation"
	"stratosfear/internal/terminal"
)

const (
	menuFull = iota + 1
	menuQuick
	menuExit
	menuProfile
)

// Prompter is everything the console and its runs ask the director
type Prompter interface {
	simulation.Prompter
	AskString(ctx context.Context, prompt, fallback string) (string, error)
}

// Journal records a single run
type Journal interface {
	events.Sink
	ID() string
	Close(summary journal.Summary) (journal.Stats, error)
}

// JournalFunc opens a journal for a new run
type JournalFunc func(run journal.Run) (Journal, error)

// Options configures a Console
type Options struct {
	FuelPool    int
	Catalog     roster.Catalog
	OpenJournal JournalFunc // nil disables journaling
}

// Console drives the menu loop
type Console struct {
	printer  *terminal.Printer
	renderer *terminal.Renderer
	prompt   Prompter
	opts     Options
}

// New creates a console drawing on printer and asking through prompt
func New(printer *terminal.Printer, prompt Prompter, opts Options) *Console {
	return &Console{
		printer:  printer,
		renderer: terminal.NewRenderer(printer),
		prompt:   prompt,
		opts:     opts,
	}
}

// Run shows the menu until the director exits. It returns the prompt error
// (io.EOF or the context's error) when input ends early.
func (c *Console) Run(ctx context.Context) error {
	c.renderer.Emit(events.Event{Kind: events.KindHeading, Message: "STRATOSFEAR MISSION CONTROL"})

	director, err := c.prompt.AskString(ctx, "Enter your name, Director", "Director")
	if err != nil {
		return err
	}

	for {
		c.printMenu()
		choice, err := c.prompt.AskInt(ctx, "Select an option", menuFull, menuProfile)
		if err != nil {
			return err
		}

		switch choice {
		case menuFull:
			err = c.runOnce(ctx, director, simulation.Full)
		case menuQuick:
			err = c.runOnce(ctx, director, simulation.Quick)
		case menuProfile:
			err = c.changeProfile(ctx)
		case menuExit:
			c.printer.Printf("\nShutting down mission control. Goodbye, %s.", director)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) printMenu() {
	c.printer.Println("")
	c.printer.Println("Main Menu")
	c.printer.Rule("-", 40)
	c.printer.Println("1. Run full simulation (interactive)")
	c.printer.Println("2. Run quick status check")
	c.printer.Println("3. Exit")
	c.printer.Printf("4. Change display profile (current: %s)", c.printer.Profile().Name)
}

func (c *Console) changeProfile(ctx context.Context) error {
	profiles := terminal.Profiles()
	current := c.printer.Profile().Name

	items := make([]string, len(profiles))
	for i, p := range profiles {
		items[i] = p.String()
		if p.Name == current {
			items[i] += " (current)"
		}
	}

	idx, err := c.prompt.Choose(ctx, "Display profiles:", items)
	if err != nil || idx < 0 {
		return err
	}

	c.printer.SetProfile(profiles[idx])
	slog.Debug("Display profile changed", "from", current, "to", profiles[idx].Name)
	c.renderer.Emit(events.Event{Kind: events.KindNotice, Message: fmt.Sprintf("Display profile set to %s.", profiles[idx].Name)})
	return nil
}

func (c *Console) runOnce(ctx context.Context, director string, mode simulation.Mode) error {
	j := c.openJournal(director, mode)

	var sink events.Sink = c.renderer
	if j != nil {
		sink = events.Fanout(c.renderer, j)
	}

	run, err := simulation.New(simulation.Settings{
		Director: director,
		Mode:     mode,
		FuelPool: c.opts.FuelPool,
		Catalog:  c.opts.Catalog,
	}, c.prompt, sink)
	if err != nil {
		c.closeJournal(j, journal.Summary{})
		return fmt.Errorf("failed to start simulation: %w", err)
	}

	_, runErr := run.Execute(ctx)

	launched := 0
	for _, m := range run.Missions() {
		if m.Status == models.StatusLaunched {
			launched++
		}
	}
	c.closeJournal(j, journal.Summary{Launched: launched, DepotRemaining: run.Depot().Remaining()})

	if runErr != nil {
		slog.Info("Simulation run ended early", "mode", mode, "error", runErr)
	}
	return runErr
}

func (c *Console) openJournal(director string, mode simulation.Mode) Journal {
	if c.opts.OpenJournal == nil {
		return nil
	}
	j, err := c.opts.OpenJournal(journal.Run{
		Director: director,
		Mode:     mode.String(),
		FuelPool: c.opts.FuelPool,
	})
	if err != nil {
		slog.Warn("Run journal unavailable, continuing without it", "error", err)
		return nil
	}
	return j
}

func (c *Console) closeJournal(j Journal, summary journal.Summary) {
	if j == nil {
		return
	}
	stats, err := j.Close(summary)
	if err != nil {
		slog.Error("Failed to close run journal", "run_id", j.ID(), "error", err)
		return
	}
	msg := fmt.Sprintf("Run %s journaled %d events.", stats.RunID, stats.Written)
	if n := stats.ByKind[events.KindRejected]; n > 0 {
		msg += fmt.Sprintf(" %d rejected actions on record.", n)
	}
	if stats.Dropped > 0 {
		msg += fmt.Sprintf(" %d events could not be saved.", stats.Dropped)
	}
	c.renderer.Emit(events.Event{Kind: events.KindNotice, Message: msg})
}
