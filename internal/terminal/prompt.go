package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks the director questions and re-prompts until the answer is valid.
// It only fails when input ends or the context is cancelled.
type Prompter struct {
	printer *Printer
	lines   <-chan string
}

// NewPrompter starts reading lines from in. Lines are delivered through a
// channel so a blocked prompt can still observe context cancellation.
func NewPrompter(in io.Reader, printer *Printer) *Prompter {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return &Prompter{printer: printer, lines: lines}
}

func (p *Prompter) readLine(ctx context.Context, prompt string) (string, error) {
	p.printer.Prompt(prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// AskString reads a free-form answer, returning fallback for an empty line
func (p *Prompter) AskString(ctx context.Context, prompt, fallback string) (string, error) {
	answer, err := p.readLine(ctx, prompt+": ")
	if err != nil {
		return "", err
	}
	if answer == "" {
		return fallback, nil
	}
	return answer, nil
}

// AskInt reads an integer in [minValue, maxValue]
func (p *Prompter) AskInt(ctx context.Context, prompt string, minValue, maxValue int) (int, error) {
	for {
		raw, err := p.readLine(ctx, prompt+": ")
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			p.printer.Println("  Please enter a valid integer.")
			continue
		}
		if value < minValue {
			p.printer.Printf("  Value must be at least %d.", minValue)
			continue
		}
		if value > maxValue {
			p.printer.Printf("  Value must be at most %d.", maxValue)
			continue
		}
		return value, nil
	}
}

// AskYesNo reads y/yes or n/no
func (p *Prompter) AskYesNo(ctx context.Context, prompt string) (bool, error) {
	for {
		raw, err := p.readLine(ctx, prompt+" (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(raw) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.printer.Println("  Please enter 'y' or 'n'.")
	}
}

// Choose shows a numbered list and returns the chosen index, or -1 for cancel
func (p *Prompter) Choose(ctx context.Context, prompt string, items []string) (int, error) {
	if len(items) == 0 {
		p.printer.Println("No options available.")
		return -1, nil
	}

	p.printer.Println("")
	p.printer.Println(prompt)
	p.printer.Rule("-", 40)
	for i, item := range items {
		p.printer.Println(fmt.Sprintf("%d. %s", i+1, item))
	}
	p.printer.Println("0. Cancel / Done")

	choice, err := p.AskInt(ctx, "Select an option", 0, len(items))
	if err != nil {
		return -1, err
	}
	return choice - 1, nil
}
