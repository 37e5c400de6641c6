// Package terminal renders the old-school green mission-control screen:
// paced character output, display profiles, prompts and event formatting.
package terminal

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ANSI colors for the green terminal look
const (
	Green = "\033[92m"
	Reset = "\033[0m"
)

// Color modes accepted by Stdout
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Printer writes lines one character at a time according to a Profile
type Printer struct {
	out     io.Writer
	profile Profile
	color   bool
	paced   bool
	rng     *rand.Rand
	sleep   func(time.Duration)
}

// Option configures a Printer
type Option func(*Printer)

// WithColor wraps every line in green
func WithColor(enabled bool) Option {
	return func(p *Printer) { p.color = enabled }
}

// WithPacing turns the character crawl on or off
func WithPacing(enabled bool) Option {
	return func(p *Printer) { p.paced = enabled }
}

// WithSleep replaces time.Sleep, for tests
func WithSleep(sleep func(time.Duration)) Option {
	return func(p *Printer) { p.sleep = sleep }
}

// NewPrinter creates a paced printer writing to out
func NewPrinter(out io.Writer, profile Profile, opts ...Option) *Printer {
	p := &Printer{
		out:     out,
		profile: profile,
		paced:   true,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stdout returns a writer for the process's standard output, whether lines
// should be colored, and whether stdout is an interactive terminal. On Windows
// consoles the writer translates ANSI escapes; without color they are stripped.
func Stdout(colorMode string) (w io.Writer, color bool, tty bool) {
	fd := os.Stdout.Fd()
	tty = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	color = tty
	switch colorMode {
	case ColorAlways:
		color = true
	case ColorNever:
		color = false
	}

	if !color {
		return colorable.NewNonColorable(os.Stdout), false, tty
	}
	return colorable.NewColorableStdout(), true, tty
}

// Profile returns the active display profile
func (p *Printer) Profile() Profile {
	return p.profile
}

// SetProfile switches the display profile for subsequent output
func (p *Printer) SetProfile(profile Profile) {
	p.profile = profile
}

// Println crawls text onto the screen followed by a newline
func (p *Printer) Println(text string) {
	if p.color {
		io.WriteString(p.out, Green)
	}
	p.crawl(text)
	if p.color {
		io.WriteString(p.out, Reset)
	}
	io.WriteString(p.out, "\n")
}

// Printf formats and crawls a line
func (p *Printer) Printf(format string, args ...any) {
	p.Println(fmt.Sprintf(format, args...))
}

// Prompt writes an input prompt immediately, without a newline
func (p *Printer) Prompt(text string) {
	if p.color {
		io.WriteString(p.out, Green+text+Reset)
		return
	}
	io.WriteString(p.out, text)
}

// Rule prints a horizontal line of the given character
func (p *Printer) Rule(char string, width int) {
	p.Println(strings.Repeat(char, width))
}

func (p *Printer) crawl(text string) {
	if !p.paced || (p.profile.Delay <= 0 && p.profile.Jitter <= 0) {
		io.WriteString(p.out, text)
		return
	}
	for _, r := range text {
		io.WriteString(p.out, string(r))
		pause := p.profile.Delay
		if p.profile.Jitter > 0 {
			pause += time.Duration(p.rng.Int63n(int64(p.profile.Jitter)))
		}
		if pause > 0 {
			p.sleep(pause)
		}
	}
}
