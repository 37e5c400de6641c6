package terminal

import (
	"fmt"
	"time"
)

// DefaultProfile is the display profile used when none is configured
const DefaultProfile = "normal"

// Profile controls how fast text crawls onto the screen
type Profile struct {
	Name   string
	Delay  time.Duration // base pause per character
	Jitter time.Duration // random extra pause, up to this much
}

func (p Profile) String() string {
	return fmt.Sprintf("%s - delay=%s  jitter=%s", p.Name, p.Delay, p.Jitter)
}

var builtinProfiles = []Profile{
	{Name: "normal", Delay: 500 * time.Microsecond, Jitter: 4 * time.Millisecond},
	{Name: "slow", Delay: 1500 * time.Microsecond, Jitter: 2 * time.Millisecond},
	{Name: "glitch", Delay: 200 * time.Microsecond, Jitter: 10 * time.Millisecond},
}

// Profiles lists the available display profiles in menu order
func Profiles() []Profile {
	return append([]Profile(nil), builtinProfiles...)
}

// LookupProfile finds a profile by name
func LookupProfile(name string) (Profile, bool) {
	for _, p := range builtinProfiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// ProfileNames lists the profile names, for config validation messages
func ProfileNames() []string {
	names := make([]string, 0, len(builtinProfiles))
	for _, p := range builtinProfiles {
		names = append(names, p.Name)
	}
	return names
}
