package terminal

import (
	"strings"

	"stratosfear/internal/events"
)

const bannerWidth = 60

type style struct {
	tag    string
	indent bool
}

var styles = map[events.Kind]style{
	events.KindNotice:             {"INFO", true},
	events.KindSummary:            {"SUMMARY", false},
	events.KindCheck:              {"CHECK", true},
	events.KindWarning:            {"WARNING", true},
	events.KindFuelAllocated:      {"FUEL", true},
	events.KindFuelReclaimed:      {"FUEL", true},
	events.KindDepot:              {"DEPOT", true},
	events.KindCrewAssigned:       {"CREW", true},
	events.KindCrewUnassigned:     {"CREW", true},
	events.KindCrewExperience:     {"CREW XP", true},
	events.KindSpacecraftReady:    {"READY", true},
	events.KindSpacecraftNotReady: {"NOT READY", true},
	events.KindSpacecraftFit:      {"OK", true},
	events.KindSpacecraftUnfit:    {"NOPE", true},
	events.KindSpacecraftAssigned: {"MISSION", true},
	events.KindPassengerBooked:    {"BOOKED", true},
	events.KindMissionReady:       {"READY", true},
	events.KindMissionLaunched:    {"LAUNCH", false},
	events.KindMissionHeld:        {"HOLD", false},
	events.KindMissionSkipped:     {"SKIP", false},
	events.KindRejected:           {"ERROR", true},
}

// Format turns an event into the lines shown on screen
func Format(e events.Event) []string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}

	switch e.Kind {
	case events.KindHeading:
		rule := strings.Repeat("=", bannerWidth)
		return []string{"", rule, "       " + msg, rule}
	case events.KindInfo:
		return strings.Split(msg, "\n")
	}

	st, ok := styles[e.Kind]
	if !ok {
		return []string{msg}
	}
	line := "[" + st.tag + "] " + msg
	if st.indent {
		line = "  " + line
	}
	return []string{line}
}

// Renderer prints events through a Printer
type Renderer struct {
	printer *Printer
}

// NewRenderer creates an events.Sink that draws on p
func NewRenderer(p *Printer) *Renderer {
	return &Renderer{printer: p}
}

// Emit prints every line of the formatted event
func (r *Renderer) Emit(e events.Event) {
	for _, line := range Format(e) {
		r.printer.Println(line)
	}
}
