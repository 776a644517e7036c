package audio

import "strings"

// Device describes an audio capture endpoint.
type Device struct {
	ID                int
	Name              string
	MaxInputChannels  int
	MaxOutputChannels int
	DefaultSampleRate float64
}

// loopbackHints are name fragments identifying loopback devices — endpoints
// that capture the system's own output (BlackHole, Soundflower, ...) rather
// than a microphone. Matching is case-insensitive.
var loopbackHints = []string{
	"blackhole",
	"soundflower",
	"loopback",
	"eqmac",
	"multi-output",
}

// Predicate reports whether a device is an acceptable capture candidate.
type Predicate func(Device) bool

// Policy is an ordered list of predicates. Earlier predicates take priority:
// all devices are scanned with the first predicate before the second is
// consulted.
type Policy []Predicate

// NameContainsAny returns a predicate matching devices whose name contains
// any of the given substrings, case-insensitively. Output-only devices never
// match.
func NameContainsAny(substrings ...string) Predicate {
	lowered := make([]string, len(substrings))
	for i, s := range substrings {
		lowered[i] = strings.ToLower(s)
	}
	return func(d Device) bool {
		if d.MaxInputChannels <= 0 {
			return false
		}
		name := strings.ToLower(d.Name)
		for _, s := range lowered {
			if strings.Contains(name, s) {
				return true
			}
		}
		return false
	}
}

// DefaultPolicy prefers loopback devices so the switcher reacts to the
// system's own playback.
var DefaultPolicy = Policy{NameContainsAny(loopbackHints...)}

// Select returns the index into devices of the first device matched by the
// highest-priority predicate, or false when no predicate matches anything.
func (p Policy) Select(devices []Device) (int, bool) {
	for _, match := range p {
		for i, d := range devices {
			if match(d) {
				return i, true
			}
		}
	}
	return 0, false
}
