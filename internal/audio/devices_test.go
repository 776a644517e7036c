package audio

import "testing"

func inputDev(id int, name string) Device {
	return Device{ID: id, Name: name, MaxInputChannels: 2, DefaultSampleRate: 44100}
}

func outputDev(id int, name string) Device {
	return Device{ID: id, Name: name, MaxOutputChannels: 2, DefaultSampleRate: 44100}
}

func TestNameContainsAny(t *testing.T) {
	t.Parallel()
	match := NameContainsAny("blackhole", "loopback")

	tests := []struct {
		desc   string
		device Device
		want   bool
	}{
		{"Exact fragment", inputDev(0, "blackhole"), true},
		{"Case insensitive", inputDev(0, "BlackHole 2ch"), true},
		{"Fragment inside name", inputDev(0, "My Loopback Device"), true},
		{"No fragment", inputDev(0, "MacBook Pro Microphone"), false},
		{"Output-only device never matches", outputDev(0, "BlackHole 2ch"), false},
		{"Empty name", inputDev(0, ""), false},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := match(tt.device); got != tt.want {
				t.Errorf("match(%q): got %v, want %v", tt.device.Name, got, tt.want)
			}
		})
	}
}

func TestDefaultPolicyMatchesAllHints(t *testing.T) {
	t.Parallel()
	for _, name := range []string{
		"BlackHole 16ch",
		"Soundflower (2ch)",
		"Loopback Audio",
		"eqMac Device",
		"Multi-Output Device",
	} {
		devices := []Device{
			inputDev(0, "MacBook Pro Microphone"),
			inputDev(1, name),
		}
		i, ok := DefaultPolicy.Select(devices)
		if !ok || i != 1 {
			t.Errorf("policy missed loopback device %q (got index %d, ok=%v)", name, i, ok)
		}
	}
}

func TestPolicySelect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc     string
		policy   Policy
		devices  []Device
		wantIdx  int
		wantHit  bool
	}{
		{
			desc:    "First matching device wins",
			policy:  DefaultPolicy,
			devices: []Device{inputDev(0, "BlackHole 2ch"), inputDev(1, "BlackHole 16ch")},
			wantIdx: 0,
			wantHit: true,
		},
		{
			desc:    "No match",
			policy:  DefaultPolicy,
			devices: []Device{inputDev(0, "Microphone"), inputDev(1, "Line In")},
			wantHit: false,
		},
		{
			desc:    "Empty device list",
			policy:  DefaultPolicy,
			devices: nil,
			wantHit: false,
		},
		{
			desc: "Predicate order outranks device order",
			policy: Policy{
				NameContainsAny("soundflower"),
				NameContainsAny("blackhole"),
			},
			devices: []Device{inputDev(0, "BlackHole 2ch"), inputDev(1, "Soundflower (2ch)")},
			wantIdx: 1,
			wantHit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			i, ok := tt.policy.Select(tt.devices)
			if ok != tt.wantHit {
				t.Fatalf("Select: got ok=%v, want %v", ok, tt.wantHit)
			}
			if ok && i != tt.wantIdx {
				t.Errorf("Select: got index %d, want %d", i, tt.wantIdx)
			}
		})
	}
}
