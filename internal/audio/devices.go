package audio

import (
	"errors"
	"fmt"

	"github.com/gordonklaus/portaudio"

	"audiovis/internal/config"
	"audiovis/internal/log"
)

// ErrNoInputDevice is returned when neither the selection policy nor the
// host's default input yields a capture device.
var ErrNoInputDevice = errors.New("no input device available")

// Initialize sets up the PortAudio subsystem.
// This must be called before any audio operations and paired with a Terminate() call.
func Initialize() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize PortAudio: %w", err)
	}
	return nil
}

// Terminate cleanly shuts down the PortAudio subsystem.
// This should be deferred immediately after Initialize().
func Terminate() error {
	if err := portaudio.Terminate(); err != nil {
		return fmt.Errorf("failed to terminate PortAudio: %w", err)
	}
	return nil
}

// GetDevices returns all available audio devices. PortAudio must already be
// initialized.
func GetDevices() ([]Device, error) {
	paDeviceInfos, err := portaudio.Devices()
	if err != nil {
		return nil, err
	}

	devices := make([]Device, len(paDeviceInfos))
	for i, info := range paDeviceInfos {
		devices[i] = Device{
			ID:                i,
			Name:              info.Name,
			MaxInputChannels:  info.MaxInputChannels,
			MaxOutputChannels: info.MaxOutputChannels,
			DefaultSampleRate: info.DefaultSampleRate,
		}
	}

	return devices, nil
}

// InputDevice resolves the capture device for the given device ID.
//
// For an explicit ID the matching device is returned directly. For
// config.MinDeviceID (-1) the selection policy runs first: every input
// device's name is checked against the loopback hints, and only when none
// match does the host's default input device apply. Fails with
// ErrNoInputDevice when neither step yields a device. Runs once at startup;
// no retry.
func InputDevice(deviceID int, policy Policy) (*portaudio.DeviceInfo, error) {
	paDeviceInfos, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate devices: %w", err)
	}

	if deviceID != config.MinDeviceID {
		if deviceID < 0 || deviceID >= len(paDeviceInfos) {
			return nil, fmt.Errorf("invalid device ID: %d", deviceID)
		}
		return paDeviceInfos[deviceID], nil
	}

	// Diagnostic only: show what the policy is choosing from.
	log.Infof("Available input devices:")
	devices := make([]Device, len(paDeviceInfos))
	for i, info := range paDeviceInfos {
		devices[i] = Device{
			ID:                i,
			Name:              info.Name,
			MaxInputChannels:  info.MaxInputChannels,
			MaxOutputChannels: info.MaxOutputChannels,
			DefaultSampleRate: info.DefaultSampleRate,
		}
		if info.MaxInputChannels > 0 {
			log.Infof("  %d: %s", i, info.Name)
		}
	}

	if i, ok := policy.Select(devices); ok {
		log.Infof("Found loopback device: %s", devices[i].Name)
		return paDeviceInfos[i], nil
	}

	device, err := portaudio.DefaultInputDevice()
	if err != nil || device == nil {
		return nil, ErrNoInputDevice
	}
	return device, nil
}
