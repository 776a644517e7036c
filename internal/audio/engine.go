// SPDX-License-Identifier: MIT
/*
Package audio implements the capture side of the visual switcher:
- Device enumeration with a loopback-first selection policy
- A callback-driven PortAudio input stream feeding the loudness detector

Thread Safety:
- The stream callback runs on PortAudio's audio I/O thread
- The callback forwards blocks to a SampleProcessor and shares no other state
- Locks the OS thread during audio processing
*/
package audio

import (
	"fmt"
	"runtime"
	"time"

	"github.com/gordonklaus/portaudio"

	"audiovis/internal/analysis"
	"audiovis/internal/config"
	"audiovis/internal/log"
)

// Engine owns the capture stream. Stream parameters come from the selected
// device's default input configuration; only the block size is taken from
// the application config.
type Engine struct {
	config *config.Config

	inputDevice  *portaudio.DeviceInfo
	inputLatency time.Duration
	inputStream  *portaudio.Stream
	channels     int

	processor analysis.SampleProcessor
}

// NewEngine selects the capture device and prepares an engine feeding
// processor. Returns ErrNoInputDevice (wrapped) when no device is available.
func NewEngine(cfg *config.Config, processor analysis.SampleProcessor) (*Engine, error) {
	inputDevice, err := InputDevice(cfg.Audio.InputDevice, DefaultPolicy)
	if err != nil {
		return nil, err
	}

	channels := inputDevice.MaxInputChannels
	if channels > 2 {
		channels = 2
	}
	if channels < 1 {
		return nil, fmt.Errorf("device %q has no input channels", inputDevice.Name)
	}

	engine := &Engine{
		config:      cfg,
		inputDevice: inputDevice,
		channels:    channels,
		processor:   processor,
	}

	if cfg.Audio.LowLatency {
		engine.inputLatency = inputDevice.DefaultLowInputLatency
	} else {
		engine.inputLatency = inputDevice.DefaultHighInputLatency
	}

	log.Debugf("Input config: device=%q channels=%d sample_rate=%.0f latency=%s",
		inputDevice.Name, channels, inputDevice.DefaultSampleRate, engine.inputLatency)

	return engine, nil
}

// StartInputStream opens and starts the capture stream. From the first
// callback on, PortAudio invokes processInputStream once per block for the
// lifetime of the stream.
func (e *Engine) StartInputStream() error {
	params := portaudio.StreamParameters{
		Input: portaudio.StreamDeviceParameters{
			Channels: e.channels,
			Device:   e.inputDevice,
			Latency:  e.inputLatency,
		},
		Output: portaudio.StreamDeviceParameters{
			Channels: 0, // No output device
			Device:   nil,
		},
		FramesPerBuffer: e.config.Audio.FramesPerBuffer,
		SampleRate:      e.inputDevice.DefaultSampleRate,
	}

	stream, err := portaudio.OpenStream(params, e.processInputStream)
	if err != nil {
		return fmt.Errorf("failed to open input stream: %w", err)
	}
	e.inputStream = stream

	if err := e.inputStream.Start(); err != nil {
		e.inputStream.Close()
		e.inputStream = nil
		return fmt.Errorf("failed to start input stream: %w", err)
	}

	return nil
}

// StopInputStream stops and closes the capture stream if it is running.
func (e *Engine) StopInputStream() error {
	if e.inputStream != nil {
		if err := e.inputStream.Stop(); err != nil {
			return err
		}

		if err := e.inputStream.Close(); err != nil {
			return err
		}

		e.inputStream = nil
	}

	return nil
}

// Close releases the engine's resources.
func (e *Engine) Close() error {
	return e.StopInputStream()
}

// processInputStream is the capture callback.
// Performance Critical:
// - Runs on PortAudio's dedicated audio I/O thread
// - Must not block or allocate; a panic here aborts the stream for good
// - Multi-channel data is forwarded interleaved, as delivered
func (e *Engine) processInputStream(in []float32) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	e.processor.Process(in)
}
