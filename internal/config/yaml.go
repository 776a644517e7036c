// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration, loaded from YAML and
// optionally overridden by command line flags.
type Config struct {
	Debug    bool         `yaml:"debug"`             // Enable debug mode (verbose logging).
	LogLevel string       `yaml:"log_level"`         // Logging level ("debug", "info", "warn", "error").
	Command  string       `yaml:"command,omitempty"` // A one-off command to execute instead of running the viewer (e.g. "list").
	Viewer   bool         `yaml:"-"`                 // Run the viewer (set by the CLI; false for help/version invocations).
	Audio    AudioConfig  `yaml:"audio"`             // Audio capture and detection settings.
	Canvas   CanvasConfig `yaml:"canvas"`            // Window and frame buffer settings.
	Images   []string     `yaml:"images"`            // Source image paths, one per visual state.
}

// AudioConfig holds settings for the capture stream and the loudness detector.
type AudioConfig struct {
	InputDevice     int     `yaml:"input_device"`      // PortAudio device index (-1 scans for a loopback device, then the default input).
	FramesPerBuffer int     `yaml:"frames_per_buffer"` // Audio frames per callback block (affects latency).
	LowLatency      bool    `yaml:"low_latency"`       // Request low latency settings from the device.
	Threshold       float64 `yaml:"threshold"`         // RMS loudness threshold separating quiet from loud.
}

// CanvasConfig holds the fixed presentation surface settings. Width and
// height define the frame buffer resolution; every image in the bank is
// resized to exactly this size at startup.
type CanvasConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"` // Start in borderless fullscreen.
}

// LoadConfig loads configuration from a YAML file specified by path. If path
// is empty, it looks for "config.yaml" in the working directory. If no file
// is found, the built-in defaults are used. The final configuration is
// validated before being returned.
func LoadConfig(path string) (*Config, error) {
	cfg := Config{
		Debug:    false,
		LogLevel: DefaultLogLevel,
		Audio: AudioConfig{
			InputDevice:     DefaultDeviceID,
			FramesPerBuffer: DefaultFramesPerBuffer,
			LowLatency:      DefaultLowLatency,
			Threshold:       DefaultThreshold,
		},
		Canvas: CanvasConfig{
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			Title:      DefaultTitle,
			Fullscreen: DefaultFullscreen,
		},
		Images: append([]string(nil), DefaultImagePaths...),
	}

	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		} else {
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("invalid default configuration: %w", err)
			}
			return &cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for values the capture and render paths
// cannot work with.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas resolution %dx%d is invalid", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Audio.FramesPerBuffer <= 0 || c.Audio.FramesPerBuffer > MaxBufferFrames {
		return fmt.Errorf("audio.frames_per_buffer must be in (0, %d], got %d",
			MaxBufferFrames, c.Audio.FramesPerBuffer)
	}
	if c.Audio.Threshold < 0 {
		return fmt.Errorf("audio.threshold must be non-negative, got %g", c.Audio.Threshold)
	}
	if c.Audio.InputDevice < MinDeviceID {
		return fmt.Errorf("audio.input_device must be >= %d, got %d", MinDeviceID, c.Audio.InputDevice)
	}
	return nil
}
