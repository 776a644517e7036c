package main

import (
	"fmt"

	"audiovis/cmd"
	"audiovis/internal/analysis"
	"audiovis/internal/audio"
	"audiovis/internal/build"
	"audiovis/internal/display"
	"audiovis/internal/imagebank"
	"audiovis/internal/log"
	"audiovis/internal/state"
	"audiovis/internal/tui"
)

// main wires the two independent paths of the switcher:
//
// 1. Startup Phase (Cold Path):
//   - Parse command line arguments and load configuration
//   - Initialize PortAudio
//   - Execute one-off commands if requested
//   - Build the image bank (decode, resize, or synthesize placeholders)
//
// 2. Concurrent Phase (Hot Path):
//   - Start the capture stream; the loudness detector runs per block on the
//     audio I/O thread and publishes the visual state index
//   - Run the window loop on the main goroutine; each frame reads the index
//     and presents the matching bank buffer
//
// 3. Shutdown Phase (Cold Path):
//   - The window loop returning (close request or ESC) stops the stream and
//     releases PortAudio
func main() {
	// ==================== STARTUP PHASE (Cold Path) ====================

	build.Initialize()

	cfg, err := cmd.ParseArgs()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	log.SetLevel(cfg.LogLevel)

	if err := audio.Initialize(); err != nil {
		log.Fatalf("audio: %v", err)
	}
	defer audio.Terminate()

	// One-off commands that don't require the engine or a window.
	if cfg.Command != "" {
		if err := executeCommand(cfg.Command); err != nil {
			log.Fatalf("%s: %v", cfg.Command, err)
		}
		return
	}

	// Exit if help or version output was requested.
	if !cfg.Viewer {
		return
	}

	bank := imagebank.Load(cfg.Images, cfg.Canvas.Width, cfg.Canvas.Height)

	// The cell is the only data shared between the audio callback and the
	// render loop. It starts at 0, the quiet state.
	cell := state.NewCell()
	detector := analysis.NewDetector(cfg.Audio.Threshold, bank.Len(), cell)

	// ==================== CONCURRENT PHASE (Hot Path) ====================

	engine, err := audio.NewEngine(cfg, detector)
	if err != nil {
		log.Fatalf("audio: %v", err)
	}

	// CRITICAL: from the first callback on, the detector runs on PortAudio's
	// audio I/O thread until the engine is closed.
	if err := engine.StartInputStream(); err != nil {
		log.Fatalf("audio: %v", err)
	}
	log.Infof("Audio capture started. Listening...")

	// The window loop owns the main goroutine until the user exits or
	// presentation fails.
	runErr := display.Run(cfg, cell, bank)

	// ==================== SHUTDOWN PHASE (Cold Path) ====================

	if err := engine.Close(); err != nil {
		log.Errorf("Error closing audio engine: %v", err)
	}

	if runErr != nil {
		audio.Terminate()
		log.Fatalf("render: %v", runErr)
	}
}

// executeCommand handles one-off commands that don't require the engine to be
// running, such as listing available audio devices.
func executeCommand(command string) error {
	switch command {
	case "list":
		devices, err := audio.GetDevices()
		if err != nil {
			return err
		}
		fmt.Print(tui.RenderDeviceList(devices))
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
