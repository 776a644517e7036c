package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"audiovis/internal/build"
	"audiovis/internal/config"
)

// ParseArgs builds the configuration from the optional YAML file and the
// command line. Flags that the user sets explicitly override file values.
func ParseArgs() (*config.Config, error) {
	buildInfo := build.GetBuildFlags()

	var (
		configPath string
		command    string
		runViewer  bool
		options    *config.Config
	)

	rootCmd := &cobra.Command{
		Use:           buildInfo.Name,
		Short:         "Audio-reactive visual switcher",
		Version:       buildInfo.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableDescriptions: true,
			DisableNoDescFlag:   true,
			HiddenDefaultCmd:    true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runViewer = true
			return nil
		},
	}

	// Display help message
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available audio devices",
		Run: func(cmd *cobra.Command, args []string) {
			command = "list"
		},
	}
	rootCmd.AddCommand(listCmd)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to a YAML configuration file (default: ./config.yaml if present)")

	deviceID := rootCmd.PersistentFlags().IntP("device", "d", config.DefaultDeviceID,
		"Input device ID. Use 'list' to see available devices; -1 scans for a loopback device.")
	threshold := rootCmd.PersistentFlags().Float64P("threshold", "t", config.DefaultThreshold,
		"RMS loudness threshold separating quiet from loud")
	framesPerBuffer := rootCmd.PersistentFlags().IntP("frames-per-buffer", "b", config.DefaultFramesPerBuffer,
		"The number of frames per buffer (affects latency)")
	lowLatency := rootCmd.PersistentFlags().BoolP("low-latency", "l", config.DefaultLowLatency,
		"Use low latency mode for real-time processing")
	fullscreen := rootCmd.PersistentFlags().BoolP("fullscreen", "f", config.DefaultFullscreen,
		"Start in borderless fullscreen")
	verbose := rootCmd.PersistentFlags().BoolP("verbose", "v", false,
		"Show verbose output")

	// Execute the CLI
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		return nil, err
	}

	options, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	// Flags override file values only when explicitly set.
	flags := rootCmd.PersistentFlags()
	if flags.Changed("device") {
		options.Audio.InputDevice = *deviceID
	}
	if flags.Changed("threshold") {
		options.Audio.Threshold = *threshold
	}
	if flags.Changed("frames-per-buffer") {
		options.Audio.FramesPerBuffer = *framesPerBuffer
	}
	if flags.Changed("low-latency") {
		options.Audio.LowLatency = *lowLatency
	}
	if flags.Changed("fullscreen") {
		options.Canvas.Fullscreen = *fullscreen
	}
	if *verbose {
		options.Debug = true
		options.LogLevel = "debug"
	}

	// Subcommands run instead of the viewer; help/version run nothing.
	options.Viewer = runViewer
	if command != "" {
		options.Command = command
		options.Viewer = false
	}

	if err := options.Validate(); err != nil {
		return nil, err
	}

	return options, nil
}
