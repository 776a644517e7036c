package config

// Core configuration constants that define the boundaries and defaults
// for the visual switcher.
const (
	// Default values for the audio capture path
	DefaultDeviceID        = MinDeviceID // System default / loopback scan
	DefaultFramesPerBuffer = 512         // Balanced latency/performance
	DefaultLowLatency      = false       // Standard latency mode
	DefaultThreshold       = 0.001       // RMS loudness threshold

	// Default values for the presentation path
	DefaultWidth      = 1664
	DefaultHeight     = 1080
	DefaultTitle      = "Image Viewer - ESC to exit, F to toggle fullscreen"
	DefaultFullscreen = false

	// Debug defaults
	DefaultLogLevel = "info"

	// Hardware and processing limits
	MinDeviceID     = -1   // -1 selects via the loopback scan / default device
	MaxBufferFrames = 8192 // Maximum frames per buffer
)

// DefaultImagePaths are the source images probed at startup. Missing files
// degrade to synthesized placeholder buffers.
var DefaultImagePaths = []string{"image1.jpg", "image2.jpg"}
