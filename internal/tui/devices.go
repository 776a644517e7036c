package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"audiovis/internal/audio"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5"))

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#25A065")).
			Bold(true)
)

// RenderDeviceList formats the available audio devices for the `list`
// command. Input-capable devices are highlighted since only those can feed
// the switcher.
func RenderDeviceList(devices []audio.Device) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Available Audio Devices"))
	b.WriteString("\n\n")

	for _, device := range devices {
		deviceType := ""
		switch {
		case device.MaxInputChannels > 0 && device.MaxOutputChannels > 0:
			deviceType = "Input/Output"
		case device.MaxInputChannels > 0:
			deviceType = "Input"
		case device.MaxOutputChannels > 0:
			deviceType = "Output"
		}

		header := fmt.Sprintf("[%d] %s (%s)", device.ID, device.Name, deviceType)
		if device.MaxInputChannels > 0 {
			b.WriteString(highlightStyle.Render(header))
		} else {
			b.WriteString(infoStyle.Render(header))
		}
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(fmt.Sprintf(
			"    Input channels: %d, Output channels: %d",
			device.MaxInputChannels, device.MaxOutputChannels)))
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(fmt.Sprintf(
			"    Default sample rate: %.0f Hz", device.DefaultSampleRate)))
		b.WriteString("\n\n")
	}

	if len(devices) == 0 {
		b.WriteString(infoStyle.Render("No audio devices found."))
		b.WriteString("\n")
	}

	return b.String()
}
