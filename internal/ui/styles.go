package ui

import (
	"hash/fnv"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorDanger  = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#9CA3AF") // Light gray
	ColorBlue    = lipgloss.Color("#3B82F6") // Blue
)

// topicColors is the rotation topics are assigned colors from.
var topicColors = []lipgloss.Color{
	ColorSuccess,
	ColorWarning,
	ColorBlue,
	ColorPrimary,
	ColorDanger,
}

// Muted style for secondary text
var Muted = lipgloss.NewStyle().Foreground(ColorMuted)

// ID style - distinctive for course IDs
var ID = lipgloss.NewStyle().
	Foreground(ColorPrimary).
	Bold(true)

// Title style
var Title = lipgloss.NewStyle().Bold(true)

// Link style for course URLs
var Link = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Underline(true)

// TopicColor returns a stable color for a topic, so the same topic is always
// rendered the same way.
func TopicColor(topic string) lipgloss.Color {
	if topic == "" {
		return ColorMuted
	}
	h := fnv.New32a()
	h.Write([]byte(topic))
	return topicColors[h.Sum32()%uint32(len(topicColors))]
}

// RenderTopic returns a styled topic badge (for inline use, like in show).
func RenderTopic(topic string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fff")).
		Background(TopicColor(topic)).
		Padding(0, 1).
		Bold(true).
		Render(topic)
}

// RenderTopicText returns styled topic text (for tables, no background).
func RenderTopicText(topic string) string {
	return lipgloss.NewStyle().
		Foreground(TopicColor(topic)).
		Bold(true).
		Render(topic)
}
