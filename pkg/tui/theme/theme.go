// Package theme centralizes Lip Gloss styles for the Bubble Tea UI. The
// palette mirrors the app's brand colors with a dark variant.
package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Palette holds the raw colors a theme is built from.
type Palette struct {
	Teal    color.Color
	Gold    color.Color
	Coral   color.Color
	Ink     color.Color
	Surface color.Color
	Muted   color.Color
}

// Theme groups the styles used across the UI.
type Theme struct {
	Dark    bool
	Palette Palette

	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	Header      lipgloss.Style
	Holiday     lipgloss.Style
	Sunday      lipgloss.Style
	DayCell     lipgloss.Style
	DaySelected lipgloss.Style
	TaskDone    lipgloss.Style
	TaskPending lipgloss.Style
	Cursor      lipgloss.Style
	Frame       lipgloss.Style
	Help        lipgloss.Style
	Error       lipgloss.Style
	Loading     lipgloss.Style
}

func lightPalette() Palette {
	return Palette{
		Teal:    lipgloss.Color("#2A9D8F"),
		Gold:    lipgloss.Color("#E9C46A"),
		Coral:   lipgloss.Color("#E76F51"),
		Ink:     lipgloss.Color("#264653"),
		Surface: lipgloss.Color("#FFFFFF"),
		Muted:   lipgloss.Color("#8A9BA8"),
	}
}

func darkPalette() Palette {
	return Palette{
		Teal:    lipgloss.Color("#2A9D8F"),
		Gold:    lipgloss.Color("#E9C46A"),
		Coral:   lipgloss.Color("#E76F51"),
		Ink:     lipgloss.Color("#E2E2E2"),
		Surface: lipgloss.Color("#1C1E21"),
		Muted:   lipgloss.Color("#5C6670"),
	}
}

// New builds a theme for the requested mode.
func New(dark bool) Theme {
	p := lightPalette()
	if dark {
		p = darkPalette()
	}
	return Theme{
		Dark:    dark,
		Palette: p,

		Tab:       lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Foreground(p.Teal).Bold(true).Underline(true).Padding(0, 1),
		Header:    lipgloss.NewStyle().Foreground(p.Ink).Bold(true),
		Holiday:   lipgloss.NewStyle().Foreground(p.Coral).Italic(true),
		Sunday:    lipgloss.NewStyle().Foreground(p.Coral),
		DayCell:   lipgloss.NewStyle().Foreground(p.Ink).Padding(0, 1),
		DaySelected: lipgloss.NewStyle().Foreground(p.Surface).
			Background(p.Teal).Bold(true).Padding(0, 1),
		TaskDone:    lipgloss.NewStyle().Foreground(p.Muted).Strikethrough(true),
		TaskPending: lipgloss.NewStyle().Foreground(p.Ink),
		Cursor:      lipgloss.NewStyle().Foreground(p.Gold).Bold(true),
		Frame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Teal).Padding(1, 2),
		Help:    lipgloss.NewStyle().Foreground(p.Muted),
		Error:   lipgloss.NewStyle().Foreground(p.Coral).Bold(true),
		Loading: lipgloss.NewStyle().Foreground(p.Gold).Italic(true),
	}
}

// Default picks light or dark from the terminal background.
func Default() Theme {
	return New(termenv.HasDarkBackground())
}

// GoalGradient returns n color stops from coral through gold to teal for the
// daily progress bar.
func GoalGradient(n int) []color.Color {
	if n < 1 {
		return nil
	}
	start, _ := colorful.Hex("#E76F51")
	mid, _ := colorful.Hex("#E9C46A")
	end, _ := colorful.Hex("#2A9D8F")

	out := make([]color.Color, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		var c colorful.Color
		if t < 0.5 {
			c = start.BlendLuv(mid, t*2)
		} else {
			c = mid.BlendLuv(end, (t-0.5)*2)
		}
		out[i] = lipgloss.Color(c.Hex())
	}
	return out
}
