package theme

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/interpretive-systems/riskscan/internal/catalog"
)

// Theme defines customizable colors for rendering.
type Theme struct {
	AccentColor  string `yaml:"accentColor"`
	MutedColor   string `yaml:"mutedColor"`
	DividerColor string `yaml:"dividerColor"`
	HighColor    string `yaml:"highColor"`
	MediumColor  string `yaml:"mediumColor"`
	LowColor     string `yaml:"lowColor"`
	MarkFgColor  string `yaml:"markFgColor"`
	MarkBgColor  string `yaml:"markBgColor"`
}

func darkTheme() Theme {
	return Theme{
		AccentColor:  "63",
		MutedColor:   "245",
		DividerColor: "240",
		HighColor:    "196",
		MediumColor:  "214",
		LowColor:     "39",
		MarkFgColor:  "231",
		MarkBgColor:  "88",
	}
}

func lightTheme() Theme {
	return Theme{
		AccentColor:  "27",
		MutedColor:   "242",
		DividerColor: "244",
		HighColor:    "160",
		MediumColor:  "130",
		LowColor:     "25",
		MarkFgColor:  "16",
		MarkBgColor:  "223",
	}
}

// DefaultTheme is the dark theme.
func DefaultTheme() Theme {
	return darkTheme()
}

// GetTheme returns the named base theme; anything but "light" is dark.
func GetTheme(name string) Theme {
	if name == "light" {
		return lightTheme()
	}
	return darkTheme()
}

// Load merges <home>/theme.yaml over the named base theme. A missing or
// unreadable file leaves the base untouched.
func Load(home, base string) Theme {
	t := GetTheme(base)
	b, err := os.ReadFile(filepath.Join(home, "theme.yaml"))
	if err != nil {
		return t
	}
	var u Theme
	if err := yaml.Unmarshal(b, &u); err != nil {
		return t
	}
	merge(&t.AccentColor, u.AccentColor)
	merge(&t.MutedColor, u.MutedColor)
	merge(&t.DividerColor, u.DividerColor)
	merge(&t.HighColor, u.HighColor)
	merge(&t.MediumColor, u.MediumColor)
	merge(&t.LowColor, u.LowColor)
	merge(&t.MarkFgColor, u.MarkFgColor)
	merge(&t.MarkBgColor, u.MarkBgColor)
	return t
}

func merge(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func (t Theme) Accent(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.AccentColor)).Bold(true).Render(s)
}

func (t Theme) Muted(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.MutedColor)).Render(s)
}

func (t Theme) DividerText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.DividerColor)).Render(s)
}

// LevelColor maps a risk level to its color.
func (t Theme) LevelColor(l catalog.RiskLevel) string {
	switch l {
	case catalog.RiskHigh:
		return t.HighColor
	case catalog.RiskMedium:
		return t.MediumColor
	default:
		return t.LowColor
	}
}

// Level renders s in the color of l.
func (t Theme) Level(l catalog.RiskLevel, s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.LevelColor(l))).Render(s)
}

// Badge renders the level name as a bold tag, e.g. "[High Risk]".
func (t Theme) Badge(l catalog.RiskLevel) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.LevelColor(l))).Bold(true).Render("[" + l.String() + "]")
}

// MarkStyle is applied to highlighted excerpt spans.
func (t Theme) MarkStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkFgColor)).
		Background(lipgloss.Color(t.MarkBgColor)).
		Bold(true)
}
