package styles

import "github.com/charmbracelet/lipgloss"

// Theme is a named color scheme applied document-wide.
type Theme struct {
	Name string

	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Selection  lipgloss.Color
	Border     lipgloss.Color
}

var (
	DarkTheme = Theme{
		Name:       "dark",
		Primary:    lipgloss.Color("#C792EA"),
		Secondary:  lipgloss.Color("#82AAFF"),
		Background: lipgloss.Color("#263238"),
		Foreground: lipgloss.Color("#EEFFFF"),
		Muted:      lipgloss.Color("#546E7A"),
		Error:      lipgloss.Color("#F07178"),
		Selection:  lipgloss.Color("#C792EA"),
		Border:     lipgloss.Color("#37474F"),
	}

	LightTheme = Theme{
		Name:       "light",
		Primary:    lipgloss.Color("#7C3AED"),
		Secondary:  lipgloss.Color("#0891B2"),
		Background: lipgloss.Color("#FFFFFF"),
		Foreground: lipgloss.Color("#1F2937"),
		Muted:      lipgloss.Color("#9CA3AF"),
		Error:      lipgloss.Color("#DC2626"),
		Selection:  lipgloss.Color("#7C3AED"),
		Border:     lipgloss.Color("#E5E7EB"),
	}

	currentTheme = DarkTheme
)

// Styles rebuilt by ApplyTheme.
var (
	TitleStyle      lipgloss.Style
	SubtitleStyle   lipgloss.Style
	TextStyle       lipgloss.Style
	MutedStyle      lipgloss.Style
	ErrorStyle      lipgloss.Style
	StatusStyle     lipgloss.Style
	SelectedStyle   lipgloss.Style
	CardStyle       lipgloss.Style
	ActiveCardStyle lipgloss.Style
	ProgressStyle   lipgloss.Style
	HelpStyle       lipgloss.Style
	HelpKeyStyle    lipgloss.Style
	HeaderStyle     lipgloss.Style
	DialogStyle     lipgloss.Style
	DialogTitle     lipgloss.Style
	ListItem        lipgloss.Style
	ListItemActive  lipgloss.Style
)

// GetTheme returns a theme by name, defaulting to dark.
func GetTheme(name string) Theme {
	if name == LightTheme.Name {
		return LightTheme
	}
	return DarkTheme
}

// CurrentTheme returns the currently active theme.
func CurrentTheme() Theme {
	return currentTheme
}

// SetCurrentTheme activates a theme by name and rebuilds all styles.
func SetCurrentTheme(name string) {
	currentTheme = GetTheme(name)
	applyTheme(currentTheme)
}

func applyTheme(theme Theme) {
	TitleStyle = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Italic(true)

	TextStyle = lipgloss.NewStyle().
		Foreground(theme.Foreground)

	MutedStyle = lipgloss.NewStyle().
		Foreground(theme.Muted)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true)

	StatusStyle = lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Italic(true)

	SelectedStyle = lipgloss.NewStyle().
		Foreground(theme.Selection).
		Bold(true)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		MarginBottom(1)

	ActiveCardStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 2).
		MarginBottom(1)

	ProgressStyle = lipgloss.NewStyle().
		Foreground(theme.Primary)

	HelpStyle = lipgloss.NewStyle().
		Foreground(theme.Muted).
		Italic(true).
		MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Background(theme.Primary).
		Padding(0, 1).
		Bold(true)

	DialogStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 2)

	DialogTitle = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		MarginBottom(1)

	ListItem = lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Padding(0, 2)

	ListItemActive = lipgloss.NewStyle().
		Foreground(theme.Background).
		Background(theme.Selection).
		Padding(0, 2).
		Bold(true)
}

func init() {
	applyTheme(DarkTheme)
}
