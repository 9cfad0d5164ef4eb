package tui

import "github.com/charmbracelet/lipgloss"

// moodColors maps a screen's mood tag to its accent color. Unknown
// moods fall back to the neon green of the original terminal look.
var moodColors = map[string]lipgloss.Color{
	"midnight": lipgloss.Color("57"),  // deep purple
	"neon":     lipgloss.Color("51"),  // cyan
	"deep":     lipgloss.Color("25"),  // navy
	"mist":     lipgloss.Color("152"), // pale blue
	"aqua":     lipgloss.Color("45"),
	"violet":   lipgloss.Color("135"),
	"ice":      lipgloss.Color("123"),
	"dusk":     lipgloss.Color("97"),
	"cosmos":   lipgloss.Color("93"),
	"terminal": lipgloss.Color("40"),
	"paper":    lipgloss.Color("187"),
	"green":    lipgloss.Color("40"),
	"amber":    lipgloss.Color("214"),
	"gold":     lipgloss.Color("220"),
	"orange":   lipgloss.Color("208"),
	"red":      lipgloss.Color("196"),
	"ash":      lipgloss.Color("245"),
}

const fallbackMood = "terminal"

func moodColor(mood string) lipgloss.Color {
	if c, ok := moodColors[mood]; ok {
		return c
	}
	return moodColors[fallbackMood]
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Border(lipgloss.NormalBorder(), true).
			BorderForeground(lipgloss.Color("40")).
			Padding(0, 1)

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	dialogueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Padding(0, 1)

	choiceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	selectedChoiceStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Bold(true)

	advisoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	flashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// screenFrame builds the bordered game window in the screen's mood
// color.
func screenFrame(mood string, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(moodColor(mood)).
		Padding(1, 2).
		Width(width)
}
