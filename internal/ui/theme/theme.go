package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prakriti/internal/quiz"
)

// Color palette, warm earth tones.
var (
	Primary   = lipgloss.Color("#B45309") // Turmeric
	Secondary = lipgloss.Color("#0D9488") // Neem
	Accent    = lipgloss.Color("#E11D48") // Rose
	Success   = lipgloss.Color("#65A30D") // Leaf
	Error     = lipgloss.Color("#DC2626") // Red
	Text      = lipgloss.Color("#FAFAF9") // Stone white
	TextDim   = lipgloss.Color("#A8A29E") // Stone
	BgDark    = lipgloss.Color("#1C1917") // Charcoal
	BgCard    = lipgloss.Color("#292524") // Dark stone
	Border    = lipgloss.Color("#44403C") // Stone border
)

// Dosha colors.
var (
	Vata  = lipgloss.Color("#60A5FA") // Air
	Pitta = lipgloss.Color("#F97316") // Fire
	Kapha = lipgloss.Color("#22C55E") // Earth
)

// CategoryColor returns the color used for c's meter and labels.
func CategoryColor(c quiz.Category) color.Color {
	switch c {
	case quiz.CategoryVata:
		return Vata
	case quiz.CategoryPitta:
		return Pitta
	case quiz.CategoryKapha:
		return Kapha
	default:
		return Primary
	}
}

// DominantColor returns the accent for a result; Balanced uses Primary.
func DominantColor(d quiz.Dominant) color.Color {
	if c, ok := d.Category(); ok {
		return CategoryColor(c)
	}
	return Primary
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Warning = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	ButtonDisabled = lipgloss.NewStyle().
			Foreground(Border).
			Padding(0, 2)
)
