package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prakriti/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██████╗  █████╗ ██╗  ██╗██████╗ ██╗████████╗██╗
 ██╔══██╗██╔══██╗██╔══██╗██║ ██╔╝██╔══██╗██║╚══██╔══╝██║
 ██████╔╝██████╔╝███████║█████╔╝ ██████╔╝██║   ██║   ██║
 ██╔═══╝ ██╔══██╗██╔══██║██╔═██╗ ██╔══██╗██║   ██║   ██║
 ██║     ██║  ██║██║  ██║██║  ██╗██║  ██║██║   ██║   ██║
 ╚═╝     ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝   ╚═╝   ╚═╝`

const bannerCompact = "P R A K R I T I"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 60

// RenderBanner returns the PRAKRITI banner styled in the primary color,
// falling back to spaced letters on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
