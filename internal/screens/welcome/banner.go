package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/priyam/synapseed/internal/ui/theme"
)

const bannerArt = `
 ███████╗██╗   ██╗███╗   ██╗ █████╗ ██████╗ ███████╗███████╗███████╗██████╗
 ██╔════╝╚██╗ ██╔╝████╗  ██║██╔══██╗██╔══██╗██╔════╝██╔════╝██╔════╝██╔══██╗
 ███████╗ ╚████╔╝ ██╔██╗ ██║███████║██████╔╝███████╗█████╗  █████╗  ██║  ██║
 ╚════██║  ╚██╔╝  ██║╚██╗██║██╔══██║██╔═══╝ ╚════██║██╔══╝  ██╔══╝  ██║  ██║
 ███████║   ██║   ██║ ╚████║██║  ██║██║     ███████║███████╗███████╗██████╔╝
 ╚══════╝   ╚═╝   ╚═╝  ╚═══╝╚═╝  ╚═╝╚═╝     ╚══════╝╚══════╝╚══════╝╚═════╝`

const bannerCompact = "S Y N A P S E E D"

// RenderBanner returns the SYNAPSEED banner styled in the primary
// color. Uses a compact fallback for terminals narrower than 80
// columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 80 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
