package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prakriti/internal/quiz"
	"github.com/abhisek/prakriti/internal/ui/theme"
)

const emblemAir = `  ~ ~ ~
 ~  ≋  ~
  ~ ~ ~`

const emblemFire = `   ( )
  ( ▲ )
  (___)`

const emblemEarth = `   /\
  /  \/\
 /______\`

const emblemLotus = `  .-.-.
 ( ◉ ◉ )
  '-.-'`

// RenderEmblem returns the art for the last result: air for Vata, fire
// for Pitta, earth for Kapha and a lotus otherwise.
func RenderEmblem(last quiz.Dominant) string {
	art := emblemLotus
	if c, ok := last.Category(); ok {
		switch c {
		case quiz.CategoryVata:
			art = emblemAir
		case quiz.CategoryPitta:
			art = emblemFire
		case quiz.CategoryKapha:
			art = emblemEarth
		}
	}
	return lipgloss.NewStyle().
		Foreground(theme.DominantColor(last)).
		Render(art)
}
