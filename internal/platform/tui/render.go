package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/showcase/internal/core"
)

// alphaSteps quantizes cell alpha so the style cache stays small.
const alphaSteps = 16

type styleKey struct {
	color core.Color
	alpha uint8
}

// Renderer converts Screen buffers to styled strings for one theme.
// Styles are cached per color and alpha level.
type Renderer struct {
	theme  core.Theme
	styles map[styleKey]lipgloss.Style
}

// NewRenderer creates a renderer for the given theme.
func NewRenderer(t core.Theme) *Renderer {
	return &Renderer{theme: t, styles: make(map[styleKey]lipgloss.Style)}
}

// Theme returns the renderer's theme.
func (r *Renderer) Theme() core.Theme {
	return r.theme
}

// SetTheme switches the theme and drops cached styles.
func (r *Renderer) SetTheme(t core.Theme) {
	if t == r.theme {
		return
	}
	r.theme = t
	clear(r.styles)
}

// Blend mixes c toward the theme background by alpha (255 = c unchanged).
func Blend(c core.Color, alpha uint8, t core.Theme) string {
	fg := toColorful(c.RGB(t))
	if alpha >= core.AlphaOpaque {
		return fg.Hex()
	}
	bg := toColorful(t.Background())
	return bg.BlendRgb(fg, float64(alpha)/float64(core.AlphaOpaque)).Clamped().Hex()
}

func toColorful(c core.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func quantize(alpha uint8) uint8 {
	if alpha >= core.AlphaOpaque {
		return core.AlphaOpaque
	}
	step := uint8(256 / alphaSteps)
	return alpha/step*step + step/2
}

func (r *Renderer) style(c core.Color, alpha uint8) lipgloss.Style {
	k := styleKey{color: c, alpha: quantize(alpha)}
	if s, ok := r.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(Blend(k.color, k.alpha, r.theme)))
	r.styles[k] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color and alpha to minimize ANSI
// escape sequences. A wide rune swallows the cell to its right.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			startKey := styleKey{color: start.Color, alpha: quantize(start.Alpha)}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Blank() {
					// Blank cells carry no color; extend any run.
					run.WriteRune(' ')
					x++
					continue
				}
				if (styleKey{color: cell.Color, alpha: quantize(cell.Alpha)}) != startKey {
					break
				}
				run.WriteRune(cell.Rune)
				if runewidth.RuneWidth(cell.Rune) == 2 && x+1 < s.Width() {
					x++
				}
				x++
			}
			sb.WriteString(r.style(startKey.color, startKey.alpha).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s with the dark theme.
func RenderScreen(s *core.Screen) string {
	return NewRenderer(core.ThemeDark).Render(s)
}
