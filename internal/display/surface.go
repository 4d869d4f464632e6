package display

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/palette"
)

type cell struct {
	r    rune
	fg   string
	bold bool
}

// Surface is a fixed grid of styled runes that frames are drawn onto.
type Surface struct {
	Width, Height int
	theme         palette.Theme
	cells         [][]cell
}

func NewSurface(w, h int, theme palette.Theme) *Surface {
	s := &Surface{Width: w, Height: h, theme: theme, cells: make([][]cell, h)}
	for y := range s.cells {
		s.cells[y] = make([]cell, w)
	}
	s.Clear()
	return s
}

func (s *Surface) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = cell{r: ' '}
		}
	}
}

func (s *Surface) Set(x, y int, r rune, fg string, bold bool) {
	if x >= 0 && x < s.Width && y >= 0 && y < s.Height {
		s.cells[y][x] = cell{r: r, fg: fg, bold: bold}
	}
}

func (s *Surface) Text(x, y int, text, fg string, bold bool) {
	for i, r := range []rune(text) {
		s.Set(x+i, y, r, fg, bold)
	}
}

func (s *Surface) HLine(x0, x1, y int, r rune, fg string) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		s.Set(x, y, r, fg, false)
	}
}

func (s *Surface) VLine(x, y0, y1 int, r rune, fg string) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		s.Set(x, y, r, fg, false)
	}
}

func (s *Surface) At(x, y int) rune {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return 0
	}
	return s.cells[y][x].r
}

// FgAt reports the color a cell was drawn with.
func (s *Surface) FgAt(x, y int) string {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return ""
	}
	return s.cells[y][x].fg
}

// Plain renders the grid without styling, trailing spaces trimmed.
func (s *Surface) Plain() string {
	lines := make([]string, s.Height)
	for y, row := range s.cells {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.r)
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// String renders the grid with lipgloss, one style per run of equal cells.
func (s *Surface) String() string {
	var out strings.Builder
	for y, row := range s.cells {
		if y > 0 {
			out.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].fg == row[start].fg && row[x].bold == row[start].bold {
				continue
			}
			out.WriteString(s.styled(row[start:x]))
			start = x
		}
	}
	return out.String()
}

func (s *Surface) styled(run []cell) string {
	var b strings.Builder
	for _, c := range run {
		b.WriteRune(c.r)
	}
	if len(run) == 0 || (run[0].fg == "" && !run[0].bold) {
		return b.String()
	}
	st := lipgloss.NewStyle().Bold(run[0].bold)
	if run[0].fg != "" {
		st = st.Foreground(lipgloss.Color(s.theme.Paint(run[0].fg)))
	}
	return st.Render(b.String())
}

func round(v float64) int { return int(math.Round(v)) }
