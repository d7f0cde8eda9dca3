package stream

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// renderCells appends the downsampled cells to the frame buffer.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (w *Window) renderCells(cols, rows int) {
	for y := 0; y < rows; y++ {
		if y > 0 {
			w.frame.WriteString("\r\n")
		}

		x := 0
		for x < cols {
			start := w.cells[y*cols+x]
			n := 0
			for x < cols && w.cells[y*cols+x] == start {
				n++
				x++
			}
			w.frame.WriteString(w.style(start).Render(strings.Repeat(string(core.HalfBlock), n)))
		}
	}
}

// style returns the cached style painting c's top pixel as foreground and
// its bottom pixel as background.
func (w *Window) style(c core.Cell) lipgloss.Style {
	if s, ok := w.styles[c]; ok {
		return s
	}
	if len(w.styles) >= maxStyles {
		clear(w.styles)
	}

	s := w.renderer.NewStyle().
		Foreground(lipgloss.Color(c.Top.Hex())).
		Background(lipgloss.Color(c.Bottom.Hex()))
	w.styles[c] = s
	return s
}
