package faststorage

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	inlineColor   = color.New(color.FgBlue)
	overflowColor = color.New(color.FgRed)
)

// Dump writes a human-readable snapshot of the container's physical layout
// to w (for debugging purposes).
//
// Inline slots and overflow cells are printed per logical index, colorized
// when w is a terminal, and wrapped to the terminal width.
func (s *Storage[T]) Dump(w io.Writer) {
	isTTY, width := terminalShape(w)
	fmt.Fprintf(w, "storage: size=%d, inline=%d/%d, overflow=%d\n",
		s.size, s.liveInline(), s.cfg.InlineCapacity, s.overflowLen())
	col := 0
	for i := 0; i < s.size; i++ {
		cell := fmt.Sprintf("[%d]=%v ", i, s.Get(i))
		if col+len(cell) > width && col > 0 {
			fmt.Fprintln(w)
			col = 0
		}
		col += len(cell)
		if isTTY {
			if i < s.cfg.InlineCapacity {
				cell = inlineColor.Sprint(cell)
			} else {
				cell = overflowColor.Sprint(cell)
			}
		}
		io.WriteString(w, cell)
	}
	if s.size > 0 {
		fmt.Fprintln(w)
	}
}

func (s *Storage[T]) liveInline() int {
	if s.size < s.cfg.InlineCapacity {
		return s.size
	}
	return s.cfg.InlineCapacity
}

func (s *Storage[T]) overflowLen() int {
	if s.oopl == nil {
		return 0
	}
	return s.oopl.Len()
}

// terminalShape probes w for terminal-ness and usable line width.
func terminalShape(w io.Writer) (bool, int) {
	const defaultWidth = 80
	f, ok := w.(*os.File)
	if !ok {
		return false, defaultWidth
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return false, defaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return true, defaultWidth
	}
	return true, width
}
