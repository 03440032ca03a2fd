/*
Package preview draws palettes on a terminal.

Each color gets one row: a block of the color itself followed by its hex
value and index. A 24-bit color terminal is needed to see the exact colors,
tcell downgrades them to the nearest available color otherwise.
*/
package preview

import (
	"context"
	"fmt"

	"github.com/bodgit/palconv/palette"
	"github.com/gdamore/tcell/v2"
)

const (
	swatchWidth = 6
	labelX      = swatchWidth + 1
	listY       = 2
)

// Label returns the text shown alongside color i
func Label(i int, c palette.Color) string {
	return fmt.Sprintf("#%s (Index: %d)", c, i)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// Draw renders title and p onto s. Nothing is shown until s.Show is called.
func Draw(s tcell.Screen, title string, p palette.Palette) {
	s.Clear()
	drawText(s, 0, 0, tcell.StyleDefault.Bold(true), title)

	for i, c := range p {
		y := listY + i
		block := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		for x := 0; x < swatchWidth; x++ {
			s.SetContent(x, y, '█', nil, block)
		}
		drawText(s, labelX, y, tcell.StyleDefault, Label(i, c))
	}

	_, h := s.Size()
	if y := listY + len(p) + 1; y < h {
		drawText(s, 0, y, tcell.StyleDefault.Dim(true), "Press q or Esc to quit")
	}
}

func quit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyEnter, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Show initializes s, draws p and waits for the user to quit or ctx to be
// cancelled. The screen is always finalized before returning.
func Show(ctx context.Context, s tcell.Screen, title string, p palette.Palette) error {
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	return run(ctx, s, title, p)
}

func run(ctx context.Context, s tcell.Screen, title string, p palette.Palette) error {
	Draw(s, title, p)
	s.Show()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = s.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			Draw(s, title, p)
			s.Sync()
		case *tcell.EventKey:
			if quit(ev) {
				return nil
			}
		case *tcell.EventInterrupt:
			return ctx.Err()
		}
	}
}
