// Package ui provides terminal rendering and input using tcell.
package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/devhausleipzig/cell-dodger-game/internal/game"
)

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes an existing tcell screen, such as a simulation screen.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Inputs polls terminal events on a background goroutine and forwards the ones the
// game cares about. The channel closes when the screen is finalized or ctx ends.
func (s *Screen) Inputs(ctx context.Context) <-chan game.Input {
	inputs := make(chan game.Input)
	go func() {
		defer close(inputs)
		for {
			ev := s.screen.PollEvent()
			switch ev := ev.(type) {
			case nil:
				return
			case *tcell.EventResize:
				s.screen.Sync()
			case *tcell.EventKey:
				in, ok := Translate(ev)
				if !ok {
					continue
				}
				select {
				case inputs <- in:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return inputs
}
