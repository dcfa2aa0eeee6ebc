// Package tui implements the interactive terminal client: one session
// per view, a single-threaded poll-driven event loop, and the three
// views (chat, contact list, setup).
package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// ErrEventStreamClosed means the terminal event stream ended underneath a
// running view.
var ErrEventStreamClosed = errors.New("terminal event stream closed")

// Session owns the terminal for the lifetime of one interactive view:
// raw input, alternate screen, mouse capture, hidden cursor.
type Session struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
}

// Acquire takes over the terminal. Release must run on every exit path;
// use RunScoped instead of pairing the calls by hand.
func Acquire() (*Session, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return newSession(screen), nil
}

func newSession(screen tcell.Screen) *Session {
	s := &Session{
		screen: screen,
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
	}
	go screen.ChannelEvents(s.events, s.quit)
	return s
}

// Release restores the terminal, reversing acquisition order. Safe to
// call more than once.
func (s *Session) Release() {
	if s.screen == nil {
		return
	}
	close(s.quit)
	s.screen.DisableMouse()
	s.screen.Fini()
	s.screen = nil
}

// RunScoped acquires the terminal, runs body, and releases no matter how
// body exits, panics included.
func RunScoped(body func(*Session) error) error {
	s, err := Acquire()
	if err != nil {
		return err
	}
	defer s.Release()
	if err := body(s); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// Run drives a view until it quits. Each iteration ticks the view, draws,
// then polls input for the remaining tick budget, so redraws keep a fixed
// cadence even without input.
func (s *Session) Run(v View) error {
	tickRate := v.TickRate()
	lastTick := time.Now()
	for {
		w, h := s.screen.Size()
		v.Tick(w, h)

		s.screen.Clear()
		v.Draw(s.screen)
		s.screen.Show()

		timeout := tickRate - time.Since(lastTick)
		if timeout < 0 {
			timeout = 0
		}
		ev, err := s.poll(timeout)
		if err != nil {
			return err
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			w, h := s.screen.Size()
			if v.HandleKey(ev, w, h) == Quit {
				return nil
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}

		if time.Since(lastTick) >= tickRate {
			lastTick = time.Now()
		}
	}
}

// poll waits for one event, at most timeout. It returns a nil event when
// the timeout expires first.
func (s *Session) poll(timeout time.Duration) (tcell.Event, error) {
	if timeout <= 0 {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return nil, ErrEventStreamClosed
			}
			return ev, nil
		default:
			return nil, nil
		}
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case ev, ok := <-s.events:
		if !ok {
			return nil, ErrEventStreamClosed
		}
		return ev, nil
	case <-timer.C:
		return nil, nil
	}
}
