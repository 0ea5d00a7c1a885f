package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	return screen
}

func waitReturn(t *testing.T, finished <-chan struct{}) {
	t.Helper()
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("pollEvents() did not return")
	}
}

func TestPollEvents_Forwards(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()

	events := make(chan tcell.Event, 1)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	screen.InjectKey(tcell.KeyRune, 's', tcell.ModNone)
	select {
	case ev := <-events:
		key, ok := ev.(*tcell.EventKey)
		if !ok || key.Rune() != 's' {
			t.Errorf("forwarded %T, want the 's' key", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("key event not forwarded")
	}
}

func TestPollEvents_ReturnsWhenNobodyListens(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()

	// unbuffered and never read, as after the loop has quit
	events := make(chan tcell.Event)
	done := make(chan struct{})
	close(done)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	finished := make(chan struct{})
	go func() {
		pollEvents(screen, events, done)
		close(finished)
	}()
	waitReturn(t, finished)
}

func TestPollEvents_ReturnsOnFini(t *testing.T) {
	screen := newTestScreen(t)

	finished := make(chan struct{})
	go func() {
		pollEvents(screen, make(chan tcell.Event), make(chan struct{}))
		close(finished)
	}()
	screen.Fini()
	waitReturn(t, finished)
}
