// Command juice-term runs the juice effects demo in a terminal.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"time"

	"github.com/edwinsyarief/juice"
	"github.com/edwinsyarief/juice/internal/demo"
	"github.com/edwinsyarief/juice/internal/demostate"
	"github.com/edwinsyarief/juice/termsprite"
	"github.com/edwinsyarief/juice/tween"
	"github.com/edwinsyarief/juice/utils"
	"github.com/gdamore/tcell/v2"
)

const tickRate = 60

var background = color.RGBA{30, 30, 40, 255}

var playerMask = []uint8{
	0, 1, 1, 1, 1, 1, 1, 0,
	1, 2, 3, 2, 2, 3, 2, 1,
	1, 2, 2, 2, 2, 2, 2, 1,
	1, 2, 3, 3, 3, 3, 2, 1,
	0, 1, 1, 1, 1, 1, 1, 0,
}

type app struct {
	screen    tcell.Screen
	tweens    *tween.Manager
	player    *termsprite.Sprite
	actor     *demo.Player
	store     *demostate.Store
	code      string
	audioInit bool
}

func main() {
	effectsPath := flag.String("effects", "", "YAML file with effect overrides")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	if err := run(*effectsPath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "juice-term: %v\n", err)
		os.Exit(1)
	}
}

func run(effectsPath, logPath string) error {
	// the terminal is taken over by tcell, logs go to a file or nowhere
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	var configs map[juice.Kind]*juice.Config
	if effectsPath != "" {
		loaded, err := juice.LoadConfigFile(effectsPath)
		if err != nil {
			return err
		}
		log.Printf("[term] Loaded %d effect overrides from %s", len(loaded), effectsPath)
		configs = loaded
	}

	a, err := newApp(configs)
	if err != nil {
		return fmt.Errorf("failed to start terminal: %w", err)
	}
	a.loop()
	return nil
}

func newApp(configs map[juice.Kind]*juice.Config) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	width, height := screen.Size()
	homeX := float64(width) / termsprite.CellAspect / 2.0
	homeY := float64(height) / 2.0

	store := demostate.Open("juice_demo")
	tweens := tween.NewManager()
	player := termsprite.New(utils.MaskToRGBA(8, 1, playerMask,
		utils.RGB(200, 200, 220), utils.RGB(255, 170, 40), utils.RGB(40, 40, 60)), homeX, homeY)

	a := &app{
		screen: screen,
		tweens: tweens,
		player: player,
		store:  store,
		code:   store.State().LastCall,
	}
	a.actor = &demo.Player{
		FX:      juice.New(tweens),
		Target:  player,
		State:   store.State(),
		Configs: configs,
		HomeX:   homeX,
		HomeY:   homeY,
		OnHit:   a.playHitSound,
	}

	if err := initAudio(); err != nil {
		// non-fatal, the demo works without sound
		log.Printf("[term] Audio initialization failed: %v", err)
	} else {
		a.audioInit = true
	}
	return a, nil
}

func (self *app) playHitSound() {
	if self.audioInit {
		playHit()
	}
}

func (self *app) loop() {
	defer self.screen.Fini()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(self.screen, events, done)

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()
	for {
		select {
		case ev := <-events:
			if !self.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			self.tweens.Update(time.Second / tickRate)
			self.draw()
		}
	}
}

// Returns false when the demo must quit.
func (self *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			action, found := demo.Lookup(ev.Rune())
			if !found {
				return true
			}
			self.code = action.Run(self.actor)
			if err := self.store.Save(); err != nil {
				log.Printf("[term] Warning: %v", err)
			}
		}
	case *tcell.EventResize:
		self.screen.Sync()
	}
	return true
}

func (self *app) draw() {
	bgStyle := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(background.R), int32(background.G), int32(background.B)))
	self.screen.SetStyle(bgStyle)
	self.screen.Clear()
	self.player.Draw(self.screen, background)

	textStyle := bgStyle.Foreground(tcell.ColorWhite)
	_, height := self.screen.Size()
	self.print(0, 0, demo.Help(), textStyle)
	self.print(0, height-1, self.code, textStyle.Foreground(tcell.ColorYellow))
	if err := self.actor.FX.Err(); err != nil {
		self.print(0, height-2, fmt.Sprintf("error: %v", err), textStyle.Foreground(tcell.ColorRed))
	}
	self.screen.Show()
}

func (self *app) print(col, row int, text string, style tcell.Style) {
	for _, r := range text {
		self.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

// Forwards the screen events until the screen is finalized or done
// is closed, whichever comes first.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
