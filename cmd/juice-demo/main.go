// Command juice-demo shows every juice effect on a single sprite.
// Each effect is bound to a key (see the help line at the top of the
// window) and the equivalent call is displayed at the bottom.
package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/edwinsyarief/juice"
	"github.com/edwinsyarief/juice/internal/demo"
	"github.com/edwinsyarief/juice/internal/demostate"
	"github.com/edwinsyarief/juice/sprite"
	"github.com/edwinsyarief/juice/tween"
	"github.com/edwinsyarief/juice/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	_ "github.com/silbinarywolf/preferdiscretegpu"
)

const (
	screenWidth  = 480
	screenHeight = 400
	homeX        = 240
	homeY        = 200
	helpColumns  = 6
)

type game struct {
	tweens *tween.Manager
	player *sprite.Sprite
	actor  *demo.Player
	store  *demostate.Store
	code   string
	input  []rune
}

func main() {
	effectsPath := flag.String("effects", "", "YAML file with effect overrides")
	flag.Parse()

	var configs map[juice.Kind]*juice.Config
	if *effectsPath != "" {
		loaded, err := juice.LoadConfigFile(*effectsPath)
		if err != nil {
			log.Fatalf("[demo] %v", err)
		}
		configs = loaded
		log.Printf("[demo] Loaded %d effect overrides from %s", len(configs), *effectsPath)
	}

	store := demostate.Open("juice_demo")
	tweens := tween.NewManager()
	player := sprite.New(newPlayerImage(), homeX, homeY)

	g := &game{
		tweens: tweens,
		player: player,
		store:  store,
		code:   store.State().LastCall,
		actor: &demo.Player{
			FX:      juice.New(tweens),
			Target:  player,
			State:   store.State(),
			Configs: configs,
			HomeX:   homeX,
			HomeY:   homeY,
		},
	}

	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("Juice")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// --- ebiten.Game implementation ---

func (self *game) Update() error {
	self.tweens.Update(time.Second / time.Duration(ebiten.TPS()))

	self.input = ebiten.AppendInputChars(self.input[:0])
	for _, key := range self.input {
		action, found := demo.Lookup(key)
		if !found {
			continue
		}
		self.code = action.Run(self.actor)
		if err := self.store.Save(); err != nil {
			log.Printf("[demo] Warning: %v", err)
		}
	}
	if err := self.actor.FX.Err(); err != nil {
		return err
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (self *game) Draw(canvas *ebiten.Image) {
	canvas.Fill(utils.RGB(233, 233, 233))
	self.player.Draw(canvas)
	ebitenutil.DebugPrint(canvas, strings.Join(demo.HelpLines(helpColumns), "\n"))
	ebitenutil.DebugPrintAt(canvas, self.code, 8, screenHeight-24)
}

func (self *game) Layout(logicWinWidth, logicWinHeight int) (int, int) {
	return screenWidth, screenHeight
}

// --- assets ---

// The player image is generated from a mask, so the demo doesn't
// need any files.
var playerMask = []uint8{
	0, 0, 1, 1, 1, 1, 1, 1, 0, 0,
	0, 1, 2, 2, 2, 2, 2, 2, 1, 0,
	1, 2, 2, 3, 2, 2, 3, 2, 2, 1,
	1, 2, 2, 3, 2, 2, 3, 2, 2, 1,
	1, 2, 2, 2, 2, 2, 2, 2, 2, 1,
	1, 2, 3, 2, 2, 2, 2, 3, 2, 1,
	1, 2, 2, 3, 3, 3, 3, 2, 2, 1,
	0, 1, 2, 2, 2, 2, 2, 2, 1, 0,
	0, 0, 1, 1, 1, 1, 1, 1, 0, 0,
}

func newPlayerImage() *ebiten.Image {
	return utils.MaskToImage(10, 8, playerMask,
		utils.RGB(40, 40, 60), utils.RGB(255, 170, 40), utils.RGB(40, 40, 60))
}
