package main

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

var sampleRate = beep.SampleRate(44100)

const (
	hitFrequency = 220.0
	hitLength    = 80 * time.Millisecond
)

func initAudio() error {
	return speaker.Init(sampleRate, sampleRate.N(time.Second/10))
}

func playHit() {
	speaker.Play(beep.Take(sampleRate.N(hitLength), &hitTone{freq: hitFrequency}))
}

// A decaying sine, short enough to be played on every
// damage key press.
type hitTone struct {
	freq float64
	pos  int
}

func (self *hitTone) Stream(samples [][2]float64) (n int, ok bool) {
	length := float64(sampleRate.N(hitLength))
	for i := range samples {
		t := float64(self.pos) / float64(sampleRate)
		envelope := math.Max(1.0-float64(self.pos)/length, 0)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*self.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		self.pos++
	}
	return len(samples), true
}

func (self *hitTone) Err() error {
	return nil
}
