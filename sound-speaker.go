package main

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
)

type gameSound int

const (
	eatSound gameSound = iota
	crashSound
)

type soundPlayer interface {
	play(snd gameSound)
}

const soundSampleRate = beep.SampleRate(44100)

// beepSpeaker synthesizes short tones for game events. The speaker is
// initialized lazily on the first sound so a missing audio device only
// costs a log line, never the game.
type beepSpeaker struct {
	initialized bool
	failed      bool
	mu          sync.Mutex
}

func (spkr *beepSpeaker) init() error {
	bufSize := soundSampleRate.N(time.Second / 10)
	log.Infof("Initializing speaker %d,%d", soundSampleRate, bufSize)
	if err := speaker.Init(soundSampleRate, bufSize); err != nil {
		return errors.Wrap(err, "initializing speaker")
	}
	spkr.initialized = true
	return nil
}

func (spkr *beepSpeaker) play(snd gameSound) {
	spkr.mu.Lock()
	defer spkr.mu.Unlock()

	if spkr.failed {
		return
	}
	if !spkr.initialized {
		if err := spkr.init(); err != nil {
			log.Error(err.Error())
			spkr.failed = true
			return
		}
	}

	tone, err := toneFor(snd)
	if err != nil {
		log.Error(err.Error())
		return
	}
	speaker.Play(tone)
}

func toneFor(snd gameSound) (beep.Streamer, error) {
	freq, duration := 880, 60*time.Millisecond
	if snd == crashSound {
		freq, duration = 110, 400*time.Millisecond
	}

	tone, err := generators.SinTone(soundSampleRate, freq)
	if err != nil {
		return nil, errors.Wrapf(err, "generating %d Hz tone", freq)
	}
	quieter := &effects.Volume{Streamer: tone, Base: 2, Volume: -2}
	return beep.Take(soundSampleRate.N(duration), quieter), nil
}
