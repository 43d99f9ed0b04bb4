package sound

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate   beep.SampleRate = 44100
	toneFreq                     = 220
	toneDuration                 = 120 * time.Millisecond
)

// Beeper plays a short feedback tone when input turns invalid. The speaker is
// initialized lazily on the first tone; if audio is unavailable the beeper
// disables itself and stays silent for the rest of the session.
type Beeper struct {
	initDone bool
	disabled bool
}

func (b *Beeper) ErrorTone() {
	if b.disabled {
		return
	}
	if !b.initDone {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
			b.disabled = true
			return
		}
		b.initDone = true
	}
	tone, err := generators.SinTone(sampleRate, toneFreq)
	if err != nil {
		b.disabled = true
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneDuration), tone))
}
