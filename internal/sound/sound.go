package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// Player plays short synthesized cues on the shared speaker. A nil *Player
// is valid and silent, so callers can keep going when audio is unavailable.
type Player struct {
	rate   beep.SampleRate
	freq   float64
	length time.Duration
	volume float64
	muted  bool
}

// Init opens the speaker at rate with a 50ms buffer.
func Init(rate beep.SampleRate, freq float64, length time.Duration, volume float64) (*Player, error) {
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return nil, err
	}
	return &Player{rate: rate, freq: freq, length: length, volume: volume}, nil
}

// Blip queues one cue unless muted.
func (p *Player) Blip() {
	if p == nil || p.muted {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: Tone(p.rate, p.freq, p.length),
		Base:     2,
		Volume:   p.volume,
	})
}

// ToggleMute flips the mute flag and clears anything still playing when
// muting.
func (p *Player) ToggleMute() bool {
	if p == nil {
		return true
	}
	p.muted = !p.muted
	if p.muted {
		speaker.Clear()
	}
	return p.muted
}

func (p *Player) Muted() bool { return p == nil || p.muted }

// Tone is a sine wave at freq that fades out linearly over length and then
// drains.
func Tone(rate beep.SampleRate, freq float64, length time.Duration) beep.Streamer {
	total := rate.N(length)
	pos := 0
	step := 2 * math.Pi * freq / float64(rate)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && pos < total {
			env := 1 - float64(pos)/float64(total)
			v := math.Sin(float64(pos)*step) * env
			samples[n][0], samples[n][1] = v, v
			n++
			pos++
		}
		return n, true
	})
}
