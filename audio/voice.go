package audio

import (
	"math"
	"time"
)

// Cue voices are beep streamers that synthesize one short sound and
// are discarded. Oscillators accumulate phase so frequency sweeps stay
// continuous; envelopes are a linear attack into an exponential decay.

const attackSec = 0.003

// envelope returns the amplitude scale at t for a cue lasting dur
func envelope(t, dur float64) float64 {
	if t < attackSec {
		return t / attackSec
	}
	return math.Exp(-4 * (t - attackSec) / dur)
}

// --- Sweep Voice ---

// sweepVoice glides a sine from one frequency to another
type sweepVoice struct {
	from, to float64
	dur      float64
	gain     float64
	pos      int
	phase    float64
}

func newSweepVoice(from, to, dur, gain float64) *sweepVoice {
	return &sweepVoice{from: from, to: to, dur: dur, gain: gain}
}

func (v *sweepVoice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(v.pos) / float64(sampleRate)
		prog := t / v.dur
		if prog > 1 {
			prog = 1
		}
		freq := v.from + (v.to-v.from)*prog
		v.phase += freq / float64(sampleRate)
		if v.phase >= 1 {
			v.phase -= 1
		}
		sample := v.gain * envelope(t, v.dur) * math.Sin(2*math.Pi*v.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		v.pos++
	}
	return len(samples), true
}

func (v *sweepVoice) Err() error { return nil }

// --- Tick Voice ---

// tickVoice is a sharp two-harmonic ping for impact feedback
type tickVoice struct {
	freq   float64
	gain   float64
	pos    int
	phase  float64
	phase2 float64
}

func newTickVoice(freq, gain float64) *tickVoice {
	return &tickVoice{freq: freq, gain: gain}
}

func (v *tickVoice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(v.pos) / float64(sampleRate)
		v.phase += v.freq / float64(sampleRate)
		if v.phase >= 1 {
			v.phase -= 1
		}
		v.phase2 += 2 * v.freq / float64(sampleRate)
		if v.phase2 >= 1 {
			v.phase2 -= 1
		}
		raw := 0.7*math.Sin(2*math.Pi*v.phase) + 0.3*math.Sin(2*math.Pi*v.phase2)
		sample := v.gain * envelope(t, 0.06) * raw
		samples[i][0] = sample
		samples[i][1] = sample
		v.pos++
	}
	return len(samples), true
}

func (v *tickVoice) Err() error { return nil }

// --- Zap Voice ---

// zapVoice is a vibrato-modulated carrier for chain lightning hops
type zapVoice struct {
	carrier  float64
	gain     float64
	pos      int
	phase    float64
	modPhase float64
}

func newZapVoice(carrier, gain float64) *zapVoice {
	return &zapVoice{carrier: carrier, gain: gain}
}

func (v *zapVoice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(v.pos) / float64(sampleRate)
		v.modPhase += 40 / float64(sampleRate)
		if v.modPhase >= 1 {
			v.modPhase -= 1
		}
		freq := v.carrier * (1 + 0.25*math.Sin(2*math.Pi*v.modPhase))
		v.phase += freq / float64(sampleRate)
		if v.phase >= 1 {
			v.phase -= 1
		}
		sample := v.gain * envelope(t, 0.10) * math.Sin(2*math.Pi*v.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		v.pos++
	}
	return len(samples), true
}

func (v *zapVoice) Err() error { return nil }

// --- Crackle Voice ---

// crackleVoice mixes filtered noise with a low rumble for blasts and
// ignitions
type crackleVoice struct {
	noiseGain  float64
	rumbleFreq float64
	rumbleGain float64
	dur        float64
	pos        int
	seed       int64
}

func newCrackleVoice(noiseGain, rumbleFreq, rumbleGain, dur float64) *crackleVoice {
	return &crackleVoice{
		noiseGain:  noiseGain,
		rumbleFreq: rumbleFreq,
		rumbleGain: rumbleGain,
		dur:        dur,
		seed:       time.Now().UnixNano(),
	}
}

func (v *crackleVoice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(v.pos) / float64(sampleRate)
		v.seed = (v.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(v.seed)/float64(0x7fffffff)*2 - 1

		sample := v.noiseGain * noise
		if v.rumbleFreq > 0 {
			sample += v.rumbleGain * math.Sin(2*math.Pi*v.rumbleFreq*t)
		}
		sample *= envelope(t, v.dur)

		samples[i][0] = sample
		samples[i][1] = sample
		v.pos++
	}
	return len(samples), true
}

func (v *crackleVoice) Err() error { return nil }
