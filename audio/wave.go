package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Triangle
	Sawtooth
)

// buffer is mono float64 samples at unity gain
type buffer []float64

// oscillator renders n samples of wave at freq.
func oscillator(wave Wave, freq float64, n int, rate beep.SampleRate) buffer {
	buf := make(buffer, n)
	phase := 0.0
	inc := freq / float64(rate)

	for i := range buf {
		switch wave {
		case Sine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case Square:
			if phase < 0.5 {
				buf[i] = 1
			} else {
				buf[i] = -1
			}
		case Triangle:
			buf[i] = 1 - 4*math.Abs(phase-0.5)
		case Sawtooth:
			buf[i] = 2 * (phase - 0.5)
		}

		phase += inc
		phase -= math.Floor(phase)
	}
	return buf
}

// applyEnvelope ramps up over attack and then decays linearly to silence at
// the end of buf, in place. There is no sustain stage.
func applyEnvelope(buf buffer, attack time.Duration, rate beep.SampleRate) {
	total := len(buf)
	att := min(rate.N(attack), total)
	decay := total - att

	for i := range buf {
		vol := 1.0
		switch {
		case i < att:
			vol = float64(i) / float64(att)
		case decay > 0:
			vol = float64(total-i) / float64(decay)
		}
		buf[i] *= vol
	}
}

// mixInto adds b scaled by gain into a, extending a if needed.
func mixInto(a, b buffer, gain float64) buffer {
	if len(b) > len(a) {
		extended := make(buffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * gain
	}
	return a
}

// streamer plays a rendered buffer once on both channels.
type streamer struct {
	buf buffer
	pos int
}

func (s *streamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			return i, true
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *streamer) Err() error { return nil }
