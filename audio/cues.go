package audio

import (
	"time"

	"github.com/gogpu/sketchpad"
	"github.com/gopxl/beep"
)

// voice describes one feedback sound: every note starts together.
type voice struct {
	wave   Wave
	notes  []string
	length time.Duration
	attack time.Duration
}

var voices = map[sketchpad.Cue]voice{
	sketchpad.CuePop:     {Triangle, []string{"C4"}, 100 * time.Millisecond, 5 * time.Millisecond},
	sketchpad.CueClick:   {Square, []string{"A4"}, 50 * time.Millisecond, 3 * time.Millisecond},
	sketchpad.CueWin:     {Triangle, []string{"G4", "B4", "D5"}, 200 * time.Millisecond, 10 * time.Millisecond},
	sketchpad.CueDing:    {Sine, []string{"E5"}, 300 * time.Millisecond, 5 * time.Millisecond},
	sketchpad.CueError:   {Sawtooth, []string{"C3"}, 150 * time.Millisecond, 5 * time.Millisecond},
	sketchpad.CueWhoosh:  {Triangle, []string{"F4"}, 200 * time.Millisecond, 10 * time.Millisecond},
	sketchpad.CueBell:    {Sine, []string{"G5", "D6"}, 300 * time.Millisecond, 3 * time.Millisecond},
	sketchpad.CueLevelUp: {Triangle, []string{"C4", "E4", "G4", "C5"}, 150 * time.Millisecond, 5 * time.Millisecond},
}

// render synthesizes c at rate. Unknown cues render nothing.
func render(c sketchpad.Cue, rate beep.SampleRate) buffer {
	v, ok := voices[c]
	if !ok {
		return nil
	}
	n := rate.N(v.length)
	gain := 1 / float64(len(v.notes))

	var out buffer
	for _, note := range v.notes {
		f, err := Freq(note)
		if err != nil {
			continue
		}
		tone := oscillator(v.wave, f, n, rate)
		applyEnvelope(tone, v.attack, rate)
		out = mixInto(out, tone, gain)
	}
	return out
}

// Voice returns a one-shot streamer for c, or nil for an unknown cue.
func Voice(c sketchpad.Cue, rate beep.SampleRate) beep.Streamer {
	buf := render(c, rate)
	if buf == nil {
		return nil
	}
	return &streamer{buf: buf}
}
