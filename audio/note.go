package audio

import (
	"fmt"
	"math"
	"strconv"
)

var semitones = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// MIDI returns the MIDI number of a scientific pitch name such as "C4",
// "F#3" or "Bb5".
func MIDI(name string) (int, error) {
	if len(name) < 2 {
		return 0, fmt.Errorf("audio: bad note %q", name)
	}
	base, ok := semitones[name[0]]
	if !ok {
		return 0, fmt.Errorf("audio: bad note %q", name)
	}
	rest := name[1:]
	switch rest[0] {
	case '#':
		base++
		rest = rest[1:]
	case 'b':
		base--
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("audio: bad note %q", name)
	}
	n := 12*(octave+1) + base
	if n < 0 || n > 127 {
		return 0, fmt.Errorf("audio: note %q out of range", name)
	}
	return n, nil
}

// NoteFreq returns the equal temperament frequency in Hz for a MIDI note,
// with A4 (69) at 440 Hz.
func NoteFreq(midi int) float64 {
	if midi < 0 || midi > 127 {
		return 0
	}
	return 440 * math.Pow(2, float64(midi-69)/12)
}

// Freq returns the frequency of a pitch name.
func Freq(name string) (float64, error) {
	n, err := MIDI(name)
	if err != nil {
		return 0, err
	}
	return NoteFreq(n), nil
}
