package sketchpad

// Cue names a short audio feedback sound.
type Cue int

const (
	CuePop Cue = iota
	CueClick
	CueWin
	CueDing
	CueError
	CueWhoosh
	CueBell
	CueLevelUp
)

var cueNames = [...]string{"pop", "click", "win", "ding", "error", "whoosh", "bell", "levelup"}

func (c Cue) String() string {
	if c >= 0 && int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// Feedback is a fire-and-forget cue sink, usually an audio player.
// The surface tolerates a Feedback that errors or panics.
type Feedback interface {
	Cue(c Cue) error
}

// FeedbackFunc adapts a function to the Feedback interface.
type FeedbackFunc func(Cue) error

// Cue implements Feedback.
func (f FeedbackFunc) Cue(c Cue) error { return f(c) }

// notify fires c on the configured feedback, swallowing any failure.
func (s *Surface) notify(c Cue) {
	fb := s.opts.feedback
	if fb == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("sketchpad: feedback panicked", "cue", c, "panic", r)
		}
	}()
	if err := fb.Cue(c); err != nil {
		Logger().Warn("sketchpad: feedback failed", "cue", c, "err", err)
	}
}
