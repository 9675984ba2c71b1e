package contracts

// Cue names a semantically meaningful feedback request.
type Cue string

// Named cues of the built-in catalog.
const (
	CueTick            Cue = "tick"
	CueSoft            Cue = "soft"
	CueTap             Cue = "tap"
	CueAlignment       Cue = "alignment"
	CueLevelChange     Cue = "level_change"
	CueDoubleTap       Cue = "double_tap"
	CueTripleTap       Cue = "triple_tap"
	CueSuccess         Cue = "success"
	CueThunk           Cue = "thunk"
	CuePlay            Cue = "play"
	CuePause           Cue = "pause"
	CueDirectionChange Cue = "direction_change"
	// CueScrub is parameterized by intensity and has no fixed sequence.
	CueScrub Cue = "scrub"
)

// HapticClient is the fire-and-forget surface used by host applications.
// None of its cue methods report failure: a missing capability results in silence.
type HapticClient interface {
	Tick()                   // Ultra-light tick.
	Soft()                   // Subtle button feedback.
	Tap()                    // General interactions.
	Alignment()              // Snap for precise actions.
	LevelChange()            // Strongest single pulse.
	DoubleTap()              // "Click-clack".
	TripleTap()              // Error or warning.
	Success()                // Snap then settle.
	Thunk()                  // Heavy impact.
	Play()                   // Ascending energy.
	Pause()                  // Descending, settling.
	Scrub(intensity float64) // Scrubbing tick scaled by intensity.
	DirectionChange()        // Scrub reversed direction.
	Fire(name string) bool   // Fires a cue by name, reporting whether the name is known.
	Close() error            // Waits for in-flight sequences and releases the capability.
}
