package timer

import "errors"

// ErrInvalidTransition indicates a transition was called from a phase that
// does not allow it. Only returned when strict transitions are enabled;
// lenient timers treat invalid transitions as no-ops so double-clicked UI
// controls cannot corrupt state.
var ErrInvalidTransition = errors.New("invalid timer transition")
