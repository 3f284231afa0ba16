// Package progress tracks a learner's movement through the selected
// cycle steps. State lives in plain values returned to the caller;
// transitions never mutate in place, so a host can replay them
// deterministically.
package progress

// State is the gate position of one step.
type State string

const (
	StateLocked    State = "locked"
	StateActive    State = "active"
	StateCompleted State = "completed"
)

// DefaultAttempts is the per-step retry budget.
const DefaultAttempts = 3

// Status is the mutable record for one step: attempts remaining, and
// the completion/correctness flags. Completion is terminal: a
// completed step never reopens within an activity instance.
type Status struct {
	Attempts  int  `json:"attempts"`
	Completed bool `json:"completed"`
	Correct   bool `json:"correct"`
}

// NewStatus returns the initial status for a step.
func NewStatus() Status {
	return Status{Attempts: DefaultAttempts}
}

// Apply folds one validation verdict into a status and returns the new
// value. A correct answer completes the step; an incorrect one spends
// an attempt, and exhausting the budget completes the step as
// incorrect rather than blocking the learner forever. Applying to an
// already-completed status is a no-op.
func Apply(s Status, isCorrect bool) Status {
	if s.Completed {
		return s
	}
	if isCorrect {
		s.Completed = true
		s.Correct = true
		return s
	}
	if s.Attempts > 0 {
		s.Attempts--
	}
	if s.Attempts == 0 {
		s.Completed = true
	}
	return s
}

// States derives the gate position of every step in the selected
// sequence: the first step starts active, and each later step is
// locked until its immediate predecessor completes (correctly or not).
func States(sequence []int, statuses map[int]Status) map[int]State {
	out := make(map[int]State, len(sequence))
	for i, step := range sequence {
		st := statuses[step]
		switch {
		case st.Completed:
			out[step] = StateCompleted
		case i == 0 || statuses[sequence[i-1]].Completed:
			out[step] = StateActive
		default:
			out[step] = StateLocked
		}
	}
	return out
}
