package trace

// Recorder accumulates Steps for one solve. Use NewRecorder; a nil
// *Recorder is a valid disabled recorder.
type Recorder struct {
	steps []Step
}

// NewRecorder returns an enabled recorder with room for hint steps.
func NewRecorder(hint int) *Recorder {
	if hint < 0 {
		hint = 0
	}

	return &Recorder{steps: make([]Step, 0, hint)}
}

// Enabled reports whether Record keeps steps.
func (r *Recorder) Enabled() bool { return r != nil }

// Record appends s. It is a no-op on a nil recorder.
func (r *Recorder) Record(s Step) {
	if r == nil {
		return
	}
	r.steps = append(r.steps, s)
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}

	return len(r.steps)
}

// Steps returns the recorded history in fill order. The slice is owned by
// the caller once the solve has returned.
func (r *Recorder) Steps() []Step {
	if r == nil {
		return nil
	}

	return r.steps
}

// Count returns how many recorded steps have the given kind.
func (r *Recorder) Count(kind StepKind) int {
	if r == nil {
		return 0
	}
	n := 0
	for i := range r.steps {
		if r.steps[i].Kind == kind {
			n++
		}
	}

	return n
}

// Reset drops every recorded step but keeps the allocated capacity.
func (r *Recorder) Reset() {
	if r == nil {
		return
	}
	r.steps = r.steps[:0]
}
