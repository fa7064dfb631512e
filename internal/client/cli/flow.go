package cli

// flowState is the per-screen submission lifecycle:
// Idle -> Submitting -> {Succeeded, Failed}. A new attempt from Failed
// clears the previous error.
type flowState int

const (
	flowIdle flowState = iota
	flowSubmitting
	flowSucceeded
	flowFailed
)

// flow guards a screen's submit control. begin refuses re-entry while a
// request is outstanding, and completions carry a generation number so a
// result arriving after the screen has been left is discarded instead of
// mutating state it no longer owns.
type flow struct {
	state  flowState
	gen    int
	errMsg string
}

// begin moves to Submitting and returns the completion callback bound to
// this attempt. The second return is false when a submission is already in
// flight; the caller must not start another request.
func (f *flow) begin() (func(errMsg string), bool) {
	if f.state == flowSubmitting {
		return nil, false
	}
	f.state = flowSubmitting
	f.errMsg = ""
	f.gen++
	gen := f.gen

	return func(errMsg string) {
		if gen != f.gen {
			// Stale completion from an abandoned attempt.
			return
		}
		if errMsg == "" {
			f.state = flowSucceeded
		} else {
			f.state = flowFailed
			f.errMsg = errMsg
		}
	}, true
}

// abandon invalidates any outstanding completion, e.g. when the user leaves
// the screen mid-request.
func (f *flow) abandon() {
	f.gen++
	if f.state == flowSubmitting {
		f.state = flowIdle
	}
}

func (f *flow) submitting() bool {
	return f.state == flowSubmitting
}

// lastError returns the message of the latest failed attempt, or "".
func (f *flow) lastError() string {
	if f.state != flowFailed {
		return ""
	}
	return f.errMsg
}
