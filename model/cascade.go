package model

// CascadeStep records the outcome of one teardown sub-step.
type CascadeStep struct {
	Action   string
	Resource string
	Err      error
}

// CascadeReport accumulates per-step outcomes of a teardown so partial
// failures are returned to the caller instead of only logged.
type CascadeReport struct {
	Succeeded []CascadeStep
	Failed    []CascadeStep
}

// Record files one step outcome under succeeded or failed.
func (r *CascadeReport) Record(action, resource string, err error) {
	step := CascadeStep{Action: action, Resource: resource, Err: err}
	if err != nil {
		r.Failed = append(r.Failed, step)
		return
	}
	r.Succeeded = append(r.Succeeded, step)
}

// Merge appends another report's outcomes, preserving order.
func (r *CascadeReport) Merge(other *CascadeReport) {
	if other == nil {
		return
	}
	r.Succeeded = append(r.Succeeded, other.Succeeded...)
	r.Failed = append(r.Failed, other.Failed...)
}

// Clean reports whether every step succeeded.
func (r *CascadeReport) Clean() bool {
	return len(r.Failed) == 0
}
