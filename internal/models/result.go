package models

import "time"

// Result records the evaluation of one check.
type Result struct {
	Check    Check
	Status   Status
	Duration time.Duration
}

// Report aggregates the results of a run.
type Report struct {
	RunID    string
	Results  []Result
	Passed   int
	Failed   int
	Duration time.Duration
}

// Add appends a result and updates the counters.
func (r *Report) Add(result Result) {
	r.Results = append(r.Results, result)
	if result.Status.Failed() {
		r.Failed++
	} else {
		r.Passed++
	}
}

// OK reports whether no check failed.
func (r *Report) OK() bool {
	return r.Failed == 0
}
