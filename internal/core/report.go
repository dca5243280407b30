package core

// Status is the outcome of one sub-operation in a batch.
type Status string

const (
	StatusInstalled Status = "installed"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
	StatusRemoved   Status = "removed"
	StatusWarning   Status = "warning"
)

// Result describes one item/agent pair, or a batch-level warning when
// Target is empty.
type Result struct {
	Item    string
	Agent   string // adapter display name
	Target  string // filesystem path acted on
	Status  Status
	Message string
	Err     error
}

// Report collects results of a batched operation. A report never aborts the
// batch; callers inspect it afterwards.
type Report struct {
	Results []Result
}

// Add appends a result.
func (r *Report) Add(res Result) {
	r.Results = append(r.Results, res)
}

// Warn appends a batch-level warning.
func (r *Report) Warn(item, msg string) {
	r.Add(Result{Item: item, Status: StatusWarning, Message: msg})
}

// Merge appends every result of other.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Results = append(r.Results, other.Results...)
}

// Count returns how many results have the given status.
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// ByStatus returns the results with the given status.
func (r *Report) ByStatus(s Status) []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Status == s {
			out = append(out, res)
		}
	}
	return out
}

// Failed reports whether any result failed.
func (r *Report) Failed() bool { return r.Count(StatusFailed) > 0 }
