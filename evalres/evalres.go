package evalres

import "github.com/google/uuid"

// Evaluation is the raw result of running a submission against one
// testcase, as produced by the execution backend. Outcome is nominally
// in [0,1] but not clamped. Text is a status template: the first element
// is a printf-style format string and the rest are its substitution
// arguments. Time is in seconds, Memory in bytes.
type Evaluation struct {
	TestcaseID string   `json:"testcase_id"`
	Outcome    float64  `json:"outcome"`
	Text       []string `json:"text"`
	Time       float64  `json:"time"`
	Memory     int64    `json:"memory"`
}

// SubmissionResult aggregates all evaluations of one submission against
// one dataset. It is replaced wholesale on rejudge; callers must not
// mutate it while a score computation is in flight.
type SubmissionResult struct {
	SubmUuid    uuid.UUID    `json:"subm_uuid"`
	Compiled    bool         `json:"compiled"`
	Evaluations []Evaluation `json:"evaluations"`
}

// Evaluated reports whether the submission compiled and ran against the
// testcases; a false result short-circuits scoring to zero.
func (r SubmissionResult) Evaluated() bool {
	return r.Compiled && len(r.Evaluations) > 0
}

// ByCodename indexes the evaluations by testcase identifier
func (r SubmissionResult) ByCodename() map[string]Evaluation {
	m := make(map[string]Evaluation, len(r.Evaluations))
	for _, ev := range r.Evaluations {
		m[ev.TestcaseID] = ev
	}
	return m
}
