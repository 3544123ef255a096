package taskcfg

// Testcase is a single judged input/answer pair. Public testcases are
// visible to the contestant; private ones appear in contestant-facing
// breakdowns only by codename.
type Testcase struct {
	Codename string `toml:"codename"`
	Public   bool   `toml:"public"`
}

// Subtask is a weighted group of testcases scored jointly. Param is an
// opaque reduction-policy parameter; the engine never interprets it.
type Subtask struct {
	MaxScore  float64  `toml:"max_score"`
	Testcases []string `toml:"testcases"` // ordered codenames
	AltTitle  string   `toml:"alt_title"`
	Param     string   `toml:"param"`
}

// Task is the static scoring configuration of one task/dataset. It is
// fixed at task preparation time and shared, read-only, by all score
// computations.
type Task struct {
	ScoreType string     `toml:"score_type"`
	Subtasks  []Subtask  `toml:"subtasks"`
	Testcases []Testcase `toml:"testcases"`
}

// Public returns the visibility lookup table keyed by codename
func (t Task) Public() map[string]bool {
	m := make(map[string]bool, len(t.Testcases))
	for _, tc := range t.Testcases {
		m[tc.Codename] = tc.Public
	}
	return m
}
