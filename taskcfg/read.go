package taskcfg

import (
	"fmt"
	"os"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pelletier/go-toml/v2"
)

// DefaultScoreType is used when a task's TOML omits score_type
const DefaultScoreType = "min"

// Read loads and validates a task's scoring configuration, e.g.:
//
//	score_type = "min"
//
//	[[testcases]]
//	codename = "01a"
//	public = true
//
//	[[subtasks]]
//	max_score = 30
//	testcases = ["01a", "01b"]
func Read(path string) (Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Task{}, fmt.Errorf("failed to read task config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Task, error) {
	var t Task
	err := toml.Unmarshal(data, &t)
	if err != nil {
		return Task{}, fmt.Errorf("failed to unmarshal task config: %w", err)
	}
	if t.ScoreType == "" {
		t.ScoreType = DefaultScoreType
	}
	if err := t.validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (t Task) validate() error {
	if len(t.Subtasks) == 0 {
		return fmt.Errorf("task config has no subtasks")
	}

	declared := mapset.NewSet[string]()
	for _, tc := range t.Testcases {
		if tc.Codename == "" {
			return fmt.Errorf("testcase with empty codename")
		}
		if !declared.Add(tc.Codename) {
			return fmt.Errorf("duplicate testcase codename %q", tc.Codename)
		}
	}

	for i, st := range t.Subtasks {
		if st.MaxScore < 0 {
			return fmt.Errorf("subtask %d has negative max score %v", i+1, st.MaxScore)
		}
		if len(st.Testcases) == 0 {
			return fmt.Errorf("subtask %d has no testcases", i+1)
		}
		for _, codename := range st.Testcases {
			if !declared.Contains(codename) {
				return fmt.Errorf("subtask %d references undeclared testcase %q", i+1, codename)
			}
		}
	}

	return nil
}
