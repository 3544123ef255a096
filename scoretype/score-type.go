package scoretype

import (
	"github.com/programme-lv/scoring/evalres"
)

// Verdict is a translatable message id describing a single testcase outcome
type Verdict string

const (
	VerdictCorrect          Verdict = "Correct"
	VerdictNotCorrect       Verdict = "Not correct"
	VerdictPartiallyCorrect Verdict = "Partially correct"
)

// TestcaseResult is one testcase's entry in a score breakdown. In the
// public breakdown a testcase that is not visible to the contestant
// carries only its codename.
type TestcaseResult struct {
	Codename string   `json:"codename"`
	Verdict  Verdict  `json:"verdict,omitempty"`
	Text     []string `json:"text,omitempty"`
	Time     float64  `json:"time,omitempty"`
	Memory   int64    `json:"memory,omitempty"`

	// whether the contestant may see this testcase's verdict and text
	// in the restricted feedback view
	ShowInRestrictedFeedback bool `json:"show_in_restricted_feedback,omitempty"`
}

// SubtaskResult is one subtask's entry in a score breakdown.
// FullFeedback marks entries that carry the score fraction and full
// per-testcase detail; a partially public subtask's public entry does not.
type SubtaskResult struct {
	Idx           int              `json:"idx"`
	ScoreFraction float64          `json:"score_fraction"`
	MaxScore      float64          `json:"max_score"`
	AltTitle      string           `json:"alt_title,omitempty"`
	FullFeedback  bool             `json:"full_feedback"`
	Testcases     []TestcaseResult `json:"testcases"`
}

// Result is the scored view of one submission against one task.
// PublicScore and PublicSubtasks are computed only from testcases the
// contestant is allowed to see; PublicScore never exceeds Score.
// RankingDetails holds one compact score string per subtask for
// scoreboard columns.
type Result struct {
	Score          float64         `json:"score"`
	Subtasks       []SubtaskResult `json:"subtasks"`
	PublicScore    float64         `json:"public_score"`
	PublicSubtasks []SubtaskResult `json:"public_subtasks"`
	RankingDetails []string        `json:"ranking_details"`
}

// ScoreType turns a submission's raw testcase outcomes into its score
// and feedback breakdowns. Implementations are pure functions over the
// submission result and the task configuration captured at construction.
type ScoreType interface {
	ComputeScore(res evalres.SubmissionResult) (Result, error)
}

func classifyByOutcome(outcome float64) Verdict {
	switch {
	case outcome <= 0.0:
		return VerdictNotCorrect
	case outcome >= 1.0:
		return VerdictCorrect
	default:
		return VerdictPartiallyCorrect
	}
}
