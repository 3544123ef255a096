package scoretype

import (
	"slices"

	"github.com/programme-lv/scoring/taskcfg"
)

// GroupMin scores a subtask by its worst testcase outcome: every
// testcase in the subtask must pass for full credit.
type GroupMin struct{}

func init() { Register(GroupMin{}) }

func (GroupMin) Name() string { return "min" }

func (GroupMin) Validate(st taskcfg.Subtask) error { return nil }

func (GroupMin) Reduce(outcomes []float64, st taskcfg.Subtask) float64 {
	return slices.Min(outcomes)
}

func (GroupMin) Classify(outcome float64, st taskcfg.Subtask) Verdict {
	return classifyByOutcome(outcome)
}
