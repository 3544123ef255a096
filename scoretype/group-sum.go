package scoretype

import "github.com/programme-lv/scoring/taskcfg"

// GroupSum scores a subtask by the average of its testcase outcomes,
// so partial credit accumulates testcase by testcase.
type GroupSum struct{}

func init() { Register(GroupSum{}) }

func (GroupSum) Name() string { return "sum" }

func (GroupSum) Validate(st taskcfg.Subtask) error { return nil }

func (GroupSum) Reduce(outcomes []float64, st taskcfg.Subtask) float64 {
	sum := 0.0
	for _, o := range outcomes {
		sum += o
	}
	return sum / float64(len(outcomes))
}

func (GroupSum) Classify(outcome float64, st taskcfg.Subtask) Verdict {
	return classifyByOutcome(outcome)
}
