package scoretype

import "github.com/programme-lv/scoring/taskcfg"

// GroupMul scores a subtask by the product of its testcase outcomes.
type GroupMul struct{}

func init() { Register(GroupMul{}) }

func (GroupMul) Name() string { return "mul" }

func (GroupMul) Validate(st taskcfg.Subtask) error { return nil }

func (GroupMul) Reduce(outcomes []float64, st taskcfg.Subtask) float64 {
	product := 1.0
	for _, o := range outcomes {
		product *= o
	}
	return product
}

func (GroupMul) Classify(outcome float64, st taskcfg.Subtask) Verdict {
	return classifyByOutcome(outcome)
}
