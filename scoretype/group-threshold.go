package scoretype

import (
	"fmt"
	"strconv"

	"github.com/programme-lv/scoring/taskcfg"
)

// GroupThreshold treats outcomes as scores to minimize (e.g. measured
// runtimes): a subtask earns full credit only if every outcome lies in
// (0, T] where T is the subtask's Param, and nothing otherwise.
type GroupThreshold struct{}

func init() { Register(GroupThreshold{}) }

func (GroupThreshold) Name() string { return "threshold" }

func (GroupThreshold) Validate(st taskcfg.Subtask) error {
	t, err := strconv.ParseFloat(st.Param, 64)
	if err != nil {
		return fmt.Errorf("threshold param %q is not a number: %w", st.Param, err)
	}
	if t <= 0 {
		return fmt.Errorf("threshold param must be positive, got %v", t)
	}
	return nil
}

func (p GroupThreshold) Reduce(outcomes []float64, st taskcfg.Subtask) float64 {
	t := p.threshold(st)
	for _, o := range outcomes {
		if o <= 0.0 || o > t {
			return 0.0
		}
	}
	return 1.0
}

func (p GroupThreshold) Classify(outcome float64, st taskcfg.Subtask) Verdict {
	if outcome > 0.0 && outcome <= p.threshold(st) {
		return VerdictCorrect
	}
	return VerdictNotCorrect
}

func (GroupThreshold) threshold(st taskcfg.Subtask) float64 {
	// Param is checked by Validate before any scoring happens
	t, _ := strconv.ParseFloat(st.Param, 64)
	return t
}
