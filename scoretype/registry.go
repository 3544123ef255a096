package scoretype

import (
	"sync"

	"github.com/programme-lv/scoring/taskcfg"
)

// GroupPolicy folds a subtask's testcase outcomes into a single score
// fraction and classifies individual outcomes into verdicts. The subtask's
// Param field is opaque to the engine; only the policy interprets it.
type GroupPolicy interface {
	Name() string
	// Validate checks the subtask's policy parameter; called once at
	// score type construction so that broken task configuration fails
	// before any submission is scored.
	Validate(st taskcfg.Subtask) error
	Reduce(outcomes []float64, st taskcfg.Subtask) float64
	Classify(outcome float64, st taskcfg.Subtask) Verdict
}

var (
	registryMu sync.RWMutex
	registry   = map[string]GroupPolicy{}
)

// Register makes a policy selectable by name in task configuration.
// Built-in policies register themselves in init.
func Register(p GroupPolicy) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[p.Name()] = p
}

func Lookup(name string) (GroupPolicy, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := registry[name]
	return p, ok
}
