package scoretype

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/programme-lv/scoring/evalres"
	"github.com/programme-lv/scoring/srvcerror"
	"github.com/programme-lv/scoring/taskcfg"
)

// GroupScoreType scores a submission subtask by subtask: each subtask's
// outcomes are folded into a score fraction by the configured reduction
// policy and multiplied by the subtask's max score.
type GroupScoreType struct {
	subtasks []taskcfg.Subtask
	public   map[string]bool
	policy   GroupPolicy
}

// New resolves the task's score type against the policy registry and
// validates every subtask's policy parameter. Configuration problems are
// reported here, not at scoring time.
func New(task taskcfg.Task) (*GroupScoreType, error) {
	policy, ok := Lookup(task.ScoreType)
	if !ok {
		return nil, srvcerror.ErrUnknownScoreType().SetDebug(
			fmt.Errorf("score type %q is not registered", task.ScoreType))
	}
	for i, st := range task.Subtasks {
		if err := policy.Validate(st); err != nil {
			return nil, srvcerror.ErrInvalidScoreParams().SetDebug(
				fmt.Errorf("subtask %d: %w", i+1, err))
		}
	}
	return &GroupScoreType{
		subtasks: task.Subtasks,
		public:   task.Public(),
		policy:   policy,
	}, nil
}

func (g *GroupScoreType) ComputeScore(res evalres.SubmissionResult) (Result, error) {
	if !res.Evaluated() {
		// didn't even compile: zero score, empty breakdowns, but still
		// one placeholder cell per subtask to keep ranking tables aligned
		ranking := make([]string, len(g.subtasks))
		for i := range ranking {
			ranking[i] = formatScore(0.0)
		}
		return Result{
			Subtasks:       []SubtaskResult{},
			PublicSubtasks: []SubtaskResult{},
			RankingDetails: ranking,
		}, nil
	}

	evals := res.ByCodename()

	r := Result{
		Subtasks:       make([]SubtaskResult, 0, len(g.subtasks)),
		PublicSubtasks: make([]SubtaskResult, 0, len(g.subtasks)),
		RankingDetails: make([]string, 0, len(g.subtasks)),
	}

	for idx, st := range g.subtasks {
		outcomes := make([]float64, 0, len(st.Testcases))
		for _, codename := range st.Testcases {
			ev, ok := evals[codename]
			if !ok {
				return Result{}, srvcerror.ErrDataIntegrity().SetDebug(fmt.Errorf(
					"testcase %q of subtask %d has no evaluation in submission %s",
					codename, idx+1, res.SubmUuid))
			}
			outcomes = append(outcomes, ev.Outcome)
		}
		worstOutcome := slices.Min(outcomes)

		testcases := make([]TestcaseResult, 0, len(st.Testcases))
		publicTestcases := make([]TestcaseResult, 0, len(st.Testcases))
		allPublic := true
		previousAllCorrect := true
		for i, codename := range st.Testcases {
			ev := evals[codename]
			tc := TestcaseResult{
				Codename:                 codename,
				Verdict:                  g.policy.Classify(ev.Outcome, st),
				Text:                     ev.Text,
				Time:                     ev.Time,
				Memory:                   ev.Memory,
				ShowInRestrictedFeedback: previousAllCorrect,
			}
			testcases = append(testcases, tc)
			if g.public[codename] {
				publicTestcases = append(publicTestcases, tc)
			} else {
				allPublic = false
				publicTestcases = append(publicTestcases, TestcaseResult{Codename: codename})
			}
			previousAllCorrect = advanceRestrictedFeedback(
				previousAllCorrect, g.public[codename], outcomes[i], worstOutcome)
		}

		fraction := g.policy.Reduce(outcomes, st)
		subtaskScore := fraction * st.MaxScore
		r.Score += subtaskScore

		full := SubtaskResult{
			Idx:           idx + 1,
			ScoreFraction: fraction,
			MaxScore:      st.MaxScore,
			AltTitle:      st.AltTitle,
			FullFeedback:  true,
			Testcases:     testcases,
		}
		r.Subtasks = append(r.Subtasks, full)

		if allPublic {
			r.PublicScore += subtaskScore
			r.PublicSubtasks = append(r.PublicSubtasks, full)
		} else {
			r.PublicSubtasks = append(r.PublicSubtasks, SubtaskResult{
				Idx:       idx + 1,
				Testcases: publicTestcases,
			})
		}

		r.RankingDetails = append(r.RankingDetails, formatScore(math.Round(subtaskScore*100)/100))
	}

	return r, nil
}

// advanceRestrictedFeedback threads the restricted-feedback accumulator
// through one testcase of a subtask. The flag flips only on a public
// testcase whose outcome ties the subtask's worst; a private testcase's
// failure must never flip it, since that would let the restricted view
// reveal that a hidden testcase failed.
func advanceRestrictedFeedback(previousAllCorrect, public bool, outcome, worstOutcome float64) bool {
	if public && outcome <= worstOutcome {
		return false
	}
	return previousAllCorrect
}

// formatScore renders a score without trailing zeros, e.g. 18 not 18.00
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'g', -1, 64)
}
