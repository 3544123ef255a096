package scoretype

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/programme-lv/scoring/evalres"
	"github.com/programme-lv/scoring/srvcerror"
	"github.com/programme-lv/scoring/taskcfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minTask(subtasks []taskcfg.Subtask, testcases []taskcfg.Testcase) taskcfg.Task {
	return taskcfg.Task{
		ScoreType: "min",
		Subtasks:  subtasks,
		Testcases: testcases,
	}
}

func submission(evals ...evalres.Evaluation) evalres.SubmissionResult {
	return evalres.SubmissionResult{
		SubmUuid:    uuid.MustParse("a6e0b4a0-0000-0000-0000-000000000001"),
		Compiled:    true,
		Evaluations: evals,
	}
}

func eval(codename string, outcome float64) evalres.Evaluation {
	return evalres.Evaluation{
		TestcaseID: codename,
		Outcome:    outcome,
		Text:       []string{"Output is correct"},
		Time:       0.05,
		Memory:     1 << 20,
	}
}

func TestGroupMinSubtaskScore(t *testing.T) {
	task := minTask(
		[]taskcfg.Subtask{{MaxScore: 30, Testcases: []string{"01a", "01b", "01c"}}},
		[]taskcfg.Testcase{
			{Codename: "01a", Public: true},
			{Codename: "01b", Public: true},
			{Codename: "01c", Public: true},
		},
	)
	st, err := New(task)
	require.NoError(t, err)

	res, err := st.ComputeScore(submission(
		eval("01a", 1.0), eval("01b", 0.6), eval("01c", 1.0)))
	require.NoError(t, err)

	assert.Equal(t, 0.6, res.Subtasks[0].ScoreFraction)
	assert.Equal(t, 30.0, res.Subtasks[0].MaxScore)
	assert.InDelta(t, 18.0, res.Score, 1e-9)
	assert.Equal(t, []string{"18"}, res.RankingDetails)
}

func TestUnevaluatedSubmissionScoresZero(t *testing.T) {
	task := minTask(
		[]taskcfg.Subtask{
			{MaxScore: 30, Testcases: []string{"01a"}},
			{MaxScore: 70, Testcases: []string{"02a"}},
		},
		[]taskcfg.Testcase{
			{Codename: "01a", Public: true},
			{Codename: "02a", Public: false},
		},
	)
	st, err := New(task)
	require.NoError(t, err)

	res, err := st.ComputeScore(evalres.SubmissionResult{Compiled: false})
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Score)
	assert.Empty(t, res.Subtasks)
	assert.Equal(t, 0.0, res.PublicScore)
	assert.Empty(t, res.PublicSubtasks)
	// one placeholder per subtask keeps ranking tables column-aligned
	assert.Equal(t, []string{"0", "0"}, res.RankingDetails)
}

func TestMissingEvaluationFailsFast(t *testing.T) {
	task := minTask(
		[]taskcfg.Subtask{{MaxScore: 10, Testcases: []string{"01a", "01b"}}},
		[]taskcfg.Testcase{
			{Codename: "01a", Public: true},
			{Codename: "01b", Public: true},
		},
	)
	st, err := New(task)
	require.NoError(t, err)

	_, err = st.ComputeScore(submission(eval("01a", 1.0)))
	require.Error(t, err)

	var srvcErr *srvcerror.Error
	require.True(t, errors.As(err, &srvcErr))
	assert.Equal(t, srvcerror.ErrCodeDataIntegrity, srvcErr.ErrorCode())
}

func TestRestrictedFeedbackVisibility(t *testing.T) {
	task := minTask(
		[]taskcfg.Subtask{{MaxScore: 100, Testcases: []string{"A", "B", "C"}}},
		[]taskcfg.Testcase{
			{Codename: "A", Public: true},
			{Codename: "B", Public: true},
			{Codename: "C", Public: false},
		},
	)
	st, err := New(task)
	require.NoError(t, err)

	res, err := st.ComputeScore(submission(
		eval("A", 1.0), eval("B", 0.0), eval("C", 0.0)))
	require.NoError(t, err)

	full := res.Subtasks[0]
	assert.True(t, full.Testcases[0].ShowInRestrictedFeedback)
	// B itself is still shown: going into B no earlier public testcase failed
	assert.True(t, full.Testcases[1].ShowInRestrictedFeedback)
	// B is public and failed, which flips the state before C
	assert.False(t, full.Testcases[2].ShowInRestrictedFeedback)

	// C is private, so the subtask contributes nothing to the public score
	// and its public view is reduced
	assert.Equal(t, 0.0, res.PublicScore)
	pub := res.PublicSubtasks[0]
	assert.False(t, pub.FullFeedback)
	assert.Equal(t, 0.0, pub.ScoreFraction)
	assert.Equal(t, "A", pub.Testcases[0].Codename)
	assert.Equal(t, VerdictCorrect, pub.Testcases[0].Verdict)
	assert.Equal(t, VerdictNotCorrect, pub.Testcases[1].Verdict)
	// private testcase is identifier-only: no verdict, text, time or memory
	assert.Equal(t, TestcaseResult{Codename: "C"}, pub.Testcases[2])
}

func TestPrivateFailureDoesNotBlockFeedback(t *testing.T) {
	task := minTask(
		[]taskcfg.Subtask{{MaxScore: 100, Testcases: []string{"A", "B", "C"}}},
		[]taskcfg.Testcase{
			{Codename: "A", Public: false},
			{Codename: "B", Public: true},
			{Codename: "C", Public: true},
		},
	)
	st, err := New(task)
	require.NoError(t, err)

	// the private testcase fails first; showing that in the restricted
	// view would leak its result, so the flag must not flip on it
	res, err := st.ComputeScore(submission(
		eval("A", 0.0), eval("B", 1.0), eval("C", 1.0)))
	require.NoError(t, err)

	full := res.Subtasks[0]
	assert.True(t, full.Testcases[0].ShowInRestrictedFeedback)
	assert.True(t, full.Testcases[1].ShowInRestrictedFeedback)
	assert.True(t, full.Testcases[2].ShowInRestrictedFeedback)
}

func TestFullyPublicSubtasksMatchFullView(t *testing.T) {
	task := minTask(
		[]taskcfg.Subtask{
			{MaxScore: 40, Testcases: []string{"01a", "01b"}},
			{MaxScore: 60, Testcases: []string{"02a"}, AltTitle: "Samples"},
		},
		[]taskcfg.Testcase{
			{Codename: "01a", Public: true},
			{Codename: "01b", Public: true},
			{Codename: "02a", Public: true},
		},
	)
	st, err := New(task)
	require.NoError(t, err)

	res, err := st.ComputeScore(submission(
		eval("01a", 1.0), eval("01b", 0.5), eval("02a", 1.0)))
	require.NoError(t, err)

	assert.Equal(t, res.Score, res.PublicScore)
	assert.Equal(t, res.Subtasks, res.PublicSubtasks)
	assert.Equal(t, "Samples", res.Subtasks[1].AltTitle)
}

func TestPublicScoreNeverExceedsScore(t *testing.T) {
	task := minTask(
		[]taskcfg.Subtask{
			{MaxScore: 30, Testcases: []string{"01a", "01b"}},
			{MaxScore: 70, Testcases: []string{"02a", "02b"}},
		},
		[]taskcfg.Testcase{
			{Codename: "01a", Public: true},
			{Codename: "01b", Public: true},
			{Codename: "02a", Public: true},
			{Codename: "02b", Public: false},
		},
	)
	st, err := New(task)
	require.NoError(t, err)

	outcomes := [][]float64{
		{1, 1, 1, 1},
		{0, 1, 1, 0},
		{0.5, 0.7, 1, 0.2},
		{1, 0, 0, 1},
	}
	for _, o := range outcomes {
		res, err := st.ComputeScore(submission(
			eval("01a", o[0]), eval("01b", o[1]), eval("02a", o[2]), eval("02b", o[3])))
		require.NoError(t, err)
		assert.LessOrEqual(t, res.PublicScore, res.Score, "outcomes %v", o)
	}
}

func TestComputeScoreIsDeterministic(t *testing.T) {
	task := minTask(
		[]taskcfg.Subtask{
			{MaxScore: 25, Testcases: []string{"01a", "01b"}},
			{MaxScore: 75, Testcases: []string{"02a", "02b", "02c"}},
		},
		[]taskcfg.Testcase{
			{Codename: "01a", Public: true},
			{Codename: "01b", Public: false},
			{Codename: "02a", Public: true},
			{Codename: "02b", Public: true},
			{Codename: "02c", Public: false},
		},
	)
	st, err := New(task)
	require.NoError(t, err)

	subm := submission(
		eval("01a", 1.0), eval("01b", 0.3), eval("02a", 0.0),
		eval("02b", 1.0), eval("02c", 0.7))

	first, err := st.ComputeScore(subm)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		again, err := st.ComputeScore(subm)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRankingDetailsFormatting(t *testing.T) {
	task := minTask(
		[]taskcfg.Subtask{
			{MaxScore: 30, Testcases: []string{"a"}},
			{MaxScore: 50, Testcases: []string{"b"}},
			{MaxScore: 20, Testcases: []string{"c"}},
		},
		[]taskcfg.Testcase{
			{Codename: "a", Public: true},
			{Codename: "b", Public: true},
			{Codename: "c", Public: true},
		},
	)
	st, err := New(task)
	require.NoError(t, err)

	res, err := st.ComputeScore(submission(
		eval("a", 0.25), eval("b", 1.0/3.0), eval("c", 1.0)))
	require.NoError(t, err)

	// rounded to 2 decimals, no trailing zeros
	assert.Equal(t, []string{"7.5", "16.67", "20"}, res.RankingDetails)
}

func TestNewRejectsUnknownScoreType(t *testing.T) {
	task := taskcfg.Task{
		ScoreType: "does-not-exist",
		Subtasks:  []taskcfg.Subtask{{MaxScore: 100, Testcases: []string{"a"}}},
		Testcases: []taskcfg.Testcase{{Codename: "a", Public: true}},
	}
	_, err := New(task)
	require.Error(t, err)

	var srvcErr *srvcerror.Error
	require.True(t, errors.As(err, &srvcErr))
	assert.Equal(t, srvcerror.ErrCodeUnknownScoreType, srvcErr.ErrorCode())
}

func TestAdvanceRestrictedFeedback(t *testing.T) {
	// public and correct keeps the flag up
	assert.True(t, advanceRestrictedFeedback(true, true, 1.0, 0.0))
	// public testcase at the worst outcome flips it
	assert.False(t, advanceRestrictedFeedback(true, true, 0.0, 0.0))
	// a private failure never flips it
	assert.True(t, advanceRestrictedFeedback(true, false, 0.0, 0.0))
	// once down the flag stays down
	assert.False(t, advanceRestrictedFeedback(false, true, 1.0, 0.0))
	// ties at the minimum flip even in an all-correct group; the
	// comparison is against the worst outcome, not a failure predicate
	assert.False(t, advanceRestrictedFeedback(true, true, 1.0, 1.0))
}
