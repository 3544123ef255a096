package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/programme-lv/scoring/scoretype"
	"github.com/programme-lv/scoring/statusfmt"
	"github.com/programme-lv/scoring/translations"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	faint  = color.New(color.Faint).SprintFunc()
)

// printReport renders a scored submission to the terminal. By default it
// shows the contestant (restricted) view; full switches to the
// administrative breakdown.
func printReport(ctx context.Context, res scoretype.Result, tr translations.Translation, full bool) {
	subtasks := res.PublicSubtasks
	if full {
		subtasks = res.Subtasks
	}

	for i, st := range subtasks {
		header := fmt.Sprintf("-- Subtask %d", st.Idx)
		if st.AltTitle != "" {
			header = fmt.Sprintf("-- %s", st.AltTitle)
		}
		if st.FullFeedback {
			fmt.Printf("%s: %s / %s --\n", header, res.RankingDetails[i], fmtFloat(st.MaxScore))
		} else {
			fmt.Printf("%s --\n", header)
		}

		for _, tc := range st.Testcases {
			if tc.Verdict == "" {
				fmt.Printf("  %s: %s\n", tc.Codename, faint("hidden"))
				continue
			}
			if !full && !tc.ShowInRestrictedFeedback {
				fmt.Printf("  %s: %s\n", tc.Codename, faint("feedback withheld"))
				continue
			}
			line := fmt.Sprintf("  %s: %s", tc.Codename, colorVerdict(tc.Verdict, tr))
			if text := statusfmt.Format(ctx, tc.Text, tr); text != "" {
				line += fmt.Sprintf(" (%s)", text)
			}
			line += fmt.Sprintf(" [cpu=%.3fs mem=%dKiB]", tc.Time, tc.Memory/1024)
			fmt.Println(line)
		}
	}

	fmt.Printf("== Score: %s ==\n", fmtFloat(res.Score))
	fmt.Printf("== Public score: %s ==\n", fmtFloat(res.PublicScore))
}

func colorVerdict(v scoretype.Verdict, tr translations.Translation) string {
	text := tr.Gettext(string(v))
	switch v {
	case scoretype.VerdictCorrect:
		return green(text)
	case scoretype.VerdictNotCorrect:
		return red(text)
	default:
		return yellow(text)
	}
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
