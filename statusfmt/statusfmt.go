package statusfmt

import (
	"context"
	"fmt"
	"strings"

	"github.com/programme-lv/scoring/logger"
	"github.com/programme-lv/scoring/translations"
)

// Guidance messages substituted for well-known execution engine failure
// templates before translation. Exported so locale catalogs can carry
// translations for them.
const (
	MsgOutputNotProduced = "Output file was not produced. Check you are creating the output file " +
		"with name given in the problem statement. You may wish to use or consult the templates for this problem."
	MsgTimeLimitExceeded = "Time limit exceeded before your program finished. " +
		"This may be due to an infinite loop/recursion, or your " +
		"algorithm may be too slow for this subtask"
	MsgProgramCrashed = "Program crashed. Possibly due to accessing or requesting invalid memory " +
		"(e.g. out-of-bounds array access)"
	MsgUncaughtException = "Your program did not finish successfully " +
		"(return code nonzero). Possibly due to an Exception or Error being thrown."
)

// ordered; the first matching prefix wins
var rewrites = []struct {
	prefix   string
	guidance string
}{
	{"Evaluation didn't produce file", MsgOutputNotProduced},
	{"Execution timed out", MsgTimeLimitExceeded},
	{"Execution killed", MsgProgramCrashed},
	{"Execution failed because the return code was nonzero", MsgUncaughtException},
}

func rewriteTemplate(template string) string {
	for _, r := range rewrites {
		if strings.HasPrefix(template, r.prefix) {
			return r.guidance
		}
	}
	return template
}

// Format renders a status payload into a localized human-readable string.
// The payload's first element is a printf-style template, the rest are its
// substitution arguments. Known engine failure templates are rewritten to
// friendlier guidance before translation. A malformed payload is logged
// and degrades to the locale's "N/A" string; Format never fails.
func Format(ctx context.Context, status []string, tr translations.Translation) string {
	log := logger.FromContext(ctx)
	if tr == nil {
		tr = translations.Default()
	}

	if len(status) == 0 {
		log.Error("malformed status payload", "status", status)
		return tr.Gettext("N/A")
	}

	// the empty template is reserved (catalog header), never looked up
	template := rewriteTemplate(status[0])
	text := ""
	if template != "" {
		text = tr.Gettext(template)
	}

	args := make([]any, len(status)-1)
	for i, a := range status[1:] {
		args[i] = a
	}
	out := fmt.Sprintf(text, args...)
	if strings.Contains(out, "%!") {
		log.Error("status template and arguments do not match",
			"template", text, "args", args, "rendered", out)
		return tr.Gettext("N/A")
	}
	return out
}
