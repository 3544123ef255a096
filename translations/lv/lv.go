// Package lv carries the Latvian message catalog for contestant-facing
// scoring output.
package lv

import (
	"github.com/programme-lv/scoring/scoretype"
	"github.com/programme-lv/scoring/statusfmt"
	"github.com/programme-lv/scoring/translations"
)

func Translation() translations.Translation {
	return translations.Map(map[string]string{
		"N/A": "nav pieejams",

		string(scoretype.VerdictCorrect):          "Pareizi",
		string(scoretype.VerdictNotCorrect):       "Nepareizi",
		string(scoretype.VerdictPartiallyCorrect): "Daļēji pareizi",

		statusfmt.MsgOutputNotProduced: "Izvades fails netika izveidots. " +
			"Pārbaudi, vai izvades fails tiek veidots ar uzdevuma formulējumā doto nosaukumu.",
		statusfmt.MsgTimeLimitExceeded: "Laika limits tika pārsniegts, pirms programma pabeidza darbu. " +
			"Iespējams, tajā ir bezgalīgs cikls vai rekursija, vai arī algoritms ir pārāk lēns šai apakšsadaļai.",
		statusfmt.MsgProgramCrashed: "Programma avarēja. Iespējams, notika piekļuve nederīgai atmiņai " +
			"(piemēram, masīva indekss ārpus robežām).",
		statusfmt.MsgUncaughtException: "Programma nenoslēdzās veiksmīgi (atgriešanas kods nav nulle). " +
			"Iespējams, tika izmests neapstrādāts izņēmums.",

		"Output is correct":           "Izvade ir pareiza",
		"Output isn't correct":        "Izvade nav pareiza",
		"Output is partially correct": "Izvade ir daļēji pareiza",
	})
}
