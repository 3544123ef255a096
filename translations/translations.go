package translations

// Translation maps English message ids to the active locale.
// The scoring engine treats verdicts and status templates as message ids
// so that presentation layers can localize them without re-parsing.
type Translation interface {
	Gettext(msgid string) string
}

type identity struct{}

func (identity) Gettext(msgid string) string {
	return msgid
}

// Default returns the identity translation (message ids are English)
func Default() Translation {
	return identity{}
}

type catalog map[string]string

func (c catalog) Gettext(msgid string) string {
	if msgstr, ok := c[msgid]; ok {
		return msgstr
	}
	return msgid
}

// Map wraps a message catalog; unknown message ids pass through untranslated
func Map(messages map[string]string) Translation {
	return catalog(messages)
}
