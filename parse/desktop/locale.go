package desktop

import "strings"

// Locale is a POSIX locale reduced to the parts used for key matching.
// The encoding component is accepted by ParseLocale but never stored.
type Locale struct {
	lang     string
	country  string
	modifier string
}

// NewLocale builds a Locale from its parts. Empty country or modifier means
// absent. A Locale with an empty lang matches no suffixed key.
func NewLocale(lang, country, modifier string) Locale {
	return Locale{lang: lang, country: country, modifier: modifier}
}

// ParseLocale parses lang[_COUNTRY][.ENCODING][@MODIFIER]. The whole input
// must match; anything left over makes the result invalid.
func ParseLocale(s string) (Locale, bool) {
	i := scanLetters(s, 0)
	if i == 0 {
		return Locale{}, false
	}
	l := Locale{lang: s[:i]}

	if i < len(s) && s[i] == '_' {
		j := scanLetters(s, i+1)
		if j == i+1 {
			return Locale{}, false
		}
		l.country = s[i+1 : j]
		i = j
	}

	if i < len(s) && s[i] == '.' {
		j := scanUntilAt(s, i+1)
		if j == i+1 {
			return Locale{}, false
		}
		i = j
	}

	if i < len(s) && s[i] == '@' {
		j := scanUntilAt(s, i+1)
		if j == i+1 {
			return Locale{}, false
		}
		l.modifier = s[i+1 : j]
		i = j
	}

	if i != len(s) {
		return Locale{}, false
	}
	return l, true
}

// LocaleFromEnv resolves the message locale from LC_MESSAGES, falling back
// to LC_ALL only when LC_MESSAGES is not set at all.
func LocaleFromEnv(lookup func(string) (string, bool)) (Locale, bool) {
	if v, ok := lookup("LC_MESSAGES"); ok {
		return ParseLocale(v)
	}
	if v, ok := lookup("LC_ALL"); ok {
		return ParseLocale(v)
	}
	return Locale{}, false
}

func (l Locale) Language() string { return l.lang }

func (l Locale) Country() (string, bool) { return l.country, l.country != "" }

func (l Locale) Modifier() (string, bool) { return l.modifier, l.modifier != "" }

// String renders the locale in the form used inside key suffixes.
func (l Locale) String() string {
	var b strings.Builder
	b.WriteString(l.lang)
	if l.country != "" {
		b.WriteByte('_')
		b.WriteString(l.country)
	}
	if l.modifier != "" {
		b.WriteByte('@')
		b.WriteString(l.modifier)
	}
	return b.String()
}

// variants lists the locale suffixes to probe, most specific first.
func (l Locale) variants() []string {
	if l.lang == "" {
		return nil
	}
	out := make([]string, 0, 4)
	if l.country != "" && l.modifier != "" {
		out = append(out, l.lang+"_"+l.country+"@"+l.modifier)
	}
	if l.country != "" {
		out = append(out, l.lang+"_"+l.country)
	}
	if l.modifier != "" {
		out = append(out, l.lang+"@"+l.modifier)
	}
	return append(out, l.lang)
}

func scanLetters(s string, i int) int {
	for i < len(s) && isASCIILetter(s[i]) {
		i++
	}
	return i
}

func scanUntilAt(s string, i int) int {
	for i < len(s) && s[i] != '@' {
		i++
	}
	return i
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
