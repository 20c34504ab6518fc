// Package locale holds the translated strings and the per-locale character
// allow-lists used by the dashboard. Tables are constructed values; nothing
// here is package-level mutable state.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Strings is the full set of translated text one dashboard render needs.
// Weekdays are indexed Sunday=0 to match time.Weekday; months January=0.
type Strings struct {
	Weekdays [7]string
	Months   [12]string

	EventsHeader string
	TodosHeader  string
	NoEvents     string
	NoTodos      string
	AllDay       string
}

// Table resolves a caller-provided language tag to its string set, falling
// back to English for anything it does not carry.
type Table struct {
	matcher language.Matcher
	tags    []language.Tag
	strings map[language.Tag]Strings
	allowed map[language.Tag]map[rune]bool
}

func NewTable() *Table {
	tags := []language.Tag{language.English, language.Polish, language.German}

	t := &Table{
		matcher: language.NewMatcher(tags),
		tags:    tags,
		strings: map[language.Tag]Strings{
			language.English: english,
			language.Polish:  polish,
			language.German:  german,
		},
		allowed: make(map[language.Tag]map[rune]bool),
	}

	for tag, s := range t.strings {
		t.allowed[tag] = buildAllowList(s, extraAllowed[tag])
	}
	return t
}

// Lookup returns the strings for lang. Unknown or malformed tags resolve to
// English; a caller can always render.
func (t *Table) Lookup(lang string) Strings {
	return t.strings[t.match(lang)]
}

// Allowed reports whether r survives truncation for the given locale.
// Characters outside the allow-list are stripped before text is measured, so
// control characters and unsupported glyphs never distort layout.
func (t *Table) Allowed(lang string, r rune) bool {
	return t.allowed[t.match(lang)][r]
}

// Sanitize removes every rune outside the locale's allow-list.
func (t *Table) Sanitize(lang, s string) string {
	allowed := t.allowed[t.match(lang)]
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if allowed[r] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (t *Table) match(lang string) language.Tag {
	desired, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	_, index, _ := t.matcher.Match(desired)
	return t.tags[index]
}

// Every locale allows ASCII alphanumerics, space and common punctuation;
// its own diacritics come from the translated strings themselves plus the
// extras enumerated here.
const baseAllowed = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	" .,:;!?()-+/°%'\""

var extraAllowed = map[language.Tag]string{
	language.Polish: "ąćęłńóśźżĄĆĘŁŃÓŚŹŻ",
	language.German: "äöüßÄÖÜ",
}

func buildAllowList(s Strings, extra string) map[rune]bool {
	allowed := make(map[rune]bool)
	add := func(text string) {
		for _, r := range text {
			allowed[r] = true
		}
	}
	add(baseAllowed)
	for _, w := range s.Weekdays {
		add(w)
	}
	for _, m := range s.Months {
		add(m)
	}
	add(s.EventsHeader)
	add(s.TodosHeader)
	add(s.NoEvents)
	add(s.NoTodos)
	add(s.AllDay)
	add(extra)
	return allowed
}
