package desktop

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

const (
	// MainGroup is the group every desktop entry file must contain.
	MainGroup = "Desktop Entry"
	// ActionGroupPrefix prefixes the group of each additional application action.
	ActionGroupPrefix = "Desktop Action "
)

// Entry is a parsed desktop entry file. It is never modified after
// construction and is safe for concurrent readers.
type Entry struct {
	groups Document
}

// Parse reads r to the end and parses it as a desktop entry.
func Parse(r io.Reader) (*Entry, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read desktop entry: %w", err)
	}
	return ParseEntry(string(b))
}

// ParseEntry parses src as a desktop entry.
func ParseEntry(src string) (*Entry, error) {
	doc, err := ParseString(src)
	if err != nil {
		return nil, err
	}
	return &Entry{groups: doc}, nil
}

// FromGroups wraps an already built Document. The caller must not modify it afterwards.
func FromGroups(doc Document) *Entry {
	if doc == nil {
		doc = make(Document)
	}
	return &Entry{groups: doc}
}

// Groups returns the group names in sorted order.
func (e *Entry) Groups() []string {
	names := make([]string, 0, len(e.groups))
	for name := range e.groups {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// GroupKeys returns the raw keys of group in sorted order, or an empty
// slice when the group does not exist.
func (e *Entry) GroupKeys(group string) []string {
	body := e.groups[group]
	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (e *Entry) GroupGet(group, key string) (string, bool) {
	v, ok := e.groups[group][key]
	return v, ok
}

// GroupLocalizedGet looks key up in group, preferring the variant matching
// locale. Candidates are tried in this order, skipping the ones whose parts
// locale lacks:
//
//	key[lang_COUNTRY@MODIFIER]
//	key[lang_COUNTRY]
//	key[lang@MODIFIER]
//	key[lang]
//	key
//
// A nil locale is the same as GroupGet.
func (e *Entry) GroupLocalizedGet(group, key string, locale *Locale) (string, bool) {
	body, ok := e.groups[group]
	if !ok {
		return "", false
	}

	if locale != nil {
		for _, suffix := range locale.variants() {
			if v, ok := body[key+"["+suffix+"]"]; ok {
				return v, true
			}
		}
	}

	v, ok := body[key]
	return v, ok
}

// GroupBool interprets the value as a boolean. Only "true" and "false" are recognised.
func (e *Entry) GroupBool(group, key string) (bool, bool) {
	switch v, _ := e.GroupGet(group, key); v {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// GroupStrings splits a localized value on ';'. "\;" stands for a literal
// semicolon and "\\" for a literal backslash. A trailing separator does not
// produce an empty item.
func (e *Entry) GroupStrings(group, key string, locale *Locale) ([]string, bool) {
	v, ok := e.GroupLocalizedGet(group, key, locale)
	if !ok {
		return nil, false
	}
	return splitList(v), true
}

func (e *Entry) Get(key string) (string, bool) { return e.GroupGet(MainGroup, key) }

// GetKey looks up a well-known key in the main group.
func (e *Entry) GetKey(key StandardKey) (string, bool) {
	return e.GroupGet(MainGroup, key.String())
}

func (e *Entry) LocalizedGet(key string, locale *Locale) (string, bool) {
	return e.GroupLocalizedGet(MainGroup, key, locale)
}

func (e *Entry) Keys() []string { return e.GroupKeys(MainGroup) }

func (e *Entry) Bool(key string) (bool, bool) { return e.GroupBool(MainGroup, key) }

func (e *Entry) Strings(key string, locale *Locale) ([]string, bool) {
	return e.GroupStrings(MainGroup, key, locale)
}

// Hidden reports whether the entry asks not to be shown in menus.
func (e *Entry) Hidden() bool {
	noDisplay, _ := e.Bool(KeyNoDisplay.String())
	hidden, _ := e.Bool(KeyHidden.String())
	return noDisplay || hidden
}

// Actions returns the action identifiers listed in the main group that have
// a matching action group, in listed order.
func (e *Entry) Actions() []string {
	ids, _ := e.Strings(KeyActions.String(), nil)
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := e.groups[ActionGroupPrefix+id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func splitList(v string) []string {
	var (
		items []string
		cur   strings.Builder
	)
	for i := 0; i < len(v); i++ {
		switch {
		case v[i] == '\\' && i+1 < len(v) && (v[i+1] == ';' || v[i+1] == '\\'):
			cur.WriteByte(v[i+1])
			i++
		case v[i] == ';':
			items = append(items, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(v[i])
		}
	}
	if cur.Len() > 0 {
		items = append(items, cur.String())
	}
	return items
}
