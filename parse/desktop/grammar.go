package desktop

import "strings"

// Group maps raw keys, locale suffix included, to their values.
type Group map[string]string

// Document maps group names to their bodies.
type Document map[string]Group

// ParseString parses desktop entry text into a Document.
//
// The input is consumed line by line with these productions:
//
//	document := (comment | group | blank)*
//	group    := '[' name ']' line-end (comment | entry | blank)*
//	entry    := key ('[' locale ']')? ws* '=' ws* value line-end
//
// A line starting with '[' at document level is committed to being a group
// header: if it is malformed the whole parse fails instead of trying another
// production. Entries outside a group are rejected. A repeated key or group
// replaces the earlier one.
//
// The returned strings are slices of src.
func ParseString(src string) (Document, error) {
	p := &parser{src: src, doc: make(Document)}

	for !p.eof() {
		switch {
		case p.comment():
		case p.src[p.pos] == '[':
			if err := p.group(); err != nil {
				return nil, err
			}
		case p.blankLine():
		default:
			return nil, p.errf(p.pos)
		}
	}

	return p.doc, nil
}

// =========================
// Parser Implementation
// =========================

type parser struct {
	src string
	pos int
	doc Document
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) group() error {
	name, err := p.groupHeader()
	if err != nil {
		return err
	}

	body := make(Group)
	for !p.eof() {
		if p.comment() || p.entry(body) || p.blankLine() {
			continue
		}
		break
	}

	p.doc[name] = body
	return nil
}

// groupHeader expects p.pos on '['. There is no way back once it is consumed.
func (p *parser) groupHeader() (string, error) {
	start := p.pos
	end := strings.IndexByte(p.src[start+1:], ']')
	if end < 0 {
		return "", p.errf(start)
	}
	end += start + 1

	after := end + 1
	if after < len(p.src) && p.src[after] != '\n' {
		return "", p.errf(start)
	}

	p.skipLineEnd(after)
	return p.src[start+1 : end], nil
}

func (p *parser) entry(body Group) bool {
	i := p.pos
	for i < len(p.src) && isKeyChar(p.src[i]) {
		i++
	}

	if i < len(p.src) && p.src[i] == '[' {
		j := i + 1
		for j < len(p.src) && isLocaleTagChar(p.src[j]) {
			j++
		}
		if j == i+1 || j >= len(p.src) || p.src[j] != ']' {
			return false
		}
		i = j + 1
	}
	key := p.src[p.pos:i]

	i = skipSpace(p.src, i)
	if i >= len(p.src) || p.src[i] != '=' {
		return false
	}
	i = skipSpace(p.src, i+1)

	end := lineEnd(p.src, i)
	body[key] = p.src[i:end]
	p.skipLineEnd(end)
	return true
}

func (p *parser) comment() bool {
	if p.src[p.pos] != '#' {
		return false
	}
	p.skipLineEnd(lineEnd(p.src, p.pos))
	return true
}

// blankLine matches ws* '\n', or ws+ at the end of input.
func (p *parser) blankLine() bool {
	i := skipSpace(p.src, p.pos)
	switch {
	case i < len(p.src) && p.src[i] == '\n':
		p.pos = i + 1
		return true
	case i == len(p.src) && i > p.pos:
		p.pos = i
		return true
	}
	return false
}

// skipLineEnd moves past the newline at i, if any.
func (p *parser) skipLineEnd(i int) {
	if i < len(p.src) {
		i++
	}
	p.pos = i
}

func (p *parser) errf(at int) error {
	start := strings.LastIndexByte(p.src[:at], '\n') + 1
	return &ParseError{
		Line: strings.Count(p.src[:start], "\n") + 1,
		Text: p.src[start:lineEnd(p.src, start)],
	}
}

// =========================
// Utilities
// =========================

func lineEnd(s string, i int) int {
	if n := strings.IndexByte(s[i:], '\n'); n >= 0 {
		return i + n
	}
	return len(s)
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

func isKeyChar(c byte) bool {
	return c == '-' || isASCIILetter(c) || (c >= '0' && c <= '9')
}

func isLocaleTagChar(c byte) bool {
	return c != ']' && c != '[' && c != '=' && c != '\n'
}
