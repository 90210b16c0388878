package frag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var (
	ErrMalformedFixedFormat = errors.New("malformed fixed format date") //Wrapped by every FormatError
)

//FormatError reports where a fixed format date stopped matching.
type FormatError struct {
	Format   string //format name, e.g. "RFC 3339"
	Input    string
	Pos      int    //byte offset into Input of the furthest point any layout reached
	Leftover string //text trailing the first complete layout match, empty when no layout matched
}

func (e *FormatError) Error() string {
	if e.Leftover != "" {
		return fmt.Sprintf("%s: %q is not %s, %q left over", ErrMalformedFixedFormat, e.Input, e.Format, e.Leftover)
	}
	return fmt.Sprintf("%s: %q is not %s, stopped at byte %d", ErrMalformedFixedFormat, e.Input, e.Format, e.Pos)
}

func (e *FormatError) Unwrap() error {
	return ErrMalformedFixedFormat
}

/*
A layout describes one accepted shape of a fixed format date.

	%Y %G     year, week based year: optional sign and digits
	%y        two digit year, an era offset when one was seen, else completed to 1969-2068
	%m %d %e  month, day of month
	%j        day of year
	%V %u     ISO week and ISO weekday
	%H %M %S  hour, minute, second
	%N        fraction of a second
	%a %A     weekday name, abbreviated or full; %A requires the full name
	%b        month name, abbreviated or full
	%z        Z or a numeric offset ±hh[[:]mm]
	%Z        any zone the zone dictionary knows, or a numeric offset
	%J        Japanese era initial
	%t        T or a space
	%.        a decimal point or comma
	%%        a percent sign

A number between % and the verb fixes the digit count.
A space matches one or more white space characters, an underscore zero or more.
Letters match case-insensitively. A bracketed section is optional and is
taken as soon as its first element matches.
*/
type layout []elem

type elemKind uint8

const (
	litElem elemKind = iota
	spaceElem
	optSpaceElem
	verbElem
	groupElem
)

type elem struct {
	kind  elemKind
	char  byte
	verb  byte
	width int
	group []elem
}

func mustLayout(src string) layout {
	l, rest := compileElems(src, false)
	if rest != "" {
		panic("frag: unbalanced ] in layout " + src)
	}
	return l
}

func compileElems(src string, inGroup bool) ([]elem, string) {
	var out []elem
	for len(src) > 0 {
		c := src[0]
		switch c {
		case ']':
			if !inGroup {
				return out, src
			}
			if len(out) == 0 {
				panic("frag: empty optional section in layout")
			}
			return out, src[1:]
		case '[':
			g, rest := compileElems(src[1:], true)
			out = append(out, elem{kind: groupElem, group: g})
			src = rest
		case ' ':
			out = append(out, elem{kind: spaceElem})
			src = src[1:]
		case '_':
			out = append(out, elem{kind: optSpaceElem})
			src = src[1:]
		case '%':
			i, w := 1, 0
			for i < len(src) && isDigit(src[i]) {
				w = w*10 + int(src[i]-'0')
				i++
			}
			if i == len(src) {
				panic("frag: dangling % in layout")
			}
			out = append(out, elem{kind: verbElem, verb: src[i], width: w})
			src = src[i+1:]
		default:
			out = append(out, elem{kind: litElem, char: c})
			src = src[1:]
		}
	}
	if inGroup {
		panic("frag: unterminated [ in layout")
	}
	return out, ""
}

//layoutMatch is the state of one layout being matched against one input.
type layoutMatch struct {
	in         string
	pos        int
	far        int
	f          Fragments
	era        byte
	yearDigits int
	yearSigned bool
}

func (m *layoutMatch) advance(n int) {
	m.pos += n
	if m.pos > m.far {
		m.far = m.pos
	}
}

func (m *layoutMatch) seq(elems []elem) bool {
	for _, e := range elems {
		if !m.one(e) {
			return false
		}
	}
	return true
}

func (m *layoutMatch) one(e elem) bool {
	switch e.kind {
	case litElem:
		if m.pos < len(m.in) && lower(m.in[m.pos]) == lower(e.char) {
			m.advance(1)
			return true
		}
		return false
	case spaceElem:
		return m.spaces() > 0
	case optSpaceElem:
		m.spaces()
		return true
	case groupElem:
		save := *m
		if !m.one(e.group[0]) {
			far := m.far
			*m = save
			m.far = far
			return true
		}
		return m.seq(e.group[1:])
	}
	return m.verb(e)
}

func (m *layoutMatch) spaces() int {
	n := 0
	for m.pos+n < len(m.in) && isSpace(m.in[m.pos+n]) {
		n++
	}
	m.advance(n)
	return n
}

//number reads exactly width digits, or a run of at least one when width is 0.
func (m *layoutMatch) number(width int) (int, int, bool) {
	n := digitSpan(m.in, m.pos)
	if width > 0 {
		if n < width {
			return 0, 0, false
		}
		n = width
	}
	if n == 0 {
		return 0, 0, false
	}
	v, err := strconv.Atoi(m.in[m.pos : m.pos+n])
	if err != nil {
		return 0, 0, false
	}
	m.advance(n)
	return v, n, true
}

func (m *layoutMatch) signed(width int) (int, int, bool) {
	start := m.pos
	neg := false
	if m.pos < len(m.in) && isSign(m.in[m.pos]) {
		neg = m.in[m.pos] == '-'
		m.pos++
	}
	v, n, ok := m.number(width)
	if !ok {
		m.pos = start
		return 0, 0, false
	}
	if neg {
		v = -v
	}
	return v, n, true
}

var (
	dayNames   = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
	monthNames = []string{"january", "february", "march", "april", "may", "june", "july",
		"august", "september", "october", "november", "december"}
)

//name matches one of names, or its three letter abbreviation unless full is set.
func (m *layoutMatch) name(names []string, full bool) (int, bool) {
	rest := m.in[m.pos:]
	for i, n := range names {
		if len(rest) >= len(n) && strings.EqualFold(rest[:len(n)], n) {
			m.advance(len(n))
			return i, true
		}
		if !full && len(rest) >= 3 && strings.EqualFold(rest[:3], n[:3]) {
			m.advance(3)
			return i, true
		}
	}
	return 0, false
}

//offset matches Z or ±hh[[:]mm] and returns the matched text.
func (m *layoutMatch) offset() (string, bool) {
	rest := m.in[m.pos:]
	if rest == "" {
		return "", false
	}
	if rest[0] == 'z' || rest[0] == 'Z' {
		m.advance(1)
		return rest[:1], true
	}
	if !isSign(rest[0]) || digitSpan(rest, 1) < 2 {
		return "", false
	}
	n := 3
	switch {
	case len(rest) >= 6 && rest[3] == ':' && digitSpan(rest, 4) >= 2:
		n = 6
	case digitSpan(rest, 1) >= 4:
		n = 5
	}
	m.advance(n)
	return rest[:n], true
}

func (m *layoutMatch) zone(e elem) bool {
	start := m.pos
	text, ok := m.offset()
	if !ok && e.verb == 'Z' {
		n := 0
		for m.pos+n < len(m.in) && lower(m.in[m.pos+n]) >= 'a' && lower(m.in[m.pos+n]) <= 'z' {
			n++
		}
		text, ok = m.in[m.pos:m.pos+n], n > 0
		m.advance(n)
	}
	if !ok {
		return false
	}
	of, known := ZoneToOffset(text)
	if !known {
		m.pos = start
		return false
	}
	m.f.Zone.Set(text)
	m.f.Offset.Set(of)
	return true
}

func (m *layoutMatch) verb(e elem) bool {
	var (
		v  int
		ok bool
	)
	switch e.verb {
	case 'Y', 'G':
		start := m.pos
		v, m.yearDigits, ok = m.signed(e.width)
		m.yearSigned = ok && isSign(m.in[start])
		if ok && e.verb == 'Y' {
			m.f.Year.Set(v)
		} else if ok {
			m.f.CWYear.Set(v)
		}
	case 'y':
		w := e.width
		if w == 0 {
			w = 2
		}
		if v, _, ok = m.number(w); ok {
			if m.era != 0 {
				m.f.Year.Set(eraStart(m.era) + v)
			} else {
				m.f.Year.Set(CompleteYear(v))
			}
		}
	case 'm':
		v, _, ok = m.number(e.width)
		m.f.Mon = Opt[int]{v, ok}
	case 'd', 'e':
		v, _, ok = m.number(e.width)
		m.f.MDay = Opt[int]{v, ok}
	case 'j':
		v, _, ok = m.number(e.width)
		m.f.YDay = Opt[int]{v, ok}
	case 'V':
		v, _, ok = m.number(e.width)
		m.f.CWeek = Opt[int]{v, ok}
	case 'u':
		v, _, ok = m.number(e.width)
		m.f.CWDay = Opt[int]{v, ok}
	case 'H':
		v, _, ok = m.number(e.width)
		m.f.Hour = Opt[int]{v, ok}
	case 'M':
		v, _, ok = m.number(e.width)
		m.f.Min = Opt[int]{v, ok}
	case 'S':
		v, _, ok = m.number(e.width)
		m.f.Sec = Opt[int]{v, ok}
	case 'N':
		//any number of digits, read exactly
		if n := digitSpan(m.in, m.pos); n > 0 {
			m.f.SecFraction = fraction(m.in[m.pos : m.pos+n])
			m.advance(n)
			ok = true
		}
	case 'a', 'A':
		v, ok = m.name(dayNames, e.verb == 'A')
		m.f.WDay = Opt[int]{v, ok}
	case 'b':
		v, ok = m.name(monthNames, false)
		m.f.Mon = Opt[int]{v + 1, ok}
	case 'z', 'Z':
		ok = m.zone(e)
	case 'J':
		if m.pos < len(m.in) && eraStart(m.in[m.pos]) != 0 {
			m.era = lower(m.in[m.pos])
			m.advance(1)
			ok = true
		}
	case 't':
		if ok = m.pos < len(m.in) && (lower(m.in[m.pos]) == 't' || m.in[m.pos] == ' '); ok {
			m.advance(1)
		}
	case '.':
		if ok = m.pos < len(m.in) && (m.in[m.pos] == '.' || m.in[m.pos] == ','); ok {
			m.advance(1)
		}
	case '%':
		if ok = m.pos < len(m.in) && m.in[m.pos] == '%'; ok {
			m.advance(1)
		}
	default:
		panic("frag: unknown layout verb %" + string(e.verb))
	}
	return ok
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

//fixedFormat is a named list of layouts tried in order.
type fixedFormat struct {
	name    string
	layouts []layout
	era     byte //era assumed until %J says otherwise
}

func newFixedFormat(name string, era byte, layouts ...string) fixedFormat {
	ff := fixedFormat{name: name, era: era}
	for _, l := range layouts {
		ff.layouts = append(ff.layouts, mustLayout(l))
	}
	return ff
}

//match returns the state of the first layout that consumes the whole trimmed input
//and the index of that layout. When layouts only match a prefix, the error carries
//the text the first of them left over.
func (ff fixedFormat) match(text string, limit int) (*layoutMatch, int, error) {
	if limit > 0 && len(text) > limit {
		return nil, -1, fmt.Errorf("%w: %d bytes exceeds the limit of %d", ErrInputTooLong, len(text), limit)
	}
	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
	lead := len(text) - len(trimmed)
	trimmed = strings.TrimRightFunc(trimmed, unicode.IsSpace)

	far := 0
	leftover := ""
	for i, l := range ff.layouts {
		m := &layoutMatch{in: trimmed, era: ff.era}
		if m.seq(l) {
			if m.pos == len(trimmed) {
				return m, i, nil
			}
			if leftover == "" {
				leftover = trimmed[m.pos:]
			}
		}
		if m.far > far {
			far = m.far
		}
	}
	return nil, -1, &FormatError{Format: ff.name, Input: text, Pos: lead + far, Leftover: leftover}
}
