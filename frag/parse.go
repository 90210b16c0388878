package frag

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	ErrInputTooLong = errors.New("date string too long") //Returned by Scan before any matching is done
)

//DefaultLimit is the longest input Scan accepts unless told otherwise.
const DefaultLimit = 128

const (
	abbrDays   = "sun|mon|tue|wed|thu|fri|sat"
	abbrMonths = "jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec"
	number     = `(?<!\d)\d` //first digit of a run
	eras       = `c(?:e|\.e\.)|b(?:ce|\.c\.e\.)|a(?:d|\.d\.)|b(?:c|\.c\.)`
)

func compile(pattern string) *regexp2.Regexp {
	return regexp2.MustCompile(pattern, regexp2.IgnoreCase)
}

var (
	invisibleRe = regexp2.MustCompile(`[^-+',./:@A-Za-z0-9\[\]]+`, regexp2.None)

	dayRe  = compile(`\b(` + abbrDays + `)[^-/\d\s]*`)
	timeRe = compile(`(` + number + `+\s*` +
		`(?:(?::\s*\d+(?:\s*:\s*\d+(?:[,.]\d*)?)?|h(?:\s*\d+m?(?:\s*\d+s?)?)?)(?:\s*[ap](?:m\b|\.m\.))?` +
		`|[ap](?:m\b|\.m\.))` +
		`)` +
		`(?:\s*(` +
		`(?:gmt|utc?)?[-+]\d+(?:[,.:]\d+(?::\d+)?)?` +
		`|(?-i:[A-Za-z.\s]+)(?:standard|daylight)\stime\b` +
		`|(?-i:[A-Za-z]+)(?:\sdst)?\b` +
		`))?`)
	clockRe = compile(`\A(\d+)h?(?:\s*:?\s*(\d+)m?(?:\s*:?\s*(\d+)(?:[,.](\d+))?s?)?)?(?:\s*([ap])(?:m\b|\.m\.))?`)

	euRe = compile(`('?` + number + `+)[^-\d\s]*\s*(` + abbrMonths + `)[^-\d\s']*` +
		`(?:\s*(?:\b(` + eras + `)(?!(?<!\.)[a-z]))?\s*('?-?\d+(?:(?:st|nd|rd|th)\b)?))?`)
	usRe = compile(`\b(` + abbrMonths + `)[^-\d\s']*\s*('?\d+)[^-\d\s']*` +
		`(?:\s*,?\s*(` + eras + `)?\s*('?-?\d+))?`)
	isoRe   = compile(`('?[-+]?` + number + `+)-(\d+)-('?-?\d+)`)
	jisRe   = compile(`\b([mtshr])(\d+)\.(\d+)\.(\d+)`)
	vms11Re = compile(`('?-?` + number + `+)-(` + abbrMonths + `)[^-/.]*-('?-?\d+)`)
	vms12Re = compile(`\b(` + abbrMonths + `)[^-/.]*-('?-?\d+)(?:-('?-?\d+))?`)
	slashRe = compile(`('?-?` + number + `+)/\s*('?\d+)(?:\D\s*('?-?\d+))?`)
	dotRe   = compile(`('?-?` + number + `+)\.\s*('?\d+)\.\s*('?-?\d+)`)

	isoWeekRe       = compile(`\b(\d{2}|\d{4})?-?w(\d{2})(?:-?(\d))?\b`)
	isoWeekDayRe    = compile(`-w-(\d)\b`)
	isoMonthDayRe   = compile(`--(\d{2})?-(\d{2})\b`)
	isoMonthRe      = compile(`--(\d{2})(\d{2})?\b`)
	isoOrdinalSkip  = compile(`[,.](\d{2}|\d{4})-\d{3}\b`)
	isoOrdinalRe    = compile(`\b(\d{2}|\d{4})-(\d{3})\b`)
	isoYearDaySkip  = compile(`\d-\d{3}\b`)
	isoYearDayRe    = compile(`\b-(\d{3})\b`)

	yearRe = compile(`'(\d+)\b`)
	monRe  = compile(`\b(` + abbrMonths + `)\S*`)
	mdayRe = compile(`(` + number + `+)(st|nd|rd|th)\b`)
	dddRe  = compile(`([-+]?)(` + number + `{2,14})(?:\s*t?\s*(\d{2,6})?(?:[,.](\d*))?)?` +
		`(?:\s*(z\b|[-+]\d{1,4}\b|\[[-+]?\d[^\]]*\]))?`)
	bcRe   = compile(`\b(bc\b|bce\b|b\.c\.|b\.c\.e\.)`)
	fragRe = compile(`\A\s*(\d{1,2})\s*\z`)
)

//Character classes present in the unconsumed text, a matcher only runs when all its classes are there.
type class uint8

const (
	alpha class = 1 << iota
	digit
	dash
	dot
	slash
)

func classify(s string) class {
	var c class
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
			c |= alpha
		case isDigit(b):
			c |= digit
		case b == '-':
			c |= dash
		case b == '.':
			c |= dot
		case b == '/':
			c |= slash
		}
	}
	return c
}

//Date shape matchers in priority order, the first one that matches ends the search.
var dateMatchers = []struct {
	need  class
	match func(*scanner) bool
}{
	{alpha | digit, (*scanner).eu},
	{alpha | digit, (*scanner).us},
	{digit | dash, (*scanner).iso},
	{digit | dot, (*scanner).jis},
	{alpha | digit | dash, (*scanner).vms},
	{digit | slash, (*scanner).slash},
	{digit | dot, (*scanner).dot},
	{digit, (*scanner).iso2},
	{digit, (*scanner).year},
	{alpha, (*scanner).mon},
	{digit, (*scanner).mday},
	{digit, (*scanner).ddd},
}

//scanner runs the matchers over the collapsed input.
//The input is never rewritten, consumed spans are masked out of the view the next matcher sees.
type scanner struct {
	src  string
	used []bool
	view string
	f    *Fragments
}

func newScanner(src string) *scanner {
	return &scanner{src: src, used: make([]bool, len(src)), view: src, f: new(Fragments)}
}

func (s *scanner) has(c class) bool {
	return classify(s.view)&c == c
}

func (s *scanner) find(re *regexp2.Regexp) *regexp2.Match {
	m, err := re.FindStringMatch(s.view)
	if err != nil {
		return nil
	}
	return m
}

//consume masks the whole match, the view keeps its length so later indexes stay valid.
func (s *scanner) consume(m *regexp2.Match) {
	for i := m.Index; i < m.Index+m.Length; i++ {
		s.used[i] = true
	}
	b := []byte(s.src)
	for i, u := range s.used {
		if u {
			b[i] = ' '
		}
	}
	s.view = string(b)
}

//group returns capture i and whether it took part in the match.
func group(m *regexp2.Match, i int) (string, bool) {
	g := m.GroupByNumber(i)
	if g == nil || len(g.Captures) == 0 {
		return "", false
	}
	return g.String(), true
}

//Scan extracts fragments from free form date text.
//Only ASCII letters, digits and the punctuation -+',./:@[] are significant,
//every other run of characters acts as a single space.
//Input longer than limit bytes is rejected, a limit of 0 or less disables the check.
//The returned fragments still carry their completion flags, see Settle.
func Scan(text string, limit int) (*Fragments, error) {
	if limit > 0 && len(text) > limit {
		return nil, fmt.Errorf("%w: %d bytes exceeds the limit of %d", ErrInputTooLong, len(text), limit)
	}
	collapsed, err := invisibleRe.Replace(text, " ", -1, -1)
	if err != nil {
		return nil, err
	}
	s := newScanner(collapsed)
	if s.has(alpha) {
		s.day()
	}
	if s.has(digit) {
		s.time()
	}
	for _, m := range dateMatchers {
		if s.has(m.need) && m.match(s) {
			break
		}
	}
	if s.has(alpha) {
		s.bc()
	}
	if s.has(digit) {
		s.frag()
	}
	return s.f, nil
}

//Parse scans text and settles the result, complete enables two digit year completion.
func Parse(text string, complete bool, limit int) (*Fragments, error) {
	f, err := Scan(text, limit)
	if err != nil {
		return nil, err
	}
	f.Settle(complete)
	return f, nil
}

func dayNum(name string) int {
	return strings.Index(abbrDays, strings.ToLower(name)) / 4
}

func monthNum(name string) int {
	return strings.Index(abbrMonths, strings.ToLower(name))/4 + 1
}

func isBC(era string) bool {
	return era != "" && (era[0] == 'b' || era[0] == 'B')
}

//fraction converts the digits after a decimal point to an exact fraction.
func fraction(digits string) *big.Rat {
	num, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(digits))), nil)
	return new(big.Rat).SetFrac(num, den)
}

func (s *scanner) day() {
	m := s.find(dayRe)
	if m == nil {
		return
	}
	s.consume(m)
	name, _ := group(m, 1)
	s.f.WDay.Set(dayNum(name))
}

func (s *scanner) time() {
	m := s.find(timeRe)
	if m == nil {
		return
	}
	s.consume(m)
	if z, ok := group(m, 2); ok {
		s.f.Zone.Set(z)
	}
	clock, _ := group(m, 1)
	t, err := clockRe.FindStringMatch(clock)
	if err != nil || t == nil {
		return
	}
	hs, _ := group(t, 1)
	h := s.atoi(hs)
	if v, ok := group(t, 2); ok {
		s.f.Min.Set(s.atoi(v))
	}
	if v, ok := group(t, 3); ok {
		s.f.Sec.Set(s.atoi(v))
	}
	if v, ok := group(t, 4); ok {
		s.f.SecFraction = fraction(v)
	}
	if v, ok := group(t, 5); ok {
		h %= 12
		if v == "p" || v == "P" {
			h += 12
		}
	}
	s.f.Hour.Set(h)
}

func (s *scanner) eu() bool {
	m := s.find(euRe)
	if m == nil {
		return false
	}
	s.consume(m)
	d, _ := group(m, 1)
	mon, _ := group(m, 2)
	era, _ := group(m, 3)
	y, _ := group(m, 4)
	s.s3e(y, strconv.Itoa(monthNum(mon)), d, isBC(era))
	return true
}

func (s *scanner) us() bool {
	m := s.find(usRe)
	if m == nil {
		return false
	}
	s.consume(m)
	mon, _ := group(m, 1)
	d, _ := group(m, 2)
	era, _ := group(m, 3)
	y, _ := group(m, 4)
	s.s3e(y, strconv.Itoa(monthNum(mon)), d, isBC(era))
	return true
}

func (s *scanner) iso() bool {
	m := s.find(isoRe)
	if m == nil {
		return false
	}
	s.consume(m)
	y, _ := group(m, 1)
	mon, _ := group(m, 2)
	d, _ := group(m, 3)
	s.s3e(y, mon, d, false)
	return true
}

//eraStart maps a Japanese era initial to the year before its first year.
func eraStart(c byte) int {
	switch c {
	case 'M', 'm':
		return 1867
	case 'T', 't':
		return 1911
	case 'S', 's':
		return 1925
	case 'H', 'h':
		return 1988
	case 'R', 'r':
		return 2018
	}
	return 0
}

func (s *scanner) jis() bool {
	m := s.find(jisRe)
	if m == nil {
		return false
	}
	s.consume(m)
	era, _ := group(m, 1)
	y, _ := group(m, 2)
	mon, _ := group(m, 3)
	d, _ := group(m, 4)
	s.f.Year.Set(s.atoi(y) + eraStart(era[0]))
	s.f.Mon.Set(s.atoi(mon))
	s.f.MDay.Set(s.atoi(d))
	return true
}

func (s *scanner) vms() bool {
	if m := s.find(vms11Re); m != nil {
		s.consume(m)
		d, _ := group(m, 1)
		mon, _ := group(m, 2)
		y, _ := group(m, 3)
		s.s3e(y, strconv.Itoa(monthNum(mon)), d, false)
		return true
	}
	if m := s.find(vms12Re); m != nil {
		s.consume(m)
		mon, _ := group(m, 1)
		d, _ := group(m, 2)
		y, _ := group(m, 3)
		s.s3e(y, strconv.Itoa(monthNum(mon)), d, false)
		return true
	}
	return false
}

func (s *scanner) slash() bool {
	return s.triple(slashRe)
}

func (s *scanner) dot() bool {
	return s.triple(dotRe)
}

func (s *scanner) triple(re *regexp2.Regexp) bool {
	m := s.find(re)
	if m == nil {
		return false
	}
	s.consume(m)
	y, _ := group(m, 1)
	mon, _ := group(m, 2)
	d, _ := group(m, 3)
	s.s3e(y, mon, d, false)
	return true
}

//iso2 covers the truncated and reduced ISO 8601 shapes: week dates, --MM-DD and ordinal days.
func (s *scanner) iso2() bool {
	if m := s.find(isoWeekRe); m != nil {
		s.consume(m)
		if y, ok := group(m, 1); ok {
			s.f.CWYear.Set(s.atoi(y))
		}
		w, _ := group(m, 2)
		s.f.CWeek.Set(s.atoi(w))
		if d, ok := group(m, 3); ok {
			s.f.CWDay.Set(s.atoi(d))
		}
		return true
	}
	if m := s.find(isoWeekDayRe); m != nil {
		s.consume(m)
		d, _ := group(m, 1)
		s.f.CWDay.Set(s.atoi(d))
		return true
	}
	if m := s.find(isoMonthDayRe); m != nil {
		s.consume(m)
		if mon, ok := group(m, 1); ok {
			s.f.Mon.Set(s.atoi(mon))
		}
		d, _ := group(m, 2)
		s.f.MDay.Set(s.atoi(d))
		return true
	}
	if m := s.find(isoMonthRe); m != nil {
		s.consume(m)
		mon, _ := group(m, 1)
		s.f.Mon.Set(s.atoi(mon))
		if d, ok := group(m, 2); ok {
			s.f.MDay.Set(s.atoi(d))
		}
		return true
	}
	if s.find(isoOrdinalSkip) == nil {
		if m := s.find(isoOrdinalRe); m != nil {
			s.consume(m)
			y, _ := group(m, 1)
			d, _ := group(m, 2)
			s.f.Year.Set(s.atoi(y))
			s.f.YDay.Set(s.atoi(d))
			return true
		}
	}
	if s.find(isoYearDaySkip) == nil {
		if m := s.find(isoYearDayRe); m != nil {
			s.consume(m)
			d, _ := group(m, 1)
			s.f.YDay.Set(s.atoi(d))
			return true
		}
	}
	return false
}

func (s *scanner) year() bool {
	m := s.find(yearRe)
	if m == nil {
		return false
	}
	s.consume(m)
	y, _ := group(m, 1)
	s.f.Year.Set(s.atoi(y))
	return true
}

func (s *scanner) mon() bool {
	m := s.find(monRe)
	if m == nil {
		return false
	}
	s.consume(m)
	mon, _ := group(m, 1)
	s.f.Mon.Set(monthNum(mon))
	return true
}

func (s *scanner) mday() bool {
	m := s.find(mdayRe)
	if m == nil {
		return false
	}
	s.consume(m)
	d, _ := group(m, 1)
	s.f.MDay.Set(s.atoi(d))
	return true
}

//ddd reads a run of digits by its length: 2 mday, 3 yday, 4 mmdd, 5 yyddd, 6 yymmdd,
//7 yyyyddd, 8 or more yyyymmdd[hh[mm[ss]]]. A fraction without a separate time part turns
//the run into a time read from the right instead.
func (s *scanner) ddd() bool {
	m := s.find(dddRe)
	if m == nil {
		return false
	}
	s.consume(m)
	sign, _ := group(m, 1)
	s2, _ := group(m, 2)
	s3, has3 := group(m, 3)
	s4, has4 := group(m, 4)
	neg := sign == "-"
	num := func(str string, from, n int) int {
		return s.atoi(str[from : from+n])
	}
	year := func(v int) int {
		if neg {
			return -v
		}
		return v
	}
	timeOnly := !has3 && has4
	f := s.f

	switch l2 := len(s2); l2 {
	case 2:
		if timeOnly {
			f.Sec.Set(num(s2, 0, 2))
		} else {
			f.MDay.Set(num(s2, 0, 2))
		}
	case 3:
		if timeOnly {
			f.Sec.Set(num(s2, 1, 2))
			f.Min.Set(num(s2, 0, 1))
		} else {
			f.YDay.Set(num(s2, 0, 3))
		}
	case 4:
		if timeOnly {
			f.Sec.Set(num(s2, 2, 2))
			f.Min.Set(num(s2, 0, 2))
		} else {
			f.Mon.Set(num(s2, 0, 2))
			f.MDay.Set(num(s2, 2, 2))
		}
	case 5:
		if timeOnly {
			f.Sec.Set(num(s2, 3, 2))
			f.Min.Set(num(s2, 1, 2))
			f.Hour.Set(num(s2, 0, 1))
		} else {
			f.Year.Set(year(num(s2, 0, 2)))
			f.YDay.Set(num(s2, 2, 3))
		}
	case 6:
		if timeOnly {
			f.Sec.Set(num(s2, 4, 2))
			f.Min.Set(num(s2, 2, 2))
			f.Hour.Set(num(s2, 0, 2))
		} else {
			f.Year.Set(year(num(s2, 0, 2)))
			f.Mon.Set(num(s2, 2, 2))
			f.MDay.Set(num(s2, 4, 2))
		}
	case 7:
		if timeOnly {
			f.Sec.Set(num(s2, 5, 2))
			f.Min.Set(num(s2, 3, 2))
			f.Hour.Set(num(s2, 1, 2))
			f.MDay.Set(num(s2, 0, 1))
		} else {
			f.Year.Set(year(num(s2, 0, 4)))
			f.YDay.Set(num(s2, 4, 3))
		}
	case 8, 10, 12, 14:
		if timeOnly {
			f.Sec.Set(num(s2, l2-2, 2))
			f.Min.Set(num(s2, l2-4, 2))
			f.Hour.Set(num(s2, l2-6, 2))
			f.MDay.Set(num(s2, l2-8, 2))
			if l2 >= 10 {
				f.Mon.Set(num(s2, l2-10, 2))
			}
			if l2 == 12 {
				f.Year.Set(year(num(s2, 0, 2)))
			}
			if l2 == 14 {
				f.Year.Set(year(num(s2, 0, 4)))
				f.NeedsCenturyCompletion.Set(false)
			}
		} else {
			f.Year.Set(year(num(s2, 0, 4)))
			f.Mon.Set(num(s2, 4, 2))
			f.MDay.Set(num(s2, 6, 2))
			if l2 >= 10 {
				f.Hour.Set(num(s2, 8, 2))
			}
			if l2 >= 12 {
				f.Min.Set(num(s2, 10, 2))
			}
			if l2 >= 14 {
				f.Sec.Set(num(s2, 12, 2))
			}
			f.NeedsCenturyCompletion.Set(false)
		}
	}

	if has3 {
		l3 := len(s3)
		if l3 == 2 || l3 == 4 || l3 == 6 {
			if has4 {
				f.Sec.Set(num(s3, l3-2, 2))
				if l3 >= 4 {
					f.Min.Set(num(s3, l3-4, 2))
				}
				if l3 >= 6 {
					f.Hour.Set(num(s3, l3-6, 2))
				}
			} else {
				f.Hour.Set(num(s3, 0, 2))
				if l3 >= 4 {
					f.Min.Set(num(s3, 2, 2))
				}
				if l3 >= 6 {
					f.Sec.Set(num(s3, 4, 2))
				}
			}
		}
	}
	if has4 {
		if r := fraction(s4); r != nil {
			f.SecFraction = r
		}
	}

	if z, ok := group(m, 5); ok {
		if z[0] != '[' {
			f.Zone.Set(z)
			return true
		}
		//[offset:name] or [offset] where a bare number means hours east
		inner := z[1 : len(z)-1]
		name, diff := inner, inner
		if i := strings.IndexByte(inner, ':'); i >= 0 {
			name, diff = inner[i+1:], inner[:i]
		} else if isDigit(inner[0]) {
			diff = "+" + inner
		}
		f.Zone.Set(name)
		if of, ok := ZoneToOffset(diff); ok {
			f.Offset.Set(of)
		}
	}
	return true
}

func (s *scanner) bc() {
	if m := s.find(bcRe); m != nil {
		s.consume(m)
		s.f.IsBCEra = true
	}
}

//frag assigns a lone leftover number to the day when only a time was found, or to the hour when only a day was.
func (s *scanner) frag() {
	m := s.find(fragRe)
	if m == nil {
		return
	}
	s.consume(m)
	v, _ := group(m, 1)
	n := s.atoi(v)
	if s.f.Hour.OK && !s.f.MDay.OK && n >= 1 && n <= 31 {
		s.f.MDay.Set(n)
	}
	if s.f.MDay.OK && !s.f.Hour.OK && n >= 0 && n <= 24 {
		s.f.Hour.Set(n)
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

//atoi converts a run of digits. A run too large for an int reads as 0 and is
//recorded in Overflow, so the fragments no longer resolve.
func (s *scanner) atoi(str string) int {
	n, err := strconv.Atoi(str)
	if errors.Is(err, strconv.ErrRange) {
		if !s.f.Overflow.OK {
			s.f.Overflow.Set(str)
		}
		return 0
	}
	return n
}

func isSign(c byte) bool {
	return c == '+' || c == '-'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

func digitSpan(s string, from int) int {
	n := 0
	for from+n < len(s) && isDigit(s[from+n]) {
		n++
	}
	return n
}
