//Package frag extracts date and time fragments from text, completes them against
//a reference day and resolves them to a Julian day number.
package frag

import (
	"math/big"
)

//Opt is a fragment value that may be absent.
type Opt[T any] struct {
	V  T
	OK bool
}

func Some[T any](v T) Opt[T] {
	return Opt[T]{V: v, OK: true}
}

func (o *Opt[T]) Set(v T) {
	o.V, o.OK = v, true
}

func (o Opt[T]) Get() (T, bool) {
	return o.V, o.OK
}

func (o *Opt[T]) Clear() {
	*o = Opt[T]{}
}

//Fragments holds everything recovered from a date string.
//Every field is optional, matchers only fill what they saw.
type Fragments struct {
	Year, Mon, MDay, YDay Opt[int]
	CWYear, CWeek, CWDay  Opt[int]
	WDay, WNum0, WNum1    Opt[int]
	Hour, Min, Sec        Opt[int]
	SecFraction           *big.Rat //nil when absent
	Zone                  Opt[string]
	Offset                Opt[int] //seconds east of UTC
	JD                    Opt[int]
	Seconds               *big.Rat //seconds since 1970-01-01T00:00:00Z, nil when absent
	Leftover              Opt[string]
	Overflow              Opt[string] //first number too large for any field, Resolve rejects the fragments

	//Completion flags, set by the matchers and consumed by Settle.
	NeedsCenturyCompletion Opt[bool]
	IsBCEra                bool
}

//Empty reports whether nothing at all was recovered.
func (f *Fragments) Empty() bool {
	return len(f.Map()) == 0
}

//Map returns the populated fragments keyed by their conventional names.
func (f *Fragments) Map() map[string]interface{} {
	m := make(map[string]interface{})
	ints := []struct {
		key string
		v   Opt[int]
	}{
		{"year", f.Year}, {"mon", f.Mon}, {"mday", f.MDay}, {"yday", f.YDay},
		{"cwyear", f.CWYear}, {"cweek", f.CWeek}, {"cwday", f.CWDay},
		{"wday", f.WDay}, {"wnum0", f.WNum0}, {"wnum1", f.WNum1},
		{"hour", f.Hour}, {"min", f.Min}, {"sec", f.Sec},
		{"offset", f.Offset}, {"jd", f.JD},
	}
	for _, i := range ints {
		if i.v.OK {
			m[i.key] = i.v.V
		}
	}
	if f.SecFraction != nil {
		m["sec_fraction"] = f.SecFraction
	}
	if f.Seconds != nil {
		m["seconds"] = f.Seconds
	}
	if f.Zone.OK {
		m["zone"] = f.Zone.V
	}
	if f.Leftover.OK {
		m["leftover"] = f.Leftover.V
	}
	if f.Overflow.OK {
		m["overflow"] = f.Overflow.V
	}
	if f.NeedsCenturyCompletion.OK {
		m["needs_century_completion"] = f.NeedsCenturyCompletion.V
	}
	if f.IsBCEra {
		m["is_bc_era"] = true
	}
	return m
}

//HasTime reports whether any time of day fragment is present.
func (f *Fragments) HasTime() bool {
	return f.Hour.OK || f.Min.OK || f.Sec.OK || f.SecFraction != nil
}

//Settle applies the completion flags and clears them:
//an era marker turns year y into 1-y, two digit years are moved into 1969-2068
//when complete is set and no matcher ruled it out, and a zone name gets its offset.
func (f *Fragments) Settle(complete bool) {
	if f.IsBCEra {
		if f.CWYear.OK {
			f.CWYear.V = 1 - f.CWYear.V
		}
		if f.Year.OK {
			f.Year.V = 1 - f.Year.V
		}
	}
	if complete && (!f.NeedsCenturyCompletion.OK || f.NeedsCenturyCompletion.V) {
		completeCentury(&f.CWYear)
		completeCentury(&f.Year)
	}
	if f.Zone.OK && !f.Offset.OK {
		if of, ok := ZoneToOffset(f.Zone.V); ok {
			f.Offset.Set(of)
		}
	}
	f.NeedsCenturyCompletion.Clear()
	f.IsBCEra = false
}

func completeCentury(y *Opt[int]) {
	if !y.OK || y.V < 0 || y.V > 99 {
		return
	}
	if y.V >= 69 {
		y.V += 1900
	} else {
		y.V += 2000
	}
}

//CompleteYear applies the same 69 pivot to a single two digit year.
func CompleteYear(y int) int {
	o := Some(y)
	completeCentury(&o)
	return o.V
}
