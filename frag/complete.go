package frag

import (
	"math/big"

	"github.com/SebastiaanKlippert/go-jdate/jd"
)

const (
	unixEpochJD  = 2440588 //1970-01-01
	secondsInDay = 86400
)

//Reference returns the day number completion borrows missing fields from, usually today.
//Complete calls it at most once and only when a field is missing.
type Reference func() int

//A template is a set of fields that together name a day, date fields first.
type template struct {
	kind string //empty for sets that are scored but never filled in
	date []string
}

var timeFields = []string{"hour", "min", "sec"}

//templates in scoring order, on equal counts the earlier one wins.
var templates = []template{
	{"time", nil},
	{"", []string{"jd"}},
	{"ordinal", []string{"year", "yday"}},
	{"civil", []string{"year", "mon", "mday"}},
	{"commercial", []string{"cwyear", "cweek", "cwday"}},
	{"wday", []string{"wday"}},
	{"wnum0", []string{"year", "wnum0", "wday"}},
	{"wnum1", []string{"year", "wnum1", "wday"}},
	{"", []string{"cwyear", "cweek", "wday"}},
	{"", []string{"year", "wnum0", "cwday"}},
	{"", []string{"year", "wnum1", "cwday"}},
}

func (f *Fragments) field(key string) *Opt[int] {
	switch key {
	case "year":
		return &f.Year
	case "mon":
		return &f.Mon
	case "mday":
		return &f.MDay
	case "yday":
		return &f.YDay
	case "cwyear":
		return &f.CWYear
	case "cweek":
		return &f.CWeek
	case "cwday":
		return &f.CWDay
	case "wday":
		return &f.WDay
	case "wnum0":
		return &f.WNum0
	case "wnum1":
		return &f.WNum1
	case "hour":
		return &f.Hour
	case "min":
		return &f.Min
	case "sec":
		return &f.Sec
	case "jd":
		return &f.JD
	}
	panic("frag: unknown field " + key)
}

func (f *Fragments) count(keys []string) int {
	n := 0
	for _, k := range keys {
		if f.field(k).OK {
			n++
		}
	}
	return n
}

//Complete fills in what the fragments leave out so that Resolve can name a day.
//The template sharing the most fields with f is chosen. Its leading missing date
//fields are copied from the reference day up to the first field that is present,
//and the trailing ones get defaults (month and day 1, week 1, weekday Monday or Sunday).
//A lone weekday picks that weekday in the reference week. With withTime, a time
//without any date is placed on the reference day. Missing hour, minute and second become 0
//and a second of 60 or more is clamped to 59.
func Complete(f *Fragments, today Reference, sg jd.Reform, withTime bool) {
	f.rewriteSeconds()

	var (
		ref    int
		loaded bool
	)
	day := func() (int, bool) {
		if today == nil {
			return 0, false
		}
		if !loaded {
			ref, loaded = today(), true
		}
		return ref, true
	}

	best, score := -1, 0
	for i, t := range templates {
		n := f.count(t.date) + f.count(timeFields)
		if n > score {
			best, score = i, n
		}
	}

	var t template
	if best >= 0 {
		t = templates[best]
	}
	if best >= 0 && score < len(t.date)+len(timeFields) {
		switch t.kind {
		case "ordinal":
			if !f.Year.OK {
				if d, ok := day(); ok {
					y, _ := jd.JDNToOrdinal(d, sg)
					f.Year.Set(y)
				}
			}
			if !f.YDay.OK {
				f.YDay.Set(1)
			}
		case "civil":
			f.backfill(t.date, day, func(d int) []int {
				y, m, dd := jd.JDNToCivil(d, sg)
				return []int{y, m, dd}
			})
			defaultTo(&f.Mon, 1)
			defaultTo(&f.MDay, 1)
		case "commercial":
			f.backfill(t.date, day, func(d int) []int {
				y, w, dd := jd.JDNToCommercial(d, sg)
				return []int{y, w, dd}
			})
			defaultTo(&f.CWeek, 1)
			defaultTo(&f.CWDay, 1)
		case "wday":
			if d, ok := day(); ok && f.WDay.OK {
				f.JD.Set(d - jd.Wday(d) + f.WDay.V)
			}
		case "wnum0", "wnum1":
			fw := 0
			if t.kind == "wnum1" {
				fw = 1
			}
			f.backfill(t.date, day, func(d int) []int {
				y, w, _ := jd.JDNToWeekNum(d, fw, sg)
				return []int{y, w, jd.Wday(d)}
			})
			defaultTo(f.field(t.kind), 0)
			defaultTo(&f.WDay, fw)
		}
	}

	if t.kind == "time" && withTime && !f.JD.OK {
		if d, ok := day(); ok {
			f.JD.Set(d)
		}
	}
	defaultTo(&f.Hour, 0)
	defaultTo(&f.Min, 0)
	defaultTo(&f.Sec, 0)
	if f.Sec.V > 59 {
		f.Sec.V = 59
	}
}

//backfill copies reference values into the missing leading keys until a present one is met.
func (f *Fragments) backfill(keys []string, day func() (int, bool), values func(int) []int) {
	var vals []int
	for i, k := range keys {
		o := f.field(k)
		if o.OK {
			return
		}
		if vals == nil {
			d, ok := day()
			if !ok {
				return
			}
			vals = values(d)
		}
		o.Set(vals[i])
	}
}

func defaultTo(o *Opt[int], v int) {
	if !o.OK {
		o.Set(v)
	}
}

//rewriteSeconds turns a seconds since the epoch fragment into a day number and a time of day.
func (f *Fragments) rewriteSeconds() {
	if f.Seconds == nil {
		return
	}
	total := new(big.Rat).Set(f.Seconds)
	if f.Offset.OK {
		total.Add(total, big.NewRat(int64(f.Offset.V), 1))
	}
	whole := new(big.Int).Div(total.Num(), total.Denom())
	frac := new(big.Rat).Sub(total, new(big.Rat).SetInt(whole))
	days, rem := new(big.Int).DivMod(whole, big.NewInt(secondsInDay), new(big.Int))
	r := int(rem.Int64())

	f.JD.Set(unixEpochJD + int(days.Int64()))
	f.Hour.Set(r / 3600)
	f.Min.Set(r % 3600 / 60)
	f.Sec.Set(r % 60)
	f.SecFraction = frac
	f.Seconds = nil
}
