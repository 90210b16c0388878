package jdate

import (
	"math/big"

	"github.com/SebastiaanKlippert/go-jdate/jd"
)

//AddDays returns the date n days later, keeping the time of day.
func (d Date) AddDays(n int) Date {
	return newDate(d.jdn+n, d.df, d.sf, d.of, d.sg, d.prec)
}

func (d Date) Next() Date { return d.AddDays(1) }
func (d Date) Prev() Date { return d.AddDays(-1) }

//AddFraction adds an exact number of days. A date without time of day gains a day fraction.
func (d Date) AddFraction(days *big.Rat) Date {
	secs := new(big.Rat).Mul(days, big.NewRat(dayInSeconds, 1))
	return d.addSeconds(secs, DayFraction)
}

//AddSeconds adds an exact number of seconds. A date without time of day gains a clock.
func (d Date) AddSeconds(secs *big.Rat) Date {
	return d.addSeconds(secs, Clock)
}

func (d Date) addSeconds(secs *big.Rat, promote Precision) Date {
	total := new(big.Rat).Add(secs, big.NewRat(int64(d.df), 1))
	if d.sf != nil {
		total.Add(total, d.sf)
	}
	whole, sf := floorRat(total)
	days, df := new(big.Int).DivMod(whole, big.NewInt(dayInSeconds), new(big.Int))
	prec := d.prec
	if prec == DateOnly {
		prec = promote
	}
	return newDate(d.jdn+int(days.Int64()), int(df.Int64()), sf, d.of, d.sg, prec)
}

//AddMonths returns the same day n months later, keeping the time of day.
//When that day does not exist the last earlier day of the month is used,
//so 2001-01-31 plus one month is 2001-02-28.
func (d Date) AddMonths(n int) Date {
	t := d.year*12 + d.mon - 1 + n
	y, m := jd.FloorDiv(t, 12), jd.FloorMod(t, 12)+1
	day := d.mday
	var (
		jdn int
		err error
	)
	for ; day >= 1; day-- {
		if jdn, err = jd.ValidCivil(y, m, day, d.sg); err == nil {
			break
		}
	}
	if err != nil {
		//every month under a valid reform has a first day
		jdn, _ = jd.CivilToJDN(y, m, 1, d.sg)
	}
	return d.AddDays(jdn - d.JD())
}

func (d Date) AddYears(n int) Date {
	return d.AddMonths(12 * n)
}

//Sub returns the exact number of days from o to d.
func (d Date) Sub(o Date) *big.Rat {
	return new(big.Rat).Sub(d.AJD(), o.AJD())
}

//Compare orders dates by the instant they name, -1, 0 or +1.
//The calendar reform and offset do not take part.
func (d Date) Compare(o Date) int {
	switch {
	case d.jdn < o.jdn:
		return -1
	case d.jdn > o.jdn:
		return 1
	case d.df < o.df:
		return -1
	case d.df > o.df:
		return 1
	}
	return d.SecFraction().Cmp(o.SecFraction())
}

func (d Date) Equal(o Date) bool  { return d.Compare(o) == 0 }
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

//SameDay reports whether both dates fall on the same local day number.
func (d Date) SameDay(o Date) bool {
	return d.JD() == o.JD()
}

//NewStart returns the same day under another calendar reform.
func (d Date) NewStart(sg jd.Reform) Date {
	return newDate(d.jdn, d.df, d.sf, d.of, checkReform(sg), d.prec)
}

//NewOffset returns the same instant seen at another UTC offset.
//A date without time of day is taken at midnight UTC.
func (d Date) NewOffset(offset int) Date {
	return newDate(d.jdn, d.df, d.sf, checkOffset(offset), d.sg, Clock)
}
