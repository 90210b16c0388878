//Package jdate provides a calendar date with an optional time of day, counted in
//Julian day numbers under a configurable Julian to Gregorian calendar reform,
//together with a parser for free form and fixed format date text.
package jdate

import (
	"fmt"
	"math/big"

	"github.com/SebastiaanKlippert/go-jdate/jd"
)

//Reform is the day number the Gregorian calendar starts on, see package jd.
type Reform = jd.Reform

const (
	Italy         = jd.Italy
	England       = jd.England
	Julian        = jd.Julian
	Gregorian     = jd.Gregorian
	DefaultReform = jd.DefaultReform
)

const (
	dayInSeconds = 86400
	mjdEpoch     = 2400001 //JDN of 1858-11-17
	ldEpoch      = 2299160 //JDN of 1582-10-14
)

//Precision tells which part of a Date below the day is meaningful.
type Precision uint8

const (
	DateOnly    Precision = iota //no time of day
	DayFraction                  //an exact fraction of a UTC day
	Clock                        //a time of day with sub second fraction and UTC offset
)

func (p Precision) String() string {
	switch p {
	case DateOnly:
		return "date"
	case DayFraction:
		return "fraction"
	case Clock:
		return "clock"
	}
	return fmt.Sprintf("Precision(%d)", p)
}

//Date is a day number with an optional time of day. Values are immutable,
//every operation returns a new Date.
//The zero Date does not name a day, use one of the constructors.
type Date struct {
	jdn  int      //UTC day number
	df   int      //seconds into the UTC day
	sf   *big.Rat //fraction of a second in [0,1), nil for zero
	of   int      //seconds east of UTC
	sg   jd.Reform
	prec Precision

	//civil date of the local day
	year, mon, mday int
}

func newDate(jdn, df int, sf *big.Rat, of int, sg jd.Reform, prec Precision) Date {
	if sf != nil && sf.Sign() == 0 {
		sf = nil
	}
	d := Date{jdn: jdn, df: df, sf: sf, of: of, sg: sg, prec: prec}
	d.year, d.mon, d.mday = jd.JDNToCivil(d.JD(), sg)
	return d
}

//checkReform falls back to the default reform, with a warning, for reforms outside the valid window.
func checkReform(sg jd.Reform) jd.Reform {
	valid, err := jd.CheckReform(sg)
	if err != nil {
		logger().Warn("invalid calendar reform, using default", "reform", int(sg), "default", jd.DefaultReform.String(), "err", err)
	}
	return valid
}

//Civil returns the date of year y, month m and day d.
//Negative months and days count from the end of the year and month.
func Civil(y, m, d int, sg jd.Reform) (Date, error) {
	sg = checkReform(sg)
	jdn, err := jd.ValidCivil(y, m, d, sg)
	if err != nil {
		return Date{}, err
	}
	return newDate(jdn, 0, nil, 0, sg, DateOnly), nil
}

//Ordinal returns day yd of year y.
func Ordinal(y, yd int, sg jd.Reform) (Date, error) {
	sg = checkReform(sg)
	jdn, err := jd.ValidOrdinal(y, yd, sg)
	if err != nil {
		return Date{}, err
	}
	return newDate(jdn, 0, nil, 0, sg, DateOnly), nil
}

//Commercial returns the ISO week date: ISO year y, week w, weekday d (Monday is 1).
func Commercial(y, w, d int, sg jd.Reform) (Date, error) {
	sg = checkReform(sg)
	jdn, err := jd.ValidCommercial(y, w, d, sg)
	if err != nil {
		return Date{}, err
	}
	return newDate(jdn, 0, nil, 0, sg, DateOnly), nil
}

//WeekNum returns day d of week w of year y, weeks starting on Sunday (f=0) or Monday (f=1).
func WeekNum(y, w, d, f int, sg jd.Reform) (Date, error) {
	sg = checkReform(sg)
	jdn, err := jd.ValidWeekNum(y, w, d, f, sg)
	if err != nil {
		return Date{}, err
	}
	return newDate(jdn, 0, nil, 0, sg, DateOnly), nil
}

//NthKday returns the nth weekday k (Sunday is 0) of month m, negative n counting from the end.
func NthKday(y, m, n, k int, sg jd.Reform) (Date, error) {
	sg = checkReform(sg)
	jdn, err := jd.ValidNthKday(y, m, n, k, sg)
	if err != nil {
		return Date{}, err
	}
	return newDate(jdn, 0, nil, 0, sg, DateOnly), nil
}

//JD returns the date of a Julian day number.
func JD(jdn int, sg jd.Reform) Date {
	return newDate(jdn, 0, nil, 0, checkReform(sg), DateOnly)
}

//JDFraction returns the date of a chronological Julian day with a fraction of a UTC day.
func JDFraction(day *big.Rat, sg jd.Reform) Date {
	jdn, frac := floorRat(day)
	secs := new(big.Rat).Mul(frac, big.NewRat(dayInSeconds, 1))
	df, sf := floorRat(secs)
	return newDate(int(jdn.Int64()), int(df.Int64()), sf, 0, checkReform(sg), DayFraction)
}

//Must returns d and panics on err, for dates that are known to be valid.
func Must(d Date, err error) Date {
	if err != nil {
		panic(err)
	}
	return d
}

//At returns the date with a time of day, given in local time at offset seconds east of UTC.
//Negative hours, minutes and seconds count back from the end of the day, hour and minute,
//24:00:00 is midnight of the next day. An offset of a day or more is replaced by UTC.
func (d Date) At(h, min, s int, sf *big.Rat, offset int) (Date, error) {
	oh, omin, osec := h, min, s
	if h < 0 {
		h += 24
	}
	if min < 0 {
		min += 60
	}
	if s < 0 {
		s += 60
	}
	if h < 0 || h > 24 || min < 0 || min > 59 || s < 0 || s > 59 ||
		(h == 24 && (min > 0 || s > 0 || (sf != nil && sf.Sign() != 0))) {
		return Date{}, &jd.CoordinateError{System: "clock", Fields: []int{oh, omin, osec}, Reform: d.sg}
	}
	if sf != nil && (sf.Sign() < 0 || sf.Cmp(big.NewRat(1, 1)) >= 0) {
		return Date{}, &jd.CoordinateError{System: "clock", Fields: []int{oh, omin, osec}, Reform: d.sg}
	}
	offset = checkOffset(offset)

	utc := h*3600 + min*60 + s - offset
	jdn := d.JD() + jd.FloorDiv(utc, dayInSeconds)
	if sf != nil {
		sf = new(big.Rat).Set(sf)
	}
	return newDate(jdn, jd.FloorMod(utc, dayInSeconds), sf, offset, d.sg, Clock), nil
}

func checkOffset(of int) int {
	if of <= -dayInSeconds || of >= dayInSeconds {
		logger().Warn("invalid offset, using UTC", "offset", of)
		return 0
	}
	return of
}

func floorRat(r *big.Rat) (*big.Int, *big.Rat) {
	q := new(big.Int).Div(r.Num(), r.Denom())
	return q, new(big.Rat).Sub(r, new(big.Rat).SetInt(q))
}

//local returns the seconds into the local day.
func (d Date) local() int {
	return jd.FloorMod(d.df+d.of, dayInSeconds)
}

//JD returns the Julian day number of the local day.
func (d Date) JD() int {
	return d.jdn + jd.FloorDiv(d.df+d.of, dayInSeconds)
}

//MJD returns the modified Julian day number, counted from 1858-11-17.
func (d Date) MJD() int {
	return d.JD() - mjdEpoch
}

//LD returns the Lilian day number, day 1 being 1582-10-15.
func (d Date) LD() int {
	return d.JD() - ldEpoch
}

//utcFraction returns the exact fraction of the UTC day.
func (d Date) utcFraction() *big.Rat {
	r := big.NewRat(int64(d.df), dayInSeconds)
	if d.sf != nil {
		r.Add(r, new(big.Rat).Quo(d.sf, big.NewRat(dayInSeconds, 1)))
	}
	return r
}

//AJD returns the astronomical Julian day, which starts at noon UTC.
func (d Date) AJD() *big.Rat {
	r := new(big.Rat).SetInt64(int64(d.jdn))
	r.Add(r, d.utcFraction())
	return r.Sub(r, big.NewRat(1, 2))
}

//AMJD returns the astronomical modified Julian day.
func (d Date) AMJD() *big.Rat {
	r := new(big.Rat).SetInt64(int64(d.jdn - mjdEpoch))
	return r.Add(r, d.utcFraction())
}

func (d Date) Year() int  { return d.year }
func (d Date) Month() int { return d.mon }
func (d Date) Day() int   { return d.mday }

//YDay returns the day of the year, 1 being the first existing day of the year.
func (d Date) YDay() int {
	_, yd := jd.JDNToOrdinal(d.JD(), d.sg)
	return yd
}

func (d Date) CWYear() int {
	y, _, _ := jd.JDNToCommercial(d.JD(), d.sg)
	return y
}

func (d Date) CWeek() int {
	_, w, _ := jd.JDNToCommercial(d.JD(), d.sg)
	return w
}

//CWDay returns the ISO weekday, Monday is 1 and Sunday is 7.
func (d Date) CWDay() int {
	return jd.Cwday(d.JD())
}

//WDay returns the weekday, Sunday is 0.
func (d Date) WDay() int {
	return jd.Wday(d.JD())
}

//WNum0 returns the week number with weeks starting on Sunday, like strftime %U.
func (d Date) WNum0() int {
	_, w, _ := jd.JDNToWeekNum(d.JD(), 0, d.sg)
	return w
}

//WNum1 returns the week number with weeks starting on Monday, like strftime %W.
func (d Date) WNum1() int {
	_, w, _ := jd.JDNToWeekNum(d.JD(), 1, d.sg)
	return w
}

func (d Date) Hour() int   { return d.local() / 3600 }
func (d Date) Minute() int { return d.local() % 3600 / 60 }
func (d Date) Second() int { return d.local() % 60 }

//SecFraction returns the fraction of the second.
func (d Date) SecFraction() *big.Rat {
	if d.sf == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(d.sf)
}

//Offset returns the UTC offset in seconds east.
func (d Date) Offset() int {
	return d.of
}

//Zone returns the offset as +hh:mm.
func (d Date) Zone() string {
	return zoneString(d.of, true)
}

//DayFraction returns the exact fraction of the local day.
func (d Date) DayFraction() *big.Rat {
	r := big.NewRat(int64(d.local()), dayInSeconds)
	if d.sf != nil {
		r.Add(r, new(big.Rat).Quo(d.sf, big.NewRat(dayInSeconds, 1)))
	}
	return r
}

func (d Date) Precision() Precision {
	return d.prec
}

//Start returns the calendar reform the civil fields are computed under.
func (d Date) Start() jd.Reform {
	return d.sg
}

//IsJulian reports whether the local day lies before the reform.
func (d Date) IsJulian() bool {
	return !d.sg.IsGregorian(d.JD())
}

func (d Date) IsGregorian() bool {
	return d.sg.IsGregorian(d.JD())
}

//IsLeap reports whether the year of the date is a leap year under its reform.
func (d Date) IsLeap() bool {
	return jd.IsLeap(d.year, d.sg)
}
