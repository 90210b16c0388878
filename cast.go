package jdate

import (
	"math/big"
	"time"

	usno "github.com/carlosjhr64/jd"

	"github.com/SebastiaanKlippert/go-jdate/jd"
)

//This file converts between Date and time.Time.

const unixEpochJD = 2440588 //1970-01-01

//gregorianDay uses the USNO formula where its truncating division holds.
func gregorianDay(y, m, d int) int {
	if y > -4700 {
		return usno.YMD2J(y, m, d)
	}
	return jd.GregorianToJDN(y, m, d)
}

//FromTime returns the day and clock of t in its own location, under the default reform.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	h, min, s := t.Clock()
	_, of := t.Zone()
	of = checkOffset(of)

	var sf *big.Rat
	if ns := t.Nanosecond(); ns != 0 {
		sf = big.NewRat(int64(ns), int64(time.Second))
	}
	utc := h*3600 + min*60 + s - of
	jdn := gregorianDay(y, int(m), d) + jd.FloorDiv(utc, dayInSeconds)
	return newDate(jdn, jd.FloorMod(utc, dayInSeconds), sf, of, jd.DefaultReform, Clock)
}

//Today returns the current local day without time of day.
func Today() Date {
	y, m, d := time.Now().Date()
	return JD(gregorianDay(y, int(m), d), jd.DefaultReform)
}

//ToTime returns the instant as a time.Time in a fixed zone at the date's offset.
//Sub nanosecond fractions are truncated.
func (d Date) ToTime() time.Time {
	secs := int64(d.jdn-unixEpochJD)*dayInSeconds + int64(d.df)
	var ns int64
	if d.sf != nil {
		n := new(big.Int).Mul(d.sf.Num(), big.NewInt(int64(time.Second)))
		ns = n.Quo(n, d.sf.Denom()).Int64()
	}
	loc := time.UTC
	if d.of != 0 {
		loc = time.FixedZone(zoneString(d.of, true), d.of)
	}
	return time.Unix(secs, ns).In(loc)
}
