package jdate

import (
	"math/big"
	"testing"
	"time"
)

func TestFromTime(t *testing.T) {
	tm := time.Date(2001, 2, 3, 4, 5, 6, 500000000, time.FixedZone("", 7*3600))
	d := FromTime(tm)
	if d.Year() != 2001 || d.Month() != 2 || d.Day() != 3 {
		t.Errorf("Want 2001-02-03, have %s", d)
	}
	if d.Hour() != 4 || d.Minute() != 5 || d.Second() != 6 {
		t.Errorf("Want 04:05:06, have %02d:%02d:%02d", d.Hour(), d.Minute(), d.Second())
	}
	if d.Offset() != 7*3600 {
		t.Errorf("Want offset %d, have %d", 7*3600, d.Offset())
	}
	if d.SecFraction().Cmp(big.NewRat(1, 2)) != 0 {
		t.Errorf("Want fraction 1/2, have %s", d.SecFraction())
	}
	if d.Precision() != Clock {
		t.Errorf("Want %s, have %s", Clock, d.Precision())
	}
}

func TestFromTime_BeforeEpoch(t *testing.T) {
	d := FromTime(time.Date(-4712, 1, 1, 12, 0, 0, 0, time.UTC))
	//proleptic Gregorian -4712-01-01 is Julian day 38
	if d.JD() != 38 {
		t.Errorf("Want JD 38, have %d", d.JD())
	}
}

func TestToTime(t *testing.T) {
	now := time.Now().Truncate(time.Microsecond)
	have := FromTime(now).ToTime()
	if have.Equal(now) == false {
		t.Errorf("Want %v, have %v", now, have)
	}
	_, of := now.Zone()
	if _, hof := have.Zone(); hof != of {
		t.Errorf("Want offset %d, have %d", of, hof)
	}

	d := Must(Civil(1970, 1, 2, DefaultReform))
	if d.ToTime().Unix() != 86400 {
		t.Errorf("Want %d, have %d", 86400, d.ToTime().Unix())
	}
}

func TestToday(t *testing.T) {
	today := Today()
	y, m, dd := time.Now().Date()
	if today.Year() != y || today.Month() != int(m) || today.Day() != dd {
		//the day may roll over between the two calls
		if today.Next().Day() != dd {
			t.Errorf("Want %d-%02d-%02d, have %s", y, m, dd, today)
		}
	}
	if today.Precision() != DateOnly {
		t.Errorf("Want %s, have %s", DateOnly, today.Precision())
	}
}
