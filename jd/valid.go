package jd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidCoordinate = errors.New("invalid calendar coordinate") //Wrapped by every CoordinateError
)

//CoordinateError reports a coordinate that does not name an existing day.
type CoordinateError struct {
	System string //civil, ordinal, commercial, weeknum or nthkday
	Fields []int
	Reform Reform
}

func (e *CoordinateError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, v := range e.Fields {
		parts[i] = strconv.Itoa(v)
	}
	return fmt.Sprintf("invalid %s coordinate (%s) under reform %s", e.System, strings.Join(parts, ", "), e.Reform)
}

func (e *CoordinateError) Unwrap() error {
	return ErrInvalidCoordinate
}

func invalid(system string, sg Reform, fields ...int) (int, error) {
	return 0, &CoordinateError{System: system, Fields: fields, Reform: sg}
}

//ValidCivil returns the day number of a calendar date.
//A negative month counts from the end of the year (-1 is December),
//a negative day from the end of the month (-1 is the last day).
//The date is converted back and rejected unless it survives the round trip,
//so February 30 and days inside a cutover gap fail instead of being clamped.
func ValidCivil(y, m, d int, sg Reform) (int, error) {
	oy, om, od := y, m, d
	if m < 0 {
		m += 13
	}
	if m < 1 || m > 12 {
		return invalid("civil", sg, oy, om, od)
	}
	if d < 0 {
		ldom, ok := LastDayOfMonth(y, m, sg)
		if !ok {
			return invalid("civil", sg, oy, om, od)
		}
		ry, rm, rd := JDNToCivil(ldom+d+1, sg)
		if ry != y || rm != m {
			return invalid("civil", sg, oy, om, od)
		}
		d = rd
	}
	jdn, ok := civilRoundTrip(y, m, d, sg)
	if !ok {
		return invalid("civil", sg, oy, om, od)
	}
	return jdn, nil
}

//ValidOrdinal returns the day number of a year and day of year, a negative day counting from the end.
func ValidOrdinal(y, yd int, sg Reform) (int, error) {
	oyd := yd
	if yd < 0 {
		ldoy, ok := LastDayOfYear(y, sg)
		if !ok {
			return invalid("ordinal", sg, y, oyd)
		}
		ry, rd := JDNToOrdinal(ldoy+yd+1, sg)
		if ry != y {
			return invalid("ordinal", sg, y, oyd)
		}
		yd = rd
	}
	if _, ok := FirstDayOfYear(y, sg); !ok {
		return invalid("ordinal", sg, y, oyd)
	}
	jdn := OrdinalToJDN(y, yd, sg)
	if ry, rd := JDNToOrdinal(jdn, sg); ry != y || rd != yd {
		return invalid("ordinal", sg, y, oyd)
	}
	return jdn, nil
}

//ValidCommercial returns the day number of an ISO week date.
//A negative week counts from the last ISO week of the year, a negative weekday from Sunday (-1).
func ValidCommercial(y, w, d int, sg Reform) (int, error) {
	ow, od := w, d
	if d < 0 {
		d += 8
	}
	if w < 0 {
		next := CommercialToJDN(y+1, 1, 1, sg)
		ry, rw, _ := JDNToCommercial(next+w*7, sg)
		if ry != y {
			return invalid("commercial", sg, y, ow, od)
		}
		w = rw
	}
	jdn := CommercialToJDN(y, w, d, sg)
	if ry, rw, rd := JDNToCommercial(jdn, sg); ry != y || rw != w || rd != d {
		return invalid("commercial", sg, y, ow, od)
	}
	return jdn, nil
}

//ValidWeekNum returns the day number of a %U (f=0) or %W (f=1) week coordinate.
func ValidWeekNum(y, w, d, f int, sg Reform) (int, error) {
	ow, od := w, d
	if f != 0 && f != 1 {
		return invalid("weeknum", sg, y, ow, od, f)
	}
	if d < 0 {
		d += 7
	}
	if w < 0 {
		next := WeekNumToJDN(y+1, 1, 0, f, sg)
		ry, rw, _ := JDNToWeekNum(next+w*7, f, sg)
		if ry != y {
			return invalid("weeknum", sg, y, ow, od, f)
		}
		w = rw
	}
	jdn := WeekNumToJDN(y, w, d, f, sg)
	if ry, rw, rd := JDNToWeekNum(jdn, f, sg); ry != y || rw != w || rd != d {
		return invalid("weeknum", sg, y, ow, od, f)
	}
	return jdn, nil
}

//ValidNthKday returns the day number of the nth k-day of a month.
func ValidNthKday(y, m, n, k int, sg Reform) (int, error) {
	om, ok := m, k
	if m < 0 {
		m += 13
	}
	if k < 0 {
		k += 7
	}
	if m < 1 || m > 12 || k < 0 || k > 6 || n == 0 {
		return invalid("nthkday", sg, y, om, n, ok)
	}
	if _, found := FirstDayOfMonth(y, m, sg); !found {
		return invalid("nthkday", sg, y, om, n, ok)
	}
	jdn := NthKdayToJDN(y, m, n, k, sg)
	if ry, rm, _ := JDNToCivil(jdn, sg); ry != y || rm != m {
		return invalid("nthkday", sg, y, om, n, ok)
	}
	return jdn, nil
}
