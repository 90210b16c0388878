package frag

import (
	"errors"
	"fmt"

	"github.com/SebastiaanKlippert/go-jdate/jd"
)

var (
	ErrUnresolvable = errors.New("fragments do not name a day") //Returned by Resolve
)

//Resolve picks the first complete grouping in the order jd, ordinal, civil,
//commercial, Sunday based week number, Monday based week number, and validates it.
//A weekday may stand in for the ISO weekday and the other way around.
//Fragments holding an overflowed number never resolve.
func Resolve(f *Fragments, sg jd.Reform) (int, error) {
	if f.Overflow.OK {
		return 0, fmt.Errorf("%w: %s is too large for a date field", ErrUnresolvable, f.Overflow.V)
	}
	if f.JD.OK {
		return f.JD.V, nil
	}

	var last error
	try := func(jdn int, err error) bool {
		if err != nil {
			last = err
			return false
		}
		return true
	}

	if f.YDay.OK && f.Year.OK {
		if jdn, err := jd.ValidOrdinal(f.Year.V, f.YDay.V, sg); try(jdn, err) {
			return jdn, nil
		}
	}
	if f.MDay.OK && f.Mon.OK && f.Year.OK {
		if jdn, err := jd.ValidCivil(f.Year.V, f.Mon.V, f.MDay.V, sg); try(jdn, err) {
			return jdn, nil
		}
	}

	wd := f.CWDay
	if !wd.OK && f.WDay.OK {
		wd = Some(f.WDay.V)
		if wd.V == 0 {
			wd.V = 7
		}
	}
	if wd.OK && f.CWeek.OK && f.CWYear.OK {
		if jdn, err := jd.ValidCommercial(f.CWYear.V, f.CWeek.V, wd.V, sg); try(jdn, err) {
			return jdn, nil
		}
	}

	wd = f.WDay
	if !wd.OK && f.CWDay.OK {
		wd = Some(f.CWDay.V)
		if wd.V == 7 {
			wd.V = 0
		}
	}
	if wd.OK && f.WNum0.OK && f.Year.OK {
		if jdn, err := jd.ValidWeekNum(f.Year.V, f.WNum0.V, wd.V, 0, sg); try(jdn, err) {
			return jdn, nil
		}
	}

	wd = f.WDay
	if !wd.OK {
		wd = f.CWDay
	}
	if wd.OK {
		wd.V = jd.FloorMod(wd.V-1, 7)
	}
	if wd.OK && f.WNum1.OK && f.Year.OK {
		if jdn, err := jd.ValidWeekNum(f.Year.V, f.WNum1.V, wd.V, 1, sg); try(jdn, err) {
			return jdn, nil
		}
	}

	if last != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnresolvable, last)
	}
	return 0, ErrUnresolvable
}
