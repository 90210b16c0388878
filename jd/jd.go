//Package jd converts between chronological Julian day numbers and calendar coordinates.
//All day numbers are plain integers, day 0 is a Monday.
package jd

const (
	gregorianEpoch = 1721120 //March 1 of year 0, proleptic Gregorian
)

//GregorianToJDN converts a proleptic Gregorian date to a Julian day number.
//The year is shifted to start on March 1 so the leap day is the last day of the year.
func GregorianToJDN(y, m, d int) int {
	if m <= 2 {
		y--
		m += 12
	}
	c := FloorDiv(y, 100)
	days := FloorDiv(1461*y, 4) - c + FloorDiv(c, 4)
	return days + (979*m-2919)/32 + d - 1 + gregorianEpoch
}

//JDNToGregorian converts a Julian day number to a proleptic Gregorian date.
//  y, m, d := jd.JDNToGregorian(2453738)
//  y==2006 && m==1 && d==2 //=> true
func JDNToGregorian(jdn int) (y, m, d int) {
	n := 4*(jdn-gregorianEpoch) + 3
	c := FloorDiv(n, 146097)
	n = FloorMod(n, 146097)/4*4 + 3
	dy := n % 1461 / 4
	y = 100*c + n/1461

	n = 2141*dy + 197913
	m = n >> 16
	d = (n&0xffff)/2141 + 1
	if dy >= 306 {
		y++
		m -= 12
	}
	return y, m, d
}

//JulianToJDN converts a proleptic Julian date to a Julian day number.
func JulianToJDN(y, m, d int) int {
	a := FloorDiv(14-m, 12)
	y += 4800 - a
	m += 12*a - 3
	return d + FloorDiv(153*m+2, 5) + 365*y + FloorDiv(y, 4) - 32083
}

//JDNToJulian converts a Julian day number to a proleptic Julian date.
func JDNToJulian(jdn int) (y, m, d int) {
	c := jdn + 32082
	n := FloorDiv(4*c+3, 1461)
	e := c - FloorDiv(1461*n, 4)
	k := FloorDiv(5*e+2, 153)
	d = e - FloorDiv(153*k+2, 5) + 1
	m = k + 3 - 12*FloorDiv(k, 10)
	y = n - 4800 + FloorDiv(k, 10)
	return y, m, d
}

//CivilToJDN converts a calendar date under reform sg.
//The Gregorian reading is used when it lands on or after the cutover, the Julian one otherwise.
//The second result reports which one was used.
func CivilToJDN(y, m, d int, sg Reform) (int, bool) {
	if jdn := GregorianToJDN(y, m, d); sg.IsGregorian(jdn) {
		return jdn, true
	}
	return JulianToJDN(y, m, d), false
}

//JDNToCivil converts a day number to a calendar date under reform sg.
func JDNToCivil(jdn int, sg Reform) (y, m, d int) {
	if sg.IsGregorian(jdn) {
		return JDNToGregorian(jdn)
	}
	return JDNToJulian(jdn)
}

func IsGregorianLeap(y int) bool {
	return FloorMod(y, 4) == 0 && (FloorMod(y, 100) != 0 || FloorMod(y, 400) == 0)
}

func IsJulianLeap(y int) bool {
	return FloorMod(y, 4) == 0
}

//IsLeap reports whether February of year y has 29 days under reform sg.
func IsLeap(y int, sg Reform) bool {
	mar1, _ := CivilToJDN(y, 3, 1, sg)
	_, _, d := JDNToCivil(mar1-1, sg)
	return d == 29
}

//Wday returns the day of the week, 0 for Sunday.
func Wday(jdn int) int {
	return FloorMod(jdn+1, 7)
}

//Cwday returns the ISO day of the week, 1 for Monday through 7 for Sunday.
func Cwday(jdn int) int {
	if w := Wday(jdn); w != 0 {
		return w
	}
	return 7
}

func civilRoundTrip(y, m, d int, sg Reform) (int, bool) {
	if m < 1 || m > 12 {
		return 0, false
	}
	jdn, _ := CivilToJDN(y, m, d, sg)
	ry, rm, rd := JDNToCivil(jdn, sg)
	return jdn, ry == y && rm == m && rd == d
}

//FirstDayOfYear returns the first existing day of year y.
//A cutover gap can swallow the first days, so the search walks forward.
func FirstDayOfYear(y int, sg Reform) (int, bool) {
	for d := 1; d < 31; d++ {
		if jdn, ok := civilRoundTrip(y, 1, d, sg); ok {
			return jdn, true
		}
	}
	return 0, false
}

//LastDayOfYear returns the last existing day of year y.
func LastDayOfYear(y int, sg Reform) (int, bool) {
	return LastDayOfMonth(y, 12, sg)
}

func FirstDayOfMonth(y, m int, sg Reform) (int, bool) {
	for d := 1; d < 31; d++ {
		if jdn, ok := civilRoundTrip(y, m, d, sg); ok {
			return jdn, true
		}
	}
	return 0, false
}

func LastDayOfMonth(y, m int, sg Reform) (int, bool) {
	for d := 31; d > 1; d-- {
		if jdn, ok := civilRoundTrip(y, m, d, sg); ok {
			return jdn, true
		}
	}
	return 0, false
}

//DaysInYear counts the existing days of year y, 355 for 1582 under Italy.
func DaysInYear(y int, sg Reform) int {
	first, ok1 := FirstDayOfYear(y, sg)
	last, ok2 := LastDayOfYear(y, sg)
	if !ok1 || !ok2 {
		return 0
	}
	return last - first + 1
}

//DaysInMonth counts the existing days of a month.
func DaysInMonth(y, m int, sg Reform) int {
	first, ok1 := FirstDayOfMonth(y, m, sg)
	last, ok2 := LastDayOfMonth(y, m, sg)
	if !ok1 || !ok2 {
		return 0
	}
	return last - first + 1
}
