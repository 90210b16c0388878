package jd

//OrdinalToJDN converts year and day of year, day 1 being the first existing day.
func OrdinalToJDN(y, yd int, sg Reform) int {
	fdoy, _ := FirstDayOfYear(y, sg)
	return fdoy + yd - 1
}

func JDNToOrdinal(jdn int, sg Reform) (y, yd int) {
	y, _, _ = JDNToCivil(jdn, sg)
	fdoy, _ := FirstDayOfYear(y, sg)
	return y, jdn - fdoy + 1
}

//CommercialToJDN converts an ISO week date.
//Week 1 is the week holding January 4, weeks start on Monday (cwday 1).
func CommercialToJDN(y, w, d int, sg Reform) int {
	fdoy, _ := FirstDayOfYear(y, sg)
	jan4 := fdoy + 3
	return jan4 - (Cwday(jan4) - 1) + 7*(w-1) + (d - 1)
}

//JDNToCommercial returns the ISO week date of a day.
//The ISO year is the calendar year of the Thursday in the same week.
func JDNToCommercial(jdn int, sg Reform) (y, w, d int) {
	d = Cwday(jdn)
	y, _, _ = JDNToCivil(jdn-d+4, sg)
	w = FloorDiv(jdn-CommercialToJDN(y, 1, 1, sg), 7) + 1
	return y, w, d
}

//weekStart returns the first day of week 1: the first Sunday (f=0) or Monday (f=1) of the year.
func weekStart(y, f int, sg Reform) int {
	fdoy, _ := FirstDayOfYear(y, sg)
	last := fdoy + 6
	return last - FloorMod(last-f+1, 7)
}

//WeekNumToJDN converts a %U (f=0) or %W (f=1) week number.
//Days before the first week start belong to week 0, d counts days from the week start.
func WeekNumToJDN(y, w, d, f int, sg Reform) int {
	return weekStart(y, f, sg) + 7*(w-1) + d
}

func JDNToWeekNum(jdn, f int, sg Reform) (y, w, d int) {
	y, _, _ = JDNToCivil(jdn, sg)
	j := jdn - weekStart(y, f, sg) + 7
	return y, FloorDiv(j, 7), FloorMod(j, 7)
}

//NthKdayToJDN returns the nth k-day (0 for Sunday) of a month.
//A negative n counts back from the end of the month, -1 being the last one.
func NthKdayToJDN(y, m, n, k int, sg Reform) int {
	var base int
	if n > 0 {
		fdom, _ := FirstDayOfMonth(y, m, sg)
		base = fdom - 1
	} else {
		ldom, _ := LastDayOfMonth(y, m, sg)
		base = ldom + 7
	}
	return base - FloorMod(base-k+1, 7) + 7*n
}

func JDNToNthKday(jdn int, sg Reform) (y, m, n, k int) {
	y, m, _ = JDNToCivil(jdn, sg)
	fdom, _ := FirstDayOfMonth(y, m, sg)
	return y, m, FloorDiv(jdn-fdom, 7) + 1, Wday(jdn)
}
