package frag

import (
	"math/big"
	"testing"

	"github.com/SebastiaanKlippert/go-jdate/jd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//Saturday 2001-02-03
const refDay = 2451944

func reference(calls *int) Reference {
	return func() int {
		*calls++
		return refDay
	}
}

func completeAndResolve(t *testing.T, f *Fragments, withTime bool) int {
	t.Helper()
	calls := 0
	Complete(f, reference(&calls), jd.Italy, withTime)
	assert.LessOrEqual(t, calls, 1)
	jdn, err := Resolve(f, jd.Italy)
	require.NoError(t, err)
	return jdn
}

func TestCompleteCivil(t *testing.T) {
	f := &Fragments{MDay: Some(10)}
	assert.Equal(t, jd.GregorianToJDN(2001, 2, 10), completeAndResolve(t, f, false))

	f = &Fragments{Mon: Some(5)}
	assert.Equal(t, jd.GregorianToJDN(2001, 5, 1), completeAndResolve(t, f, false))

	f = &Fragments{Year: Some(1999)}
	assert.Equal(t, jd.GregorianToJDN(1999, 1, 1), completeAndResolve(t, f, false))
	assert.Equal(t, Some(0), f.Hour)
	assert.Equal(t, Some(0), f.Min)
	assert.Equal(t, Some(0), f.Sec)
}

func TestCompleteOrdinal(t *testing.T) {
	f := &Fragments{YDay: Some(60)}
	assert.Equal(t, jd.GregorianToJDN(2001, 3, 1), completeAndResolve(t, f, false))
}

func TestCompleteCommercial(t *testing.T) {
	f := &Fragments{CWeek: Some(15)}
	assert.Equal(t, jd.GregorianToJDN(2001, 4, 9), completeAndResolve(t, f, false))

	f = &Fragments{CWDay: Some(3)}
	//Wednesday of the reference week
	assert.Equal(t, jd.GregorianToJDN(2001, 1, 31), completeAndResolve(t, f, false))
}

func TestCompleteWeekday(t *testing.T) {
	f := &Fragments{WDay: Some(1)}
	assert.Equal(t, jd.GregorianToJDN(2001, 1, 29), completeAndResolve(t, f, false))

	f = &Fragments{WDay: Some(0), Hour: Some(9)}
	assert.Equal(t, jd.GregorianToJDN(2001, 1, 28), completeAndResolve(t, f, false))
	assert.Equal(t, Some(9), f.Hour)
}

func TestCompleteWeekNumber(t *testing.T) {
	f := &Fragments{WNum1: Some(10)}
	jdn := completeAndResolve(t, f, false)
	y, w, d := jd.JDNToWeekNum(jdn, 1, jd.Italy)
	assert.Equal(t, []int{2001, 10, 0}, []int{y, w, d})
	assert.Equal(t, 1, jd.Wday(jdn), "Monday based weeks default to Monday")

	f = &Fragments{WNum0: Some(1)}
	assert.Equal(t, jd.GregorianToJDN(2001, 1, 7), completeAndResolve(t, f, false))

	//the Sunday of week 0 lies in the previous year
	f = &Fragments{WNum0: Some(0)}
	Complete(f, func() int { return refDay }, jd.Italy, false)
	_, err := Resolve(f, jd.Italy)
	assert.ErrorIs(t, err, ErrUnresolvable)
}

func TestCompleteTimeOnly(t *testing.T) {
	f := &Fragments{Hour: Some(10), Min: Some(20), Sec: Some(30)}
	assert.Equal(t, refDay, completeAndResolve(t, f, true))

	f = &Fragments{Hour: Some(10)}
	Complete(f, func() int { return refDay }, jd.Italy, false)
	_, err := Resolve(f, jd.Italy)
	assert.ErrorIs(t, err, ErrUnresolvable)
}

func TestCompleteWithoutReference(t *testing.T) {
	f := &Fragments{Year: Some(2001), Mon: Some(2)}
	Complete(f, nil, jd.Italy, false)
	assert.Equal(t, Some(1), f.MDay)

	f = &Fragments{MDay: Some(3)}
	Complete(f, nil, jd.Italy, false)
	_, err := Resolve(f, jd.Italy)
	assert.ErrorIs(t, err, ErrUnresolvable)
}

func TestCompleteDoesNotCallReferenceWhenComplete(t *testing.T) {
	f := &Fragments{Year: Some(2001), Mon: Some(2), MDay: Some(3), Hour: Some(1), Min: Some(2), Sec: Some(3)}
	Complete(f, func() int {
		t.Fatal("reference requested")
		return 0
	}, jd.Italy, false)
}

func TestCompleteClampsSecond(t *testing.T) {
	f := &Fragments{Year: Some(2001), Mon: Some(2), MDay: Some(3), Sec: Some(60)}
	Complete(f, nil, jd.Italy, false)
	assert.Equal(t, Some(59), f.Sec)
}

func TestCompleteSeconds(t *testing.T) {
	f := &Fragments{Seconds: new(big.Rat).SetFrac64(2*(365*86400+3661)+1, 2)}
	jdn := completeAndResolve(t, f, false)
	assert.Equal(t, 2440588+365, jdn)
	assert.Equal(t, Some(1), f.Hour)
	assert.Equal(t, Some(1), f.Min)
	assert.Equal(t, Some(1), f.Sec)
	assert.Equal(t, 0, f.SecFraction.Cmp(big.NewRat(1, 2)))
	assert.Nil(t, f.Seconds)

	f = &Fragments{Seconds: big.NewRat(-1, 1), Offset: Some(9 * 3600)}
	Complete(f, nil, jd.Italy, false)
	assert.Equal(t, Some(2440588), f.JD)
	assert.Equal(t, Some(8), f.Hour)
	assert.Equal(t, Some(59), f.Sec)
}

func TestResolve(t *testing.T) {
	jdn, err := Resolve(&Fragments{JD: Some(2451944), Year: Some(1)}, jd.Italy)
	require.NoError(t, err)
	assert.Equal(t, 2451944, jdn)

	jdn, err = Resolve(&Fragments{Year: Some(2001), YDay: Some(34), Mon: Some(12), MDay: Some(31)}, jd.Italy)
	require.NoError(t, err)
	assert.Equal(t, refDay, jdn, "ordinal is preferred over civil")

	jdn, err = Resolve(&Fragments{CWYear: Some(2001), CWeek: Some(5), WDay: Some(6)}, jd.Italy)
	require.NoError(t, err)
	assert.Equal(t, refDay, jdn)

	jdn, err = Resolve(&Fragments{Year: Some(2001), WNum0: Some(5), CWDay: Some(7)}, jd.Italy)
	require.NoError(t, err)
	assert.Equal(t, 0, jd.Wday(jdn))

	jdn, err = Resolve(&Fragments{Year: Some(2001), WNum1: Some(5), CWDay: Some(7)}, jd.Italy)
	require.NoError(t, err)
	assert.Equal(t, 0, jd.Wday(jdn))
}

func TestResolveInvalid(t *testing.T) {
	_, err := Resolve(&Fragments{Year: Some(2001), Mon: Some(2), MDay: Some(29)}, jd.Italy)
	assert.ErrorIs(t, err, ErrUnresolvable)
	assert.ErrorIs(t, err, jd.ErrInvalidCoordinate)

	_, err = Resolve(&Fragments{Year: Some(1582), Mon: Some(10), MDay: Some(10)}, jd.Italy)
	assert.ErrorIs(t, err, jd.ErrInvalidCoordinate, "day dropped by the reform")

	_, err = Resolve(&Fragments{}, jd.Italy)
	assert.ErrorIs(t, err, ErrUnresolvable)
	assert.NotErrorIs(t, err, jd.ErrInvalidCoordinate)
}
