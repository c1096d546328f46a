package coerce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRFC822(t *testing.T) {
	want := time.Date(2023, time.July, 3, 12, 0, 0, 0, time.UTC)
	for _, tc := range []struct {
		in string
		ok bool
	}{
		{in: "Mon, 03 Jul 2023 12:00:00 GMT", ok: true},
		{in: "Mon, 03 Jul 2023 12:00:00 +0000", ok: true},
		{in: " Mon, 3 Jul 2023 12:00:00 +0000 ", ok: true},
		{in: "03 Jul 2023 12:00:00 +0000", ok: true},
		{in: "2023-07-03T12:00:00Z", ok: true},
		{in: ""},
		{in: "not a date"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			a := assert.New(t)
			got, ok := RFC822(tc.in)
			a.Equal(tc.ok, ok)
			if tc.ok {
				a.True(want.Equal(got), "got %v", got)
			}
		})
	}
}

func TestRFC3339(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{in: "2003-12-13T18:30:02Z", want: time.Date(2003, 12, 13, 18, 30, 2, 0, time.UTC), ok: true},
		{in: "2003-12-13T18:30:02.25+01:00", want: time.Date(2003, 12, 13, 17, 30, 2, 250000000, time.UTC), ok: true},
		{in: "2003-12-13T18:30Z", want: time.Date(2003, 12, 13, 18, 30, 0, 0, time.UTC), ok: true},
		{in: "2003-12-13", want: time.Date(2003, 12, 13, 0, 0, 0, 0, time.UTC), ok: true},
		{in: "Sat, 13 Dec 2003 18:30:02 GMT"},
		{in: ""},
	} {
		t.Run(tc.in, func(t *testing.T) {
			a := assert.New(t)
			got, ok := RFC3339(tc.in)
			a.Equal(tc.ok, ok)
			if tc.ok {
				a.True(tc.want.Equal(got), "got %v", got)
			}
		})
	}
}

func TestURI(t *testing.T) {
	a := assert.New(t)
	u, ok := URI(" http://example.com/feed ")
	a.True(ok)
	a.Equal("http://example.com/feed", u.String())
	a.True(u.IsAbs())

	u, ok = URI("../relative/path")
	a.True(ok)
	a.False(u.IsAbs())

	u, ok = URI("http://example.com/a b")
	a.True(ok)
	a.Equal("/a%20b", u.EscapedPath())

	_, ok = URI("")
	a.False(ok)
	_, ok = URI("http://[::1")
	a.False(ok)
}

func TestNumbers(t *testing.T) {
	a := assert.New(t)
	v, ok := Int(" 42 ")
	a.True(ok)
	a.Equal(42, v)
	_, ok = Int("4x")
	a.False(ok)

	l, ok := Int64("12345678901")
	a.True(ok)
	a.Equal(int64(12345678901), l)

	f, ok := Float("0.5")
	a.True(ok)
	a.Equal(0.5, f)
	_, ok = Float("half")
	a.False(ok)
}

func TestBool(t *testing.T) {
	for _, tc := range []struct {
		in       string
		want, ok bool
	}{
		{in: "true", want: true, ok: true},
		{in: "YES", want: true, ok: true},
		{in: "1", want: true, ok: true},
		{in: "False", ok: true},
		{in: "no", ok: true},
		{in: "maybe"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := Bool(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEnum(t *testing.T) {
	names := map[string]time.Weekday{"Monday": time.Monday, "Sunday": time.Sunday}
	a := assert.New(t)
	d, ok := Enum(" monday", names)
	a.True(ok)
	a.Equal(time.Monday, d)
	d, ok = Enum("SUNDAY", names)
	a.True(ok)
	a.Equal(time.Sunday, d)
	_, ok = Enum("Funday", names)
	a.False(ok)
}

func TestNames(t *testing.T) {
	names := NewNames(map[string]time.Weekday{"Monday": time.Monday, " SUNDAY ": time.Sunday})
	// keys are stored folded
	assert.Equal(t, Names[time.Weekday]{"monday": time.Monday, "sunday": time.Sunday}, names)
	for _, tc := range []struct {
		in   string
		want time.Weekday
		ok   bool
	}{
		{in: "monday", want: time.Monday, ok: true},
		{in: " MONDAY\n", want: time.Monday, ok: true},
		{in: "Sunday", want: time.Sunday, ok: true},
		{in: "Funday"},
		{in: ""},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := names.Lookup(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
