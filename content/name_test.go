package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		name, date, slug string
	}{
		{"2021-03-01-hello.md", "2021-03-01", "hello"},
		{"content/blog/2019-05-05-two-words.html", "2019-05-05", "two-words"},
		{"about.html", DefaultDate, "about"},
		{"archive.tar.gz", DefaultDate, "archive"},
		{"2021-03-01-.html", DefaultDate, "2021-03-01-"},
		{"2021-03-01.html", DefaultDate, "2021-03-01"},
		{"2021-3-01-x.html", DefaultDate, "2021-3-01-x"},
		{"2021-03-01-x-2022-01-01.html", "2021-03-01", "x-2022-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, slug, err := ParseName(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.date, date)
			require.Equal(t, tt.slug, slug)
		})
	}
}

func TestParseName_Empty(t *testing.T) {
	_, _, err := ParseName("dir/.hidden")
	require.ErrorIs(t, err, ErrEmptyName)
}

func TestStem(t *testing.T) {
	require.Equal(t, "2021-03-01-hello", Stem("content/blog/2021-03-01-hello.md"))
}

func TestDates(t *testing.T) {
	rfc, err := RFC2822Date("2021-03-01")
	require.NoError(t, err)
	require.Equal(t, "Mon, 01 Mar 2021 00:00:00 +0000", rfc)

	simple, err := SimpleDate("2021-03-01")
	require.NoError(t, err)
	require.Equal(t, "01 Mar 2021", simple)

	simple, err = SimpleDate("2019-05-05 23:30:00 +0530")
	require.NoError(t, err)
	require.Equal(t, "05 May 2019 06:00 PM GMT", simple)

	rfc, err = RFC2822Date("2019-05-05 23:30:00 +0530")
	require.NoError(t, err)
	require.Equal(t, "Sun, 05 May 2019 18:00:00 +0000", rfc)

	_, err = SimpleDate("yesterday")
	require.Error(t, err)
	_, err = RFC2822Date("2021-13-01")
	require.Error(t, err)
}
