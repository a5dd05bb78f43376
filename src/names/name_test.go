package names

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseNameMusicAttributes(t *testing.T) {
	for _, tc := range []struct{ in, title string }{
		{"MyTitle{a=Author;b=Group;d=2002-12-25;f=1;p=Dude;t=abcdef;v=Variation}.suffix", "MyTitle"},
		{"{a=Author;b=Group;d=2002-12-25;f=1;p=Dude;t=abcdef;v=Variation}.suffix", ""},
	} {
		t.Run(tc.title, func(t *testing.T) {
			n, err := ParseName(tc.in, nil, ParseMusicAttributes)
			require.NoError(t, err)
			assert.Equal(t, tc.title, n.Title)
			assert.Equal(t, ".suffix", n.Suffix)

			a := n.Attributes
			assert.Equal(t, "Author", a.Artist)
			assert.Equal(t, "Group", a.Album)
			assert.True(t, local(2002, 12, 25, 0, 0, 0).Equal(a.DateTime))
			assert.Equal(t, FavLiked, a.Favourite)
			assert.Equal(t, "abcdef", a.Tags)
			assert.Equal(t, "Variation", a.Variation)
		})
	}
}

func TestParseNameMusicEmptyBlock(t *testing.T) {
	for _, in := range []string{"T{x=1}", "T{a=}"} {
		n, err := ParseName(in, nil, ParseMusicAttributes)
		require.NoError(t, err)
		assert.Equal(t, "T{}", n.String(), in)
	}
	n, err := ParseName("T{}", nil, ParseMusicAttributes)
	require.NoError(t, err)
	assert.Equal(t, "T", n.String())
}

func TestParseName(t *testing.T) {
	n, err := Parse("a.b{x=1}.c", nil)
	require.NoError(t, err)
	assert.Equal(t, "a.b", n.Title)
	assert.Equal(t, ".c", n.Suffix)
	assert.False(t, n.Attributes.Empty())

	n, err = Parse("Holiday.tar.gz", nil)
	require.NoError(t, err)
	assert.Equal(t, "Holiday.tar", n.Title)
	assert.Equal(t, ".gz", n.Suffix)
	assert.True(t, n.Attributes.Empty())
	assert.Equal(t, "Holiday.tar.gz", n.String())

	n, err = Parse("Song{}.mp3", nil)
	require.NoError(t, err)
	assert.True(t, n.Attributes.Empty())
	assert.Equal(t, "Song.mp3", n.String())
}

func TestFormatKeepsEmptyBlockWhenNeeded(t *testing.T) {
	cases := map[string]string{
		"a.b{}":        "a.b{}",
		"a.b{x=1}":     "a.b{}",
		"T{}.tar.gz":   "T{}.tar.gz",
		"a.b{}.c":      "a.b.c",
		"~1 v1.2{}":    "~01 v1.2{}",
		"Plain{}":      "Plain",
		"Plain.tar.gz": "Plain.tar.gz",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			first, err := ParsePartName(in, nil, ParseAttributes)
			require.NoError(t, err)
			assert.Equal(t, want, first.String())

			second, err := ParsePartName(first.String(), nil, ParseAttributes)
			require.NoError(t, err)
			assert.True(t, first.Equal(second))
			assert.Equal(t, first.Title, second.Title)
			assert.Equal(t, first.Suffix, second.Suffix)
			assert.Equal(t, want, second.String())
		})
	}

	n := Name[Attributes]{Title: "a_b"}
	r := MustRules(WithDelimiters(Delimiters{
		Part: '~', TimeUnit: '-', DateTime: 'T', AttributeStart: '{', AttributeEnd: '}',
		Attribute: ';', Title: ' ', Suffix: '_',
	}))
	assert.Equal(t, "a_b{}", n.Format(r))
	assert.Equal(t, "a_b", n.String())
}

func TestParseNameErrors(t *testing.T) {
	cases := []struct {
		in     string
		err    error
		offset int
	}{
		{"", ErrEmptyInput, 0},
		{" \t", ErrEmptyInput, 0},
		{"Title{a}.x", ErrMalformedAttributeToken, 6},
		{"Title{a=1;q}.x", ErrMalformedAttributeToken, 10},
		{"Title{ab}.x", ErrMissingAssignment, 7},
		{"Title{a=1", ErrUnterminatedAttributeBlock, 5},
		{"Title{a=1}x.y", ErrSuffixAttributeAdjacency, 10},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := Parse(tc.in, nil)
			require.ErrorIs(t, err, tc.err)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tc.offset, pe.Offset)
			assert.Equal(t, tc.in, pe.Input)
		})
	}
}

func TestParseNameDictAttributes(t *testing.T) {
	n, err := ParseName("Title{k=v;a=b}.x", nil, ParseDictAttributes)
	require.NoError(t, err)
	assert.Equal(t, 2, n.Attributes.Len())
	assert.Equal(t, "Title{k=v;a=b}.x", n.String())

	_, err = ParseName("Title{}.x", nil, ParseDictAttributes)
	assert.ErrorIs(t, err, ErrMalformedAttributeToken)

	n, err = ParseName("Title.x", nil, ParseDictAttributes)
	require.NoError(t, err)
	assert.True(t, n.Attributes.Empty())
}

func TestNameEquality(t *testing.T) {
	a := Name[Attributes]{Title: "Same", Suffix: ".a"}
	b := Name[Attributes]{Title: "Same", Suffix: ".b", Attributes: Attributes{Author: "x"}}
	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, -1, a.Compare(Name[Attributes]{Title: "Tail"}))
}

func TestParsePartName(t *testing.T) {
	cases := []struct {
		in    string
		parts Parts
	}{
		{"~1~02~492 Title.suffix", Parts{1, 2, 492}},
		{"~02~492 Title.suffix", Parts{2, 492, None}},
		{"~492 Title.suffix", Parts{492, None, None}},
		{"~1 Title.suffix", Parts{1, None, None}},
		{"~1~02 Title.suffix", Parts{1, 2, None}},
		{"Title.suffix", NoParts},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			n, err := ParsePartName(tc.in, nil, ParseAttributes)
			require.NoError(t, err)
			assert.Equal(t, tc.parts, n.Parts)
			assert.Equal(t, "Title", n.Title)
			assert.Equal(t, ".suffix", n.Suffix)
		})
	}
}

func TestParsePartNameErrors(t *testing.T) {
	_, err := ParsePartName("   ", nil, ParseAttributes)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = ParsePartName("~12345678901 x", nil, ParseAttributes)
	assert.ErrorIs(t, err, ErrPartOverflow)

	_, err = ParsePartName("~01 Title{a=1;b}.x", nil, ParseAttributes)
	require.ErrorIs(t, err, ErrMalformedAttributeToken)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 14, pe.Offset)
}

func TestPartNameFormat(t *testing.T) {
	n := PartName[Attributes]{
		Parts: Parts{1, 2, 492},
		Name:  Name[Attributes]{Title: "Title", Suffix: ".suffix", Attributes: Attributes{Tags: "x"}},
	}
	assert.Equal(t, "~01~02~492 Title{t=x}.suffix", n.String())

	n.Title = ""
	assert.Equal(t, "~01~02~492{t=x}.suffix", n.String())

	n.Parts = NoParts
	n.Title = "Title"
	assert.Equal(t, "Title{t=x}.suffix", n.String())

	r := MustRules(WithPartDigits(3, 1, 1))
	n.Parts = Parts{7, None, None}
	assert.Equal(t, "~007 Title{t=x}.suffix", n.Format(r))
}

func TestPartNameOrdering(t *testing.T) {
	mk := func(top, mid, bottom int, title string) PartName[Attributes] {
		return PartName[Attributes]{Parts: Parts{top, mid, bottom}, Name: Name[Attributes]{Title: title}}
	}
	list := []PartName[Attributes]{
		mk(2, None, None, "c"),
		mk(1, 3, None, "b"),
		mk(1, None, None, "a"),
		mk(1, 2, 9, "z"),
	}
	slices.SortFunc(list, PartName[Attributes].Compare)
	var titles []string
	for _, n := range list {
		titles = append(titles, n.Title)
	}
	assert.Equal(t, []string{"a", "z", "b", "c"}, titles)

	assert.True(t, mk(1, 2, 3, "x").Equal(mk(1, 2, 3, "y")))
	assert.False(t, mk(1, 2, 3, "x").Equal(mk(1, 2, None, "x")))
}

func TestParseDateName(t *testing.T) {
	cases := []struct {
		in   string
		want string
		prec Precision
	}{
		{"2020 Title.suffix", "2020-01-01T00-00-00", PrecisionYear},
		{"2020-05 Title.suffix", "2020-05-01T00-00-00", PrecisionMonth},
		{"2020-05-15 Title.suffix", "2020-05-15T00-00-00", PrecisionDay},
		{"2020-05-15T20 Title.suffix", "2020-05-15T20-00-00", PrecisionHour},
		{"2020-05-15T20-15 Title.suffix", "2020-05-15T20-15-00", PrecisionMinute},
		{"2020-05-15T20-15-20 Title.suffix", "2020-05-15T20-15-20", PrecisionSecond},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			n, err := ParseDateName(tc.in, nil, ParseAttributes)
			require.NoError(t, err)
			assert.Equal(t, tc.want, FormatDateTime(n.Date, PrecisionSecond, nil))
			assert.Equal(t, tc.prec, n.Precision)
			assert.Equal(t, "Title", n.Title)
			assert.Equal(t, ".suffix", n.Suffix)
			assert.Equal(t, tc.in, n.String())
		})
	}
}

func TestParseDateNameIgnoresDaylightSaving(t *testing.T) {
	inZone(t, "America/New_York")

	n, err := ParseDateName("2021-03-14T02 Title", nil, ParseAttributes)
	require.NoError(t, err)
	assert.Equal(t, 2, n.Date.Hour())
	assert.Equal(t, "2021-03-14T02 Title", n.String())

	// The hour repeated when clocks go back stays as written too.
	n, err = ParseDateName("2021-11-07T01-30 Title", nil, ParseAttributes)
	require.NoError(t, err)
	assert.Equal(t, "2021-11-07T01-30 Title", n.String())
}

func TestParseDateNameErrors(t *testing.T) {
	_, err := ParseDateName("Title.suffix", nil, ParseAttributes)
	assert.ErrorIs(t, err, ErrInvalidDateComponent)

	_, err = ParseDateName("2020-99 Title", nil, ParseAttributes)
	assert.ErrorIs(t, err, ErrInvalidDateComponent)

	_, err = ParseDateName("2020 Title{x}", nil, ParseAttributes)
	require.ErrorIs(t, err, ErrMalformedAttributeToken)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 11, pe.Offset)
}

func TestDateNameFormat(t *testing.T) {
	n := DateName[Attributes]{Date: local(2021, 3, 4, 5, 6, 7), Name: Name[Attributes]{Title: "Trip", Suffix: ".jpg"}}
	assert.Equal(t, "2021-03-04 Trip.jpg", n.String())
	assert.Equal(t, "2021-03-04T05-06 Trip.jpg", n.Format(MustRules(WithDatePrecision(PrecisionMinute))))

	n.Precision = PrecisionMonth
	n.Title = ""
	assert.Equal(t, "2021-03.jpg", n.String())
}

// nameGrammar only produces names the parser accepts.
const nameGrammar = `(~[0-9]{1,4}(~[0-9]{1,4}(~[0-9]{1,3})?)? )?` +
	`[A-Za-z][A-Za-z0-9 .]{0,10}` +
	`(\{((a=[A-Za-z]{0,5})|(t=[a-z]{1,5})|(z=1)|(f=[12])|(d=20[0-9]{2}-0[1-9]-1[0-9])|(q=[a-z]{0,3}))` +
	`(;((b=[A-Za-z ]{1,5})|(v=[a-z]{0,4})|(p=[A-Z]{2})))?\}|\{\})?` +
	`(\.[a-z]{1,4}(\.[a-z]{1,3})?)?`

func TestPartNameIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(nameGrammar).Draw(t, "name")

		first, err := ParsePartName(s, nil, ParseAttributes)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		formatted := first.String()
		second, err := ParsePartName(formatted, nil, ParseAttributes)
		if err != nil {
			t.Fatalf("reparse %q (from %q): %v", formatted, s, err)
		}

		if !first.Equal(second) || first.Title != second.Title || first.Suffix != second.Suffix {
			t.Fatalf("%q -> %q: got %+v, want %+v", s, formatted, second, first)
		}
		f1 := slices.Collect(first.Attributes.Fragments(nil))
		f2 := slices.Collect(second.Attributes.Fragments(nil))
		if !slices.Equal(f1, f2) {
			t.Fatalf("%q -> %q: attributes %q, want %q", s, formatted, f2, f1)
		}
	})
}
