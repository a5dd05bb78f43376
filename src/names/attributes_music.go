package names

import (
	"iter"
	"time"
)

// MusicAttributes is the schema used for audio files. It has no person field.
// Like Attributes, the zero value formats to nothing while a parsed block
// formats as "{}" even with nothing set.
type MusicAttributes struct {
	Artist            string
	Album             string
	DateTime          time.Time
	Favourite         Favourite
	Tags              string
	Variation         string
	AttentionRequired bool

	block bool
	dated bool
}

// NewMusicAttributes returns music attributes that render a block even while
// unpopulated.
func NewMusicAttributes() MusicAttributes { return MusicAttributes{block: true} }

func (m MusicAttributes) Empty() bool { return !m.block && m.unset() }

func (m MusicAttributes) unset() bool {
	return m.Artist == "" && m.Album == "" && !m.hasDate() && m.Favourite == FavNone &&
		m.Tags == "" && m.Variation == "" && !m.AttentionRequired
}

func (m MusicAttributes) hasDate() bool { return m.dated || !m.DateTime.IsZero() }

func (m MusicAttributes) Fragments(r *Rules) iter.Seq[string] {
	r = orDefault(r)
	return func(yield func(string) bool) {
		if m.Artist != "" && !yield("a=" + m.Artist) {
			return
		}
		if m.Album != "" && !yield("b=" + m.Album) {
			return
		}
		if m.hasDate() && !yield("d="+FormatDateTime(m.DateTime, r.precision, r)) {
			return
		}
		if m.Favourite != FavNone && !yield("f="+string([]byte{byte(m.Favourite)})) {
			return
		}
		if m.Tags != "" && !yield("t=" + m.Tags) {
			return
		}
		if m.Variation != "" && !yield("v=" + m.Variation) {
			return
		}
		if m.AttentionRequired {
			yield("z=1")
		}
	}
}

// ParseMusicAttributes parses an attribute body using the music schema.
func ParseMusicAttributes(body string, r *Rules) (MusicAttributes, error) {
	r = orDefault(r)
	if isBlank(body) {
		return MusicAttributes{}, nil
	}
	m := NewMusicAttributes()
	err := parseAssignments(body, r, func(key byte, v string) error {
		var err error
		switch key {
		case 'a':
			m.Artist = v
		case 'b':
			m.Album = v
		case 'd':
			m.DateTime, err = parseAttributeDate(v, r)
			m.dated = err == nil
		case 'f':
			m.Favourite, err = parseFavourite(v)
		case 't':
			m.Tags = v
		case 'v':
			m.Variation = v
		case 'z':
			m.AttentionRequired = true
		}
		return err
	})
	if err != nil {
		return MusicAttributes{}, err
	}
	return m, nil
}
