package names

import (
	"iter"
	"slices"
)

// DictAttributes is an open attribute schema mapping single byte keys to
// values in insertion order. Copies share storage; use Clone before mutating
// a value that is also held elsewhere.
type DictAttributes struct {
	keys   []byte
	values map[byte]string
}

// NewDictAttributes builds a mapping holding pairs in order.
func NewDictAttributes(pairs ...KeyValue) DictAttributes {
	var d DictAttributes
	for _, kv := range pairs {
		d.Set(kv.Key, kv.Value)
	}
	return d
}

// KeyValue is one attribute of a DictAttributes.
type KeyValue struct {
	Key   byte
	Value string
}

// Set stores v under k. A new key goes last; an existing key keeps its place.
func (d *DictAttributes) Set(k byte, v string) {
	if d.values == nil {
		d.values = make(map[byte]string)
	}
	if _, ok := d.values[k]; !ok {
		d.keys = append(d.keys, k)
	}
	d.values[k] = v
}

func (d DictAttributes) Get(k byte) (string, bool) {
	v, ok := d.values[k]
	return v, ok
}

func (d *DictAttributes) Delete(k byte) {
	if _, ok := d.values[k]; !ok {
		return
	}
	delete(d.values, k)
	d.keys = slices.DeleteFunc(d.keys, func(c byte) bool { return c == k })
}

func (d DictAttributes) Len() int { return len(d.keys) }

// Keys returns the keys in insertion order.
func (d DictAttributes) Keys() []byte { return slices.Clone(d.keys) }

// All iterates key, value pairs in insertion order.
func (d DictAttributes) All() iter.Seq2[byte, string] {
	return func(yield func(byte, string) bool) {
		for _, k := range d.keys {
			if !yield(k, d.values[k]) {
				return
			}
		}
	}
}

func (d DictAttributes) Clone() DictAttributes {
	var c DictAttributes
	for k, v := range d.All() {
		c.Set(k, v)
	}
	return c
}

func (d DictAttributes) Empty() bool { return len(d.keys) == 0 }

func (d DictAttributes) Fragments(*Rules) iter.Seq[string] {
	return func(yield func(string) bool) {
		for k, v := range d.All() {
			if !yield(string([]byte{k, '='}) + v) {
				return
			}
		}
	}
}

func (d DictAttributes) String() string { return FormatAttributes(d, DefaultRules) }

// ParseDictAttributes records every key=value token verbatim. A blank body is
// rejected since an open mapping has nothing to default to.
func ParseDictAttributes(body string, r *Rules) (DictAttributes, error) {
	r = orDefault(r)
	var d DictAttributes
	if isBlank(body) {
		return d, parseErr(body, 0, ErrMalformedAttributeToken, "empty attribute block")
	}
	err := parseAssignments(body, r, func(key byte, v string) error {
		d.Set(key, v)
		return nil
	})
	if err != nil {
		return DictAttributes{}, err
	}
	return d, nil
}
