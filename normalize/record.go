// Package normalize maps extractor domain objects to ordered, JSON-encodable records.
//
// Every function is pure: it reads its input, never mutates or retains it, and returns a
// fresh Record. Optional upstream fields become explicit nulls rather than missing keys.
package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is a string-keyed map that encodes to JSON in insertion order.
type Record struct {
	*orderedmap.OrderedMap[string, any]
}

func newRecord() Record {
	return Record{orderedmap.New[string, any]()}
}

// extend copies base so variant mappers can add keys without touching it.
func extend(base Record) Record {
	r := Record{orderedmap.New[string, any](base.Len())}
	for pair := base.Oldest(); pair != nil; pair = pair.Next() {
		r.Set(pair.Key, pair.Value)
	}
	return r
}

// MarshalJSON writes the pairs in insertion order. Unlike the ordered map's own encoder
// it leaves <, > and & unescaped, so stream URLs stay readable.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.OrderedMap == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	buf.WriteByte('{')
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		if pair != r.Oldest() {
			buf.WriteByte(',')
		}
		if err := encoder.Encode(pair.Key); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
		buf.WriteByte(':')
		if err := encoder.Encode(pair.Value); err != nil {
			return nil, fmt.Errorf("encode %q: %w", pair.Key, err)
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Keys lists the keys of r in insertion order.
func Keys(r Record) []string {
	keys := make([]string, 0, r.Len())
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// name renders an optional enum by its symbolic name.
func name[T fmt.Stringer](v *T) any {
	if v == nil {
		return nil
	}
	return (*v).String()
}

func deref[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
