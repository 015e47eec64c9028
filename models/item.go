// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant of the [Item] union is populated.
type Kind int

const (
	// KindNull is the JSON null literal.
	KindNull Kind = iota
	// KindBool is a JSON true/false literal.
	KindBool
	// KindNumber is a JSON number. The original text is kept in Item.Number.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindArray is a JSON array; elements are stored in Item.Array.
	KindArray
	// KindObject is a JSON object; members are stored in Item.Object in
	// the order they appeared in the source document.
	KindObject
)

// String returns the lower-case JSON type name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Member is a single key/value pair of a JSON object.
type Member struct {
	Key   string
	Value Item
}

// Item is one unit of input data. It is a closed union over the JSON value
// types; exactly one payload field is meaningful, selected by Kind.
//
// Items are decoded with object member order preserved, so an item that is
// re-encoded produces its members in the order of the input file.
type Item struct {
	Kind   Kind
	Bool   bool
	Number json.Number
	String string
	Array  []Item
	Object []Member
}

// Null returns the null item.
func Null() Item { return Item{Kind: KindNull} }

// Bool returns a boolean item.
func Bool(v bool) Item { return Item{Kind: KindBool, Bool: v} }

// Number returns a number item from its JSON text (e.g. "1", "2.5e3").
func Number(text string) Item { return Item{Kind: KindNumber, Number: json.Number(text)} }

// String returns a string item.
func String(v string) Item { return Item{Kind: KindString, String: v} }

// Array returns an array item holding elems.
func Array(elems ...Item) Item {
	if elems == nil {
		elems = []Item{}
	}
	return Item{Kind: KindArray, Array: elems}
}

// Object returns an object item holding members in the given order.
func Object(members ...Member) Item {
	if members == nil {
		members = []Member{}
	}
	return Item{Kind: KindObject, Object: members}
}

// Field looks up an object member by key. Decoded objects hold each key once;
// for hand-built objects with repeated keys the last occurrence wins.
func (it Item) Field(key string) (Item, bool) {
	if it.Kind != KindObject {
		return Item{}, false
	}
	for i := len(it.Object) - 1; i >= 0; i-- {
		if it.Object[i].Key == key {
			return it.Object[i].Value, true
		}
	}
	return Item{}, false
}

// ParseItem decodes exactly one JSON value from data. Any non-whitespace
// content after the value is an error.
func ParseItem(data []byte) (Item, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	item, err := decodeItem(dec)
	if err != nil {
		return Item{}, err
	}

	if _, err = dec.Token(); err != io.EOF {
		if err == nil {
			return Item{}, errors.New("invalid character after top-level value")
		}
		return Item{}, err
	}

	return item, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (it *Item) UnmarshalJSON(data []byte) error {
	parsed, err := ParseItem(data)
	if err != nil {
		return err
	}
	*it = parsed
	return nil
}

func decodeItem(dec *json.Decoder) (Item, error) {
	tok, err := dec.Token()
	if err != nil {
		return Item{}, unexpectedEOF(err)
	}

	switch v := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(v), nil
	case json.Number:
		return Item{Kind: KindNumber, Number: v}, nil
	case string:
		return String(v), nil
	case json.Delim:
		switch v {
		case '[':
			elems := make([]Item, 0)
			for dec.More() {
				elem, err := decodeItem(dec)
				if err != nil {
					return Item{}, err
				}
				elems = append(elems, elem)
			}
			if _, err := dec.Token(); err != nil {
				return Item{}, unexpectedEOF(err)
			}
			return Array(elems...), nil
		case '{':
			members := make([]Member, 0)
			seen := make(map[string]int)
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Item{}, unexpectedEOF(err)
				}
				key, ok := keyTok.(string)
				if !ok {
					return Item{}, fmt.Errorf("unexpected object key %v", keyTok)
				}
				value, err := decodeItem(dec)
				if err != nil {
					return Item{}, err
				}
				// A repeated key keeps its first position and takes the last value.
				if i, dup := seen[key]; dup {
					members[i].Value = value
					continue
				}
				seen[key] = len(members)
				members = append(members, Member{Key: key, Value: value})
			}
			if _, err := dec.Token(); err != nil {
				return Item{}, unexpectedEOF(err)
			}
			return Object(members...), nil
		}
	}

	return Item{}, fmt.Errorf("unexpected token %v", tok)
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// MarshalJSON implements json.Marshaler. Output is compact, keeps object
// member order and does not escape HTML characters.
func (it Item) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := it.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (it Item) encode(buf *bytes.Buffer) error {
	switch it.Kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(it.Bool))
	case KindNumber:
		text, err := FormatNumber(it.Number)
		if err != nil {
			return err
		}
		buf.WriteString(text)
	case KindString:
		return encodeString(buf, it.String)
	case KindArray:
		buf.WriteByte('[')
		for i, elem := range it.Array {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := elem.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, m := range it.Object {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, m.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := m.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode item of %s", it.Kind)
	}
	return nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encoder terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// FormatNumber renders a JSON number in its shortest round-trip decimal form:
// plain notation for magnitudes in [1e-6, 1e21), exponent notation otherwise
// ("1.0" → "1", "1e21" → "1e+21", "0.0000001" → "1e-7").
func FormatNumber(n json.Number) (string, error) {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return "", fmt.Errorf("invalid number %q: %w", n, err)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "null", nil
	}
	if f == 0 {
		return "0", nil
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}

	text := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(text, "e")
	sign := exp[0]
	digits := strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + string(sign) + digits, nil
}
