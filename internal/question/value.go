package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind tells which scalar a Value holds.
type ValueKind uint8

const (
	KindText ValueKind = iota + 1
	KindInt
	KindBool
)

func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "integer"
	case KindBool:
		return "boolean"
	default:
		return "unset"
	}
}

// Value is one suggested answer: a text, an integer or a boolean.
// Values are comparable with ==.
type Value struct {
	kind ValueKind
	text string
	num  int
	flag bool
}

func Text(s string) Value { return Value{kind: KindText, text: s} }
func Int(n int) Value     { return Value{kind: KindInt, num: n} }
func Bool(b bool) Value   { return Value{kind: KindBool, flag: b} }

func (v Value) Kind() ValueKind { return v.kind }

// Int returns the integer held by v and whether v is an integer.
func (v Value) Int() (int, bool) { return v.num, v.kind == KindInt }

// Bool returns the boolean held by v and whether v is a boolean.
func (v Value) Bool() (bool, bool) { return v.flag, v.kind == KindBool }

// String renders the value for a terminal; booleans read Oui/Non.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.num)
	case KindBool:
		if v.flag {
			return "Oui"
		}
		return "Non"
	default:
		return v.text
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindInt:
		return []byte(strconv.Itoa(v.num)), nil
	case KindBool:
		return []byte(strconv.FormatBool(v.flag)), nil
	default:
		return nil, fmt.Errorf("marshal answer: value kind is unset")
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte("false")):
		*v = Bool(data[0] == 't')
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
	default:
		n, err := strconv.Atoi(string(data))
		if err != nil {
			return fmt.Errorf("unmarshal answer %s: %w", data, err)
		}
		*v = Int(n)
	}
	return nil
}
