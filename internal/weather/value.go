package weather

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Value is one column of an observation, kept the way the client sent it or
// the store returned it: nil, bool, int64, float64 or string. Nothing is
// type-checked on the way in; the storage engine decides what to keep.
// The zero Value is null.
type Value struct {
	v any
}

// NewValue wraps v, normalising Go numeric and byte types to the set above.
func NewValue(v any) Value {
	switch t := v.(type) {
	case int:
		return Value{v: int64(t)}
	case int32:
		return Value{v: int64(t)}
	case float32:
		return Value{v: float64(t)}
	case []byte:
		return Value{v: string(t)}
	}
	return Value{v: v}
}

func (v Value) Any() any { return v.v }

func (v Value) IsNull() bool { return v.v == nil }

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.v)
}

// UnmarshalJSON accepts any JSON value. Integral numbers become int64,
// other numbers float64; objects and arrays are kept as their JSON text.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch t := raw.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			v.v = i
			return nil
		}
		f, err := t.Float64()
		if err != nil {
			return err
		}
		v.v = f
	case map[string]any, []any:
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		v.v = buf.String()
	default:
		v.v = t
	}
	return nil
}

// Value implements driver.Valuer.
func (v Value) Value() (driver.Value, error) {
	return v.v, nil
}

// Scan implements sql.Scanner.
func (v *Value) Scan(src any) error {
	switch t := src.(type) {
	case []byte:
		v.v = string(t)
	case time.Time:
		v.v = t.Format(time.RFC3339Nano)
	default:
		v.v = t
	}
	return nil
}
