// Package propcodec encodes reflected field values into save data and back.
package propcodec

import (
	"fmt"
	"math"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/modkit/internal/json"
	"go.trai.ch/zerr"
)

// Codec implements ports.PropertyCodec on top of a runtime's field accessors.
//
// Scalars are written as JSON scalars, object references as record indices, arrays as JSON
// arrays and maps as JSON objects.
type Codec struct {
	fields ports.FieldAccessor
}

var _ ports.PropertyCodec = (*Codec)(nil)

// New creates a codec reading and writing field values through fields.
func New(fields ports.FieldAccessor) *Codec {
	return &Codec{fields: fields}
}

// ShouldPersist reports whether field is saved. Transient fields are not.
func (c *Codec) ShouldPersist(field domain.Field) bool {
	return field.Type.IsValid() && !field.Is(domain.FieldTransient)
}

// Encode returns the save form of field on obj.
func (c *Codec) Encode(refs ports.ObjectReferences, obj domain.Handle, field domain.Field, referenced *[]int) (any, error) {
	live, err := c.fields.FieldValue(obj, field)
	if err != nil {
		return nil, err
	}
	return encode(refs, field.Type, field.Elem, live, referenced)
}

// Decode writes the save form value into field on obj.
func (c *Codec) Decode(refs ports.ObjectReferences, obj domain.Handle, field domain.Field, value any) error {
	v, err := decode(refs, field.Type, field.Elem, value)
	if err != nil {
		return err
	}
	return c.fields.SetFieldValue(obj, field, v)
}

// Equal reports whether value is the save form of the current value of field on obj.
func (c *Codec) Equal(refs ports.ObjectReferences, obj domain.Handle, field domain.Field, value any) bool {
	live, err := c.fields.FieldValue(obj, field)
	if err != nil {
		return false
	}
	return equal(refs, field.Type, field.Elem, value, live)
}

func encode(refs ports.ObjectReferences, t, elem domain.FieldType, v any, referenced *[]int) (any, error) {
	switch t {
	case domain.FieldInt:
		if n, ok := toInt64(v); ok {
			return n, nil
		}
	case domain.FieldFloat:
		if f, ok := toFloat64(v); ok {
			return f, nil
		}
	case domain.FieldBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case domain.FieldString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case domain.FieldObject:
		if h, ok := v.(domain.Handle); ok {
			index := refs.SerializeObject(h)
			if index != domain.NoIndex {
				*referenced = append(*referenced, index)
			}
			return index, nil
		}
	case domain.FieldArray:
		if items, ok := v.([]any); ok {
			out := make([]any, len(items))
			for i, item := range items {
				e, err := encode(refs, elem, "", item, referenced)
				if err != nil {
					return nil, err
				}
				out[i] = e
			}
			return out, nil
		}
	case domain.FieldMap:
		if entries, ok := v.(map[string]any); ok {
			out := make(map[string]any, len(entries))
			for k, item := range entries {
				e, err := encode(refs, elem, "", item, referenced)
				if err != nil {
					return nil, err
				}
				out[k] = e
			}
			return out, nil
		}
	}
	return nil, mismatch(t, v)
}

func decode(refs ports.ObjectReferences, t, elem domain.FieldType, v any) (any, error) {
	switch t {
	case domain.FieldInt:
		if n, ok := toInt64(v); ok {
			return n, nil
		}
	case domain.FieldFloat:
		if f, ok := toFloat64(v); ok {
			return f, nil
		}
	case domain.FieldBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case domain.FieldString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case domain.FieldObject:
		if v == nil {
			return domain.NoObject, nil
		}
		if index, ok := toInt64(v); ok {
			return refs.DeserializeObject(int(index)), nil
		}
	case domain.FieldArray:
		if items, ok := v.([]any); ok {
			out := make([]any, len(items))
			for i, item := range items {
				e, err := decode(refs, elem, "", item)
				if err != nil {
					return nil, err
				}
				out[i] = e
			}
			return out, nil
		}
	case domain.FieldMap:
		if entries, ok := v.(map[string]any); ok {
			out := make(map[string]any, len(entries))
			for k, item := range entries {
				e, err := decode(refs, elem, "", item)
				if err != nil {
					return nil, err
				}
				out[k] = e
			}
			return out, nil
		}
	}
	return nil, mismatch(t, v)
}

func equal(refs ports.ObjectReferences, t, elem domain.FieldType, stored, live any) bool {
	switch t {
	case domain.FieldInt:
		a, okA := toInt64(stored)
		b, okB := toInt64(live)
		return okA && okB && a == b
	case domain.FieldFloat:
		a, okA := toFloat64(stored)
		b, okB := toFloat64(live)
		return okA && okB && a == b
	case domain.FieldBool, domain.FieldString:
		return stored == live
	case domain.FieldObject:
		h, ok := live.(domain.Handle)
		if !ok {
			return false
		}
		if stored == nil {
			return h.IsNone()
		}
		index, ok := toInt64(stored)
		return ok && refs.CompareObject(int(index), h)
	case domain.FieldArray:
		a, okA := stored.([]any)
		b, okB := live.([]any)
		if !okA || !okB || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !equal(refs, elem, "", a[i], b[i]) {
				return false
			}
		}
		return true
	case domain.FieldMap:
		a, okA := stored.(map[string]any)
		b, okB := live.(map[string]any)
		if !okA || !okB || len(a) != len(b) {
			return false
		}
		for k, v := range a {
			w, ok := b[k]
			if !ok || !equal(refs, elem, "", v, w) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case float64:
		if n == math.Trunc(n) && n >= math.MinInt64 && n <= math.MaxInt64 {
			return int64(n), true
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f, true
		}
	}
	return 0, false
}

func mismatch(t domain.FieldType, v any) error {
	err := zerr.Wrap(domain.ErrPropertyEncoding, "value does not match field type")
	return zerr.With(zerr.With(err, "type", string(t)), "value_type", fmt.Sprintf("%T", v))
}
