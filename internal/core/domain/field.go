package domain

// FieldType is the value type of a reflected field.
type FieldType string

const (
	// FieldInt is a signed integer field.
	FieldInt FieldType = "int"
	// FieldFloat is a floating point field.
	FieldFloat FieldType = "float"
	// FieldBool is a boolean field.
	FieldBool FieldType = "bool"
	// FieldString is a string field.
	FieldString FieldType = "string"
	// FieldObject is a reference to another object.
	FieldObject FieldType = "object"
	// FieldArray is an ordered list of Elem values.
	FieldArray FieldType = "array"
	// FieldMap is a string-keyed map of Elem values.
	FieldMap FieldType = "map"
)

// IsValid reports whether t is a known field type.
func (t FieldType) IsValid() bool {
	switch t {
	case FieldInt, FieldFloat, FieldBool, FieldString, FieldObject, FieldArray, FieldMap:
		return true
	default:
		return false
	}
}

// IsContainer reports whether values of t hold Elem values.
func (t FieldType) IsContainer() bool {
	return t == FieldArray || t == FieldMap
}

// FieldFlags carries persistence-related field metadata.
type FieldFlags uint32

// FieldTransient fields are never persisted.
const FieldTransient FieldFlags = 1 << 0

// Field describes one reflected field of a class, in the runtime's canonical order.
type Field struct {
	Name  string
	Type  FieldType
	Elem  FieldType
	Flags FieldFlags
}

// Is reports whether all bits of flags are set on the field.
func (f Field) Is(flags FieldFlags) bool {
	return f.Flags&flags == flags
}
