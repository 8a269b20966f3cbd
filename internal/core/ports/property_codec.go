package ports

import "go.trai.ch/modkit/internal/core/domain"

// ObjectReferences resolves object references nested in field values.
// A hierarchy serializer session implements it and passes itself to the codec.
type ObjectReferences interface {
	SerializeObject(obj domain.Handle) int
	DeserializeObject(index int) domain.Handle
	CompareObject(index int, obj domain.Handle) bool
}

// PropertyCodec encodes, decodes and compares individual field values.
//
//go:generate mockgen -source=property_codec.go -destination=mocks/mock_property_codec.go -package=mocks
type PropertyCodec interface {
	// ShouldPersist reports whether field is part of the saved state.
	ShouldPersist(field domain.Field) bool
	// Encode returns the serialized value of field on obj. Indices of referenced objects
	// are appended to referenced.
	Encode(refs ObjectReferences, obj domain.Handle, field domain.Field, referenced *[]int) (any, error)
	// Decode applies a serialized value to field on obj.
	Decode(refs ObjectReferences, obj domain.Handle, field domain.Field, value any) error
	// Equal reports whether the serialized value matches the live value of field on obj.
	Equal(refs ObjectReferences, obj domain.Handle, field domain.Field, value any) bool
}
