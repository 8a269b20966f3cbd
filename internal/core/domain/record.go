package domain

import (
	"io"
	"iter"

	jsoniter "github.com/json-iterator/go"
	"go.trai.ch/modkit/internal/json"
	"go.trai.ch/zerr"
)

// RecordKind classifies a record by the package owning its object.
type RecordKind string

const (
	// KindImport is an object owned by a package other than the session's source package.
	KindImport RecordKind = "Import"
	// KindExport is an object owned by the session's source package.
	KindExport RecordKind = "Export"
)

// ReferencedObjectsField is the Properties key listing every object index referenced by the fields.
const ReferencedObjectsField = "$ReferencedObjects"

// Record is the serialized form of one object. Its position in a finalized array equals ObjectIndex.
type Record struct {
	ObjectIndex  int          `json:"ObjectIndex"`
	Type         RecordKind   `json:"Type"`
	ClassPackage string       `json:"ClassPackage,omitempty"`
	ClassName    string       `json:"ClassName,omitempty"`
	ObjectMark   string       `json:"ObjectMark,omitempty"`
	ObjectClass  *int         `json:"ObjectClass,omitempty"`
	Outer        *int         `json:"Outer,omitempty"`
	ObjectName   string       `json:"ObjectName,omitempty"`
	ObjectFlags  *ObjectFlags `json:"ObjectFlags,omitempty"`
	Properties   *Properties  `json:"Properties,omitempty"`
}

// IsMarked reports whether the record is an export short-circuited by an object mark.
func (r *Record) IsMarked() bool {
	return r.Type == KindExport && r.ObjectMark != ""
}

// OuterIndex returns the outer index, or NoIndex when the record has no outer.
func (r *Record) OuterIndex() int {
	if r.Outer == nil {
		return NoIndex
	}
	return *r.Outer
}

// ClassIndex returns the class index, or NoIndex when the record has none.
func (r *Record) ClassIndex() int {
	if r.ObjectClass == nil {
		return NoIndex
	}
	return *r.ObjectClass
}

// Flags returns the recorded load flags, or zero when absent.
func (r *Record) Flags() ObjectFlags {
	if r.ObjectFlags == nil {
		return 0
	}
	return *r.ObjectFlags
}

// Index returns a pointer to a copy of i, for optional record fields.
func Index(i int) *int {
	return &i
}

// Property is one persisted field value.
type Property struct {
	Name  string
	Value any
}

// Properties is the structural encoding of an object's persisted fields, kept in field order,
// plus the indices of every object those fields reference.
type Properties struct {
	values            []Property
	ReferencedObjects []int
}

// NewProperties returns an empty Properties block.
func NewProperties() *Properties {
	return &Properties{ReferencedObjects: []int{}}
}

// Set stores a field value, replacing an earlier value with the same name.
func (p *Properties) Set(name string, value any) {
	for i := range p.values {
		if p.values[i].Name == name {
			p.values[i].Value = value
			return
		}
	}
	p.values = append(p.values, Property{Name: name, Value: value})
}

// Get returns the stored value for name.
func (p *Properties) Get(name string) (any, bool) {
	for _, prop := range p.values {
		if prop.Name == name {
			return prop.Value, true
		}
	}
	return nil, false
}

// Len returns the number of stored field values.
func (p *Properties) Len() int {
	return len(p.values)
}

// All yields stored field values in order.
func (p *Properties) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, prop := range p.values {
			if !yield(prop.Name, prop.Value) {
				return
			}
		}
	}
}

// MarshalJSON writes field values in stored order followed by $ReferencedObjects.
func (p *Properties) MarshalJSON() ([]byte, error) {
	api := json.API()
	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)

	stream.WriteObjectStart()
	for _, prop := range p.values {
		stream.WriteObjectField(prop.Name)
		stream.WriteVal(prop.Value)
		stream.WriteMore()
	}
	stream.WriteObjectField(ReferencedObjectsField)
	stream.WriteArrayStart()
	for i, idx := range p.ReferencedObjects {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteInt(idx)
	}
	stream.WriteArrayEnd()
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, zerr.Wrap(stream.Error, "failed to encode properties")
	}
	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}

// UnmarshalJSON reads a Properties block, keeping field order.
func (p *Properties) UnmarshalJSON(data []byte) error {
	api := json.API()
	it := api.BorrowIterator(data)
	defer api.ReturnIterator(it)

	p.values = nil
	p.ReferencedObjects = []int{}
	it.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		if key == ReferencedObjectsField {
			var refs []int
			it.ReadVal(&refs)
			if refs != nil {
				p.ReferencedObjects = refs
			}
			return it.Error == nil
		}
		p.values = append(p.values, Property{Name: key, Value: it.Read()})
		return it.Error == nil
	})
	if it.Error != nil && it.Error != io.EOF {
		return zerr.Wrap(it.Error, "failed to decode properties")
	}
	return nil
}
