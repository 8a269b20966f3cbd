package hierarchy

import (
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/zerr"
)

// SerializeObject returns the index of obj, writing its record on first visit.
// The record is allocated before its class and outer are visited, so those may get higher indices.
func (s *Serializer) SerializeObject(obj domain.Handle) int {
	if obj.IsNone() {
		return domain.NoIndex
	}
	s.requireActive()
	if index, ok := s.indices[obj]; ok {
		return index
	}

	index := len(s.records)
	rec := &domain.Record{ObjectIndex: index}
	s.records = append(s.records, rec)
	s.indices[obj] = index

	if s.runtime.PackageOf(obj) != s.sourcePackage {
		rec.Type = domain.KindImport
		s.serializeImport(rec, obj)
		return index
	}

	rec.Type = domain.KindExport
	if tag, ok := s.marks[obj]; ok {
		rec.ObjectMark = tag
		return index
	}
	s.serializeExport(rec, obj)
	return index
}

func (s *Serializer) serializeImport(rec *domain.Record, obj domain.Handle) {
	class := s.runtime.ClassOf(obj)
	rec.ClassPackage = s.runtime.NameOf(s.runtime.PackageOf(class))
	rec.ClassName = s.runtime.NameOf(class)
	if outer := s.runtime.OuterOf(obj); !outer.IsNone() {
		rec.Outer = domain.Index(s.SerializeObject(outer))
	}
	rec.ObjectName = s.runtime.NameOf(obj)
}

func (s *Serializer) serializeExport(rec *domain.Record, obj domain.Handle) {
	class := s.runtime.ClassOf(obj)
	rec.ObjectClass = domain.Index(s.SerializeObject(class))

	outer := s.runtime.OuterOf(obj)
	if outer.IsNone() {
		// The source package itself: its class is all that is recorded.
		if !s.runtime.IsPackageClass(class) {
			Fail(zerr.With(zerr.Wrap(domain.ErrUnexpectedClass, "export without outer is not a package"),
				"object", s.runtime.PathName(obj)))
		}
		return
	}

	rec.Outer = domain.Index(s.SerializeObject(outer))
	rec.ObjectName = s.runtime.NameOf(obj)
	flags := s.runtime.FlagsOf(obj) & domain.LoadFlags
	rec.ObjectFlags = &flags

	if native := s.runtime.NativeSerializeClass(class); !native.IsNone() {
		if _, ok := s.allowed[native]; !ok {
			recordUnhandledNativeClass(s.runtime.PathName(native))
		}
	}

	rec.Properties = s.serializeProperties(obj, class)
}

func (s *Serializer) serializeProperties(obj, class domain.Handle) *domain.Properties {
	props := domain.NewProperties()
	referenced := []int{}
	for _, field := range s.runtime.Fields(class) {
		if !s.codec.ShouldPersist(field) {
			continue
		}
		value, err := s.codec.Encode(s, obj, field, &referenced)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "failed to serialize property"), "field", field.Name)
			s.logger.Error(zerr.With(err, "object", s.runtime.PathName(obj)))
			continue
		}
		props.Set(field.Name, value)
	}
	props.ReferencedObjects = referenced
	return props
}
