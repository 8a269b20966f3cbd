package hierarchy

import (
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/zerr"
)

type comparison struct {
	index int
	obj   domain.Handle
}

// CompareObject reports whether the record at index still describes obj. It never
// constructs, caches or mutates anything. A pair already being compared further up the
// call chain is assumed equal, so reference cycles terminate.
func (s *Serializer) CompareObject(index int, obj domain.Handle) bool {
	if index == domain.NoIndex || obj.IsNone() {
		return index == domain.NoIndex && obj.IsNone()
	}
	s.requireActive()

	rec, ok := s.Record(index)
	if !ok {
		s.reportUnresolved(index, zerr.Wrap(domain.ErrUnknownIndex, "cannot compare object"))
		return false
	}

	key := comparison{index: index, obj: obj}
	if _, ok := s.comparing[key]; ok {
		return true
	}
	s.comparing[key] = struct{}{}
	defer delete(s.comparing, key)

	switch rec.Type {
	case domain.KindImport:
		if s.runtime.NameOf(obj) != rec.ObjectName {
			return false
		}
		if rec.Outer == nil {
			return true
		}
		return s.CompareObject(*rec.Outer, s.runtime.OuterOf(obj))
	case domain.KindExport:
		if rec.IsMarked() {
			return s.markedObject(rec.ObjectMark) == obj
		}
		return s.compareExport(rec, obj)
	default:
		Fail(zerr.With(zerr.With(domain.ErrUnknownRecordType, "type", string(rec.Type)), "object_index", index))
		return false
	}
}

func (s *Serializer) compareExport(rec *domain.Record, obj domain.Handle) bool {
	// The package root record carries no name; its identity is the source package.
	if rec.Outer == nil {
		return s.CompareObject(rec.ClassIndex(), s.runtime.ClassOf(obj)) && obj == s.sourcePackage
	}
	if s.runtime.NameOf(obj) != rec.ObjectName {
		return false
	}
	if !s.CompareObject(rec.ClassIndex(), s.runtime.ClassOf(obj)) {
		return false
	}
	if !s.CompareObject(*rec.Outer, s.runtime.OuterOf(obj)) {
		return false
	}
	if rec.Properties == nil {
		return true
	}

	for _, field := range s.runtime.Fields(s.runtime.ClassOf(obj)) {
		if !s.codec.ShouldPersist(field) {
			continue
		}
		value, ok := rec.Properties.Get(field.Name)
		if !ok {
			continue
		}
		if !s.codec.Equal(s, obj, field, value) {
			return false
		}
	}
	return true
}
