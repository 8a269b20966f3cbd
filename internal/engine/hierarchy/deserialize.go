package hierarchy

import (
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/zerr"
)

// DeserializeObject resolves the record at index into a live object, constructing exports
// that do not exist yet. Each index is resolved at most once per session. Resolution failures
// are logged and yield NoObject.
func (s *Serializer) DeserializeObject(index int) domain.Handle {
	if index == domain.NoIndex {
		return domain.NoObject
	}
	s.requireActive()
	if obj, ok := s.loaded[index]; ok {
		return obj
	}

	rec, ok := s.Record(index)
	if !ok {
		s.reportUnresolved(index, zerr.Wrap(domain.ErrUnknownIndex, "cannot deserialize object"))
		return domain.NoObject
	}

	// Re-entry means the record's outer or class chain leads back to itself.
	if _, ok := s.resolving[index]; ok {
		s.reportUnresolved(index, zerr.Wrap(domain.ErrOuterNotResolved, "record references itself through its outer or class"))
		return domain.NoObject
	}
	s.resolving[index] = struct{}{}
	defer delete(s.resolving, index)

	var obj domain.Handle
	switch rec.Type {
	case domain.KindImport:
		obj = s.deserializeImport(index, rec)
	case domain.KindExport:
		if rec.IsMarked() {
			obj = s.markedObject(rec.ObjectMark)
		} else {
			obj = s.deserializeExport(index, rec)
		}
	default:
		Fail(zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownRecordType, "cannot deserialize object"), "type", string(rec.Type)), "object_index", index))
	}

	s.loaded[index] = obj
	return obj
}

func (s *Serializer) markedObject(tag string) domain.Handle {
	obj, ok := s.markTargets[tag]
	if !ok {
		Fail(zerr.With(zerr.Wrap(domain.ErrUnknownObjectMark, "cannot resolve marked object"), "object_mark", tag))
	}
	return obj
}

func (s *Serializer) deserializeImport(index int, rec *domain.Record) domain.Handle {
	classPackage := s.runtime.LoadPackage(rec.ClassPackage)
	if classPackage.IsNone() {
		s.reportUnresolved(index, zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "cannot resolve object class"),
			"package", rec.ClassPackage))
		return domain.NoObject
	}
	class := s.runtime.FindClassInPackage(classPackage, rec.ClassName)
	if class.IsNone() {
		s.reportUnresolved(index, zerr.With(zerr.Wrap(domain.ErrClassNotFound, "cannot resolve object class"),
			"class", rec.ClassPackage+"."+rec.ClassName))
		return domain.NoObject
	}

	if rec.Outer == nil {
		if !s.runtime.IsPackageClass(class) {
			s.reportUnresolved(index, zerr.With(zerr.Wrap(domain.ErrUnexpectedClass, "import without outer is not a package"),
				"class", rec.ClassPackage+"."+rec.ClassName))
			return domain.NoObject
		}
		pkg := s.runtime.LoadPackage(rec.ObjectName)
		if pkg.IsNone() {
			s.reportUnresolved(index, zerr.With(zerr.Wrap(domain.ErrPackageNotFound, "cannot resolve package"),
				"package", rec.ObjectName))
		}
		return pkg
	}

	outer := s.DeserializeObject(*rec.Outer)
	if outer.IsNone() {
		s.reportUnresolved(index, zerr.With(domain.ErrOuterNotResolved, "outer_index", *rec.Outer))
		return domain.NoObject
	}
	obj := s.runtime.FindChild(class, outer, rec.ObjectName)
	if obj.IsNone() {
		err := zerr.With(zerr.Wrap(domain.ErrObjectNotFound, "cannot find imported object"), "outer", s.runtime.PathName(outer))
		s.reportUnresolved(index, zerr.With(err, "object_name", rec.ObjectName))
	}
	return obj
}

func (s *Serializer) deserializeExport(index int, rec *domain.Record) domain.Handle {
	class := s.DeserializeObject(rec.ClassIndex())
	if class.IsNone() {
		s.reportUnresolved(index, zerr.With(zerr.Wrap(domain.ErrClassNotFound, "cannot resolve object class"),
			"class_index", rec.ClassIndex()))
		return domain.NoObject
	}

	if rec.Outer == nil {
		if !s.runtime.IsPackageClass(class) {
			s.reportUnresolved(index, zerr.With(zerr.Wrap(domain.ErrUnexpectedClass, "export without outer is not a package"),
				"class", s.runtime.PathName(class)))
			return domain.NoObject
		}
		return s.sourcePackage
	}

	outer := s.DeserializeObject(*rec.Outer)
	if outer.IsNone() {
		s.reportUnresolved(index, zerr.With(domain.ErrOuterNotResolved, "outer_index", *rec.Outer))
		return domain.NoObject
	}

	obj := s.runtime.FindChild(class, outer, rec.ObjectName)
	if obj.IsNone() {
		flags := rec.Flags()
		template := s.runtime.ArchetypeFor(class, outer, rec.ObjectName, flags)
		obj = s.runtime.ConstructObject(class, outer, rec.ObjectName, flags, template)
		if obj.IsNone() {
			err := zerr.With(zerr.Wrap(domain.ErrObjectNotFound, "cannot construct object"), "outer", s.runtime.PathName(outer))
			s.reportUnresolved(index, zerr.With(err, "object_name", rec.ObjectName))
			return domain.NoObject
		}
	}

	// Cached ahead of property application so that fields referring back to obj resolve to it.
	s.loaded[index] = obj
	if rec.Properties != nil {
		s.deserializeProperties(rec.Properties, obj)
	}
	return obj
}

func (s *Serializer) deserializeProperties(props *domain.Properties, obj domain.Handle) {
	for _, field := range s.runtime.Fields(s.runtime.ClassOf(obj)) {
		if !s.codec.ShouldPersist(field) {
			continue
		}
		value, ok := props.Get(field.Name)
		if !ok {
			continue
		}
		if err := s.codec.Decode(s, obj, field, value); err != nil {
			err = zerr.With(zerr.Wrap(err, "failed to deserialize property"), "field", field.Name)
			s.logger.Error(zerr.With(err, "object", s.runtime.PathName(obj)))
		}
	}
}
