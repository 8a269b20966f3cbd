package world

import (
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/zerr"
)

// ClassOf returns the class of obj.
func (w *World) ClassOf(obj domain.Handle) domain.Handle {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if o := w.get(obj); o != nil {
		return o.class
	}
	return domain.NoObject
}

// OuterOf returns the outer of obj.
func (w *World) OuterOf(obj domain.Handle) domain.Handle {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if o := w.get(obj); o != nil {
		return o.outer
	}
	return domain.NoObject
}

// NameOf returns the name of obj.
func (w *World) NameOf(obj domain.Handle) string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if o := w.get(obj); o != nil {
		return o.name.String()
	}
	return ""
}

// FlagsOf returns the flags of obj.
func (w *World) FlagsOf(obj domain.Handle) domain.ObjectFlags {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if o := w.get(obj); o != nil {
		return o.flags
	}
	return 0
}

// PackageOf returns the package containing obj.
func (w *World) PackageOf(obj domain.Handle) domain.Handle {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.get(obj) == nil {
		return domain.NoObject
	}
	return w.packageOf(obj)
}

// PathName returns the full path of obj, or "None" for an unknown handle.
func (w *World) PathName(obj domain.Handle) string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.pathName(obj)
}

// IsPackageClass reports whether class is the package class.
func (w *World) IsPackageClass(class domain.Handle) bool {
	return class == w.packageClass
}

// Fields returns the fields of class, inherited ones first.
func (w *World) Fields(class domain.Handle) []domain.Field {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if !w.isClass(class) {
		return nil
	}
	var chain []domain.Handle
	for c := class; !c.IsNone(); c = w.get(c).meta.super {
		chain = append(chain, c)
	}
	var fields []domain.Field
	for i := len(chain) - 1; i >= 0; i-- {
		fields = append(fields, w.get(chain[i]).meta.fields...)
	}
	return fields
}

// NativeSerializeClass returns the closest class in the hierarchy of class with a native
// serializer, or NoObject.
func (w *World) NativeSerializeClass(class domain.Handle) domain.Handle {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if !w.isClass(class) {
		return domain.NoObject
	}
	for c := class; !c.IsNone(); c = w.get(c).meta.super {
		if w.get(c).meta.native {
			return c
		}
	}
	return domain.NoObject
}

// FindChild returns the object named name directly inside outer whose class is class or
// derives from it.
func (w *World) FindChild(class, outer domain.Handle, name string) domain.Handle {
	w.mu.RLock()
	defer w.mu.RUnlock()
	h := w.childNamed(outer, name)
	if h.IsNone() || !w.isClass(class) || !w.isA(w.get(h).class, class) {
		return domain.NoObject
	}
	return h
}

// FindClassInPackage returns the class named name inside pkg.
func (w *World) FindClassInPackage(pkg domain.Handle, name string) domain.Handle {
	w.mu.RLock()
	defer w.mu.RUnlock()
	h := w.childNamed(pkg, name)
	if !w.isClass(h) {
		return domain.NoObject
	}
	return h
}

// LoadPackage returns the named package. Every package of an in-memory world is resident,
// so a package that was never created does not exist.
func (w *World) LoadPackage(name string) domain.Handle {
	return w.FindPackage(name)
}

// ArchetypeFor returns the default object of class.
func (w *World) ArchetypeFor(class, _ domain.Handle, _ string, _ domain.ObjectFlags) domain.Handle {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if !w.isClass(class) {
		return domain.NoObject
	}
	return w.get(class).meta.cdo
}

// FieldValue returns the value of field on obj, or the zero value of its type when unset.
func (w *World) FieldValue(obj domain.Handle, field domain.Field) (any, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	o := w.get(obj)
	if o == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrObjectNotFound, "cannot read field"), "field", field.Name)
	}
	if v, ok := o.values[field.Name]; ok {
		return v, nil
	}
	return zeroValue(field.Type), nil
}

// SetFieldValue stores the value of field on obj.
func (w *World) SetFieldValue(obj domain.Handle, field domain.Field, value any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	o := w.get(obj)
	if o == nil {
		return zerr.With(zerr.Wrap(domain.ErrObjectNotFound, "cannot write field"), "field", field.Name)
	}
	if o.values == nil {
		o.values = make(map[string]any)
	}
	o.values[field.Name] = value
	return nil
}

func zeroValue(t domain.FieldType) any {
	switch t {
	case domain.FieldInt:
		return int64(0)
	case domain.FieldFloat:
		return float64(0)
	case domain.FieldBool:
		return false
	case domain.FieldString:
		return ""
	case domain.FieldObject:
		return domain.NoObject
	case domain.FieldArray:
		return []any{}
	case domain.FieldMap:
		return map[string]any{}
	default:
		return nil
	}
}
