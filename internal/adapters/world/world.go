// Package world implements an in-memory object runtime with reflected classes, packages and
// object lookup by path. Worlds are described by YAML fixtures.
package world

import (
	"strings"
	"sync"

	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// CorePackage is the builtin package holding the root classes.
	CorePackage = "/Script/CoreUObject"
	// ObjectClassName is the root class every class derives from.
	ObjectClassName = "Object"
	// ClassClassName is the class of every class.
	ClassClassName = "Class"
	// PackageClassName is the class of every package.
	PackageClassName = "Package"

	defaultObjectPrefix = "Default__"
)

type object struct {
	name     domain.Name
	class    domain.Handle
	outer    domain.Handle
	flags    domain.ObjectFlags
	values   map[string]any
	children []domain.Handle
	meta     *classInfo
}

type classInfo struct {
	super  domain.Handle
	fields []domain.Field
	native bool
	cdo    domain.Handle
}

// World is an in-memory object runtime. It is safe for concurrent use.
type World struct {
	mu       sync.RWMutex
	objects  []*object
	packages map[string]domain.Handle

	objectClass  domain.Handle
	classClass   domain.Handle
	packageClass domain.Handle
}

var _ ports.World = (*World)(nil)

// New creates a world holding only the core package and its root classes.
func New() *World {
	w := &World{packages: make(map[string]domain.Handle)}

	core := w.add(&object{name: domain.NewName(CorePackage), flags: domain.FlagPublic | domain.FlagStandalone})
	w.packages[CorePackage] = core

	w.objectClass = w.add(&object{name: domain.NewName(ObjectClassName), outer: core, meta: &classInfo{}})
	w.classClass = w.add(&object{name: domain.NewName(ClassClassName), outer: core, meta: &classInfo{super: w.objectClass}})
	w.packageClass = w.add(&object{name: domain.NewName(PackageClassName), outer: core, meta: &classInfo{super: w.objectClass}})

	for _, h := range []domain.Handle{w.objectClass, w.classClass, w.packageClass} {
		o := w.get(h)
		o.class = w.classClass
		o.flags = domain.FlagPublic | domain.FlagStandalone
		w.get(core).children = append(w.get(core).children, h)
		o.meta.cdo = w.addDefaultObject(h)
	}
	w.get(core).class = w.packageClass
	return w
}

// ObjectClass returns the root class.
func (w *World) ObjectClass() domain.Handle {
	return w.objectClass
}

// PackageClass returns the class of packages.
func (w *World) PackageClass() domain.Handle {
	return w.packageClass
}

// CreatePackage returns the named package, creating it when it does not exist.
func (w *World) CreatePackage(name string) domain.Handle {
	w.mu.Lock()
	defer w.mu.Unlock()
	if h, ok := w.packages[name]; ok {
		return h
	}
	h := w.add(&object{name: domain.NewName(name), class: w.packageClass, flags: domain.FlagPublic | domain.FlagStandalone})
	w.packages[name] = h
	return h
}

// FindPackage returns the named package or NoObject.
func (w *World) FindPackage(name string) domain.Handle {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.packages[name]
}

// Packages returns every package name in creation order.
func (w *World) Packages() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var names []string
	for i, o := range w.objects {
		if o.outer.IsNone() {
			names = append(names, w.objects[i].name.String())
		}
	}
	return names
}

// DefineClass creates a class inside pkg deriving from super. A NoObject super derives from
// the root class. Fields are the class's own fields; inherited fields come first when reflected.
func (w *World) DefineClass(pkg domain.Handle, name string, super domain.Handle, fields []domain.Field, native bool) (domain.Handle, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkNewChild(pkg, name); err != nil {
		return domain.NoObject, err
	}
	if super.IsNone() {
		super = w.objectClass
	}
	if !w.isClass(super) {
		return domain.NoObject, zerr.With(zerr.Wrap(domain.ErrClassNotFound, "invalid super class"), "class", name)
	}
	for _, f := range fields {
		if !f.Type.IsValid() || (f.Type.IsContainer() && (!f.Elem.IsValid() || f.Elem.IsContainer())) {
			err := zerr.With(zerr.Wrap(domain.ErrPropertyEncoding, "unsupported field type"), "class", name)
			return domain.NoObject, zerr.With(err, "field", f.Name)
		}
	}

	h := w.add(&object{
		name:  domain.NewName(name),
		class: w.classClass,
		outer: pkg,
		flags: domain.FlagPublic | domain.FlagStandalone,
		meta:  &classInfo{super: super, fields: fields, native: native},
	})
	w.get(pkg).children = append(w.get(pkg).children, h)
	w.get(h).meta.cdo = w.addDefaultObject(h)
	return h, nil
}

// NewObject creates an instance of class named name inside outer.
func (w *World) NewObject(class, outer domain.Handle, name string, flags domain.ObjectFlags) (domain.Handle, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.newObject(class, outer, name, flags, domain.NoObject)
}

// ConstructObject creates an instance of class seeded with the field values of template.
// It returns NoObject when the object cannot be created.
func (w *World) ConstructObject(class, outer domain.Handle, name string, flags domain.ObjectFlags, template domain.Handle) domain.Handle {
	w.mu.Lock()
	defer w.mu.Unlock()
	h, err := w.newObject(class, outer, name, flags, template)
	if err != nil {
		return domain.NoObject
	}
	return h
}

func (w *World) newObject(class, outer domain.Handle, name string, flags domain.ObjectFlags, template domain.Handle) (domain.Handle, error) {
	if !w.isClass(class) {
		return domain.NoObject, zerr.With(zerr.Wrap(domain.ErrClassNotFound, "cannot create object"), "object_name", name)
	}
	if class == w.classClass || class == w.packageClass {
		return domain.NoObject, zerr.With(zerr.Wrap(domain.ErrUnexpectedClass, "classes and packages have dedicated constructors"), "object_name", name)
	}
	if err := w.checkNewChild(outer, name); err != nil {
		return domain.NoObject, err
	}

	o := &object{name: domain.NewName(name), class: class, outer: outer, flags: flags, values: make(map[string]any)}
	if t := w.get(template); t != nil {
		for k, v := range t.values {
			o.values[k] = copyValue(v)
		}
	}
	h := w.add(o)
	w.get(outer).children = append(w.get(outer).children, h)
	return h, nil
}

// ObjectsIn returns the instances inside pkg in creation order. The package itself, classes
// and class default objects are left out.
func (w *World) ObjectsIn(pkg domain.Handle) []domain.Handle {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var out []domain.Handle
	for i, o := range w.objects {
		h := domain.Handle(i + 1)
		if h == pkg || o.meta != nil || o.flags.Has(domain.FlagClassDefaultObject) {
			continue
		}
		if w.packageOf(h) == pkg {
			out = append(out, h)
		}
	}
	return out
}

// FindByPath returns the object at path, written as "<package>.<name>[:<name>...]".
func (w *World) FindByPath(path string) domain.Handle {
	w.mu.RLock()
	defer w.mu.RUnlock()

	pkgName, rest, hasRest := strings.Cut(path, ".")
	h := w.packages[pkgName]
	if h.IsNone() || !hasRest {
		return h
	}
	for name := range strings.SplitSeq(rest, ":") {
		h = w.childNamed(h, name)
		if h.IsNone() {
			return domain.NoObject
		}
	}
	return h
}

func (w *World) add(o *object) domain.Handle {
	w.objects = append(w.objects, o)
	return domain.Handle(len(w.objects))
}

func (w *World) addDefaultObject(class domain.Handle) domain.Handle {
	c := w.get(class)
	cdo := w.add(&object{
		name:   domain.NewName(defaultObjectPrefix + c.name.String()),
		class:  class,
		outer:  c.outer,
		flags:  domain.FlagPublic | domain.FlagClassDefaultObject | domain.FlagArchetypeObject,
		values: make(map[string]any),
	})
	w.get(c.outer).children = append(w.get(c.outer).children, cdo)
	return cdo
}

func (w *World) get(h domain.Handle) *object {
	if h.IsNone() || int(h) > len(w.objects) {
		return nil
	}
	return w.objects[h-1]
}

func (w *World) isClass(h domain.Handle) bool {
	o := w.get(h)
	return o != nil && o.meta != nil
}

func (w *World) isA(class, base domain.Handle) bool {
	for c := class; !c.IsNone(); c = w.get(c).meta.super {
		if c == base {
			return true
		}
	}
	return false
}

func (w *World) childNamed(outer domain.Handle, name string) domain.Handle {
	o := w.get(outer)
	if o == nil {
		return domain.NoObject
	}
	n := domain.NewName(name)
	for _, c := range o.children {
		if w.get(c).name == n {
			return c
		}
	}
	return domain.NoObject
}

func (w *World) checkNewChild(outer domain.Handle, name string) error {
	if w.get(outer) == nil {
		return zerr.With(zerr.Wrap(domain.ErrOuterNotResolved, "cannot create object"), "object_name", name)
	}
	if name == "" || strings.ContainsAny(name, ".:") {
		return zerr.With(zerr.Wrap(domain.ErrObjectNotFound, "invalid object name"), "object_name", name)
	}
	if !w.childNamed(outer, name).IsNone() {
		err := zerr.With(zerr.New("object already exists"), "outer", w.pathName(outer))
		return zerr.With(err, "object_name", name)
	}
	return nil
}

func (w *World) packageOf(h domain.Handle) domain.Handle {
	for o := w.get(h); o != nil && !o.outer.IsNone(); o = w.get(h) {
		h = o.outer
	}
	return h
}

func (w *World) pathName(h domain.Handle) string {
	o := w.get(h)
	if o == nil {
		return "None"
	}
	if o.outer.IsNone() {
		return o.name.String()
	}
	sep := ":"
	if w.get(o.outer).outer.IsNone() {
		sep = "."
	}
	return w.pathName(o.outer) + sep + o.name.String()
}

func copyValue(v any) any {
	switch v := v.(type) {
	case []any:
		out := make([]any, len(v))
		copy(out, v)
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = e
		}
		return out
	default:
		return v
	}
}
