package ports

import "go.trai.ch/modkit/internal/core/domain"

// ObjectRuntime is the reflection, lookup and construction capability of the engine
// hosting the objects being saved. Handles passed in are owned by the runtime.
type ObjectRuntime interface {
	FieldAccessor

	// ClassOf returns the class of obj.
	ClassOf(obj domain.Handle) domain.Handle
	// OuterOf returns the object obj lives in, or NoObject for a package.
	OuterOf(obj domain.Handle) domain.Handle
	// NameOf returns the name of obj inside its outer.
	NameOf(obj domain.Handle) string
	// FlagsOf returns the flags of obj.
	FlagsOf(obj domain.Handle) domain.ObjectFlags
	// PackageOf returns the outermost object of obj, which is always a package.
	PackageOf(obj domain.Handle) domain.Handle
	// PathName returns the full path of obj, for diagnostics.
	PathName(obj domain.Handle) string

	// IsPackageClass reports whether class is the package class.
	IsPackageClass(class domain.Handle) bool
	// Fields returns the reflected fields of class in canonical order, including inherited ones.
	Fields(class domain.Handle) []domain.Field
	// NativeSerializeClass returns the closest class in the hierarchy of class that
	// implements custom native serialization, or NoObject when none does.
	NativeSerializeClass(class domain.Handle) domain.Handle

	// FindChild returns the object named name of class (or a subclass) directly inside outer.
	FindChild(class, outer domain.Handle, name string) domain.Handle
	// FindClassInPackage returns the class named name inside pkg.
	FindClassInPackage(pkg domain.Handle, name string) domain.Handle
	// LoadPackage returns the named package, loading it if needed. It returns NoObject when
	// the package does not exist.
	LoadPackage(name string) domain.Handle

	// ArchetypeFor returns the template a new object with the given identity is seeded from.
	ArchetypeFor(class, outer domain.Handle, name string, flags domain.ObjectFlags) domain.Handle
	// ConstructObject creates a new object, copying field values from template.
	ConstructObject(class, outer domain.Handle, name string, flags domain.ObjectFlags, template domain.Handle) domain.Handle
}

// FieldAccessor reads and writes reflected field values.
type FieldAccessor interface {
	// FieldValue returns the current value of field on obj.
	FieldValue(obj domain.Handle, field domain.Field) (any, error)
	// SetFieldValue replaces the value of field on obj.
	SetFieldValue(obj domain.Handle, field domain.Field, value any) error
}
