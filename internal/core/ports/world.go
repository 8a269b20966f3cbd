package ports

import "go.trai.ch/modkit/internal/core/domain"

// World is an object runtime that can also enumerate and address its objects.
type World interface {
	ObjectRuntime

	// FindPackage returns the named package without loading it.
	FindPackage(name string) domain.Handle
	// CreatePackage returns the named package, creating an empty one if needed.
	CreatePackage(name string) domain.Handle
	// FindByPath returns the object with the given path name.
	FindByPath(path string) domain.Handle
	// Packages returns every package name in creation order.
	Packages() []string
	// ObjectsIn returns every object inside pkg in creation order, excluding pkg itself.
	ObjectsIn(pkg domain.Handle) []domain.Handle
}
