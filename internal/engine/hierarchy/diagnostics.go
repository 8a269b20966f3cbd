package hierarchy

import (
	"maps"
	"slices"
	"sync"
)

var unhandled = struct {
	sync.Mutex
	classes map[string]struct{}
}{classes: make(map[string]struct{})}

func recordUnhandledNativeClass(path string) {
	unhandled.Lock()
	defer unhandled.Unlock()
	unhandled.classes[path] = struct{}{}
}

// UnhandledNativeClasses returns the sorted paths of classes with a native serializer that
// was not allowed by the session that met them. The set is shared by every session in the process.
func UnhandledNativeClasses() []string {
	unhandled.Lock()
	defer unhandled.Unlock()
	return slices.Sorted(maps.Keys(unhandled.classes))
}

// ResetUnhandledNativeClasses clears the shared set.
func ResetUnhandledNativeClasses() {
	unhandled.Lock()
	defer unhandled.Unlock()
	clear(unhandled.classes)
}
