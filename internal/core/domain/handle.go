package domain

// Handle is the identity of an object owned by an object runtime.
// Handles are assigned by the runtime and compared by value; the serializer never
// dereferences them.
type Handle uint64

// NoObject is the null handle.
const NoObject Handle = 0

// NoIndex is the record index that stands for "no object".
const NoIndex = -1

// IsNone reports whether h is the null handle.
func (h Handle) IsNone() bool {
	return h == NoObject
}

// ObjectFlags is the set of object flags a runtime tracks.
type ObjectFlags uint32

const (
	// FlagPublic marks an object visible outside its package.
	FlagPublic ObjectFlags = 1 << 0
	// FlagStandalone keeps an object alive even when unreferenced.
	FlagStandalone ObjectFlags = 1 << 1
	// FlagTransactional marks an object that participates in undo.
	FlagTransactional ObjectFlags = 1 << 3
	// FlagClassDefaultObject marks the default object of a class.
	FlagClassDefaultObject ObjectFlags = 1 << 4
	// FlagArchetypeObject marks an object used as a construction template.
	FlagArchetypeObject ObjectFlags = 1 << 5
	// FlagTransient marks an object that is never saved.
	FlagTransient ObjectFlags = 1 << 6
	// FlagDefaultSubObject marks a subobject created by its outer's constructor.
	FlagDefaultSubObject ObjectFlags = 1 << 18
)

// LoadFlags is the subset of flags that is persisted and restored on load.
const LoadFlags = FlagPublic | FlagStandalone | FlagTransactional |
	FlagClassDefaultObject | FlagArchetypeObject | FlagDefaultSubObject

// Has reports whether all bits of other are set in f.
func (f ObjectFlags) Has(other ObjectFlags) bool {
	return f&other == other
}
