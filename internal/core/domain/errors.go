package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownIndex is returned when an object index has no record in the session.
	ErrUnknownIndex = zerr.New("unknown object index")

	// ErrPackageNotFound is returned when an external package cannot be loaded.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrClassNotFound is returned when a class cannot be found inside its package.
	ErrClassNotFound = zerr.New("class not found")

	// ErrObjectNotFound is returned when a named object cannot be found inside its outer.
	ErrObjectNotFound = zerr.New("object not found")

	// ErrOuterNotResolved is returned when the outer of a record cannot be resolved.
	ErrOuterNotResolved = zerr.New("outer object not resolved")

	// ErrUnexpectedClass is returned when a resolved object has a class other than the one the record requires.
	ErrUnexpectedClass = zerr.New("unexpected object class")

	// ErrUnknownRecordType is returned when a record carries a Type other than Import or Export.
	ErrUnknownRecordType = zerr.New("unknown record type")

	// ErrUnknownObjectMark is raised when a record references an object mark that is not registered.
	ErrUnknownObjectMark = zerr.New("unknown object mark")

	// ErrEmptyObjectMark is raised when an object is registered under an empty mark tag.
	ErrEmptyObjectMark = zerr.New("object mark tag is empty")

	// ErrIncompleteSession is raised when a finalized session has an allocated index without a record.
	ErrIncompleteSession = zerr.New("allocated index has no record")

	// ErrSessionNotConfigured is raised when a session is used before it was initialized.
	ErrSessionNotConfigured = zerr.New("serializer session is not configured")

	// ErrSessionConfigured is raised when a session is initialized twice.
	ErrSessionConfigured = zerr.New("serializer session is already configured")

	// ErrSessionFinalized is raised when a session is used after Finalize.
	ErrSessionFinalized = zerr.New("serializer session is already finalized")

	// ErrPropertyEncoding is returned by a property codec when a field value cannot be encoded or decoded.
	ErrPropertyEncoding = zerr.New("property encoding failed")

	// ErrSaveNotFound is returned when no save exists for a package.
	ErrSaveNotFound = zerr.New("save not found")

	// ErrIncompatibleSaveFormat is returned when a save was written with an unsupported format version.
	ErrIncompatibleSaveFormat = zerr.New("incompatible save format")

	// ErrSaveCorrupted is returned when a stored save does not match its checksum.
	ErrSaveCorrupted = zerr.New("save checksum mismatch")

	// ErrUnknownStore is returned when the configuration names an unsupported save store.
	ErrUnknownStore = zerr.New("unknown save store")

	// ErrInvalidConfig is returned when the configuration file holds a value outside its allowed range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrNoPackagesSpecified is returned when a command requires at least one package.
	ErrNoPackagesSpecified = zerr.New("no packages specified")
)
