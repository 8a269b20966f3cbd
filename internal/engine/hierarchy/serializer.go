// Package hierarchy serializes object graphs owned by an object runtime into flat,
// index-addressed record arrays and resolves them back into live objects.
package hierarchy

import (
	"go.trai.ch/modkit/internal/core/domain"
	"go.trai.ch/modkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// State is the lifecycle state of a serializer session.
type State int

const (
	// StateUnconfigured is a session that has not been initialized yet.
	StateUnconfigured State = iota
	// StateSerialize is a session building records from live objects.
	StateSerialize
	// StateDeserialize is a session seeded with records from an earlier save.
	StateDeserialize
	// StateFinalized is a session whose records were emitted. It can no longer be used.
	StateFinalized
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateSerialize:
		return "serialize"
	case StateDeserialize:
		return "deserialize"
	case StateFinalized:
		return "finalized"
	default:
		return "unconfigured"
	}
}

// Serializer is one serialization session scoped to a single source package.
// It is not safe for concurrent use.
type Serializer struct {
	runtime ports.ObjectRuntime
	codec   ports.PropertyCodec
	logger  ports.Logger

	state         State
	sourcePackage domain.Handle

	records []*domain.Record
	indices map[domain.Handle]int
	loaded  map[int]domain.Handle

	resolving map[int]struct{}

	comparing map[comparison]struct{}

	marks       map[domain.Handle]string
	markTargets map[string]domain.Handle
	allowed     map[domain.Handle]struct{}
}

var _ ports.ObjectReferences = (*Serializer)(nil)

// NewSerializer creates an unconfigured session.
func NewSerializer(runtime ports.ObjectRuntime, codec ports.PropertyCodec, logger ports.Logger) *Serializer {
	return &Serializer{
		runtime:     runtime,
		codec:       codec,
		logger:      logger,
		indices:     make(map[domain.Handle]int),
		loaded:      make(map[int]domain.Handle),
		resolving:   make(map[int]struct{}),
		comparing:   make(map[comparison]struct{}),
		marks:       make(map[domain.Handle]string),
		markTargets: make(map[string]domain.Handle),
		allowed:     make(map[domain.Handle]struct{}),
	}
}

// InitializeForSerialization configures the session to write records for objects of sourcePackage.
func (s *Serializer) InitializeForSerialization(sourcePackage domain.Handle) {
	s.requireUnconfigured()
	s.sourcePackage = sourcePackage
	s.state = StateSerialize
}

// InitializeForDeserialization seeds the session with records read back from a save of sourcePackage.
// Record positions are their indices.
func (s *Serializer) InitializeForDeserialization(sourcePackage domain.Handle, records []domain.Record) {
	s.requireUnconfigured()
	s.sourcePackage = sourcePackage
	s.records = make([]*domain.Record, len(records))
	for i := range records {
		s.records[i] = &records[i]
	}
	s.state = StateDeserialize
}

// AllowNativeClass marks objects whose closest native serializer is class as handled.
func (s *Serializer) AllowNativeClass(class domain.Handle) {
	if class.IsNone() {
		return
	}
	s.allowed[class] = struct{}{}
}

// SetObjectMark registers obj under tag. Marked exports are written as the tag alone
// and resolve back to obj. An empty tag is a configuration error.
func (s *Serializer) SetObjectMark(obj domain.Handle, tag string) {
	if tag == "" {
		Fail(zerr.Wrap(domain.ErrEmptyObjectMark, "cannot register object mark"))
	}
	if old, ok := s.marks[obj]; ok {
		delete(s.markTargets, old)
	}
	s.marks[obj] = tag
	s.markTargets[tag] = obj
}

// MarkTarget returns the object registered under tag.
func (s *Serializer) MarkTarget(tag string) (domain.Handle, bool) {
	obj, ok := s.markTargets[tag]
	return obj, ok
}

// State returns the lifecycle state of the session.
func (s *Serializer) State() State {
	return s.state
}

// SourcePackage returns the package whose objects are exports.
func (s *Serializer) SourcePackage() domain.Handle {
	return s.sourcePackage
}

// Len returns the number of allocated indices.
func (s *Serializer) Len() int {
	return len(s.records)
}

// Record returns the record at index, if any.
func (s *Serializer) Record(index int) (*domain.Record, bool) {
	if index < 0 || index >= len(s.records) || s.records[index] == nil {
		return nil, false
	}
	return s.records[index], true
}

// Finalize emits the records in index order and closes the session.
func (s *Serializer) Finalize() ([]domain.Record, error) {
	s.requireActive()

	out := make([]domain.Record, len(s.records))
	for i, rec := range s.records {
		if rec == nil {
			return nil, s.fail(zerr.With(zerr.Wrap(domain.ErrIncompleteSession, "cannot finalize session"), "object_index", i))
		}
		out[i] = *rec
	}
	s.state = StateFinalized
	return out, nil
}

func (s *Serializer) requireUnconfigured() {
	if s.state != StateUnconfigured {
		Fail(zerr.With(zerr.Wrap(domain.ErrSessionConfigured, "cannot initialize session"), "state", s.state.String()))
	}
}

func (s *Serializer) requireActive() {
	switch s.state {
	case StateSerialize, StateDeserialize:
	case StateFinalized:
		Fail(domain.ErrSessionFinalized)
	default:
		Fail(domain.ErrSessionNotConfigured)
	}
}

// fail discards the session and returns err as a configuration error.
func (s *Serializer) fail(err error) error {
	s.state = StateFinalized
	return &ConfigurationError{Err: err}
}

func (s *Serializer) reportUnresolved(index int, err error) {
	err = zerr.With(err, "object_index", index)
	if s.runtime != nil && !s.sourcePackage.IsNone() {
		err = zerr.With(err, "source_package", s.runtime.PathName(s.sourcePackage))
	}
	s.logger.Error(err)
}
