package hierarchy

// ConfigurationError is the panic value raised when a session is used against its
// configuration. The session that raised it must be discarded.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Fail raises err as a configuration error.
func Fail(err error) {
	panic(&ConfigurationError{Err: err})
}

// Guard runs fn and converts a configuration error raised inside it into a returned error.
// Other panics are propagated.
func Guard(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		cfgErr, ok := r.(*ConfigurationError)
		if !ok {
			panic(r)
		}
		err = cfgErr
	}()
	return fn()
}
